package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/application/handlers"
	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/domain/services"
	"github.com/ersonp/person-search/internal/infrastructure/metrics"
)

// maxRequestBytes bounds the size of a GraphQL request body.
const maxRequestBytes = 1 << 20

var (
	errSearchFailed   = errors.New(msgSearchFailed)
	errResearchFailed = errors.New("research failed")
)

var personType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Person",
	Description: "A platform-specific identity record.",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"platform":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"profileUrl": &graphql.Field{Type: graphql.String},
		"confidence": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"isVerified": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"lastSeen": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "RFC 3339 timestamp.",
		},
	},
})

// graphQLRequest is the standard GraphQL-over-HTTP request body.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// graphQLHandler executes queries against the search schema.
type graphQLHandler struct {
	schema graphql.Schema
	logger *zap.Logger
}

func newGraphQLHandler(
	search *handlers.SearchHandler,
	research *handlers.ResearchHandler,
	collector *metrics.Collector,
	logger *zap.Logger,
) (*graphQLHandler, error) {
	schema, err := newSchema(search, research, collector, logger)
	if err != nil {
		return nil, err
	}
	return &graphQLHandler{schema: schema, logger: logger}, nil
}

// newSchema builds the query schema. researchPerson is only exposed when a
// researcher is configured.
func newSchema(
	search *handlers.SearchHandler,
	research *handlers.ResearchHandler,
	collector *metrics.Collector,
	logger *zap.Logger,
) (graphql.Schema, error) {
	fields := graphql.Fields{
		"searchPerson": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personType))),
			Description: "Up to five records whose name contains the given fragment, highest confidence first.",
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var name *string
				if v, ok := p.Args["name"].(string); ok {
					name = &v
				}

				result, err := search.HandleSearch(p.Context, name)
				collector.ObserveSearch(resultCount(result), err)
				if err != nil {
					logger.Error("searchPerson failed", zap.Error(err))
					return nil, errSearchFailed
				}
				return toGraphQLPersons(result.Persons), nil
			},
		},
	}

	if research != nil && research.Enabled() {
		fields["researchPerson"] = &graphql.Field{
			Type:        graphql.String,
			Description: "Web-presence summary for a name, generated by a language model.",
			Args: graphql.FieldConfigArgument{
				"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"context": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				name, _ := p.Args["name"].(string)
				extra, _ := p.Args["context"].(string)

				result, err := research.Handle(p.Context, name, extra)
				if errors.Is(err, services.ErrBlankName) {
					return nil, err
				}
				if err != nil {
					logger.Error("researchPerson failed", zap.Error(err))
					return nil, errResearchFailed
				}
				return result.Summary, nil
			},
		}
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: fields,
		}),
	})
}

func toGraphQLPersons(persons []entities.Person) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(persons))
	for _, v := range newPersonViews(persons) {
		result = append(result, v.fields())
	}
	return result
}

// ServeHTTP handles GET (query string) and POST (JSON body) requests.
func (h *graphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGraphQLRequest(w, r)
	if err != nil {
		h.respondGraphQLError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Query == "" {
		h.respondGraphQLError(w, http.StatusBadRequest, "query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	respondJSON(w, h.logger, http.StatusOK, result)
}

func decodeGraphQLRequest(w http.ResponseWriter, r *http.Request) (graphQLRequest, error) {
	var req graphQLRequest

	if r.Method == http.MethodGet {
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if vars := q.Get("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return req, errors.New("variables must be a JSON object")
			}
		}
		return req, nil
	}

	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return req, errors.New("request body must be a JSON object")
	}
	return req, nil
}

func (h *graphQLHandler) respondGraphQLError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, h.logger, status, map[string]interface{}{
		"errors": []map[string]string{{"message": message}},
	})
}
