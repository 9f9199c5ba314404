package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/application/handlers"
	"github.com/ersonp/person-search/internal/infrastructure/metrics"
)

// msgSearchFailed is the only detail callers see when a search errors.
const msgSearchFailed = "search failed"

// personsHandler serves the REST mirror of searchPerson.
type personsHandler struct {
	search  *handlers.SearchHandler
	metrics *metrics.Collector
	logger  *zap.Logger
}

// Search handles GET /api/persons/search?name=...
func (h *personsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var name *string
	if values, ok := r.URL.Query()["name"]; ok && len(values) > 0 {
		name = &values[0]
	}

	result, err := h.search.HandleSearch(r.Context(), name)
	h.metrics.ObserveSearch(resultCount(result), err)
	if err != nil {
		h.logger.Error("person search failed", zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, msgSearchFailed)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, newPersonViews(result.Persons))
}

func resultCount(result *handlers.SearchResult) int {
	if result == nil {
		return 0
	}
	return len(result.Persons)
}
