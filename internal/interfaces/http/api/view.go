package api

import (
	"strconv"
	"time"

	"github.com/ersonp/person-search/internal/domain/entities"
)

// personView is the wire shape of a record, shared by GraphQL and REST.
// Ids are strings (GraphQL ID), a missing profile URL is null and
// lastSeen is RFC3339 in UTC.
type personView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Platform   string  `json:"platform"`
	ProfileURL *string `json:"profileUrl"`
	Confidence float64 `json:"confidence"`
	IsVerified bool    `json:"isVerified"`
	LastSeen   string  `json:"lastSeen"`
}

func newPersonView(p entities.Person) personView {
	v := personView{
		ID:         strconv.FormatInt(p.ID, 10),
		Name:       p.Name,
		Platform:   p.Platform,
		Confidence: p.Confidence,
		IsVerified: p.IsVerified,
		LastSeen:   p.LastSeen.UTC().Format(time.RFC3339),
	}
	if p.ProfileURL != "" {
		url := p.ProfileURL
		v.ProfileURL = &url
	}
	return v
}

func newPersonViews(persons []entities.Person) []personView {
	views := make([]personView, 0, len(persons))
	for _, p := range persons {
		views = append(views, newPersonView(p))
	}
	return views
}

// fields returns the view keyed by GraphQL field name.
func (v personView) fields() map[string]interface{} {
	var profileURL interface{}
	if v.ProfileURL != nil {
		profileURL = *v.ProfileURL
	}
	return map[string]interface{}{
		"id":         v.ID,
		"name":       v.Name,
		"platform":   v.Platform,
		"profileUrl": profileURL,
		"confidence": v.Confidence,
		"isVerified": v.IsVerified,
		"lastSeen":   v.LastSeen,
	}
}
