package search

import (
	"strings"
	"time"

	"github.com/gertd/go-pluralize"
)

// EntityType identifies one of the searchable entity stores.
type EntityType string

const (
	EntityCases       EntityType = "cases"
	EntityClients     EntityType = "clients"
	EntityDocuments   EntityType = "documents"
	EntityUsers       EntityType = "users"
	EntityExpenses    EntityType = "expenses"
	EntityArticles    EntityType = "articles"
	EntityTasks       EntityType = "tasks"
	EntityInvoices    EntityType = "invoices"
	EntityTimeEntries EntityType = "time_entries"
)

// AllEntityTypes is the canonical dispatch order. Merge order (and therefore
// tie-breaking in the global sort) follows this order.
var AllEntityTypes = []EntityType{
	EntityCases,
	EntityClients,
	EntityDocuments,
	EntityUsers,
	EntityExpenses,
	EntityArticles,
	EntityTasks,
	EntityInvoices,
	EntityTimeEntries,
}

var pluralizer = pluralize.NewClient()

// Label returns the singular display label for the entity type, e.g.
// "time_entries" becomes "time entry".
func (t EntityType) Label() string {
	return pluralizer.Singular(strings.ReplaceAll(string(t), "_", " "))
}

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	for _, known := range AllEntityTypes {
		if t == known {
			return true
		}
	}
	return false
}

// EntityInfo describes one searchable entity type for API consumers.
type EntityInfo struct {
	Type  EntityType `json:"type"`
	Label string     `json:"label"`
}

// SearchOptions are the parameters of one unified search call.
type SearchOptions struct {
	Query           string         `json:"query" binding:"required,min=2"`
	Entities        []EntityType   `json:"entities,omitempty"`
	Filters         map[string]any `json:"filters,omitempty"`
	SortBy          string         `json:"sortBy,omitempty" binding:"omitempty,oneof=relevance date title"`
	SortOrder       string         `json:"sortOrder,omitempty" binding:"omitempty,oneof=asc desc"`
	Page            int            `json:"page,omitempty"`
	Limit           int            `json:"limit,omitempty"`
	UserId          uint           `json:"userId,omitempty"`
	IncludeArchived bool           `json:"includeArchived,omitempty"`
}

// SearchResult is one match from one entity store.
//
// Relevance is on the entity's own scale: scores are comparable within one
// entity type but not across types. The global sort merges them anyway; this
// is a documented limitation of cross-entity ranking, not a bug.
type SearchResult struct {
	Id          uint           `json:"id"`
	Type        EntityType     `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Relevance   float64        `json:"relevance"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	URL         string         `json:"url"`
	Timestamp   time.Time      `json:"timestamp"`
}

// SearchStats summarizes one search call.
type SearchStats struct {
	TotalResults     int                `json:"totalResults"`
	ResultsByEntity  map[EntityType]int `json:"resultsByEntity"`
	QueryTime        int64              `json:"queryTime"` // milliseconds
	Suggestions      []string           `json:"suggestions"`
	PopularTerms     []string           `json:"popularTerms"`
	DegradedEntities []EntityType       `json:"degradedEntities,omitempty"`
}

// SearchResponse is the full payload of the search endpoint.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Stats   SearchStats    `json:"stats"`
}

// LogQueryRequest is the payload of the analytics logging endpoint.
type LogQueryRequest struct {
	Query        string `json:"query" binding:"required,min=2"`
	UserId       *uint  `json:"userId,omitempty"`
	ResultsCount int    `json:"resultsCount"`
}
