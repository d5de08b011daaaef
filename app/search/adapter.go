package search

import (
	"context"
	"fmt"
	"strings"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// AdapterOptions carries the per-call parameters shared by every adapter.
type AdapterOptions struct {
	Filters         map[string]any
	UserId          uint
	IncludeArchived bool
	Limit           int
}

// EntityAdapter is the per-entity search contract. Implementations query
// their own store, return results pre-sorted descending by the entity's own
// relevance score, and denormalize minimal display context into Metadata.
type EntityAdapter interface {
	Type() EntityType
	Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error)
}

// Registry maps entity types to their adapters, preserving registration
// order. New entity types plug in without touching the aggregator.
type Registry struct {
	order    []EntityType
	adapters map[EntityType]EntityAdapter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[EntityType]EntityAdapter)}
}

// Register adds an adapter. Re-registering a type replaces the adapter but
// keeps its original position.
func (r *Registry) Register(adapter EntityAdapter) {
	t := adapter.Type()
	if _, exists := r.adapters[t]; !exists {
		r.order = append(r.order, t)
	}
	r.adapters[t] = adapter
}

// Get returns the adapter for t.
func (r *Registry) Get(t EntityType) (EntityAdapter, bool) {
	a, ok := r.adapters[t]
	return a, ok
}

// Types returns all registered entity types in registration order.
func (r *Registry) Types() []EntityType {
	return append([]EntityType{}, r.order...)
}

// Resolve returns the effective entity set for a request in registration
// order. An empty request set means all registered entities; unknown types
// are dropped.
func (r *Registry) Resolve(requested []EntityType) []EntityType {
	if len(requested) == 0 {
		return r.Types()
	}

	want := make(map[EntityType]bool, len(requested))
	for _, t := range requested {
		want[t] = true
	}

	var resolved []EntityType
	for _, t := range r.order {
		if want[t] {
			resolved = append(resolved, t)
		}
	}
	return resolved
}

// RegisterAdapters builds the registry with all nine entity adapters.
func RegisterAdapters(db *gorm.DB, log logger.Logger) *Registry {
	registry := NewRegistry()
	registry.Register(&CaseAdapter{DB: db, Logger: log})
	registry.Register(&ClientAdapter{DB: db, Logger: log})
	registry.Register(&DocumentAdapter{DB: db, Logger: log})
	registry.Register(&UserAdapter{DB: db, Logger: log})
	registry.Register(&ExpenseAdapter{DB: db, Logger: log})
	registry.Register(&ArticleAdapter{DB: db, Logger: log})
	registry.Register(&TaskAdapter{DB: db, Logger: log})
	registry.Register(&InvoiceAdapter{DB: db, Logger: log})
	registry.Register(&TimeEntryAdapter{DB: db, Logger: log})
	return registry
}

// searchField is one column contributing to an entity's relevance score.
type searchField struct {
	column string
	weight int
}

// relevanceExpr builds the SQL expression computing the entity-local
// relevance score: exact match counts four times the field weight, prefix
// match twice, substring match once.
func relevanceExpr(fields []searchField, query string) (string, []any) {
	parts := make([]string, 0, len(fields))
	args := make([]any, 0, 3*len(fields))

	for _, f := range fields {
		parts = append(parts, fmt.Sprintf(
			"(CASE WHEN LOWER(%s) = ? THEN %d WHEN LOWER(%s) LIKE ? THEN %d WHEN LOWER(%s) LIKE ? THEN %d ELSE 0 END)",
			f.column, f.weight*4,
			f.column, f.weight*2,
			f.column, f.weight,
		))
		args = append(args, query, query+"%", "%"+query+"%")
	}

	return strings.Join(parts, " + "), args
}

// matchExpr builds the WHERE clause matching the query against any of the
// entity's searchable fields.
func matchExpr(fields []searchField, query string) (string, []any) {
	parts := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))

	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE ?", f.column))
		args = append(args, "%"+query+"%")
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

// applyFilters applies the adapter's allow-listed filters. allowed maps a
// filter key to the column it binds; values go through parameter binding,
// never string interpolation. dateColumn, when set, binds the date_from and
// date_to range keys.
func applyFilters(q *gorm.DB, filters map[string]any, allowed map[string]string, dateColumn string) *gorm.DB {
	if len(filters) == 0 {
		return q
	}

	for key, column := range allowed {
		if value, ok := filters[key]; ok {
			q = q.Where(column+" = ?", value)
		}
	}

	if dateColumn != "" {
		if from, ok := filters["date_from"]; ok {
			q = q.Where(dateColumn+" >= ?", from)
		}
		if to, ok := filters["date_to"]; ok {
			q = q.Where(dateColumn+" <= ?", to)
		}
	}

	return q
}
