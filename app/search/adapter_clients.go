package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// ClientAdapter searches clients by name, company and contact details.
type ClientAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *ClientAdapter) Type() EntityType { return EntityClients }

var clientSearchFields = []searchField{
	{column: "clients.company_name", weight: 3},
	{column: "clients.first_name", weight: 2},
	{column: "clients.last_name", weight: 2},
	{column: "clients.email", weight: 2},
	{column: "clients.notes", weight: 1},
}

func (a *ClientAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(clientSearchFields, query)
	match, matchArgs := matchExpr(clientSearchFields, query)

	q := a.DB.WithContext(ctx).Table("clients").
		Select("clients.id, clients.first_name, clients.last_name, clients.company_name, clients.email, "+
			"clients.phone, clients.type, clients.is_active, clients.updated_at, "+rel+" AS relevance", relArgs...).
		Where("clients.deleted_at IS NULL").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("clients.is_active = ?", true)
	}
	if opts.UserId != 0 {
		q = q.Where("clients.created_by_id = ?", opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"type": "clients.type",
	}, "clients.created_at")

	var rows []struct {
		Id          uint
		FirstName   string
		LastName    string
		CompanyName string
		Email       string
		Phone       string
		Type        string
		IsActive    bool
		UpdatedAt   time.Time
		Relevance   float64
	}
	if err := q.Order("relevance DESC, clients.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		name := row.CompanyName
		if name == "" {
			name = strings.TrimSpace(row.FirstName + " " + row.LastName)
		}
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityClients,
			Title:       name,
			Description: row.Email,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"type":      row.Type,
				"email":     row.Email,
				"phone":     row.Phone,
				"is_active": row.IsActive,
			},
			URL:       fmt.Sprintf("/app/clients/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
