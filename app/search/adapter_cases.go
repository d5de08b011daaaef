package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// CaseAdapter searches legal matters by number, title and description.
type CaseAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *CaseAdapter) Type() EntityType { return EntityCases }

var caseSearchFields = []searchField{
	{column: "cases.title", weight: 3},
	{column: "cases.number", weight: 3},
	{column: "cases.description", weight: 1},
}

func (a *CaseAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(caseSearchFields, query)
	match, matchArgs := matchExpr(caseSearchFields, query)

	q := a.DB.WithContext(ctx).Table("cases").
		Select("cases.id, cases.number, cases.title, cases.description, cases.status, cases.priority, "+
			"cases.practice_area, cases.updated_at, "+
			"clients.company_name AS client_company, clients.first_name AS client_first, "+
			"clients.last_name AS client_last, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN clients ON clients.id = cases.client_id").
		Where("cases.deleted_at IS NULL").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("cases.status <> ?", "deleted")
	}
	if opts.UserId != 0 {
		q = q.Where("cases.created_by_id = ? OR cases.assignee_id = ?", opts.UserId, opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"status":        "cases.status",
		"priority":      "cases.priority",
		"practice_area": "cases.practice_area",
		"client_id":     "cases.client_id",
	}, "cases.created_at")

	var rows []struct {
		Id            uint
		Number        string
		Title         string
		Description   string
		Status        string
		Priority      string
		PracticeArea  string
		UpdatedAt     time.Time
		ClientCompany string
		ClientFirst   string
		ClientLast    string
		Relevance     float64
	}
	if err := q.Order("relevance DESC, cases.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		clientName := row.ClientCompany
		if clientName == "" {
			clientName = strings.TrimSpace(row.ClientFirst + " " + row.ClientLast)
		}
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityCases,
			Title:       row.Title,
			Description: row.Description,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"number":        row.Number,
				"status":        row.Status,
				"priority":      row.Priority,
				"practice_area": row.PracticeArea,
				"client_name":   clientName,
			},
			URL:       fmt.Sprintf("/app/cases/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
