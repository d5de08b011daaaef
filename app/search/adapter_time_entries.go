package search

import (
	"context"
	"fmt"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// TimeEntryAdapter searches billable time entries by description.
type TimeEntryAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *TimeEntryAdapter) Type() EntityType { return EntityTimeEntries }

var timeEntrySearchFields = []searchField{
	{column: "time_entries.description", weight: 3},
}

func (a *TimeEntryAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(timeEntrySearchFields, query)
	match, matchArgs := matchExpr(timeEntrySearchFields, query)

	q := a.DB.WithContext(ctx).Table("time_entries").
		Select("time_entries.id, time_entries.description, time_entries.status, time_entries.hours, "+
			"time_entries.rate, time_entries.entry_date, time_entries.updated_at, "+
			"cases.title AS case_title, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN cases ON cases.id = time_entries.case_id").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("time_entries.deleted_at IS NULL")
	}
	if opts.UserId != 0 {
		q = q.Where("time_entries.user_id = ?", opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"status":  "time_entries.status",
		"case_id": "time_entries.case_id",
	}, "time_entries.entry_date")

	var rows []struct {
		Id          uint
		Description string
		Status      string
		Hours       float64
		Rate        float64
		EntryDate   time.Time
		UpdatedAt   time.Time
		CaseTitle   string
		Relevance   float64
	}
	if err := q.Order("relevance DESC, time_entries.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityTimeEntries,
			Title:       row.Description,
			Description: fmt.Sprintf("%.2f hours on %s", row.Hours, row.EntryDate.Format("2006-01-02")),
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"hours":      row.Hours,
				"rate":       row.Rate,
				"status":     row.Status,
				"case_title": row.CaseTitle,
			},
			URL:       fmt.Sprintf("/app/time-entries/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
