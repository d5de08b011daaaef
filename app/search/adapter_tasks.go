package search

import (
	"context"
	"fmt"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// TaskAdapter searches tasks by title and description.
type TaskAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *TaskAdapter) Type() EntityType { return EntityTasks }

var taskSearchFields = []searchField{
	{column: "tasks.title", weight: 3},
	{column: "tasks.description", weight: 1},
}

func (a *TaskAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(taskSearchFields, query)
	match, matchArgs := matchExpr(taskSearchFields, query)

	q := a.DB.WithContext(ctx).Table("tasks").
		Select("tasks.id, tasks.title, tasks.description, tasks.status, tasks.priority, tasks.due_date, "+
			"tasks.updated_at, cases.title AS case_title, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN cases ON cases.id = tasks.case_id").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("tasks.deleted_at IS NULL")
	}
	if opts.UserId != 0 {
		q = q.Where("tasks.created_by_id = ? OR tasks.assignee_id = ?", opts.UserId, opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"status":   "tasks.status",
		"priority": "tasks.priority",
		"case_id":  "tasks.case_id",
	}, "tasks.due_date")

	var rows []struct {
		Id          uint
		Title       string
		Description string
		Status      string
		Priority    string
		DueDate     *time.Time
		UpdatedAt   time.Time
		CaseTitle   string
		Relevance   float64
	}
	if err := q.Order("relevance DESC, tasks.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		metadata := map[string]any{
			"status":     row.Status,
			"priority":   row.Priority,
			"case_title": row.CaseTitle,
		}
		if row.DueDate != nil {
			metadata["due_date"] = row.DueDate.Format("2006-01-02")
		}
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityTasks,
			Title:       row.Title,
			Description: row.Description,
			Relevance:   row.Relevance,
			Metadata:    metadata,
			URL:         fmt.Sprintf("/app/tasks/%d", row.Id),
			Timestamp:   row.UpdatedAt,
		}
	}
	return results, nil
}
