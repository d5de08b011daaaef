package search

import (
	"context"
	"fmt"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// ExpenseAdapter searches case expenses by description, category and notes.
type ExpenseAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *ExpenseAdapter) Type() EntityType { return EntityExpenses }

var expenseSearchFields = []searchField{
	{column: "expenses.description", weight: 3},
	{column: "expenses.category", weight: 2},
	{column: "expenses.notes", weight: 1},
}

func (a *ExpenseAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(expenseSearchFields, query)
	match, matchArgs := matchExpr(expenseSearchFields, query)

	q := a.DB.WithContext(ctx).Table("expenses").
		Select("expenses.id, expenses.description, expenses.category, expenses.amount, expenses.status, "+
			"expenses.expense_date, expenses.updated_at, cases.title AS case_title, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN cases ON cases.id = expenses.case_id").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("expenses.deleted_at IS NULL")
	}
	if opts.UserId != 0 {
		q = q.Where("expenses.user_id = ?", opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"status":   "expenses.status",
		"category": "expenses.category",
		"case_id":  "expenses.case_id",
	}, "expenses.expense_date")

	var rows []struct {
		Id          uint
		Description string
		Category    string
		Amount      float64
		Status      string
		UpdatedAt   time.Time
		CaseTitle   string
		Relevance   float64
	}
	if err := q.Order("relevance DESC, expenses.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityExpenses,
			Title:       row.Description,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"category":   row.Category,
				"amount":     row.Amount,
				"status":     row.Status,
				"case_title": row.CaseTitle,
			},
			URL:       fmt.Sprintf("/app/expenses/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
