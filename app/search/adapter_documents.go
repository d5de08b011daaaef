package search

import (
	"context"
	"fmt"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// DocumentAdapter searches stored documents by title, file name and tags,
// joining the owning case for display context.
type DocumentAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *DocumentAdapter) Type() EntityType { return EntityDocuments }

var documentSearchFields = []searchField{
	{column: "documents.title", weight: 3},
	{column: "documents.file_name", weight: 2},
	{column: "documents.tags", weight: 2},
	{column: "documents.description", weight: 1},
}

func (a *DocumentAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(documentSearchFields, query)
	match, matchArgs := matchExpr(documentSearchFields, query)

	q := a.DB.WithContext(ctx).Table("documents").
		Select("documents.id, documents.title, documents.description, documents.file_name, documents.file_size, "+
			"documents.category, documents.updated_at, cases.title AS case_title, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN cases ON cases.id = documents.case_id").
		Where("documents.deleted_at IS NULL").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("documents.is_deleted = ?", false)
	}
	if opts.UserId != 0 {
		q = q.Where("documents.uploaded_by_id = ?", opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"category":  "documents.category",
		"case_id":   "documents.case_id",
		"client_id": "documents.client_id",
	}, "documents.created_at")

	var rows []struct {
		Id          uint
		Title       string
		Description string
		FileName    string
		FileSize    int64
		Category    string
		UpdatedAt   time.Time
		CaseTitle   string
		Relevance   float64
	}
	if err := q.Order("relevance DESC, documents.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityDocuments,
			Title:       row.Title,
			Description: row.Description,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"file_name":  row.FileName,
				"file_size":  row.FileSize,
				"category":   row.Category,
				"case_title": row.CaseTitle,
			},
			URL:       fmt.Sprintf("/app/documents/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
