package search

import (
	"context"
	"time"

	"praxis/core/logger"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ArticleAdapter searches knowledge-base articles. Unpublished articles are
// treated as archived.
type ArticleAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *ArticleAdapter) Type() EntityType { return EntityArticles }

var articleSearchFields = []searchField{
	{column: "articles.title", weight: 3},
	{column: "articles.summary", weight: 2},
	{column: "articles.tags", weight: 2},
	{column: "articles.body", weight: 1},
}

func (a *ArticleAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(articleSearchFields, query)
	match, matchArgs := matchExpr(articleSearchFields, query)

	q := a.DB.WithContext(ctx).Table("articles").
		Select("articles.id, articles.title, articles.slug, articles.summary, articles.category, "+
			"articles.status, articles.updated_at, users.first_name AS author_first, "+
			"users.last_name AS author_last, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN users ON users.id = articles.author_id").
		Where("articles.deleted_at IS NULL").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("articles.status = ?", "published")
	}
	if opts.UserId != 0 {
		q = q.Where("articles.author_id = ?", opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"status":   "articles.status",
		"category": "articles.category",
	}, "articles.published_at")

	var rows []struct {
		Id          uint
		Title       string
		Slug        string
		Summary     string
		Category    string
		Status      string
		UpdatedAt   time.Time
		AuthorFirst string
		AuthorLast  string
		Relevance   float64
	}
	if err := q.Order("relevance DESC, articles.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		articleSlug := row.Slug
		if articleSlug == "" {
			articleSlug = slug.Make(row.Title)
		}
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityArticles,
			Title:       row.Title,
			Description: row.Summary,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"category": row.Category,
				"status":   row.Status,
				"author":   row.AuthorFirst + " " + row.AuthorLast,
				"slug":     articleSlug,
			},
			URL:       "/articles/" + articleSlug,
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
