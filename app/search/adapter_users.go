package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// UserAdapter searches firm members. Users are scoped by active status only;
// ownership filtering never applies to this entity.
type UserAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *UserAdapter) Type() EntityType { return EntityUsers }

var userSearchFields = []searchField{
	{column: "users.first_name", weight: 2},
	{column: "users.last_name", weight: 2},
	{column: "users.username", weight: 2},
	{column: "users.email", weight: 2},
}

func (a *UserAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(userSearchFields, query)
	match, matchArgs := matchExpr(userSearchFields, query)

	q := a.DB.WithContext(ctx).Table("users").
		Select("users.id, users.first_name, users.last_name, users.username, users.email, users.role, "+
			"users.is_active, users.updated_at, "+rel+" AS relevance", relArgs...).
		Where("users.deleted_at IS NULL").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("users.is_active = ?", true)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"role": "users.role",
	}, "")

	var rows []struct {
		Id        uint
		FirstName string
		LastName  string
		Username  string
		Email     string
		Role      string
		IsActive  bool
		UpdatedAt time.Time
		Relevance float64
	}
	if err := q.Order("relevance DESC, users.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.FirstName + " " + row.LastName)
		if name == "" {
			name = row.Username
		}
		results[i] = SearchResult{
			Id:          row.Id,
			Type:        EntityUsers,
			Title:       name,
			Description: row.Email,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"username":  row.Username,
				"role":      row.Role,
				"is_active": row.IsActive,
			},
			URL:       fmt.Sprintf("/app/users/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
