package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"praxis/core/logger"

	"gorm.io/gorm"
)

// InvoiceAdapter searches invoices by number and notes, joining the billed
// client for display context.
type InvoiceAdapter struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func (a *InvoiceAdapter) Type() EntityType { return EntityInvoices }

var invoiceSearchFields = []searchField{
	{column: "invoices.number", weight: 3},
	{column: "invoices.notes", weight: 1},
}

func (a *InvoiceAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	rel, relArgs := relevanceExpr(invoiceSearchFields, query)
	match, matchArgs := matchExpr(invoiceSearchFields, query)

	q := a.DB.WithContext(ctx).Table("invoices").
		Select("invoices.id, invoices.number, invoices.notes, invoices.status, invoices.total, "+
			"invoices.updated_at, clients.company_name AS client_company, clients.first_name AS client_first, "+
			"clients.last_name AS client_last, "+rel+" AS relevance", relArgs...).
		Joins("LEFT JOIN clients ON clients.id = invoices.client_id").
		Where(match, matchArgs...)

	if !opts.IncludeArchived {
		q = q.Where("invoices.deleted_at IS NULL")
	}
	if opts.UserId != 0 {
		q = q.Where("invoices.created_by_id = ?", opts.UserId)
	}
	q = applyFilters(q, opts.Filters, map[string]string{
		"status":    "invoices.status",
		"client_id": "invoices.client_id",
		"case_id":   "invoices.case_id",
	}, "invoices.issued_at")

	var rows []struct {
		Id            uint
		Number        string
		Notes         string
		Status        string
		Total         float64
		UpdatedAt     time.Time
		ClientCompany string
		ClientFirst   string
		ClientLast    string
		Relevance     float64
	}
	if err := q.Order("relevance DESC, invoices.id ASC").Limit(opts.Limit).Scan(&rows).Error; err != nil {
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
			Type:        EntityInvoices,
			Title:       "Invoice " + row.Number,
			Description: row.Notes,
			Relevance:   row.Relevance,
			Metadata: map[string]any{
				"number":      row.Number,
				"status":      row.Status,
				"total":       row.Total,
				"client_name": clientName,
			},
			URL:       fmt.Sprintf("/app/invoices/%d", row.Id),
			Timestamp: row.UpdatedAt,
		}
	}
	return results, nil
}
