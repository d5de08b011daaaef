package models

import "time"

// SearchQuery is one row of search history. Rows are append-only and feed
// the suggestion engine.
type SearchQuery struct {
	Id           uint      `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	Query        string    `json:"query" gorm:"size:255;index;not null"`
	UserId       *uint     `json:"user_id,omitempty" gorm:"index"`
	ResultsCount int       `json:"results_count"`
}

// TableName returns the table name for the SearchQuery model
func (m *SearchQuery) TableName() string {
	return "search_queries"
}

// SearchTerm is one occurrence of a normalized query term. Term popularity
// is the occurrence count over a trailing window.
type SearchTerm struct {
	Id        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	Term      string    `json:"term" gorm:"size:128;index;not null"`
	UserId    *uint     `json:"user_id,omitempty" gorm:"index"`
}

// TableName returns the table name for the SearchTerm model
func (m *SearchTerm) TableName() string {
	return "search_terms"
}
