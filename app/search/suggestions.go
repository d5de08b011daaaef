package search

import (
	"encoding/json"
	"time"

	"praxis/core/cache"
	"praxis/core/logger"

	"gorm.io/gorm"
)

// SuggestionEngine ranks past queries and decomposed terms for autocomplete
// and for the global popular-terms list. Both lookups degrade to empty on
// failure; suggestions never block or break a search.
type SuggestionEngine struct {
	DB          *gorm.DB
	Cache       cache.Store
	Logger      logger.Logger
	TTL         time.Duration
	PopularDays int
}

func NewSuggestionEngine(db *gorm.DB, store cache.Store, log logger.Logger, ttl time.Duration, popularDays int) *SuggestionEngine {
	return &SuggestionEngine{
		DB:          db,
		Cache:       store,
		Logger:      log,
		TTL:         ttl,
		PopularDays: popularDays,
	}
}

type rankedTerm struct {
	Value string
	Count int
}

// Suggest returns up to ten suggestions for a partial query: the five most
// frequent past queries containing it, then the five most frequent individual
// terms, deduplicated in that order.
func (e *SuggestionEngine) Suggest(raw string) ([]string, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	key := suggestKey(normalized)
	if data, ok := e.Cache.Get(key); ok {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	pattern := "%" + normalized + "%"

	var queries []rankedTerm
	if err := e.DB.Table("search_queries").
		Select("query AS value, COUNT(*) AS count").
		Where("LOWER(query) LIKE ?", pattern).
		Group("query").
		Order("count DESC").
		Limit(5).
		Scan(&queries).Error; err != nil {
		e.Logger.Warn("suggestion query lookup failed", logger.String("error", err.Error()))
		queries = nil
	}

	var terms []rankedTerm
	if err := e.DB.Table("search_terms").
		Select("term AS value, COUNT(*) AS count").
		Where("LOWER(term) LIKE ?", pattern).
		Group("term").
		Order("count DESC").
		Limit(5).
		Scan(&terms).Error; err != nil {
		e.Logger.Warn("suggestion term lookup failed", logger.String("error", err.Error()))
		terms = nil
	}

	seen := make(map[string]bool, 10)
	suggestions := make([]string, 0, 10)
	for _, ranked := range append(queries, terms...) {
		if seen[ranked.Value] {
			continue
		}
		seen[ranked.Value] = true
		suggestions = append(suggestions, ranked.Value)
		if len(suggestions) == 10 {
			break
		}
	}

	if data, err := json.Marshal(suggestions); err == nil {
		e.Cache.Set(key, data, e.TTL)
	}
	return suggestions, nil
}

// PopularTerms returns the twenty most frequent search terms over the
// trailing popularity window.
func (e *SuggestionEngine) PopularTerms() ([]string, error) {
	key := popularKey()
	if data, ok := e.Cache.Get(key); ok {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	cutoff := time.Now().AddDate(0, 0, -e.PopularDays)

	var ranked []rankedTerm
	if err := e.DB.Table("search_terms").
		Select("term AS value, COUNT(*) AS count").
		Where("created_at >= ?", cutoff).
		Group("term").
		Order("count DESC").
		Limit(20).
		Scan(&ranked).Error; err != nil {
		return nil, err
	}

	terms := make([]string, len(ranked))
	for i, r := range ranked {
		terms[i] = r.Value
	}

	if data, err := json.Marshal(terms); err == nil {
		e.Cache.Set(key, data, e.TTL)
	}
	return terms, nil
}
