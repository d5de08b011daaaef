package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyIgnoresEntityOrder(t *testing.T) {
	opts := SearchOptions{Page: 1, Limit: 20}

	a := cacheKey("contract", []EntityType{EntityCases, EntityClients}, opts)
	b := cacheKey("contract", []EntityType{EntityClients, EntityCases}, opts)

	assert.Equal(t, a, b)
}

func TestCacheKeyIgnoresFilterOrder(t *testing.T) {
	entities := []EntityType{EntityCases}

	a := cacheKey("contract", entities, SearchOptions{
		Filters: map[string]any{"status": "open", "priority": "high"},
	})
	b := cacheKey("contract", entities, SearchOptions{
		Filters: map[string]any{"priority": "high", "status": "open"},
	})

	assert.Equal(t, a, b)
}

func TestCacheKeyDistinguishesOptions(t *testing.T) {
	entities := []EntityType{EntityCases}
	base := SearchOptions{Page: 1, Limit: 20, SortBy: "relevance", SortOrder: "desc"}

	baseKey := cacheKey("contract", entities, base)

	variants := []SearchOptions{
		{Page: 2, Limit: 20, SortBy: "relevance", SortOrder: "desc"},
		{Page: 1, Limit: 50, SortBy: "relevance", SortOrder: "desc"},
		{Page: 1, Limit: 20, SortBy: "date", SortOrder: "desc"},
		{Page: 1, Limit: 20, SortBy: "relevance", SortOrder: "asc"},
		{Page: 1, Limit: 20, SortBy: "relevance", SortOrder: "desc", UserId: 7},
		{Page: 1, Limit: 20, SortBy: "relevance", SortOrder: "desc", IncludeArchived: true},
		{Page: 1, Limit: 20, SortBy: "relevance", SortOrder: "desc", Filters: map[string]any{"status": "open"}},
	}

	seen := map[string]bool{baseKey: true}
	for _, v := range variants {
		key := cacheKey("contract", entities, v)
		assert.False(t, seen[key], "options %+v should produce a distinct key", v)
		seen[key] = true
	}

	assert.NotEqual(t, baseKey, cacheKey("dispute", entities, base))
}

func TestCacheKeyNamespaces(t *testing.T) {
	assert.True(t, strings.HasPrefix(cacheKey("q1", nil, SearchOptions{}), "search:v1:"))
	assert.True(t, strings.HasPrefix(suggestKey("q1"), "suggest:v1:"))
	assert.Equal(t, "popular:v1:global", popularKey())
}
