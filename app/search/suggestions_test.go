package search

import (
	"testing"
	"time"

	"praxis/app/models"
	"praxis/core/cache"
	"praxis/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestEngine(t *testing.T) (*SuggestionEngine, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	return NewSuggestionEngine(db, store, logger.NewNopLogger(), time.Hour, 30), db
}

func seedQueries(t *testing.T, db *gorm.DB, query string, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		require.NoError(t, db.Create(&models.SearchQuery{Query: query, ResultsCount: 1}).Error)
	}
}

func seedTerms(t *testing.T, db *gorm.DB, term string, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		require.NoError(t, db.Create(&models.SearchTerm{Term: term, CreatedAt: time.Now()}).Error)
	}
}

func TestSuggestRanksByFrequency(t *testing.T) {
	engine, db := newTestEngine(t)

	seedQueries(t, db, "contract dispute", 5)
	seedQueries(t, db, "contract review", 2)
	seedQueries(t, db, "estate planning", 9)

	suggestions, err := engine.Suggest("contract")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(suggestions), 2)
	assert.Equal(t, "contract dispute", suggestions[0])
	assert.Equal(t, "contract review", suggestions[1])
	assert.NotContains(t, suggestions, "estate planning")
}

func TestSuggestMergesTermsAndDeduplicates(t *testing.T) {
	engine, db := newTestEngine(t)

	seedQueries(t, db, "contract", 3)
	seedTerms(t, db, "contract", 4)
	seedTerms(t, db, "contractor", 2)

	suggestions, err := engine.Suggest("contract")
	require.NoError(t, err)

	occurrences := 0
	for _, s := range suggestions {
		if s == "contract" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "history and term hits for the same text collapse")
	assert.Contains(t, suggestions, "contractor")
}

func TestSuggestCapsAtTen(t *testing.T) {
	engine, db := newTestEngine(t)

	queries := []string{
		"lease a", "lease b", "lease c", "lease d", "lease e",
	}
	for _, q := range queries {
		seedQueries(t, db, q, 1)
	}
	terms := []string{
		"leaseback", "leasehold", "leasing", "leased", "leaser", "leases",
	}
	for _, term := range terms {
		seedTerms(t, db, term, 1)
	}

	suggestions, err := engine.Suggest("lease")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(suggestions), 10)
}

func TestSuggestRejectsShortInput(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Suggest("c")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSuggestUsesCache(t *testing.T) {
	engine, db := newTestEngine(t)

	seedQueries(t, db, "merger filing", 2)

	first, err := engine.Suggest("merger")
	require.NoError(t, err)
	require.Contains(t, first, "merger filing")

	// New rows are invisible until the cached entry expires.
	seedQueries(t, db, "merger review", 10)

	second, err := engine.Suggest("merger")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPopularTermsWindow(t *testing.T) {
	engine, db := newTestEngine(t)

	seedTerms(t, db, "contract", 5)
	seedTerms(t, db, "estate", 2)
	require.NoError(t, db.Create(&models.SearchTerm{
		Term:      "ancient",
		CreatedAt: time.Now().AddDate(0, 0, -60),
	}).Error)

	terms, err := engine.PopularTerms()
	require.NoError(t, err)

	require.Len(t, terms, 2)
	assert.Equal(t, "contract", terms[0])
	assert.Equal(t, "estate", terms[1])
	assert.NotContains(t, terms, "ancient")
}
