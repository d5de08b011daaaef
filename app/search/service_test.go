package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"praxis/app/models"
	"praxis/core/cache"
	"praxis/core/emitter"
	"praxis/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubAdapter struct {
	entity  EntityType
	results []SearchResult
	err     error
	calls   int32
}

func (s *stubAdapter) Type() EntityType { return s.entity }

func (s *stubAdapter) Search(ctx context.Context, query string, opts AdapterOptions) ([]SearchResult, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection is a separate database; keep one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.SearchQuery{}, &models.SearchTerm{}))
	return db
}

func newTestService(t *testing.T, adapters ...EntityAdapter) *SearchService {
	t.Helper()

	db := newTestDB(t)
	log := logger.NewNopLogger()

	registry := NewRegistry()
	for _, a := range adapters {
		registry.Register(a)
	}

	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	suggestions := NewSuggestionEngine(db, store, log, time.Hour, 30)
	recorder := NewAnalyticsRecorder(db, log)

	return NewSearchService(emitter.New(), log, registry, store, suggestions, recorder,
		2*time.Second, 100, 5*time.Minute)
}

func stubResults(entity EntityType, n int, topRelevance float64) []SearchResult {
	results := make([]SearchResult, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range results {
		results[i] = SearchResult{
			Id:        uint(i + 1),
			Type:      entity,
			Title:     fmt.Sprintf("%s result %02d", entity, i+1),
			Relevance: topRelevance - float64(i),
			URL:       fmt.Sprintf("/app/%s/%d", entity, i+1),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return results
}

func TestSearchRejectsShortQuery(t *testing.T) {
	svc := newTestService(t, &stubAdapter{entity: EntityCases})

	_, err := svc.Search(context.Background(), SearchOptions{Query: "x"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSearchTotalsMatchPerEntityCounts(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 7, 50)},
		&stubAdapter{entity: EntityClients, results: stubResults(EntityClients, 4, 40)},
	)

	resp, err := svc.Search(context.Background(), SearchOptions{Query: "contract"})
	require.NoError(t, err)

	sum := 0
	for _, n := range resp.Stats.ResultsByEntity {
		sum += n
	}
	assert.Equal(t, 11, resp.Stats.TotalResults)
	assert.Equal(t, resp.Stats.TotalResults, sum)
	assert.Equal(t, 7, resp.Stats.ResultsByEntity[EntityCases])
	assert.Equal(t, 4, resp.Stats.ResultsByEntity[EntityClients])
}

func TestSearchReportsZeroCountForEmptyEntity(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 5, 50)},
		&stubAdapter{entity: EntityDocuments},
	)

	resp, err := svc.Search(context.Background(), SearchOptions{Query: "contract"})
	require.NoError(t, err)

	// Searched entities always appear in the stats, zero hits included.
	count, ok := resp.Stats.ResultsByEntity[EntityDocuments]
	assert.True(t, ok)
	assert.Equal(t, 0, count)
	assert.Equal(t, 5, resp.Stats.ResultsByEntity[EntityCases])
}

func TestSearchRelevanceOrderNonIncreasing(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 5, 30)},
		&stubAdapter{entity: EntityClients, results: stubResults(EntityClients, 5, 45)},
	)

	resp, err := svc.Search(context.Background(), SearchOptions{Query: "contract"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 10)

	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Relevance, resp.Results[i].Relevance)
	}
}

func TestSearchPaginationWindowsAreConsistent(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 30, 100)},
	)

	full, err := svc.Search(context.Background(), SearchOptions{Query: "contract", Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, full.Results, 20)

	page2, err := svc.Search(context.Background(), SearchOptions{Query: "contract", Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page2.Results, 10)

	assert.Equal(t, full.Results[10:20], page2.Results)
	assert.Equal(t, 30, page2.Stats.TotalResults)
}

func TestSearchPageBeyondEnd(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 5, 10)},
	)

	resp, err := svc.Search(context.Background(), SearchOptions{Query: "contract", Page: 4, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 5, resp.Stats.TotalResults)
}

func TestSearchEntitySelection(t *testing.T) {
	caseAdapter := &stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 3, 30)}
	clientAdapter := &stubAdapter{entity: EntityClients, results: stubResults(EntityClients, 3, 30)}
	svc := newTestService(t, caseAdapter, clientAdapter)

	resp, err := svc.Search(context.Background(), SearchOptions{
		Query:    "contract",
		Entities: []EntityType{EntityClients},
	})
	require.NoError(t, err)

	assert.Equal(t, int32(0), atomic.LoadInt32(&caseAdapter.calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&clientAdapter.calls))
	for _, r := range resp.Results {
		assert.Equal(t, EntityClients, r.Type)
	}
}

func TestSearchFaultIsolation(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{entity: EntityCases, err: errors.New("store offline")},
		&stubAdapter{entity: EntityClients, results: stubResults(EntityClients, 3, 30)},
	)

	resp, err := svc.Search(context.Background(), SearchOptions{Query: "contract"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Stats.TotalResults)
	assert.Equal(t, []EntityType{EntityCases}, resp.Stats.DegradedEntities)
	assert.NotContains(t, resp.Stats.ResultsByEntity, EntityCases)
}

func TestSearchFailedAdapterRetriesOnce(t *testing.T) {
	failing := &stubAdapter{entity: EntityCases, err: errors.New("timeout")}
	svc := newTestService(t, failing)

	_, err := svc.Search(context.Background(), SearchOptions{Query: "contract"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&failing.calls))
}

func TestSearchTitleSortAscending(t *testing.T) {
	svc := newTestService(t, &stubAdapter{entity: EntityCases, results: []SearchResult{
		{Id: 1, Type: EntityCases, Title: "zoning appeal", Relevance: 9},
		{Id: 2, Type: EntityCases, Title: "Acme merger", Relevance: 5},
		{Id: 3, Type: EntityCases, Title: "lease dispute", Relevance: 7},
	}})

	resp, err := svc.Search(context.Background(), SearchOptions{
		Query: "contract", SortBy: "title", SortOrder: "asc",
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, "Acme merger", resp.Results[0].Title)
	assert.Equal(t, "lease dispute", resp.Results[1].Title)
	assert.Equal(t, "zoning appeal", resp.Results[2].Title)
}

func TestSearchDateSortDescending(t *testing.T) {
	svc := newTestService(t, &stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 5, 10)})

	resp, err := svc.Search(context.Background(), SearchOptions{
		Query: "contract", SortBy: "date", SortOrder: "desc",
	})
	require.NoError(t, err)

	for i := 1; i < len(resp.Results); i++ {
		assert.False(t, resp.Results[i-1].Timestamp.Before(resp.Results[i].Timestamp))
	}
}

func TestSearchServesRepeatQueriesFromCache(t *testing.T) {
	adapter := &stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 3, 30)}
	svc := newTestService(t, adapter)

	opts := SearchOptions{Query: "contract dispute"}

	first, err := svc.Search(context.Background(), opts)
	require.NoError(t, err)

	second, err := svc.Search(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&adapter.calls), "second call should not reach the adapter")
	assert.Equal(t, first.Stats.TotalResults, second.Stats.TotalResults)
	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Id, second.Results[i].Id)
		assert.Equal(t, first.Results[i].Title, second.Results[i].Title)
	}
}

func TestSearchAppliesDefaultLimits(t *testing.T) {
	svc := newTestService(t, &stubAdapter{entity: EntityCases, results: stubResults(EntityCases, 50, 100)})

	resp, err := svc.Search(context.Background(), SearchOptions{Query: "contract"})
	require.NoError(t, err)
	assert.Len(t, resp.Results, defaultLimit)

	capped, err := svc.Search(context.Background(), SearchOptions{Query: "contract", Limit: 500})
	require.NoError(t, err)
	assert.Len(t, capped.Results, 50, "limit above the cap falls back to the maximum")
}
