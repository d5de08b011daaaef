package search

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"praxis/core/cache"
	"praxis/core/emitter"
	"praxis/core/logger"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// EventSearchQuery is emitted after every search call with the normalized
// query string as payload.
const EventSearchQuery = "search.query"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// SearchService fans a query out to every selected entity adapter, merges the
// per-entity results into one globally sorted, paginated response and caches
// the outcome.
type SearchService struct {
	Emitter        *emitter.Emitter
	Logger         logger.Logger
	Registry       *Registry
	Cache          cache.Store
	Suggestions    *SuggestionEngine
	Recorder       *AnalyticsRecorder
	AdapterTimeout time.Duration
	FetchCap       int
	CacheTTL       time.Duration

	collator   *collate.Collator
	collatorMu sync.Mutex
}

func NewSearchService(
	em *emitter.Emitter,
	log logger.Logger,
	registry *Registry,
	store cache.Store,
	suggestions *SuggestionEngine,
	recorder *AnalyticsRecorder,
	adapterTimeout time.Duration,
	fetchCap int,
	cacheTTL time.Duration,
) *SearchService {
	return &SearchService{
		Emitter:        em,
		Logger:         log,
		Registry:       registry,
		Cache:          store,
		Suggestions:    suggestions,
		Recorder:       recorder,
		AdapterTimeout: adapterTimeout,
		FetchCap:       fetchCap,
		CacheTTL:       cacheTTL,
		collator:       collate.New(language.Und, collate.IgnoreCase),
	}
}

// Search executes one unified search. An invalid query is the only hard
// failure; adapter errors degrade the affected entity to zero results and
// are reported in the stats.
func (s *SearchService) Search(ctx context.Context, opts SearchOptions) (*SearchResponse, error) {
	started := time.Now()

	normalized, err := Normalize(opts.Query)
	if err != nil {
		return nil, err
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	if opts.SortBy == "" {
		opts.SortBy = "relevance"
	}
	if opts.SortOrder == "" {
		opts.SortOrder = "desc"
	}

	entities := s.Registry.Resolve(opts.Entities)
	key := cacheKey(normalized, entities, opts)

	if data, ok := s.Cache.Get(key); ok {
		var cached SearchResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			cached.Stats.QueryTime = time.Since(started).Milliseconds()
			s.record(normalized, opts, cached.Stats.TotalResults)
			return &cached, nil
		}
		s.Logger.Warn("discarding undecodable cached search response",
			logger.String("key", key))
	}

	merged, degraded := s.fanOut(ctx, normalized, entities, opts)

	s.sortResults(merged, opts.SortBy, opts.SortOrder)

	// Every searched entity reports a count, zero included. Degraded
	// entities are listed separately and carry no count.
	byEntity := make(map[EntityType]int, len(entities))
	for _, entity := range entities {
		byEntity[entity] = 0
	}
	for _, entity := range degraded {
		delete(byEntity, entity)
	}
	for _, r := range merged {
		byEntity[r.Type]++
	}

	page := paginate(merged, opts.Page, opts.Limit)

	suggestions, err := s.Suggestions.Suggest(normalized)
	if err != nil {
		s.Logger.Warn("suggestions unavailable", logger.String("error", err.Error()))
		suggestions = []string{}
	}
	popular, err := s.Suggestions.PopularTerms()
	if err != nil {
		s.Logger.Warn("popular terms unavailable", logger.String("error", err.Error()))
		popular = []string{}
	}

	response := &SearchResponse{
		Results: page,
		Stats: SearchStats{
			TotalResults:     len(merged),
			ResultsByEntity:  byEntity,
			QueryTime:        time.Since(started).Milliseconds(),
			Suggestions:      suggestions,
			PopularTerms:     popular,
			DegradedEntities: degraded,
		},
	}

	if data, err := json.Marshal(response); err == nil {
		s.Cache.Set(key, data, s.CacheTTL)
	}

	s.record(normalized, opts, response.Stats.TotalResults)
	return response, nil
}

func (s *SearchService) record(normalized string, opts SearchOptions, resultsCount int) {
	s.Emitter.Emit(EventSearchQuery, normalized)

	var userId *uint
	if opts.UserId != 0 {
		id := opts.UserId
		userId = &id
	}
	go s.Recorder.Record(normalized, userId, resultsCount)
}

// fanOut queries every entity adapter concurrently. Each adapter gets its own
// timeout and one retry; a failed adapter contributes zero results and is
// listed as degraded. Results land in a fixed slot per entity so the merge
// order is deterministic.
func (s *SearchService) fanOut(ctx context.Context, query string, entities []EntityType, opts SearchOptions) ([]SearchResult, []EntityType) {
	adapterOpts := AdapterOptions{
		Filters:         opts.Filters,
		UserId:          opts.UserId,
		IncludeArchived: opts.IncludeArchived,
		Limit:           s.FetchCap,
	}

	perEntity := make([][]SearchResult, len(entities))
	failed := make([]bool, len(entities))

	var wg sync.WaitGroup
	for i, entity := range entities {
		adapter, ok := s.Registry.Get(entity)
		if !ok {
			continue
		}

		wg.Add(1)
		go func(i int, entity EntityType, adapter EntityAdapter) {
			defer wg.Done()

			results, err := s.searchWithRetry(ctx, adapter, query, adapterOpts)
			if err != nil {
				s.Logger.Error("entity search failed",
					logger.String("entity", string(entity)),
					logger.String("query", query),
					logger.String("error", err.Error()))
				failed[i] = true
				return
			}
			perEntity[i] = results
		}(i, entity, adapter)
	}
	wg.Wait()

	var merged []SearchResult
	var degraded []EntityType
	for i, entity := range entities {
		if failed[i] {
			degraded = append(degraded, entity)
			continue
		}
		merged = append(merged, perEntity[i]...)
	}
	return merged, degraded
}

func (s *SearchService) searchWithRetry(ctx context.Context, adapter EntityAdapter, query string, opts AdapterOptions) ([]SearchResult, error) {
	attempt := func() ([]SearchResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, s.AdapterTimeout)
		defer cancel()
		return adapter.Search(callCtx, query, opts)
	}

	results, err := attempt()
	if err == nil || ctx.Err() != nil {
		return results, err
	}
	return attempt()
}

// sortResults orders the merged result set globally. sort.SliceStable keeps
// the per-entity order for ties, so equal keys resolve by entity dispatch
// order and then by each adapter's own ordering.
func (s *SearchService) sortResults(results []SearchResult, sortBy, sortOrder string) {
	asc := sortOrder == "asc"

	switch sortBy {
	case "date":
		sort.SliceStable(results, func(i, j int) bool {
			if asc {
				return results[i].Timestamp.Before(results[j].Timestamp)
			}
			return results[i].Timestamp.After(results[j].Timestamp)
		})
	case "title":
		sort.SliceStable(results, func(i, j int) bool {
			s.collatorMu.Lock()
			cmp := s.collator.CompareString(results[i].Title, results[j].Title)
			s.collatorMu.Unlock()
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	default: // relevance
		sort.SliceStable(results, func(i, j int) bool {
			if asc {
				return results[i].Relevance < results[j].Relevance
			}
			return results[i].Relevance > results[j].Relevance
		})
	}
}

// paginate slices one page out of the globally sorted result set.
func paginate(results []SearchResult, page, limit int) []SearchResult {
	offset := (page - 1) * limit
	if offset >= len(results) {
		return []SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
