package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

const (
	searchKeyPrefix  = "search:v1:"
	suggestKeyPrefix = "suggest:v1:"
	popularKeyPrefix = "popular:v1:"
)

// cacheKey derives the canonical cache key for one search call. Two calls
// that differ only in entity order or filter map iteration order produce the
// same key.
func cacheKey(query string, entities []EntityType, opts SearchOptions) string {
	names := make([]string, len(entities))
	for i, t := range entities {
		names[i] = string(t)
	}
	sort.Strings(names)

	filterKeys := make([]string, 0, len(opts.Filters))
	for k := range opts.Filters {
		filterKeys = append(filterKeys, k)
	}
	sort.Strings(filterKeys)

	var b strings.Builder
	b.WriteString(query)
	b.WriteString("|")
	b.WriteString(strings.Join(names, ","))
	b.WriteString("|")
	for _, k := range filterKeys {
		fmt.Fprintf(&b, "%s=%v;", k, opts.Filters[k])
	}
	fmt.Fprintf(&b, "|%s|%s|%d|%d|%d|%t",
		opts.SortBy, opts.SortOrder, opts.Page, opts.Limit, opts.UserId, opts.IncludeArchived)

	sum := sha256.Sum256([]byte(b.String()))
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}

// suggestKey derives the cache key for suggestions under one normalized query.
func suggestKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return suggestKeyPrefix + hex.EncodeToString(sum[:])
}

// popularKey is the single cache slot for the popular-terms list.
func popularKey() string {
	return popularKeyPrefix + "global"
}
