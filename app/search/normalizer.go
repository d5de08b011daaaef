package search

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidQuery is the only hard failure of a search call.
var ErrInvalidQuery = errors.New("search query must be at least 2 characters")

var (
	nonWordPattern    = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize validates and canonicalizes a raw query: the length check runs
// against the trimmed original, then non-word characters are stripped,
// whitespace is collapsed and the result is lowercased.
func Normalize(raw string) (string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < 2 {
		return "", ErrInvalidQuery
	}

	s := nonWordPattern.ReplaceAllString(raw, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s)), nil
}

// Terms splits a normalized query into the terms tracked for popularity.
// Terms shorter than 3 characters are ignored.
func Terms(normalized string) []string {
	var terms []string
	for _, term := range strings.Fields(normalized) {
		if utf8.RuneCountInString(term) >= 3 {
			terms = append(terms, term)
		}
	}
	return terms
}
