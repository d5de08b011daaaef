package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRejectsShortQueries(t *testing.T) {
	_, err := Normalize("a")
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Normalize("   a   ")
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Normalize("")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestNormalizeAcceptsTwoCharacters(t *testing.T) {
	got, err := Normalize("ab")
	assert.NoError(t, err)
	assert.Equal(t, "ab", got)
}

func TestNormalizeStripsAndLowercases(t *testing.T) {
	got, err := Normalize("  Smith & Sons, LLC!  ")
	assert.NoError(t, err)
	assert.Equal(t, "smith sons llc", got)
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got, err := Normalize("contract \t\n   dispute")
	assert.NoError(t, err)
	assert.Equal(t, "contract dispute", got)
}

func TestTermsSkipsShortWords(t *testing.T) {
	terms := Terms("an ip case law")
	assert.Equal(t, []string{"case", "law"}, terms)
}

func TestTermsEmptyQuery(t *testing.T) {
	assert.Nil(t, Terms(""))
}
