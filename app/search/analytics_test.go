package search

import (
	"testing"
	"time"

	"praxis/app/models"
	"praxis/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPersistsQueryAndTerms(t *testing.T) {
	db := newTestDB(t)
	recorder := NewAnalyticsRecorder(db, logger.NewNopLogger())

	userId := uint(7)
	recorder.Record("Contract Dispute in IP", &userId, 12)

	var query models.SearchQuery
	require.NoError(t, db.First(&query).Error)
	assert.Equal(t, "contract dispute in ip", query.Query)
	assert.Equal(t, 12, query.ResultsCount)
	require.NotNil(t, query.UserId)
	assert.Equal(t, uint(7), *query.UserId)

	// "in" and "ip" are below the term length threshold
	var terms []models.SearchTerm
	require.NoError(t, db.Order("id").Find(&terms).Error)
	require.Len(t, terms, 2)
	assert.Equal(t, "contract", terms[0].Term)
	assert.Equal(t, "dispute", terms[1].Term)
}

func TestRecordSkipsInvalidQueries(t *testing.T) {
	db := newTestDB(t)
	recorder := NewAnalyticsRecorder(db, logger.NewNopLogger())

	recorder.Record("x", nil, 0)

	var count int64
	require.NoError(t, db.Model(&models.SearchQuery{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordAnonymousUser(t *testing.T) {
	db := newTestDB(t)
	recorder := NewAnalyticsRecorder(db, logger.NewNopLogger())

	recorder.Record("estate planning", nil, 3)

	var query models.SearchQuery
	require.NoError(t, db.First(&query).Error)
	assert.Nil(t, query.UserId)
}

func TestPruneHistoryRemovesOldRows(t *testing.T) {
	db := newTestDB(t)
	recorder := NewAnalyticsRecorder(db, logger.NewNopLogger())

	old := time.Now().AddDate(0, 0, -120)
	recent := time.Now().AddDate(0, 0, -1)

	require.NoError(t, db.Create(&models.SearchQuery{Query: "stale", CreatedAt: old}).Error)
	require.NoError(t, db.Create(&models.SearchQuery{Query: "fresh", CreatedAt: recent}).Error)
	require.NoError(t, db.Create(&models.SearchTerm{Term: "stale", CreatedAt: old}).Error)
	require.NoError(t, db.Create(&models.SearchTerm{Term: "fresh", CreatedAt: recent}).Error)

	require.NoError(t, recorder.PruneHistory(90, 30))

	var queries []models.SearchQuery
	require.NoError(t, db.Find(&queries).Error)
	require.Len(t, queries, 1)
	assert.Equal(t, "fresh", queries[0].Query)

	var terms []models.SearchTerm
	require.NoError(t, db.Find(&terms).Error)
	require.Len(t, terms, 1)
	assert.Equal(t, "fresh", terms[0].Term)
}
