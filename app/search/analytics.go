package search

import (
	"time"

	"praxis/app/models"
	"praxis/core/logger"

	"gorm.io/gorm"
)

// AnalyticsRecorder persists the query history and the decomposed search
// terms that feed suggestions and popular-term rankings.
type AnalyticsRecorder struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAnalyticsRecorder(db *gorm.DB, log logger.Logger) *AnalyticsRecorder {
	return &AnalyticsRecorder{DB: db, Logger: log}
}

// Record stores one executed query and its individual terms. Failures are
// logged and swallowed; analytics never affects the search path.
func (r *AnalyticsRecorder) Record(query string, userId *uint, resultsCount int) {
	normalized, err := Normalize(query)
	if err != nil {
		return
	}

	entry := models.SearchQuery{
		Query:        normalized,
		UserId:       userId,
		ResultsCount: resultsCount,
	}
	if err := r.DB.Create(&entry).Error; err != nil {
		r.Logger.Error("failed to record search query",
			logger.String("query", normalized),
			logger.String("error", err.Error()))
		return
	}

	for _, term := range Terms(normalized) {
		record := models.SearchTerm{
			Term:   term,
			UserId: userId,
		}
		if err := r.DB.Create(&record).Error; err != nil {
			r.Logger.Error("failed to record search term",
				logger.String("term", term),
				logger.String("error", err.Error()))
		}
	}
}

// PruneHistory removes query history older than the retention window and
// term rows that no longer contribute to popular-term rankings.
func (r *AnalyticsRecorder) PruneHistory(historyDays, termDays int) error {
	queryCutoff := time.Now().AddDate(0, 0, -historyDays)
	if err := r.DB.Where("created_at < ?", queryCutoff).
		Delete(&models.SearchQuery{}).Error; err != nil {
		return err
	}

	termCutoff := time.Now().AddDate(0, 0, -termDays)
	return r.DB.Where("created_at < ?", termCutoff).
		Delete(&models.SearchTerm{}).Error
}
