package jobs

import (
	"context"

	"praxis/app/search"
	"praxis/core/logger"
	"praxis/core/scheduler"
)

const (
	// Query history kept for 90 days; term rows expire with the 30 day
	// popularity window.
	historyRetentionDays = 90
	termRetentionDays    = 30
)

// SetupScheduler registers all scheduled jobs with the cron scheduler.
func SetupScheduler(searchModule *search.Module, log logger.Logger) *scheduler.CronScheduler {
	cronScheduler := scheduler.NewCronScheduler(log)

	pruneTask := &scheduler.CronTask{
		Name:        "search_analytics_prune",
		Description: "Remove search history and term rows past their retention windows",
		CronExpr:    "0 3 * * *", // Daily at 3:00 AM
		Handler: func(ctx context.Context) error {
			return searchModule.Service.Recorder.PruneHistory(historyRetentionDays, termRetentionDays)
		},
		Enabled: true,
	}
	if err := cronScheduler.RegisterTask(pruneTask); err != nil {
		log.Error("failed to register analytics prune job",
			logger.String("error", err.Error()))
	}

	warmTask := &scheduler.CronTask{
		Name:        "popular_terms_warm",
		Description: "Refresh the popular search terms cache",
		CronExpr:    "0 * * * *", // Hourly
		Handler: func(ctx context.Context) error {
			_, err := searchModule.Service.Suggestions.PopularTerms()
			return err
		},
		Enabled: true,
	}
	if err := cronScheduler.RegisterTask(warmTask); err != nil {
		log.Error("failed to register popular terms warm job",
			logger.String("error", err.Error()))
	}

	return cronScheduler
}
