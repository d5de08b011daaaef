package scheduler

import (
	"context"
	"fmt"
	"sync"

	"praxis/core/logger"

	"github.com/robfig/cron/v3"
)

// CronTask describes one scheduled job.
type CronTask struct {
	Name        string
	Description string
	CronExpr    string
	Handler     func(ctx context.Context) error
	Enabled     bool
}

// CronScheduler runs registered tasks on cron schedules.
type CronScheduler struct {
	cron   *cron.Cron
	logger logger.Logger

	mu    sync.Mutex
	tasks map[string]*CronTask
}

// NewCronScheduler creates a stopped scheduler.
func NewCronScheduler(log logger.Logger) *CronScheduler {
	return &CronScheduler{
		cron:   cron.New(),
		logger: log,
		tasks:  make(map[string]*CronTask),
	}
}

// RegisterTask adds a task to the schedule. Disabled tasks are recorded but
// never run.
func (s *CronScheduler) RegisterTask(task *CronTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.Name]; exists {
		return fmt.Errorf("task already registered: %s", task.Name)
	}
	s.tasks[task.Name] = task

	if !task.Enabled {
		return nil
	}

	_, err := s.cron.AddFunc(task.CronExpr, func() {
		if err := task.Handler(context.Background()); err != nil {
			s.logger.Error("scheduled task failed",
				logger.String("task", task.Name),
				logger.String("error", err.Error()))
			return
		}
		s.logger.Debug("scheduled task completed", logger.String("task", task.Name))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule task %s: %w", task.Name, err)
	}

	return nil
}

// Start begins executing scheduled tasks.
func (s *CronScheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
