package worker

import (
	"fmt"
	"time"

	"github.com/AndreyLitvishchenko/filmorate/config"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CleanupFunc defines the function signature for cleanup operations
type CleanupFunc func() (int64, error)

// CleanupWorker periodically sweeps the store for dangling reference edges
type CleanupWorker struct {
	name            string
	cron            *cron.Cron
	cleanupFunc     CleanupFunc
	cleanupInterval time.Duration
	logger          *logger.Logger
	entryID         cron.EntryID
}

// NewCleanupWorker creates a cron-scheduled worker with validation and defaults
func NewCleanupWorker(cfg *config.WorkerConfig, name string, cleanupFunc CleanupFunc, logger *logger.Logger) (*CleanupWorker, error) {
	// Set defaults for nil or empty config values
	var cleanupInterval time.Duration = 5 * time.Minute
	if cfg != nil && cfg.CleanupInterval != "" {
		duration, err := time.ParseDuration(cfg.CleanupInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid cleanup interval '%s': %v", cfg.CleanupInterval, err)
		}
		cleanupInterval = duration
	}

	return &CleanupWorker{
		name:            name,
		cron:            cron.New(),
		cleanupFunc:     cleanupFunc,
		cleanupInterval: cleanupInterval,
		logger:          logger.WithComponent("cleanup-worker"),
	}, nil
}

// Start schedules and begins the cleanup worker
func (w *CleanupWorker) Start() error {
	intervalStr := w.durationToCronExpression(w.cleanupInterval)
	w.logger.Info(fmt.Sprintf("Starting cleanup worker: %s (every %v)", w.name, w.cleanupInterval))

	entryID, err := w.cron.AddFunc(intervalStr, func() {
		w.logger.Debug("Executing cleanup operation for worker: " + w.name)

		removed, err := w.cleanupFunc()
		if err != nil {
			w.logger.Error("Cleanup operation failed for worker " + w.name + ": " + err.Error())
			return
		}
		if removed > 0 {
			w.logger.Info(fmt.Sprintf("Cleanup worker %s removed %d dangling rows", w.name, removed))
		}
	})

	if err != nil {
		w.logger.Error("Failed to schedule cleanup worker " + w.name + ": " + err.Error())
		return err
	}

	w.entryID = entryID
	w.cron.Start()

	w.logger.Info("Cleanup worker started successfully: " + w.name)

	return nil
}

// Stop gracefully shuts down the cleanup worker
func (w *CleanupWorker) Stop() error {
	w.logger.Info("Stopping cleanup worker: " + w.name)

	if w.entryID > 0 {
		w.cron.Remove(w.entryID)
	}

	ctx := w.cron.Stop()
	<-ctx.Done() // Wait for graceful shutdown

	w.logger.Info("Cleanup worker stopped: " + w.name)

	return nil
}

// IsRunning checks if the worker has active cron entries
func (w *CleanupWorker) IsRunning() bool {
	return len(w.cron.Entries()) > 0
}

// durationToCronExpression converts duration to cron format with fallback.
// Only whole-minute durations map onto a cron schedule; anything else
// takes the fallback instead of silently truncating.
func (w *CleanupWorker) durationToCronExpression(duration time.Duration) string {
	minutes := int(duration.Minutes())
	hours := int(duration.Hours())

	if duration%time.Minute == 0 {
		if hours > 0 && minutes%60 == 0 {
			return fmt.Sprintf("0 */%d * * *", hours)
		} else if minutes > 0 && minutes < 60 {
			return fmt.Sprintf("*/%d * * * *", minutes)
		}
	}

	w.logger.Warn(fmt.Sprintf("Unsupported cleanup interval %v, defaulting to 5 minutes", duration))
	return "*/5 * * * *"
}
