package worker

import (
	"testing"
	"time"

	"github.com/AndreyLitvishchenko/filmorate/config"
	"github.com/AndreyLitvishchenko/filmorate/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&config.LoggingConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "test-worker",
	})
	require.NoError(t, err)
	return log
}

func TestNewCleanupWorker(t *testing.T) {
	mockFunc := func() (int64, error) { return 0, nil }
	log := testLogger(t)

	workerCfg := config.WorkerConfig{
		CleanupInterval: "5m",
	}

	worker, err := NewCleanupWorker(&workerCfg, "test-worker", mockFunc, log)

	assert.NoError(t, err)
	assert.NotNil(t, worker)
	assert.Equal(t, "test-worker", worker.name)
	assert.NotNil(t, worker.cron)
	assert.NotNil(t, worker.cleanupFunc)
	assert.Equal(t, 5*time.Minute, worker.cleanupInterval)
	assert.NotNil(t, worker.logger)
}

func TestCleanupWorker_Start_Stop(t *testing.T) {
	mockFunc := func() (int64, error) { return 0, nil }
	log := testLogger(t)

	workerCfg := config.WorkerConfig{CleanupInterval: "5m"}
	worker, err := NewCleanupWorker(&workerCfg, "test-worker", mockFunc, log)
	require.NoError(t, err)

	err = worker.Start()
	assert.NoError(t, err)

	assert.True(t, worker.IsRunning())

	err = worker.Stop()
	assert.NoError(t, err)

	assert.False(t, worker.IsRunning())
}

func TestCleanupWorker_InvalidConfig(t *testing.T) {
	mockFunc := func() (int64, error) { return 0, nil }
	log := testLogger(t)

	workerCfg := config.WorkerConfig{
		CleanupInterval: "invalid-duration",
	}

	_, err := NewCleanupWorker(&workerCfg, "test-worker", mockFunc, log)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cleanup interval")
}

func TestCleanupWorker_EmptyConfig(t *testing.T) {
	mockFunc := func() (int64, error) { return 0, nil }
	log := testLogger(t)

	// Empty config uses defaults
	workerCfg := config.WorkerConfig{
		CleanupInterval: "",
	}

	worker, err := NewCleanupWorker(&workerCfg, "test-worker", mockFunc, log)

	assert.NoError(t, err)
	assert.NotNil(t, worker)
	assert.Equal(t, 5*time.Minute, worker.cleanupInterval)
}

func TestDurationToCronExpression(t *testing.T) {
	log := testLogger(t)
	worker, err := NewCleanupWorker(nil, "test-worker", func() (int64, error) { return 0, nil }, log)
	require.NoError(t, err)

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Minutes under an hour", 15 * time.Minute, "*/15 * * * *"},
		{"Whole hours", 2 * time.Hour, "0 */2 * * *"},
		{"Unsupported duration falls back", 90 * time.Second, "*/5 * * * *"},
		{"Sub-minute duration falls back", 30 * time.Second, "*/5 * * * *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, worker.durationToCronExpression(tt.duration))
		})
	}
}
