package database

import (
	"testing"
	"time"

	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("Start collects pool metrics immediately", func(t *testing.T) {
		db, _ := newMockDB(t)
		manager := &Manager{db: db, logger: logger.NewNoopLogger()}

		monitor := NewConnectionPoolMonitor(manager, logger.NewNoopLogger())
		require.NoError(t, monitor.Start(time.Hour))
		t.Cleanup(monitor.Stop)

		metrics := monitor.GetMetrics()
		assert.GreaterOrEqual(t, metrics.OpenConnections, 0)
		assert.GreaterOrEqual(t, metrics.MaxOpenConnections, 0)
	})

	t.Run("Metrics are zero before any collection", func(t *testing.T) {
		db, _ := newMockDB(t)
		manager := &Manager{db: db, logger: logger.NewNoopLogger()}

		monitor := NewConnectionPoolMonitor(manager, logger.NewNoopLogger())
		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	})

	t.Run("Stop halts the monitoring goroutine", func(t *testing.T) {
		db, _ := newMockDB(t)
		manager := &Manager{db: db, logger: logger.NewNoopLogger()}

		monitor := NewConnectionPoolMonitor(manager, logger.NewNoopLogger())
		require.NoError(t, monitor.Start(time.Millisecond))
		monitor.Stop()

		// The cached metrics stay readable after shutdown
		metrics := monitor.GetMetrics()
		assert.GreaterOrEqual(t, metrics.OpenConnections, 0)
	})
}

func TestConnectBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	t.Run("Backoff doubles per attempt", func(t *testing.T) {
		for attempt := 0; attempt < 4; attempt++ {
			expected := base * (1 << uint(attempt))
			got := connectBackoff(attempt, base)

			assert.GreaterOrEqual(t, got, expected)
			maxWithJitter := expected + time.Duration(float64(expected)*connectJitterFactor)
			assert.LessOrEqual(t, got, maxWithJitter)
		}
	})

	t.Run("Backoff is capped", func(t *testing.T) {
		got := connectBackoff(20, base)

		assert.GreaterOrEqual(t, got, maxConnectBackoff)
		maxWithJitter := maxConnectBackoff + time.Duration(float64(maxConnectBackoff)*connectJitterFactor)
		assert.LessOrEqual(t, got, maxWithJitter)
	})
}
