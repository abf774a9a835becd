package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/matheusvbd/crudapi/internal/domain/port/persistence"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// maxConnectBackoff caps the delay between connection attempts
const maxConnectBackoff = 30 * time.Second

// connectJitterFactor adds randomness to backoff intervals to avoid
// thundering herd on mass reconnects
const connectJitterFactor = 0.2

// Manager manages the database connection and hands out unit-of-work
// instances bound to it
type Manager struct {
	config  *Config
	db      *gorm.DB
	logger  coreport.Logger
	monitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger) *Manager {
	return &Manager{
		config: config,
		logger: logger,
	}
}

// Connect establishes the database connection, retrying per configuration
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	var gormDB *gorm.DB
	var err error
	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			backoff := connectBackoff(attempt-1, m.config.RetryDelay)
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt":     attempt + 1,
				"of":          m.config.RetryAttempts,
				"retry_after": backoff.String(),
			})
			time.Sleep(backoff)
		}

		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.config.LogLevel),
		})
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
	})

	m.db = gormDB

	// Start connection pool monitoring
	m.monitor = NewConnectionPoolMonitor(m, m.logger)
	if err := m.monitor.Start(30 * time.Second); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{
			"error": err.Error(),
		})
	}

	return m.db, nil
}

// connectBackoff computes the delay before the next connection attempt,
// doubling per attempt with a jitter component, capped at maxConnectBackoff
func connectBackoff(attempt int, base time.Duration) time.Duration {
	backoff := base * (1 << uint(attempt))
	if backoff > maxConnectBackoff {
		backoff = maxConnectBackoff
	}

	if connectJitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * connectJitterFactor * (float64(time.Now().UnixNano()%100) / 100.0))
		backoff += jitter
	}

	return backoff
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// NewUnitOfWork creates a fresh unit of work for one request.
// Implements persistence.UnitOfWorkFactory.
func (m *Manager) NewUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.monitor != nil {
		m.monitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
