package db

import (
	"context"
	"errors"
	"sync"

	"github.com/fieldgridlabs/fieldgrid/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var ErrNotConnected = errors.New("database handle is not connected")

// Dialer opens the underlying gorm connection. Swapped in tests.
type Dialer func(ctx context.Context) (*gorm.DB, error)

// Handle owns the single shared store session. The first Acquire dials;
// success is cached for the process lifetime, failure is not, so a later
// request retries from scratch. The mutex guarantees at most one dial is in
// flight even when concurrent requests arrive before the first succeeds.
type Handle struct {
	mu   sync.Mutex
	conn *gorm.DB
	dial Dialer
	log  *zap.Logger
}

func NewHandle(cfg config.Config, log *zap.Logger) *Handle {
	return &Handle{
		dial: func(ctx context.Context) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
				Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
				TranslateError: true,
			})
		},
		log: log.Named("db"),
	}
}

// NewHandleWithDialer is for tests and alternate stores.
func NewHandleWithDialer(dial Dialer, log *zap.Logger) *Handle {
	return &Handle{dial: dial, log: log.Named("db")}
}

// Acquire returns the shared session, dialing on first use.
func (h *Handle) Acquire(ctx context.Context) (*gorm.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn != nil {
		return h.conn, nil
	}

	conn, err := h.dial(ctx)
	if err != nil {
		h.log.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	h.log.Info("database connection established")
	h.conn = conn
	return conn, nil
}

// Close releases the cached connection, if any.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn == nil {
		return nil
	}
	sqlDB, err := h.conn.DB()
	if err != nil {
		return err
	}
	h.conn = nil
	return sqlDB.Close()
}
