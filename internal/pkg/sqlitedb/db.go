package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
	"rider/pkg/logger"
	retrierconfig "rider/pkg/retrier"
	"rider/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// Open открывает локальную базу сессии. Файл создаётся при первом запуске.
func Open(ctx context.Context, log logger.Logger, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	// modernc/sqlite без ограничения соединений ловит SQLITE_BUSY под нагрузкой
	db.SetMaxOpenConns(1)

	dbLog := log.With(logger.NewField("path", path))

	if err := pingDatabase(ctx, dbLog, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session db connection: %w", err)
	}

	return db, nil
}

func pingDatabase(ctx context.Context, log logger.Logger, db *sql.DB) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return db.PingContext(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("session db connection failed after retries")
		return fmt.Errorf("failed to ping session db: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("session db opened")
	return nil
}
