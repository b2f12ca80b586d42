package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"rider/internal/entities"
)

// Ключи совпадают с ключами оригинального мобильного хранилища.
const (
	keyRider     = "riderUser"
	keyToken     = "riderToken"
	keyPushToken = "fcmToken"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL
);`

// Store — локальное key/value хранилище сессии райдера.
// Запись сессии и токен аутентификации живут под разными ключами,
// но изменяются всегда вместе, в одной транзакции.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("bootstrap session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveSession сохраняет запись райдера и токен атомарно: либо оба, либо ничего.
func (s *Store) SaveSession(ctx context.Context, rider entities.Rider, token string) error {
	raw, err := json.Marshal(toRecord(rider))
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := upsert(ctx, tx, keyRider, string(raw)); err != nil {
		return err
	}
	if err := upsert(ctx, tx, keyToken, token); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session tx: %w", err)
	}
	return nil
}

// SaveRider перезаписывает только запись райдера (нормализованную форму),
// не трогая токен.
func (s *Store) SaveRider(ctx context.Context, rider entities.Rider) error {
	raw, err := json.Marshal(toRecord(rider))
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.set(ctx, keyRider, string(raw))
}

// LoadSession читает запись райдера и токен. Если записи нет — ErrNotFound.
func (s *Store) LoadSession(ctx context.Context) (entities.Rider, string, error) {
	raw, err := s.get(ctx, keyRider)
	if err != nil {
		return entities.Rider{}, "", err
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return entities.Rider{}, "", fmt.Errorf("unmarshal session record: %w", err)
	}

	token, err := s.get(ctx, keyToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return entities.Rider{}, "", err
	}

	return toDomain(rec), token, nil
}

// Clear удаляет запись сессии и токен одной транзакцией.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE k IN (?, ?)`, keyRider, keyToken); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session tx: %w", err)
	}
	return nil
}

func (s *Store) SavePushToken(ctx context.Context, token string) error {
	return s.set(ctx, keyPushToken, token)
}

func (s *Store) LoadPushToken(ctx context.Context) (string, error) {
	return s.get(ctx, keyPushToken)
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func upsert(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}
