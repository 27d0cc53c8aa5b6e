package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single SQLite table.
// Use ":memory:" for a throwaway store, or a file path for durable state.
type SQLiteStore struct {
	db        *sql.DB
	mu        sync.RWMutex
	listeners []func()
	lastErr   error
	logger    *slog.Logger
}

// NewSQLiteStore opens (and if needed creates) the slot table at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, logger: slog.Default().With("component", "sqlite_store")}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Err returns the most recent write failure, if any
func (s *SQLiteStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// AddChangeListener registers fn to run after every successful write
func (s *SQLiteStore) AddChangeListener(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Lookup returns the raw slot value
func (s *SQLiteStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query slot %s: %w", key, err)
	}
	return value, true, nil
}

// Put upserts the raw slot value
func (s *SQLiteStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		s.lastErr = fmt.Errorf("upsert slot %s: %w", key, err)
		err = s.lastErr
	}
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, fn := range listeners {
		fn()
	}
	return nil
}

// Delete removes the slot
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", key); err != nil {
		s.lastErr = fmt.Errorf("delete slot %s: %w", key, err)
		return s.lastErr
	}
	return nil
}

func (s *SQLiteStore) read(key string) (string, bool) {
	value, ok, err := s.Lookup(context.Background(), key)
	if err != nil {
		s.logger.Warn("Slot read failed", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

func (s *SQLiteStore) write(key, value string) {
	if err := s.Put(context.Background(), key, value); err != nil {
		s.logger.Error("Slot write failed", "key", key, "error", err)
	}
}

// BoolWithFallback returns the stored bool or fallback
func (s *SQLiteStore) BoolWithFallback(key string, fallback bool) bool {
	raw, ok := s.read(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

// SetBool stores a bool
func (s *SQLiteStore) SetBool(key string, value bool) {
	s.write(key, strconv.FormatBool(value))
}

// FloatWithFallback returns the stored float or fallback
func (s *SQLiteStore) FloatWithFallback(key string, fallback float64) float64 {
	raw, ok := s.read(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// SetFloat stores a float
func (s *SQLiteStore) SetFloat(key string, value float64) {
	s.write(key, strconv.FormatFloat(value, 'g', -1, 64))
}

// IntWithFallback returns the stored int or fallback
func (s *SQLiteStore) IntWithFallback(key string, fallback int) int {
	raw, ok := s.read(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// SetInt stores an int
func (s *SQLiteStore) SetInt(key string, value int) {
	s.write(key, strconv.Itoa(value))
}

// StringWithFallback returns the stored string or fallback
func (s *SQLiteStore) StringWithFallback(key, fallback string) string {
	raw, ok := s.read(key)
	if !ok {
		return fallback
	}
	return raw
}

// SetString stores a string
func (s *SQLiteStore) SetString(key string, value string) {
	s.write(key, value)
}

// RemoveValue deletes the slot
func (s *SQLiteStore) RemoveValue(key string) {
	if err := s.Delete(context.Background(), key); err != nil {
		s.logger.Error("Slot delete failed", "key", key, "error", err)
	}
}
