package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Adapter backed by a single kv table.
type SQLiteStore struct {
	db     *sql.DB
	ownsDB bool

	// Prepared statements
	loadValue *sql.Stmt
	saveValue *sql.Stmt
	removeKey *sql.Stmt
	listKeys  *sql.Stmt
}

// NewSQLiteStore creates a new SQLiteStore from an already-opened and migrated database.
// The caller keeps ownership of db.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

// OpenSQLiteStore opens (creating if needed) the database file at path,
// runs migrations and returns a store that closes the database on Close.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	runner := NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s, err := NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	s.ownsDB = true

	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.loadValue, err = s.db.Prepare(`SELECT value FROM kv WHERE key = ?`)
	if err != nil {
		return err
	}

	s.saveValue, err = s.db.Prepare(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}

	s.removeKey, err = s.db.Prepare(`DELETE FROM kv WHERE key = ?`)
	if err != nil {
		return err
	}

	s.listKeys, err = s.db.Prepare(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return err
	}

	return nil
}

// Load returns the value stored under key, or ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context, key string) (string, error) {
	var value string
	err := s.loadValue.QueryRowContext(ctx, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

// Save upserts value under key.
func (s *SQLiteStore) Save(ctx context.Context, key, value string) error {
	ts := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.saveValue.ExecContext(ctx, key, value, ts); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.removeKey.ExecContext(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.listKeys.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close releases all prepared statements, and the database if the store opened it.
func (s *SQLiteStore) Close() error {
	stmts := []*sql.Stmt{s.loadValue, s.saveValue, s.removeKey, s.listKeys}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
