package storage

import (
	"context"
	"database/sql"
	"encoding/json"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) PostgresStore {
	return PostgresStore{db: db}
}

func (s PostgresStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(
		ctx,
		"CREATE TABLE IF NOT EXISTS kv_entries (key TEXT PRIMARY KEY, value JSONB NOT NULL)",
	)
	return err
}

func (s PostgresStore) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(
		ctx,
		"INSERT INTO kv_entries (key, value) VALUES ($1, $2) "+
			"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, raw,
	)
	return err
}

func (s PostgresStore) Load(ctx context.Context, key string, dest interface{}) error {
	var raw []byte
	err := s.db.QueryRowContext(
		ctx,
		"SELECT value FROM kv_entries WHERE key=$1",
		key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
