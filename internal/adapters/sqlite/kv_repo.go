package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jukebox-go/jukebox/internal/metrics"
	"github.com/jukebox-go/jukebox/internal/ports"
)

const backendName = "sqlite"

// KVRepository implémente ports.KVStore sur la table kv.
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(ctx context.Context, key string) (value string, err error) {
	timer := metrics.NewStorageTimer(backendName, "get")
	defer func() { timer.Done(err) }()

	err = r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) (err error) {
	timer := metrics.NewStorageTimer(backendName, "set")
	defer func() { timer.Done(err) }()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO kv(key, value, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Delete est idempotent : supprimer une clé absente n'est pas une erreur.
func (r *KVRepository) Delete(ctx context.Context, key string) (err error) {
	timer := metrics.NewStorageTimer(backendName, "delete")
	defer func() { timer.Done(err) }()

	_, err = r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
