package rediskv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/jukebox-go/jukebox/internal/metrics"
	"github.com/jukebox-go/jukebox/internal/ports"
)

const backendName = "redis"

type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix est ajouté devant chaque clé (ex: "jukebox:").
	Prefix string
}

// Store implémente ports.KVStore sur Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// Open crée le client et vérifie la connexion.
func Open(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return New(client, opts.Prefix), nil
}

func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) Get(ctx context.Context, key string) (value string, err error) {
	timer := metrics.NewStorageTimer(backendName, "get")
	defer func() { timer.Done(err) }()

	value, err = s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrNotFound
	}
	return value, err
}

func (s *Store) Set(ctx context.Context, key, value string) (err error) {
	timer := metrics.NewStorageTimer(backendName, "set")
	defer func() { timer.Done(err) }()

	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) (err error) {
	timer := metrics.NewStorageTimer(backendName, "delete")
	defer func() { timer.Done(err) }()

	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
