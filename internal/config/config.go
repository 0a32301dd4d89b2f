package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type StorageKind string

const (
	StorageSQLite StorageKind = "sqlite"
	StorageRedis  StorageKind = "redis"
	StorageMemory StorageKind = "memory"
)

type Config struct {
	Addr     string
	Storage  StorageKind
	DBPath   string
	LogLevel string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Load lit un éventuel fichier .env (sans écraser l'environnement) puis
// renvoie Default().
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return Default()
}

func Default() Config {
	return Config{
		Addr:          envOr("JUKEBOX_ADDR", "127.0.0.1:8080"),
		Storage:       StorageKind(envOr("JUKEBOX_STORAGE", string(StorageSQLite))),
		DBPath:        envOr("JUKEBOX_DB_PATH", "jukebox.db"),
		LogLevel:      envOr("JUKEBOX_LOG_LEVEL", "info"),
		RedisAddr:     envOr("JUKEBOX_REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("JUKEBOX_REDIS_PASSWORD"),
		RedisDB:       envIntOr("JUKEBOX_REDIS_DB", 0),
		RedisPrefix:   envOr("JUKEBOX_REDIS_PREFIX", "jukebox:"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
