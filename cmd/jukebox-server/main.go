package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jukebox-go/jukebox/internal/adapters/httpapi"
	"github.com/jukebox-go/jukebox/internal/adapters/memorybus"
	"github.com/jukebox-go/jukebox/internal/adapters/memorykv"
	"github.com/jukebox-go/jukebox/internal/adapters/rediskv"
	"github.com/jukebox-go/jukebox/internal/adapters/sqlite"
	"github.com/jukebox-go/jukebox/internal/app"
	"github.com/jukebox-go/jukebox/internal/buildinfo"
	"github.com/jukebox-go/jukebox/internal/config"
	"github.com/jukebox-go/jukebox/internal/ports"
)

func main() {
	def := config.Load()
	addr := flag.String("addr", def.Addr, "Adresse d'écoute (ex: 127.0.0.1:8080)")
	storage := flag.String("storage", string(def.Storage), "Backend de stockage: sqlite, redis ou memory")
	dbPath := flag.String("db", def.DBPath, "Chemin SQLite (ex: jukebox.db)")
	redisAddr := flag.String("redis", def.RedisAddr, "Adresse Redis (si -storage=redis)")
	logLevel := flag.String("log-level", def.LogLevel, "Niveau de log (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("app", "jukebox-server").Logger()
	log.Logger = logger

	logger.Info().Str("build", buildinfo.Current().String()).Str("storage", *storage).Msg("starting")

	cfg := def
	cfg.Storage = config.StorageKind(*storage)
	cfg.DBPath = *dbPath
	cfg.RedisAddr = *redisAddr

	ctx := context.Background()
	kv, ping, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage")
	}
	defer closeStore()

	bus := memorybus.New()
	defer bus.Close()

	playlist := app.NewPlaylistService(logger.With().Str("component", "playlist").Logger(), kv, app.ContextConfirmer{}, bus)
	if _, err := playlist.Restore(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to restore playlist")
	}
	theme := app.NewThemeService(logger.With().Str("component", "theme").Logger(), kv, bus)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpapi.NewServer(logger, playlist, theme, bus, ping)
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", *addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server crashed")
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	logger.Info().Msg("bye")
}

// openStore choisit le backend clé/valeur ; ping sert au healthcheck.
func openStore(ctx context.Context, cfg config.Config) (ports.KVStore, func(context.Context) error, func(), error) {
	switch cfg.Storage {
	case config.StorageSQLite, "":
		db, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqlite.NewKVRepository(db.SQL), db.Ping, func() { _ = db.Close() }, nil
	case config.StorageRedis:
		s, err := rediskv.Open(ctx, rediskv.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s.Ping, func() { _ = s.Close() }, nil
	case config.StorageMemory:
		return memorykv.New(), nil, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
