package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/jukebox-go/jukebox/internal/app"
	"github.com/jukebox-go/jukebox/internal/ports"
)

type Server struct {
	logger   zerolog.Logger
	playlist *app.PlaylistService
	theme    *app.ThemeService
	bus      ports.EventBus
	// ping est optionnel : vérifie le backend de stockage pour /health.
	ping func(ctx context.Context) error
}

func NewServer(logger zerolog.Logger, playlist *app.PlaylistService, theme *app.ThemeService, bus ports.EventBus, ping func(ctx context.Context) error) *Server {
	return &Server{logger: logger, playlist: playlist, theme: theme, bus: bus, ping: ping}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.RequestIDHandler("request_id", "Request-Id"))
	r.Use(hlog.RemoteAddrHandler("remote_ip"))
	r.Use(hlog.UserAgentHandler("user_agent"))
	r.Use(hlog.AccessHandler(accessLogFn))
	r.Use(Metrics(DefaultMetricsConfig()))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// SSE : pas de timeout sur le flux.
		r.Get("/events", s.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(defaultRequestTimeout))

			r.Get("/health", s.handleHealth)
			r.Get("/version", s.handleVersion)
			r.Get("/openapi.json", s.handleOpenAPI)

			if s.playlist != nil {
				NewSongsHandler(s.playlist).Routes(r)
				NewExportHandler(s.playlist).Routes(r)
			}
			if s.theme != nil {
				NewThemeHandler(s.theme).Routes(r)
			}
		})
	})

	return r
}
