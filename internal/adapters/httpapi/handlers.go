package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/jukebox-go/jukebox/internal/app"
	"github.com/jukebox-go/jukebox/internal/buildinfo"
	"github.com/jukebox-go/jukebox/internal/httpjson"
)

const defaultRequestTimeout = 30 * time.Second

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("storage ping failed")
			httpjson.Write(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, buildinfo.Current())
}

func accessLogFn(r *http.Request, status, size int, duration time.Duration) {
	logger := hlog.FromRequest(r)
	logger.Info().
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("http")
}

// writeAppError traduit les erreurs du service en statut HTTP + code stable.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, app.ErrMissingFields), errors.Is(err, app.ErrInvalidURL), errors.Is(err, app.ErrInvalidTheme):
		status = http.StatusBadRequest
	case errors.Is(err, app.ErrDuplicateEntry):
		status = http.StatusConflict
	case errors.Is(err, app.ErrIndexOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrNotConfirmed):
		status = http.StatusPreconditionRequired
	}
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	}
	httpjson.WriteCodedError(w, status, app.CodeOf(err), err.Error())
}
