package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jukebox-go/jukebox/internal/domain"
	"github.com/jukebox-go/jukebox/internal/ports"
)

const (
	KeyTheme = "theme"

	TopicThemeChanged = "theme.changed"
)

type themeChangedEvent struct {
	Theme domain.Theme `json:"theme"`
}

type ThemeService struct {
	logger zerolog.Logger
	store  ports.KVStore
	bus    ports.EventBus
}

func NewThemeService(logger zerolog.Logger, store ports.KVStore, bus ports.EventBus) *ThemeService {
	return &ThemeService{logger: logger, store: store, bus: bus}
}

// Get renvoie le thème persisté ; absent ou inconnu -> clair.
func (s *ThemeService) Get(ctx context.Context) (domain.Theme, error) {
	raw, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return domain.ThemeLight, nil
		}
		return "", fmt.Errorf("read theme: %w", err)
	}
	return domain.ParseTheme(raw), nil
}

func (s *ThemeService) Set(ctx context.Context, theme domain.Theme) (domain.Theme, error) {
	if !theme.Valid() {
		return "", &CodedError{Code: CodeInvalidTheme, Message: fmt.Sprintf("%q", theme), Err: ErrInvalidTheme}
	}
	if err := s.store.Set(ctx, KeyTheme, string(theme)); err != nil {
		return "", fmt.Errorf("persist theme: %w", err)
	}
	if err := publishJSON(s.bus, TopicThemeChanged, themeChangedEvent{Theme: theme}); err != nil {
		s.logger.Error().Err(err).Msg("theme event not published")
	}
	return theme, nil
}

func (s *ThemeService) Toggle(ctx context.Context) (domain.Theme, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return s.Set(ctx, current.Toggle())
}
