package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jukebox-go/jukebox/internal/domain"
	"github.com/jukebox-go/jukebox/internal/export"
	"github.com/jukebox-go/jukebox/internal/metrics"
	"github.com/jukebox-go/jukebox/internal/ports"
)

const (
	KeySongs = "songs"

	TopicPlaylistChanged = "playlist.changed"
	TopicPlayerOpen      = "player.open"
)

// PlaylistService possède la collection. Chaque mutation recalcule la liste
// complète, la persiste sous KeySongs, puis seulement la remplace en mémoire.
// mu sérialise les opérations (une seule écriture à la fois).
type PlaylistService struct {
	logger  zerolog.Logger
	store   ports.KVStore
	confirm ports.Confirmer
	bus     ports.EventBus

	mu      sync.Mutex
	entries []domain.Entry
}

// NewPlaylistService : bus est optionnel ; confirm nil refuse toute
// opération destructive.
func NewPlaylistService(logger zerolog.Logger, store ports.KVStore, confirm ports.Confirmer, bus ports.EventBus) *PlaylistService {
	if confirm == nil {
		confirm = NeverConfirm
	}
	return &PlaylistService{
		logger:  logger,
		store:   store,
		confirm: confirm,
		bus:     bus,
		entries: []domain.Entry{},
	}
}

// PlayResult est renvoyé par RecordPlay : la collection à jour et de quoi
// ouvrir le lecteur. EmbedURL est vide si l'URL stockée n'est pas lisible.
type PlayResult struct {
	Songs    []domain.Entry `json:"songs"`
	Index    int            `json:"index"`
	URL      string         `json:"url"`
	EmbedURL string         `json:"embedUrl,omitempty"`
}

type playlistChangedEvent struct {
	Songs []domain.Entry `json:"songs"`
}

type playerOpenEvent struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

// Restore charge la liste persistée au démarrage. Clé absente ou contenu
// illisible -> liste vide ; l'échec de parsing est journalisé, pas renvoyé.
func (s *PlaylistService) Restore(ctx context.Context) ([]domain.Entry, error) {
	entries := []domain.Entry{}

	raw, err := s.store.Get(ctx, KeySongs)
	switch {
	case errors.Is(err, ports.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("restore playlist: %w", err)
	default:
		parsed, perr := export.Parse([]byte(raw))
		if perr != nil {
			// Limitation connue : les données corrompues sont perdues.
			metrics.RestoreParseFailuresTotal.Inc()
			s.logger.Warn().Err(perr).Str("code", CodePersistenceParseFailure).Int("bytes", len(raw)).Msg("persisted playlist unreadable, starting empty")
		} else {
			entries = parsed
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	metrics.PlaylistSize.Set(float64(len(entries)))
	s.logger.Info().Int("songs", len(entries)).Msg("playlist restored")
	return domain.CloneEntries(entries), nil
}

// List renvoie une copie de la collection, dans l'ordre de stockage.
func (s *PlaylistService) List() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneEntries(s.entries)
}

// View calcule la vue dérivée (filtre, tri, page) sur la collection courante.
func (s *PlaylistService) View(q domain.ViewQuery) domain.View {
	return domain.BuildView(s.List(), q)
}

// Add ajoute une entrée en fin de liste. L'ordre de stockage est toujours
// l'ordre d'insertion ; le tri par lectures reste l'affaire de la vue.
func (s *PlaylistService) Add(ctx context.Context, name, url string) ([]domain.Entry, error) {
	entry := domain.NewEntry(name, url)
	if entry.Name == "" || entry.URL == "" {
		return nil, s.rejectAdd(coded(CodeMissingFields, ErrMissingFields))
	}
	id, ok := entry.VideoID()
	if !ok || !domain.IsVideoURL(entry.URL) {
		return nil, s.rejectAdd(coded(CodeInvalidURL, ErrInvalidURL))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.ContainsVideo(s.entries, id) {
		return nil, s.rejectAdd(coded(CodeDuplicateEntry, ErrDuplicateEntry))
	}

	next := append(domain.CloneEntries(s.entries), entry)
	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	metrics.SongsAddedTotal.Inc()
	s.logger.Info().Str("name", entry.Name).Str("video_id", id).Int("songs", len(next)).Msg("song added")
	return domain.CloneEntries(next), nil
}

// RecordPlay incrémente plays à la position index de la collection non
// filtrée et publie player.open pour que l'interface ouvre le lecteur.
func (s *PlaylistService) RecordPlay(ctx context.Context, index int) (PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndexLocked(index); err != nil {
		return PlayResult{}, err
	}

	next := domain.CloneEntries(s.entries)
	next[index].Plays++
	if err := s.commitLocked(ctx, next); err != nil {
		return PlayResult{}, err
	}
	metrics.PlaysTotal.Inc()

	entry := next[index]
	embed, ok := domain.EmbedURL(entry.URL)
	if !ok {
		s.logger.Warn().Int("index", index).Str("url", entry.URL).Msg("no playable embed for stored url")
	}
	s.publish(TopicPlayerOpen, playerOpenEvent{Index: index, Name: entry.Name, URL: entry.URL, EmbedURL: embed})

	return PlayResult{
		Songs:    domain.CloneEntries(next),
		Index:    index,
		URL:      entry.URL,
		EmbedURL: embed,
	}, nil
}

// Delete retire l'entrée à la position index après confirmation.
// La confirmation est modale : le verrou est tenu pendant la question.
func (s *PlaylistService) Delete(ctx context.Context, index int) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndexLocked(index); err != nil {
		return nil, err
	}
	name := s.entries[index].Name
	if !s.confirm.Confirm(ctx, fmt.Sprintf("Delete %q?", name)) {
		return nil, coded(CodeNotConfirmed, ErrNotConfirmed)
	}

	next := make([]domain.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:index]...)
	next = append(next, s.entries[index+1:]...)
	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	s.logger.Info().Str("name", name).Int("index", index).Msg("song deleted")
	return domain.CloneEntries(next), nil
}

// ClearAll vide la liste et supprime l'enregistrement persisté (la clé
// disparaît, ce n'est pas une liste vide stockée).
func (s *PlaylistService) ClearAll(ctx context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.confirm.Confirm(ctx, "Delete the whole playlist?") {
		return nil, coded(CodeNotConfirmed, ErrNotConfirmed)
	}
	if err := s.store.Delete(ctx, KeySongs); err != nil {
		return nil, fmt.Errorf("clear playlist: %w", err)
	}
	removed := len(s.entries)
	s.entries = []domain.Entry{}
	metrics.PlaylistSize.Set(0)
	s.publish(TopicPlaylistChanged, playlistChangedEvent{Songs: []domain.Entry{}})
	s.logger.Info().Int("removed", removed).Msg("playlist cleared")
	return []domain.Entry{}, nil
}

// Export rend la collection courante ; export.ErrEmpty si elle est vide.
func (s *PlaylistService) Export(format export.Format) (export.File, error) {
	f, err := export.Render(s.List(), format)
	if err != nil {
		return export.File{}, err
	}
	metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	return f, nil
}

func (s *PlaylistService) checkIndexLocked(index int) error {
	if index < 0 || index >= len(s.entries) {
		return &CodedError{
			Code:    CodeIndexOutOfRange,
			Message: fmt.Sprintf("index %d (playlist has %d songs)", index, len(s.entries)),
			Err:     ErrIndexOutOfRange,
		}
	}
	return nil
}

// commitLocked persiste la collection entière puis la remplace en mémoire.
// En cas d'échec d'écriture, l'état en mémoire reste inchangé.
func (s *PlaylistService) commitLocked(ctx context.Context, next []domain.Entry) error {
	b, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, KeySongs, string(b)); err != nil {
		return fmt.Errorf("persist playlist: %w", err)
	}
	s.entries = next
	metrics.PlaylistSize.Set(float64(len(next)))
	s.publish(TopicPlaylistChanged, playlistChangedEvent{Songs: next})
	return nil
}

func (s *PlaylistService) rejectAdd(err *CodedError) error {
	metrics.AddRejectedTotal.WithLabelValues(err.Code).Inc()
	s.logger.Debug().Str("code", err.Code).Msg("add rejected")
	return err
}

func (s *PlaylistService) publish(topic string, payload any) {
	if err := publishJSON(s.bus, topic, payload); err != nil {
		s.logger.Error().Err(err).Str("topic", topic).Msg("event not published")
	}
}
