package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEntry : une entrée relue viole les invariants de la collection.
var ErrInvalidEntry = errors.New("invalid entry")

// Entry est un élément de la playlist. Le format JSON est celui persisté
// sous la clé "songs".
type Entry struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Plays int    `json:"plays"`
}

// NewEntry normalise name/url et démarre le compteur à zéro.
func NewEntry(name, url string) Entry {
	return Entry{
		Name:  strings.TrimSpace(name),
		URL:   strings.TrimSpace(url),
		Plays: 0,
	}
}

// VideoID renvoie l'identifiant dérivé de l'URL (jamais persisté).
func (e Entry) VideoID() (string, bool) {
	return ExtractVideoID(e.URL)
}

// ContainsVideo indique si une entrée de la liste pointe déjà vers id.
func ContainsVideo(entries []Entry, id string) bool {
	for _, e := range entries {
		if got, ok := e.VideoID(); ok && got == id {
			return true
		}
	}
	return false
}

// CloneEntries copie la slice ; nil devient une liste vide.
func CloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ValidateEntries vérifie une collection relue depuis le stockage : nom et
// URL non vides et déjà normalisés, URL lisible, plays >= 0, identifiants
// uniques.
func ValidateEntries(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Name == "" || e.Name != strings.TrimSpace(e.Name) {
			return fmt.Errorf("%w: #%d: bad name %q", ErrInvalidEntry, i, e.Name)
		}
		if e.URL != strings.TrimSpace(e.URL) || !IsVideoURL(e.URL) {
			return fmt.Errorf("%w: #%d: bad url %q", ErrInvalidEntry, i, e.URL)
		}
		if e.Plays < 0 {
			return fmt.Errorf("%w: #%d: negative plays %d", ErrInvalidEntry, i, e.Plays)
		}
		id, ok := e.VideoID()
		if !ok {
			return fmt.Errorf("%w: #%d: no video id in %q", ErrInvalidEntry, i, e.URL)
		}
		if j, dup := seen[id]; dup {
			return fmt.Errorf("%w: #%d: video %q already at #%d", ErrInvalidEntry, i, id, j)
		}
		seen[id] = i
	}
	return nil
}
