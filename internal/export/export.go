// Package export rend la playlist en fichier téléchargeable
// (canciones.json ou canciones.txt).
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jukebox-go/jukebox/internal/domain"
)

type Format string

const (
	// FormatJSON est la forme structurée, relisible par Parse.
	FormatJSON Format = "json"
	// FormatText : une ligne par entrée, numérotée à partir de 1.
	FormatText Format = "txt"
)

const baseFileName = "canciones"

var (
	// ErrEmpty : rien à exporter, l'appelant ne produit pas de fichier.
	ErrEmpty         = errors.New("playlist is empty")
	ErrUnknownFormat = errors.New("unknown export format")
)

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// ParseFormat accepte aussi les alias "structured"/"plain"/"text".
// Une chaîne vide donne FormatJSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json", "structured":
		return FormatJSON, nil
	case "txt", "text", "plain":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

func (f Format) FileName() string {
	return baseFileName + "." + string(f)
}

func Render(entries []domain.Entry, format Format) (File, error) {
	if len(entries) == 0 {
		return File{}, ErrEmpty
	}

	var body []byte
	switch format {
	case FormatJSON:
		b, err := renderJSON(entries)
		if err != nil {
			return File{}, err
		}
		body = b
	case FormatText:
		body = []byte(renderText(entries))
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return File{Name: format.FileName(), ContentType: format.ContentType(), Body: body}, nil
}

// Les URLs gardent leurs "&" tels quels (pas d'échappement HTML).
func renderJSON(entries []domain.Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func renderText(entries []domain.Entry) string {
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s - %s (Reproducciones: %d)", i+1, e.Name, e.URL, e.Plays))
	}
	return strings.Join(lines, "\n")
}

// Parse relit la forme structurée (export JSON ou valeur persistée "songs").
// Un tableau dont une entrée viole les invariants est rejeté en bloc
// (domain.ErrInvalidEntry).
func Parse(body []byte) ([]domain.Entry, error) {
	var entries []*domain.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, err
	}
	out := make([]domain.Entry, 0, len(entries))
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: #%d: null", domain.ErrInvalidEntry, i)
		}
		out = append(out, *e)
	}
	if err := domain.ValidateEntries(out); err != nil {
		return nil, err
	}
	return out, nil
}
