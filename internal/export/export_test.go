package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/jukebox-go/jukebox/internal/domain"
)

func sample() []domain.Entry {
	return []domain.Entry{
		{Name: "Imagine", URL: "https://www.youtube.com/watch?v=abc", Plays: 2},
		{Name: "Hey Jude", URL: "https://youtu.be/def", Plays: 0},
	}
}

func TestRender_JSONRoundTrip(t *testing.T) {
	entries := sample()
	f, err := Render(entries, FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if f.Name != "canciones.json" {
		t.Fatalf("Name: want canciones.json, got %q", f.Name)
	}
	if f.ContentType != "application/json" {
		t.Fatalf("ContentType: got %q", f.ContentType)
	}

	got, err := Parse(f.Body)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("len: want %d, got %d", len(entries), len(got))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d: want %+v, got %+v", i, entries[i], got[i])
		}
	}
}

func TestRender_JSONIsIndented(t *testing.T) {
	f, err := Render(sample()[:1], FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "[\n  {\n    \"name\": \"Imagine\",\n    \"url\": \"https://www.youtube.com/watch?v=abc\",\n    \"plays\": 2\n  }\n]"
	if string(f.Body) != want {
		t.Fatalf("unexpected body:\n%s", f.Body)
	}
}

func TestRender_Text(t *testing.T) {
	f, err := Render(sample(), FormatText)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "1. Imagine - https://www.youtube.com/watch?v=abc (Reproducciones: 2)\n" +
		"2. Hey Jude - https://youtu.be/def (Reproducciones: 0)"
	if string(f.Body) != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, f.Body)
	}
	if f.Name != "canciones.txt" {
		t.Fatalf("Name: want canciones.txt, got %q", f.Name)
	}
}

func TestRender_EmptyPlaylist(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatText} {
		if _, err := Render(nil, format); !errors.Is(err, ErrEmpty) {
			t.Fatalf("%s: expected ErrEmpty, got %v", format, err)
		}
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render(sample(), Format("xml")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: "structured", want: FormatJSON},
		{in: "TXT", want: FormatText},
		{in: "plain", want: FormatText},
		{in: "csv", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Fatalf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseFormat(%q): want %q, got %q (err=%v)", tt.in, tt.want, got, err)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed input")
	}
	got, err := Parse([]byte("null"))
	if err != nil {
		t.Fatalf("Parse(null): %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParse_RejectsInvalidEntries(t *testing.T) {
	tests := map[string]string{
		"null element":   `[{"name":"a","url":"https://youtu.be/x","plays":0},null]`,
		"negative plays": `[{"name":"a","url":"https://youtu.be/x","plays":-4}]`,
		"empty name":     `[{"name":"","url":"https://youtu.be/x","plays":0}]`,
		"duplicate id":   `[{"name":"a","url":"https://youtu.be/x","plays":0},{"name":"b","url":"https://www.youtube.com/watch?v=x","plays":0}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); !errors.Is(err, domain.ErrInvalidEntry) {
				t.Fatalf("want ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestRender_JSONKeepsAmpersands(t *testing.T) {
	entries := []domain.Entry{{Name: "x", URL: "https://www.youtube.com/watch?v=abc&t=1", Plays: 0}}
	f, err := Render(entries, FormatJSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(f.Body), "v=abc&t=1") {
		t.Fatalf("expected raw ampersand in body:\n%s", f.Body)
	}
}
