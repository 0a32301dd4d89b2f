package domain

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "watch url without www", url: "https://youtube.com/watch?v=abc123", wantID: "abc123", wantOK: true},
		{name: "short url", url: "https://youtu.be/dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "stops at ampersand", url: "https://www.youtube.com/watch?v=abc123&list=PL1", wantID: "abc123", wantOK: true},
		{name: "stops at hash", url: "https://youtu.be/abc123#t=30", wantID: "abc123", wantOK: true},
		{name: "v not first param", url: "https://www.youtube.com/watch?feature=share&v=xyz", wantID: "xyz", wantOK: true},
		{name: "surrounding whitespace", url: "  https://youtu.be/abc123 \n", wantID: "abc123", wantOK: true},
		{name: "case preserved", url: "https://youtu.be/AbC", wantID: "AbC", wantOK: true},
		{name: "other host", url: "https://vimeo.com/12345", wantOK: false},
		{name: "missing v param", url: "https://www.youtube.com/channel/UC123", wantOK: false},
		{name: "empty id", url: "https://youtu.be/", wantOK: false},
		{name: "empty string", url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok: want %v, got %v (id=%q)", tt.wantOK, ok, id)
			}
			if id != tt.wantID {
				t.Fatalf("id: want %q, got %q", tt.wantID, id)
			}
		})
	}
}

func TestExtractVideoID_ShortAndFullFormsMatch(t *testing.T) {
	a, okA := ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10")
	b, okB := ExtractVideoID("https://youtu.be/dQw4w9WgXcQ")
	if !okA || !okB {
		t.Fatalf("expected both urls to be valid")
	}
	if a != b {
		t.Fatalf("expected same id, got %q and %q", a, b)
	}
}

func TestIsVideoURL(t *testing.T) {
	cases := map[string]bool{
		"https://www.youtube.com/watch?v=abc": true,
		"http://youtu.be/abc":                 true,
		"youtube.com/watch?v=abc":             false,
		"https://example.com/watch?v=abc":     false,
		"https://youtube.com/":                false,
	}
	for url, want := range cases {
		if got := IsVideoURL(url); got != want {
			t.Fatalf("IsVideoURL(%q): want %v, got %v", url, want, got)
		}
	}
}

func TestEmbedAndThumbnailURL(t *testing.T) {
	embed, ok := EmbedURL("https://youtu.be/abc123")
	if !ok {
		t.Fatalf("expected embed url")
	}
	if embed != "https://www.youtube.com/embed/abc123?autoplay=1" {
		t.Fatalf("unexpected embed url %q", embed)
	}

	thumb, ok := ThumbnailURL("https://www.youtube.com/watch?v=abc123")
	if !ok {
		t.Fatalf("expected thumbnail url")
	}
	if thumb != "https://img.youtube.com/vi/abc123/default.jpg" {
		t.Fatalf("unexpected thumbnail url %q", thumb)
	}

	if _, ok := EmbedURL("not a url"); ok {
		t.Fatalf("expected no embed for malformed url")
	}
}

func TestContainsVideo(t *testing.T) {
	entries := []Entry{
		NewEntry("Imagine", "https://www.youtube.com/watch?v=abc"),
		NewEntry("Broken", "https://example.com"),
	}
	if !ContainsVideo(entries, "abc") {
		t.Fatalf("expected abc to be found")
	}
	if ContainsVideo(entries, "ABC") {
		t.Fatalf("id comparison must be case-sensitive")
	}
}
