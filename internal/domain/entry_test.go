package domain

import (
	"errors"
	"testing"
)

func TestValidateEntries(t *testing.T) {
	ok := Entry{Name: "Imagine", URL: "https://youtu.be/a", Plays: 3}

	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{name: "empty", entries: nil},
		{name: "valid", entries: []Entry{ok, {Name: "Hey Jude", URL: "https://www.youtube.com/watch?v=b"}}},
		{name: "negative plays", entries: []Entry{{Name: "a", URL: "https://youtu.be/x", Plays: -4}}, wantErr: true},
		{name: "empty name", entries: []Entry{{Name: "", URL: "https://youtu.be/x"}}, wantErr: true},
		{name: "untrimmed name", entries: []Entry{{Name: " a ", URL: "https://youtu.be/x"}}, wantErr: true},
		{name: "untrimmed url", entries: []Entry{{Name: "a", URL: " https://youtu.be/x"}}, wantErr: true},
		{name: "not a video url", entries: []Entry{{Name: "a", URL: "https://example.com/x"}}, wantErr: true},
		{name: "duplicate id", entries: []Entry{ok, {Name: "again", URL: "https://www.youtube.com/watch?v=a"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntries(tt.entries)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEntry) {
					t.Fatalf("want ErrInvalidEntry, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
