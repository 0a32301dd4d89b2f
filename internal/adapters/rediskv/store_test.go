package rediskv

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/xid"

	"github.com/jukebox-go/jukebox/internal/ports"
)

// Nécessite un Redis réel : JUKEBOX_TEST_REDIS_ADDR=127.0.0.1:6379 go test ./...
func openTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("JUKEBOX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("JUKEBOX_TEST_REDIS_ADDR not set")
	}
	s, err := Open(context.Background(), Options{Addr: addr, Prefix: "jukebox-test:" + xid.New().String() + ":"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.Get(ctx, "songs"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "songs", `[{"name":"a","url":"https://youtu.be/a","plays":0}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "songs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == "" {
		t.Fatalf("expected stored value")
	}
	if err := s.Delete(ctx, "songs"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "songs"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after Delete, got %v", err)
	}
}

func TestStore_KeyPrefix(t *testing.T) {
	s := New(nil, "p:")
	if got := s.key("theme"); got != "p:theme" {
		t.Fatalf("want %q, got %q", "p:theme", got)
	}
}
