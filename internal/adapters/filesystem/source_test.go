package filesystem

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSource_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	if err := os.WriteFile(path, []byte("Game\tFoo\n"), 0644); err != nil {
		t.Fatalf("failed to write database: %v", err)
	}

	src := NewSource(path)
	if src.Name() != path {
		t.Errorf("expected name %s, got %s", path, src.Name())
	}

	rc, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "Game\tFoo\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestSource_OpenMissing(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "missing.db"))

	_, err := src.Open(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSource_OpenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSource("whatever").Open(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := ExpandHome("~/games.db")
	if got != filepath.Join(home, "games.db") {
		t.Errorf("unexpected expansion %s", got)
	}
	if !strings.HasPrefix(got, home) {
		t.Errorf("expected path under %s", home)
	}
	if ExpandHome("/tmp/games.db") != "/tmp/games.db" {
		t.Error("absolute paths must be left alone")
	}
}
