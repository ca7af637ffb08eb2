package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linekit.toml")
	writeConfig(t, path, "[theme]\nname = \"default\"\n")

	got := make(chan *Config, 1)
	w, err := Watch(path, func(cfg *Config) {
		select {
		case got <- cfg:
		default:
		}
	}, WithDebounce(10*time.Millisecond), WithWatchLogger(quiet))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if w.Path() == "" {
		t.Error("expected an absolute watch path")
	}

	writeConfig(t, path, "[theme]\nname = \"mono\"\n")

	select {
	case cfg := <-got:
		if cfg.Theme.Name != "mono" {
			t.Errorf("expected reloaded theme %q, got %q", "mono", cfg.Theme.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherSkipsBadRevision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linekit.toml")
	writeConfig(t, path, "[theme]\nname = \"default\"\n")

	got := make(chan *Config, 4)
	w, err := Watch(path, func(cfg *Config) {
		got <- cfg
	}, WithDebounce(10*time.Millisecond), WithWatchLogger(quiet))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeConfig(t, path, "theme = ]")
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "[theme]\nname = \"mono\"\n")

	select {
	case cfg := <-got:
		if cfg.Theme.Name != "mono" {
			t.Errorf("expected the valid revision, got theme %q", cfg.Theme.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linekit.toml")
	writeConfig(t, path, "[theme]\nname = \"default\"\n")

	got := make(chan *Config, 1)
	w, err := Watch(path, func(cfg *Config) {
		got <- cfg
	}, WithDebounce(10*time.Millisecond), WithWatchLogger(quiet))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeConfig(t, filepath.Join(dir, "other.toml"), "[theme]\nname = \"mono\"\n")

	select {
	case <-got:
		t.Error("expected no reload for a sibling file")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linekit.toml")
	writeConfig(t, path, "[theme]\nname = \"default\"\n")

	w, err := Watch(path, func(*Config) {}, WithWatchLogger(quiet))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no-such-dir", "linekit.toml")
	if _, err := Watch(path, func(*Config) {}, WithWatchLogger(quiet)); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
