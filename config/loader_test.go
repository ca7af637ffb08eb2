package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.toml")
	writeConfig(t, path, `
[[pipeline.stages]]
type = "before-input"
text = "> "
style = "prompt"

[[pipeline.stages]]
type = "tabs"
tabstop = 8
first_char = "|"

[theme]
name = "mono"

[theme.styles.selected]
bg = "#264f78"
bold = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(cfg.Pipeline.Stages); got != 2 {
		t.Fatalf("stages: expected 2, got %d", got)
	}
	first := cfg.Pipeline.Stages[0]
	if first.Type != "before-input" || first.Text != "> " || first.Style != "prompt" {
		t.Errorf("unexpected first stage: %+v", first)
	}
	second := cfg.Pipeline.Stages[1]
	if second.Type != "tabs" || second.Tabstop != 8 || second.FirstChar != "|" {
		t.Errorf("unexpected second stage: %+v", second)
	}
	if cfg.Theme.Name != "mono" {
		t.Errorf("theme name: expected %q, got %q", "mono", cfg.Theme.Name)
	}
	sel, ok := cfg.Theme.Styles["selected"]
	if !ok {
		t.Fatal("expected a selected style override")
	}
	if sel.BG != "#264f78" || !sel.Bold {
		t.Errorf("unexpected selected style: %+v", sel)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	writeConfig(t, path, `
pipeline:
  stages:
    - type: password
      char: "•"
    - type: lua
      source: |
        function transform(f, n) return f end
theme:
  name: default
  styles:
    prompt:
      fg: "#ff0000"
      underline: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(cfg.Pipeline.Stages); got != 2 {
		t.Fatalf("stages: expected 2, got %d", got)
	}
	if got := cfg.Pipeline.Stages[0].Char; got != "•" {
		t.Errorf("char: expected %q, got %q", "•", got)
	}
	if cfg.Pipeline.Stages[1].Source == "" {
		t.Error("expected inline lua source")
	}
	prompt := cfg.Theme.Styles["prompt"]
	if prompt.FG != "#ff0000" || !prompt.Underline {
		t.Errorf("unexpected prompt style: %+v", prompt)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.yml")
	writeConfig(t, path, "theme:\n  name: mono\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Name != "mono" {
		t.Errorf("expected %q, got %q", "mono", cfg.Theme.Name)
	}

	if _, err := Load(filepath.Join(dir, "config.json")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseTOMLError(t *testing.T) {
	_, err := ParseTOML("broken.toml", []byte("type = ]"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Path != "broken.toml" {
		t.Errorf("path: expected %q, got %q", "broken.toml", perr.Path)
	}
	if perr.Message == "" || perr.Err == nil {
		t.Error("expected message and wrapped error")
	}
}

func TestParseYAMLError(t *testing.T) {
	_, err := ParseYAML("broken.yaml", []byte("pipeline: ["))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Path != "broken.yaml" {
		t.Errorf("path: expected %q, got %q", "broken.yaml", perr.Path)
	}
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  ParseError
		want string
	}{
		{
			name: "with position",
			err:  ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"},
			want: "parse error in a.toml at line 3, column 7: bad",
		},
		{
			name: "line only",
			err:  ParseError{Path: "a.toml", Line: 3, Message: "bad"},
			want: "parse error in a.toml at line 3: bad",
		},
		{
			name: "no position",
			err:  ParseError{Path: "a.toml", Message: "bad"},
			want: "parse error in a.toml: bad",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
