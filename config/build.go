package config

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/linekit/luastage"
	"github.com/dshills/linekit/processor"
	"github.com/dshills/linekit/theme"
)

// Pipeline is a built processor chain together with the stages that
// hold resources. Closing the pipeline closes its Lua stages.
type Pipeline struct {
	chain processor.Processor
	lua   []*luastage.Stage
}

// Chain returns the processor chain.
func (p *Pipeline) Chain() processor.Processor {
	return p.chain
}

// Close releases the pipeline's Lua interpreters. The chain must not
// be applied afterwards; Lua stages degrade to passthrough once
// closed.
func (p *Pipeline) Close() error {
	var first error
	for _, s := range p.lua {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// BuildOption configures Build.
type BuildOption func(*builder)

type builder struct {
	logger  *log.Logger
	baseDir string
}

// WithLogger routes Lua stage degradation logs to l.
func WithLogger(l *log.Logger) BuildOption {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithBaseDir resolves relative Lua script paths against dir,
// typically the config file's directory.
func WithBaseDir(dir string) BuildOption {
	return func(b *builder) {
		b.baseDir = dir
	}
}

// Build turns the configured stage list into a processor chain. Stage
// configurations are validated here so rendering cannot fail later; an
// empty stage list builds a passthrough.
func Build(cfg *Config, opts ...BuildOption) (*Pipeline, error) {
	b := &builder{logger: log.Default()}
	for _, opt := range opts {
		opt(b)
	}

	p := &Pipeline{}
	stages := make([]processor.Processor, 0, len(cfg.Pipeline.Stages))
	for i, sc := range cfg.Pipeline.Stages {
		stage, err := b.buildStage(p, sc)
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("stage %d (%s): %w", i, sc.Type, err)
		}
		stages = append(stages, stage)
	}

	if len(stages) == 0 {
		p.chain = processor.Passthrough{}
		return p, nil
	}
	p.chain = processor.Merge(stages...)
	return p, nil
}

// buildStage constructs one stage from its configuration.
func (b *builder) buildStage(p *Pipeline, sc StageConfig) (processor.Processor, error) {
	switch sc.Type {
	case "before-input":
		return processor.StaticBeforeInput(sc.Text, sc.Style), nil

	case "after-input":
		return processor.StaticAfterInput(sc.Text, sc.Style), nil

	case "show-arg":
		return processor.ShowArg{}, nil

	case "search-highlight":
		return processor.SearchHighlight{}, nil

	case "selection-highlight":
		return processor.SelectionHighlight{}, nil

	case "password":
		ch, err := charField(sc.Char, '*')
		if err != nil {
			return nil, err
		}
		return processor.PasswordMask{Char: ch}, nil

	case "brackets":
		chars := sc.Chars
		if chars == "" {
			chars = processor.DefaultBracketChars
		}
		max := sc.MaxDistance
		if max == 0 {
			max = processor.DefaultMaxCursorDistance
		}
		return processor.NewMatchingBracket(chars, max)

	case "multi-cursor":
		return processor.MultiCursor{}, nil

	case "autosuggest":
		return processor.AppendAutoSuggestion{Style: sc.Style}, nil

	case "leading-whitespace":
		ch, err := charField(sc.Char, 0)
		if err != nil {
			return nil, err
		}
		return processor.ShowLeadingWhitespace{Char: ch, Style: sc.Style}, nil

	case "trailing-whitespace":
		ch, err := charField(sc.Char, 0)
		if err != nil {
			return nil, err
		}
		return processor.ShowTrailingWhitespace{Char: ch, Style: sc.Style}, nil

	case "tabs":
		return b.buildTabs(sc)

	case "lua":
		return b.buildLua(p, sc)

	case "passthrough":
		return processor.Passthrough{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, sc.Type)
	}
}

func (b *builder) buildTabs(sc StageConfig) (processor.Processor, error) {
	tabstop := sc.Tabstop
	if tabstop == 0 {
		tabstop = processor.DefaultTabstop
	}
	t, err := processor.NewTabs(tabstop)
	if err != nil {
		return nil, err
	}
	if sc.FirstChar != "" || sc.FillChar != "" {
		first, err := charField(sc.FirstChar, processor.DefaultTabChar1)
		if err != nil {
			return nil, err
		}
		fill, err := charField(sc.FillChar, processor.DefaultTabChar2)
		if err != nil {
			return nil, err
		}
		t = t.WithChars(first, fill)
	}
	if sc.Style != "" {
		t = t.WithStyle(sc.Style)
	}
	return t, nil
}

func (b *builder) buildLua(p *Pipeline, sc StageConfig) (processor.Processor, error) {
	var (
		stage *luastage.Stage
		err   error
	)
	switch {
	case sc.Script != "":
		path := sc.Script
		if b.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(b.baseDir, path)
		}
		stage, err = luastage.NewFile(path, luastage.WithLogger(b.logger))
	case sc.Source != "":
		stage, err = luastage.New("inline", sc.Source, luastage.WithLogger(b.logger))
	default:
		return nil, ErrMissingScript
	}
	if err != nil {
		return nil, err
	}
	p.lua = append(p.lua, stage)
	return stage, nil
}

// charField converts a one-character config string, falling back when
// the field is empty.
func charField(s string, fallback rune) (rune, error) {
	if s == "" {
		return fallback, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChar, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// BuildTheme resolves the configured theme: the named base theme with
// the configured style overrides layered on top.
func BuildTheme(cfg *Config) (*theme.Theme, error) {
	name := cfg.Theme.Name
	if name == "" {
		name = "default"
	}
	reg := theme.NewRegistry()
	t, ok := reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	for class, sc := range cfg.Theme.Styles {
		st, err := buildStyle(sc)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", class, err)
		}
		t.Set(class, st)
	}
	return t, nil
}

func buildStyle(sc StyleConfig) (tcell.Style, error) {
	st := tcell.StyleDefault
	if sc.FG != "" {
		c, err := theme.ParseColor(sc.FG)
		if err != nil {
			return st, err
		}
		st = st.Foreground(c)
	}
	if sc.BG != "" {
		c, err := theme.ParseColor(sc.BG)
		if err != nil {
			return st, err
		}
		st = st.Background(c)
	}
	if sc.Bold {
		st = st.Bold(true)
	}
	if sc.Underline {
		st = st.Underline(true)
	}
	if sc.Reverse {
		st = st.Reverse(true)
	}
	if sc.Italic {
		st = st.Italic(true)
	}
	if sc.Dim {
		st = st.Dim(true)
	}
	return st, nil
}
