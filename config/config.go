// Package config loads render pipeline and theme descriptions from
// TOML or YAML files and builds the runtime objects they describe. A
// configuration names an ordered list of stages plus optional style
// overrides; Build turns the stage list into a processor chain and
// BuildTheme turns the style section into a theme. A Watcher reloads
// the file when it changes on disk.
package config

// Config is the on-disk description of a pipeline and its theme.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline" yaml:"pipeline"`
	Theme    ThemeConfig    `toml:"theme" yaml:"theme"`
}

// PipelineConfig describes the processor chain.
type PipelineConfig struct {
	// Stages are applied in order.
	Stages []StageConfig `toml:"stages" yaml:"stages"`
}

// StageConfig describes one stage of the chain. Type selects the
// stage; the remaining fields apply only where noted and fall back to
// the stage's defaults when empty.
type StageConfig struct {
	// Type is one of: before-input, after-input, show-arg,
	// search-highlight, selection-highlight, password, brackets,
	// multi-cursor, autosuggest, leading-whitespace,
	// trailing-whitespace, tabs, lua, passthrough.
	Type string `toml:"type" yaml:"type"`

	// Text is the inserted text for before-input and after-input.
	Text string `toml:"text,omitempty" yaml:"text,omitempty"`

	// Style overrides the stage's default style class where the
	// stage takes one.
	Style string `toml:"style,omitempty" yaml:"style,omitempty"`

	// Char is the mask character for password and the marker for
	// leading-whitespace and trailing-whitespace.
	Char string `toml:"char,omitempty" yaml:"char,omitempty"`

	// Chars is the bracket character set for brackets.
	Chars string `toml:"chars,omitempty" yaml:"chars,omitempty"`

	// MaxDistance bounds the bracket scan window around the cursor.
	MaxDistance int `toml:"max_distance,omitempty" yaml:"max_distance,omitempty"`

	// Tabstop is the tab stop width for tabs.
	Tabstop int `toml:"tabstop,omitempty" yaml:"tabstop,omitempty"`

	// FirstChar and FillChar override the glyphs an expanded tab is
	// drawn with: FirstChar for the first cell, FillChar for the
	// rest.
	FirstChar string `toml:"first_char,omitempty" yaml:"first_char,omitempty"`
	FillChar  string `toml:"fill_char,omitempty" yaml:"fill_char,omitempty"`

	// Script is a path to a Lua stage file, resolved against the
	// builder's base directory when relative. Source is inline Lua.
	// Script wins when both are set.
	Script string `toml:"script,omitempty" yaml:"script,omitempty"`
	Source string `toml:"source,omitempty" yaml:"source,omitempty"`
}

// ThemeConfig describes the theme: a named base plus per-class
// overrides.
type ThemeConfig struct {
	// Name selects the base theme: "default" or "mono". Empty means
	// default.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Styles maps style classes to overrides layered onto the base
	// theme.
	Styles map[string]StyleConfig `toml:"styles,omitempty" yaml:"styles,omitempty"`
}

// StyleConfig describes one terminal style.
type StyleConfig struct {
	// FG and BG are color names ("red") or hex strings ("#rrggbb").
	FG string `toml:"fg,omitempty" yaml:"fg,omitempty"`
	BG string `toml:"bg,omitempty" yaml:"bg,omitempty"`

	Bold      bool `toml:"bold,omitempty" yaml:"bold,omitempty"`
	Underline bool `toml:"underline,omitempty" yaml:"underline,omitempty"`
	Reverse   bool `toml:"reverse,omitempty" yaml:"reverse,omitempty"`
	Italic    bool `toml:"italic,omitempty" yaml:"italic,omitempty"`
	Dim       bool `toml:"dim,omitempty" yaml:"dim,omitempty"`
}

// Default returns the configuration used when no file is given: tab
// expansion, the standard highlights, history suggestions and a plain
// prompt on the default theme.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Stages: []StageConfig{
				{Type: "tabs"},
				{Type: "search-highlight"},
				{Type: "selection-highlight"},
				{Type: "brackets"},
				{Type: "multi-cursor"},
				{Type: "autosuggest"},
				{Type: "before-input", Text: "> ", Style: "prompt"},
			},
		},
		Theme: ThemeConfig{Name: "default"},
	}
}
