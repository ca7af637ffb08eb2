// Package theme resolves the pipeline's semantic style classes to
// concrete terminal styles. A fragment's style string is a
// space-separated set of dotted class names; resolution tries the
// exact class first and then walks up the dotted scope, so
// "search-match.current" falls back to "search-match" when no specific
// style is registered.
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme maps style classes to terminal styles.
type Theme struct {
	name   string
	base   tcell.Style
	styles map[string]tcell.Style
}

// New returns an empty theme rendering unknown classes with the
// terminal default style.
func New(name string) *Theme {
	return &Theme{
		name:   name,
		base:   tcell.StyleDefault,
		styles: make(map[string]tcell.Style),
	}
}

// Name returns the theme's display name.
func (t *Theme) Name() string {
	return t.name
}

// Base returns the style used when no class matches.
func (t *Theme) Base() tcell.Style {
	return t.base
}

// SetBase sets the fallback style.
func (t *Theme) SetBase(st tcell.Style) {
	t.base = st
}

// Set registers the style for a class, replacing any previous entry.
func (t *Theme) Set(class string, st tcell.Style) {
	t.styles[class] = st
}

// Classes returns the registered class names in no particular order.
func (t *Theme) Classes() []string {
	out := make([]string, 0, len(t.styles))
	for class := range t.styles {
		out = append(out, class)
	}
	return out
}

// Resolve returns the style for one class: an exact match, else the
// nearest dotted ancestor, else the base style.
func (t *Theme) Resolve(class string) tcell.Style {
	if st, ok := t.resolveClass(class); ok {
		return st
	}
	return t.base
}

// resolveClass walks the dotted scope from most to least specific.
func (t *Theme) resolveClass(class string) (tcell.Style, bool) {
	for class != "" {
		if st, ok := t.styles[class]; ok {
			return st, true
		}
		dot := strings.LastIndex(class, ".")
		if dot < 0 {
			break
		}
		class = class[:dot]
	}
	return tcell.StyleDefault, false
}

// ResolveSet resolves a fragment's full style string: each class in
// the space-separated set is resolved and overlaid left to right onto
// the base style. Later classes override foreground and background;
// attributes accumulate.
func (t *Theme) ResolveSet(style string) tcell.Style {
	out := t.base
	if style == "" {
		return out
	}
	for _, class := range strings.Fields(style) {
		st, ok := t.resolveClass(class)
		if !ok {
			continue
		}
		out = overlay(out, st)
	}
	return out
}

// overlay applies the non-default parts of top onto bottom.
func overlay(bottom, top tcell.Style) tcell.Style {
	fg, bg, attr := top.Decompose()
	out := bottom
	if fg != tcell.ColorDefault {
		out = out.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		out = out.Background(bg)
	}
	_, _, have := out.Decompose()
	return out.Attributes(have | attr)
}

// Default returns the built-in color theme. Variant classes derive
// from their parents so the pair stays legible on both: the current
// search match brightens the match background, and the paired bracket
// dims the cursor-side bracket.
func Default() *Theme {
	searchBg := tcell.NewRGBColor(0x80, 0x60, 0x00)
	bracketBg := tcell.NewRGBColor(0x2e, 0x8b, 0x57)
	muted := tcell.NewRGBColor(0x55, 0x55, 0x55)

	t := New("default")
	t.Set("search-match", tcell.StyleDefault.
		Foreground(tcell.ColorBlack).Background(searchBg))
	t.Set("search-match.current", tcell.StyleDefault.
		Foreground(tcell.ColorBlack).Background(Brighten(searchBg, 0.25)))
	t.Set("selected", tcell.StyleDefault.
		Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x26, 0x4f, 0x78)))
	t.Set("matching-bracket.cursor", tcell.StyleDefault.
		Foreground(tcell.ColorBlack).Background(bracketBg))
	t.Set("matching-bracket.other", tcell.StyleDefault.
		Foreground(tcell.ColorBlack).Background(Darken(bracketBg, 0.2)))
	t.Set("multiple-cursors.cursor", tcell.StyleDefault.Reverse(true))
	t.Set("auto-suggestion", tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(0x66, 0x66, 0x66)))
	t.Set("leading-whitespace", tcell.StyleDefault.Foreground(muted))
	t.Set("trailing-whitespace", tcell.StyleDefault.Foreground(muted))
	t.Set("tab", tcell.StyleDefault.Foreground(muted))
	t.Set("prompt", tcell.StyleDefault.Bold(true))
	t.Set("prompt.arg.text", tcell.StyleDefault.Bold(true))
	t.Set("prompt.search.text", tcell.StyleDefault.Underline(true))
	return t
}

// Mono returns an attribute-only theme for terminals without reliable
// color support.
func Mono() *Theme {
	t := New("mono")
	t.Set("search-match", tcell.StyleDefault.Reverse(true))
	t.Set("search-match.current", tcell.StyleDefault.Reverse(true).Bold(true))
	t.Set("selected", tcell.StyleDefault.Reverse(true))
	t.Set("matching-bracket", tcell.StyleDefault.Underline(true).Bold(true))
	t.Set("multiple-cursors.cursor", tcell.StyleDefault.Reverse(true))
	t.Set("auto-suggestion", tcell.StyleDefault.Dim(true))
	t.Set("leading-whitespace", tcell.StyleDefault.Dim(true))
	t.Set("trailing-whitespace", tcell.StyleDefault.Dim(true))
	t.Set("tab", tcell.StyleDefault.Dim(true))
	t.Set("prompt", tcell.StyleDefault.Bold(true))
	return t
}
