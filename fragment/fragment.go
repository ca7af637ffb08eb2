// Package fragment defines the styled text runs that make up one rendered
// line. A fragment couples a run of text with an opaque style string: a
// space-separated set of class names that a theme resolves at paint time.
// Offsets over a fragment list are rune offsets; terminal cell width is a
// presentation concern and only enters through Width.
package fragment

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Fragment is a run of text rendered with a single style.
type Fragment struct {
	Style string
	Text  string
}

// WithClass returns a copy of the fragment with class appended to its
// style set.
func (f Fragment) WithClass(class string) Fragment {
	if f.Style == "" {
		return Fragment{Style: class, Text: f.Text}
	}
	return Fragment{Style: f.Style + " " + class, Text: f.Text}
}

// HasClass reports whether class is one of the fragment's style classes.
func (f Fragment) HasClass(class string) bool {
	for _, c := range strings.Fields(f.Style) {
		if c == class {
			return true
		}
	}
	return false
}

// List is one rendered line: an ordered sequence of fragments whose
// concatenated text is the line's displayable content.
type List []Fragment

// Text returns the concatenation of all fragment text runs.
func (l List) Text() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Len returns the total length of the line in runes.
func (l List) Len() int {
	n := 0
	for _, f := range l {
		n += utf8.RuneCountInString(f.Text)
	}
	return n
}

// Width returns the total terminal cell width of the line.
func (l List) Width() int {
	w := 0
	for _, f := range l {
		w += runewidth.StringWidth(f.Text)
	}
	return w
}

// Explode returns a copy of the list with exactly one rune per fragment.
// Styles carry over to each rune. The result is freshly allocated, so
// callers may restyle individual runes without aliasing the input.
func (l List) Explode() List {
	out := make(List, 0, l.Len())
	for _, f := range l {
		for _, r := range f.Text {
			out = append(out, Fragment{Style: f.Style, Text: string(r)})
		}
	}
	return out
}

// Coalesce returns a copy of the list with adjacent fragments of equal
// style joined. Empty fragments are dropped.
func (l List) Coalesce() List {
	out := make(List, 0, len(l))
	for _, f := range l {
		if f.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == f.Style {
			out[n-1].Text += f.Text
			continue
		}
		out = append(out, f)
	}
	return out
}
