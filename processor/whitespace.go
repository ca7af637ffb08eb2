package processor

import (
	"strings"

	"github.com/dshills/linekit/fragment"
)

// DefaultWhitespaceChar is the marker drawn in place of revealed
// spaces.
const DefaultWhitespaceChar = '·'

// ShowLeadingWhitespace replaces the line's leading spaces with a
// visible marker character.
type ShowLeadingWhitespace struct {
	// Char is the marker. Zero means DefaultWhitespaceChar.
	Char rune
	// Style overrides the marker's style class. Empty means
	// ClassLeadingWhitespace.
	Style string
}

// Apply replaces each leading space. Lengths are preserved, so the
// mappings stay identity.
func (p ShowLeadingWhitespace) Apply(in Input) Transformation {
	if !strings.HasPrefix(in.Fragments.Text(), " ") {
		return Transformation{Fragments: in.Fragments}
	}
	marker := markerFragment(p.Char, p.Style, ClassLeadingWhitespace)
	frags := in.Fragments.Explode()
	for i := 0; i < len(frags); i++ {
		if frags[i].Text != " " {
			break
		}
		frags[i] = marker
	}
	return Transformation{Fragments: frags}
}

// ShowTrailingWhitespace replaces the line's trailing spaces with a
// visible marker character.
type ShowTrailingWhitespace struct {
	// Char is the marker. Zero means DefaultWhitespaceChar.
	Char rune
	// Style overrides the marker's style class. Empty means
	// ClassTrailingWhitespace.
	Style string
}

// Apply replaces each trailing space. Lengths are preserved, so the
// mappings stay identity.
func (p ShowTrailingWhitespace) Apply(in Input) Transformation {
	if !strings.HasSuffix(in.Fragments.Text(), " ") {
		return Transformation{Fragments: in.Fragments}
	}
	marker := markerFragment(p.Char, p.Style, ClassTrailingWhitespace)
	frags := in.Fragments.Explode()
	for i := len(frags) - 1; i >= 0; i-- {
		if frags[i].Text != " " {
			break
		}
		frags[i] = marker
	}
	return Transformation{Fragments: frags}
}

func markerFragment(ch rune, style, defaultStyle string) fragment.Fragment {
	if ch == 0 {
		ch = DefaultWhitespaceChar
	}
	if style == "" {
		style = defaultStyle
	}
	return fragment.Fragment{Style: style, Text: string(ch)}
}
