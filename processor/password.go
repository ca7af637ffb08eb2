package processor

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/linekit/fragment"
)

// PasswordMask replaces every rune of the line with a mask character.
// Run boundaries and styles are preserved, so the mappings stay
// identity.
type PasswordMask struct {
	// Char is the mask character. Zero means '*'.
	Char rune
}

// Apply masks each fragment's text at its original rune length.
func (p PasswordMask) Apply(in Input) Transformation {
	ch := p.Char
	if ch == 0 {
		ch = '*'
	}
	out := make(fragment.List, len(in.Fragments))
	for i, f := range in.Fragments {
		out[i] = fragment.Fragment{
			Style: f.Style,
			Text:  strings.Repeat(string(ch), utf8.RuneCountInString(f.Text)),
		}
	}
	return Transformation{Fragments: out}
}
