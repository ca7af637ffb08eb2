package processor

import (
	"fmt"
	"strings"

	"github.com/dshills/linekit/document"
)

// Defaults for NewMatchingBracket.
const (
	DefaultBracketChars      = "[](){}<>"
	DefaultMaxCursorDistance = 1000
)

// bracketCacheSize bounds the per-instance scan cache. One entry per
// distinct (generation, document, cursor) key; all lines of a frame
// share one key.
const bracketCacheSize = 8

// closingBrackets are the characters that trigger matching when they
// sit immediately before the cursor.
const closingBrackets = "])}>"

// MatchingBracket highlights the bracket under (or immediately before)
// the cursor together with its structural match. The scan is bounded
// to a window around the cursor so the cost stays independent of
// document size, and the resulting position pair is cached per render
// generation so rendering many lines of one frame scans only once.
type MatchingBracket struct {
	chars       string
	maxDistance int
	cache       *positionsCache
}

// NewMatchingBracket returns a bracket-matching stage for the given
// bracket characters and scan window. An empty character set or a
// non-positive window is a configuration error.
func NewMatchingBracket(chars string, maxDistance int) (*MatchingBracket, error) {
	if chars == "" {
		return nil, ErrEmptyBracketSet
	}
	if maxDistance <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMaxDistance, maxDistance)
	}
	return &MatchingBracket{
		chars:       chars,
		maxDistance: maxDistance,
		cache:       newPositionsCache(bracketCacheSize),
	}, nil
}

// Apply tags the bracket pair when one of its positions falls on this
// line. Mappings stay identity.
func (p *MatchingBracket) Apply(in Input) Transformation {
	key := cacheKey{
		generation: in.Ctx.RenderCount(),
		text:       in.Document.Text(),
		cursor:     in.Document.CursorPosition(),
	}
	positions := p.cache.get(key, func() []document.Position {
		return p.positionsToHighlight(in.Document)
	})
	if len(positions) == 0 {
		return Transformation{Fragments: in.Fragments}
	}

	frags := in.Fragments
	exploded := false
	for _, pos := range positions {
		if pos.Row != in.LineNo {
			continue
		}
		col := in.SourceToDisplay.Apply(pos.Col)
		if !exploded {
			frags = frags.Explode()
			exploded = true
		}
		if col >= len(frags) {
			continue
		}
		class := ClassBracketOther
		if col == in.Document.CursorCol() {
			class = ClassBracketCursor
		}
		frags[col] = frags[col].WithClass(class)
	}
	return Transformation{Fragments: frags}
}

// positionsToHighlight returns the (row, col) pair to mark: the
// matching bracket first, then the anchor. Empty when the cursor is
// not at a bracket or no match lies within the window.
func (p *MatchingBracket) positionsToHighlight(doc document.Document) []document.Position {
	var rel int
	switch {
	case p.isBracket(doc.CurrentChar()):
		rel = p.findWithin(doc)
	case p.isClosingBracket(doc.CharBeforeCursor()):
		doc = doc.WithCursor(doc.CursorPosition() - 1)
		rel = p.findWithin(doc)
	}
	if rel == 0 {
		return nil
	}
	match := doc.TranslateIndexToPosition(doc.CursorPosition() + rel)
	anchor := document.Position{Row: doc.CursorRow(), Col: doc.CursorCol()}
	return []document.Position{match, anchor}
}

func (p *MatchingBracket) findWithin(doc document.Document) int {
	return doc.FindMatchingBracket(
		doc.CursorPosition()-p.maxDistance,
		doc.CursorPosition()+p.maxDistance,
	)
}

func (p *MatchingBracket) isBracket(r rune) bool {
	return r != 0 && strings.ContainsRune(p.chars, r)
}

func (p *MatchingBracket) isClosingBracket(r rune) bool {
	return r != 0 && strings.ContainsRune(closingBrackets, r) && strings.ContainsRune(p.chars, r)
}
