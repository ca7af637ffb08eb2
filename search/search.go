// Package search describes the state of an incremental text search and
// locates matches within a line or document. All offsets are rune
// offsets.
package search

import "unicode"

// Direction indicates which way a search moves through the text.
type Direction int

const (
	// Forward searches toward the end of the text.
	Forward Direction = iota
	// Backward searches toward the beginning of the text.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// State is one search: the query text, the direction of travel, and
// whether matching ignores case.
type State struct {
	Text       string
	Direction  Direction
	IgnoreCase bool
}

// Find locates the match for st in text nearest the cursor, including a
// match at the cursor itself. A forward search takes the first match at
// or after the cursor, a backward search the last match at or before
// it; either wraps around when nothing is found on its own side. The
// returned offset is a rune offset. An empty query never matches.
func Find(text string, cursor int, st State) (int, bool) {
	query := []rune(st.Text)
	if len(query) == 0 {
		return 0, false
	}
	runes := []rune(text)
	last := len(runes) - len(query)
	if last < 0 {
		return 0, false
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	matchAt := func(i int) bool {
		for j, q := range query {
			r := runes[i+j]
			if st.IgnoreCase {
				if unicode.ToLower(r) != unicode.ToLower(q) {
					return false
				}
			} else if r != q {
				return false
			}
		}
		return true
	}

	if st.Direction == Backward {
		start := cursor
		if start > last {
			start = last
		}
		for i := start; i >= 0; i-- {
			if matchAt(i) {
				return i, true
			}
		}
		for i := last; i > start; i-- {
			if matchAt(i) {
				return i, true
			}
		}
		return 0, false
	}

	for i := cursor; i <= last; i++ {
		if matchAt(i) {
			return i, true
		}
	}
	for i := 0; i < cursor && i <= last; i++ {
		if matchAt(i) {
			return i, true
		}
	}
	return 0, false
}
