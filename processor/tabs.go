package processor

import (
	"fmt"
	"strings"

	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/posmap"
)

// Defaults for NewTabs.
const (
	DefaultTabstop  = 4
	DefaultTabChar1 = '|'
	DefaultTabChar2 = '┈'
)

// Tabs expands literal tab characters into filler runs that land the
// following character on the next tab stop, producing an exact forward
// offset table and a best-effort reverse table. Display offsets inside
// an expanded tab resolve back to the tab's own source offset.
type Tabs struct {
	tabstop int
	first   rune
	fill    rune
	style   string
}

// NewTabs returns a tab-expansion stage for the given tab stop width.
// A non-positive width is a configuration error.
func NewTabs(tabstop int) (Tabs, error) {
	if tabstop <= 0 {
		return Tabs{}, fmt.Errorf("%w, got %d", ErrInvalidTabstop, tabstop)
	}
	return Tabs{
		tabstop: tabstop,
		first:   DefaultTabChar1,
		fill:    DefaultTabChar2,
		style:   ClassTab,
	}, nil
}

// WithChars returns a copy using the given glyphs for the first cell
// of an expanded tab and for the remaining fill cells.
func (p Tabs) WithChars(first, fill rune) Tabs {
	p.first, p.fill = first, fill
	return p
}

// WithStyle returns a copy using the given style class for the filler
// fragments.
func (p Tabs) WithStyle(style string) Tabs {
	p.style = style
	return p
}

// Apply expands tabs and returns table-backed mappings. The forward
// table records the display column of every source offset including
// the virtual end-of-line offset; the reverse table is its mirror, so
// lookups falling inside a filler run resolve to the nearest lower
// recorded column, which is the tab itself.
func (p Tabs) Apply(in Input) Transformation {
	frags := in.Fragments.Explode()

	forward := make(map[int]int, len(frags)+1)
	reverse := make(map[int]int, len(frags)+1)
	out := make(fragment.List, 0, len(frags))
	pos := 0

	for i, f := range frags {
		forward[i] = pos
		reverse[pos] = i
		if f.Text == "\t" {
			count := p.tabstop - pos%p.tabstop
			out = append(out, fragment.Fragment{Style: p.style, Text: string(p.first)})
			if count > 1 {
				out = append(out, fragment.Fragment{Style: p.style, Text: strings.Repeat(string(p.fill), count-1)})
			}
			pos += count
		} else {
			out = append(out, f)
			pos++
		}
	}
	forward[len(frags)] = pos
	reverse[pos] = len(frags)

	return Transformation{
		Fragments:       out,
		SourceToDisplay: posmap.FromTable(forward),
		DisplayToSource: posmap.FromTable(reverse),
	}
}
