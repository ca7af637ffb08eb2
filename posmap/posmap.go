// Package posmap implements position mappers: total functions from rune
// offsets in one coordinate space to rune offsets in another, represented
// as immutable tagged values rather than closures. Representing mappers
// as data keeps composition inspectable and lets common shapes collapse:
// composing two shifts yields a shift, composing with the identity yields
// the other mapper unchanged.
//
// A Mapper never panics and never returns a negative offset. Out-of-range
// inputs clamp to the nearest representable result.
package posmap

import "fmt"

type kind uint8

const (
	kindIdentity kind = iota
	kindShift
	kindTable
	kindChain
)

type entry struct {
	from int
	to   int
}

// Mapper maps rune offsets between two coordinate spaces. The zero value
// is the identity mapping.
type Mapper struct {
	kind  kind
	shift int
	table []entry
	chain []Mapper
}

// Identity returns the identity mapping.
func Identity() Mapper {
	return Mapper{}
}

// Shift returns a mapper that adds n to every offset. Results below zero
// clamp to zero.
func Shift(n int) Mapper {
	if n == 0 {
		return Mapper{}
	}
	return Mapper{kind: kindShift, shift: n}
}

// FromTable returns a mapper backed by an explicit offset table. Lookups
// between two keys resolve to the value of the nearest lower key, lookups
// past the last key clamp to the last value, and lookups below the first
// key return zero. An empty table yields the identity mapping.
func FromTable(m map[int]int) Mapper {
	if len(m) == 0 {
		return Mapper{}
	}
	table := make([]entry, 0, len(m))
	for from, to := range m {
		table = append(table, entry{from: from, to: to})
	}
	sortEntries(table)
	return Mapper{kind: kindTable, table: table}
}

// sortEntries orders the table by source offset. Tables are small (one
// entry per rune of a line), so an insertion sort keeps this allocation
// free.
func sortEntries(t []entry) {
	for i := 1; i < len(t); i++ {
		e := t[i]
		j := i - 1
		for j >= 0 && t[j].from > e.from {
			t[j+1] = t[j]
			j--
		}
		t[j+1] = e
	}
}

// Compose returns the mapper that applies first, then next. Identity
// operands vanish and consecutive shifts merge; anything else flattens
// into a chain.
func Compose(first, next Mapper) Mapper {
	if first.kind == kindIdentity {
		return next
	}
	if next.kind == kindIdentity {
		return first
	}
	if first.kind == kindShift && next.kind == kindShift {
		return Shift(first.shift + next.shift)
	}
	chain := make([]Mapper, 0, first.chainLen()+next.chainLen())
	chain = first.appendTo(chain)
	chain = next.appendTo(chain)
	return Mapper{kind: kindChain, chain: chain}
}

func (m Mapper) chainLen() int {
	if m.kind == kindChain {
		return len(m.chain)
	}
	return 1
}

func (m Mapper) appendTo(chain []Mapper) []Mapper {
	if m.kind == kindChain {
		return append(chain, m.chain...)
	}
	return append(chain, m)
}

// Apply maps the offset i. Negative inputs are treated as zero and the
// result is never negative.
func (m Mapper) Apply(i int) int {
	if i < 0 {
		i = 0
	}
	switch m.kind {
	case kindShift:
		j := i + m.shift
		if j < 0 {
			return 0
		}
		return j
	case kindTable:
		return m.lookup(i)
	case kindChain:
		for _, sub := range m.chain {
			i = sub.Apply(i)
		}
		return i
	default:
		return i
	}
}

func (m Mapper) lookup(i int) int {
	t := m.table
	// Binary search for the first entry past i.
	lo, hi := 0, len(t)
	for lo < hi {
		mid := (lo + hi) / 2
		if t[mid].from > i {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo == 0 {
		return 0
	}
	return t[lo-1].to
}

// IsIdentity reports whether the mapper is the identity mapping.
func (m Mapper) IsIdentity() bool {
	return m.kind == kindIdentity
}

// String describes the mapper's shape for diagnostics.
func (m Mapper) String() string {
	switch m.kind {
	case kindShift:
		return fmt.Sprintf("shift(%+d)", m.shift)
	case kindTable:
		return fmt.Sprintf("table(%d)", len(m.table))
	case kindChain:
		return fmt.Sprintf("chain(%d)", len(m.chain))
	default:
		return "identity"
	}
}
