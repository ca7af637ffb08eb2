package processor

import (
	"unicode"

	"github.com/dshills/linekit/fragment"
)

// SearchHighlight marks every occurrence of the active search text on
// the line. The character span containing the cursor gets the
// "current" variant of the match class.
type SearchHighlight struct {
	// Preview reports whether the live search input should be used
	// instead of the last committed search. When nil, the source's
	// own preview setting decides.
	Preview func(Context) bool
}

// Apply restyles all search matches. Mappings stay identity: the line
// text is not changed.
func (p SearchHighlight) Apply(in Input) Transformation {
	text := p.searchText(in.Ctx, in.Source)
	if text == "" || in.Ctx.IsDone() {
		return Transformation{Fragments: in.Fragments}
	}

	lineText := in.Fragments.Text()
	frags := in.Fragments.Explode()

	// The cursor column in display coordinates, or -1 when the cursor
	// is not on this line.
	cursorCol := -1
	if in.Document.CursorRow() == in.LineNo {
		cursorCol = in.SourceToDisplay.Apply(in.Document.CursorCol())
	}

	ignoreCase := in.Source.SearchState().IgnoreCase
	for _, m := range findMatches(lineText, text, ignoreCase) {
		class := ClassSearchMatch
		if cursorCol >= m.start && cursorCol < m.end {
			class = ClassSearchMatchCurrent
		}
		for i := m.start; i < m.end && i < len(frags); i++ {
			frags[i] = frags[i].WithClass(class)
		}
	}
	return Transformation{Fragments: frags}
}

func (p SearchHighlight) searchText(ctx Context, src Source) string {
	preview := src.PreviewSearch()
	if p.Preview != nil {
		preview = p.Preview(ctx)
	}
	if preview {
		if t := src.SearchInputText(); t != "" {
			return t
		}
	}
	return src.SearchState().Text
}

type matchSpan struct {
	start int
	end   int
}

// findMatches returns the non-overlapping occurrences of query in text
// as rune-offset spans, scanning left to right.
func findMatches(text, query string, ignoreCase bool) []matchSpan {
	q := []rune(query)
	if len(q) == 0 {
		return nil
	}
	runes := []rune(text)
	var spans []matchSpan
	for i := 0; i+len(q) <= len(runes); {
		if runesEqual(runes[i:i+len(q)], q, ignoreCase) {
			spans = append(spans, matchSpan{start: i, end: i + len(q)})
			i += len(q)
		} else {
			i++
		}
	}
	return spans
}

func runesEqual(a, b []rune, ignoreCase bool) bool {
	for i := range a {
		if ignoreCase {
			if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
				return false
			}
		} else if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SelectionHighlight tags the selected span of the line. An empty line
// inside the selection still renders one space so the selection stays
// visible.
type SelectionHighlight struct{}

// Apply restyles the selected columns. Mappings stay identity.
func (SelectionHighlight) Apply(in Input) Transformation {
	from, to, ok := in.Document.SelectionRangeAtLine(in.LineNo)
	if !ok {
		return Transformation{Fragments: in.Fragments}
	}

	from = in.SourceToDisplay.Apply(from)
	to = in.SourceToDisplay.Apply(to)

	frags := in.Fragments.Explode()
	if from == 0 && to == 0 && len(frags) == 0 {
		return Transformation{
			Fragments: fragment.List{{Style: ClassSelected, Text: " "}},
		}
	}
	for i := from; i <= to && i < len(frags); i++ {
		frags[i] = frags[i].WithClass(ClassSelected)
	}
	return Transformation{Fragments: frags}
}
