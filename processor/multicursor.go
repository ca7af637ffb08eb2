package processor

import "github.com/dshills/linekit/fragment"

// MultiCursor marks every simultaneous cursor on the line while block
// multi-cursor editing is active. A cursor resting just past the last
// character gets a synthetic space so it stays visible.
type MultiCursor struct{}

// Apply tags the cursor columns. Mappings stay identity; the only
// possible growth is the synthetic trailing space, which sits past
// every source offset.
func (MultiCursor) Apply(in Input) Transformation {
	if !in.Ctx.MultiCursor() {
		return Transformation{Fragments: in.Fragments}
	}

	positions := in.Source.MultiCursorPositions()
	if len(positions) == 0 {
		return Transformation{Fragments: in.Fragments}
	}

	frags := in.Fragments.Explode()
	start := in.Document.TranslateRowColToIndex(in.LineNo, 0)
	end := start + in.Document.LineLen(in.LineNo)

	for _, p := range positions {
		switch {
		case p >= start && p < end:
			col := in.SourceToDisplay.Apply(p - start)
			if col < len(frags) {
				frags[col] = frags[col].WithClass(ClassMultiCursor)
			}
		case p == end:
			frags = append(frags, fragment.Fragment{Style: ClassMultiCursor, Text: " "})
		}
	}
	return Transformation{Fragments: frags}
}
