package processor

import "github.com/dshills/linekit/fragment"

// AppendAutoSuggestion appends the source's pending suggestion to the
// last line when the cursor sits at the very end of the document, so
// the user sees what accepting the suggestion would insert.
type AppendAutoSuggestion struct {
	// Style overrides the suggestion's style class. Empty means
	// ClassAutoSuggestion.
	Style string
}

// Apply appends the suggestion fragment on the last line. The text is
// appended past every source offset, so the mappings stay identity.
func (p AppendAutoSuggestion) Apply(in Input) Transformation {
	if in.LineNo != in.Document.LineCount()-1 {
		return Transformation{Fragments: in.Fragments}
	}

	suggestion := ""
	if in.Document.IsCursorAtEnd() {
		suggestion = in.Source.Suggestion()
	}

	style := p.Style
	if style == "" {
		style = ClassAutoSuggestion
	}
	out := make(fragment.List, 0, len(in.Fragments)+1)
	out = append(out, in.Fragments...)
	out = append(out, fragment.Fragment{Style: style, Text: suggestion})
	return Transformation{Fragments: out}
}
