package processor

import (
	"github.com/dshills/linekit/document"
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/posmap"
	"github.com/dshills/linekit/search"
)

// ReverseSearch renders the "(reverse-i-search)`query': line"
// decoration around an incremental search input. It is applied to the
// source hosting the search input box, not to the content being
// searched: it locates the searched source through the context's
// previous focus, re-renders that source's matched line under a
// filtered copy of its own chain, and splices the result in after the
// query.
type ReverseSearch struct{}

// Apply decorates line 0 of the search input. The prefix before the
// query shifts both mappings; other lines pass through untouched.
func (ReverseSearch) Apply(in Input) Transformation {
	main := mainSource(in)
	if in.LineNo != 0 || main == nil {
		return Transformation{Fragments: in.Fragments}
	}

	query := in.Fragments.Text()
	matched := matchedLine(in, main, query)

	st := main.SearchState()
	label := "reverse-i-search"
	if st.Direction == search.Forward {
		label = "i-search"
	}

	prefix := fragment.List{
		{Style: ClassPromptSearch, Text: "("},
		{Style: ClassPromptSearch, Text: label},
		{Style: ClassPromptSearch, Text: ")`"},
	}
	out := make(fragment.List, 0, len(prefix)+2+len(matched))
	out = append(out, prefix...)
	out = append(out, fragment.Fragment{Style: ClassPromptSearchText, Text: query})
	out = append(out, fragment.Fragment{Text: "': "})
	out = append(out, matched...)

	shift := prefix.Len()
	return Transformation{
		Fragments:       out,
		SourceToDisplay: posmap.Shift(shift),
		DisplayToSource: posmap.Shift(-shift),
	}
}

// mainSource returns the source being searched: the previously focused
// source, provided its search input is the source this stage runs on.
func mainSource(in Input) Source {
	prev := in.Ctx.PreviousSource()
	if prev == nil || prev.LinkedSearchSource() != in.Source {
		return nil
	}
	return prev
}

// matchedLine re-renders the main source's current match line under a
// filtered copy of its chain, with search highlighting forced into
// live preview so the match lights up as the query is typed.
func matchedLine(in Input, main Source, query string) fragment.List {
	doc := searchDocument(main, query)
	row := doc.CursorRow()

	highlight := SearchHighlight{Preview: func(Context) bool { return true }}
	var chain Processor = highlight
	if filtered := filterChain(main.Chain()); filtered != nil {
		chain = Merge(filtered, highlight)
	}

	tr := chain.Apply(Input{
		Ctx:      in.Ctx,
		Source:   previewSource{Source: main, doc: doc, query: query, host: in.Source},
		Document: doc,
		LineNo:   row,
		Fragments: fragment.List{
			{Text: doc.Line(row)},
		},
		Width:  in.Width,
		Height: in.Height,
	})
	return tr.Fragments
}

// searchDocument returns the main document with its cursor moved to
// the match the live query lands on, or unchanged when nothing
// matches.
func searchDocument(main Source, query string) document.Document {
	doc := main.Document()
	st := main.SearchState()
	if query != "" {
		st.Text = query
	}
	if offset, ok := search.Find(doc.Text(), doc.CursorPosition(), st); ok {
		return doc.WithCursor(offset)
	}
	return doc
}

// previewSource wraps the searched source for the nested render: same
// content, but previewing the live query and linked back to the search
// input host.
type previewSource struct {
	Source
	doc   document.Document
	query string
	host  Source
}

func (s previewSource) Document() document.Document { return s.doc }
func (s previewSource) PreviewSearch() bool         { return true }
func (s previewSource) SearchInputText() string     { return s.query }
func (s previewSource) LinkedSearchSource() Source  { return s.host }

// filterChain returns a copy of a chain with the stages that would
// double-decorate the nested preview removed: search and selection
// highlighting plus the prefix and suffix insertions. Merged and
// conditional wrappers are walked structurally. Nil means nothing
// survived.
func filterChain(p Processor) Processor {
	switch v := p.(type) {
	case nil:
		return nil
	case *Merged:
		subs := v.Processors()
		kept := make([]Processor, 0, len(subs))
		for _, sub := range subs {
			if f := filterChain(sub); f != nil {
				kept = append(kept, f)
			}
		}
		switch len(kept) {
		case 0:
			return nil
		case 1:
			return kept[0]
		default:
			return Merge(kept...)
		}
	case Conditional:
		if f := filterChain(v.Processor); f != nil {
			return Conditional{Processor: f, When: v.When}
		}
		return nil
	case SearchHighlight, SelectionHighlight, BeforeInput, ShowArg, AfterInput:
		return nil
	default:
		return p
	}
}
