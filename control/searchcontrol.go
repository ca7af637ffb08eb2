package control

import (
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/processor"
	"github.com/dshills/linekit/search"
)

// PromptStyle selects how a search input presents itself.
type PromptStyle int

const (
	// PromptPlain renders an "I-search: " prefix before the query.
	PromptPlain PromptStyle = iota
	// PromptReverseISearch renders the full
	// "(reverse-i-search)`query': match" decoration.
	PromptReverseISearch
)

// SearchControl hosts the query line of an incremental search. While a
// search is active it is linked to the control being searched: the
// target reads the live query through the link, and the search line's
// own chain renders the prompt decoration.
type SearchControl struct {
	*Control
	target *Control
	style  PromptStyle
}

// NewSearchControl returns an unlinked search input using the given
// prompt presentation.
func NewSearchControl(style PromptStyle) *SearchControl {
	sc := &SearchControl{style: style}
	var chain processor.Processor
	switch style {
	case PromptReverseISearch:
		chain = processor.ReverseSearch{}
	default:
		chain = processor.BeforeInput{Fragments: sc.promptFragments}
	}
	sc.Control = New(NewBuffer(""), WithChain(chain))
	return sc
}

// Query returns the live search text.
func (sc *SearchControl) Query() string {
	return sc.buf.Text()
}

// Target returns the control being searched, or nil when idle.
func (sc *SearchControl) Target() *Control {
	return sc.target
}

// Active reports whether a search is in progress.
func (sc *SearchControl) Active() bool {
	return sc.target != nil
}

// Begin starts a search over target in the given direction: the query
// clears, the link is established, and the target previews matches as
// the query is typed. The link is to the search control's inner
// Control, the same value its rendered lines carry as their source.
func (sc *SearchControl) Begin(target *Control, dir search.Direction) {
	sc.Cancel()
	sc.target = target
	target.linked = sc.Control
	target.SetPreviewSearch(true)

	st := target.SearchState()
	st.Direction = dir
	target.SetSearchState(st)
	sc.buf.Reset()
}

// Accept commits the query as the target's search state, moves the
// target's cursor to the match, and ends the search. It reports
// whether a match was found; with an empty query the previously
// committed text is searched again.
func (sc *SearchControl) Accept() bool {
	if sc.target == nil {
		return false
	}
	st := sc.target.SearchState()
	if q := sc.Query(); q != "" {
		st.Text = q
	}
	sc.target.SetSearchState(st)
	ok := sc.target.Buffer().ApplySearch(st)
	sc.Cancel()
	return ok
}

// Cancel ends the search without moving the target's cursor.
func (sc *SearchControl) Cancel() {
	if sc.target != nil {
		sc.target.linked = nil
		sc.target.SetPreviewSearch(false)
		sc.target = nil
	}
	sc.buf.Reset()
}

// promptFragments renders the plain prompt, naming the direction the
// way readline does.
func (sc *SearchControl) promptFragments(processor.Context) fragment.List {
	label := "I-search: "
	if sc.target != nil && sc.target.SearchState().Direction == search.Backward {
		label = "I-search backward: "
	}
	return fragment.List{{Style: processor.ClassPromptSearch, Text: label}}
}
