package processor

import (
	"strings"
	"testing"

	"github.com/dshills/linekit/document"
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/search"
)

func searchInput(text string, cursor int, query string) Input {
	doc := document.New(text, cursor)
	src := &testSource{doc: doc, searchState: search.State{Text: query}}
	return lineInput(doc, src, 0)
}

func TestSearchHighlightMarksMatches(t *testing.T) {
	in := searchInput("foo bar foo", 4, "foo")
	tr := SearchHighlight{}.Apply(in)

	if got := tr.Fragments.Text(); got != "foo bar foo" {
		t.Errorf("text changed: expected %q, got %q", "foo bar foo", got)
	}
	for _, i := range []int{0, 1, 2, 8, 9, 10} {
		if got := classAt(tr.Fragments, i); !strings.Contains(got, ClassSearchMatch) {
			t.Errorf("offset %d: expected %q in style, got %q", i, ClassSearchMatch, got)
		}
	}
	for _, i := range []int{3, 4, 7} {
		if got := classAt(tr.Fragments, i); strings.Contains(got, ClassSearchMatch) {
			t.Errorf("offset %d: unexpected match tag %q", i, got)
		}
	}
}

func TestSearchHighlightCurrentMatch(t *testing.T) {
	// Cursor inside the second match.
	in := searchInput("foo bar foo", 9, "foo")
	tr := SearchHighlight{}.Apply(in)

	if got := classAt(tr.Fragments, 8); got != ClassSearchMatchCurrent {
		t.Errorf("offset 8: expected %q, got %q", ClassSearchMatchCurrent, got)
	}
	if got := classAt(tr.Fragments, 0); got != ClassSearchMatch {
		t.Errorf("offset 0: expected %q, got %q", ClassSearchMatch, got)
	}
}

func TestSearchHighlightIgnoreCase(t *testing.T) {
	doc := document.New("Foo foo FOO", 0)
	src := &testSource{doc: doc, searchState: search.State{Text: "foo", IgnoreCase: true}}
	tr := SearchHighlight{}.Apply(lineInput(doc, src, 0))

	for _, i := range []int{0, 4, 8} {
		if got := classAt(tr.Fragments, i); !strings.Contains(got, ClassSearchMatch) {
			t.Errorf("offset %d: expected a match tag, got %q", i, got)
		}
	}
}

func TestSearchHighlightEmptyQueryIsNoop(t *testing.T) {
	in := searchInput("foo bar", 0, "")
	tr := SearchHighlight{}.Apply(in)
	if got := classAt(tr.Fragments, 0); got != "" {
		t.Errorf("empty query: expected untouched style, got %q", got)
	}
}

func TestSearchHighlightSuppressedWhenDone(t *testing.T) {
	in := searchInput("foo bar", 0, "foo")
	in.Ctx = testCtx{done: true}
	tr := SearchHighlight{}.Apply(in)
	if got := classAt(tr.Fragments, 0); strings.Contains(got, ClassSearchMatch) {
		t.Errorf("done context: expected no highlight, got %q", got)
	}
}

func TestSearchHighlightPreviewUsesLiveInput(t *testing.T) {
	doc := document.New("alpha beta", 0)
	src := &testSource{
		doc:         doc,
		searchState: search.State{Text: "alpha"},
		searchInput: "beta",
		preview:     true,
	}
	tr := SearchHighlight{}.Apply(lineInput(doc, src, 0))

	if got := classAt(tr.Fragments, 6); !strings.Contains(got, ClassSearchMatch) {
		t.Errorf("preview: expected live query match at offset 6, got %q", got)
	}
	if got := classAt(tr.Fragments, 0); strings.Contains(got, ClassSearchMatch) {
		t.Errorf("preview: committed query should not match, got %q", got)
	}
}

func TestSearchHighlightPreviewFallsBackToCommitted(t *testing.T) {
	doc := document.New("alpha beta", 0)
	src := &testSource{
		doc:         doc,
		searchState: search.State{Text: "alpha"},
		preview:     true,
	}
	tr := SearchHighlight{}.Apply(lineInput(doc, src, 0))
	if got := classAt(tr.Fragments, 0); !strings.Contains(got, ClassSearchMatch) {
		t.Errorf("empty live input: expected committed query match, got %q", got)
	}
}

func TestSearchHighlightIdempotentSpans(t *testing.T) {
	// Applying twice tags the same span set; tags accumulate but no
	// new offsets join the match.
	in := searchInput("foo bar foo", 4, "foo")
	once := SearchHighlight{}.Apply(in)

	again := in
	again.Fragments = once.Fragments
	twice := SearchHighlight{}.Apply(again)

	onceTagged := taggedOffsets(once.Fragments, ClassSearchMatch)
	twiceTagged := taggedOffsets(twice.Fragments, ClassSearchMatch)
	if len(onceTagged) != len(twiceTagged) {
		t.Fatalf("tagged offsets changed: expected %v, got %v", onceTagged, twiceTagged)
	}
	for i := range onceTagged {
		if onceTagged[i] != twiceTagged[i] {
			t.Errorf("tagged offsets changed: expected %v, got %v", onceTagged, twiceTagged)
			break
		}
	}
}

func taggedOffsets(l fragment.List, class string) []int {
	var out []int
	for i, f := range l.Explode() {
		if strings.Contains(f.Style, class) {
			out = append(out, i)
		}
	}
	return out
}

func TestSearchHighlightIdentityMappings(t *testing.T) {
	in := searchInput("foo bar", 0, "foo")
	tr := SearchHighlight{}.Apply(in)
	if !tr.SourceToDisplay.IsIdentity() || !tr.DisplayToSource.IsIdentity() {
		t.Error("restyling stage: expected identity mappings")
	}
}

func TestSelectionHighlightSpan(t *testing.T) {
	doc := document.New("hello world", 8).
		WithSelection(document.Selection{Anchor: 2, Type: document.SelectionCharacters})
	tr := SelectionHighlight{}.Apply(lineInput(doc, nil, 0))

	// Columns 2 through 8 inclusive.
	for i := 2; i <= 8; i++ {
		if got := classAt(tr.Fragments, i); got != ClassSelected {
			t.Errorf("offset %d: expected %q, got %q", i, ClassSelected, got)
		}
	}
	for _, i := range []int{0, 1, 9, 10} {
		if got := classAt(tr.Fragments, i); got == ClassSelected {
			t.Errorf("offset %d: unexpected selection tag", i)
		}
	}
}

func TestSelectionHighlightNoSelection(t *testing.T) {
	doc := document.New("hello", 2)
	tr := SelectionHighlight{}.Apply(lineInput(doc, nil, 0))
	if got := classAt(tr.Fragments, 2); got != "" {
		t.Errorf("no selection: expected untouched style, got %q", got)
	}
}

func TestSelectionHighlightEmptyLine(t *testing.T) {
	doc := document.New("abc\n\ndef", 4).
		WithSelection(document.Selection{Anchor: 4, Type: document.SelectionCharacters})
	in := lineInput(doc, nil, 1)
	tr := SelectionHighlight{}.Apply(in)

	if len(tr.Fragments) != 1 {
		t.Fatalf("empty line: expected exactly 1 fragment, got %d", len(tr.Fragments))
	}
	if tr.Fragments[0].Text != " " || tr.Fragments[0].Style != ClassSelected {
		t.Errorf("empty line: expected a selected space, got %+v", tr.Fragments[0])
	}
}
