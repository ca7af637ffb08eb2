package processor

import (
	"testing"

	"github.com/dshills/linekit/document"
)

func TestNewMatchingBracketValidation(t *testing.T) {
	if _, err := NewMatchingBracket("", 100); err == nil {
		t.Error("empty bracket set: expected an error")
	}
	if _, err := NewMatchingBracket("()", 0); err == nil {
		t.Error("zero max distance: expected an error")
	}
	if _, err := NewMatchingBracket("()", -5); err == nil {
		t.Error("negative max distance: expected an error")
	}
	if _, err := NewMatchingBracket(DefaultBracketChars, DefaultMaxCursorDistance); err != nil {
		t.Errorf("defaults: unexpected error %v", err)
	}
}

func TestMatchingBracketHighlightsPair(t *testing.T) {
	// Cursor on the opening bracket of "foo(bar)".
	p, err := NewMatchingBracket("()", DefaultMaxCursorDistance)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("foo(bar)", 3)
	tr := p.Apply(lineInput(doc, nil, 0))

	if got := classAt(tr.Fragments, 3); got != ClassBracketCursor {
		t.Errorf("offset 3: expected %q, got %q", ClassBracketCursor, got)
	}
	if got := classAt(tr.Fragments, 7); got != ClassBracketOther {
		t.Errorf("offset 7: expected %q, got %q", ClassBracketOther, got)
	}
	if got := tr.Fragments.Text(); got != "foo(bar)" {
		t.Errorf("text changed: got %q", got)
	}
}

func TestMatchingBracketAfterClosing(t *testing.T) {
	// Cursor immediately after the closing bracket.
	p, err := NewMatchingBracket(DefaultBracketChars, DefaultMaxCursorDistance)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("foo(bar)", 8)
	tr := p.Apply(lineInput(doc, nil, 0))

	if got := classAt(tr.Fragments, 3); got != ClassBracketOther {
		t.Errorf("offset 3: expected %q, got %q", ClassBracketOther, got)
	}
	if got := classAt(tr.Fragments, 7); got != ClassBracketOther {
		t.Errorf("offset 7: expected %q, got %q", ClassBracketOther, got)
	}
}

func TestMatchingBracketNoAnchor(t *testing.T) {
	p, err := NewMatchingBracket(DefaultBracketChars, DefaultMaxCursorDistance)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("foo(bar)", 1)
	tr := p.Apply(lineInput(doc, nil, 0))
	for i := 0; i < 8; i++ {
		if got := classAt(tr.Fragments, i); got != "" {
			t.Errorf("offset %d: expected no tag, got %q", i, got)
		}
	}
}

func TestMatchingBracketOutsideWindow(t *testing.T) {
	p, err := NewMatchingBracket("()", 3)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("(aaaaaaaa)", 0)
	tr := p.Apply(lineInput(doc, nil, 0))
	if got := classAt(tr.Fragments, 0); got != "" {
		t.Errorf("match beyond window: expected no tag, got %q", got)
	}
}

func TestMatchingBracketRespectsConfiguredChars(t *testing.T) {
	// Square brackets are not in the configured set.
	p, err := NewMatchingBracket("()", DefaultMaxCursorDistance)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("[ab]", 0)
	tr := p.Apply(lineInput(doc, nil, 0))
	if got := classAt(tr.Fragments, 0); got != "" {
		t.Errorf("bracket outside set: expected no tag, got %q", got)
	}
}

func TestMatchingBracketCacheCoherence(t *testing.T) {
	p, err := NewMatchingBracket(DefaultBracketChars, DefaultMaxCursorDistance)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("foo(bar)", 3)

	// Two lines of the same render generation share one scan.
	in := lineInput(doc, nil, 0)
	in.Ctx = testCtx{renderCount: 7}
	p.Apply(in)
	if got := p.cache.size(); got != 1 {
		t.Fatalf("after first apply: expected 1 cache entry, got %d", got)
	}
	p.Apply(in)
	if got := p.cache.size(); got != 1 {
		t.Errorf("unchanged key: expected 1 cache entry, got %d", got)
	}

	// Moving the cursor changes the key and the highlighted pair.
	moved := lineInput(doc.WithCursor(4), nil, 0)
	moved.Ctx = testCtx{renderCount: 7}
	tr := p.Apply(moved)
	if got := p.cache.size(); got != 2 {
		t.Errorf("cursor moved: expected 2 cache entries, got %d", got)
	}
	if got := classAt(tr.Fragments, 3); got != "" {
		t.Errorf("cursor moved off bracket: expected no tag, got %q", got)
	}
}

func TestMatchingBracketCacheEviction(t *testing.T) {
	p, err := NewMatchingBracket(DefaultBracketChars, DefaultMaxCursorDistance)
	if err != nil {
		t.Fatalf("NewMatchingBracket: %v", err)
	}
	doc := document.New("(a)", 0)
	for gen := 0; gen < bracketCacheSize*2; gen++ {
		in := lineInput(doc, nil, 0)
		in.Ctx = testCtx{renderCount: uint64(gen)}
		p.Apply(in)
	}
	if got := p.cache.size(); got != bracketCacheSize {
		t.Errorf("cache size: expected %d, got %d", bracketCacheSize, got)
	}
}
