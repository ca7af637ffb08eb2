package control

import (
	"testing"

	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/processor"
	"github.com/dshills/linekit/suggest"
)

// classAt returns the style of the exploded fragment at one display
// offset.
func classAt(l fragment.List, i int) string {
	exploded := l.Explode()
	if i < 0 || i >= len(exploded) {
		return ""
	}
	return exploded[i].Style
}

func TestCreateContentWithoutChain(t *testing.T) {
	ctl := New(NewBuffer("hello\nworld"))
	content := ctl.CreateContent(NewSession(), 80, 24)

	if got := content.LineCount(); got != 2 {
		t.Fatalf("LineCount: expected 2, got %d", got)
	}
	if got := content.Line(0).Text(); got != "hello" {
		t.Errorf("line 0: expected %q, got %q", "hello", got)
	}
	if got := content.Line(1).Text(); got != "world" {
		t.Errorf("line 1: expected %q, got %q", "world", got)
	}
	if got := content.DisplayColumn(0, 3); got != 3 {
		t.Errorf("DisplayColumn: expected identity 3, got %d", got)
	}
}

func TestCreateContentAppliesChain(t *testing.T) {
	tabs, err := processor.NewTabs(4)
	if err != nil {
		t.Fatalf("NewTabs: %v", err)
	}
	ctl := New(NewBuffer("ab\tc"), WithChain(processor.Merge(
		processor.StaticBeforeInput("> ", "prompt"),
		tabs,
	)))

	content := ctl.CreateContent(NewSession(), 80, 24)

	if got := content.Line(0).Text(); got != "> ab|┈┈┈c" {
		t.Fatalf("line 0: expected %q, got %q", "> ab|┈┈┈c", got)
	}
	if got := classAt(content.Line(0), 0); got != "prompt" {
		t.Errorf("prompt class: expected %q, got %q", "prompt", got)
	}

	// The cursor sits at the document end; its display column lands
	// past the expanded tab and the prompt.
	cur := content.Cursor()
	if cur.Row != 0 || cur.Col != 9 {
		t.Errorf("Cursor: expected (0, 9), got (%d, %d)", cur.Row, cur.Col)
	}
	if got := content.DisplayColumn(0, 3); got != 8 {
		t.Errorf("DisplayColumn(0, 3): expected 8, got %d", got)
	}
}

func TestContentSourceOffsetClickMapping(t *testing.T) {
	tabs, err := processor.NewTabs(4)
	if err != nil {
		t.Fatalf("NewTabs: %v", err)
	}
	ctl := New(NewBuffer("ab\tc"), WithChain(processor.Merge(
		processor.StaticBeforeInput("> ", "prompt"),
		tabs,
	)))
	content := ctl.CreateContent(NewSession(), 80, 24)

	tests := []struct {
		displayCol int
		want       int
	}{
		{displayCol: 0, want: 0},  // click on the prompt clamps home
		{displayCol: 2, want: 0},  // "a"
		{displayCol: 3, want: 1},  // "b"
		{displayCol: 5, want: 2},  // inside the expanded tab
		{displayCol: 8, want: 3},  // "c"
		{displayCol: 50, want: 4}, // past the end clamps to line end
	}
	for _, tt := range tests {
		if got := content.SourceOffset(0, tt.displayCol); got != tt.want {
			t.Errorf("SourceOffset(0, %d): expected %d, got %d", tt.displayCol, tt.want, got)
		}
	}
}

func TestCreateContentPerLineMappings(t *testing.T) {
	// The prefix applies to line 0 only; other lines keep identity
	// mappings.
	ctl := New(NewBuffer("ab\ncd"), WithChain(processor.Merge(
		processor.StaticBeforeInput("> ", "prompt"),
	)))
	content := ctl.CreateContent(NewSession(), 80, 24)

	if got := content.Line(0).Text(); got != "> ab" {
		t.Errorf("line 0: expected %q, got %q", "> ab", got)
	}
	if got := content.Line(1).Text(); got != "cd" {
		t.Errorf("line 1: expected %q, got %q", "cd", got)
	}
	if got := content.DisplayColumn(0, 0); got != 2 {
		t.Errorf("line 0 DisplayColumn(0): expected 2, got %d", got)
	}
	if got := content.DisplayColumn(1, 0); got != 0 {
		t.Errorf("line 1 DisplayColumn(0): expected 0, got %d", got)
	}

	cur := content.Cursor()
	if cur.Row != 1 || cur.Col != 2 {
		t.Errorf("Cursor: expected (1, 2), got (%d, %d)", cur.Row, cur.Col)
	}
}

func TestContentLineOutOfRange(t *testing.T) {
	ctl := New(NewBuffer("ab"))
	content := ctl.CreateContent(NewSession(), 80, 24)

	if got := content.Line(-1); got != nil {
		t.Errorf("Line(-1): expected nil, got %v", got)
	}
	if got := content.Line(5); got != nil {
		t.Errorf("Line(5): expected nil, got %v", got)
	}
}

func TestControlSuggestionFlowsFromBuffer(t *testing.T) {
	buf := NewBuffer("ech")
	ctl := New(buf)
	if got := ctl.Suggestion(); got != "" {
		t.Errorf("expected empty suggestion, got %q", got)
	}

	buf.SetProvider(suggest.Static{Text: "o hello"})
	if got := ctl.Suggestion(); got != "o hello" {
		t.Errorf("expected %q, got %q", "o hello", got)
	}
}
