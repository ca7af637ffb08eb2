package processor

import (
	"testing"

	"github.com/dshills/linekit/document"
)

func TestShowLeadingWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"two leading spaces", "  ab", "··ab"},
		{"no leading space", "ab  ", "ab  "},
		{"all spaces", "   ", "···"},
		{"empty", "", ""},
		{"stops at first non-space", "  a b", "··a b"},
	}
	for _, tt := range tests {
		doc := document.New(tt.text, 0)
		tr := ShowLeadingWhitespace{}.Apply(lineInput(doc, nil, 0))
		if got := tr.Fragments.Text(); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestShowLeadingWhitespaceStyle(t *testing.T) {
	doc := document.New(" a", 0)
	tr := ShowLeadingWhitespace{}.Apply(lineInput(doc, nil, 0))
	if got := classAt(tr.Fragments, 0); got != ClassLeadingWhitespace {
		t.Errorf("marker style: expected %q, got %q", ClassLeadingWhitespace, got)
	}
	if got := classAt(tr.Fragments, 1); got != "" {
		t.Errorf("content style: expected untouched, got %q", got)
	}
}

func TestShowTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"two trailing spaces", "ab  ", "ab··"},
		{"no trailing space", "  ab", "  ab"},
		{"all spaces", "  ", "··"},
		{"stops at last non-space", "a b  ", "a b··"},
	}
	for _, tt := range tests {
		doc := document.New(tt.text, 0)
		tr := ShowTrailingWhitespace{}.Apply(lineInput(doc, nil, 0))
		if got := tr.Fragments.Text(); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestWhitespaceCustomMarker(t *testing.T) {
	doc := document.New(" a", 0)
	tr := ShowLeadingWhitespace{Char: '.'}.Apply(lineInput(doc, nil, 0))
	if got := tr.Fragments.Text(); got != ".a" {
		t.Errorf("custom marker: expected %q, got %q", ".a", got)
	}
}

func TestWhitespaceIdentityMappings(t *testing.T) {
	doc := document.New("  a  ", 0)
	lead := ShowLeadingWhitespace{}.Apply(lineInput(doc, nil, 0))
	if !lead.SourceToDisplay.IsIdentity() || !lead.DisplayToSource.IsIdentity() {
		t.Error("leading: expected identity mappings")
	}
	trail := ShowTrailingWhitespace{}.Apply(lineInput(doc, nil, 0))
	if !trail.SourceToDisplay.IsIdentity() || !trail.DisplayToSource.IsIdentity() {
		t.Error("trailing: expected identity mappings")
	}
}
