// Package suggest produces inline completion suffixes for a document.
// A provider inspects the text before the cursor and proposes the rest
// of the line; the pipeline renders the proposal after the input in a
// muted style.
package suggest

import (
	"strings"
	"sync"

	"github.com/dshills/linekit/document"
)

// Provider proposes a completion suffix for the document's current
// input. An empty string means no suggestion.
type Provider interface {
	Suggest(doc document.Document) string
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(doc document.Document) string

// Suggest calls f.
func (f ProviderFunc) Suggest(doc document.Document) string {
	return f(doc)
}

// Static always proposes the same suffix. Useful for tests and fixed
// hints.
type Static struct {
	Text string
}

// Suggest returns the fixed suffix.
func (s Static) Suggest(document.Document) string {
	return s.Text
}

// DefaultHistoryLimit bounds a History provider when no limit is given.
const DefaultHistoryLimit = 1000

// History proposes the remainder of the most recent history entry that
// starts with the current input. Entries are kept newest-last and the
// oldest are dropped past the limit.
type History struct {
	mu      sync.Mutex
	entries []string
	limit   int
}

// NewHistory returns an empty history with the given capacity. A
// non-positive limit uses DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Add records an accepted input line. Blank entries and immediate
// repeats are skipped.
func (h *History) Add(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Entries returns a copy of the recorded history, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Suggest proposes the suffix completing the document's last line from
// the newest history entry that extends it. Blank input gets no
// suggestion.
func (h *History) Suggest(doc document.Document) string {
	text := doc.Line(doc.LineCount() - 1)
	if strings.TrimSpace(text) == "" {
		return ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.entries) - 1; i >= 0; i-- {
		lines := strings.Split(h.entries[i], "\n")
		for j := len(lines) - 1; j >= 0; j-- {
			if strings.HasPrefix(lines[j], text) && len(lines[j]) > len(text) {
				return lines[j][len(text):]
			}
		}
	}
	return ""
}
