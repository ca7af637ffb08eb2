package control

import (
	"github.com/dshills/linekit/document"
	"github.com/dshills/linekit/search"
	"github.com/dshills/linekit/suggest"
)

// Buffer is the editable text a control renders: a document plus the
// suggestion provider attached to it. Edits replace the document value;
// the document itself stays immutable.
type Buffer struct {
	doc      document.Document
	provider suggest.Provider
}

// NewBuffer returns a buffer holding text with the cursor at the end.
func NewBuffer(text string) *Buffer {
	return &Buffer{doc: document.New(text, len([]rune(text)))}
}

// Document returns the current document value.
func (b *Buffer) Document() document.Document {
	return b.doc
}

// SetDocument replaces the buffer's document.
func (b *Buffer) SetDocument(doc document.Document) {
	b.doc = doc
}

// Text returns the buffer's full text.
func (b *Buffer) Text() string {
	return b.doc.Text()
}

// SetProvider attaches a suggestion provider. Nil detaches.
func (b *Buffer) SetProvider(p suggest.Provider) {
	b.provider = p
}

// Suggestion returns the provider's completion suffix for the current
// document, or empty without a provider.
func (b *Buffer) Suggestion() string {
	if b.provider == nil {
		return ""
	}
	return b.provider.Suggest(b.doc)
}

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(text string) {
	if text == "" {
		return
	}
	runes := []rune(b.doc.Text())
	at := b.doc.CursorPosition()
	ins := []rune(text)

	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:at]...)
	out = append(out, ins...)
	out = append(out, runes[at:]...)
	b.doc = document.New(string(out), at+len(ins))
}

// DeleteBeforeCursor removes up to n runes before the cursor and
// returns the removed text.
func (b *Buffer) DeleteBeforeCursor(n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(b.doc.Text())
	at := b.doc.CursorPosition()
	if n > at {
		n = at
	}
	if n == 0 {
		return ""
	}
	removed := string(runes[at-n : at])

	out := make([]rune, 0, len(runes)-n)
	out = append(out, runes[:at-n]...)
	out = append(out, runes[at:]...)
	b.doc = document.New(string(out), at-n)
	return removed
}

// MoveCursor shifts the cursor by delta runes, clamped to the text.
func (b *Buffer) MoveCursor(delta int) {
	b.MoveCursorTo(b.doc.CursorPosition() + delta)
}

// MoveCursorTo places the cursor at offset, clamped to the text.
func (b *Buffer) MoveCursorTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > b.doc.Len() {
		offset = b.doc.Len()
	}
	b.doc = b.doc.WithCursor(offset)
}

// AcceptSuggestion appends the current suggestion to the text and
// reports whether anything was inserted.
func (b *Buffer) AcceptSuggestion() bool {
	s := b.Suggestion()
	if s == "" {
		return false
	}
	b.MoveCursorTo(b.doc.Len())
	b.InsertText(s)
	return true
}

// ApplySearch moves the cursor to the match for st nearest the current
// cursor and reports whether one was found.
func (b *Buffer) ApplySearch(st search.State) bool {
	offset, ok := search.Find(b.doc.Text(), b.doc.CursorPosition(), st)
	if !ok {
		return false
	}
	b.doc = b.doc.WithCursor(offset)
	return true
}

// Reset clears the buffer.
func (b *Buffer) Reset() {
	b.doc = document.New("", 0)
}
