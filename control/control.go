// Package control hosts the content sources a renderer draws: a
// control pairs an editable buffer with a transformation chain and
// produces per-line fragments plus the offset mappings needed to place
// the cursor and to translate clicks back to text positions.
package control

import (
	"github.com/dshills/linekit/document"
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/posmap"
	"github.com/dshills/linekit/processor"
	"github.com/dshills/linekit/search"
)

// Control renders one buffer through a transformation chain. It is the
// pipeline's content source: stages read the document, search state,
// and suggestion through it.
type Control struct {
	buf           *Buffer
	chain         processor.Processor
	searchState   search.State
	previewSearch bool
	linked        *Control
	cursors       []int
}

// Option configures a Control at construction.
type Option func(*Control)

// WithChain sets the control's transformation chain.
func WithChain(p processor.Processor) Option {
	return func(c *Control) { c.chain = p }
}

// WithSearchState seeds the committed search state.
func WithSearchState(st search.State) Option {
	return func(c *Control) { c.searchState = st }
}

// New returns a control rendering buf. A nil buf gets an empty buffer.
func New(buf *Buffer, opts ...Option) *Control {
	if buf == nil {
		buf = NewBuffer("")
	}
	c := &Control{buf: buf}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Buffer returns the control's buffer.
func (c *Control) Buffer() *Buffer {
	return c.buf
}

// SetChain replaces the transformation chain. Nil renders unchanged
// lines.
func (c *Control) SetChain(p processor.Processor) {
	c.chain = p
}

// Chain returns the transformation chain, which may be nil.
func (c *Control) Chain() processor.Processor {
	return c.chain
}

// Document returns the buffer's current document.
func (c *Control) Document() document.Document {
	return c.buf.Document()
}

// SearchState returns the committed search state.
func (c *Control) SearchState() search.State {
	return c.searchState
}

// SetSearchState commits a search state.
func (c *Control) SetSearchState(st search.State) {
	c.searchState = st
}

// PreviewSearch reports whether the live search input should highlight
// before it is committed.
func (c *Control) PreviewSearch() bool {
	return c.previewSearch
}

// SetPreviewSearch toggles live search highlighting.
func (c *Control) SetPreviewSearch(v bool) {
	c.previewSearch = v
}

// SearchInputText returns the text of the linked search input, or
// empty when no search is attached.
func (c *Control) SearchInputText() string {
	if c.linked == nil {
		return ""
	}
	return c.linked.buf.Text()
}

// LinkedSearchSource returns the attached search control as a source,
// or nil.
func (c *Control) LinkedSearchSource() processor.Source {
	if c.linked == nil {
		return nil
	}
	return c.linked
}

// MultiCursorPositions returns the extra cursor offsets for block
// editing.
func (c *Control) MultiCursorPositions() []int {
	return c.cursors
}

// SetMultiCursors replaces the extra cursor offsets.
func (c *Control) SetMultiCursors(offsets []int) {
	c.cursors = offsets
}

// Suggestion returns the buffer's completion suffix.
func (c *Control) Suggestion() string {
	return c.buf.Suggestion()
}

// CreateContent renders every document line through the chain and
// returns the fragments with both offset mappings per line.
func (c *Control) CreateContent(ctx processor.Context, width, height int) *Content {
	doc := c.buf.Document()
	chain := c.chain
	if chain == nil {
		chain = processor.Passthrough{}
	}

	n := doc.LineCount()
	content := &Content{
		doc:     doc,
		lines:   make([]fragment.List, n),
		forward: make([]posmap.Mapper, n),
		reverse: make([]posmap.Mapper, n),
	}
	for row := 0; row < n; row++ {
		tr := chain.Apply(processor.Input{
			Ctx:       ctx,
			Source:    c,
			Document:  doc,
			LineNo:    row,
			Fragments: fragment.List{{Text: doc.Line(row)}},
			Width:     width,
			Height:    height,
		})
		content.lines[row] = tr.Fragments
		content.forward[row] = tr.SourceToDisplay
		content.reverse[row] = tr.DisplayToSource
	}
	return content
}

var _ processor.Source = (*Control)(nil)

// Content is one rendered frame of a control: the transformed lines
// and, per line, the mappings between source and display offsets.
type Content struct {
	doc     document.Document
	lines   []fragment.List
	forward []posmap.Mapper
	reverse []posmap.Mapper
}

// LineCount returns the number of rendered lines.
func (c *Content) LineCount() int {
	return len(c.lines)
}

// Line returns the fragments of one rendered line. Out-of-range rows
// return nil.
func (c *Content) Line(row int) fragment.List {
	if row < 0 || row >= len(c.lines) {
		return nil
	}
	return c.lines[row]
}

// Cursor returns the document cursor in display coordinates.
func (c *Content) Cursor() document.Position {
	row := c.doc.CursorRow()
	return document.Position{
		Row: row,
		Col: c.DisplayColumn(row, c.doc.CursorCol()),
	}
}

// DisplayColumn maps a source column on row to its display column.
func (c *Content) DisplayColumn(row, sourceCol int) int {
	if row < 0 || row >= len(c.forward) {
		return sourceCol
	}
	return c.forward[row].Apply(sourceCol)
}

// SourceColumn maps a display column on row back to its source column.
func (c *Content) SourceColumn(row, displayCol int) int {
	if row < 0 || row >= len(c.reverse) {
		return displayCol
	}
	return c.reverse[row].Apply(displayCol)
}

// SourceOffset maps a display position to the nearest document offset.
// This is the click-to-cursor translation.
func (c *Content) SourceOffset(row, displayCol int) int {
	if row < 0 {
		row = 0
	}
	if n := c.doc.LineCount(); row >= n {
		row = n - 1
	}
	return c.doc.TranslateRowColToIndex(row, c.SourceColumn(row, displayCol))
}
