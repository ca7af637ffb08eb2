// Package document models an immutable snapshot of the text being
// edited: the text itself, the cursor, and any active selection. All
// offsets are rune offsets and all lookups clamp out-of-range inputs
// instead of panicking, so the rendering pipeline can feed it positions
// that other transformations have already shifted around.
package document

// SelectionType is the shape of a selection.
type SelectionType int

const (
	// SelectionCharacters selects a contiguous run of characters.
	SelectionCharacters SelectionType = iota
	// SelectionLines selects whole lines.
	SelectionLines
	// SelectionBlock selects a rectangular block of columns.
	SelectionBlock
)

// String returns the selection type name.
func (t SelectionType) String() string {
	switch t {
	case SelectionLines:
		return "lines"
	case SelectionBlock:
		return "block"
	default:
		return "characters"
	}
}

// Selection records an active selection: the offset where it was
// started and its shape. The selection covers the span between the
// anchor and the document cursor.
type Selection struct {
	Anchor int
	Type   SelectionType
}

// Position is a row and column pair, both zero based and counted in
// runes.
type Position struct {
	Row int
	Col int
}

// Document is an immutable view of the text under edit. The zero value
// is an empty document; use New to build one with content.
type Document struct {
	text       string
	runes      []rune
	cursor     int
	selection  *Selection
	lineStarts []int
}

// New returns a document for text with the cursor at the given rune
// offset. The cursor clamps into [0, length].
func New(text string, cursor int) Document {
	runes := []rune(text)
	lineStarts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	return Document{
		text:       text,
		runes:      runes,
		cursor:     cursor,
		lineStarts: lineStarts,
	}
}

// WithCursor returns a copy of the document with the cursor moved to
// the given rune offset, clamped into range.
func (d Document) WithCursor(cursor int) Document {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(d.runes) {
		cursor = len(d.runes)
	}
	d.cursor = cursor
	return d
}

// WithSelection returns a copy of the document with an active
// selection. The anchor clamps into range.
func (d Document) WithSelection(sel Selection) Document {
	if sel.Anchor < 0 {
		sel.Anchor = 0
	}
	if sel.Anchor > len(d.runes) {
		sel.Anchor = len(d.runes)
	}
	d.selection = &sel
	return d
}

// WithoutSelection returns a copy of the document with no selection.
func (d Document) WithoutSelection() Document {
	d.selection = nil
	return d
}

// Text returns the full document text.
func (d Document) Text() string {
	return d.text
}

// Len returns the document length in runes.
func (d Document) Len() int {
	return len(d.runes)
}

// CursorPosition returns the cursor's rune offset.
func (d Document) CursorPosition() int {
	return d.cursor
}

// Selection returns the active selection, if any.
func (d Document) Selection() (Selection, bool) {
	if d.selection == nil {
		return Selection{}, false
	}
	return *d.selection, true
}

// LineCount returns the number of lines. An empty document has one
// empty line.
func (d Document) LineCount() int {
	return len(d.lineStarts)
}

// Line returns the text of the given line without its trailing
// newline. Out-of-range rows clamp to the nearest line.
func (d Document) Line(row int) string {
	row = d.clampRow(row)
	start := d.lineStarts[row]
	return string(d.runes[start : start+d.lineLen(row)])
}

// Lines returns all lines of the document.
func (d Document) Lines() []string {
	lines := make([]string, len(d.lineStarts))
	for i := range lines {
		lines[i] = d.Line(i)
	}
	return lines
}

// LineLen returns the rune length of the given line, excluding the
// trailing newline.
func (d Document) LineLen(row int) int {
	return d.lineLen(d.clampRow(row))
}

func (d Document) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(d.lineStarts) {
		return len(d.lineStarts) - 1
	}
	return row
}

func (d Document) lineLen(row int) int {
	if row+1 < len(d.lineStarts) {
		return d.lineStarts[row+1] - d.lineStarts[row] - 1
	}
	return len(d.runes) - d.lineStarts[row]
}

// CursorRow returns the row the cursor is on.
func (d Document) CursorRow() int {
	return d.TranslateIndexToPosition(d.cursor).Row
}

// CursorCol returns the cursor's column within its row.
func (d Document) CursorCol() int {
	return d.TranslateIndexToPosition(d.cursor).Col
}

// TranslateIndexToPosition converts a rune offset into a row and
// column. Out-of-range offsets clamp into the document.
func (d Document) TranslateIndexToPosition(index int) Position {
	if index < 0 {
		index = 0
	}
	if index > len(d.runes) {
		index = len(d.runes)
	}
	// Binary search for the last line starting at or before index.
	lo, hi := 0, len(d.lineStarts)
	for lo < hi {
		mid := (lo + hi) / 2
		if d.lineStarts[mid] > index {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	row := lo - 1
	return Position{Row: row, Col: index - d.lineStarts[row]}
}

// TranslateRowColToIndex converts a row and column into a rune offset.
// Both coordinates clamp: the row into the document, the column into
// its line. A column equal to the line length addresses the offset
// just past the line's last rune.
func (d Document) TranslateRowColToIndex(row, col int) int {
	row = d.clampRow(row)
	if col < 0 {
		col = 0
	}
	if n := d.lineLen(row); col > n {
		col = n
	}
	index := d.lineStarts[row] + col
	if index > len(d.runes) {
		index = len(d.runes)
	}
	return index
}

// CurrentChar returns the rune under the cursor, or zero when the
// cursor sits at the end of the text.
func (d Document) CurrentChar() rune {
	if d.cursor >= len(d.runes) {
		return 0
	}
	return d.runes[d.cursor]
}

// CharBeforeCursor returns the rune just before the cursor, or zero
// when the cursor sits at the start of the text.
func (d Document) CharBeforeCursor() rune {
	if d.cursor == 0 || len(d.runes) == 0 {
		return 0
	}
	return d.runes[d.cursor-1]
}

// IsCursorAtEnd reports whether the cursor sits past the last rune.
func (d Document) IsCursorAtEnd() bool {
	return d.cursor == len(d.runes)
}
