package document

// SelectionRangeAtLine returns the column span of the selection on the
// given row, or ok=false when the selection does not touch it. Columns
// are rune offsets within the line, and the span is inclusive of both
// ends in the sense used by the selection highlight: from is the first
// selected column and to the last position the highlight covers, which
// may equal the line length when the selection runs over the newline.
func (d Document) SelectionRangeAtLine(row int) (from, to int, ok bool) {
	if d.selection == nil {
		return 0, 0, false
	}
	if row < 0 || row >= len(d.lineStarts) {
		return 0, 0, false
	}

	rowStart := d.lineStarts[row]
	rowEnd := rowStart + d.lineLen(row)

	lo, hi := d.selection.Anchor, d.cursor
	if lo > hi {
		lo, hi = hi, lo
	}

	// Intersect the selected span with this row.
	start := lo
	if start < rowStart {
		start = rowStart
	}
	end := hi
	if end > rowEnd {
		end = rowEnd
	}
	if start > end {
		return 0, 0, false
	}

	switch d.selection.Type {
	case SelectionLines:
		start, end = rowStart, rowEnd
	case SelectionBlock:
		col1 := d.TranslateIndexToPosition(lo).Col
		col2 := d.TranslateIndexToPosition(hi).Col
		if col1 > col2 {
			col1, col2 = col2, col1
		}
		// The block does not reach a line shorter than its left edge.
		if col1 > d.lineLen(row) {
			return 0, 0, false
		}
		start = d.TranslateRowColToIndex(row, col1)
		end = d.TranslateRowColToIndex(row, col2)
	}

	return start - rowStart, end - rowStart, true
}
