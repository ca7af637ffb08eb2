package document

var bracketPairs = [...][2]rune{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'<', '>'},
}

// FindMatchingBracket looks for the bracket matching the one under the
// cursor and returns its offset relative to the cursor: positive for a
// match to the right, negative for one to the left, zero when the
// cursor is not on a bracket or no match exists. The scan is bounded to
// [startPos, endPos); bounds clamp into the document.
func (d Document) FindMatchingBracket(startPos, endPos int) int {
	cur := d.CurrentChar()
	for _, pair := range bracketPairs {
		if cur == pair[0] {
			return d.findBracketRight(pair[0], pair[1], endPos)
		}
		if cur == pair[1] {
			return d.findBracketLeft(pair[0], pair[1], startPos)
		}
	}
	return 0
}

func (d Document) findBracketRight(left, right rune, endPos int) int {
	if endPos < 0 || endPos > len(d.runes) {
		endPos = len(d.runes)
	}
	depth := 1
	for i := d.cursor + 1; i < endPos; i++ {
		switch d.runes[i] {
		case left:
			depth++
		case right:
			depth--
		}
		if depth == 0 {
			return i - d.cursor
		}
	}
	return 0
}

func (d Document) findBracketLeft(left, right rune, startPos int) int {
	if startPos < 0 {
		startPos = 0
	}
	depth := 1
	for i := d.cursor - 1; i >= startPos; i-- {
		if i >= len(d.runes) {
			continue
		}
		switch d.runes[i] {
		case right:
			depth++
		case left:
			depth--
		}
		if depth == 0 {
			return i - d.cursor
		}
	}
	return 0
}
