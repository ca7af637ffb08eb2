package processor

// Style classes attached by the built-in stages. A theme resolves
// these to concrete terminal styles; the pipeline treats them as
// opaque tags.
const (
	ClassSearchMatch        = "search-match"
	ClassSearchMatchCurrent = "search-match.current"
	ClassSelected           = "selected"
	ClassBracketCursor      = "matching-bracket.cursor"
	ClassBracketOther       = "matching-bracket.other"
	ClassMultiCursor        = "multiple-cursors.cursor"
	ClassAutoSuggestion     = "auto-suggestion"
	ClassLeadingWhitespace  = "leading-whitespace"
	ClassTrailingWhitespace = "trailing-whitespace"
	ClassTab                = "tab"
	ClassPromptArg          = "prompt.arg"
	ClassPromptArgText      = "prompt.arg.text"
	ClassPromptSearch       = "prompt.search"
	ClassPromptSearchText   = "prompt.search.text"
)
