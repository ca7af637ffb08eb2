// Package processor implements the line-transformation pipeline: small
// stages that restyle, mask, insert into, or expand one line of
// fragments before it reaches the screen, while keeping an exact
// bidirectional mapping between source and display offsets so cursor
// placement, selection, and mouse clicks survive any stacking of
// stages.
//
// A stage receives an Input describing one line and returns a
// Transformation: the new fragments plus the forward and reverse
// position mappers its edit implies. Stages are pure functions of
// their input; the one exception is MatchingBracket, which owns a
// bounded per-instance cache keyed by render generation.
//
// Stages compose with Merge. The merged chain feeds each sub-stage a
// source-to-display mapper accumulating everything upstream, and
// exposes the full forward composition and the reverse composition to
// the caller, so a merged chain is itself a valid stage inside another
// chain.
package processor

import (
	"github.com/dshills/linekit/document"
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/posmap"
	"github.com/dshills/linekit/search"
)

// Context exposes the application state stages may consult. It is
// deliberately narrow: a render-generation counter for caching, a few
// mode flags, and the previously focused source for the reverse-search
// decoration.
type Context interface {
	// RenderCount returns the number of the current render pass. It
	// increases monotonically and scopes cache validity.
	RenderCount() uint64
	// IsDone reports whether the interactive session is finishing, in
	// which case search highlighting is suppressed.
	IsDone() bool
	// MultiCursor reports whether block multi-cursor editing is active.
	MultiCursor() bool
	// RepeatArg returns the pending repeat argument as typed, or an
	// empty string when none is pending.
	RepeatArg() string
	// PreviousSource returns the source that held focus before the
	// current one, or nil. Reverse search uses it to find the content
	// being searched.
	PreviousSource() Source
}

// Source is a content source whose lines run through the pipeline. The
// pipeline reads it; it never mutates it.
type Source interface {
	// Document returns the source's current document.
	Document() document.Document
	// Chain returns the stage chain this source renders with, or nil.
	Chain() Processor
	// SearchState returns the last committed search.
	SearchState() search.State
	// SearchInputText returns the live text of the linked search
	// input, or an empty string when there is none.
	SearchInputText() string
	// PreviewSearch reports whether search highlighting should follow
	// the live search input instead of the committed search.
	PreviewSearch() bool
	// LinkedSearchSource returns the source hosting this source's
	// search input, or nil.
	LinkedSearchSource() Source
	// MultiCursorPositions returns the absolute offsets of all
	// simultaneous cursors.
	MultiCursorPositions() []int
	// Suggestion returns the pending auto-suggestion text, or an
	// empty string.
	Suggestion() string
}

// Input carries one line into a stage.
type Input struct {
	Ctx      Context
	Source   Source
	Document document.Document
	// LineNo is the document row being transformed.
	LineNo int
	// SourceToDisplay accumulates the forward mappings of every stage
	// that already ran on this line.
	SourceToDisplay posmap.Mapper
	// Fragments is the line as produced by the previous stage. Stages
	// must treat it as immutable and return a new list when they
	// change anything.
	Fragments fragment.List
	// Width and Height describe the area the line will be rendered
	// into. They are advisory.
	Width  int
	Height int
}

// Transformation is a stage's result. Zero-value mappers mean the
// stage did not move any offsets.
type Transformation struct {
	Fragments       fragment.List
	SourceToDisplay posmap.Mapper
	DisplayToSource posmap.Mapper
}

// Processor transforms one line of fragments.
type Processor interface {
	Apply(in Input) Transformation
}

// Passthrough is a stage that returns its input unchanged. Dynamic
// falls back to it when its supplier yields nothing.
type Passthrough struct{}

// Apply returns the input fragments untouched.
func (Passthrough) Apply(in Input) Transformation {
	return Transformation{Fragments: in.Fragments}
}
