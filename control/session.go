package control

import "github.com/dshills/linekit/processor"

// Session is the render context an application threads through the
// pipeline: the render generation, focus history, and the editing
// flags stages consult. One session serves one render loop; it is not
// goroutine-safe.
type Session struct {
	renders  uint64
	done     bool
	multi    bool
	arg      string
	focused  processor.Source
	previous processor.Source
}

// NewSession returns a fresh session at generation zero.
func NewSession() *Session {
	return &Session{}
}

// BeginRender advances the render generation and returns it. Call once
// per frame; caches keyed on the generation invalidate across frames.
func (s *Session) BeginRender() uint64 {
	s.renders++
	return s.renders
}

// Focus records src as the focused source. The previously focused
// source stays reachable for stages that decorate across a focus
// change. Refocusing the current source is a no-op.
func (s *Session) Focus(src processor.Source) {
	if src == s.focused {
		return
	}
	s.previous = s.focused
	s.focused = src
}

// Focused returns the currently focused source.
func (s *Session) Focused() processor.Source {
	return s.focused
}

// SetDone marks the input as accepted; transient decorations switch
// off for the final render.
func (s *Session) SetDone(v bool) {
	s.done = v
}

// SetMultiCursor toggles block-insert editing.
func (s *Session) SetMultiCursor(v bool) {
	s.multi = v
}

// SetRepeatArg sets the repeat argument being collected, empty for
// none.
func (s *Session) SetRepeatArg(arg string) {
	s.arg = arg
}

// RenderCount returns the current render generation.
func (s *Session) RenderCount() uint64 { return s.renders }

// IsDone reports whether the input has been accepted.
func (s *Session) IsDone() bool { return s.done }

// MultiCursor reports whether block-insert editing is active.
func (s *Session) MultiCursor() bool { return s.multi }

// RepeatArg returns the repeat argument being collected.
func (s *Session) RepeatArg() string { return s.arg }

// PreviousSource returns the source focused before the current one.
func (s *Session) PreviousSource() processor.Source { return s.previous }

var _ processor.Context = (*Session)(nil)
