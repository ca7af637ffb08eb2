package processor

import "github.com/dshills/linekit/posmap"

// Merge combines stages into a single stage that applies them in
// order. A merged chain composes cleanly: it can itself appear inside
// another merged chain.
func Merge(processors ...Processor) Processor {
	return &Merged{processors: processors}
}

// Merged is an ordered chain of stages exposed as one stage.
type Merged struct {
	processors []Processor
}

// Processors returns the chain's stages in application order.
func (m *Merged) Processors() []Processor {
	out := make([]Processor, len(m.processors))
	copy(out, m.processors)
	return out
}

// Apply runs each sub-stage with a source-to-display mapper that
// accumulates the caller's mapper and every upstream sub-stage. The
// returned forward mapper composes only this chain's own stages; the
// reverse mapper composes their inverses in reverse order.
func (m *Merged) Apply(in Input) Transformation {
	acc := in.SourceToDisplay
	forward := posmap.Identity()
	reverse := posmap.Identity()
	frags := in.Fragments

	for _, p := range m.processors {
		sub := in
		sub.SourceToDisplay = acc
		sub.Fragments = frags

		tr := p.Apply(sub)
		frags = tr.Fragments
		acc = posmap.Compose(acc, tr.SourceToDisplay)
		forward = posmap.Compose(forward, tr.SourceToDisplay)
		reverse = posmap.Compose(tr.DisplayToSource, reverse)
	}

	return Transformation{
		Fragments:       frags,
		SourceToDisplay: forward,
		DisplayToSource: reverse,
	}
}

// Conditional gates a stage behind a predicate evaluated against the
// render context. When the predicate is false the stage is skipped and
// the line passes through untouched. A nil predicate always applies.
type Conditional struct {
	Processor Processor
	When      func(Context) bool
}

// Apply runs the wrapped stage when the predicate holds.
func (c Conditional) Apply(in Input) Transformation {
	if c.Processor == nil {
		return Transformation{Fragments: in.Fragments}
	}
	if c.When != nil && !c.When(in.Ctx) {
		return Transformation{Fragments: in.Fragments}
	}
	return c.Processor.Apply(in)
}

// Dynamic defers the choice of stage to render time. When the supplier
// returns nil the line passes through untouched.
type Dynamic struct {
	Get func() Processor
}

// Apply runs whatever stage the supplier currently yields.
func (d Dynamic) Apply(in Input) Transformation {
	if d.Get == nil {
		return Passthrough{}.Apply(in)
	}
	p := d.Get()
	if p == nil {
		return Passthrough{}.Apply(in)
	}
	return p.Apply(in)
}
