package processor

import (
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/posmap"
)

// BeforeInput prepends fragments to the first line. Both mappings
// shift by the prefix length.
type BeforeInput struct {
	// Fragments supplies the prefix for the current render.
	Fragments func(Context) fragment.List
}

// StaticBeforeInput returns a BeforeInput that always prepends the
// same text.
func StaticBeforeInput(text, style string) BeforeInput {
	prefix := fragment.List{{Style: style, Text: text}}
	return BeforeInput{Fragments: func(Context) fragment.List { return prefix }}
}

// Apply prepends the prefix on line 0 and is identity elsewhere.
func (p BeforeInput) Apply(in Input) Transformation {
	if in.LineNo != 0 || p.Fragments == nil {
		return Transformation{Fragments: in.Fragments}
	}
	prefix := p.Fragments(in.Ctx)
	if len(prefix) == 0 {
		return Transformation{Fragments: in.Fragments}
	}
	shift := prefix.Len()
	out := make(fragment.List, 0, len(prefix)+len(in.Fragments))
	out = append(out, prefix...)
	out = append(out, in.Fragments...)
	return Transformation{
		Fragments:       out,
		SourceToDisplay: posmap.Shift(shift),
		DisplayToSource: posmap.Shift(-shift),
	}
}

// ShowArg prepends the pending repeat argument, rendered as
// "(arg: N) ", to the first line.
type ShowArg struct{}

// Apply delegates to a BeforeInput built from the context's repeat
// argument.
func (ShowArg) Apply(in Input) Transformation {
	return BeforeInput{Fragments: argFragments}.Apply(in)
}

func argFragments(ctx Context) fragment.List {
	arg := ctx.RepeatArg()
	if arg == "" {
		return nil
	}
	return fragment.List{
		{Style: ClassPromptArg, Text: "(arg: "},
		{Style: ClassPromptArgText, Text: arg},
		{Style: ClassPromptArg, Text: ") "},
	}
}

// AfterInput appends fragments to the last line. Insertion happens
// past every source offset, so the mappings stay identity.
type AfterInput struct {
	// Fragments supplies the suffix for the current render.
	Fragments func(Context) fragment.List
}

// StaticAfterInput returns an AfterInput that always appends the same
// text.
func StaticAfterInput(text, style string) AfterInput {
	suffix := fragment.List{{Style: style, Text: text}}
	return AfterInput{Fragments: func(Context) fragment.List { return suffix }}
}

// Apply appends the suffix on the last line and is identity elsewhere.
func (p AfterInput) Apply(in Input) Transformation {
	if in.LineNo != in.Document.LineCount()-1 || p.Fragments == nil {
		return Transformation{Fragments: in.Fragments}
	}
	suffix := p.Fragments(in.Ctx)
	if len(suffix) == 0 {
		return Transformation{Fragments: in.Fragments}
	}
	out := make(fragment.List, 0, len(in.Fragments)+len(suffix))
	out = append(out, in.Fragments...)
	out = append(out, suffix...)
	return Transformation{Fragments: out}
}
