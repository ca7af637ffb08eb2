package luastage

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linekit/fragment"
)

// fragmentsToLua builds the script-side view of a line: an array of
// {style=..., text=...} tables, 1-indexed.
func fragmentsToLua(L *lua.LState, frags fragment.List) *lua.LTable {
	t := L.NewTable()
	for i, f := range frags {
		ft := L.NewTable()
		ft.RawSetString("style", lua.LString(f.Style))
		ft.RawSetString("text", lua.LString(f.Text))
		t.RawSetInt(i+1, ft)
	}
	return t
}

// fragmentsFromLua reads a fragment array back from the script. Each
// element must be a table with a string text field; style is optional.
func fragmentsFromLua(t *lua.LTable) (fragment.List, error) {
	n := t.Len()
	out := make(fragment.List, 0, n)
	for i := 1; i <= n; i++ {
		v := t.RawGetInt(i)
		ft, ok := v.(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s", ErrBadResult, i, v.Type())
		}
		text, ok := ft.RawGetString("text").(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%w: element %d has no text", ErrBadResult, i)
		}
		style, _ := ft.RawGetString("style").(lua.LString)
		out = append(out, fragment.Fragment{Style: string(style), Text: string(text)})
	}
	return out, nil
}
