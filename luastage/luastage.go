// Package luastage runs user-scripted restyling stages written in Lua.
// A script defines transform(fragments, lineno) receiving the line as
// an array of {style, text} tables and returning the restyled array.
// Scripts may change styles and fragment boundaries but not the line's
// text length: a result of a different length, like any script error,
// degrades to the unchanged line so rendering never fails.
package luastage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/processor"
)

// Stage is a Lua-scripted processor. The interpreter state is owned by
// the stage and guarded by a mutex; gopher-lua states are not
// goroutine-safe.
type Stage struct {
	name   string
	logger *log.Logger

	mu     sync.Mutex
	state  *lua.LState
	fn     *lua.LFunction
	closed bool
}

// Option configures a Stage.
type Option func(*Stage)

// WithLogger sets the logger used when a script degrades at render
// time.
func WithLogger(logger *log.Logger) Option {
	return func(s *Stage) { s.logger = logger }
}

// New compiles source and returns the scripted stage. The script runs
// once at load time and must leave a global transform function behind;
// anything else is a construction error.
func New(name, source string, opts ...Option) (*Stage, error) {
	if source == "" {
		return nil, fmt.Errorf("stage %s: %w", name, ErrEmptyScript)
	}

	s := &Stage{name: name}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading stage %s: %w", name, err)
	}
	fn, ok := L.GetGlobal("transform").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("stage %s: %w", name, ErrNoTransform)
	}

	s.state = L
	s.fn = fn
	return s, nil
}

// NewFile loads a scripted stage from path, named after the file.
func NewFile(path string, opts ...Option) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stage script: %w", err)
	}
	return New(filepath.Base(path), string(data), opts...)
}

// openSafeLibraries opens base, table, string, and math. The io, os,
// and debug libraries stay closed to rendering scripts.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Name returns the stage's name.
func (s *Stage) Name() string {
	return s.name
}

// Close releases the interpreter. A closed stage renders lines
// unchanged.
func (s *Stage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.state.Close()
	s.closed = true
	return nil
}

// Apply calls the script's transform with the line's fragments and the
// 1-based line number. Script failures and length-changing results log
// once per occurrence and leave the line unchanged.
func (s *Stage) Apply(in processor.Input) processor.Transformation {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity := processor.Transformation{Fragments: in.Fragments}
	if s.closed {
		return identity
	}

	out, err := s.call(in)
	if err != nil {
		s.logger.Warn("lua stage degraded to identity",
			"stage", s.name, "line", in.LineNo, "err", err)
		return identity
	}
	if out.Len() != in.Fragments.Len() {
		s.logger.Warn("lua stage changed the line length",
			"stage", s.name, "line", in.LineNo,
			"expected", in.Fragments.Len(), "got", out.Len())
		return identity
	}
	return processor.Transformation{Fragments: out}
}

// call invokes transform with panic recovery; gopher-lua raises Go
// panics for some script misbehavior.
func (s *Stage) call(in processor.Input) (out fragment.List, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	L := s.state
	top := L.GetTop()
	defer L.SetTop(top)

	L.Push(s.fn)
	L.Push(fragmentsToLua(L, in.Fragments))
	L.Push(lua.LNumber(in.LineNo + 1))
	if err := L.PCall(2, 1, nil); err != nil {
		return nil, err
	}

	result, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrBadResult, L.Get(-1).Type())
	}
	return fragmentsFromLua(result)
}
