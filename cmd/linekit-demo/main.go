// Package main is an interactive one-line prompt showing the render
// pipeline: editing with tab expansion, bracket and search
// highlighting, history suggestions, and reverse-i-search. Without a
// terminal it renders a sample statically and exits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/dshills/linekit/config"
	"github.com/dshills/linekit/control"
	"github.com/dshills/linekit/fragment"
	"github.com/dshills/linekit/search"
	"github.com/dshills/linekit/suggest"
	"github.com/dshills/linekit/theme"
)

// Version information (set via ldflags during build).
var version = "dev"

// sampleHistory seeds the suggestion provider so completions and
// reverse-i-search have something to find right away.
var sampleHistory = []string{
	"echo hello world",
	"ls -la",
	"grep -rn pattern .",
	"git status",
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg := config.Default()
	baseDir := ""
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
			return 1
		}
		cfg = loaded
		baseDir = filepath.Dir(opts.ConfigPath)
	}
	if opts.Theme != "" {
		cfg.Theme.Name = opts.Theme
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	// Interactive logs go to a file or nowhere; writing to stderr
	// would tear the screen.
	logger := log.New(os.Stderr)
	if interactive {
		logger = log.New(io.Discard)
		if opts.LogPath != "" {
			f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
				return 1
			}
			defer f.Close()
			logger = log.New(f)
		}
	}

	pipe, err := config.Build(cfg, config.WithLogger(logger), config.WithBaseDir(baseDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: building pipeline: %v\n", err)
		return 1
	}

	th, err := config.BuildTheme(cfg)
	if err != nil {
		_ = pipe.Close()
		fmt.Fprintf(os.Stderr, "Error: building theme: %v\n", err)
		return 1
	}

	if !interactive {
		code := runStatic(os.Stdout, pipe)
		_ = pipe.Close()
		return code
	}
	return runInteractive(opts, pipe, th, logger, baseDir)
}

type options struct {
	ConfigPath string
	Theme      string
	LogPath    string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a pipeline/theme config file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to a pipeline/theme config file (shorthand)")
	flag.StringVar(&opts.Theme, "theme", "", "Theme name override (default, mono)")
	flag.StringVar(&opts.LogPath, "log", "", "Append logs to this file while interactive")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linekit-demo - interactive line rendering demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linekit-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Keys: Ctrl+R reverse search, Ctrl+S forward search, Tab literal tab,\n")
		fmt.Fprintf(os.Stderr, "      Right at end accepts the suggestion, Enter submits, Ctrl+C quits.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("linekit-demo %s\n", version)
		os.Exit(0)
	}
	return opts
}

// runStatic renders a sample line and a reverse-i-search preview to w.
// It keeps the demo useful in pipes and CI where no terminal exists.
func runStatic(w io.Writer, pipe *config.Pipeline) int {
	session := control.NewSession()
	history := suggest.NewHistory(suggest.DefaultHistoryLimit)
	for _, cmd := range sampleHistory {
		history.Add(cmd)
	}

	buf := control.NewBuffer("echo (hello\tworld)")
	buf.SetProvider(history)
	input := control.New(buf, control.WithChain(pipe.Chain()))
	session.Focus(input)

	session.BeginRender()
	content := input.CreateContent(session, 80, 1)
	fmt.Fprintln(w, content.Line(0).Text())

	searchCtl := control.NewSearchControl(control.PromptReverseISearch)
	searchCtl.Begin(input, search.Backward)
	searchCtl.Buffer().InsertText("wor")
	session.Focus(searchCtl.Control)

	session.BeginRender()
	preview := searchCtl.CreateContent(session, 80, 1)
	fmt.Fprintln(w, preview.Line(0).Text())
	return 0
}

func runInteractive(opts options, pipe *config.Pipeline, th *theme.Theme, logger *log.Logger, baseDir string) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	history := suggest.NewHistory(suggest.DefaultHistoryLimit)
	for _, cmd := range sampleHistory {
		history.Add(cmd)
	}

	buf := control.NewBuffer("")
	buf.SetProvider(history)
	input := control.New(buf, control.WithChain(pipe.Chain()))

	session := control.NewSession()
	session.Focus(input)

	a := &app{
		screen:        screen,
		session:       session,
		input:         input,
		searchCtl:     control.NewSearchControl(control.PromptReverseISearch),
		history:       history,
		th:            th,
		pipe:          pipe,
		themeOverride: opts.Theme,
		baseDir:       baseDir,
		logger:        logger,
	}
	defer func() { _ = a.pipe.Close() }()

	if opts.ConfigPath != "" {
		watcher, err := config.Watch(opts.ConfigPath, func(cfg *config.Config) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(cfg))
		}, config.WithWatchLogger(logger))
		if err != nil {
			logger.Warn("config watch unavailable", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	for {
		a.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(*config.Config); ok {
				a.applyConfig(cfg)
			}
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return 0
			}
		}
	}
}

// app holds the interactive state: the prompt control, the search
// input, and the currently active pipeline and theme.
type app struct {
	screen        tcell.Screen
	session       *control.Session
	input         *control.Control
	searchCtl     *control.SearchControl
	history       *suggest.History
	th            *theme.Theme
	pipe          *config.Pipeline
	themeOverride string
	baseDir       string
	logger        *log.Logger
	echoes        []string
}

// handleKey processes one key event and reports whether to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true

	case tcell.KeyEscape:
		if a.searchCtl.Active() {
			a.endSearch(false)
			return false
		}
		return true

	case tcell.KeyCtrlR:
		if !a.searchCtl.Active() {
			a.searchCtl.Begin(a.input, search.Backward)
			a.session.Focus(a.searchCtl.Control)
		}

	case tcell.KeyCtrlS:
		if !a.searchCtl.Active() {
			a.searchCtl.Begin(a.input, search.Forward)
			a.session.Focus(a.searchCtl.Control)
		}

	case tcell.KeyEnter:
		if a.searchCtl.Active() {
			a.endSearch(true)
		} else {
			a.submit()
		}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.activeBuffer().DeleteBeforeCursor(1)

	case tcell.KeyLeft:
		if !a.searchCtl.Active() {
			a.input.Buffer().MoveCursor(-1)
		}

	case tcell.KeyRight:
		if !a.searchCtl.Active() {
			buf := a.input.Buffer()
			if buf.Document().IsCursorAtEnd() {
				buf.AcceptSuggestion()
			} else {
				buf.MoveCursor(1)
			}
		}

	case tcell.KeyHome, tcell.KeyCtrlA:
		if !a.searchCtl.Active() {
			a.input.Buffer().MoveCursorTo(0)
		}

	case tcell.KeyEnd, tcell.KeyCtrlE:
		if !a.searchCtl.Active() {
			buf := a.input.Buffer()
			buf.MoveCursorTo(buf.Document().Len())
		}

	case tcell.KeyCtrlU:
		a.activeBuffer().Reset()

	case tcell.KeyTab:
		a.activeBuffer().InsertText("\t")

	case tcell.KeyRune:
		a.activeBuffer().InsertText(string(ev.Rune()))
	}
	return false
}

// activeBuffer returns the buffer keystrokes edit: the search query
// while a search is open, the prompt otherwise.
func (a *app) activeBuffer() *control.Buffer {
	if a.searchCtl.Active() {
		return a.searchCtl.Buffer()
	}
	return a.input.Buffer()
}

func (a *app) endSearch(accept bool) {
	if accept {
		a.searchCtl.Accept()
	} else {
		a.searchCtl.Cancel()
	}
	a.session.Focus(a.input)
}

func (a *app) submit() {
	text := a.input.Buffer().Text()
	a.history.Add(text)
	if text != "" {
		a.echoes = append(a.echoes, "> "+text)
	}
	a.input.Buffer().Reset()
}

// applyConfig swaps in a reloaded pipeline and theme. A revision that
// fails to build is logged and dropped; the running config stays.
func (a *app) applyConfig(cfg *config.Config) {
	if a.themeOverride != "" {
		cfg.Theme.Name = a.themeOverride
	}
	pipe, err := config.Build(cfg, config.WithLogger(a.logger), config.WithBaseDir(a.baseDir))
	if err != nil {
		a.logger.Warn("config rejected", "err", err)
		return
	}
	th, err := config.BuildTheme(cfg)
	if err != nil {
		_ = pipe.Close()
		a.logger.Warn("config rejected", "err", err)
		return
	}

	_ = a.pipe.Close()
	a.pipe = pipe
	a.th = th
	a.input.SetChain(pipe.Chain())
}

func (a *app) draw() {
	a.session.BeginRender()
	a.screen.Clear()
	w, h := a.screen.Size()

	row := 0
	maxEchoes := h - 2
	if maxEchoes < 0 {
		maxEchoes = 0
	}
	echoes := a.echoes
	if len(echoes) > maxEchoes {
		echoes = echoes[len(echoes)-maxEchoes:]
	}
	base := a.th.Base()
	for _, line := range echoes {
		drawString(a.screen, 0, row, line, base)
		row++
	}

	content := a.input.CreateContent(a.session, w, 1)
	paintLine(a.screen, row, content.Line(0), a.th)
	cursorRow := row
	cursorLine := content.Line(0)
	cursorCol := content.Cursor().Col

	if a.searchCtl.Active() {
		preview := a.searchCtl.CreateContent(a.session, w, 1)
		paintLine(a.screen, row+1, preview.Line(0), a.th)
		cursorRow = row + 1
		cursorLine = preview.Line(0)
		cursorCol = preview.Cursor().Col
	}

	a.screen.ShowCursor(cellColumn(cursorLine.Text(), cursorCol), cursorRow)
	a.screen.Show()
}

// paintLine draws one rendered line, resolving each fragment's style
// class set through the theme.
func paintLine(s tcell.Screen, row int, line fragment.List, th *theme.Theme) {
	col := 0
	for _, f := range line {
		drawString(s, col, row, f.Text, th.ResolveSet(f.Style))
		col += runewidth.StringWidth(f.Text)
	}
}

// drawString paints text one grapheme cluster per cell run, keeping
// combining marks attached to their base.
func drawString(s tcell.Screen, col, row int, text string, st tcell.Style) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.SetContent(col, row, runes[0], runes[1:], st)
		col += runewidth.StringWidth(g.Str())
	}
}

// cellColumn converts a display rune offset into a terminal cell
// column, accounting for wide and zero-width characters.
func cellColumn(text string, runeOffset int) int {
	runes := []rune(text)
	if runeOffset > len(runes) {
		runeOffset = len(runes)
	}
	if runeOffset < 0 {
		runeOffset = 0
	}
	return runewidth.StringWidth(string(runes[:runeOffset]))
}
