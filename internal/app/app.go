// Package app implements the application layer for graf.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/graf/internal/adapters/canvas"
	"go.trai.ch/graf/internal/adapters/detector"
	"go.trai.ch/graf/internal/adapters/tui"
	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports"
	"go.trai.ch/graf/internal/engine/sampler"
	"go.trai.ch/graf/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     ports.Compiler
	cache        ports.SampleCache
	watcher      ports.Watcher
	logger       ports.Logger
	tracer       ports.Tracer
	teaOptions   []tea.ProgramOption
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compiler ports.Compiler,
	cache ports.SampleCache,
	watcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		compiler:     compiler,
		cache:        cache,
		watcher:      watcher,
		logger:       log,
		tracer:       tracer,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects plain-mode output. Used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Expression is the formula to plot on startup, may be empty.
	Expression string
	// WatchFile, when set, is a formula file to follow for live reload.
	WatchFile string
	// OutputMode overrides auto-detection: auto, tui, plain or ci.
	OutputMode string
	// Color overrides the configured curve color.
	Color string
}

// Run starts an interactive plotting session. In plain mode (no TTY, CI, or
// forced by flag) it degrades to a single rendered frame on stdout.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	expression := strings.TrimSpace(opts.Expression)
	if opts.WatchFile != "" {
		content, err := os.ReadFile(opts.WatchFile)
		if err != nil {
			return zerr.With(zerr.With(domain.ErrFormulaReadFailed, "path", opts.WatchFile), "cause", err.Error())
		}
		expression = strings.TrimSpace(string(content))
	}

	// Detect environment and resolve output mode.
	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)

	if mode != detector.ModeTUI {
		out, err := a.Render(ctx, RenderOptions{
			Expression: expression,
			Color:      opts.Color,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, out)
		return err
	}

	color := opts.Color
	if color == "" {
		color = cfg.Plot.Color
	}

	// Logs would scribble over the alternate screen; park them in .graf.
	restoreLogs := a.redirectLogs()
	defer restoreLogs()

	sched := scheduler.NewScheduler(cfg, a.compiler, a.cache, a.logger, a.tracer)

	model := tui.NewModel(sched, color, os.Stdout)
	optsTea := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, a.teaOptions...)
	renderer := tui.NewRenderer(&model, optsTea...)

	if opts.WatchFile != "" {
		if err := a.watcher.Start(ctx, opts.WatchFile); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	// The engine runs until this is canceled. A clean TUI quit returns nil,
	// which errgroup alone would not propagate as a stop signal.
	loopCtx, loopCancel := context.WithCancel(gctx)

	// Renderer routine.
	g.Go(func() error {
		defer loopCancel()
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		// Wait blocks until the TUI has terminated.
		if err := renderer.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})

	// Engine routine.
	g.Go(func() error {
		defer func() {
			// Handle panic recovery for the engine goroutine.
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "engine panic: %v\n", r)
			}
			// Ensure the renderer stops when the engine finishes.
			_ = renderer.Stop()
		}()

		if err := sched.Run(loopCtx, renderer); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	// Watch routine: debounced file events become expression submissions.
	if opts.WatchFile != "" {
		g.Go(func() error {
			defer func() { _ = a.watcher.Stop() }()
			a.followFormula(opts.WatchFile, sched, renderer)
			return nil
		})
	}

	if expression != "" {
		sched.SubmitExpression(expression)
	}

	return g.Wait()
}

// followFormula reloads the formula on every debounced file event. Unreadable
// or vanished files surface as input errors; the current curve stays.
func (a *App) followFormula(path string, controller ports.Controller, renderer ports.Renderer) {
	for event := range a.watcher.Events() {
		if event.Operation == ports.OpRemove || event.Operation == ports.OpRename {
			renderer.OnInputError(path, domain.ErrFormulaReadFailed)
			continue
		}

		content, err := os.ReadFile(event.Path)
		if err != nil {
			renderer.OnInputError(path, domain.ErrFormulaReadFailed)
			continue
		}
		controller.SubmitExpression(strings.TrimSpace(string(content)))
	}
}

// redirectLogs moves the session log to .graf/debug.log for the duration of
// the TUI. On any failure logging simply stays where it is.
func (a *App) redirectLogs() func() {
	sink, ok := a.logger.(interface{ SetOutput(io.Writer) })
	if !ok {
		return func() {}
	}
	if err := os.MkdirAll(domain.DefaultGrafPath(), domain.DirPerm); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(domain.DefaultDebugLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return func() {}
	}
	sink.SetOutput(f)
	return func() {
		sink.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Expression is the formula to draw.
	Expression string
	// Width and Height are the output size in terminal cells. Zero means
	// the detected terminal size (80x24 without a TTY).
	Width  int
	Height int
	// XMin/XMax/YMin/YMax bound the view. All zero means the configured
	// default bounds.
	XMin, XMax float64
	YMin, YMax float64
	// Color overrides the configured curve color.
	Color string
}

// Render compiles and samples the expression once, at refined quality, and
// returns the drawn frame. No loop, no interaction; this is the engine of
// the render command.
func (a *App) Render(ctx context.Context, opts RenderOptions) (string, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	text := strings.TrimSpace(opts.Expression)
	if text == "" {
		return "", domain.ErrNoExpression
	}

	compiled, err := a.compiler.Compile(text)
	if err != nil {
		return "", err
	}

	cols, rows := opts.Width, opts.Height
	if cols <= 0 || rows <= 0 {
		cols, rows = detector.TerminalSize()
		// Leave the shell prompt its line.
		rows--
	}

	view := domain.Viewport{
		XMin:   opts.XMin,
		XMax:   opts.XMax,
		YMin:   opts.YMin,
		YMax:   opts.YMax,
		Width:  cols * canvas.CellWidth,
		Height: rows * canvas.CellHeight,
	}
	if opts.XMin == 0 && opts.XMax == 0 {
		view.XMin, view.XMax = cfg.Plot.XMin, cfg.Plot.XMax
	}
	if opts.YMin == 0 && opts.YMax == 0 {
		view.YMin, view.YMax = cfg.Plot.YMin, cfg.Plot.YMax
	}
	if err := view.Validate(); err != nil {
		return "", err
	}

	_, span := a.tracer.Start(ctx, "render")
	defer span.End()

	started := time.Now()
	samples := sampler.NewSampler(cfg.Sampler, a.cache).Sample(view, compiled, domain.QualityRefined)

	frame := domain.Frame{
		Expr:    text,
		ID:      compiled.ID(),
		View:    view,
		Samples: samples,
		Stats: domain.FrameStats{
			Points:  samples.Len(),
			Elapsed: time.Since(started),
		},
	}

	span.SetAttribute("expr", text)
	span.SetAttribute("points", frame.Stats.Points)

	color := opts.Color
	if color == "" {
		color = cfg.Plot.Color
	}
	return canvas.New().WithCurveColor(color).Render(frame), nil
}
