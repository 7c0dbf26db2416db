package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/graf/internal/adapters/cache"
	"go.trai.ch/graf/internal/adapters/expr"
	"go.trai.ch/graf/internal/adapters/telemetry"
	"go.trai.ch/graf/internal/app"
	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// testApp wires an App from a real compiler, a real sample cache and a noop
// tracer, with mocks only at the edges that touch the environment.
type testApp struct {
	app     *app.App
	loader  *mocks.MockConfigLoader
	watcher *mocks.MockWatcher
	logger  *mocks.MockLogger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	watcherMock := mocks.NewMockWatcher(ctrl)
	loggerMock := mocks.NewMockLogger(ctrl)

	compiler, err := expr.New(domain.ExprConfig{})
	require.NoError(t, err)
	sampleCache := cache.New(domain.CacheConfig{MaxEntries: domain.DefaultCacheCeiling})

	a := app.New(loader, compiler, sampleCache, watcherMock, loggerMock, telemetry.NewNoOpTracer())
	return &testApp{app: a, loader: loader, watcher: watcherMock, logger: loggerMock}
}

func TestApp_Render(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ta := newTestApp(t)
	ta.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).AnyTimes()

	out, err := ta.app.Render(context.Background(), app.RenderOptions{
		Expression: "x",
		Width:      40,
		Height:     12,
	})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	for i, line := range lines {
		assert.Equal(t, 40, utf8.RuneCountInString(line), "line %d width", i)
	}

	// The default view has both axes in frame.
	assert.Contains(t, out, "⠅", "vertical axis")
}

func TestApp_Render_Errors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		opts app.RenderOptions
		want error
	}{
		{
			name: "empty expression",
			opts: app.RenderOptions{Width: 10, Height: 5},
			want: domain.ErrNoExpression,
		},
		{
			name: "blank expression",
			opts: app.RenderOptions{Expression: "   ", Width: 10, Height: 5},
			want: domain.ErrNoExpression,
		},
		{
			name: "unknown identifier",
			opts: app.RenderOptions{Expression: "foo(x)", Width: 10, Height: 5},
			want: domain.ErrUnknownIdentifier,
		},
		{
			name: "inverted bounds",
			opts: app.RenderOptions{
				Expression: "x",
				Width:      10, Height: 5,
				XMin: 5, XMax: -5,
			},
			want: domain.ErrInvalidBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).AnyTimes()

			_, err := ta.app.Render(context.Background(), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApp_Render_ConfigLoadFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(".").Return(domain.Config{}, domain.ErrConfigParseFailed)

	_, err := ta.app.Render(context.Background(), app.RenderOptions{Expression: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_PlainMode(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	ta := newTestApp(t)
	ta.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).AnyTimes()

	var buf bytes.Buffer
	ta.app.WithStdout(&buf)

	err := ta.app.Run(context.Background(), app.RunOptions{
		Expression: "x",
		OutputMode: "plain",
	})
	require.NoError(t, err)

	// Without a TTY the frame falls back to 80x24, minus the prompt line.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 23)
	for i, line := range lines {
		assert.Equal(t, 80, utf8.RuneCountInString(line), "line %d width", i)
	}
	assert.Contains(t, buf.String(), "⠅", "vertical axis")
}

func TestApp_Run_PlainModeNeedsExpression(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).AnyTimes()

	err := ta.app.Run(context.Background(), app.RunOptions{OutputMode: "ci"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoExpression)
}

func TestApp_Run_TUIStopsOnCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		// Use a temporary directory for the test
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get current working directory: %v", err)
		}
		defer func() {
			if errChdir := os.Chdir(cwd); errChdir != nil {
				t.Fatalf("Failed to restore working directory: %v", errChdir)
			}
		}()

		tmpDir := t.TempDir()
		if errChdir := os.Chdir(tmpDir); errChdir != nil {
			t.Fatalf("Failed to change into temp directory: %v", errChdir)
		}

		ta := newTestApp(t)
		ta.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)

		ta.app.WithTeaOptions(
			tea.WithInput(strings.NewReader("")),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
			tea.WithoutRenderer(),
		)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- ta.app.Run(ctx, app.RunOptions{OutputMode: "tui"})
		}()

		// Let the engine publish its first frame, then pull the plug.
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		cancel()

		if err := <-errCh; err != nil {
			t.Errorf("Expected a clean shutdown, got: %v", err)
		}
	})
}

func TestApp_Run_WatchFileMissing(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil)

	err := ta.app.Run(context.Background(), app.RunOptions{
		WatchFile:  filepath.Join(t.TempDir(), "missing.fx"),
		OutputMode: "tui",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormulaReadFailed)
}

func TestApp_Run_ConfigLoadFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(".").Return(domain.Config{}, domain.ErrConfigReadFailed)

	err := ta.app.Run(context.Background(), app.RunOptions{Expression: "x"})
	require.Error(t, err)
	if !errors.Is(err, domain.ErrConfigReadFailed) {
		t.Errorf("Expected the config sentinel in the chain, got: %v", err)
	}
	assert.Contains(t, err.Error(), "failed to load configuration")
}
