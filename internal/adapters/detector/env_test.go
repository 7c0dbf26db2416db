package detector_test

import (
	"os"
	"testing"

	"golang.org/x/term"

	"go.trai.ch/graf/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{
			name:    "CI=true forces plain mode",
			ciValue: "true",
		},
		{
			name:    "CI=1 forces plain mode",
			ciValue: "1",
		},
		{
			name:    "CI=false does not force plain",
			ciValue: "false",
		},
		{
			name:    "No CI env var",
			ciValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalCI := os.Getenv("CI")
			defer func() {
				if originalCI != "" {
					_ = os.Setenv("CI", originalCI)
				} else {
					_ = os.Unsetenv("CI")
				}
			}()

			if tt.ciValue != "" {
				if err := os.Setenv("CI", tt.ciValue); err != nil {
					t.Fatalf("Failed to set CI: %v", err)
				}
			} else {
				_ = os.Unsetenv("CI")
			}

			mode := detector.DetectEnvironment()

			// Only the CI cases have a TTY-independent expectation.
			if tt.ciValue == "true" || tt.ciValue == "1" {
				if mode != detector.ModePlain {
					t.Errorf("Expected ModePlain with CI=%s, got %v", tt.ciValue, mode)
				}
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (TUI)",
			autoDetected: detector.ModeTUI,
			userFlag:     "auto",
			expected:     detector.ModeTUI,
		},
		{
			name:         "auto respects auto-detection (Plain)",
			autoDetected: detector.ModePlain,
			userFlag:     "auto",
			expected:     detector.ModePlain,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "",
			expected:     detector.ModeTUI,
		},
		{
			name:         "tui overrides auto-detection",
			autoDetected: detector.ModePlain,
			userFlag:     "tui",
			expected:     detector.ModeTUI,
		},
		{
			name:         "plain overrides auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "plain",
			expected:     detector.ModePlain,
		},
		{
			name:         "ci is alias for plain",
			autoDetected: detector.ModeTUI,
			userFlag:     "ci",
			expected:     detector.ModePlain,
		},
		{
			name:         "invalid flag respects auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "invalid",
			expected:     detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.ResolveMode(tt.autoDetected, tt.userFlag)
			if got != tt.expected {
				t.Errorf("ResolveMode(%v, %q) = %v, want %v",
					tt.autoDetected, tt.userFlag, got, tt.expected)
			}
		})
	}
}

func TestTerminalSize(t *testing.T) {
	w, h := detector.TerminalSize()

	if w <= 0 || h <= 0 {
		t.Errorf("TerminalSize() = %dx%d, want positive dimensions", w, h)
	}

	// Without a TTY the probe must fall back to the defaults.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if w != detector.DefaultWidth || h != detector.DefaultHeight {
			t.Errorf("TerminalSize() without TTY = %dx%d, want %dx%d",
				w, h, detector.DefaultWidth, detector.DefaultHeight)
		}
	}
}
