// Package config provides the configuration loader for graf.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/graf/internal/core/domain"
	"go.trai.ch/graf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load returns the configuration for the given working directory. Every key
// the discovered file sets overrides the default; a rejected file never
// yields a half-applied configuration.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, found := l.Discover(cwd)
	if !found {
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	overlay(&cfg, &file)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	l.Logger.Info(fmt.Sprintf("loaded configuration from %s", path))
	return cfg, nil
}

// Discover returns the path Load would read. It walks from cwd towards the
// filesystem root looking for graf.yaml, then falls back to the user
// configuration directory.
func (l *Loader) Discover(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if userDir, err := os.UserConfigDir(); err == nil {
		configPath := filepath.Join(userDir, "graf", domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}
	}

	return "", false
}

// overlay applies every key present in the file on top of cfg.
func overlay(cfg *domain.Config, file *File) {
	if p := file.Plot; p != nil {
		set(&cfg.Plot.XMin, p.XMin)
		set(&cfg.Plot.XMax, p.XMax)
		set(&cfg.Plot.YMin, p.YMin)
		set(&cfg.Plot.YMax, p.YMax)
		if p.Color != "" {
			cfg.Plot.Color = p.Color
		}
	}
	if s := file.Sampler; s != nil {
		set(&cfg.Sampler.RefineDepth, s.RefineDepth)
		set(&cfg.Sampler.PointBudgetFactor, s.PointBudgetFactor)
		set(&cfg.Sampler.OverflowLimit, s.OverflowLimit)
	}
	if c := file.Cache; c != nil {
		set(&cfg.Cache.MaxEntries, c.MaxEntries)
	}
	if i := file.Input; i != nil {
		setMillis(&cfg.Input.SettleWindow, i.SettleMs)
		set(&cfg.Input.NudgeFraction, i.NudgeFraction)
		set(&cfg.Input.WheelZoomStep, i.WheelZoomStep)
		set(&cfg.Input.KeyZoomFactor, i.KeyZoomFactor)
		setMillis(&cfg.Input.WatchDebounce, i.WatchDebounceMs)
	}
	if e := file.Expr; e != nil {
		if len(e.Functions) > 0 {
			cfg.Expr.Functions = e.Functions
		}
		if len(e.Constants) > 0 {
			cfg.Expr.Constants = e.Constants
		}
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setMillis(dst *time.Duration, src *int) {
	if src != nil {
		*dst = time.Duration(*src) * time.Millisecond
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target
// struct. Decoding is strict: a key the schema does not know is a parse
// error, so a typo silently reverting a tunable to its default cannot happen.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from config discovery
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(domain.ErrConfigReadFailed, "cause", err.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.With(domain.ErrConfigParseFailed, "cause", parseErr.Error())
	}

	return nil
}
