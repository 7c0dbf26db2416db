package ports

import "go.trai.ch/graf/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given working directory.
	// A missing file yields the defaults; a malformed or invalid file
	// yields an error.
	Load(cwd string) (domain.Config, error)

	// Discover returns the path of the config file that Load would read,
	// and whether one exists.
	Discover(cwd string) (string, bool)
}
