// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/graf/internal/adapters/cache"
	_ "go.trai.ch/graf/internal/adapters/config"
	_ "go.trai.ch/graf/internal/adapters/expr"
	_ "go.trai.ch/graf/internal/adapters/logger"
	_ "go.trai.ch/graf/internal/adapters/telemetry"
	_ "go.trai.ch/graf/internal/adapters/watcher"
	// Register the app node.
	_ "go.trai.ch/graf/internal/app"
)
