package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/graf/internal/adapters/cache"
	"go.trai.ch/graf/internal/adapters/config"
	"go.trai.ch/graf/internal/adapters/expr"
	"go.trai.ch/graf/internal/adapters/logger"
	"go.trai.ch/graf/internal/adapters/telemetry"
	"go.trai.ch/graf/internal/adapters/watcher"
	"go.trai.ch/graf/internal/core/ports"
)

// Components aggregates everything main needs, assembled by Graft.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			expr.NodeID,
			cache.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}
			sampleCache, err := graft.Dep[ports.SampleCache](ctx)
			if err != nil {
				return nil, err
			}
			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, compiler, sampleCache, watch, log, tracer),
				Logger: log,
			}, nil
		},
	})
}
