package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/graf/internal/adapters/config"
	"go.trai.ch/graf/internal/adapters/logger"
	"go.trai.ch/graf/internal/core/ports"
)

// NodeID is the unique identifier for the formula file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(cfg.Input.WatchDebounce, log)
		},
	})
}
