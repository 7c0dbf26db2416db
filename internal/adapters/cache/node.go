package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/graf/internal/adapters/config"
	"go.trai.ch/graf/internal/core/ports"
)

// NodeID is the unique identifier for the sample cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.SampleCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SampleCache, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			return New(cfg.Cache), nil
		},
	})
}
