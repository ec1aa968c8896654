package html

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/encore/internal/adapters/logger"
	"go.trai.ch/encore/internal/core/ports"
)

// NodeID is the unique identifier for the HTML registry Graft node.
const NodeID graft.ID = "adapter.html_registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(log, ""), nil
		},
	})
}
