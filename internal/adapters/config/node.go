package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgseg/pkgseg/internal/adapters/logger"
	"github.com/pkgseg/pkgseg/internal/core/ports"
)

const NodeID graft.ID = "adapter.segments_loader"

func init() {
	graft.Register(graft.Node[ports.SegmentsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SegmentsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
