package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgseg/pkgseg/internal/adapters/logger"
	"github.com/pkgseg/pkgseg/internal/adapters/telemetry"
	"github.com/pkgseg/pkgseg/internal/adapters/toml"
	"github.com/pkgseg/pkgseg/internal/core/ports"
)

const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{toml.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Generator, error) {
			store, err := graft.Dep[ports.EnvStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			provider, err := graft.Dep[*telemetry.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, log, provider.Tracer()), nil
		},
	})
}
