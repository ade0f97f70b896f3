package toml

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgseg/pkgseg/internal/core/ports"
)

const NodeID graft.ID = "adapter.env_store"

func init() {
	graft.Register(graft.Node[ports.EnvStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvStore, error) {
			return NewStore(), nil
		},
	})
}
