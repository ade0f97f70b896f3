package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgseg/pkgseg/internal/core/ports"
)

const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Watcher, error) {
			w, err := NewWatcher()
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	})
}
