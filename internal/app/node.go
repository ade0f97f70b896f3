package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgseg/pkgseg/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/adapters/toml"      //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/core/ports"
	"github.com/pkgseg/pkgseg/internal/engine/generator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the top-level objects the CLI needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry *telemetry.Provider
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			toml.NodeID,
			generator.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			segments, err := graft.Dep[ports.SegmentsLoader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.EnvStore](ctx)
			if err != nil {
				return nil, err
			}
			gen, err := graft.Dep[*generator.Generator](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(segments, store, gen, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
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
			return &Components{App: application, Logger: log, Telemetry: provider}, nil
		},
	})
}
