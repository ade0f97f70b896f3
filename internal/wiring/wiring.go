// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pkgseg/pkgseg/internal/adapters/config"
	_ "github.com/pkgseg/pkgseg/internal/adapters/logger"
	_ "github.com/pkgseg/pkgseg/internal/adapters/telemetry"
	_ "github.com/pkgseg/pkgseg/internal/adapters/toml"
	_ "github.com/pkgseg/pkgseg/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/pkgseg/pkgseg/internal/app"
	_ "github.com/pkgseg/pkgseg/internal/engine/generator"
)
