// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/toolres/internal/adapters/config"
	_ "go.trai.ch/toolres/internal/adapters/fs"
	_ "go.trai.ch/toolres/internal/adapters/host"
	_ "go.trai.ch/toolres/internal/adapters/lockfile"
	_ "go.trai.ch/toolres/internal/adapters/logger"
	_ "go.trai.ch/toolres/internal/adapters/manifest"
	_ "go.trai.ch/toolres/internal/adapters/settings"
	_ "go.trai.ch/toolres/internal/adapters/shell"
	_ "go.trai.ch/toolres/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/toolres/internal/app"
	_ "go.trai.ch/toolres/internal/engine/chain"
	_ "go.trai.ch/toolres/internal/engine/resolver"
)
