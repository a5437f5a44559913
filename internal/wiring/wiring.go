// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fbgen/internal/adapters/backend"
	_ "go.trai.ch/fbgen/internal/adapters/config"
	_ "go.trai.ch/fbgen/internal/adapters/logger"
	_ "go.trai.ch/fbgen/internal/adapters/planner"
	_ "go.trai.ch/fbgen/internal/adapters/shell"
	_ "go.trai.ch/fbgen/internal/adapters/state"
	_ "go.trai.ch/fbgen/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/fbgen/internal/adapters/toolchain"
	// Register the app node.
	_ "go.trai.ch/fbgen/internal/app"
)
