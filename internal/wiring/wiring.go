// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/encore/internal/adapters/config"
	_ "go.trai.ch/encore/internal/adapters/fs"
	_ "go.trai.ch/encore/internal/adapters/html"
	_ "go.trai.ch/encore/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/encore/internal/app"
)
