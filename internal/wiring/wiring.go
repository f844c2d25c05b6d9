// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/metapin/internal/adapters/apt"
	_ "go.trai.ch/metapin/internal/adapters/config"
	_ "go.trai.ch/metapin/internal/adapters/control"
	_ "go.trai.ch/metapin/internal/adapters/logger"
	_ "go.trai.ch/metapin/internal/adapters/snapshot"
	// Register app nodes.
	_ "go.trai.ch/metapin/internal/app"
)
