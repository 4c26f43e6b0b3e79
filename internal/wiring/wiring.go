// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/symcache/internal/adapters/config"
	_ "go.trai.ch/symcache/internal/adapters/kv"
	_ "go.trai.ch/symcache/internal/adapters/logger"
	_ "go.trai.ch/symcache/internal/adapters/probe"
	_ "go.trai.ch/symcache/internal/adapters/telemetry"
	_ "go.trai.ch/symcache/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/symcache/internal/app"
	_ "go.trai.ch/symcache/internal/engine/fingerprint"
)
