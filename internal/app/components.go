package app

import "go.trai.ch/symcache/internal/core/ports"

// Components holds what the command line entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
