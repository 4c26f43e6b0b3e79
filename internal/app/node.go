package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/kv"        //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/symcache/internal/core/ports"
	"go.trai.ch/symcache/internal/engine/fingerprint"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			kv.NodeID,
			fingerprint.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.KVOpener](ctx)
	if err != nil {
		return nil, err
	}

	guard, err := graft.Dep[*fingerprint.Guard](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, guard, w, tracer, log), nil
}
