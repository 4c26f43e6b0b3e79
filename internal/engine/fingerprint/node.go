package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symcache/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symcache/internal/adapters/probe"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symcache/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint guard Graft node.
const NodeID graft.ID = "engine.fingerprint_guard"

func init() {
	graft.Register(graft.Node[*Guard]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			probe.HostNodeID,
			probe.PlatformNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Guard, error) {
			host, err := graft.Dep[ports.HostProber](ctx)
			if err != nil {
				return nil, err
			}

			platform, err := graft.Dep[ports.PlatformProber](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGuard(host, platform, log), nil
		},
	})
}
