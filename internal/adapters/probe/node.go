package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symcache/internal/core/ports"
)

const (
	// HostNodeID is the unique identifier for the host prober Graft node.
	HostNodeID graft.ID = "adapter.host_prober"
	// PlatformNodeID is the unique identifier for the platform prober Graft node.
	PlatformNodeID graft.ID = "adapter.platform_prober"
)

func init() {
	graft.Register(graft.Node[ports.HostProber]{
		ID:        HostNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostProber, error) {
			return NewHost(), nil
		},
	})

	graft.Register(graft.Node[ports.PlatformProber]{
		ID:        PlatformNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformProber, error) {
			return NewPlatform(), nil
		},
	})
}
