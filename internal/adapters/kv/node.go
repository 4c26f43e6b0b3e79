package kv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symcache/internal/core/ports"
)

// NodeID is the unique identifier for the key-value store opener Graft node.
const NodeID graft.ID = "adapter.kv_opener"

func init() {
	graft.Register(graft.Node[ports.KVOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KVOpener, error) {
			return NewOpener(), nil
		},
	})
}
