package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/metapin/internal/core/ports"
)

// NodeID is the graft node providing ports.SnapshotStore.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotStore, error) {
			return NewStore(), nil
		},
	})
}
