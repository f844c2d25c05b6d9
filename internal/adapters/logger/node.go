package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/metapin/internal/core/ports"
)

// NodeID is the graft node providing ports.Logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
