package apt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/metapin/internal/adapters/logger"
	"go.trai.ch/metapin/internal/adapters/snapshot"
	"go.trai.ch/metapin/internal/core/ports"
)

// ProviderNodeID is the graft node providing ports.ResolverFactory.
const ProviderNodeID graft.ID = "adapter.apt.provider"

func init() {
	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, snapshot.NodeID},
		Run: func(ctx context.Context) (ports.ResolverFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}

			return NewProvider(log, store), nil
		},
	})
}
