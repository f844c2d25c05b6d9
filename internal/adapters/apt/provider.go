package apt

import (
	"context"

	"go.trai.ch/metapin/internal/adapters/snapshot"
	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/metapin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provider implements ports.ResolverFactory.
type Provider struct {
	logger    ports.Logger
	snapshots ports.SnapshotStore
}

// NewProvider creates a factory for the configured version resolver.
func NewProvider(logger ports.Logger, snapshots ports.SnapshotStore) *Provider {
	return &Provider{
		logger:    logger,
		snapshots: snapshots,
	}
}

// New creates the resolver named by cfg.Resolver.
func (p *Provider) New(_ context.Context, cfg *domain.Config) (ports.VersionResolver, error) {
	switch cfg.Resolver {
	case domain.ResolverAptCache:
		return NewPolicyResolver(), nil
	case domain.ResolverIndex:
		return NewIndexResolver(cfg.ListsDir, p.logger), nil
	case domain.ResolverSnapshot:
		snap, err := p.snapshots.Load(cfg.SnapshotPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load pin snapshot")
		}
		return snapshot.NewResolver(snap), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownResolver, "unsupported resolver"), "resolver", cfg.Resolver)
	}
}
