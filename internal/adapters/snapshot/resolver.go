package snapshot

import (
	"context"

	"go.trai.ch/metapin/internal/core/domain"
)

// Resolver implements ports.VersionResolver from a stored snapshot.
type Resolver struct {
	snap *domain.Snapshot
}

// NewResolver creates a resolver answering from snap.
func NewResolver(snap *domain.Snapshot) *Resolver {
	return &Resolver{snap: snap}
}

// Candidate returns the pinned version recorded for key.
func (r *Resolver) Candidate(_ context.Context, key string) (string, bool, error) {
	v, ok := r.snap.Lookup(key)
	return v, ok, nil
}

// Snapshot returns the snapshot the resolver answers from.
func (r *Resolver) Snapshot() *domain.Snapshot {
	return r.snap
}
