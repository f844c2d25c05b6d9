package ports

import (
	"context"

	"go.trai.ch/metapin/internal/core/domain"
)

// VersionResolver looks up candidate versions in a package cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type VersionResolver interface {
	// Candidate returns the version the package cache would install for key.
	// The key is a package name, optionally qualified with an architecture ("name:arch").
	// It returns found == false and a nil error when the cache does not know the key.
	Candidate(ctx context.Context, key string) (version string, found bool, err error)
}

// ResolverFactory builds the version resolver selected by the configuration.
type ResolverFactory interface {
	// New creates a resolver for cfg.Resolver.
	New(ctx context.Context, cfg *domain.Config) (VersionResolver, error)
}
