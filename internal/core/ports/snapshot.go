package ports

import "go.trai.ch/metapin/internal/core/domain"

// SnapshotStore defines the interface for persisting pin snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotStore interface {
	// Load reads the snapshot stored at path.
	Load(path string) (*domain.Snapshot, error)

	// Save writes the snapshot to path, replacing any previous content.
	Save(path string, snap domain.Snapshot) error
}
