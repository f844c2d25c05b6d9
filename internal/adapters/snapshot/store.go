// Package snapshot persists resolved pins so a run can be replayed without a package cache.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store implements ports.SnapshotStore using indented JSON files.
type Store struct{}

// NewStore creates a new snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the snapshot stored at path.
func (s *Store) Load(path string) (*domain.Snapshot, error) {
	//nolint:gosec // path is provided by user configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read snapshot"), "path", path)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal snapshot"), "path", path)
	}

	if snap.Version != domain.SnapshotVersion {
		verErr := zerr.Wrap(domain.ErrInvalidSnapshot, "unsupported snapshot version")
		verErr = zerr.With(verErr, "path", path)
		return nil, zerr.With(verErr, "version", snap.Version)
	}
	if snap.Packages == nil {
		snap.Packages = make(map[string]string)
	}
	return &snap, nil
}

// Save writes the snapshot to path, creating parent directories as needed.
func (s *Store) Save(path string, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}
	data = append(data, '\n')

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for snapshot"), "path", path)
	}

	//nolint:gosec // path is provided by user configuration
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write snapshot"), "path", path)
	}
	return nil
}
