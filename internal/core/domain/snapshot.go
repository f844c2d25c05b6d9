package domain

// SnapshotVersion is the current pin snapshot format version.
const SnapshotVersion = 1

// Snapshot is a reproducible record of the pins produced by one run.
type Snapshot struct {
	// Version is the snapshot format version.
	Version int `json:"version"`

	// Policy is the name of the policy the pins were resolved with.
	Policy string `json:"policy"`

	// Architecture is the architecture qualifier of the run, if any.
	Architecture string `json:"architecture,omitempty"`

	// Fingerprint identifies the Depends entries the snapshot was taken from.
	Fingerprint string `json:"fingerprint"`

	// Packages maps lookup keys to candidate versions.
	Packages map[string]string `json:"packages"`
}

// NewSnapshot records the resolved pins of a rewrite.
func NewSnapshot(policy Policy, arch, fingerprint string, pins []Pin) Snapshot {
	packages := make(map[string]string, len(pins))
	for _, pin := range pins {
		if pin.Entry.Placeholder {
			continue
		}
		packages[pin.Key] = pin.Version
	}
	return Snapshot{
		Version:      SnapshotVersion,
		Policy:       policy.Name,
		Architecture: arch,
		Fingerprint:  fingerprint,
		Packages:     packages,
	}
}

// Lookup returns the pinned version for a key.
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.Packages[key]
	return v, ok
}
