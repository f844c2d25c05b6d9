package apt

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/metapin/internal/adapters/control"
	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/metapin/internal/core/ports"
	"go.trai.ch/zerr"
	"pault.ag/go/debian/version"
)

// packagesGlob matches the Packages indices apt keeps in its lists directory.
const packagesGlob = "*_Packages"

// IndexResolver implements ports.VersionResolver by scanning apt Packages indices.
//
// The candidate for a key is the highest version, by Debian version ordering,
// among the matching stanzas. Apt pinning priorities are not evaluated.
type IndexResolver struct {
	listsDir string
	logger   ports.Logger

	once  sync.Once
	index map[string]indexedVersion
	err   error
}

// indexedVersion keeps the version as written in the index next to its parsed form.
type indexedVersion struct {
	raw    string
	parsed version.Version
}

// NewIndexResolver creates a resolver reading the Packages files in listsDir.
func NewIndexResolver(listsDir string, logger ports.Logger) *IndexResolver {
	return &IndexResolver{
		listsDir: listsDir,
		logger:   logger,
	}
}

// Candidate returns the highest known version for key.
// A bare name matches every architecture, "name:arch" matches only that architecture.
func (r *IndexResolver) Candidate(_ context.Context, key string) (string, bool, error) {
	r.once.Do(func() {
		r.index, r.err = r.load()
	})
	if r.err != nil {
		return "", false, r.err
	}

	v, ok := r.index[key]
	if !ok {
		return "", false, nil
	}
	return v.raw, true, nil
}

func (r *IndexResolver) load() (map[string]indexedVersion, error) {
	files, err := filepath.Glob(filepath.Join(r.listsDir, packagesGlob))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid lists directory"), "path", r.listsDir)
	}
	if len(files) == 0 {
		return nil, zerr.With(zerr.New("no Packages indices found"), "path", r.listsDir)
	}

	index := make(map[string]indexedVersion)
	for _, file := range files {
		if err := r.loadFile(file, index); err != nil {
			return nil, err
		}
	}
	return index, nil
}

func (r *IndexResolver) loadFile(path string, index map[string]indexedVersion) error {
	//nolint:gosec // path comes from globbing the configured lists directory
	f, err := os.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open Packages index"), "path", path)
	}
	defer func() { _ = f.Close() }()

	doc, err := control.Parse(f)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	for _, p := range doc {
		name, _ := p.Get(domain.FieldPackage)
		raw, _ := p.Get("Version")
		if name == "" || raw == "" {
			continue
		}

		parsed, err := version.Parse(raw)
		if err != nil {
			r.logger.Warn("skipping unparsable version " + raw + " of " + name + " in " + filepath.Base(path))
			continue
		}

		v := indexedVersion{raw: raw, parsed: parsed}
		keep(index, name, v)
		if arch, ok := p.Get("Architecture"); ok && arch != "" {
			keep(index, name+":"+strings.TrimSpace(arch), v)
		}
	}
	return nil
}

func keep(index map[string]indexedVersion, key string, v indexedVersion) {
	if current, ok := index[key]; ok && version.Compare(current.parsed, v.parsed) >= 0 {
		return
	}
	index[key] = v
}
