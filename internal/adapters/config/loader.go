// Package config provides the configuration loader for metapin.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/metapin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilenames are the config files looked up in the working directory, in order.
var DefaultFilenames = []string{"metapin.yaml", "metapin.yml", "metapin.toml"}

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration from path, or discovers it in the working directory when path is empty.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		found, err := discover(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return &cfg, nil
		}
		path = found
	}

	file, err := readFile(path)
	if err != nil {
		return nil, err
	}
	l.Logger.Info("using config file " + path)

	merge(&cfg, file)
	return &cfg, nil
}

func discover(dir string) (string, error) {
	for _, name := range DefaultFilenames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", candidate)
		}
	}
	return "", nil
}

func readFile(path string) (*Metapinfile, error) {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Metapinfile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return &file, nil
}

// merge overwrites the defaults with every value set in the file.
func merge(cfg *domain.Config, file *Metapinfile) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.ControlPath, file.Control)
	set(&cfg.SourcePackage, file.Source)
	set(&cfg.TargetPackage, file.Target)
	set(&cfg.Policy, file.Policy)
	set(&cfg.Resolver, file.Resolver)
	set(&cfg.ListsDir, file.ListsDir)
	set(&cfg.SnapshotPath, file.Snapshot)
	set(&cfg.Architecture, file.Architecture)
}
