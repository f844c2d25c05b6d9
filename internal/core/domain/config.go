package domain

import "go.trai.ch/zerr"

// Resolver kinds.
const (
	ResolverAptCache = "apt-cache"
	ResolverIndex    = "index"
	ResolverSnapshot = "snapshot"
)

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultControlPath   = "../debian/control"
	DefaultSourcePackage = "consolinno-hems-latest"
	DefaultTargetPackage = "consolinno-hems"
	DefaultListsDir      = "/var/lib/apt/lists"
)

// Config is the resolved configuration of a run.
type Config struct {
	ControlPath   string
	SourcePackage string
	TargetPackage string
	Policy        string
	Resolver      string
	ListsDir      string
	SnapshotPath  string
	Architecture  string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ControlPath:   DefaultControlPath,
		SourcePackage: DefaultSourcePackage,
		TargetPackage: DefaultTargetPackage,
		Policy:        PolicyExact,
		Resolver:      ResolverAptCache,
		ListsDir:      DefaultListsDir,
	}
}

// Validate checks that the configuration names known policies and resolvers.
func (c Config) Validate() error {
	if _, err := PolicyByName(c.Policy); err != nil {
		return err
	}
	switch c.Resolver {
	case ResolverAptCache, ResolverIndex:
	case ResolverSnapshot:
		if c.SnapshotPath == "" {
			return zerr.With(zerr.Wrap(ErrInvalidConfig, "snapshot resolver requires a snapshot path"),
				"resolver", c.Resolver)
		}
	default:
		return zerr.With(zerr.Wrap(ErrUnknownResolver, "unsupported resolver"), "resolver", c.Resolver)
	}
	if c.SourcePackage == "" || c.TargetPackage == "" {
		return zerr.Wrap(ErrInvalidConfig, "source and target package must be set")
	}
	if c.ControlPath == "" {
		return zerr.Wrap(ErrInvalidConfig, "control file path must be set")
	}
	return nil
}
