package config

// Metapinfile represents the structure of the metapin.yaml / metapin.toml configuration file.
type Metapinfile struct {
	Control      string `yaml:"control" toml:"control"`
	Source       string `yaml:"source" toml:"source"`
	Target       string `yaml:"target" toml:"target"`
	Policy       string `yaml:"policy" toml:"policy"`
	Resolver     string `yaml:"resolver" toml:"resolver"`
	ListsDir     string `yaml:"listsDir" toml:"listsDir"`
	Snapshot     string `yaml:"snapshot" toml:"snapshot"`
	Architecture string `yaml:"architecture" toml:"architecture"`
}
