package ports

import "go.trai.ch/metapin/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, merged over the defaults.
	// An empty path discovers a config file in the working directory; if none exists the defaults are returned.
	Load(path string) (*domain.Config, error)
}
