package ports

import "go.trai.ch/symcache/internal/core/domain"

// ConfigLoader defines the interface for loading cache options.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads options from path, or discovers symcache.yaml upward from cwd when path is empty.
	Load(cwd, path string) (domain.Options, error)
}
