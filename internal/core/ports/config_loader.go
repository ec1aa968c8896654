package ports

import "go.trai.ch/encore/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds encore.yaml starting at cwd and walking up, and returns the project it describes.
	Load(cwd string) (*domain.Project, error)

	// LoadFile reads the project from an explicit config file path.
	LoadFile(path string) (*domain.Project, error)
}
