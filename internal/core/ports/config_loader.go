package ports

import "go.trai.ch/fbgen/internal/core/domain"

// SettingsLoader reads the fbgen configuration file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the configuration at path.
	Load(path string) (*domain.Settings, error)
}
