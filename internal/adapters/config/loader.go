// Package config provides the configuration loader for fbgen.
package config

import (
	"os"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fbgenFile is the on-disk shape of the fbgen.yaml configuration.
type fbgenFile struct {
	Version      string   `yaml:"version"`
	Distribution bool     `yaml:"distribution"`
	Cache        cacheDTO `yaml:"cache"`
	Brokerage    string   `yaml:"brokerage"`
	ForceLocal   []string `yaml:"forceLocal"`
	Script       string   `yaml:"script"`
	Backend      string   `yaml:"backend"`
	Manifest     string   `yaml:"manifest"`
	Toolchain    string   `yaml:"toolchain"`
}

type cacheDTO struct {
	Mode string `yaml:"mode"`
	Path string `yaml:"path"`
}

// Load reads the configuration file at path.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file fbgenFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	mode, err := domain.ParseCacheMode(file.Cache.Mode)
	if err != nil {
		return nil, err
	}

	forceLocal := make(map[string]struct{}, len(file.ForceLocal))
	for _, m := range file.ForceLocal {
		forceLocal[m] = struct{}{}
	}

	s := &domain.Settings{
		DistributionEnabled: file.Distribution,
		CacheMode:           mode,
		CachePath:           file.Cache.Path,
		BrokeragePath:       file.Brokerage,
		ForceLocalModules:   forceLocal,
		ScriptPath:          file.Script,
		BackendPath:         file.Backend,
		ManifestPath:        file.Manifest,
		ToolchainPath:       file.Toolchain,
	}
	if s.ScriptPath == "" {
		s.ScriptPath = "fbgen.bff"
	}
	return s, nil
}
