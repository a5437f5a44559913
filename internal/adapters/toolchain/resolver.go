// Package toolchain reads the resolved toolchain descriptor. Actual
// discovery of compiler installations belongs to an external collaborator
// that writes the descriptor file.
package toolchain

import (
	"os"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Resolver implements ports.ToolchainResolver using a YAML descriptor.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// descriptor is the on-disk shape of the toolchain descriptor.
type descriptor struct {
	Family           string            `yaml:"family"`
	Compiler         string            `yaml:"compiler"`
	ExtraFiles       []string          `yaml:"extraFiles"`
	ResourceCompiler string            `yaml:"resourceCompiler"`
	Librarian        string            `yaml:"librarian"`
	Linker           string            `yaml:"linker"`
	IncludeDirs      []string          `yaml:"includeDirs"`
	SDKDir           string            `yaml:"sdkDir"`
	Substitutions    map[string]string `yaml:"substitutions"`
	Environment      map[string]string `yaml:"environment"`
}

// Resolve reads the descriptor at path.
func (r *Resolver) Resolve(path string) (*domain.Toolchain, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read toolchain descriptor")
	}

	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, zerr.Wrap(err, "failed to parse toolchain descriptor")
	}

	family, err := domain.ParseToolchainFamily(d.Family)
	if err != nil {
		return nil, err
	}

	return &domain.Toolchain{
		Family:           family,
		Compiler:         d.Compiler,
		ExtraFiles:       d.ExtraFiles,
		ResourceCompiler: d.ResourceCompiler,
		Librarian:        d.Librarian,
		Linker:           d.Linker,
		IncludeDirs:      d.IncludeDirs,
		SDKDir:           d.SDKDir,
		Substitutions:    d.Substitutions,
		Environment:      d.Environment,
	}, nil
}
