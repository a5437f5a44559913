// Package planner loads the action manifest produced by the external build
// planner.
package planner

import (
	"os"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ActionSource using a YAML manifest.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// manifest is the on-disk shape of the planner's action export.
type manifest struct {
	Version string      `yaml:"version"`
	Actions []actionDTO `yaml:"actions"`
}

type actionDTO struct {
	ID         string   `yaml:"id"`
	Kind       string   `yaml:"kind"`
	Executable string   `yaml:"executable"`
	Arguments  string   `yaml:"arguments"`
	Outputs    []string `yaml:"outputs"`
	DependsOn  []string `yaml:"dependsOn"`
	Remote     bool     `yaml:"remote"`
	Module     string   `yaml:"module"`
}

// Load reads the manifest at path, resolving prerequisite ids to action
// references. The manifest's declaration order is preserved; the graph
// sorter decides whether it is a valid emission order.
func (l *Loader) Load(path string) ([]*domain.Action, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read action manifest")
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse action manifest")
	}

	actions := make([]*domain.Action, 0, len(m.Actions))
	byID := make(map[string]*domain.Action, len(m.Actions))

	// First pass: construct actions so prerequisite references can point
	// anywhere in the list, including forward.
	for _, dto := range m.Actions {
		if _, exists := byID[dto.ID]; exists {
			return nil, zerr.With(domain.ErrDuplicateAction, "id", dto.ID)
		}
		kind, err := domain.ParseKind(dto.Kind)
		if err != nil {
			return nil, zerr.With(err, "id", dto.ID)
		}
		a := &domain.Action{
			ID:            dto.ID,
			Kind:          kind,
			Executable:    dto.Executable,
			Arguments:     dto.Arguments,
			Outputs:       dto.Outputs,
			CanDistribute: dto.Remote,
			Module:        dto.Module,
		}
		byID[dto.ID] = a
		actions = append(actions, a)
	}

	// Second pass: wire prerequisite edges.
	for i, dto := range m.Actions {
		for _, dep := range dto.DependsOn {
			p, ok := byID[dep]
			if !ok {
				err := zerr.With(domain.ErrUnknownPrerequisite, "id", dto.ID)
				return nil, zerr.With(err, "prerequisite", dep)
			}
			actions[i].AddPrerequisite(p)
		}
	}

	return actions, nil
}
