package ports

import "go.trai.ch/fbgen/internal/core/domain"

// ActionSource loads the action list produced by the external build planner.
//
//go:generate go run go.uber.org/mock/mockgen -source=planner.go -destination=mocks/mock_planner.go -package=mocks
type ActionSource interface {
	// Load reads the planner manifest at path and returns the action list
	// with prerequisite references resolved.
	Load(path string) ([]*domain.Action, error)
}
