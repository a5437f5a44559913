package ports

import "go.trai.ch/fbgen/internal/core/domain"

// GenerationStore persists information about the last generated script.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type GenerationStore interface {
	// Get retrieves the generation info for a given script path.
	// Returns nil, nil if not found.
	Get(scriptPath string) (*domain.GenerationInfo, error)

	// Put stores the generation info.
	Put(info domain.GenerationInfo) error
}
