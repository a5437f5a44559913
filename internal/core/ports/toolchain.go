package ports

import "go.trai.ch/fbgen/internal/core/domain"

// ToolchainResolver produces the resolved toolchain descriptor. Discovery of
// compiler installations belongs to an external collaborator; fbgen only
// consumes the result.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainResolver interface {
	// Resolve reads the descriptor at path.
	Resolve(path string) (*domain.Toolchain, error)
}
