package ports

import (
	"context"

	"go.trai.ch/fbgen/internal/core/domain"
)

// BackendRunner invokes the external distributed-build backend on a generated
// script and streams its diagnostics. fbgen never executes compilers itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type BackendRunner interface {
	// Run executes the backend against the script at scriptPath and returns
	// an error when the backend reports failure.
	Run(ctx context.Context, scriptPath string, settings *domain.Settings) error
}
