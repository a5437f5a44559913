package ports

import (
	"context"

	"go.trai.ch/fbgen/internal/core/domain"
)

// LocalExecutor runs actions that could not be translated into the backend
// script. The list arrives in sorted order, so executing it front to back
// satisfies every prerequisite edge.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type LocalExecutor interface {
	// Execute runs the given actions sequentially in list order.
	Execute(ctx context.Context, actions []*domain.Action) error
}
