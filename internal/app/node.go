package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fbgen/internal/adapters/backend"   //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/config"    //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/logger"    //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/planner"   //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/shell"     //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/state"     //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/adapters/toolchain" //nolint:depguard // Wired in app wiring
	"go.trai.ch/fbgen/internal/core/ports"
)

// NodeID is the unique identifier for the app Graft node.
const NodeID graft.ID = "app"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			toolchain.NodeID,
			planner.NodeID,
			shell.NodeID,
			backend.NodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settings, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			tc, err := graft.Dep[ports.ToolchainResolver](ctx)
			if err != nil {
				return nil, err
			}
			actions, err := graft.Dep[ports.ActionSource](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.LocalExecutor](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.BackendRunner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.GenerationStore](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, tc, actions, executor, runner, store, tel, log), nil
		},
	})
}
