// Package app implements the application layer for fbgen.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/fbgen/internal/core/ports"
	"go.trai.ch/fbgen/internal/engine/graph"
	"go.trai.ch/fbgen/internal/engine/translate"
	"go.trai.ch/zerr"
)

// timeNow is swappable for tests.
var timeNow = time.Now

// App wires the translation pipeline: load, patch, sort, translate, write,
// then hand off to the backend and the local fallback executor. The full
// script and local-action list exist before any execution starts.
type App struct {
	settings  ports.SettingsLoader
	toolchain ports.ToolchainResolver
	actions   ports.ActionSource
	executor  ports.LocalExecutor
	backend   ports.BackendRunner
	store     ports.GenerationStore
	telemetry ports.Telemetry
	log       ports.Logger
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	toolchain ports.ToolchainResolver,
	actions ports.ActionSource,
	executor ports.LocalExecutor,
	backend ports.BackendRunner,
	store ports.GenerationStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		settings:  settings,
		toolchain: toolchain,
		actions:   actions,
		executor:  executor,
		backend:   backend,
		store:     store,
		telemetry: telemetry,
		log:       log,
	}
}

// RunOptions controls one invocation.
type RunOptions struct {
	// ConfigPath is the fbgen configuration file.
	ConfigPath string
	// GenerateOnly stops after writing the script.
	GenerateOnly bool
}

// Run executes the full pipeline.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	settings, err := a.settings.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	toolchain, err := a.toolchain.Resolve(settings.ToolchainPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve toolchain")
	}
	actions, err := a.actions.Load(settings.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load action manifest")
	}

	script, local, err := a.generate(ctx, actions, toolchain, settings)
	if err != nil {
		return err
	}

	if opts.GenerateOnly {
		return nil
	}
	return a.execute(ctx, script, local, settings)
}

// generate runs the patch, sort, and translation passes and writes the
// script to disk.
func (a *App) generate(
	ctx context.Context,
	actions []*domain.Action,
	toolchain *domain.Toolchain,
	settings *domain.Settings,
) (*translate.Script, []*domain.Action, error) {
	_, v := a.telemetry.Record(ctx, "generate "+settings.ScriptPath)

	graph.Patch(actions)
	sorted, err := graph.Sort(actions)
	if err != nil {
		v.Complete(err)
		return nil, nil, zerr.Wrap(err, "failed to order action graph")
	}

	emitter := translate.NewEmitter(a.log, toolchain, settings)
	script, local, err := emitter.Emit(sorted)
	if err != nil {
		v.Complete(err)
		return nil, nil, zerr.Wrap(err, "failed to translate action graph")
	}

	if err := os.WriteFile(settings.ScriptPath, []byte(script.Text), 0o644); err != nil { //nolint:gosec // script is world-readable by design
		err = zerr.With(zerr.Wrap(err, "failed to write script"), "path", settings.ScriptPath)
		v.Complete(err)
		return nil, nil, err
	}

	a.recordGeneration(script, local, settings)
	v.Complete(nil)

	a.log.Info(fmt.Sprintf("generated %s: %d stanzas, %d synthetic, %d local actions",
		settings.ScriptPath, len(script.PrimaryNames), len(script.DependencyNames), len(local)))
	return script, local, nil
}

// recordGeneration persists the script digest so the next run can tell
// whether an identical action graph produced an identical script. Store
// failures are logged, never fatal.
func (a *App) recordGeneration(script *translate.Script, local []*domain.Action, settings *domain.Settings) {
	prev, err := a.store.Get(settings.ScriptPath)
	if err == nil && prev != nil && prev.ScriptDigest == script.Digest {
		a.log.Info("script unchanged since last generation")
	}
	info := domain.GenerationInfo{
		ScriptPath:   settings.ScriptPath,
		ScriptDigest: script.Digest,
		Translated:   len(script.PrimaryNames),
		LocalActions: len(local),
		Timestamp:    timeNow(),
	}
	if err := a.store.Put(info); err != nil {
		a.log.Warn(zerr.Wrap(err, "failed to record generation info").Error())
	}
}

// execute hands the script to the backend, then runs the local fallback
// list. Local actions run after the distributed pass because they may
// consume its outputs.
func (a *App) execute(ctx context.Context, script *translate.Script, local []*domain.Action, settings *domain.Settings) error {
	if len(script.PrimaryNames) > 0 {
		bctx, v := a.telemetry.Record(ctx, "backend "+settings.BackendPath)
		err := a.backend.Run(bctx, settings.ScriptPath, settings)
		v.Complete(err)
		if err != nil {
			return zerr.Wrap(err, "distributed build failed")
		}
	}

	if len(local) > 0 {
		lctx, v := a.telemetry.Record(ctx, fmt.Sprintf("local fallback (%d actions)", len(local)))
		err := a.executor.Execute(lctx, local)
		v.Complete(err)
		if err != nil {
			return zerr.Wrap(err, "local fallback execution failed")
		}
	}
	return nil
}
