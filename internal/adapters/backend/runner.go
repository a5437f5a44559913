// Package backend invokes the external distributed-build backend on a
// generated script and forwards its streamed diagnostics.
package backend

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/fbgen/internal/core/ports"
	"go.trai.ch/fbgen/internal/engine/translate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.BackendRunner using os/exec.
type Runner struct {
	log ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(log ports.Logger) *Runner {
	return &Runner{log: log}
}

// Run spawns the backend executable against scriptPath and streams its
// output line by line. The script and local-action list are always complete
// before this point; nothing is streamed into a running backend.
func (r *Runner) Run(ctx context.Context, scriptPath string, settings *domain.Settings) error {
	args := buildArgs(scriptPath, settings)

	cmd := exec.CommandContext(ctx, settings.BackendPath, args...) //nolint:gosec // configured backend binary
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open backend stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open backend stderr")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start backend"), "backend", settings.BackendPath)
	}

	var g errgroup.Group
	g.Go(func() error { return r.stream(ctx, stdout, false) })
	g.Go(func() error { return r.stream(ctx, stderr, true) })
	streamErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(domain.ErrBackendFailed, "exit_code", exitCode)
	}
	return streamErr
}

// buildArgs assembles the backend command line from the settings.
func buildArgs(scriptPath string, settings *domain.Settings) []string {
	args := []string{"-config", scriptPath}
	if settings.DistributionEnabled {
		args = append(args, "-dist")
	}
	switch settings.CacheMode {
	case domain.CacheReadWrite:
		args = append(args, "-cache")
	case domain.CacheRead:
		args = append(args, "-cacheread")
	case domain.CacheWrite:
		args = append(args, "-cachewrite")
	case domain.CacheDisabled:
	}
	args = append(args, "-summary", translate.AliasName)
	return args
}

func (r *Runner) stream(ctx context.Context, src io.Reader, isErr bool) error {
	var stdout, stderr io.Writer
	if v := ports.VertexFromContext(ctx); v != nil {
		stdout, stderr = v.Stdout(), v.Stderr()
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if isErr {
			if stderr != nil {
				_, _ = io.WriteString(stderr, line+"\n")
			}
			r.log.Warn(line)
		} else {
			if stdout != nil {
				_, _ = io.WriteString(stdout, line+"\n")
			}
			r.log.Info(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.Wrap(err, "failed to read backend output")
	}
	return nil
}
