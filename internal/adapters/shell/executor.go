// Package shell provides the local fallback executor.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/fbgen/internal/core/ports"
	"go.trai.ch/fbgen/internal/engine/cmdline"
	"go.trai.ch/zerr"
)

// Executor implements ports.LocalExecutor using os/exec. Untranslated
// actions run here, outside the distributed backend.
type Executor struct {
	log ports.Logger
	tok *cmdline.Tokenizer
}

// NewExecutor creates a new Executor.
func NewExecutor(log ports.Logger) *Executor {
	return &Executor{
		log: log,
		// No path substitutions: local execution wants the literal paths
		// the planner emitted.
		tok: cmdline.NewTokenizer(log, nil),
	}
}

// Execute runs the actions one at a time in list order. The list arrives
// sorted, so sequential execution satisfies every prerequisite edge. The
// first failure aborts the remainder: later actions may depend on it.
func (e *Executor) Execute(ctx context.Context, actions []*domain.Action) error {
	for _, a := range actions {
		if err := e.runOne(ctx, a); err != nil {
			return zerr.With(err, "action", a.ID)
		}
	}
	return nil
}

func (e *Executor) runOne(ctx context.Context, a *domain.Action) error {
	tokens, _ := e.tok.Tokenize(a.Arguments)
	args := make([]string, len(tokens))
	for i, tok := range tokens {
		args[i] = cmdline.Unquote(tok)
	}

	e.log.Info("running locally: " + a.Executable + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, a.Executable, args...) //nolint:gosec // planner provided command

	var stdout, stderr io.Writer = &logWriter{log: e.log, level: "info"}, &logWriter{log: e.log, level: "error"}
	if v := ports.VertexFromContext(ctx); v != nil {
		stdout, stderr = v.Stdout(), v.Stderr()
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "local action failed"), "exit_code", exitCode)
	}
	return nil
}

type logWriter struct {
	log   ports.Logger
	level string
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "info" {
			w.log.Info(line)
		} else {
			w.log.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
