package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/fbgen/internal/adapters/backend"
	"go.trai.ch/fbgen/internal/adapters/config"
	"go.trai.ch/fbgen/internal/adapters/logger"
	"go.trai.ch/fbgen/internal/adapters/planner"
	"go.trai.ch/fbgen/internal/adapters/shell"
	"go.trai.ch/fbgen/internal/adapters/state"
	"go.trai.ch/fbgen/internal/adapters/telemetry"
	adptoolchain "go.trai.ch/fbgen/internal/adapters/toolchain"
	"go.trai.ch/fbgen/internal/app"
)

// realProvider builds an App from the real adapters, bypassing the DI graph
// so the test controls where state lands.
func realProvider(t *testing.T, dir string) AppProvider {
	t.Helper()
	return func(context.Context) (*app.App, error) {
		log := logger.New()
		store, err := state.NewStore(filepath.Join(dir, "fbgen_state.json"))
		if err != nil {
			return nil, err
		}
		return app.New(
			config.NewLoader(),
			adptoolchain.NewResolver(),
			planner.NewLoader(),
			shell.NewExecutor(log),
			backend.NewRunner(log),
			store,
			telemetry.NewNoOp(),
			log,
		), nil
	}
}

func writeFixtures(t *testing.T, dir string) string {
	t.Helper()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		return path
	}

	toolchainPath := write("toolchain.yaml", `
family: msvc
compiler: C:\vs\bin\cl.exe
`)
	manifestPath := write("actions.yaml", `
version: "1"
actions:
  - id: compile-a
    kind: compile
    executable: cl.exe
    arguments: /c /Fo"obj\a.obj" a.cpp
    outputs: [obj\a.obj]
    remote: true
  - id: link
    kind: link
    executable: link.exe
    arguments: /OUT:bin\app.exe a.obj
    outputs: [bin\app.exe]
    dependsOn: [compile-a]
`)
	return write("fbgen.yaml", `
version: "1"
script: `+filepath.Join(dir, "out.bff")+`
manifest: `+manifestPath+`
toolchain: `+toolchainPath+`
`)
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFixtures(t, dir)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"generate", "-c", configPath}, &stderr, realProvider(t, dir))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr:\n%s", code, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.bff"))
	if err != nil {
		t.Fatalf("expected generated script: %v", err)
	}
	for _, want := range []string{"ObjectList('Action_0')", "Executable('Action_1')", "Alias('all')"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestRun_MissingConfig(t *testing.T) {
	dir := t.TempDir()

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"generate", "-c", filepath.Join(dir, "nope.yaml")}, &stderr, realProvider(t, dir))
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to load configuration") {
		t.Errorf("unexpected stderr:\n%s", stderr.String())
	}
}

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, func(context.Context) (*app.App, error) {
		return nil, errors.New("wiring broken")
	})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "wiring broken") {
		t.Errorf("unexpected stderr:\n%s", stderr.String())
	}
}
