package planner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fbgen/internal/adapters/planner"
	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad_WiresPrerequisites(t *testing.T) {
	content := `
version: "1"
actions:
  - id: link
    kind: link
    executable: link.exe
    arguments: /OUT:app.exe a.obj
    outputs: [app.exe]
    dependsOn: [compile-a]
  - id: compile-a
    kind: compile
    executable: cl.exe
    arguments: /c /Fo"a.obj" a.cpp
    outputs: [a.obj]
    remote: true
    module: core
`
	path := writeManifest(t, content)

	actions, err := planner.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}

	// Declaration order is preserved; forward references resolve.
	link, compile := actions[0], actions[1]
	if link.ID != "link" || compile.ID != "compile-a" {
		t.Fatalf("unexpected order: %s, %s", link.ID, compile.ID)
	}
	if !link.HasPrerequisite(compile) {
		t.Error("expected forward prerequisite reference to resolve")
	}
	if link.Kind != domain.KindLink || compile.Kind != domain.KindCompile {
		t.Errorf("unexpected kinds: %v, %v", link.Kind, compile.Kind)
	}
	if !compile.CanDistribute {
		t.Error("expected remote flag to carry over")
	}
	if compile.Module != "core" {
		t.Errorf("unexpected module: %q", compile.Module)
	}
	if compile.PrimaryOutput() != "a.obj" {
		t.Errorf("unexpected primary output: %q", compile.PrimaryOutput())
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	content := `
actions:
  - id: a
    kind: compile
  - id: a
    kind: compile
`
	_, err := planner.NewLoader().Load(writeManifest(t, content))
	if err == nil {
		t.Fatal("expected error for duplicate id, got nil")
	}
	if !errors.Is(err, domain.ErrDuplicateAction) {
		t.Fatalf("expected ErrDuplicateAction, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if id, ok := meta["id"].(string); !ok || id != "a" {
		t.Errorf("expected metadata id=a, got %v", meta["id"])
	}
}

func TestLoad_UnknownPrerequisite(t *testing.T) {
	content := `
actions:
  - id: link
    kind: link
    dependsOn: [missing]
`
	_, err := planner.NewLoader().Load(writeManifest(t, content))
	if err == nil {
		t.Fatal("expected error for unknown prerequisite, got nil")
	}
	if !errors.Is(err, domain.ErrUnknownPrerequisite) {
		t.Fatalf("expected ErrUnknownPrerequisite, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if dep, ok := meta["prerequisite"].(string); !ok || dep != "missing" {
		t.Errorf("expected metadata prerequisite=missing, got %v", meta["prerequisite"])
	}
}

func TestLoad_UnknownKind(t *testing.T) {
	content := `
actions:
  - id: a
    kind: transmogrify
`
	_, err := planner.NewLoader().Load(writeManifest(t, content))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownKind))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := planner.NewLoader().Load("non-existent-manifest.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read action manifest")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := planner.NewLoader().Load(writeManifest(t, "actions: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse action manifest")
	})
}
