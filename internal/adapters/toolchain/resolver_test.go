package toolchain_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fbgen/internal/adapters/toolchain"
	"go.trai.ch/fbgen/internal/core/domain"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toolchain.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
	return path
}

func TestResolve_Success(t *testing.T) {
	content := `
family: msvc
compiler: C:\vs\bin\cl.exe
extraFiles:
  - C:\vs\bin\c1.dll
  - C:\vs\bin\c2.dll
resourceCompiler: C:\sdk\rc.exe
librarian: C:\vs\bin\lib.exe
linker: C:\vs\bin\link.exe
includeDirs:
  - C:\vs\include
sdkDir: C:\sdk
substitutions:
  C:\vs: VSBasePath
environment:
  TMP: C:\tmp
`
	tc, err := toolchain.NewResolver().Resolve(writeDescriptor(t, content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tc.Family != domain.FamilyMSVC {
		t.Errorf("expected msvc family, got %v", tc.Family)
	}
	if tc.Compiler != `C:\vs\bin\cl.exe` {
		t.Errorf("unexpected compiler: %q", tc.Compiler)
	}
	if len(tc.ExtraFiles) != 2 {
		t.Errorf("expected 2 extra files, got %d", len(tc.ExtraFiles))
	}
	if tc.ResourceCompiler != `C:\sdk\rc.exe` {
		t.Errorf("unexpected resource compiler: %q", tc.ResourceCompiler)
	}
	if tc.Substitutions[`C:\vs`] != "VSBasePath" {
		t.Errorf("unexpected substitutions: %v", tc.Substitutions)
	}
	if tc.Environment["TMP"] != `C:\tmp` {
		t.Errorf("unexpected environment: %v", tc.Environment)
	}
}

func TestResolve_UnknownFamily(t *testing.T) {
	_, err := toolchain.NewResolver().Resolve(writeDescriptor(t, "family: gcc\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownToolchain))
}

func TestResolve_Errors(t *testing.T) {
	t.Run("File Not Found", func(t *testing.T) {
		_, err := toolchain.NewResolver().Resolve("non-existent-descriptor.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read toolchain descriptor")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := toolchain.NewResolver().Resolve(writeDescriptor(t, "compiler: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse toolchain descriptor")
	})
}
