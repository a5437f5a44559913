package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ToolchainFamily selects the compiler option dialect used when recovering
// and re-emitting command lines.
type ToolchainFamily int

const (
	// FamilyMSVC is the cl.exe option dialect.
	FamilyMSVC ToolchainFamily = iota
	// FamilyClang is the clang/clang-cl GNU-style option dialect.
	FamilyClang
)

// String returns the descriptor spelling of the family.
func (f ToolchainFamily) String() string {
	switch f {
	case FamilyMSVC:
		return "msvc"
	case FamilyClang:
		return "clang"
	default:
		return "unknown"
	}
}

// ParseToolchainFamily converts a descriptor family string to a ToolchainFamily.
func ParseToolchainFamily(s string) (ToolchainFamily, error) {
	switch strings.ToLower(s) {
	case "msvc":
		return FamilyMSVC, nil
	case "clang":
		return FamilyClang, nil
	default:
		return FamilyMSVC, zerr.With(ErrUnknownToolchain, "family", s)
	}
}

// ObjectOutputFlag returns the compiler flag that names the object output for
// this family.
func (f ToolchainFamily) ObjectOutputFlag() string {
	if f == FamilyClang {
		return "-o"
	}
	return "/Fo"
}

// Toolchain is the resolved toolchain descriptor handed over by the external
// discovery collaborator. fbgen never locates compilers itself.
type Toolchain struct {
	Family           ToolchainFamily
	Compiler         string
	ExtraFiles       []string
	ResourceCompiler string
	Librarian        string
	Linker           string
	IncludeDirs      []string
	SDKDir           string

	// Substitutions maps literal host paths to backend variable names so the
	// generated script re-resolves them at build time instead of baking in
	// absolute paths.
	Substitutions map[string]string

	// Environment is the variable block emitted into the script's setup
	// section.
	Environment map[string]string
}
