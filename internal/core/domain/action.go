// Package domain contains the core types for the build action graph.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Kind is the broad category of work an action performs, as reported by the
// upstream build planner.
type Kind int

const (
	// KindCompile is a source compilation step.
	KindCompile Kind = iota
	// KindLink is an executable or shared-library link step.
	KindLink
	// KindArchive is a static-library archive step.
	KindArchive
	// KindResourceCompile is a Windows resource compilation step.
	KindResourceCompile
	// KindCopy is a file copy step.
	KindCopy
	// KindCodeGen is a code-generation step (headers, type libraries).
	KindCodeGen
	// KindWriteMetadata is a build-metadata write step.
	KindWriteMetadata
	// KindOther is anything the planner could not categorize.
	KindOther
)

// String returns the manifest spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindCompile:
		return "compile"
	case KindLink:
		return "link"
	case KindArchive:
		return "archive"
	case KindResourceCompile:
		return "resource"
	case KindCopy:
		return "copy"
	case KindCodeGen:
		return "codegen"
	case KindWriteMetadata:
		return "metadata"
	default:
		return "other"
	}
}

// ParseKind converts a manifest kind string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "compile":
		return KindCompile, nil
	case "link":
		return KindLink, nil
	case "archive":
		return KindArchive, nil
	case "resource":
		return KindResourceCompile, nil
	case "copy":
		return KindCopy, nil
	case "codegen":
		return KindCodeGen, nil
	case "metadata":
		return KindWriteMetadata, nil
	case "other", "":
		return KindOther, nil
	default:
		return KindOther, zerr.With(ErrUnknownKind, "kind", s)
	}
}

// Action is one node in the build task graph. Actions are constructed by the
// upstream planner; fbgen only reorders them, patches prerequisite edges, and
// annotates SortIndex. Prerequisite edges are by reference and form a DAG; a
// true cycle is a fatal input error.
type Action struct {
	// ID is the planner-assigned identifier, used in diagnostics.
	ID string

	Kind       Kind
	Executable string
	Arguments  string

	// Prerequisites are the actions that must complete before this one.
	Prerequisites []*Action

	// Outputs are the file paths this action produces.
	Outputs []string

	// CanDistribute reports whether the planner allows this action to run
	// on a remote worker.
	CanDistribute bool

	// Module is the module/project the action belongs to, matched against
	// the force-local set.
	Module string

	// SortIndex is the position assigned by the graph sorter. Stanza names
	// derive from it.
	SortIndex int
}

// HasPrerequisite reports whether p is a direct prerequisite of a.
func (a *Action) HasPrerequisite(p *Action) bool {
	for _, q := range a.Prerequisites {
		if q == p {
			return true
		}
	}
	return false
}

// AddPrerequisite appends p to the prerequisite list unless it is already
// present, so patch passes stay idempotent.
func (a *Action) AddPrerequisite(p *Action) {
	if p == a || a.HasPrerequisite(p) {
		return
	}
	a.Prerequisites = append(a.Prerequisites, p)
}

// PrimaryOutput returns the first declared output path, or "" when the
// planner declared none.
func (a *Action) PrimaryOutput() string {
	if len(a.Outputs) == 0 {
		return ""
	}
	return a.Outputs[0]
}
