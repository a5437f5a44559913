package graph

import (
	"strings"

	"go.trai.ch/fbgen/internal/core/domain"
)

// Patch applies the graph-shape corrections the upstream planner does not
// encode directly. Both passes mutate prerequisite edges in place, run before
// sorting, and are idempotent.
func Patch(actions []*domain.Action) {
	PatchGeneratedHeaders(actions)
	PatchTypeLibConsumers(actions)
}

// PatchGeneratedHeaders makes code-generation actions prerequisites of any
// precompiled-header creation they share a dependent with. Header generation
// must precede PCH creation even when the planner never encoded that
// transitive edge.
func PatchGeneratedHeaders(actions []*domain.Action) {
	for _, a := range actions {
		var pch *domain.Action
		var codegen []*domain.Action
		for _, p := range a.Prerequisites {
			switch domain.Classify(p) {
			case domain.VariantCompileCreatePCH:
				pch = p
			case domain.VariantIntrinsicsCompile, domain.VariantTypeLibGen:
				codegen = append(codegen, p)
			default:
				if p.Kind == domain.KindCodeGen {
					codegen = append(codegen, p)
				}
			}
		}
		if pch == nil {
			continue
		}
		for _, c := range codegen {
			pch.AddPrerequisite(c)
		}
	}
}

// PatchTypeLibConsumers injects the one-off interop type-library generation
// action as a prerequisite of every action whose command line references one
// of its outputs.
func PatchTypeLibConsumers(actions []*domain.Action) {
	var typelib *domain.Action
	for _, a := range actions {
		if domain.Classify(a) == domain.VariantTypeLibGen {
			typelib = a
			break
		}
	}
	if typelib == nil {
		return
	}

	for _, a := range actions {
		if a == typelib {
			continue
		}
		for _, out := range typelib.Outputs {
			if base := pathBase(out); base != "" && strings.Contains(a.Arguments, base) {
				a.AddPrerequisite(typelib)
				break
			}
		}
	}
}

// pathBase returns the final path component regardless of separator style.
// Manifest paths are Windows-shaped and filepath.Base would only split on the
// host separator.
func pathBase(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}
