package domain

import (
	"path/filepath"
	"strings"
)

// VariantClass is the closed classification of an action, derived once from
// its kind plus executable/argument signature. The translator maps each class
// to an emission strategy; the patch passes key on classes instead of
// re-matching argument substrings.
type VariantClass int

const (
	// VariantCompile is an ordinary C/C++ compile.
	VariantCompile VariantClass = iota
	// VariantCompileCreatePCH is a compile that produces a precompiled header.
	VariantCompileCreatePCH
	// VariantCompileUsePCH is a compile that consumes a precompiled header.
	VariantCompileUsePCH
	// VariantResourceCompile is a Windows resource compile.
	VariantResourceCompile
	// VariantIntrinsicsCompile is an ISPC-style intrinsics compile that
	// generates a header and may fan out into a placeholder-header copy.
	VariantIntrinsicsCompile
	// VariantTypeLibGen is an interop type-library generation step.
	VariantTypeLibGen
	// VariantArchive is a static-library archive step.
	VariantArchive
	// VariantLink is an executable or shared-library link.
	VariantLink
	// VariantSymbolExtract is a post-link symbol-table extraction.
	VariantSymbolExtract
	// VariantDebugInfo is a post-link debug-info utility invocation.
	VariantDebugInfo
	// VariantFileCopy is a literal file copy.
	VariantFileCopy
	// VariantUnsupported is anything fbgen hands back for local execution.
	VariantUnsupported
)

// String returns a diagnostic name for the class.
func (c VariantClass) String() string {
	switch c {
	case VariantCompile:
		return "compile"
	case VariantCompileCreatePCH:
		return "compile-create-pch"
	case VariantCompileUsePCH:
		return "compile-use-pch"
	case VariantResourceCompile:
		return "resource-compile"
	case VariantIntrinsicsCompile:
		return "intrinsics-compile"
	case VariantTypeLibGen:
		return "typelib-gen"
	case VariantArchive:
		return "archive"
	case VariantLink:
		return "link"
	case VariantSymbolExtract:
		return "symbol-extract"
	case VariantDebugInfo:
		return "debug-info"
	case VariantFileCopy:
		return "file-copy"
	default:
		return "unsupported"
	}
}

// Classify assigns the variant class for an action. Classification happens
// once per action; every later decision dispatches on the class.
func Classify(a *Action) VariantClass {
	base := executableBase(a.Executable)

	switch a.Kind {
	case KindResourceCompile:
		return VariantResourceCompile

	case KindCompile, KindCodeGen:
		switch {
		case strings.Contains(base, "ispc"):
			return VariantIntrinsicsCompile
		case base == "midl" || base == "tlbexp" || base == "tlbgen":
			return VariantTypeLibGen
		case base == "rc" || base == "llvm-rc":
			return VariantResourceCompile
		case strings.Contains(a.Arguments, "/Yc"):
			return VariantCompileCreatePCH
		case strings.Contains(a.Arguments, "/Yu"):
			return VariantCompileUsePCH
		case a.Kind == KindCodeGen:
			return VariantUnsupported
		default:
			return VariantCompile
		}

	case KindArchive:
		return VariantArchive

	case KindLink:
		switch {
		case base == "lib" || base == "llvm-lib" || base == "ar" || base == "llvm-ar":
			return VariantArchive
		case base == "dump_syms" || base == "symstore":
			return VariantSymbolExtract
		case base == "pdbcopy" || base == "objcopy" || base == "llvm-objcopy":
			return VariantDebugInfo
		default:
			return VariantLink
		}

	case KindCopy:
		return VariantFileCopy

	default:
		return VariantUnsupported
	}
}

// executableBase lower-cases the executable file name and strips a trailing
// ".exe" so signatures match across host platforms.
func executableBase(exe string) string {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(exe, `\`, `/`)))
	return strings.TrimSuffix(base, ".exe")
}
