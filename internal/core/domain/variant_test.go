package domain_test

import (
	"testing"

	"go.trai.ch/fbgen/internal/core/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		action domain.Action
		want   domain.VariantClass
	}{
		{
			name:   "plain compile",
			action: domain.Action{Kind: domain.KindCompile, Executable: `C:\vs\bin\cl.exe`, Arguments: "/c main.cpp"},
			want:   domain.VariantCompile,
		},
		{
			name:   "pch create",
			action: domain.Action{Kind: domain.KindCompile, Executable: "cl.exe", Arguments: `/c /Yc"stdafx.h" stdafx.cpp`},
			want:   domain.VariantCompileCreatePCH,
		},
		{
			name:   "pch use",
			action: domain.Action{Kind: domain.KindCompile, Executable: "cl.exe", Arguments: `/c /Yu"stdafx.h" main.cpp`},
			want:   domain.VariantCompileUsePCH,
		},
		{
			name:   "resource kind",
			action: domain.Action{Kind: domain.KindResourceCompile, Executable: "rc.exe"},
			want:   domain.VariantResourceCompile,
		},
		{
			name:   "resource by executable",
			action: domain.Action{Kind: domain.KindCompile, Executable: `C:\sdk\rc.exe`, Arguments: `/fo"app.res" app.rc`},
			want:   domain.VariantResourceCompile,
		},
		{
			name:   "intrinsics compile",
			action: domain.Action{Kind: domain.KindCodeGen, Executable: "ispc.exe", Arguments: "-o kernel.obj -h kernel.h kernel.ispc"},
			want:   domain.VariantIntrinsicsCompile,
		},
		{
			name:   "typelib gen",
			action: domain.Action{Kind: domain.KindCodeGen, Executable: "midl.exe", Arguments: "/tlb interop.tlb interop.idl"},
			want:   domain.VariantTypeLibGen,
		},
		{
			name:   "other codegen unsupported",
			action: domain.Action{Kind: domain.KindCodeGen, Executable: "versiongen.exe"},
			want:   domain.VariantUnsupported,
		},
		{
			name:   "archive kind",
			action: domain.Action{Kind: domain.KindArchive, Executable: "lib.exe"},
			want:   domain.VariantArchive,
		},
		{
			name:   "archive by executable",
			action: domain.Action{Kind: domain.KindLink, Executable: `C:\vs\bin\lib.exe`, Arguments: `/OUT:core.lib a.obj`},
			want:   domain.VariantArchive,
		},
		{
			name:   "clang archive",
			action: domain.Action{Kind: domain.KindLink, Executable: "llvm-ar", Arguments: "rcs libcore.a a.o"},
			want:   domain.VariantArchive,
		},
		{
			name:   "link",
			action: domain.Action{Kind: domain.KindLink, Executable: "link.exe", Arguments: `/OUT:app.exe a.obj`},
			want:   domain.VariantLink,
		},
		{
			name:   "symbol extract",
			action: domain.Action{Kind: domain.KindLink, Executable: "dump_syms.exe", Arguments: "app.pdb"},
			want:   domain.VariantSymbolExtract,
		},
		{
			name:   "debug info",
			action: domain.Action{Kind: domain.KindLink, Executable: "pdbcopy.exe", Arguments: "app.pdb app-stripped.pdb -p"},
			want:   domain.VariantDebugInfo,
		},
		{
			name:   "file copy",
			action: domain.Action{Kind: domain.KindCopy, Executable: "cmd.exe", Arguments: `/c copy a.dll out\a.dll`},
			want:   domain.VariantFileCopy,
		},
		{
			name:   "metadata unsupported",
			action: domain.Action{Kind: domain.KindWriteMetadata, Executable: "buildinfo.exe"},
			want:   domain.VariantUnsupported,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := domain.Classify(&c.action); got != c.want {
				t.Errorf("Classify() = %v, want %v", got, c.want)
			}
		})
	}
}
