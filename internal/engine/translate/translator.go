// Package translate maps classified actions onto declarative backend stanzas
// and assembles the final script.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/fbgen/internal/core/ports"
	"go.trai.ch/fbgen/internal/engine/cmdline"
)

// placeholderHeaderSuffix marks intrinsics-compiler outputs that alias a
// placeholder header name and need a copy step to land under the real name.
const placeholderHeaderSuffix = ".dummy.h"

// Result is the outcome of translating one action. An empty Text means the
// action was not translated and goes to the local fallback list.
type Result struct {
	// Text is the stanza text, including synthetic helper stanzas.
	Text string
	// PrimaryNames are the stanza names representing the action itself.
	PrimaryNames []string
	// DependencyNames are synthetic dependency-only helper stanzas.
	DependencyNames []string
}

func (r Result) translated() bool { return r.Text != "" }

// Translator emits one declarative stanza set per action. It holds no
// mutable state across calls; accumulation belongs to the Emitter.
type Translator struct {
	log       ports.Logger
	tok       *cmdline.Tokenizer
	toolchain *domain.Toolchain
	settings  *domain.Settings
}

// NewTranslator creates a Translator for one generation run.
func NewTranslator(log ports.Logger, toolchain *domain.Toolchain, settings *domain.Settings) *Translator {
	return &Translator{
		log:       log,
		tok:       cmdline.NewTokenizer(log, toolchain.Substitutions),
		toolchain: toolchain,
		settings:  settings,
	}
}

// ActionName returns the stanza name derived from the action's sorted
// position.
func ActionName(a *domain.Action) string {
	return "Action_" + strconv.Itoa(a.SortIndex)
}

// Translate dispatches on the action's variant class. deps are the stanza
// names of the action's already-emitted prerequisites. A branch that cannot
// recover a required option logs a diagnostic and abandons only this
// action's emission.
func (t *Translator) Translate(a *domain.Action, deps []string) Result {
	switch domain.Classify(a) {
	case domain.VariantCompile, domain.VariantCompileCreatePCH, domain.VariantCompileUsePCH:
		return t.translateCompile(a, deps)
	case domain.VariantResourceCompile:
		return t.translateResourceCompile(a, deps)
	case domain.VariantIntrinsicsCompile:
		return t.translateIntrinsics(a, deps)
	case domain.VariantTypeLibGen:
		return t.translateTypeLib(a, deps)
	case domain.VariantArchive:
		return t.translateArchive(a, deps)
	case domain.VariantLink:
		return t.translateLink(a, deps)
	case domain.VariantSymbolExtract, domain.VariantDebugInfo:
		return t.translatePostLinkTool(a, deps)
	case domain.VariantFileCopy:
		return t.translateCopy(a, deps)
	default:
		return Result{}
	}
}

func (t *Translator) compileSpecs() ([]cmdline.OptionSpec, string) {
	if t.toolchain.Family == domain.FamilyClang {
		return []cmdline.OptionSpec{{Name: "-o"}}, "-o"
	}
	return []cmdline.OptionSpec{
		{Name: "/Fo", Glued: true},
		{Name: "/Fp", Glued: true},
	}, "/Fo"
}

func (t *Translator) translateCompile(a *domain.Action, deps []string) Result {
	specs, outFlag := t.compileSpecs()
	parsed := t.tok.Parse(a.Arguments, specs)

	class := domain.Classify(a)
	output := parsed[outFlag]
	if class == domain.VariantCompileCreatePCH && parsed["/Fp"] != "" {
		output = parsed["/Fp"]
	}
	input := parsed[cmdline.KeyInputFile]
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}
	if input == "" {
		t.dropDiagnostic(a, domain.ErrMissingInputFile)
		return Result{}
	}

	outDir, outName := splitPath(output)
	ext := pathExt(outName)
	if ext == "" {
		ext = ".obj"
	}

	var options string
	switch class {
	case domain.VariantCompileCreatePCH:
		options = fmt.Sprintf(`"%%1" /Fp"%%2" /Yc %s`, parsed[cmdline.KeyOtherOptions])
		ext = ".pch"
	case domain.VariantCompileUsePCH:
		options = fmt.Sprintf(`"%%1" %s"%%2" %s`, outFlag, parsed[cmdline.KeyOtherOptions])
		if pch := parsed["/Fp"]; pch != "" {
			options = fmt.Sprintf(`"%%1" %s"%%2" /Fp%s %s`,
				outFlag, quoteArg(pch), parsed[cmdline.KeyOtherOptions])
		}
	default:
		if t.toolchain.Family == domain.FamilyClang {
			options = fmt.Sprintf(`"%%1" -o "%%2" %s`, parsed[cmdline.KeyOtherOptions])
		} else {
			options = fmt.Sprintf(`"%%1" %s"%%2" %s`, outFlag, parsed[cmdline.KeyOtherOptions])
		}
	}

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "ObjectList(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.Compiler = 'Compiler'\n")
	fmt.Fprintf(&b, "\t.CompilerInputFiles = %s\n", q(input))
	fmt.Fprintf(&b, "\t.CompilerOutputPath = %s\n", q(outDir))
	fmt.Fprintf(&b, "\t.CompilerOutputName = %s\n", q(outName))
	fmt.Fprintf(&b, "\t.CompilerOutputExtension = %s\n", q(ext))
	fmt.Fprintf(&b, "\t.CompilerOptions = %s\n", q(strings.TrimRight(options, " ")))
	t.writeDistribution(&b, a)
	writeDeps(&b, deps)
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}}
}

func (t *Translator) translateResourceCompile(a *domain.Action, deps []string) Result {
	parsed := t.tok.Parse(a.Arguments, []cmdline.OptionSpec{{Name: "/fo", Glued: true}})

	output := parsed["/fo"]
	input := parsed[cmdline.KeyInputFile]
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}
	if input == "" {
		t.dropDiagnostic(a, domain.ErrMissingInputFile)
		return Result{}
	}
	outDir, outName := splitPath(output)

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "ObjectList(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.Compiler = 'ResourceCompiler'\n")
	fmt.Fprintf(&b, "\t.CompilerInputFiles = %s\n", q(input))
	fmt.Fprintf(&b, "\t.CompilerOutputPath = %s\n", q(outDir))
	fmt.Fprintf(&b, "\t.CompilerOutputName = %s\n", q(outName))
	fmt.Fprintf(&b, "\t.CompilerOutputExtension = '.res'\n")
	fmt.Fprintf(&b, "\t.CompilerOptions = %s\n", q(strings.TrimRight(fmt.Sprintf(`/fo"%%2" "%%1" %s`, parsed[cmdline.KeyOtherOptions]), " ")))
	// Resource compiles are always distribution-eligible unless the module
	// is in the force-local set.
	if t.settings.ForceLocal(a.Module) {
		b.WriteString("\t.AllowDistribution = false\n")
	}
	writeDeps(&b, deps)
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}}
}

func (t *Translator) translateIntrinsics(a *domain.Action, deps []string) Result {
	parsed := t.tok.Parse(a.Arguments, []cmdline.OptionSpec{{Name: "-o"}, {Name: "-h"}})

	output := parsed["-o"]
	if output == "" {
		output = parsed["-h"]
	}
	input := parsed[cmdline.KeyInputFile]
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}
	if input == "" {
		t.dropDiagnostic(a, domain.ErrMissingInputFile)
		return Result{}
	}

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "Exec(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.ExecExecutable = %s\n", q(t.substituted(a.Executable)))
	fmt.Fprintf(&b, "\t.ExecInput = %s\n", q(input))
	fmt.Fprintf(&b, "\t.ExecOutput = %s\n", q(output))
	fmt.Fprintf(&b, "\t.ExecArguments = %s\n", q(t.rejoin(a.Arguments)))
	writeDeps(&b, deps)
	b.WriteString("}\n")

	res := Result{Text: b.String(), PrimaryNames: []string{name}}

	// When the generated header lands under a placeholder alias, fan out a
	// copy step that puts it under the real name consumers include.
	if strings.HasSuffix(output, placeholderHeaderSuffix) {
		real := strings.TrimSuffix(output, placeholderHeaderSuffix) + ".h"
		copyName := name + "_copy"
		var cb strings.Builder
		fmt.Fprintf(&cb, "Copy(%s)\n{\n", q(copyName))
		fmt.Fprintf(&cb, "\t.Source = %s\n", q(output))
		fmt.Fprintf(&cb, "\t.Dest = %s\n", q(real))
		writeDeps(&cb, []string{name})
		cb.WriteString("}\n")
		res.Text += cb.String()
		res.DependencyNames = []string{copyName}
	}

	return res
}

func (t *Translator) translateTypeLib(a *domain.Action, deps []string) Result {
	parsed := t.tok.Parse(a.Arguments, []cmdline.OptionSpec{{Name: "/tlb"}, {Name: "-o"}})

	output := parsed["/tlb"]
	if output == "" {
		output = parsed["-o"]
	}
	if output == "" {
		output = a.PrimaryOutput()
	}
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "Exec(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.ExecExecutable = %s\n", q(t.substituted(a.Executable)))
	fmt.Fprintf(&b, "\t.ExecOutput = %s\n", q(output))
	fmt.Fprintf(&b, "\t.ExecArguments = %s\n", q(t.rejoin(a.Arguments)))
	fmt.Fprintf(&b, "\t.ExecUseStdOutAsOutput = false\n")
	writeDeps(&b, deps)
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}}
}

func (t *Translator) archiveSpecs() ([]cmdline.OptionSpec, string) {
	if t.toolchain.Family == domain.FamilyClang {
		return []cmdline.OptionSpec{{Name: "-o"}}, "-o"
	}
	return []cmdline.OptionSpec{{Name: "/OUT:", Glued: true}}, "/OUT:"
}

func (t *Translator) translateArchive(a *domain.Action, deps []string) Result {
	specs, outFlag := t.archiveSpecs()
	parsed := t.tok.Parse(a.Arguments, specs)

	output := parsed[outFlag]
	if output == "" {
		output = a.PrimaryOutput()
	}
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}

	// The backend's archive primitive rejects an empty input list even when
	// every real input arrives through the response file, so a placeholder
	// additional input is synthesized from whatever is at hand.
	additional := parsed[cmdline.KeyInputFile]
	if additional == "" {
		additional = parsed[cmdline.KeyResponseFile]
	}
	if additional == "" {
		additional = output + ".inputs"
	}

	options := fmt.Sprintf(`%s"%%2" "%%1" %s`, outFlag, parsed[cmdline.KeyOtherOptions])
	if rsp := parsed[cmdline.KeyResponseFile]; rsp != "" {
		options = fmt.Sprintf(`%s"%%2" "%%1" @%s`, outFlag, quoteArg(rsp))
	}

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "Library(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.Librarian = %s\n", q(t.substituted(a.Executable)))
	fmt.Fprintf(&b, "\t.LibrarianOutput = %s\n", q(output))
	fmt.Fprintf(&b, "\t.LibrarianOptions = %s\n", q(strings.TrimRight(options, " ")))
	fmt.Fprintf(&b, "\t.LibrarianAdditionalInputs = { %s }\n", q(additional))
	writeDeps(&b, deps)
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}}
}

func (t *Translator) translateLink(a *domain.Action, deps []string) Result {
	specs, outFlag := t.archiveSpecs()
	parsed := t.tok.Parse(a.Arguments, specs)

	output := parsed[outFlag]
	if output == "" {
		output = a.PrimaryOutput()
	}
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}

	rsp := parsed[cmdline.KeyResponseFile]
	primaryInput := parsed[cmdline.KeyInputFile]
	gate := rsp
	if gate == "" {
		gate = primaryInput
	}

	options := fmt.Sprintf(`%s"%%2" %s`, outFlag, parsed[cmdline.KeyOtherOptions])
	if rsp != "" {
		options = fmt.Sprintf(`%s"%%2" @%s`, outFlag, quoteArg(rsp))
	}

	name := ActionName(a)
	var b strings.Builder
	var depNames []string
	libraries := make([]string, 0, 1)

	// The backend's executable primitive has no prebuild-dependency knob, so
	// a synthetic no-op freshness copy gates the link on its real
	// prerequisites and is wired in through the input list instead.
	if len(deps) > 0 && gate != "" {
		gateName := name + "_dep"
		fmt.Fprintf(&b, "Copy(%s)\n{\n", q(gateName))
		fmt.Fprintf(&b, "\t.Source = %s\n", q(gate))
		fmt.Fprintf(&b, "\t.Dest = %s\n", q(gate+".dep"))
		writeDeps(&b, deps)
		b.WriteString("}\n")
		depNames = append(depNames, gateName)
		libraries = append(libraries, gateName)
	} else {
		if len(deps) > 0 {
			t.log.Warn(fmt.Sprintf("action %s: no response file or input file to gate the link on, prerequisite ordering not enforced", a.ID))
		}
		if primaryInput != "" {
			libraries = append(libraries, primaryInput)
		} else if gate != "" {
			libraries = append(libraries, gate)
		} else {
			libraries = append(libraries, output+".inputs")
		}
	}

	fmt.Fprintf(&b, "Executable(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.Linker = %s\n", q(t.substituted(a.Executable)))
	fmt.Fprintf(&b, "\t.LinkerOutput = %s\n", q(output))
	fmt.Fprintf(&b, "\t.LinkerOptions = %s\n", q(strings.TrimRight(options, " ")))
	b.WriteString("\t.Libraries = { ")
	for i, lib := range libraries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(q(lib))
	}
	b.WriteString(" }\n")
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}, DependencyNames: depNames}
}

func (t *Translator) translatePostLinkTool(a *domain.Action, deps []string) Result {
	parsed := t.tok.Parse(a.Arguments, []cmdline.OptionSpec{
		{Name: "/OUT:", Glued: true},
		{Name: "-o"},
	})

	output := parsed["/OUT:"]
	if output == "" {
		output = parsed["-o"]
	}
	if output == "" {
		output = a.PrimaryOutput()
	}
	if output == "" {
		t.dropDiagnostic(a, domain.ErrMissingOutputPath)
		return Result{}
	}

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "Exec(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.ExecExecutable = %s\n", q(t.substituted(a.Executable)))
	fmt.Fprintf(&b, "\t.ExecOutput = %s\n", q(output))
	fmt.Fprintf(&b, "\t.ExecArguments = %s\n", q(t.rejoin(a.Arguments)))
	writeDeps(&b, deps)
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}}
}

// translateCopy handles literal file copies only. Anything that does not
// parse as exactly source plus destination goes back for local execution,
// and the intrinsics placeholder copies are already covered by their
// compile's fan-out.
func (t *Translator) translateCopy(a *domain.Action, deps []string) Result {
	tokens, _ := t.tok.Tokenize(a.Arguments)

	var paths []string
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "/") || strings.HasPrefix(tok, "-") {
			continue
		}
		paths = append(paths, cmdline.Unquote(tok))
	}
	if len(paths) != 2 {
		return Result{}
	}
	src, dst := paths[0], paths[1]
	if strings.HasSuffix(src, placeholderHeaderSuffix) {
		return Result{}
	}

	name := ActionName(a)
	var b strings.Builder
	fmt.Fprintf(&b, "Copy(%s)\n{\n", q(name))
	fmt.Fprintf(&b, "\t.Source = %s\n", q(src))
	fmt.Fprintf(&b, "\t.Dest = %s\n", q(dst))
	writeDeps(&b, deps)
	b.WriteString("}\n")

	return Result{Text: b.String(), PrimaryNames: []string{name}}
}

func (t *Translator) writeDistribution(b *strings.Builder, a *domain.Action) {
	if !a.CanDistribute || t.settings.ForceLocal(a.Module) {
		b.WriteString("\t.AllowDistribution = false\n")
	}
}

// dropDiagnostic names the abandoned action; the caller forwards it to the
// local fallback list so it never silently vanishes from the build.
func (t *Translator) dropDiagnostic(a *domain.Action, cause error) {
	t.log.Warn(fmt.Sprintf("action %s (%s) not translated, falling back to local execution: %v",
		a.ID, a.Executable, cause))
}

// substituted applies host-path variable rewriting to a single value.
func (t *Translator) substituted(s string) string {
	tokens, _ := t.tok.Tokenize(s)
	if len(tokens) == 0 {
		return s
	}
	return strings.Join(tokens, " ")
}

// rejoin tokenizes (expanding any response file) and rejoins the arguments
// for pass-through stanzas.
func (t *Translator) rejoin(raw string) string {
	tokens, _ := t.tok.Tokenize(raw)
	return strings.Join(tokens, " ")
}

func writeDeps(b *strings.Builder, deps []string) {
	if len(deps) == 0 {
		return
	}
	b.WriteString("\t.PreBuildDependencies = { ")
	for i, d := range deps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(q(d))
	}
	b.WriteString(" }\n")
}

// q renders a single-quoted script string, escaping embedded quotes with the
// backend's ^ escape.
func q(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "^'") + "'"
}

// quoteArg renders a double-quoted command-line argument.
func quoteArg(s string) string {
	return `"` + s + `"`
}

// splitPath splits off the final path component, keeping the trailing
// separator on the directory part so concatenation reproduces the original
// string byte for byte. No normalization happens here: emitted paths must
// not drift from what the command line said.
func splitPath(p string) (dir, base string) {
	idx := strings.LastIndexAny(p, `\/`)
	if idx < 0 {
		return "", p
	}
	return p[:idx+1], p[idx+1:]
}

func pathExt(base string) string {
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}
	return base[idx:]
}
