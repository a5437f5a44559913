package translate

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/fbgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// AliasName is the aggregate target referencing every emitted stanza.
const AliasName = "all"

// Script is the assembled declarative script plus its name registries.
type Script struct {
	Text string
	// Digest is the xxhash of Text; identical action graphs must produce
	// identical digests.
	Digest string
	// PrimaryNames lists stanzas representing actions, in emission order.
	PrimaryNames []string
	// DependencyNames lists synthetic dependency-only stanzas.
	DependencyNames []string
}

// Emitter folds per-action translation results into one script. The buffer
// and both name registries live here for the duration of a single pass; no
// other component holds a reference to them.
type Emitter struct {
	log        ports.Logger
	toolchain  *domain.Toolchain
	settings   *domain.Settings
	translator *Translator
}

// NewEmitter creates an Emitter for one generation run.
func NewEmitter(log ports.Logger, toolchain *domain.Toolchain, settings *domain.Settings) *Emitter {
	return &Emitter{
		log:        log,
		toolchain:  toolchain,
		settings:   settings,
		translator: NewTranslator(log, toolchain, settings),
	}
}

// Emit writes the setup block, one stanza set per translatable action in
// sorted order, and the aggregate alias. Actions that could not or should
// not be translated are returned for local fallback execution. Output is
// byte-stable for identical inputs.
func (e *Emitter) Emit(actions []*domain.Action) (*Script, []*domain.Action, error) {
	var buf bytes.Buffer
	if err := e.writeSetup(&buf); err != nil {
		return nil, nil, err
	}

	emitted := make(map[*domain.Action]bool, len(actions))
	var primary, depOnly []string
	var local []*domain.Action

	for _, a := range actions {
		deps := make([]string, 0, len(a.Prerequisites))
		for _, p := range a.Prerequisites {
			if emitted[p] {
				deps = append(deps, ActionName(p))
			}
		}

		res := e.translator.Translate(a, deps)
		if !res.translated() {
			local = append(local, a)
			continue
		}

		buf.WriteByte('\n')
		buf.WriteString(res.Text)
		primary = append(primary, res.PrimaryNames...)
		depOnly = append(depOnly, res.DependencyNames...)
		emitted[a] = true
	}

	if len(primary)+len(depOnly) > 0 {
		e.writeAlias(&buf, depOnly, primary)
	}

	text := buf.String()
	script := &Script{
		Text:            text,
		Digest:          fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		PrimaryNames:    primary,
		DependencyNames: depOnly,
	}
	return script, local, nil
}

// writeSetup emits the settings block, substitution variable definitions,
// the environment block, and the toolchain declarations, once, before any
// action stanza. An unknown toolchain family is fatal.
func (e *Emitter) writeSetup(buf *bytes.Buffer) error {
	var family string
	switch e.toolchain.Family {
	case domain.FamilyMSVC:
		family = "msvc"
	case domain.FamilyClang:
		family = "clang"
	default:
		return zerr.With(domain.ErrUnknownToolchain, "family", int(e.toolchain.Family))
	}

	buf.WriteString("// Generated by fbgen. Do not edit.\n\n")

	buf.WriteString("Settings\n{\n")
	if e.settings.CacheMode != domain.CacheDisabled && e.settings.CachePath != "" {
		fmt.Fprintf(buf, "\t.CachePath = %s\n", q(e.settings.CachePath))
	}
	if e.settings.BrokeragePath != "" {
		fmt.Fprintf(buf, "\t.BrokeragePath = %s\n", q(e.settings.BrokeragePath))
	}
	if env := e.toolchain.Environment; len(env) > 0 {
		keys := make([]string, 0, len(env))
		for k := range env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteString("\t.Environment = {\n")
		for _, k := range keys {
			fmt.Fprintf(buf, "\t\t%s,\n", q(k+"="+env[k]))
		}
		buf.WriteString("\t}\n")
	}
	buf.WriteString("}\n\n")

	// Substitution variables referenced as $Var$ throughout the stanzas are
	// defined here so the backend re-resolves them at build time.
	if subs := e.toolchain.Substitutions; len(subs) > 0 {
		names := make(map[string]string, len(subs))
		order := make([]string, 0, len(subs))
		for literal, name := range subs {
			names[name] = literal
			order = append(order, name)
		}
		sort.Strings(order)
		for _, name := range order {
			fmt.Fprintf(buf, ".%s = %s\n", name, q(names[name]))
		}
		buf.WriteByte('\n')
	}

	fmt.Fprintf(buf, "Compiler('Compiler')\n{\n")
	fmt.Fprintf(buf, "\t.Executable = %s\n", q(e.toolchain.Compiler))
	fmt.Fprintf(buf, "\t.CompilerFamily = %s\n", q(family))
	if len(e.toolchain.ExtraFiles) > 0 {
		buf.WriteString("\t.ExtraFiles = {\n")
		for _, f := range e.toolchain.ExtraFiles {
			fmt.Fprintf(buf, "\t\t%s,\n", q(f))
		}
		buf.WriteString("\t}\n")
	}
	buf.WriteString("}\n\n")

	if e.toolchain.ResourceCompiler != "" {
		fmt.Fprintf(buf, "Compiler('ResourceCompiler')\n{\n\t.Executable = %s\n\t.CompilerFamily = 'custom'\n}\n\n", q(e.toolchain.ResourceCompiler))
	}
	if e.toolchain.Librarian != "" {
		fmt.Fprintf(buf, ".Librarian = %s\n", q(e.toolchain.Librarian))
	}
	if e.toolchain.Linker != "" {
		fmt.Fprintf(buf, ".Linker = %s\n", q(e.toolchain.Linker))
	}
	return nil
}

// writeAlias emits the aggregate target, dependency-only names first.
func (e *Emitter) writeAlias(buf *bytes.Buffer, depOnly, primary []string) {
	fmt.Fprintf(buf, "\nAlias(%s)\n{\n\t.Targets = {\n", q(AliasName))
	for _, n := range depOnly {
		fmt.Fprintf(buf, "\t\t%s,\n", q(n))
	}
	for _, n := range primary {
		fmt.Fprintf(buf, "\t\t%s,\n", q(n))
	}
	buf.WriteString("\t}\n}\n")
}
