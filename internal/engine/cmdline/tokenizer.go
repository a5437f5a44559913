// Package cmdline recovers structured compiler and linker options from the
// opaque shell command strings the build planner hands over.
package cmdline

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.trai.ch/fbgen/internal/core/ports"
)

// Tokenizer splits raw command lines into semantic tokens. Quoted regions
// spanning multiple whitespace-separated fragments are merged back into a
// single token; escaped quotes do not count toward the open/close parity.
type Tokenizer struct {
	log  ports.Logger
	subs map[string]string

	// readFile is swappable for tests.
	readFile func(string) ([]byte, error)
}

// NewTokenizer creates a Tokenizer. subs maps literal host paths to backend
// variable names; occurrences are rewritten to the backend's $Var$ syntax
// before splitting so the emitted script re-resolves them at build time.
func NewTokenizer(log ports.Logger, subs map[string]string) *Tokenizer {
	return &Tokenizer{
		log:      log,
		subs:     subs,
		readFile: os.ReadFile,
	}
}

// Tokenize splits raw into merged tokens. When the command line carries an
// @"path" response-file reference, the file content replaces the raw token
// stream (split additionally on newlines) and the consumed path is returned
// as rspPath. An unreadable response file degrades to the literal token
// stream with a diagnostic.
func (t *Tokenizer) Tokenize(raw string) (tokens []string, rspPath string) {
	raw = t.substitute(raw)

	if path, ok := responseFileRef(raw); ok {
		data, err := t.readFile(path)
		if err != nil {
			t.log.Warn(fmt.Sprintf("response file %s unreadable, using literal command line: %v", path, err))
		} else {
			return t.merge(strings.Fields(t.substitute(string(data)))), path
		}
	}

	return t.merge(strings.Fields(raw)), ""
}

// substitute rewrites known host path literals into $Var$ references.
// Longer literals win so nested paths are not partially rewritten.
func (t *Tokenizer) substitute(s string) string {
	if len(t.subs) == 0 {
		return s
	}
	literals := make([]string, 0, len(t.subs))
	for lit := range t.subs {
		literals = append(literals, lit)
	}
	sort.Slice(literals, func(i, j int) bool {
		if len(literals[i]) != len(literals[j]) {
			return len(literals[i]) > len(literals[j])
		}
		return literals[i] < literals[j]
	})
	for _, lit := range literals {
		s = strings.ReplaceAll(s, lit, "$"+t.subs[lit]+"$")
	}
	return s
}

// responseFileRef finds an @-prefixed fragment and returns the referenced
// path with surrounding quotes stripped.
func responseFileRef(raw string) (string, bool) {
	for _, frag := range strings.Fields(raw) {
		if len(frag) > 1 && frag[0] == '@' {
			return Unquote(frag[1:]), true
		}
	}
	return "", false
}

// merge re-joins fragments whose unescaped quote count is odd. A /D or -D
// define keeps consuming fragments until one ends in an unescaped quote,
// because defines may embed arbitrary quoted space-containing text. Running
// out of input emits the partial token anyway with a diagnostic.
func (t *Tokenizer) merge(frags []string) []string {
	tokens := make([]string, 0, len(frags))
	for i := 0; i < len(frags); i++ {
		frag := frags[i]
		if quoteCount(frag)%2 == 0 {
			tokens = append(tokens, frag)
			continue
		}

		isDefine := strings.HasPrefix(frag, "/D") || strings.HasPrefix(frag, "-D")
		tok := frag
		closed := false
		for i++; i < len(frags); i++ {
			tok += " " + frags[i]
			if isDefine {
				if endsWithUnescapedQuote(frags[i]) {
					closed = true
					break
				}
			} else if quoteCount(frags[i])%2 == 1 {
				closed = true
				break
			}
		}

		if !closed {
			t.log.Warn("unterminated quoted token: " + tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// quoteCount counts double quotes not preceded by a backslash.
func quoteCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '"' && (i == 0 || s[i-1] != '\\') {
			n++
		}
	}
	return n
}

func endsWithUnescapedQuote(s string) bool {
	if len(s) == 0 || s[len(s)-1] != '"' {
		return false
	}
	return len(s) == 1 || s[len(s)-2] != '\\'
}

// Unquote strips one pair of surrounding double quotes and unescapes
// embedded \" sequences.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `\"`, `"`)
}
