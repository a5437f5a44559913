package cmdline

import (
	"slices"
	"strings"
)

// Synthetic keys in the extracted option map.
const (
	// KeyInputFile holds the designated input file.
	KeyInputFile = "InputFile"
	// KeyOtherOptions holds the rejoined residual tokens.
	KeyOtherOptions = "OtherOptions"
	// KeyResponseFile holds the path of a consumed response file.
	KeyResponseFile = "@"
)

// OptionSpec identifies one special option of interest.
type OptionSpec struct {
	// Name is the flag literal, e.g. "/Fo" or "-o".
	Name string
	// Glued reports that the value is glued to the flag. Otherwise the next
	// token carries the value.
	Glued bool
}

// twoTokenFlags are flags whose value rides in the following token. The
// input-file scan must skip those values or it would misidentify them as the
// input.
var twoTokenFlags = []string{"/I", "-I", "/D", "-D", "/FI", "-include", "-isystem"}

// ExtractOptions scans the token stream once per spec, removing the first
// match (and its value token, if separate) and recording it in the result
// map. After all special options are extracted, the first remaining token
// that does not start with a flag prefix becomes the input file, and the
// leftover tokens are rejoined under KeyOtherOptions. Extraction order is
// significant: special options are always removed before the input-file scan
// runs, because option values and the input file are positionally ambiguous.
func ExtractOptions(tokens []string, specs []OptionSpec) map[string]string {
	remaining := slices.Clone(tokens)
	result := make(map[string]string, len(specs)+2)

	for _, spec := range specs {
		for i, tok := range remaining {
			if spec.Glued {
				if strings.HasPrefix(tok, spec.Name) && len(tok) > len(spec.Name) {
					result[spec.Name] = Unquote(tok[len(spec.Name):])
					remaining = slices.Delete(remaining, i, i+1)
					break
				}
				continue
			}
			if tok == spec.Name {
				if i+1 < len(remaining) {
					result[spec.Name] = Unquote(remaining[i+1])
					remaining = slices.Delete(remaining, i, i+2)
				} else {
					result[spec.Name] = ""
					remaining = slices.Delete(remaining, i, i+1)
				}
				break
			}
		}
	}

	for i := 0; i < len(remaining); i++ {
		tok := remaining[i]
		if slices.Contains(twoTokenFlags, tok) {
			i++
			continue
		}
		if strings.HasPrefix(tok, "/") || strings.HasPrefix(tok, "-") {
			continue
		}
		result[KeyInputFile] = Unquote(tok)
		remaining = slices.Delete(remaining, i, i+1)
		break
	}

	if len(remaining) > 0 {
		result[KeyOtherOptions] = strings.Join(remaining, " ")
	}
	return result
}

// Parse tokenizes raw and extracts the given special options in one call.
// When a response file was consumed its path is recorded under
// KeyResponseFile.
func (t *Tokenizer) Parse(raw string, specs []OptionSpec) map[string]string {
	tokens, rspPath := t.Tokenize(raw)
	result := ExtractOptions(tokens, specs)
	if rspPath != "" {
		result[KeyResponseFile] = rspPath
	}
	return result
}
