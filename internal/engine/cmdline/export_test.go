package cmdline

// SetReadFile swaps the response file reader for tests.
func (t *Tokenizer) SetReadFile(fn func(string) ([]byte, error)) {
	t.readFile = fn
}
