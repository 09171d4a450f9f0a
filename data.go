package realiser

import (
	"bytes"
	"embed"
	"fmt"
)

//go:embed data/*.lex
var builtinData embed.FS

// builtinLexicons maps a language tag onto its embedded lexicon file.
var builtinLexicons = map[string]string{
	"en": "data/english.lex",
	"fr": "data/french.lex",
}

// DefaultLexicon parses the built-in lexicon of lang. Each call returns
// a fresh lexicon the caller may extend.
func DefaultLexicon(lang Language) (*MemoryLexicon, error) {
	name, ok := builtinLexicons[lang.Tag().String()]
	if !ok {
		return NewMemoryLexicon(), nil
	}
	data, err := builtinData.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	lex, err := ReadLexicon(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lex, nil
}
