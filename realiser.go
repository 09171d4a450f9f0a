// Package realiser turns feature-annotated phrase trees into English
// or French text: a syntax stage orders words and builds verb groups,
// questions and passives, then a morphology stage inflects each word and
// applies the spelling rules between neighbours.
package realiser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Realiser turns element trees into text for one language. It holds no
// per-call state, so one Realiser may serve concurrent callers as long
// as each passes its own tree.
type Realiser struct {
	lang    Language
	lex     Lexicon
	factory *Factory
	syntax  *SyntaxProcessor
	morph   *MorphologyProcessor
}

// New builds a realiser from cfg. The lexicon is cfg.Lexicon if set,
// else the built-in lexicon of the language merged with the file at
// cfg.LexiconPath.
func New(cfg Config) (*Realiser, error) {
	lang, err := LanguageFor(cfg.Language)
	if err != nil {
		return nil, err
	}
	lex := cfg.Lexicon
	if lex == nil {
		mem, err := DefaultLexicon(lang)
		if err != nil {
			return nil, err
		}
		if cfg.LexiconPath != "" {
			extra, err := LoadLexicon(cfg.LexiconPath)
			if err != nil {
				return nil, err
			}
			mem.Merge(extra)
		}
		lex = mem
	}
	f := NewFactory(lang, lex)
	s := NewSyntaxProcessor(lang, f)
	s.aggregateAux = cfg.AggregateAuxiliary
	return &Realiser{
		lang:    lang,
		lex:     lex,
		factory: f,
		syntax:  s,
		morph:   NewMorphologyProcessor(lang),
	}, nil
}

func (r *Realiser) Language() Language { return r.lang }
func (r *Realiser) Lexicon() Lexicon   { return r.lex }
func (r *Realiser) Factory() *Factory  { return r.factory }

// Realise runs the syntax and morphology stages over el. The tree is
// consumed: the syntax stage rewrites its features.
func (r *Realiser) Realise(el Element) Element {
	return r.morph.Realise(r.syntax.Realise(el))
}

// RealiseSentence realises el and renders it as one or more sentences:
// leaves joined by spaces, the first letter capitalised and a full stop
// or question mark added.
func (r *Realiser) RealiseSentence(el Element) string {
	out := r.Realise(el)
	if out == nil {
		return ""
	}
	if d, ok := out.(*DocumentElement); ok && d.Category() != CatSentence {
		var parts []string
		for _, c := range d.Components {
			if s := renderSentence(c); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}
	return renderSentence(out)
}

func renderSentence(el Element) string {
	text := JoinLeaves(Leaves(el))
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	text = string(unicode.ToUpper(r)) + text[size:]
	if strings.ContainsAny(text[len(text)-1:], ".?!") {
		return text
	}
	if interrogative(el) {
		return text + "?"
	}
	return text + "."
}

// interrogative reports whether the sentence el was realised from a
// question.
func interrogative(el Element) bool {
	if el.Features().Bool(FeatInterrogativeOut) {
		return true
	}
	if d, ok := el.(*DocumentElement); ok {
		for _, c := range d.Components {
			if c.Features().Bool(FeatInterrogativeOut) {
				return true
			}
		}
	}
	return false
}

// JoinLeaves joins leaf texts with single spaces, with no space before
// punctuation or after an elided word ("l'homme"). The apostrophe of an
// English plural possessive ("the boys' dog") is not an elision.
func JoinLeaves(leaves []*StringElement) string {
	var b strings.Builder
	elided := false
	for _, l := range leaves {
		t := l.Text
		if t == "" {
			continue
		}
		if b.Len() > 0 && !strings.ContainsAny(t[:1], ",.;:?!") && !elided {
			b.WriteByte(' ')
		}
		b.WriteString(t)
		elided = strings.HasSuffix(t, "'") && l.Category() != CatNoun
	}
	return b.String()
}

// Inflect returns the form of base in category cat carrying feats.
func (r *Realiser) Inflect(base string, cat Category, feats Features) string {
	w := r.factory.CreateInflectedWord(base, cat)
	for k, v := range feats {
		w.Features().Set(k, v)
	}
	return r.morph.Inflect(w)
}

// Tokens realises el and lists its leaves with their annotations.
func (r *Realiser) Tokens(el Element) []Token {
	out := r.Realise(el)
	leaves := Leaves(out)
	tokens := make([]Token, 0, len(leaves))
	for _, l := range leaves {
		f := l.Features()
		tokens = append(tokens, Token{
			Text:       l.Text,
			Category:   l.Category(),
			Function:   f.Function(),
			Appositive: f.Bool(FeatAppositive),
		})
	}
	return tokens
}

func (r *Realiser) String() string {
	return fmt.Sprintf("realiser(%s)", r.lang.Tag())
}
