package realiser

import "strings"

// Factory builds element trees from base forms, resolving words in its
// lexicon. The syntax stage also uses it for the words it adds itself
// ("do", "by", question words).
type Factory struct {
	lang Language
	lex  Lexicon
}

// NewFactory returns a factory for lang over lex. A nil lexicon makes
// every word a bare base form inflected by the regular rules.
func NewFactory(lang Language, lex Lexicon) *Factory {
	if lang == nil {
		lang = English()
	}
	return &Factory{lang: lang, lex: lex}
}

func (f *Factory) Language() Language { return f.lang }
func (f *Factory) Lexicon() Lexicon   { return f.lex }

// CreateWord returns the lexicon entry for base in cat, or a fresh
// entry with no irregular forms.
func (f *Factory) CreateWord(base string, cat Category) *WordElement {
	if w := lookupWord(f.lex, base, cat); w != nil {
		return w
	}
	if cat == CatAny {
		cat = CatNoun
	}
	return NewWord(base, cat)
}

// CreateInflectedWord returns a usage-site word for base in cat.
func (f *Factory) CreateInflectedWord(base string, cat Category) *InflectedWordElement {
	return NewInflectedWord(f.CreateWord(base, cat))
}

// word turns a string or element argument into an element; strings are
// looked up in cats in order, the first category being the default.
func (f *Factory) word(arg any, cats ...Category) Element {
	switch v := arg.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		for _, c := range cats {
			if w := lookupWord(f.lex, v, c); w != nil {
				return NewInflectedWord(w)
			}
		}
		return f.CreateInflectedWord(v, cats[0])
	case Element:
		return usage(v)
	}
	return nil
}

// CreateNounPhrase builds a noun phrase. With a nil noun the first
// argument is the noun: CreateNounPhrase("dog", nil).
func (f *Factory) CreateNounPhrase(spec, noun any) *PhraseElement {
	if noun == nil {
		spec, noun = nil, spec
	}
	if p, ok := noun.(*PhraseElement); ok && p.Category() == CatNounPhrase {
		if s := f.word(spec, CatDeterminer, CatPronoun); s != nil {
			p.SetSpecifier(s)
		}
		return p
	}
	np := NewPhrase(CatNounPhrase)
	if h := f.word(noun, CatNoun, CatPronoun); h != nil {
		np.SetHead(h)
	}
	if s := f.word(spec, CatDeterminer, CatPronoun); s != nil {
		np.SetSpecifier(s)
	}
	return np
}

// CreateVerbPhrase builds a verb phrase. A two-word string is a phrasal
// verb: "pick up" gets head "pick" and particle "up".
func (f *Factory) CreateVerbPhrase(verb any) *PhraseElement {
	if p, ok := verb.(*PhraseElement); ok && p.Category() == CatVerbPhrase {
		return p
	}
	vp := NewPhrase(CatVerbPhrase)
	if s, ok := verb.(string); ok {
		if head, particle, found := strings.Cut(strings.TrimSpace(s), " "); found {
			vp.SetHead(f.CreateInflectedWord(head, CatVerb))
			vp.Features().Set(FeatParticle, strings.TrimSpace(particle))
			return vp
		}
	}
	if h := f.word(verb, CatVerb); h != nil {
		vp.SetHead(h)
	}
	return vp
}

func (f *Factory) CreateAdjectivePhrase(adj any) *PhraseElement {
	p := NewPhrase(CatAdjPhrase)
	if h := f.word(adj, CatAdjective); h != nil {
		p.SetHead(h)
	}
	return p
}

func (f *Factory) CreateAdverbPhrase(adv any) *PhraseElement {
	p := NewPhrase(CatAdvPhrase)
	if h := f.word(adv, CatAdverb); h != nil {
		p.SetHead(h)
	}
	return p
}

// CreatePrepositionPhrase builds a prepositional phrase; a string
// complement becomes a noun phrase.
func (f *Factory) CreatePrepositionPhrase(prep, complement any) *PhraseElement {
	p := NewPhrase(CatPrepPhrase)
	if h := f.word(prep, CatPreposition); h != nil {
		p.SetHead(h)
	}
	if c := f.nounPhrase(complement); c != nil {
		p.AddComplement(c)
	}
	return p
}

// nounPhrase makes string arguments into noun phrases and passes
// elements through.
func (f *Factory) nounPhrase(arg any) Element {
	switch v := arg.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return f.CreateNounPhrase(v, nil)
	case Element:
		return usage(v)
	}
	return nil
}

// CreateClause builds a clause from a subject, a verb and an object;
// any of them may be nil.
func (f *Factory) CreateClause(subject, verb, object any) *PhraseElement {
	c := NewPhrase(CatClause)
	if verb != nil {
		c.Features().Set(FeatVerbPhrase, f.CreateVerbPhrase(verb))
	}
	if s := f.nounPhrase(subject); s != nil {
		c.SetSubject(s)
	}
	if o := f.nounPhrase(object); o != nil {
		c.SetObject(o)
	}
	return c
}

// CreateCoordinatedPhrase joins items with the language's default
// conjunction.
func (f *Factory) CreateCoordinatedPhrase(items ...any) *CoordinatedPhraseElement {
	c := NewCoordination("")
	for _, it := range items {
		c.Add(f.nounPhrase(it))
	}
	return c
}

// CreateSentence wraps items in a sentence; strings become canned text.
func (f *Factory) CreateSentence(items ...any) *DocumentElement {
	d := NewDocument(CatSentence)
	for _, it := range items {
		switch v := it.(type) {
		case string:
			d.Components = append(d.Components, NewString(v))
		case Element:
			d.Components = append(d.Components, usage(v))
		}
	}
	return d
}
