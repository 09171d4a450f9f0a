package realiser

// SyntaxProcessor is the syntax stage: it turns a phrase tree into
// nested lists of inflected words in surface order, adding auxiliaries,
// keywords and agreement features on the way. It mutates the tree it is
// given, which belongs to one realisation call.
type SyntaxProcessor struct {
	lang    Language
	factory *Factory
	// aggregateAux makes every coordination of verb phrases realise
	// the auxiliaries of its first coordinate only.
	aggregateAux bool
}

// NewSyntaxProcessor returns a syntax stage for lang drawing auxiliary
// words from f.
func NewSyntaxProcessor(lang Language, f *Factory) *SyntaxProcessor {
	return &SyntaxProcessor{lang: lang, factory: f}
}

// Language returns the language the processor realises.
func (s *SyntaxProcessor) Language() Language { return s.lang }

// Realise realises one element. Realised words and string leaves come
// back as they are.
func (s *SyntaxProcessor) Realise(el Element) Element {
	switch e := el.(type) {
	case nil:
		return nil
	case *StringElement, *InflectedWordElement:
		return el
	case *WordElement:
		return NewInflectedWord(e)
	case *ListElement:
		out := NewList()
		out.features = e.Features().clone()
		for _, it := range e.Items {
			out.Add(s.Realise(it))
		}
		return out
	case *CoordinatedPhraseElement:
		return s.realiseCoordination(e)
	case *DocumentElement:
		return s.realiseDocument(e)
	case *PhraseElement:
		if e.Features().Bool(FeatElided) {
			return nil
		}
		switch e.Category() {
		case CatClause:
			return s.realiseClause(e)
		case CatNounPhrase:
			return s.realiseNounPhrase(e)
		case CatVerbPhrase:
			return s.realiseVerbPhrase(e)
		case CatAdjPhrase, CatAdvPhrase:
			return s.realiseModifierPhrase(e)
		case CatPrepPhrase:
			return s.realisePrepPhrase(e)
		}
		out := NewList()
		s.realiseList(out, e.Children(), "")
		return out
	}
	return el
}

// word creates an inflected word through the factory.
func (s *SyntaxProcessor) word(base string, cat Category) *InflectedWordElement {
	return s.factory.CreateInflectedWord(base, cat)
}

// realiseList realises els into out, tagging each result with fn.
func (s *SyntaxProcessor) realiseList(out *ListElement, els []Element, fn Function) {
	for _, el := range els {
		r := s.Realise(el)
		if r == nil {
			continue
		}
		if fn != "" {
			setFunction(r, fn)
		}
		out.Add(r)
	}
}

func (s *SyntaxProcessor) realiseDocument(d *DocumentElement) Element {
	out := NewDocument(d.Category())
	out.features = d.Features().clone()
	for _, c := range d.Components {
		r := s.Realise(c)
		if r == nil {
			continue
		}
		if d.Category() == CatSentence && r.Features().Bool(FeatInterrogativeOut) {
			out.Features().Set(FeatInterrogativeOut, true)
		}
		out.Components = append(out.Components, r)
	}
	return out
}

// nounGender is the gender of a noun phrase: its own, else its head's.
func nounGender(np *PhraseElement) Gender {
	if g := np.Features().Gender(); g != "" {
		return g
	}
	if h := np.Head(); h != nil {
		return h.Features().Gender()
	}
	return ""
}

// realiseNounPhrase emits specifier, pre-modifiers, head, complements
// and post-modifiers, passing the phrase's agreement down to its words.
func (s *SyntaxProcessor) realiseNounPhrase(np *PhraseElement) Element {
	f := np.Features()
	out := NewList()
	if f.Bool(FeatPronominal) {
		out.Add(s.pronounFor(np))
		return out
	}
	agree := s.lang.GenderAgreement()
	gender := nounGender(np)
	if spec := np.Specifier(); spec != nil {
		sf := spec.Features()
		switch spec.Category() {
		case CatPronoun, CatNounPhrase:
			if agree {
				if gender != "" {
					sf.Set(featAgreeGender, gender)
				}
				if f.Has(FeatNumber) {
					sf.Set(featAgreeNumber, f.Number())
				}
			}
		default:
			sf.inheritFrom(f, FeatNumber)
			if agree && gender != "" {
				sf.Set(FeatGender, gender)
			}
		}
		setFunction(spec, FuncSpecifier)
		if r := s.Realise(spec); r != nil {
			setFunction(r, FuncSpecifier)
			out.Add(r)
		}
	}
	var postposed []Element
	for _, m := range np.PreModifiers() {
		if agree {
			m.Features().inheritFrom(f, FeatNumber)
			if gender != "" {
				m.Features().Set(FeatGender, gender)
			}
		}
		if s.lang.PostposedModifier(m) {
			postposed = append(postposed, m)
			continue
		}
		s.realiseList(out, []Element{m}, FuncPreModifier)
	}
	if head := np.Head(); head != nil {
		hf := head.Features()
		hf.inheritFrom(f, FeatNumber, FeatPerson, FeatGender, FeatPossessive, FeatPassive,
			FeatReflexive, FeatFunction, featCopularComplement, featStressed)
		if r := s.Realise(head); r != nil {
			out.Add(r)
		}
	}
	s.realiseList(out, postposed, FuncPreModifier)
	s.realiseList(out, np.Complements(), FuncComplement)
	s.realiseList(out, np.PostModifiers(), FuncPostModifier)
	return out
}

// pronounFor builds the pronoun standing for a pronominal noun phrase.
func (s *SyntaxProcessor) pronounFor(np *PhraseElement) *InflectedWordElement {
	f := np.Features()
	n, p, g := f.Number(), f.Person(), nounGender(np)
	if n == "" {
		n = NumberSingular
	}
	if p == "" {
		p = PersonThird
	}
	w := s.word(s.lang.Pronouns().subjectPronoun(n, p, g), CatPronoun)
	wf := w.Features()
	wf.Set(FeatNumber, n)
	wf.Set(FeatPerson, p)
	if g != "" {
		wf.Set(FeatGender, g)
	}
	wf.Set(FeatFunction, FuncSpecifier)
	wf.inheritFrom(f, FeatPossessive, FeatPassive, FeatReflexive, FeatFunction,
		featCopularComplement, featStressed, featAgreeGender, featAgreeNumber)
	return w
}

// realiseModifierPhrase handles adjective and adverb phrases.
func (s *SyntaxProcessor) realiseModifierPhrase(p *PhraseElement) Element {
	f := p.Features()
	out := NewList()
	s.realiseList(out, p.PreModifiers(), FuncPreModifier)
	if head := p.Head(); head != nil {
		head.Features().inheritFrom(f, FeatNumber, FeatGender, FeatComparative, FeatSuperlative)
		if r := s.Realise(head); r != nil {
			out.Add(r)
		}
	}
	s.realiseList(out, p.Complements(), FuncComplement)
	s.realiseList(out, p.PostModifiers(), FuncPostModifier)
	return out
}

// realisePrepPhrase emits the preposition and its complements. Pronoun
// complements of a preposition take their stressed form where the
// language has one.
func (s *SyntaxProcessor) realisePrepPhrase(p *PhraseElement) Element {
	out := NewList()
	s.realiseList(out, p.PreModifiers(), FuncPreModifier)
	if head := p.Head(); head != nil {
		if r := s.Realise(head); r != nil {
			out.Add(r)
		}
	}
	for _, c := range p.Complements() {
		c.Features().Set(featStressed, true)
	}
	s.realiseList(out, p.Complements(), FuncComplement)
	s.realiseList(out, p.PostModifiers(), FuncPostModifier)
	return out
}

// coordinateFeatures are the features a coordination hands to each of
// its coordinates.
var coordinateFeatures = []string{
	FeatProgressive, FeatPerfect, FeatGender, FeatNumber, FeatTense,
	FeatPerson, FeatNegated, FeatModal, FeatFunction, FeatForm,
	FeatClauseStatus, FeatInterrogative, FeatPassive,
}

// realiseCoordination joins the realised coordinates with the
// conjunction; with more than two, the earlier ones are separated by
// commas.
func (s *SyntaxProcessor) realiseCoordination(c *CoordinatedPhraseElement) Element {
	out := NewList()
	f := c.Features()
	out.Features().inheritFrom(f, FeatFunction, FeatAppositive)
	items := c.Coordinates
	if len(items) == 0 {
		return out
	}
	conj := s.lang.Conjunction()
	if f.Has(FeatConjunction) {
		conj = c.Conjunction()
	}
	items[len(items)-1].Features().inheritFrom(f, FeatPossessive)
	for i, it := range items {
		it.Features().inheritFrom(f, coordinateFeatures...)
		if i > 0 {
			if f.Bool(FeatAggregateAux) || s.aggregateAux && it.Category() == CatVerbPhrase {
				it.Features().Set(FeatRealiseAux, false)
			}
			if it.Category() == CatClause {
				it.Features().inheritFrom(f, FeatSuppressComplementiser)
			}
			if i < len(items)-1 {
				out.Add(NewString(","))
			} else if conj != "" {
				w := s.word(conj, CatConjunction)
				setFunction(w, FuncConjunction)
				out.Add(w)
			}
		}
		if r := s.Realise(it); r != nil {
			out.Add(r)
		}
	}
	return out
}
