package realiser

import (
	"sort"

	"golang.org/x/text/language"
)

type french struct{}

// French returns the French realiser language.
func French() Language { return french{} }

func (french) Tag() language.Tag { return language.French }

func (french) Complementiser() string                { return "que" }
func (french) Conjunction() string                   { return "et" }
func (french) AgentPreposition() string              { return "par" }
func (french) SubjectClauseForm() Form               { return FormInfinitive }
func (french) GenderAgreement() bool                 { return true }
func (french) TrailingParticle(Interrogative) string { return "" }
func (french) IndirectObjectPreposition() string     { return "à" }

// PostposedModifier places adjectives after the noun unless the lexicon
// marks them preposed ("grand", "petit", "bon").
func (french) PostposedModifier(mod Element) bool {
	switch m := mod.(type) {
	case *InflectedWordElement:
		return m.Category() == CatAdjective && !m.Features().Bool(LexPreposed)
	case *WordElement:
		return m.Category() == CatAdjective && !m.Features().Bool(LexPreposed)
	case *PhraseElement:
		if m.Category() != CatAdjPhrase || m.Head() == nil {
			return false
		}
		return !m.Head().Features().Bool(LexPreposed)
	}
	return false
}

type keyword struct {
	base string
	cat  Category
}

// frenchKeywords are the leaves opening each question type.
var frenchKeywords = map[Interrogative][]keyword{
	InterrogYesNo:             {{"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogWhoSubject:        {{"qui", CatPronoun}},
	InterrogWhatSubject:       {{"qu'est-ce", CatAdverb}, {"qui", CatPronoun}},
	InterrogWhoObject:         {{"qui", CatPronoun}, {"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogWhatObject:        {{"qu'est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogWhoIndirectObject: {{"à", CatPreposition}, {"qui", CatPronoun}, {"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogWhy:               {{"pourquoi", CatAdverb}, {"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogWhere:             {{"où", CatAdverb}, {"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogHow:               {{"comment", CatAdverb}, {"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogHowPredicate:      {{"comment", CatAdverb}, {"est-ce", CatAdverb}, {"que", CatComplementiser}},
	InterrogHowMany:           {{"combien", CatAdverb}, {"de", CatPreposition}},
}

// Question fronts the "est-ce que" keywords; French never inverts here.
func (french) Question(s *SyntaxProcessor, st *ClauseState) {
	f := st.Clause.Features()
	q := f.Interrogative()
	kws := frenchKeywords[q]
	switch q {
	case InterrogHowMany:
		bareSubjects(st.Clause)
	case InterrogWhoSubject, InterrogWhatSubject:
		st.DropSubjects = true
		if f.Bool(FeatPassive) {
			// The agent is questioned: "par qui est-ce que ..."
			s.addKeyword(st, "par", CatPreposition)
			kws = frenchKeywords[InterrogWhoObject]
			if q == InterrogWhatSubject {
				kws = []keyword{{"quoi", CatPronoun}, {"est-ce", CatAdverb}, {"que", CatComplementiser}}
			}
		}
	}
	for _, kw := range kws {
		s.addKeyword(st, kw.base, kw.cat)
	}
}

// VerbGroup builds the French verb group: "ne", the clitics, the finite
// verb or auxiliary, "pas", then participles and infinitives.
func (french) VerbGroup(s *SyntaxProcessor, vp *PhraseElement) *VerbGroup {
	f := vp.Features()
	g := &VerbGroup{}
	tense := phraseTense(f)
	form := f.Form()
	perfect, progressive := f.Bool(FeatPerfect), f.Bool(FeatProgressive)
	infinitive := form == FormInfinitive || form == FormBareInfinitive
	switch form {
	case FormGerund, FormPresentParticiple, FormInfinitive, FormBareInfinitive:
		tense = TensePresent
	}
	if tense == TensePast {
		switch {
		case progressive && !perfect:
			tense, progressive = TenseImperfect, false
		case perfect:
			tense = TenseImperfect
		default:
			tense, perfect = TensePresent, true
		}
	}

	s.pushParticle(g, vp)
	head := s.headVerb(vp, tense)
	if head == nil {
		return g
	}
	if infinitive {
		head.Features().Set(FeatNonMorph, true)
	}
	clitics, direct := frenchClitics(s, vp)
	front := head

	if f.Bool(FeatPassive) {
		frenchAgree(front, f.Gender(), f.Number())
		pushAs(g, front, FormPastParticiple)
		front = s.word("être", CatVerb)
	}
	if progressive {
		pushNonMorph(g, front)
		for _, w := range []string{"de", "train", "en"} {
			g.Push(s.word(w, CatPreposition), RoleFiller)
		}
		front = s.word("être", CatVerb)
	}
	if modal := f.Str(FeatModal); modal != "" {
		pushNonMorph(g, front)
		front = s.word(modal, CatVerb)
	}
	if perfect {
		aux := "avoir"
		if front == head && (head.Features().Bool(LexAuxEtre) || head.Features().Bool(LexReflexive) || f.Bool(FeatReflexive)) {
			aux = "être"
		}
		if aux == "être" {
			frenchAgree(front, f.Gender(), f.Number())
		} else if direct != nil {
			frenchAgree(front, s.genderOf(direct), s.numberOf(direct))
		} else {
			frenchAgree(front, GenderMasculine, NumberSingular)
		}
		pushAs(g, front, FormPastParticiple)
		front = s.word(aux, CatVerb)
	}

	negated := f.Bool(FeatNegated)
	switch {
	case infinitive:
		pushNonMorph(g, front)
		pushClitics(g, clitics)
		if negated {
			g.Push(s.word("pas", CatAdverb), RoleNegation)
			g.Push(s.word("ne", CatAdverb), RoleNegation)
		}
		return g
	case form == FormGerund || form == FormPresentParticiple:
		front.Features().Set(FeatForm, FormPresentParticiple)
		front.Features().Delete(FeatNonMorph)
	case form == FormPastParticiple:
		front.Features().Set(FeatForm, FormPastParticiple)
	case form == FormImperative:
		front.Features().Set(FeatForm, FormImperative)
		stampFinite(front, vp, tense)
	default:
		stampFinite(front, vp, tense)
	}
	if negated {
		g.Push(s.word("pas", CatAdverb), RoleNegation)
	}
	g.Push(front, RoleVerb)
	pushClitics(g, clitics)
	if negated {
		g.Push(s.word("ne", CatAdverb), RoleNegation)
	}
	return g
}

// frenchAgree sets the agreement of a past participle.
func frenchAgree(w *InflectedWordElement, gen Gender, n Number) {
	f := w.Features()
	if gen == "" {
		gen = GenderMasculine
	}
	if n == "" {
		n = NumberSingular
	}
	f.Set(FeatGender, gen)
	f.Set(FeatNumber, n)
}

// clitic is a pronoun raised before the verb, with its position rank.
type clitic struct {
	word Element
	rank int
}

// pushClitics pushes the clitics so that they come out in rank order.
func pushClitics(g *VerbGroup, clitics []clitic) {
	for i := len(clitics) - 1; i >= 0; i-- {
		g.Push(clitics[i].word, RoleClitic)
	}
}

// frenchClitics raises the pronoun objects of vp, ordered me/te/se,
// nous/vous, le/la/les, lui/leur. It also returns the direct-object
// clitic a participle conjugated with avoir agrees with.
func frenchClitics(s *SyntaxProcessor, vp *PhraseElement) ([]clitic, Element) {
	f := vp.Features()
	q := f.Interrogative()
	var out []clitic
	if h := vp.Head(); h != nil && (h.Features().Bool(LexReflexive) || f.Bool(FeatReflexive)) {
		se := s.word("se", CatPronoun)
		sf := se.Features()
		sf.Set(FeatReflexive, true)
		sf.Set(FeatFunction, FuncObject)
		sf.inheritFrom(f, FeatPerson, FeatNumber)
		out = append(out, clitic{word: se, rank: 0})
	}
	if f.Bool(FeatPassive) || q.questionsObject() || q == InterrogHowPredicate {
		return out, nil
	}
	var direct Element
	for _, c := range vp.Complements() {
		cf := c.Features()
		fn := cf.Function()
		if fn != FuncObject && fn != FuncIndirectObject || !isPronounElement(c) {
			continue
		}
		if fn == FuncIndirectObject && q == InterrogWhoIndirectObject {
			continue
		}
		rank := 2
		switch {
		case cf.Bool(FeatReflexive):
			rank = 0
		case s.personOf(c) != PersonThird:
			rank = 1
		case fn == FuncIndirectObject:
			rank = 3
		}
		if fn == FuncObject && direct == nil {
			direct = c
		}
		r := s.Realise(c)
		cf.Set(FeatRaised, true)
		if r == nil {
			continue
		}
		out = append(out, clitic{word: r, rank: rank})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].rank < out[j].rank })
	return out, direct
}

// isPronounElement reports whether el is a pronoun or a noun phrase
// standing for one.
func isPronounElement(el Element) bool {
	switch e := el.(type) {
	case *InflectedWordElement:
		return e.Category() == CatPronoun
	case *WordElement:
		return e.Category() == CatPronoun
	case *PhraseElement:
		if e.Category() != CatNounPhrase {
			return false
		}
		if e.Features().Bool(FeatPronominal) {
			return true
		}
		h := e.Head()
		return h != nil && h.Category() == CatPronoun && e.Specifier() == nil
	}
	return false
}
