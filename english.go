package realiser

import "golang.org/x/text/language"

type english struct{}

// English returns the English realiser language.
func English() Language { return english{} }

func (english) Tag() language.Tag { return language.English }

func (english) Complementiser() string   { return "that" }
func (english) Conjunction() string      { return "and" }
func (english) AgentPreposition() string { return "by" }
func (english) SubjectClauseForm() Form  { return FormGerund }
func (english) GenderAgreement() bool    { return false }

func (english) IndirectObjectPreposition() string { return "" }

func (english) PostposedModifier(Element) bool { return false }

func (english) TrailingParticle(q Interrogative) string {
	if q == InterrogWhoIndirectObject {
		return "to"
	}
	return ""
}

// englishKeywords are the question words fronted per question type.
var englishKeywords = map[Interrogative]struct {
	base string
	cat  Category
}{
	InterrogWhoSubject:        {"who", CatPronoun},
	InterrogWhatSubject:       {"what", CatPronoun},
	InterrogWhoObject:         {"who", CatPronoun},
	InterrogWhatObject:        {"what", CatPronoun},
	InterrogWhoIndirectObject: {"who", CatPronoun},
	InterrogWhy:               {"why", CatAdverb},
	InterrogWhere:             {"where", CatAdverb},
	InterrogHow:               {"how", CatAdverb},
	InterrogHowPredicate:      {"how", CatAdverb},
}

// Question fronts the question word and either inverts the subject with
// the first auxiliary or supplies "do".
func (english) Question(s *SyntaxProcessor, st *ClauseState) {
	st.Inversion = true
	f := st.Clause.Features()
	q := f.Interrogative()
	copular := isCopular(st.Verb.Head())
	switch q {
	case InterrogYesNo:
		switch {
		case f.Bool(FeatPassive):
		case copular || hasAuxiliary(f) || f.Bool(FeatNegated):
			st.Split = s.realiseSubjects(st)
		default:
			s.addDoAuxiliary(st)
		}
		return
	case InterrogHowMany:
		bareSubjects(st.Clause)
		s.addKeyword(st, "how", CatPronoun)
		s.addKeyword(st, "many", CatAdverb)
		return
	}
	kw := englishKeywords[q]
	s.addKeyword(st, kw.base, kw.cat)
	switch {
	case q == InterrogWhoSubject || q == InterrogWhatSubject:
		st.DropSubjects = true
	case f.Bool(FeatPassive):
	case copular || hasAuxiliary(f) || f.Bool(FeatNegated) && !q.questionsObject():
		st.Split = s.realiseSubjects(st)
	default:
		s.addDoAuxiliary(st)
	}
}

// VerbGroup builds the English auxiliary chain: modal, perfect "have",
// progressive "be", passive "be", then the head verb, with "do" supplied
// for negation when nothing else can carry it.
func (english) VerbGroup(s *SyntaxProcessor, vp *PhraseElement) *VerbGroup {
	f := vp.Features()
	g := &VerbGroup{}
	tense := phraseTense(f)
	form := f.Form()
	modal := f.Str(FeatModal)
	switch form {
	case FormGerund, FormInfinitive, FormBareInfinitive:
		tense = TensePresent
	}
	if form == FormInfinitive {
		modal = "to"
	}
	if modal == "" && (form == "" || form == FormNormal) {
		switch tense {
		case TenseFuture:
			modal = "will"
		case TenseConditional:
			modal = "would"
		}
	}
	modalPast := modal != "" && modal != "to" && tense == TensePast

	s.pushParticle(g, vp)
	front := s.headVerb(vp, tense)
	if front == nil {
		return g
	}
	switch form {
	case FormImperative, FormInfinitive, FormBareInfinitive:
		front.Features().Set(FeatNonMorph, true)
	}
	if f.Bool(FeatPassive) {
		pushAs(g, front, FormPastParticiple)
		front = s.word("be", CatVerb)
	}
	if f.Bool(FeatProgressive) {
		pushAs(g, front, FormPresentParticiple)
		front = s.word("be", CatVerb)
	}
	if f.Bool(FeatPerfect) || modalPast {
		pushAs(g, front, FormPastParticiple)
		front = s.word("have", CatVerb)
		if modal != "" {
			front.Features().Set(FeatNonMorph, true)
		}
	}
	if modal != "" {
		pushNonMorph(g, front)
		front = nil
	}
	front = englishNegation(s, g, vp, front, modal != "")
	if front != nil {
		englishFrontVerb(g, vp, front, tense)
	}
	if modal != "" {
		m := s.word(modal, CatModal)
		if modalPast {
			m.Features().Set(FeatTense, TensePast)
		}
		setFunction(m, FuncAuxiliary)
		g.Push(m, RoleModal)
	}
	return g
}

// englishNegation inserts "not", returning the verb left to carry
// tense and agreement.
func englishNegation(s *SyntaxProcessor, g *VerbGroup, vp *PhraseElement, front *InflectedWordElement, hasModal bool) *InflectedWordElement {
	f := vp.Features()
	if !f.Bool(FeatNegated) {
		return front
	}
	not := s.word("not", CatAdverb)
	if !g.empty() || front != nil && isCopular(front) {
		g.Push(not, RoleNegation)
		return front
	}
	if front != nil && !hasModal {
		front.Features().Set(FeatNegated, true)
		g.Push(front, RoleVerb)
	}
	g.Push(not, RoleNegation)
	if f.Interrogative().questionsObject() {
		return front
	}
	return s.word("do", CatVerb)
}

// englishFrontVerb pushes the verb carrying tense in the form the phrase
// asks for.
func englishFrontVerb(g *VerbGroup, vp *PhraseElement, front *InflectedWordElement, tense Tense) {
	f := vp.Features()
	q := f.Interrogative()
	ff := front.Features()
	switch form := f.Form(); {
	case form == FormGerund || form == FormPresentParticiple:
		pushAs(g, front, FormPresentParticiple)
	case form == FormPastParticiple:
		pushAs(g, front, FormPastParticiple)
	case form == FormImperative:
		pushNonMorph(g, front)
	case (form.Valid() && form != FormNormal || q.Valid()) && !isCopular(vp.Head()) && g.empty():
		if q != InterrogWhoSubject && q != InterrogWhatSubject {
			ff.Set(FeatNonMorph, true)
		}
		g.Push(front, RoleVerb)
	default:
		stampFinite(front, vp, tense)
		if f.Bool(FeatNegated) && q.questionsObject() && ff.Bool(FeatNegated) {
			return
		}
		g.Push(front, RoleVerb)
	}
}
