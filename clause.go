package realiser

// ClauseState is the working state of one clause realisation. The
// language Question hooks read and extend it.
type ClauseState struct {
	Clause *PhraseElement
	Verb   *PhraseElement
	// Out collects the realised constituents in surface order.
	Out *ListElement
	// Split is inserted inside the realised verb group (subject
	// inversion).
	Split Element
	// Inversion is set by languages that invert subject and auxiliary in
	// questions; a passive question then inverts the promoted object.
	Inversion bool
	// DropSubjects leaves the subjects out of the front position and the
	// agent phrase.
	DropSubjects bool
}

// reconciledFlags are OR'd between a clause and its verb phrase.
var reconciledFlags = []string{FeatPassive, FeatNegated, FeatPerfect, FeatProgressive, FeatReflexive}

// reconciledValues go from the clause to the verb phrase, or back up
// when only the verb phrase has them.
var reconciledValues = []string{FeatTense, FeatModal, FeatForm, FeatInterrogative}

// realiseClause realises a clause: complementiser, question material,
// subjects, the verb group with its complements, the passive agent and
// trailing question particles.
func (s *SyntaxProcessor) realiseClause(c *PhraseElement) Element {
	if coord, ok := c.VerbPhrase().(*CoordinatedPhraseElement); ok {
		return s.realiseCoordinatedPredicate(c, coord)
	}
	out := NewList()
	out.Features().inheritFrom(c.Features(), FeatFunction, FeatAppositive)
	vp := s.clauseVerb(c)
	if vp == nil || vp.Head() == nil {
		return out
	}
	st := &ClauseState{Clause: c, Verb: vp, Out: out}
	f := c.Features()

	s.subjectAgreement(c, vp)
	s.checkDiscourseFunction(c, vp)
	if f.Form() == FormInfinitive {
		s.copyFrontModifiers(c, vp)
	}
	s.addComplementiser(st)
	if cue := f.Element(FeatCuePhrase); cue != nil {
		s.realiseList(out, []Element{cue}, FuncCuePhrase)
	} else if text := f.Str(FeatCuePhrase); text != "" {
		s.realiseList(out, []Element{NewString(text)}, FuncCuePhrase)
	}

	q := f.Interrogative()
	if q.Valid() {
		if f.Str(FeatClauseStatus) != string(StatusSubordinate) {
			out.Features().Set(FeatInterrogativeOut, true)
		}
		s.lang.Question(s, st)
	} else {
		s.realiseList(out, c.FrontModifiers(), FuncFrontModifier)
	}

	s.addSubjectsToFront(st)
	s.addPassiveComplements(st)
	s.realiseVerb(st)
	s.addPassiveSubjects(st)
	if q.Valid() {
		s.realiseList(out, c.FrontModifiers(), FuncFrontModifier)
		if p := s.lang.TrailingParticle(q); p != "" {
			s.realiseList(out, []Element{s.word(p, CatPreposition)}, FuncComplement)
		}
	}
	return out
}

// clauseVerb returns the verb phrase of c, wrapping a bare verb in one
// and moving the verb-related material of the clause onto it.
func (s *SyntaxProcessor) clauseVerb(c *PhraseElement) *PhraseElement {
	f := c.Features()
	var vp *PhraseElement
	switch v := c.VerbPhrase().(type) {
	case nil:
		return nil
	case *PhraseElement:
		if v.Category() == CatVerbPhrase {
			vp = v
			break
		}
		vp = NewPhrase(CatVerbPhrase)
		vp.SetHead(v)
	default:
		vp = NewPhrase(CatVerbPhrase)
		vp.SetHead(v)
	}
	f.Set(FeatVerbPhrase, vp)
	f.Delete(FeatHead)

	vf := vp.Features()
	for _, el := range c.Complements() {
		vf.Append(FeatComplements, el)
	}
	f.Delete(FeatComplements)
	if pre := c.PreModifiers(); len(pre) > 0 {
		vf.Set(FeatPreModifiers, append(append([]Element(nil), pre...), vp.PreModifiers()...))
		f.Delete(FeatPreModifiers)
	}
	for _, el := range c.PostModifiers() {
		if !containsElement(vp.PostModifiers(), el) {
			vf.Append(FeatPostModifiers, el)
		}
	}
	f.Delete(FeatPostModifiers)

	for _, k := range reconciledFlags {
		if f.Bool(k) || vf.Bool(k) {
			f.Set(k, true)
			vf.Set(k, true)
		}
	}
	for _, k := range reconciledValues {
		if f.Has(k) {
			vf[k] = f[k]
		} else if vf.Has(k) {
			f[k] = vf[k]
		}
	}
	vf.inheritFrom(f, FeatRealiseAux)
	return vp
}

func containsElement(list []Element, el Element) bool {
	for _, it := range list {
		if it == el {
			return true
		}
	}
	return false
}

// subjectAgreement stamps the number and person the subjects impose on
// the clause and its verb phrase, and their gender where the language
// agrees in gender.
func (s *SyntaxProcessor) subjectAgreement(c, vp *PhraseElement) {
	f, vf := c.Features(), vp.Features()
	subjects := c.Subjects()
	var (
		n Number
		p Person
		g Gender
	)
	switch len(subjects) {
	case 0:
		n, p, g = f.Number(), f.Person(), f.Gender()
		if p == "" && f.Form() == FormImperative {
			p = PersonSecond
		}
	case 1:
		n, p, g = s.numberOf(subjects[0]), s.personOf(subjects[0]), s.genderOf(subjects[0])
	default:
		n, p, g = NumberPlural, s.combinedPerson(subjects), s.combinedGender(subjects)
	}
	for _, bag := range []Features{f, vf} {
		if n != "" {
			bag.Set(FeatNumber, n)
		}
		if p != "" {
			bag.Set(FeatPerson, p)
		}
		if g != "" && s.lang.GenderAgreement() {
			bag.Set(FeatGender, g)
		}
	}
}

// numberOf is the grammatical number of a subject.
func (s *SyntaxProcessor) numberOf(el Element) Number {
	switch e := el.(type) {
	case *CoordinatedPhraseElement:
		if e.Plural() {
			return NumberPlural
		}
		return NumberSingular
	case *PhraseElement:
		if e.Category() == CatClause {
			return NumberSingular
		}
		if e.Features().Plural() {
			return NumberPlural
		}
		if e.Features().Has(FeatNumber) {
			return e.Features().Number()
		}
		if h := e.Head(); h != nil {
			return s.numberOf(h)
		}
	case *InflectedWordElement:
		if e.Features().Has(FeatNumber) {
			return e.Features().Number()
		}
		if e.Category() == CatPronoun {
			if n, _, _, ok := s.lang.Pronouns().Find(e.BaseForm()); ok {
				return n
			}
		}
	case *ListElement:
		if len(e.Items) > 1 {
			return NumberPlural
		}
	}
	if el != nil && el.Features().Plural() {
		return NumberPlural
	}
	return NumberSingular
}

// personOf is the grammatical person of a subject.
func (s *SyntaxProcessor) personOf(el Element) Person {
	if el == nil {
		return PersonThird
	}
	if p := el.Features().Person(); p.Valid() {
		return p
	}
	switch e := el.(type) {
	case *CoordinatedPhraseElement:
		return s.combinedPerson(e.Coordinates)
	case *PhraseElement:
		if e.Category() == CatNounPhrase && e.Head() != nil {
			return s.personOf(e.Head())
		}
	case *InflectedWordElement:
		if e.Category() == CatPronoun {
			if _, _, col, ok := s.lang.Pronouns().Find(e.BaseForm()); ok {
				switch col {
				case colFirst:
					return PersonFirst
				case colSecond:
					return PersonSecond
				}
			}
		}
	}
	return PersonThird
}

// combinedPerson: first person beats second, second beats third.
func (s *SyntaxProcessor) combinedPerson(els []Element) Person {
	best := PersonThird
	for _, el := range els {
		switch s.personOf(el) {
		case PersonFirst:
			return PersonFirst
		case PersonSecond:
			best = PersonSecond
		}
	}
	return best
}

// genderOf is the grammatical gender of a subject, if known.
func (s *SyntaxProcessor) genderOf(el Element) Gender {
	if el == nil {
		return ""
	}
	if g := el.Features().Gender(); g != "" {
		return g
	}
	switch e := el.(type) {
	case *CoordinatedPhraseElement:
		return s.combinedGender(e.Coordinates)
	case *PhraseElement:
		if e.Head() != nil {
			return s.genderOf(e.Head())
		}
	case *InflectedWordElement:
		if e.Category() == CatPronoun {
			if _, _, col, ok := s.lang.Pronouns().Find(e.BaseForm()); ok && col == colFeminine {
				return GenderFeminine
			}
		}
	}
	return ""
}

// combinedGender is feminine only when every coordinate is feminine.
func (s *SyntaxProcessor) combinedGender(els []Element) Gender {
	if len(els) == 0 {
		return ""
	}
	for _, el := range els {
		if s.genderOf(el) != GenderFeminine {
			return GenderMasculine
		}
	}
	return GenderFeminine
}

// checkDiscourseFunction adapts the form of an embedded clause to the
// slot it fills.
func (s *SyntaxProcessor) checkDiscourseFunction(c, vp *PhraseElement) {
	f := c.Features()
	setForm := func(form Form) {
		f.Set(FeatForm, form)
		vp.Features().Set(FeatForm, form)
	}
	switch f.Function() {
	case FuncObject:
		switch {
		case f.Form() == FormImperative:
			setForm(FormInfinitive)
			f.Set(FeatSuppressComplementiser, true)
		case f.Form() == FormGerund && len(c.Subjects()) == 0:
			f.Set(FeatSuppressComplementiser, true)
		}
	case FuncSubject:
		setForm(s.lang.SubjectClauseForm())
		f.Set(FeatSuppressComplementiser, true)
	}
}

// copyFrontModifiers moves the front modifiers of an infinitive clause
// behind its verb phrase.
func (s *SyntaxProcessor) copyFrontModifiers(c, vp *PhraseElement) {
	f := c.Features()
	for _, m := range c.FrontModifiers() {
		if !containsElement(vp.PostModifiers(), m) {
			vp.Features().Append(FeatPostModifiers, m)
		}
	}
	f.Delete(FeatFrontModifiers)
	f.Set(FeatSuppressComplementiser, true)
	vp.Features().Set(FeatNonMorph, true)
}

func (s *SyntaxProcessor) addComplementiser(st *ClauseState) {
	f := st.Clause.Features()
	if f.Str(FeatClauseStatus) != string(StatusSubordinate) || f.Bool(FeatSuppressComplementiser) {
		return
	}
	if el := f.Element(FeatComplementiser); el != nil {
		s.realiseList(st.Out, []Element{el}, FuncComplement)
		return
	}
	word := s.lang.Complementiser()
	if f.Has(FeatComplementiser) {
		word = f.Str(FeatComplementiser)
	}
	if word != "" {
		s.realiseList(st.Out, []Element{s.word(word, CatComplementiser)}, FuncComplement)
	}
}

// subjectsHidden reports whether the clause form leaves its subjects
// unspoken.
func subjectsHidden(f Features) bool {
	switch f.Form() {
	case FormInfinitive, FormImperative, FormBareInfinitive:
		return true
	}
	return false
}

// realiseSubjects realises the subjects of the clause into a list. Several
// subjects are joined like a coordination: "John, Mary and Bill".
func (s *SyntaxProcessor) realiseSubjects(st *ClauseState) *ListElement {
	f := st.Clause.Features()
	out := NewList()
	subjects := st.Clause.Subjects()
	for i, subj := range subjects {
		switch {
		case i == 0:
		case i < len(subjects)-1:
			out.Add(NewString(","))
		default:
			conj := s.word(s.lang.Conjunction(), CatConjunction)
			setFunction(conj, FuncConjunction)
			out.Add(conj)
		}
		sf := subj.Features()
		sf.Set(FeatFunction, FuncSubject)
		if f.Form() == FormGerund && !f.Bool(FeatSuppressGenitive) {
			sf.Set(FeatPossessive, true)
			if subj.Category() == CatPronoun || sf.Bool(FeatPronominal) {
				sf.Set(FeatFunction, FuncSpecifier)
			}
		}
		if r := s.Realise(subj); r != nil {
			r.Features().inheritFrom(sf, FeatFunction)
			out.Add(r)
		}
	}
	return out
}

func (s *SyntaxProcessor) addSubjectsToFront(st *ClauseState) {
	f := st.Clause.Features()
	if st.DropSubjects || subjectsHidden(f) || f.Bool(FeatPassive) || st.Split != nil {
		return
	}
	for _, r := range s.realiseSubjects(st).Items {
		st.Out.Add(r)
	}
}

// addPassiveComplements promotes the direct objects of a passive clause
// to the front and makes the verb agree with them.
func (s *SyntaxProcessor) addPassiveComplements(st *ClauseState) {
	c, vp := st.Clause, st.Verb
	f := c.Features()
	q := f.Interrogative()
	if !f.Bool(FeatPassive) || q == InterrogWhatObject {
		return
	}
	var objects []Element
	for _, comp := range vp.Complements() {
		if comp.Features().Function() == FuncObject {
			objects = append(objects, comp)
		}
	}
	if len(objects) == 0 {
		return
	}
	promoted := NewList()
	for _, o := range objects {
		o.Features().Set(FeatPassive, true)
		if r := s.Realise(o); r != nil {
			setFunction(r, FuncObject)
			promoted.Add(r)
		}
	}
	if q.Valid() && st.Inversion {
		st.Split = promoted
	} else {
		for _, r := range promoted.Items {
			st.Out.Add(r)
		}
	}

	vf := vp.Features()
	n := s.numberOf(objects[0])
	if len(objects) > 1 {
		n = NumberPlural
	}
	vf.Set(FeatNumber, n)
	vf.Set(FeatPerson, s.combinedPerson(objects))
	if s.lang.GenderAgreement() {
		g := s.genderOf(objects[0])
		if len(objects) > 1 {
			g = s.combinedGender(objects)
		}
		if g != "" {
			vf.Set(FeatGender, g)
		} else {
			vf.Delete(FeatGender)
		}
	}
}

// realiseVerb realises the verb phrase, interleaving the split element.
func (s *SyntaxProcessor) realiseVerb(st *ClauseState) {
	c, vp := st.Clause, st.Verb
	f, vf := c.Features(), vp.Features()
	vf.inheritFrom(f, FeatInterrogative, FeatForm, FeatModal, FeatTense)
	if s.lang.GenderAgreement() && !f.Bool(FeatPassive) {
		vf.inheritFrom(f, FeatGender)
	}
	s.determineNumber(c, vp)

	r := s.realiseVerbPhrase(vp)
	setFunction(r, FuncVerbPhrase)
	if st.Split == nil {
		st.Out.Add(r)
		return
	}
	if len(r.Items) == 0 {
		st.Out.Add(st.Split)
		return
	}
	st.Out.Add(r.Items[0])
	st.Out.Add(st.Split)
	for _, it := range r.Items[1:] {
		st.Out.Add(it)
	}
}

// determineNumber makes a copula with an expletive or questioned subject
// agree with its complement: "there are apples", "who are they".
func (s *SyntaxProcessor) determineNumber(c, vp *PhraseElement) {
	if !isCopular(vp.Head()) {
		return
	}
	q := c.Features().Interrogative()
	expletive := false
	for _, subj := range c.Subjects() {
		if isExpletive(subj) {
			expletive = true
		}
	}
	if !expletive && q != InterrogWhoSubject && q != InterrogWhatSubject {
		return
	}
	n := NumberSingular
	for _, comp := range vp.Complements() {
		if s.numberOf(comp) == NumberPlural {
			n = NumberPlural
		}
	}
	vp.Features().Set(FeatNumber, n)
	vp.Features().Set(featExpletiveSubject, expletive)
}

func isExpletive(el Element) bool {
	switch e := el.(type) {
	case nil:
		return false
	case *PhraseElement:
		return e.Features().Bool(LexExpletive) || isExpletive(e.Head())
	}
	return el.Features().Bool(LexExpletive)
}

// addPassiveSubjects emits the agent phrase of a passive clause.
func (s *SyntaxProcessor) addPassiveSubjects(st *ClauseState) {
	c, vp := st.Clause, st.Verb
	f := c.Features()
	if !f.Bool(FeatPassive) {
		return
	}
	var subjects []Element
	if !st.DropSubjects {
		subjects = c.Subjects()
	}
	q := f.Interrogative()
	dangling := st.Inversion && (q == InterrogWhoSubject || q == InterrogWhatSubject)
	if len(subjects) == 0 && !dangling {
		return
	}
	prep := s.lang.AgentPreposition()
	if h := vp.Head(); h != nil {
		if a := h.Features().Str(LexAgent); a != "" {
			prep = a
		}
	}
	s.realiseList(st.Out, []Element{s.word(prep, CatPreposition)}, FuncComplement)
	for _, subj := range subjects {
		sf := subj.Features()
		sf.Set(FeatPassive, true)
		sf.Set(FeatFunction, FuncSubject)
		sf.Set(featStressed, true)
		if r := s.Realise(subj); r != nil {
			setFunction(r, FuncSubject)
			st.Out.Add(r)
		}
	}
}

// bareSubjects drops the determiners of the subjects a "how many"
// question counts: "combien de chats", not "combien du chat".
func bareSubjects(c *PhraseElement) {
	for _, subj := range c.Subjects() {
		if np, ok := subj.(*PhraseElement); ok && np.Category() == CatNounPhrase {
			np.Features().Delete(FeatSpecifier)
		}
	}
}

// addKeyword emits a question word.
func (s *SyntaxProcessor) addKeyword(st *ClauseState, base string, cat Category) {
	w := s.word(base, cat)
	setFunction(w, FuncFrontModifier)
	st.Out.Add(w)
}

// addDoAuxiliary emits "do" agreeing with the clause.
func (s *SyntaxProcessor) addDoAuxiliary(st *ClauseState) {
	do := s.word("do", CatVerb)
	df := do.Features()
	df.Set(FeatTense, phraseTense(st.Clause.Features()))
	df.copyFrom(st.Verb.Features(), FeatPerson, FeatNumber)
	setFunction(do, FuncAuxiliary)
	st.Out.Add(do)
}

// hasAuxiliary reports whether the verb group will open with an
// auxiliary the subject can invert with.
func hasAuxiliary(f Features) bool {
	switch f.Tense() {
	case TenseFuture, TenseConditional:
		return true
	}
	return f.Bool(FeatPerfect) || f.Bool(FeatProgressive) || f.Bool(FeatPassive) ||
		f.Str(FeatModal) != ""
}

// realiseCoordinatedPredicate realises a clause whose verb is a
// coordination of verb phrases ("John eats and drinks"). Questions and
// the passive are not transformed in this shape.
func (s *SyntaxProcessor) realiseCoordinatedPredicate(c *PhraseElement, coord *CoordinatedPhraseElement) Element {
	out := NewList()
	f := c.Features()
	out.Features().inheritFrom(f, FeatFunction, FeatAppositive)
	st := &ClauseState{Clause: c, Verb: NewPhrase(CatVerbPhrase), Out: out}
	s.subjectAgreement(c, st.Verb)
	cf := coord.Features()
	cf.inheritFrom(st.Verb.Features(), FeatNumber, FeatPerson, FeatGender)
	cf.inheritFrom(f, FeatTense, FeatNegated, FeatPerfect, FeatProgressive, FeatModal, FeatForm)
	f.Delete(FeatPassive)

	s.addComplementiser(st)
	s.realiseList(out, c.FrontModifiers(), FuncFrontModifier)
	s.addSubjectsToFront(st)
	s.realiseList(out, c.PreModifiers(), FuncPreModifier)
	if r := s.Realise(coord); r != nil {
		setFunction(r, FuncVerbPhrase)
		out.Add(r)
	}
	s.realiseList(out, c.Complements(), FuncComplement)
	s.realiseList(out, c.PostModifiers(), FuncPostModifier)
	return out
}
