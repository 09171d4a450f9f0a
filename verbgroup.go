package realiser

// VerbRole tags a token of a verb group.
type VerbRole int

const (
	// RoleVerb is a verb form: the head, a participle or an auxiliary.
	RoleVerb VerbRole = iota
	// RoleModal is a modal word ("can", "will", "to").
	RoleModal
	RoleNegation
	RoleParticle
	// RoleClitic is a clitic pronoun attached to the finite verb.
	RoleClitic
	// RoleFiller is non-verbal material inside the group ("en train de").
	RoleFiller
)

// VerbToken is one token of a verb group.
type VerbToken struct {
	Word Element
	Role VerbRole
}

// VerbGroup is the token list a verb phrase is built into. Tokens are
// kept in build order: the innermost verb form first, the finite verb
// and the modal last.
type VerbGroup struct {
	Tokens []VerbToken
}

// Push appends a token; a nil word is ignored.
func (g *VerbGroup) Push(w Element, role VerbRole) {
	if w != nil {
		g.Tokens = append(g.Tokens, VerbToken{Word: w, Role: role})
	}
}

// empty reports whether nothing but particles has been pushed.
func (g *VerbGroup) empty() bool {
	for _, t := range g.Tokens {
		if t.Role != RoleParticle {
			return false
		}
	}
	return true
}

// Split partitions the group: the main part is the build-order prefix up
// to and including the first token that is neither a negation nor a
// particle, the rest are auxiliaries. Both parts come back in surface
// order.
func (g *VerbGroup) Split() (main, aux []Element) {
	cut := len(g.Tokens)
	for i, t := range g.Tokens {
		if t.Role != RoleNegation && t.Role != RoleParticle {
			cut = i + 1
			break
		}
	}
	for i := cut - 1; i >= 0; i-- {
		main = append(main, g.Tokens[i].Word)
	}
	for i := len(g.Tokens) - 1; i >= cut; i-- {
		aux = append(aux, g.Tokens[i].Word)
	}
	return main, aux
}

// isCopular reports whether el is, or is headed by, the copula.
func isCopular(el Element) bool {
	switch e := el.(type) {
	case nil:
		return false
	case *PhraseElement:
		return isCopular(e.Head())
	case *InflectedWordElement:
		return e.Features().Bool(LexCopular) || copularBase(e.BaseForm())
	case *WordElement:
		return e.Features().Bool(LexCopular) || copularBase(e.Base)
	}
	return false
}

func copularBase(base string) bool {
	switch NormalizeKey(base) {
	case "be", "être":
		return true
	}
	return false
}

// verbWord copies el into a fresh inflected word the verb group can
// stamp features on.
func verbWord(el Element) *InflectedWordElement {
	switch e := el.(type) {
	case *InflectedWordElement:
		return &InflectedWordElement{
			node: node{category: e.category, features: e.Features().clone()},
			Base: e.Base,
			Word: e.Word,
		}
	case *WordElement:
		return NewInflectedWord(e)
	case *StringElement:
		return NewInflectedBase(e.Text, CatVerb)
	}
	return nil
}

// headVerb wraps the verb phrase head and stamps the agreement features
// of the phrase on it.
func (s *SyntaxProcessor) headVerb(vp *PhraseElement, tense Tense) *InflectedWordElement {
	w := verbWord(vp.Head())
	if w == nil {
		return nil
	}
	f := w.Features()
	f.Set(FeatTense, tense)
	f.copyFrom(vp.Features(), FeatPerson, FeatNumber)
	f.inheritFrom(vp.Features(), FeatGender)
	if vp.Features().Bool(FeatNonMorph) {
		f.Set(FeatNonMorph, true)
	}
	return w
}

// stampFinite gives an auxiliary the agreement of the phrase.
func stampFinite(w *InflectedWordElement, vp *PhraseElement, tense Tense) {
	f := w.Features()
	f.Set(FeatTense, tense)
	f.copyFrom(vp.Features(), FeatPerson, FeatNumber)
}

// pushAs pushes w in a participle form.
func pushAs(g *VerbGroup, w *InflectedWordElement, form Form) {
	w.Features().Set(FeatForm, form)
	w.Features().Delete(FeatNonMorph)
	g.Push(w, RoleVerb)
}

// pushNonMorph pushes w in its base form.
func pushNonMorph(g *VerbGroup, w *InflectedWordElement) {
	w.Features().Set(FeatNonMorph, true)
	g.Push(w, RoleVerb)
}

// pushParticle pushes the particle of a phrasal verb.
func (s *SyntaxProcessor) pushParticle(g *VerbGroup, vp *PhraseElement) {
	switch p := vp.Features()[FeatParticle].(type) {
	case string:
		if p != "" {
			g.Push(s.word(p, CatAdverb), RoleParticle)
		}
	case Element:
		g.Push(s.Realise(p), RoleParticle)
	}
}

// phraseTense is the tense of a verb phrase; an absent tense is present.
func phraseTense(f Features) Tense {
	if t := f.Tense(); t.Valid() {
		return t
	}
	return TensePresent
}

// realiseVerbPhrase realises the verb group of vp followed by its
// complements and post-modifiers.
func (s *SyntaxProcessor) realiseVerbPhrase(vp *PhraseElement) *ListElement {
	out := NewList()
	if vp.Head() == nil {
		return out
	}
	main, aux := s.lang.VerbGroup(s, vp).Split()
	f := vp.Features()
	realiseAux := !f.Has(FeatRealiseAux) || f.Bool(FeatRealiseAux)
	switch {
	case realiseAux:
		s.addTokens(out, aux, FuncAuxiliary)
		s.realiseList(out, vp.PreModifiers(), FuncPreModifier)
		s.addTokens(out, main, FuncVerbPhrase)
	case isCopular(vp.Head()):
		s.addTokens(out, main, FuncVerbPhrase)
		s.realiseList(out, vp.PreModifiers(), FuncPreModifier)
	default:
		s.realiseList(out, vp.PreModifiers(), FuncPreModifier)
		s.addTokens(out, main, FuncVerbPhrase)
	}
	s.realiseComplements(vp, out)
	s.realiseList(out, vp.PostModifiers(), FuncPostModifier)
	return out
}

func (s *SyntaxProcessor) addTokens(out *ListElement, words []Element, fn Function) {
	for _, w := range words {
		if r := s.Realise(w); r != nil {
			if !r.Features().Has(FeatFunction) {
				setFunction(r, fn)
			}
			out.Add(r)
		}
	}
}

// realiseComplements adds indirect objects, direct objects, then the
// other complements; a language with an indirect-object preposition puts
// the indirect objects after the direct ones. Questioned and passivised
// objects are left out, as are clitics already raised into the verb
// group.
func (s *SyntaxProcessor) realiseComplements(vp *PhraseElement, out *ListElement) {
	f := vp.Features()
	q := f.Interrogative()
	copular := isCopular(vp.Head())
	prep := s.lang.IndirectObjectPreposition()
	keep := map[Function]bool{
		FuncIndirectObject: q != InterrogWhoIndirectObject,
		FuncObject:         !f.Bool(FeatPassive) && !q.questionsObject() && q != InterrogHowPredicate,
	}
	var indirects, directs, others []Element
	for _, c := range vp.Complements() {
		cf := c.Features()
		if cf.Bool(FeatRaised) {
			continue
		}
		fn := cf.Function()
		if k, ok := keep[fn]; ok && !k || !ok && q == InterrogHowPredicate {
			continue
		}
		if copular {
			cf.Set(featCopularComplement, true)
			if s.lang.GenderAgreement() {
				agreePredicate(c, f)
			}
		}
		if fn == FuncIndirectObject && prep != "" {
			pp := NewPhrase(CatPrepPhrase)
			pp.SetHead(s.word(prep, CatPreposition))
			pp.Features().Append(FeatComplements, c)
			c = pp
		}
		r := s.Realise(c)
		if r == nil {
			continue
		}
		setFunction(r, FuncComplement)
		switch fn {
		case FuncIndirectObject:
			indirects = append(indirects, r)
		case FuncObject:
			directs = append(directs, r)
		default:
			others = append(others, r)
		}
	}
	groups := [][]Element{indirects, directs, others}
	if prep != "" {
		groups = [][]Element{directs, indirects, others}
	}
	for _, group := range groups {
		for _, r := range group {
			out.Add(r)
		}
	}
}

// agreePredicate makes a predicative adjective agree with the subject
// agreement stamped on the verb phrase.
func agreePredicate(c Element, vpf Features) {
	switch c.Category() {
	case CatAdjective, CatAdjPhrase:
		c.Features().inheritFrom(vpf, FeatGender, FeatNumber)
	}
}
