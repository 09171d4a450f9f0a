package realiser

// MorphologyProcessor is the morphology stage: every word left by the
// syntax stage becomes a string leaf carrying its category, discourse
// function and appositive flag. The language morphophonology then runs
// over the leaves in surface order.
type MorphologyProcessor struct {
	lang Language
}

func NewMorphologyProcessor(lang Language) *MorphologyProcessor {
	return &MorphologyProcessor{lang: lang}
}

// Realise inflects the words of el and returns the realised tree.
func (m *MorphologyProcessor) Realise(el Element) Element {
	out := m.inflectTree(el, "", false)
	if out == nil {
		return nil
	}
	m.lang.Morphophonology(Leaves(out))
	return prune(out)
}

func (m *MorphologyProcessor) inflectTree(el Element, fn Function, appositive bool) Element {
	if el == nil {
		return nil
	}
	f := el.Features()
	if v := f.Function(); v != "" {
		fn = v
	}
	appositive = appositive || f.Bool(FeatAppositive)
	switch e := el.(type) {
	case *StringElement:
		if fn != "" && !e.Features().Has(FeatFunction) {
			e.Features().Set(FeatFunction, fn)
		}
		if appositive {
			e.Features().Set(FeatAppositive, true)
		}
		return e
	case *InflectedWordElement:
		return m.leaf(e, fn, appositive)
	case *WordElement:
		return m.leaf(NewInflectedWord(e), fn, appositive)
	case *DocumentElement:
		out := NewDocument(e.Category())
		out.features = f.clone()
		for _, c := range e.Components {
			if r := m.inflectTree(c, "", appositive); r != nil {
				out.Components = append(out.Components, r)
			}
		}
		return out
	}
	out := NewList()
	out.features = f.clone()
	for _, c := range el.Children() {
		out.Add(m.inflectTree(c, fn, appositive))
	}
	return out
}

func (m *MorphologyProcessor) leaf(w *InflectedWordElement, fn Function, appositive bool) *StringElement {
	s := &StringElement{node: node{category: w.Category(), features: Features{}}, Text: m.Inflect(w)}
	if fn != "" {
		s.features.Set(FeatFunction, fn)
	}
	if appositive {
		s.features.Set(FeatAppositive, true)
	}
	if w.Features().Bool(FeatInterrogativeOut) {
		s.features.Set(FeatInterrogativeOut, true)
	}
	return s
}

// Inflect returns the surface form of one word. Words marked
// non-morphological keep their base form.
func (m *MorphologyProcessor) Inflect(w *InflectedWordElement) string {
	if w.Features().Bool(FeatNonMorph) {
		return w.BaseForm()
	}
	switch w.Category() {
	case CatNoun:
		return m.lang.InflectNoun(w)
	case CatVerb:
		return m.lang.InflectVerb(w)
	case CatAdjective:
		return m.lang.InflectAdjective(w)
	case CatAdverb:
		return m.lang.InflectAdverb(w)
	case CatPronoun:
		return m.lang.InflectPronoun(w)
	case CatDeterminer:
		return m.lang.InflectDeterminer(w)
	case CatModal:
		if w.Features().Tense() == TensePast {
			if s, ok := w.Lookup(FormKey{Tense: TensePast}); ok {
				return s
			}
		}
	}
	return w.BaseForm()
}

// Leaves returns the string leaves of a realised tree in surface order.
func Leaves(el Element) []*StringElement {
	var out []*StringElement
	var walk func(Element)
	walk = func(e Element) {
		switch v := e.(type) {
		case nil:
		case *StringElement:
			out = append(out, v)
		default:
			for _, c := range e.Children() {
				walk(c)
			}
		}
	}
	walk(el)
	return out
}

// prune drops the leaves a contraction emptied.
func prune(el Element) Element {
	switch e := el.(type) {
	case *StringElement:
		if e.Text == "" {
			return nil
		}
	case *ListElement:
		kept := e.Items[:0]
		for _, it := range e.Items {
			if r := prune(it); r != nil {
				kept = append(kept, r)
			}
		}
		e.Items = kept
	case *DocumentElement:
		kept := e.Components[:0]
		for _, it := range e.Components {
			if r := prune(it); r != nil {
				kept = append(kept, r)
			}
		}
		e.Components = kept
	}
	return el
}
