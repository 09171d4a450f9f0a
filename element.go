package realiser

import (
	"fmt"
	"strings"
)

// Element is a node of the tree handed to the realiser: words, phrases,
// coordinations, lists, documents and, once realised, string leaves.
type Element interface {
	Category() Category
	Features() Features
	Children() []Element
	String() string
}

// node carries the state shared by every element variant.
type node struct {
	category Category
	features Features
}

func (n *node) Category() Category { return n.category }

func (n *node) Features() Features {
	if n.features == nil {
		n.features = Features{}
	}
	return n.features
}

func (n *node) Children() []Element { return nil }

// FormKey addresses one irregular surface form of a word.
// Unset fields match nothing in particular: {Tense: TensePast} is the
// preterite, {Number: NumberPlural} the plural of a noun.
type FormKey struct {
	Tense  Tense
	Person Person
	Number Number
	Form   Form
	Gender Gender
	Degree string
}

// Key renders the key in the form used for usage-site overrides:
// setting Features()[k.Key()] on an inflected word beats the lexicon.
func (k FormKey) Key() string {
	var parts []string
	add := func(name, v string) {
		if v != "" {
			parts = append(parts, name+"="+v)
		}
	}
	add("tense", string(k.Tense))
	add("person", string(k.Person))
	add("number", string(k.Number))
	add("form", string(k.Form))
	add("gender", string(k.Gender))
	add("degree", k.Degree)
	return "form[" + strings.Join(parts, ",") + "]"
}

// WordElement is a lexicon entry. Entries obtained from a Lexicon are
// shared; the realiser never writes to them and wraps them in an
// InflectedWordElement before attaching usage-site features.
type WordElement struct {
	node
	// ID is the lexicon identifier, if any.
	ID string
	// Base is the base form ("kiss", "être").
	Base string
	// Classes lists the supported inflection classes.
	Classes []InflectionClass
	// DefaultClass is the class regular rules use.
	DefaultClass InflectionClass
	// Forms maps irregular surface forms by FormKey.
	Forms map[FormKey]string
	// Variant is the default spelling variant.
	Variant string
}

// NewWord creates a lexicon-style entry with no irregular forms.
func NewWord(base string, cat Category) *WordElement {
	return &WordElement{
		node:         node{category: cat, features: Features{}},
		Base:         base,
		DefaultClass: InflRegular,
		Forms:        make(map[FormKey]string),
	}
}

// Irregular returns the irregular form stored for k.
func (w *WordElement) Irregular(k FormKey) (string, bool) {
	if w == nil {
		return "", false
	}
	s, ok := w.Forms[k]
	return s, ok
}

// SetForm records an irregular form.
func (w *WordElement) SetForm(k FormKey, form string) {
	if w.Forms == nil {
		w.Forms = make(map[FormKey]string)
	}
	w.Forms[k] = form
}

// HasClass reports whether c is among the word's inflection classes.
func (w *WordElement) HasClass(c InflectionClass) bool {
	if w == nil {
		return false
	}
	if w.DefaultClass == c {
		return true
	}
	for _, v := range w.Classes {
		if v == c {
			return true
		}
	}
	return false
}

func (w *WordElement) String() string { return fmt.Sprintf("%s(%s)", w.Base, w.category) }

// InflectedWordElement is a word at its usage site: the shared entry
// (possibly nil for words missing from the lexicon) plus local features.
type InflectedWordElement struct {
	node
	// Base is the base form; taken from Word when one is known.
	Base string
	// Word is the lexicon entry, or nil.
	Word *WordElement
}

// NewInflectedWord wraps w, copying its lexical features so that local
// settings never leak back into the lexicon.
func NewInflectedWord(w *WordElement) *InflectedWordElement {
	iw := &InflectedWordElement{
		node: node{category: w.category, features: w.Features().clone()},
		Base: w.Base,
		Word: w,
	}
	return iw
}

// NewInflectedBase makes an inflected word for a bare base form.
func NewInflectedBase(base string, cat Category) *InflectedWordElement {
	return &InflectedWordElement{node: node{category: cat}, Base: base}
}

// BaseForm prefers the lexicon's base form.
func (iw *InflectedWordElement) BaseForm() string {
	if iw.Word != nil && iw.Word.Base != "" {
		return iw.Word.Base
	}
	return iw.Base
}

// Lookup resolves the irregular form for k: the usage-site override
// first, then the lexicon entry.
func (iw *InflectedWordElement) Lookup(k FormKey) (string, bool) {
	if s := iw.Features().Str(k.Key()); s != "" {
		return s, true
	}
	return iw.Word.Irregular(k)
}

// Class is the inflection class regular rules should use.
func (iw *InflectedWordElement) Class() InflectionClass {
	if c := iw.Features().Str("infl"); c != "" {
		return InflectionClass(c)
	}
	if iw.Word != nil && iw.Word.DefaultClass != "" {
		return iw.Word.DefaultClass
	}
	return InflRegular
}

func (iw *InflectedWordElement) String() string {
	return fmt.Sprintf("%s<%s>", iw.BaseForm(), iw.category)
}

// StringElement is a realised leaf. Realising it again returns it as is.
type StringElement struct {
	node
	Text string
}

// NewString makes a canned-text leaf.
func NewString(text string) *StringElement {
	return &StringElement{node: node{category: CatCanned}, Text: text}
}

func (s *StringElement) String() string { return s.Text }

// ListElement is an ordered sequence without phrase structure: the shape
// of every realised constituent.
type ListElement struct {
	node
	Items []Element
}

// NewList makes a list holding items, skipping nils.
func NewList(items ...Element) *ListElement {
	l := &ListElement{node: node{category: CatList}}
	for _, it := range items {
		l.Add(it)
	}
	return l
}

func (l *ListElement) Add(el Element) {
	if el != nil {
		l.Items = append(l.Items, el)
	}
}

func (l *ListElement) Children() []Element { return l.Items }

func (l *ListElement) String() string { return joinElements(l.Items) }

// PhraseElement is a noun, verb, adjective, adverb or prepositional
// phrase, or a clause. Its slots live in the feature bag.
type PhraseElement struct {
	node
}

// NewPhrase makes an empty phrase of category cat.
func NewPhrase(cat Category) *PhraseElement {
	return &PhraseElement{node: node{category: cat, features: Features{}}}
}

func (p *PhraseElement) Head() Element             { return p.Features().Element(FeatHead) }
func (p *PhraseElement) Specifier() Element        { return p.Features().Element(FeatSpecifier) }
func (p *PhraseElement) Complements() []Element    { return p.Features().Elements(FeatComplements) }
func (p *PhraseElement) PreModifiers() []Element   { return p.Features().Elements(FeatPreModifiers) }
func (p *PhraseElement) PostModifiers() []Element  { return p.Features().Elements(FeatPostModifiers) }
func (p *PhraseElement) FrontModifiers() []Element { return p.Features().Elements(FeatFrontModifiers) }
func (p *PhraseElement) Subjects() []Element       { return p.Features().Elements(FeatSubjects) }

// VerbPhrase returns the clause's verb phrase, defaulting to its head.
func (p *PhraseElement) VerbPhrase() Element {
	if vp := p.Features().Element(FeatVerbPhrase); vp != nil {
		return vp
	}
	return p.Head()
}

func (p *PhraseElement) SetHead(el Element)      { p.Features().Set(FeatHead, usage(el)) }
func (p *PhraseElement) SetSpecifier(el Element) { p.Features().Set(FeatSpecifier, usage(el)) }

// SetSubject replaces the clause's subjects with el.
func (p *PhraseElement) SetSubject(el Element) {
	p.Features().Delete(FeatSubjects)
	p.AddSubject(el)
}

func (p *PhraseElement) AddSubject(el Element) {
	if el == nil {
		return
	}
	el = usage(el)
	setFunction(el, FuncSubject)
	markSubordinate(el)
	p.Features().Append(FeatSubjects, el)
}

// AddComplement adds a complement. On a clause it goes onto the verb
// phrase when there is one.
func (p *PhraseElement) AddComplement(el Element) {
	if el == nil {
		return
	}
	el = usage(el)
	if target := p.complementHost(); target != p {
		target.AddComplement(el)
		return
	}
	if !el.Features().Has(FeatFunction) {
		setFunction(el, FuncComplement)
	}
	markSubordinate(el)
	p.Features().Append(FeatComplements, el)
}

// SetObject replaces the direct object.
func (p *PhraseElement) SetObject(el Element) {
	p.complementHost().replaceComplement(FuncObject, el)
}

// SetIndirectObject replaces the indirect object.
func (p *PhraseElement) SetIndirectObject(el Element) {
	p.complementHost().replaceComplement(FuncIndirectObject, el)
}

func (p *PhraseElement) replaceComplement(fn Function, el Element) {
	var kept []Element
	for _, c := range p.Complements() {
		if c.Features().Function() != fn {
			kept = append(kept, c)
		}
	}
	p.Features().Set(FeatComplements, kept)
	if el != nil {
		el = usage(el)
		setFunction(el, fn)
		p.AddComplement(el)
	}
}

func (p *PhraseElement) complementHost() *PhraseElement {
	if p.category == CatClause {
		if vp, ok := p.Features().Element(FeatVerbPhrase).(*PhraseElement); ok {
			return vp
		}
	}
	return p
}

func (p *PhraseElement) AddPreModifier(el Element) {
	if el != nil {
		p.Features().Append(FeatPreModifiers, usage(el))
	}
}

func (p *PhraseElement) AddPostModifier(el Element) {
	if el != nil {
		el = usage(el)
		markSubordinate(el)
		p.Features().Append(FeatPostModifiers, el)
	}
}

func (p *PhraseElement) AddFrontModifier(el Element) {
	if el != nil {
		p.Features().Append(FeatFrontModifiers, usage(el))
	}
}

// Children lists the slot contents in surface-ish order.
func (p *PhraseElement) Children() []Element {
	f := p.Features()
	var out []Element
	out = append(out, f.Elements(FeatFrontModifiers)...)
	out = append(out, f.Elements(FeatSubjects)...)
	if s := f.Element(FeatSpecifier); s != nil {
		out = append(out, s)
	}
	out = append(out, f.Elements(FeatPreModifiers)...)
	if vp := f.Element(FeatVerbPhrase); vp != nil {
		out = append(out, vp)
	} else if h := f.Element(FeatHead); h != nil {
		out = append(out, h)
	}
	out = append(out, f.Elements(FeatComplements)...)
	out = append(out, f.Elements(FeatPostModifiers)...)
	return out
}

func (p *PhraseElement) String() string {
	return fmt.Sprintf("%s[%s]", p.category, joinElements(p.Children()))
}

// CoordinatedPhraseElement joins coordinates with a conjunction.
type CoordinatedPhraseElement struct {
	node
	Coordinates []Element
}

// NewCoordination makes a coordination of items joined by conj.
func NewCoordination(conj string, items ...Element) *CoordinatedPhraseElement {
	c := &CoordinatedPhraseElement{node: node{category: CatCoordination}}
	if conj != "" {
		c.Features().Set(FeatConjunction, conj)
	}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

func (c *CoordinatedPhraseElement) Add(el Element) {
	if el != nil {
		c.Coordinates = append(c.Coordinates, usage(el))
	}
}

func (c *CoordinatedPhraseElement) Conjunction() string { return c.Features().Str(FeatConjunction) }

// Plural applies conjunction semantics: "and"-type coordinations of two
// or more items are plural, others take the number of the last item.
func (c *CoordinatedPhraseElement) Plural() bool {
	if len(c.Coordinates) == 0 {
		return false
	}
	switch strings.ToLower(c.Conjunction()) {
	case "", "and", "et":
		return len(c.Coordinates) > 1 || c.Coordinates[0].Features().Plural()
	}
	return c.Coordinates[len(c.Coordinates)-1].Features().Plural()
}

func (c *CoordinatedPhraseElement) Children() []Element { return c.Coordinates }

func (c *CoordinatedPhraseElement) String() string {
	return fmt.Sprintf("coord(%s)[%s]", c.Conjunction(), joinElements(c.Coordinates))
}

// DocumentElement is a sentence, paragraph or document wrapper. Assembly
// beyond sentences belongs to the formatter.
type DocumentElement struct {
	node
	Components []Element
}

// NewDocument makes a wrapper of the given kind.
func NewDocument(kind Category, items ...Element) *DocumentElement {
	d := &DocumentElement{node: node{category: kind}}
	for _, it := range items {
		if it != nil {
			d.Components = append(d.Components, it)
		}
	}
	return d
}

func (d *DocumentElement) Children() []Element { return d.Components }

func (d *DocumentElement) String() string {
	return fmt.Sprintf("%s[%s]", d.category, joinElements(d.Components))
}

// usage wraps a shared lexicon entry so it can carry local features.
func usage(el Element) Element {
	if w, ok := el.(*WordElement); ok {
		return NewInflectedWord(w)
	}
	return el
}

func setFunction(el Element, fn Function) {
	if el != nil {
		el.Features().Set(FeatFunction, fn)
	}
}

func markSubordinate(el Element) {
	if el != nil && el.Category() == CatClause {
		el.Features().Set(FeatClauseStatus, StatusSubordinate)
	}
}

func joinElements(els []Element) string {
	parts := make([]string, 0, len(els))
	for _, el := range els {
		if el != nil {
			parts = append(parts, el.String())
		}
	}
	return strings.Join(parts, " ")
}
