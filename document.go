package realiser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadDocument is wrapped by every tree document decoding error.
var ErrBadDocument = errors.New("bad document")

// Tree documents describe an element tree in YAML (or JSON, which YAML
// accepts):
//
//	type: clause
//	subject: {spec: the, head: dog}
//	verb: chase
//	object: {spec: a, head: cat}
//	features: {tense: past, passive: true}
//
// A mapping without a type takes the category its slot expects; a
// scalar in a phrase slot is shorthand for a phrase headed by that word.

// docTypes maps the short type names of documents onto categories.
var docTypes = map[string]Category{
	"np":     CatNounPhrase,
	"vp":     CatVerbPhrase,
	"pp":     CatPrepPhrase,
	"adjp":   CatAdjPhrase,
	"advp":   CatAdvPhrase,
	"s":      CatClause,
	"coord":  CatCoordination,
	"text":   CatCanned,
	"word":   CatAny,
	"phrase": CatAny,
}

// docFields are the slot keys a mapping may carry.
var docFields = map[string]bool{
	"type": true, "category": true, "base": true, "text": true,
	"head": true, "spec": true, "subject": true, "subjects": true,
	"verb": true, "object": true, "indirect_object": true,
	"complements": true, "pre": true, "post": true, "front": true,
	"conjunction": true, "items": true, "features": true,
}

type docDecoder struct {
	f *Factory
}

// DecodeDocument reads one tree document from r and builds its element
// tree with f. A nil factory uses English with no lexicon.
func DecodeDocument(r io.Reader, f *Factory) (Element, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if f == nil {
		f = NewFactory(nil, nil)
	}
	d := &docDecoder{f: f}
	n := &root
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	return d.element(n, CatClause)
}

func (d *docDecoder) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrBadDocument, n.Line, fmt.Sprintf(format, args...))
}

// element decodes n in a slot expecting category def.
func (d *docDecoder) element(n *yaml.Node, def Category) (Element, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return d.scalar(n.Value, def), nil
	case yaml.SequenceNode:
		els, err := d.elements(n, def)
		if err != nil {
			return nil, err
		}
		return NewList(els...), nil
	case yaml.MappingNode:
		return d.mapping(n, def)
	case yaml.AliasNode:
		return d.element(n.Alias, def)
	}
	return nil, d.errorf(n, "unexpected node")
}

// elements decodes a scalar, a mapping or a sequence of them.
func (d *docDecoder) elements(n *yaml.Node, def Category) ([]Element, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		el, err := d.element(n, def)
		if err != nil || el == nil {
			return nil, err
		}
		return []Element{el}, nil
	}
	var out []Element
	for _, c := range n.Content {
		el, err := d.element(c, def)
		if err != nil {
			return nil, err
		}
		if el != nil {
			out = append(out, el)
		}
	}
	return out, nil
}

func (d *docDecoder) scalar(v string, def Category) Element {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	switch def {
	case CatNounPhrase:
		return d.f.CreateNounPhrase(v, nil)
	case CatVerbPhrase:
		return d.f.CreateVerbPhrase(v)
	case CatAdjPhrase:
		return d.f.CreateAdjectivePhrase(v)
	case CatAdvPhrase:
		return d.f.CreateAdverbPhrase(v)
	case CatNoun:
		return d.f.word(v, CatNoun, CatPronoun)
	case CatDeterminer:
		return d.f.word(v, CatDeterminer, CatPronoun)
	}
	if def.Lexical() {
		return d.f.word(v, def)
	}
	return NewString(v)
}

// docCategory resolves the type of a mapping.
func docCategory(fields map[string]*yaml.Node, def Category) Category {
	t, ok := fields["type"]
	if !ok {
		return def
	}
	name := strings.ToLower(strings.TrimSpace(t.Value))
	if c, ok := docTypes[name]; ok {
		if c == CatAny {
			if cat, ok := fields["category"]; ok {
				return ParseCategory(cat.Value)
			}
		}
		return c
	}
	return ParseCategory(name)
}

func (d *docDecoder) mapping(n *yaml.Node, def Category) (Element, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if !docFields[key] {
			return nil, d.errorf(n.Content[i], "unknown field %q", key)
		}
		fields[key] = n.Content[i+1]
	}
	cat := docCategory(fields, def)
	var (
		el  Element
		err error
	)
	switch {
	case cat.Lexical():
		b, ok := fields["base"]
		if !ok {
			return nil, d.errorf(n, "%s word without base", cat)
		}
		el = d.f.CreateInflectedWord(strings.TrimSpace(b.Value), cat)
	case cat == CatCanned:
		t, ok := fields["text"]
		if !ok {
			return nil, d.errorf(n, "text without text field")
		}
		el = NewString(t.Value)
	case cat == CatCoordination:
		el, err = d.coordination(fields, def)
	case cat == CatSentence || cat == CatParagraph || cat == CatDocument:
		el, err = d.document(fields, cat)
	case cat == CatClause:
		el, err = d.clause(fields)
	case cat == CatNounPhrase, cat == CatVerbPhrase, cat == CatPrepPhrase,
		cat == CatAdjPhrase, cat == CatAdvPhrase:
		el, err = d.phrase(fields, cat)
	default:
		return nil, d.errorf(n, "unknown type %q", cat)
	}
	if err != nil {
		return nil, err
	}
	if feats, ok := fields["features"]; ok {
		if err := d.features(feats, el.Features()); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// headDefaults is the category of a scalar head per phrase type.
var headDefaults = map[Category]Category{
	CatNounPhrase: CatNoun,
	CatVerbPhrase: CatVerb,
	CatPrepPhrase: CatPreposition,
	CatAdjPhrase:  CatAdjective,
	CatAdvPhrase:  CatAdverb,
}

// modifierDefault is the category of a scalar pre-modifier of cat.
func modifierDefault(cat Category) Category {
	if cat == CatNounPhrase {
		return CatAdjPhrase
	}
	return CatAdvPhrase
}

// postDefault is the category of a scalar post-modifier of cat; noun
// phrases take canned text ("in the park").
func postDefault(cat Category) Category {
	if cat == CatNounPhrase {
		return CatCanned
	}
	return CatAdvPhrase
}

func (d *docDecoder) phrase(fields map[string]*yaml.Node, cat Category) (Element, error) {
	var p *PhraseElement
	if h, ok := fields["head"]; ok && cat == CatVerbPhrase && h.Kind == yaml.ScalarNode {
		// "pick up" keeps its particle.
		p = d.f.CreateVerbPhrase(h.Value)
	} else {
		p = NewPhrase(cat)
		head, err := d.element(fields["head"], headDefaults[cat])
		if err != nil {
			return nil, err
		}
		if head != nil {
			p.SetHead(head)
		}
	}
	if s, ok := fields["spec"]; ok {
		spec, err := d.element(s, CatDeterminer)
		if err != nil {
			return nil, err
		}
		p.SetSpecifier(spec)
	}
	if err := d.slots(p, fields, cat); err != nil {
		return nil, err
	}
	return p, nil
}

// slots fills the complement and modifier slots shared by phrases and
// clauses.
func (d *docDecoder) slots(p *PhraseElement, fields map[string]*yaml.Node, cat Category) error {
	if o, ok := fields["object"]; ok {
		el, err := d.element(o, CatNounPhrase)
		if err != nil {
			return err
		}
		p.SetObject(el)
	}
	if o, ok := fields["indirect_object"]; ok {
		el, err := d.element(o, CatNounPhrase)
		if err != nil {
			return err
		}
		p.SetIndirectObject(el)
	}
	add := []struct {
		key string
		def Category
		fn  func(Element)
	}{
		{"complements", CatNounPhrase, p.AddComplement},
		{"pre", modifierDefault(cat), p.AddPreModifier},
		{"post", postDefault(cat), p.AddPostModifier},
		{"front", CatAdvPhrase, p.AddFrontModifier},
	}
	for _, a := range add {
		els, err := d.elements(fields[a.key], a.def)
		if err != nil {
			return err
		}
		for _, el := range els {
			a.fn(el)
		}
	}
	return nil
}

func (d *docDecoder) clause(fields map[string]*yaml.Node) (Element, error) {
	c := d.f.CreateClause(nil, nil, nil)
	if v, ok := fields["verb"]; ok {
		vp, err := d.element(v, CatVerbPhrase)
		if err != nil {
			return nil, err
		}
		c.Features().Set(FeatVerbPhrase, vp)
	}
	for _, key := range []string{"subject", "subjects"} {
		els, err := d.elements(fields[key], CatNounPhrase)
		if err != nil {
			return nil, err
		}
		for _, el := range els {
			c.AddSubject(el)
		}
	}
	if err := d.slots(c, fields, CatClause); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *docDecoder) coordination(fields map[string]*yaml.Node, def Category) (Element, error) {
	if def == CatCoordination {
		def = CatNounPhrase
	}
	c := NewCoordination("")
	if conj, ok := fields["conjunction"]; ok {
		c.Features().Set(FeatConjunction, strings.TrimSpace(conj.Value))
	}
	els, err := d.elements(fields["items"], def)
	if err != nil {
		return nil, err
	}
	for _, el := range els {
		c.Add(el)
	}
	return c, nil
}

func (d *docDecoder) document(fields map[string]*yaml.Node, cat Category) (Element, error) {
	def := CatSentence
	if cat == CatSentence {
		def = CatClause
	}
	els, err := d.elements(fields["items"], def)
	if err != nil {
		return nil, err
	}
	return NewDocument(cat, els...), nil
}

// features decodes a features mapping into dst, typing the enumerated
// values.
func (d *docDecoder) features(n *yaml.Node, dst Features) error {
	if n.Kind != yaml.MappingNode {
		return d.errorf(n, "features must be a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if key == "question" {
			key = FeatInterrogative
		}
		v, err := d.featureValue(key, val)
		if err != nil {
			return err
		}
		dst.Set(key, v)
	}
	return nil
}

func (d *docDecoder) featureValue(key string, n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, d.errorf(n, "feature %q wants a scalar", key)
	}
	v, err := ParseFeature(key, n.Value)
	if err != nil {
		return nil, d.errorf(n, "%v", err)
	}
	return v, nil
}

// ParseFeature converts the text of a feature value to the type the
// realiser reads it as: the enumerated features get their enum types,
// "true" and "false" become booleans and anything else stays a string.
func ParseFeature(key, value string) (any, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	switch key {
	case FeatTense:
		t := Tense(s)
		if !t.Valid() {
			return nil, fmt.Errorf("unknown tense %q", value)
		}
		return t, nil
	case FeatForm:
		f := Form(s)
		if !f.Valid() {
			return nil, fmt.Errorf("unknown form %q", value)
		}
		return f, nil
	case FeatNumber:
		return parseNumber(s), nil
	case FeatPerson:
		return parsePerson(s), nil
	case FeatGender:
		return parseGender(s), nil
	case FeatInterrogative:
		q := Interrogative(s)
		if !q.Valid() {
			return nil, fmt.Errorf("unknown question type %q", value)
		}
		return q, nil
	case FeatFunction:
		return Function(s), nil
	}
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return strings.TrimSpace(value), nil
}
