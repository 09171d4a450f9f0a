package realiser

import "strings"

// Feature names. Grammatical features are set by callers; the slot
// features (head, complements, subjects...) hold the phrase structure;
// the internal ones are written by the syntax stage while it works.
const (
	FeatNumber        = "number"
	FeatPerson        = "person"
	FeatGender        = "gender"
	FeatTense         = "tense"
	FeatForm          = "form"
	FeatInterrogative = "interrogative_type"
	FeatPassive       = "passive"
	FeatProgressive   = "progressive"
	FeatPerfect       = "perfect"
	FeatNegated       = "negated"
	FeatPossessive    = "possessive"
	FeatReflexive     = "reflexive"
	FeatModal         = "modal"
	FeatPronominal    = "pronominal"
	FeatElided        = "elided"
	FeatAppositive    = "appositive"
	FeatComparative   = "comparative"
	FeatSuperlative   = "superlative"
	FeatConjunction   = "conjunction"
	FeatParticle      = "particle"
	FeatFunction      = "discourse_function"
	FeatCuePhrase     = "cue_phrase"

	// FeatSuppressComplementiser stops a subordinate clause from
	// emitting its complementiser.
	FeatSuppressComplementiser = "suppress_complementiser"
	// FeatSuppressGenitive keeps gerund subjects out of the genitive.
	FeatSuppressGenitive = "suppress_genitive_in_gerund"
	// FeatComplementiser overrides the language default ("that", "que").
	FeatComplementiser = "complementiser"

	FeatHead           = "head"
	FeatSpecifier      = "specifier"
	FeatComplements    = "complements"
	FeatPreModifiers   = "premodifiers"
	FeatPostModifiers  = "postmodifiers"
	FeatFrontModifiers = "front_modifiers"
	FeatSubjects       = "subjects"
	FeatVerbPhrase     = "verb_phrase"

	FeatClauseStatus     = "clause_status"
	FeatNonMorph         = "non_morph"
	FeatInterrogativeOut = "interrogative"
	FeatRaised           = "raised"
	FeatRealiseAux       = "realise_auxiliary"
	// FeatAggregateAux on a coordination realises the auxiliaries of the
	// first coordinate only.
	FeatAggregateAux = "aggregate_auxiliary"
)

// Bookkeeping features private to the realiser.
const (
	featCopularComplement = "copular_complement"
	featStressed          = "stressed"
	featAgreeGender       = "agree_gender"
	featAgreeNumber       = "agree_number"
	featExpletiveSubject  = "expletive_subject"
)

// Lexical feature names carried by lexicon entries.
const (
	LexCopular    = "copular"
	LexProper     = "proper"
	LexPreposed   = "preposed"
	LexAuxEtre    = "aux_etre"
	LexAgent      = "agent"
	LexExpletive  = "expletive"
	LexReflexive  = "reflexive_verb"
	LexUncount    = "uncount"
	LexFutureStem = "future_stem"
	LexImperfect  = "imperfect_stem"
)

// Category is the lexical or phrasal category of an element.
type Category string

const (
	CatAny            Category = "any"
	CatNoun           Category = "noun"
	CatVerb           Category = "verb"
	CatAdjective      Category = "adjective"
	CatAdverb         Category = "adverb"
	CatPronoun        Category = "pronoun"
	CatDeterminer     Category = "determiner"
	CatPreposition    Category = "preposition"
	CatConjunction    Category = "conjunction"
	CatModal          Category = "modal"
	CatComplementiser Category = "complementiser"
	CatSymbol         Category = "symbol"

	CatNounPhrase   Category = "noun_phrase"
	CatVerbPhrase   Category = "verb_phrase"
	CatAdjPhrase    Category = "adjective_phrase"
	CatAdvPhrase    Category = "adverb_phrase"
	CatPrepPhrase   Category = "preposition_phrase"
	CatClause       Category = "clause"
	CatCanned       Category = "canned_text"
	CatList         Category = "list"
	CatCoordination Category = "coordination"

	CatDocument  Category = "document"
	CatParagraph Category = "paragraph"
	CatSentence  Category = "sentence"
)

var lexicalCategories = map[Category]bool{
	CatNoun: true, CatVerb: true, CatAdjective: true, CatAdverb: true,
	CatPronoun: true, CatDeterminer: true, CatPreposition: true,
	CatConjunction: true, CatModal: true, CatComplementiser: true,
	CatSymbol: true,
}

// Lexical reports whether c names a word category rather than a phrase.
func (c Category) Lexical() bool { return lexicalCategories[c] }

// ParseCategory maps the short names used in lexicon files and documents
// ("n", "np", "vp"...) as well as the full names onto a Category.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "n":
		return CatNoun
	case "v":
		return CatVerb
	case "adj", "a":
		return CatAdjective
	case "adv":
		return CatAdverb
	case "pron":
		return CatPronoun
	case "det":
		return CatDeterminer
	case "prep":
		return CatPreposition
	case "conj":
		return CatConjunction
	case "compl":
		return CatComplementiser
	case "np":
		return CatNounPhrase
	case "vp":
		return CatVerbPhrase
	case "adjp":
		return CatAdjPhrase
	case "advp":
		return CatAdvPhrase
	case "pp":
		return CatPrepPhrase
	case "s", "clause":
		return CatClause
	case "", "*":
		return CatAny
	}
	return Category(s)
}

// Tense of a verb or clause.
type Tense string

const (
	TensePast        Tense = "past"
	TensePresent     Tense = "present"
	TenseFuture      Tense = "future"
	TenseConditional Tense = "conditional"
	// TenseImperfect is produced for French past progressives; English
	// treats it as TensePast.
	TenseImperfect Tense = "imperfect"
)

func (t Tense) Valid() bool {
	switch t {
	case TensePast, TensePresent, TenseFuture, TenseConditional, TenseImperfect:
		return true
	}
	return false
}

// Form of a verb.
type Form string

const (
	FormNormal            Form = "normal"
	FormBareInfinitive    Form = "bare_infinitive"
	FormInfinitive        Form = "infinitive"
	FormGerund            Form = "gerund"
	FormPresentParticiple Form = "present_participle"
	FormPastParticiple    Form = "past_participle"
	FormImperative        Form = "imperative"
)

func (f Form) Valid() bool {
	switch f {
	case FormNormal, FormBareInfinitive, FormInfinitive, FormGerund,
		FormPresentParticiple, FormPastParticiple, FormImperative:
		return true
	}
	return false
}

// Number agreement.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

func (n Number) Valid() bool { return n == NumberSingular || n == NumberPlural }

// Person agreement.
type Person string

const (
	PersonFirst  Person = "first"
	PersonSecond Person = "second"
	PersonThird  Person = "third"
)

func (p Person) Valid() bool {
	return p == PersonFirst || p == PersonSecond || p == PersonThird
}

// Gender agreement.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) Valid() bool {
	return g == GenderMasculine || g == GenderFeminine || g == GenderNeuter
}

// Function is the discourse function a constituent plays in its parent.
type Function string

const (
	FuncSubject        Function = "subject"
	FuncObject         Function = "object"
	FuncIndirectObject Function = "indirect_object"
	FuncComplement     Function = "complement"
	FuncSpecifier      Function = "specifier"
	FuncPreModifier    Function = "pre_modifier"
	FuncPostModifier   Function = "post_modifier"
	FuncFrontModifier  Function = "front_modifier"
	FuncVerbPhrase     Function = "verb_phrase"
	FuncAuxiliary      Function = "auxiliary"
	FuncCuePhrase      Function = "cue_phrase"
	FuncConjunction    Function = "conjunction"
	FuncHead           Function = "head"
)

// Interrogative is the question type of a clause.
type Interrogative string

const (
	InterrogYesNo             Interrogative = "yes_no"
	InterrogWhoSubject        Interrogative = "who_subject"
	InterrogWhatSubject       Interrogative = "what_subject"
	InterrogWhoObject         Interrogative = "who_object"
	InterrogWhatObject        Interrogative = "what_object"
	InterrogWhoIndirectObject Interrogative = "who_indirect_object"
	InterrogWhy               Interrogative = "why"
	InterrogWhere             Interrogative = "where"
	InterrogHow               Interrogative = "how"
	InterrogHowPredicate      Interrogative = "how_predicate"
	InterrogHowMany           Interrogative = "how_many"
)

func (q Interrogative) Valid() bool {
	switch q {
	case InterrogYesNo, InterrogWhoSubject, InterrogWhatSubject,
		InterrogWhoObject, InterrogWhatObject, InterrogWhoIndirectObject,
		InterrogWhy, InterrogWhere, InterrogHow, InterrogHowPredicate,
		InterrogHowMany:
		return true
	}
	return false
}

// questionsObject reports whether q questions the direct object.
func (q Interrogative) questionsObject() bool {
	return q == InterrogWhoObject || q == InterrogWhatObject
}

// objectLike covers the WH types whose verb split keeps the verb first.
func (q Interrogative) objectLike() bool {
	switch q {
	case InterrogWhoObject, InterrogWhatObject, InterrogHowPredicate,
		InterrogHow, InterrogWhy, InterrogWhere:
		return true
	}
	return false
}

// ClauseStatus tells a main clause from an embedded one.
type ClauseStatus string

const (
	StatusMatrix      ClauseStatus = "matrix"
	StatusSubordinate ClauseStatus = "subordinate"
)

// InflectionClass groups lexicon entries sharing regular-rule behaviour.
type InflectionClass string

const (
	InflRegular   InflectionClass = "regular"
	InflDoubling  InflectionClass = "doubling"
	InflUncount   InflectionClass = "uncount"
	InflInvariant InflectionClass = "invariant"
	InflGroup1    InflectionClass = "group1"
	InflGroup2    InflectionClass = "group2"
	InflGroup3    InflectionClass = "group3"
	InflGroupOir  InflectionClass = "groupoir"
)

// Features is the string-keyed feature bag every element carries.
// Values are bool, string, the enum types above, Element or []Element.
type Features map[string]any

// Has reports whether key is set at all.
func (f Features) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Set stores v under key; a nil v removes the key.
func (f Features) Set(key string, v any) {
	if v == nil {
		delete(f, key)
		return
	}
	if els, ok := v.([]Element); ok && els == nil {
		delete(f, key)
		return
	}
	f[key] = v
}

func (f Features) Delete(key string) { delete(f, key) }

// Bool returns the boolean at key; strings "true"/"yes" count as set.
func (f Features) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "yes"
	}
	return false
}

// Str returns the string form of the value at key.
func (f Features) Str(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case Tense:
		return string(v)
	case Form:
		return string(v)
	case Number:
		return string(v)
	case Person:
		return string(v)
	case Gender:
		return string(v)
	case Function:
		return string(v)
	case Interrogative:
		return string(v)
	case Element:
		return v.String()
	}
	return ""
}

// Element returns the element at key, or nil.
func (f Features) Element(key string) Element {
	switch v := f[key].(type) {
	case Element:
		return v
	case []Element:
		if len(v) > 0 {
			return v[0]
		}
	}
	return nil
}

// Elements returns the element list at key; a single element is
// returned as a one-item list.
func (f Features) Elements(key string) []Element {
	switch v := f[key].(type) {
	case []Element:
		return v
	case Element:
		return []Element{v}
	}
	return nil
}

// Append adds el to the element list at key.
func (f Features) Append(key string, el Element) {
	if el == nil {
		return
	}
	list := append([]Element(nil), f.Elements(key)...)
	f[key] = append(list, el)
}

func (f Features) Tense() Tense       { return Tense(f.Str(FeatTense)) }
func (f Features) Form() Form         { return Form(f.Str(FeatForm)) }
func (f Features) Number() Number     { return Number(f.Str(FeatNumber)) }
func (f Features) Person() Person     { return Person(f.Str(FeatPerson)) }
func (f Features) Gender() Gender     { return Gender(f.Str(FeatGender)) }
func (f Features) Function() Function { return Function(f.Str(FeatFunction)) }
func (f Features) Interrogative() Interrogative {
	return Interrogative(f.Str(FeatInterrogative))
}

// Plural reports NUMBER=plural.
func (f Features) Plural() bool { return f.Number() == NumberPlural }

// copyFrom copies key from src when src has it, otherwise clears it.
func (f Features) copyFrom(src Features, keys ...string) {
	for _, k := range keys {
		if v, ok := src[k]; ok {
			f[k] = v
		} else {
			delete(f, k)
		}
	}
}

// inheritFrom copies key from src only when src has it.
func (f Features) inheritFrom(src Features, keys ...string) {
	for _, k := range keys {
		if v, ok := src[k]; ok {
			f[k] = v
		}
	}
}

// clone returns a shallow copy of f.
func (f Features) clone() Features {
	out := make(Features, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
