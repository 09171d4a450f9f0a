package realiser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrBadLexiconLine is wrapped by every lexicon parse error.
var ErrBadLexiconLine = errors.New("bad lexicon line")

// namedForms maps the irregular-form field names of lexicon files onto
// form keys.
var namedForms = map[string]FormKey{
	"past":               {Tense: TensePast},
	"past_participle":    {Form: FormPastParticiple},
	"present_participle": {Form: FormPresentParticiple},
	"present3s":          {Tense: TensePresent, Person: PersonThird, Number: NumberSingular},
	"plural":             {Number: NumberPlural},
	"comparative":        {Degree: "comparative"},
	"superlative":        {Degree: "superlative"},
	"feminine":           {Gender: GenderFeminine},
	"feminine_plural":    {Gender: GenderFeminine, Number: NumberPlural},
	"masculine_plural":   {Gender: GenderMasculine, Number: NumberPlural},
}

// paradigmForms are fields holding a comma list of person/number forms.
var paradigmForms = map[string]Tense{
	"present":     TensePresent,
	"imperfect":   TenseImperfect,
	"future":      TenseFuture,
	"conditional": TenseConditional,
}

// paradigmCells is the order of the six person/number forms.
var paradigmCells = []struct {
	person Person
	number Number
}{
	{PersonFirst, NumberSingular},
	{PersonSecond, NumberSingular},
	{PersonThird, NumberSingular},
	{PersonFirst, NumberPlural},
	{PersonSecond, NumberPlural},
	{PersonThird, NumberPlural},
}

// imperativeCells is the order of the three imperative forms.
var imperativeCells = []struct {
	person Person
	number Number
}{
	{PersonSecond, NumberSingular},
	{PersonFirst, NumberPlural},
	{PersonSecond, NumberPlural},
}

// lexicalFlags are attributes stored as boolean lexical features.
var lexicalFlags = map[string]bool{
	LexCopular:   true,
	LexProper:    true,
	LexPreposed:  true,
	LexAuxEtre:   true,
	LexReflexive: true,
	LexExpletive: true,
	LexUncount:   true,
}

// LoadLexicon reads a lexicon file.
func LoadLexicon(path string) (*MemoryLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	lex, err := ReadLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// ReadLexicon parses the line format:
//
//	! comment
//	base|category|id|attr;attr=value;...
//
// Only base and category are required. Blank lines and lines starting
// with "!" are skipped.
func ReadLexicon(r io.Reader) (*MemoryLexicon, error) {
	lex := NewMemoryLexicon()
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		w, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		lex.Add(w)
	}
	return lex, sc.Err()
}

// parseEntry builds a WordElement from one lexicon line.
func parseEntry(line string) (*WordElement, error) {
	parts := strings.Split(norm.NFC.String(line), "|")
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadLexiconLine, line)
	}
	cat := ParseCategory(parts[1])
	if !cat.Lexical() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrBadLexiconLine, parts[1])
	}
	w := NewWord(strings.TrimSpace(parts[0]), cat)
	if len(parts) > 2 {
		w.ID = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		for _, attr := range strings.Split(parts[3], ";") {
			if err := applyAttr(w, strings.TrimSpace(attr)); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

// applyAttr interprets one "name" or "name=value" attribute.
func applyAttr(w *WordElement, attr string) error {
	if attr == "" {
		return nil
	}
	name, value, hasValue := strings.Cut(attr, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !hasValue {
		if lexicalFlags[name] {
			w.Features().Set(name, true)
			if name == LexUncount {
				w.Classes = append(w.Classes, InflUncount)
			}
			return nil
		}
		return fmt.Errorf("%w: unknown flag %q", ErrBadLexiconLine, name)
	}
	if k, ok := namedForms[name]; ok {
		w.SetForm(k, value)
		return nil
	}
	if t, ok := paradigmForms[name]; ok {
		return setParadigm(w, name, value, t)
	}
	switch name {
	case "imperative":
		forms := strings.Split(value, ",")
		if len(forms) != len(imperativeCells) {
			return fmt.Errorf("%w: imperative wants %d forms, got %d",
				ErrBadLexiconLine, len(imperativeCells), len(forms))
		}
		for i, c := range imperativeCells {
			w.SetForm(FormKey{Form: FormImperative, Person: c.person, Number: c.number}, strings.TrimSpace(forms[i]))
		}
	case "infl":
		for i, c := range strings.Split(value, ",") {
			class := InflectionClass(strings.TrimSpace(c))
			if i == 0 {
				w.DefaultClass = class
			}
			w.Classes = append(w.Classes, class)
		}
	case "variant":
		w.Variant = value
	case "gender":
		w.Features().Set(FeatGender, parseGender(value))
	case "person":
		w.Features().Set(FeatPerson, parsePerson(value))
	case "number":
		w.Features().Set(FeatNumber, parseNumber(value))
	case LexAgent, LexFutureStem, LexImperfect:
		w.Features().Set(name, value)
	default:
		return fmt.Errorf("%w: unknown attribute %q", ErrBadLexiconLine, name)
	}
	return nil
}

func setParadigm(w *WordElement, name, value string, t Tense) error {
	forms := strings.Split(value, ",")
	if len(forms) != len(paradigmCells) {
		return fmt.Errorf("%w: %s wants %d forms, got %d",
			ErrBadLexiconLine, name, len(paradigmCells), len(forms))
	}
	for i, c := range paradigmCells {
		w.SetForm(FormKey{Tense: t, Person: c.person, Number: c.number}, strings.TrimSpace(forms[i]))
	}
	return nil
}

func parseGender(s string) Gender {
	switch strings.ToLower(s) {
	case "m", "masc", "masculine":
		return GenderMasculine
	case "f", "fem", "feminine":
		return GenderFeminine
	case "n", "neuter":
		return GenderNeuter
	}
	return Gender(s)
}

func parsePerson(s string) Person {
	switch strings.ToLower(s) {
	case "1", "first":
		return PersonFirst
	case "2", "second":
		return PersonSecond
	case "3", "third":
		return PersonThird
	}
	return Person(s)
}

func parseNumber(s string) Number {
	switch strings.ToLower(s) {
	case "sg", "s", "singular":
		return NumberSingular
	case "pl", "p", "plural":
		return NumberPlural
	}
	return Number(s)
}
