package realiser

import (
	"regexp"
	"strings"
)

// englishDropE matches a final e the -ing ending replaces ("make"), but
// not the e of "see", "agree", "dye" or "hoe".
var englishDropE = regexp.MustCompile(`[^iyeo]e$`)

func (english) Pronouns() *PronounTable { return englishPronouns }

// InflectNoun handles the plural and the possessive.
func (english) InflectNoun(w *InflectedWordElement) string {
	f := w.Features()
	base := w.BaseForm()
	form := base
	invariant := f.Bool(LexProper) || f.Bool(LexUncount) || w.Class() == InflUncount || w.Class() == InflInvariant
	if f.Plural() && !invariant {
		if s, ok := w.Lookup(FormKey{Number: NumberPlural}); ok {
			form = s
		} else {
			form = englishPlural(base)
		}
	}
	if f.Bool(FeatPossessive) {
		if strings.HasSuffix(form, "s") {
			return form + "'"
		}
		return form + "'s"
	}
	return form
}

func englishPlural(base string) string {
	switch {
	case endsConsonantY.MatchString(base):
		return trimRunes(base, 1) + "ies"
	case endsSibilant.MatchString(base):
		return base + "es"
	}
	return base + "s"
}

// InflectVerb picks participles, the preterite, the third person
// singular and the forms of "be".
func (english) InflectVerb(w *InflectedWordElement) string {
	f := w.Features()
	base := w.BaseForm()
	form := f.Form()
	if f.Bool(FeatNegated) || form == FormBareInfinitive {
		return base
	}
	doubling := w.Class() == InflDoubling
	person, number := f.Person(), f.Number()
	be := NormalizeKey(base) == "be"
	switch tense := f.Tense(); {
	case form == FormPresentParticiple || form == FormGerund:
		if s, ok := w.Lookup(FormKey{Form: FormPresentParticiple}); ok {
			return s
		}
		return englishPresentParticiple(base, doubling)
	case form == FormPastParticiple:
		if s, ok := w.Lookup(FormKey{Form: FormPastParticiple}); ok {
			return s
		}
		if be {
			return "been"
		}
		return englishPast(base, doubling)
	case tense == TensePast || tense == TenseImperfect:
		if be {
			if number == NumberPlural || person == PersonSecond {
				return "were"
			}
			return "was"
		}
		if s, ok := w.Lookup(FormKey{Tense: TensePast, Person: person, Number: number}); ok {
			return s
		}
		if s, ok := w.Lookup(FormKey{Tense: TensePast}); ok {
			return s
		}
		return englishPast(base, doubling)
	case number != NumberPlural && (person == PersonThird || person == "") &&
		(tense == TensePresent || tense == ""):
		if s, ok := w.Lookup(FormKey{Tense: TensePresent, Person: PersonThird, Number: NumberSingular}); ok {
			return s
		}
		if be {
			return "is"
		}
		return englishPresent3s(base)
	case be && (tense == TensePresent || tense == ""):
		if person == PersonFirst && number != NumberPlural {
			return "am"
		}
		return "are"
	}
	return base
}

func englishPresentParticiple(base string, doubling bool) string {
	switch {
	case NormalizeKey(base) == "be":
		return "being"
	case strings.HasSuffix(base, "ie"):
		return trimRunes(base, 2) + "ying"
	case englishDropE.MatchString(base):
		return trimRunes(base, 1) + "ing"
	case doubling:
		return doubleFinal(base) + "ing"
	}
	return base + "ing"
}

func englishPast(base string, doubling bool) string {
	switch {
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case endsConsonantY.MatchString(base):
		return trimRunes(base, 1) + "ied"
	case doubling:
		return doubleFinal(base) + "ed"
	}
	return base + "ed"
}

func englishPresent3s(base string) string {
	switch {
	case endsSibilant.MatchString(base):
		return base + "es"
	case endsConsonantY.MatchString(base):
		return trimRunes(base, 1) + "ies"
	}
	return base + "s"
}

func (english) InflectAdjective(w *InflectedWordElement) string { return englishDegree(w) }
func (english) InflectAdverb(w *InflectedWordElement) string    { return englishDegree(w) }

// englishDegree builds comparatives and superlatives.
func englishDegree(w *InflectedWordElement) string {
	f := w.Features()
	base := w.BaseForm()
	doubling := w.Class() == InflDoubling
	var degree, y, e, suffix string
	switch {
	case f.Bool(FeatSuperlative):
		degree, y, e, suffix = "superlative", "iest", "st", "est"
	case f.Bool(FeatComparative):
		degree, y, e, suffix = "comparative", "ier", "r", "er"
	default:
		return base
	}
	if s, ok := w.Lookup(FormKey{Degree: degree}); ok {
		return s
	}
	switch {
	case endsConsonantY.MatchString(base):
		return trimRunes(base, 1) + y
	case strings.HasSuffix(base, "e"):
		return base + e
	case doubling:
		return doubleFinal(base) + suffix
	}
	return base + suffix
}

// InflectPronoun resolves personal pronouns through the table; other
// pronouns keep their base form.
func (english) InflectPronoun(w *InflectedWordElement) string {
	if _, _, _, ok := englishPronouns.Find(w.BaseForm()); !ok {
		return w.BaseForm()
	}
	return englishPronouns.Resolve(w)
}

// InflectDeterminer handles the number alternation of articles and
// demonstratives. "a"/"an" is settled by the morphophonology.
func (english) InflectDeterminer(w *InflectedWordElement) string {
	base := w.BaseForm()
	plural := w.Features().Plural()
	switch NormalizeKey(base) {
	case "a", "an":
		if plural {
			return "some"
		}
	case "this", "these":
		if plural {
			return "these"
		}
		return "this"
	case "that", "those":
		if plural {
			return "those"
		}
		return "that"
	}
	return base
}

// Morphophonology chooses "a" or "an" from the sound of the next word.
func (english) Morphophonology(leaves []*StringElement) {
	for i, leaf := range leaves {
		if leaf.Category() != CatDeterminer {
			continue
		}
		lower := strings.ToLower(leaf.Text)
		if lower != "a" && lower != "an" {
			continue
		}
		next := nextWord(leaves, i)
		if next == nil {
			continue
		}
		article := "a"
		if requiresAn(next.Text) {
			article = "an"
		}
		if leaf.Text != lower {
			article = strings.ToUpper(article[:1]) + article[1:]
		}
		leaf.Text = article
	}
}

// nextWord returns the first non-empty leaf after position i.
func nextWord(leaves []*StringElement, i int) *StringElement {
	for _, l := range leaves[i+1:] {
		if l.Text != "" {
			return l
		}
	}
	return nil
}
