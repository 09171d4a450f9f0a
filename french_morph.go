package realiser

import "strings"

func (french) Pronouns() *PronounTable { return frenchPronouns }

// Noun plural exceptions.
var (
	frenchAlPlurals  = map[string]bool{"bal": true, "carnaval": true, "chacal": true, "festival": true, "récital": true, "régal": true}
	frenchEuPlurals  = map[string]bool{"pneu": true, "bleu": true, "émeu": true, "landau": true}
	frenchOuPlurals  = map[string]bool{"bijou": true, "caillou": true, "chou": true, "genou": true, "hibou": true, "joujou": true, "pou": true}
	frenchAilPlurals = map[string]bool{"bail": true, "corail": true, "émail": true, "soupirail": true, "travail": true, "vantail": true, "vitrail": true}
)

// InflectNoun handles the plural.
func (french) InflectNoun(w *InflectedWordElement) string {
	f := w.Features()
	base := w.BaseForm()
	if !f.Plural() || f.Bool(LexProper) || f.Bool(LexUncount) || w.Class() == InflInvariant || w.Class() == InflUncount {
		return base
	}
	if s, ok := w.Lookup(FormKey{Number: NumberPlural}); ok {
		return s
	}
	return frenchPlural(base)
}

func frenchPlural(base string) string {
	key := NormalizeKey(base)
	switch {
	case strings.HasSuffix(key, "s"), strings.HasSuffix(key, "x"), strings.HasSuffix(key, "z"):
		return base
	case frenchAilPlurals[key]:
		return trimRunes(base, 3) + "aux"
	case strings.HasSuffix(key, "al"):
		if frenchAlPlurals[key] {
			return base + "s"
		}
		return trimRunes(base, 2) + "aux"
	case strings.HasSuffix(key, "eau"), strings.HasSuffix(key, "au"), strings.HasSuffix(key, "eu"):
		if frenchEuPlurals[key] {
			return base + "s"
		}
		return base + "x"
	case frenchOuPlurals[key]:
		return base + "x"
	}
	return base + "s"
}

// frenchFeminineEndings are tried in order; the first matching ending
// is replaced.
var frenchFeminineEndings = []struct{ from, to string }{
	{"eux", "euse"},
	{"if", "ive"},
	{"er", "ère"},
	{"eil", "eille"},
	{"el", "elle"},
	{"en", "enne"},
	{"on", "onne"},
	{"et", "ette"},
}

func frenchFeminine(base string) string {
	if strings.HasSuffix(base, "e") {
		return base
	}
	for _, e := range frenchFeminineEndings {
		if strings.HasSuffix(base, e.from) {
			return strings.TrimSuffix(base, e.from) + e.to
		}
	}
	return base + "e"
}

func frenchAdjPlural(form string, masculine bool) string {
	switch {
	case strings.HasSuffix(form, "s"), strings.HasSuffix(form, "x"):
		return form
	case masculine && strings.HasSuffix(form, "al"):
		return strings.TrimSuffix(form, "al") + "aux"
	case strings.HasSuffix(form, "eau"):
		return form + "x"
	}
	return form + "s"
}

// InflectAdjective makes an adjective agree in gender and number.
// Comparatives take "plus" unless the lexicon has a synthetic form
// ("meilleur").
func (french) InflectAdjective(w *InflectedWordElement) string {
	f := w.Features()
	base := w.BaseForm()
	prefix := ""
	for _, degree := range []string{"superlative", "comparative"} {
		if !f.Bool(degree) {
			continue
		}
		if s, ok := w.Lookup(FormKey{Degree: degree}); ok {
			base = s
		} else {
			prefix = "plus "
		}
		break
	}
	return prefix + frenchAdjectiveForm(w, base, f.Gender(), f.Number())
}

func frenchAdjectiveForm(w *InflectedWordElement, base string, g Gender, n Number) string {
	synthetic := base != w.BaseForm()
	lookup := func(k FormKey) (string, bool) {
		if synthetic {
			return "", false
		}
		return w.Lookup(k)
	}
	feminine := g == GenderFeminine
	plural := n == NumberPlural
	switch {
	case feminine && plural:
		if s, ok := lookup(FormKey{Gender: GenderFeminine, Number: NumberPlural}); ok {
			return s
		}
		fem := frenchFeminine(base)
		if s, ok := lookup(FormKey{Gender: GenderFeminine}); ok {
			fem = s
		}
		return frenchAdjPlural(fem, false)
	case feminine:
		if s, ok := lookup(FormKey{Gender: GenderFeminine}); ok {
			return s
		}
		return frenchFeminine(base)
	case plural:
		if s, ok := lookup(FormKey{Gender: GenderMasculine, Number: NumberPlural}); ok {
			return s
		}
		return frenchAdjPlural(base, true)
	}
	return base
}

func (french) InflectAdverb(w *InflectedWordElement) string {
	f := w.Features()
	if f.Bool(FeatComparative) || f.Bool(FeatSuperlative) {
		if s, ok := w.Lookup(FormKey{Degree: "comparative"}); ok && !f.Bool(FeatSuperlative) {
			return s
		}
		return "plus " + w.BaseForm()
	}
	return w.BaseForm()
}

// Verb endings by group, in paradigm order (je, tu, il, nous, vous, ils).
var (
	frenchPresentEndings = map[InflectionClass][6]string{
		InflGroup1:   {"e", "es", "e", "ons", "ez", "ent"},
		InflGroup2:   {"is", "is", "it", "issons", "issez", "issent"},
		InflGroup3:   {"s", "s", "", "ons", "ez", "ent"},
		InflGroupOir: {"ois", "ois", "oit", "evons", "evez", "oivent"},
	}
	frenchImperfectEndings   = [6]string{"ais", "ais", "ait", "ions", "iez", "aient"}
	frenchFutureEndings      = [6]string{"ai", "as", "a", "ons", "ez", "ont"}
	frenchConditionalEndings = frenchImperfectEndings
)

// cellIndex is the paradigm position of a person and number.
func cellIndex(p Person, n Number) int {
	i := 2
	switch p {
	case PersonFirst:
		i = 0
	case PersonSecond:
		i = 1
	}
	if n == NumberPlural {
		i += 3
	}
	return i
}

// frenchGroup is the conjugation group: declared, else from the ending.
func frenchGroup(w *InflectedWordElement) InflectionClass {
	switch c := w.Class(); c {
	case InflGroup1, InflGroup2, InflGroup3, InflGroupOir:
		return c
	}
	base := NormalizeKey(w.BaseForm())
	switch {
	case strings.HasSuffix(base, "evoir"):
		return InflGroupOir
	case strings.HasSuffix(base, "er"):
		return InflGroup1
	case strings.HasSuffix(base, "ir"):
		return InflGroup2
	}
	return InflGroup3
}

// frenchStem strips the infinitive ending.
func frenchStem(base string, group InflectionClass) string {
	if group == InflGroupOir {
		return strings.TrimSuffix(base, "evoir")
	}
	return trimRunes(base, 2)
}

// frenchPresent conjugates the present indicative.
func frenchPresent(w *InflectedWordElement, p Person, n Number) string {
	if s, ok := w.Lookup(FormKey{Tense: TensePresent, Person: p, Number: n}); ok {
		return s
	}
	group := frenchGroup(w)
	stem := frenchStem(w.BaseForm(), group)
	i := cellIndex(p, n)
	ending := frenchPresentEndings[group][i]
	switch group {
	case InflGroup1:
		if i == 3 {
			stem = frenchSoftenStem(stem)
		}
	case InflGroupOir:
		if strings.HasSuffix(stem, "c") && strings.HasPrefix(ending, "o") {
			stem = strings.TrimSuffix(stem, "c") + "ç"
		}
	}
	return stem + ending
}

// frenchSoftenStem keeps the soft g and c before a or o: "mangeons",
// "commençons".
func frenchSoftenStem(stem string) string {
	switch {
	case strings.HasSuffix(stem, "g"):
		return stem + "e"
	case strings.HasSuffix(stem, "c"):
		return strings.TrimSuffix(stem, "c") + "ç"
	}
	return stem
}

// frenchNousStem is the stem of the first person plural present, which
// the imperfect and the present participle build on.
func frenchNousStem(w *InflectedWordElement) string {
	if s := w.Features().Str(LexImperfect); s != "" {
		return s
	}
	return strings.TrimSuffix(frenchPresent(w, PersonFirst, NumberPlural), "ons")
}

func frenchImperfect(w *InflectedWordElement, p Person, n Number) string {
	if s, ok := w.Lookup(FormKey{Tense: TenseImperfect, Person: p, Number: n}); ok {
		return s
	}
	stem := frenchNousStem(w)
	ending := frenchImperfectEndings[cellIndex(p, n)]
	if strings.HasPrefix(ending, "i") {
		switch {
		case strings.HasSuffix(stem, "ge"):
			stem = strings.TrimSuffix(stem, "e")
		case strings.HasSuffix(stem, "ç"):
			stem = strings.TrimSuffix(stem, "ç") + "c"
		}
	}
	return stem + ending
}

// frenchFutureStem is the stem of the future and conditional.
func frenchFutureStem(w *InflectedWordElement) string {
	if s := w.Features().Str(LexFutureStem); s != "" {
		return s
	}
	base := w.BaseForm()
	if frenchGroup(w) == InflGroupOir {
		return strings.TrimSuffix(base, "oir") + "r"
	}
	if strings.HasSuffix(base, "re") {
		return strings.TrimSuffix(base, "e")
	}
	return base
}

func frenchPastParticiple(w *InflectedWordElement) string {
	f := w.Features()
	pp, ok := w.Lookup(FormKey{Form: FormPastParticiple})
	if !ok {
		group := frenchGroup(w)
		stem := frenchStem(w.BaseForm(), group)
		switch group {
		case InflGroup1:
			pp = stem + "é"
		case InflGroup2:
			pp = stem + "i"
		case InflGroupOir:
			if strings.HasSuffix(stem, "c") {
				stem = strings.TrimSuffix(stem, "c") + "ç"
			}
			pp = stem + "u"
		default:
			pp = stem + "u"
		}
	}
	if f.Gender() == GenderFeminine {
		if s, ok := w.Lookup(FormKey{Form: FormPastParticiple, Gender: GenderFeminine}); ok {
			pp = s
		} else if !strings.HasSuffix(pp, "e") {
			pp += "e"
		}
	}
	if f.Plural() && !strings.HasSuffix(pp, "s") && !strings.HasSuffix(pp, "x") {
		pp += "s"
	}
	return pp
}

func frenchPresentParticiple(w *InflectedWordElement) string {
	if s, ok := w.Lookup(FormKey{Form: FormPresentParticiple}); ok {
		return s
	}
	return frenchNousStem(w) + "ant"
}

func frenchImperative(w *InflectedWordElement, p Person, n Number) string {
	if p == PersonThird {
		p = PersonSecond
	}
	if s, ok := w.Lookup(FormKey{Form: FormImperative, Person: p, Number: n}); ok {
		return s
	}
	form := frenchPresent(w, p, n)
	if p == PersonSecond && n != NumberPlural && frenchGroup(w) == InflGroup1 {
		form = strings.TrimSuffix(form, "s")
	}
	return form
}

// InflectVerb conjugates a verb. A bare past tense reaching the
// morphology is taken as the imperfect; the syntax stage builds the
// passé composé itself.
func (french) InflectVerb(w *InflectedWordElement) string {
	f := w.Features()
	p, n := f.Person(), f.Number()
	if !p.Valid() {
		p = PersonThird
	}
	if !n.Valid() {
		n = NumberSingular
	}
	switch f.Form() {
	case FormInfinitive, FormBareInfinitive:
		return w.BaseForm()
	case FormPastParticiple:
		return frenchPastParticiple(w)
	case FormPresentParticiple, FormGerund:
		return frenchPresentParticiple(w)
	case FormImperative:
		return frenchImperative(w, p, n)
	}
	i := cellIndex(p, n)
	switch f.Tense() {
	case TensePast, TenseImperfect:
		return frenchImperfect(w, p, n)
	case TenseFuture:
		if s, ok := w.Lookup(FormKey{Tense: TenseFuture, Person: p, Number: n}); ok {
			return s
		}
		return frenchFutureStem(w) + frenchFutureEndings[i]
	case TenseConditional:
		if s, ok := w.Lookup(FormKey{Tense: TenseConditional, Person: p, Number: n}); ok {
			return s
		}
		return frenchFutureStem(w) + frenchConditionalEndings[i]
	}
	return frenchPresent(w, p, n)
}

// frenchAgreementRows hold the masculine singular, feminine singular,
// masculine plural and feminine plural of the words that agree with a
// noun: determiners and possessives.
var frenchAgreementRows = [][4]string{
	{"le", "la", "les", "les"},
	{"un", "une", "des", "des"},
	{"ce", "cette", "ces", "ces"},
	{"mon", "ma", "mes", "mes"},
	{"ton", "ta", "tes", "tes"},
	{"son", "sa", "ses", "ses"},
	{"notre", "notre", "nos", "nos"},
	{"votre", "votre", "vos", "vos"},
	{"leur", "leur", "leurs", "leurs"},
	{"du", "de la", "des", "des"},
	{"quel", "quelle", "quels", "quelles"},
	{"tout", "toute", "tous", "toutes"},
	{"aucun", "aucune", "aucuns", "aucunes"},
	{"mien", "mienne", "miens", "miennes"},
	{"tien", "tienne", "tiens", "tiennes"},
	{"sien", "sienne", "siens", "siennes"},
	{"nôtre", "nôtre", "nôtres", "nôtres"},
	{"vôtre", "vôtre", "vôtres", "vôtres"},
}

// frenchRowIndex maps every form of frenchAgreementRows to its row. The
// first row listing a form wins ("des" is the plural of "un").
var frenchRowIndex = func() map[string]int {
	idx := make(map[string]int)
	for i, row := range frenchAgreementRows {
		for _, form := range row {
			if _, ok := idx[form]; !ok {
				idx[form] = i
			}
		}
	}
	return idx
}()

// frenchAgreeForm returns the form of word in gender g and number n, or
// word itself when it has no agreement row.
func frenchAgreeForm(word string, g Gender, n Number) string {
	i, ok := frenchRowIndex[NormalizeKey(word)]
	if !ok {
		return word
	}
	col := 0
	if g == GenderFeminine {
		col = 1
	}
	if n == NumberPlural {
		col += 2
	}
	return frenchAgreementRows[i][col]
}

func (french) InflectDeterminer(w *InflectedWordElement) string {
	f := w.Features()
	return frenchAgreeForm(w.BaseForm(), f.Gender(), f.Number())
}

// InflectPronoun resolves personal pronouns in the main table and in the
// indirect and stressed series. Possessive determiners and pronouns also
// agree with the possessed noun.
func (french) InflectPronoun(w *InflectedWordElement) string {
	f := w.Features()
	n, _, col, found := frenchPronouns.Find(w.BaseForm())
	if !found {
		n, col, found = findFrenchSeries(w.BaseForm())
	}
	if !found {
		return w.BaseForm()
	}
	num, p, g := fillAgreement(f, n, col, found)
	col = pronounColumn(p, g)
	ni := numberIndex(num)
	if f.Bool(featStressed) && !f.Bool(FeatReflexive) && !f.Bool(FeatPossessive) {
		return frenchStressed[ni][col]
	}
	pos := pronounPosition(f)
	switch {
	case pos == posObject && f.Function() == FuncIndirectObject:
		return frenchIndirect[ni][col]
	case pos == posSpecifier || pos == posPossessive:
		form := frenchPronouns.Cell(num, pos, col)
		return frenchAgreeForm(form, Gender(f.Str(featAgreeGender)), Number(f.Str(featAgreeNumber)))
	}
	return frenchPronouns.Cell(num, pos, col)
}

// findFrenchSeries looks base up in the indirect and stressed series.
func findFrenchSeries(base string) (Number, int, bool) {
	key := NormalizeKey(base)
	for _, series := range [][2][numColumns]string{frenchIndirect, frenchStressed} {
		for ni, row := range series {
			for c, form := range row {
				if form == key {
					if ni == 1 {
						return NumberPlural, c, true
					}
					return NumberSingular, c, true
				}
			}
		}
	}
	return "", 0, false
}

// frenchElisions are the words losing their vowel before a vowel sound.
// Articles and object pronouns elide only as such.
var frenchElisions = map[string]string{
	"le": "l'", "la": "l'", "de": "d'", "ne": "n'", "que": "qu'",
	"je": "j'", "me": "m'", "te": "t'", "se": "s'",
}

// frenchEuphony are the forms replaced before a vowel sound.
var frenchEuphony = map[string]string{"ce": "cet", "ma": "mon", "ta": "ton", "sa": "son"}

// Morphophonology contracts prepositions with articles ("du", "aux"),
// elides before vowels ("l'homme", "n'a") and applies the euphonic
// forms ("cet arbre", "mon amie").
func (french) Morphophonology(leaves []*StringElement) {
	for i, leaf := range leaves {
		prep := strings.ToLower(leaf.Text)
		if prep != "de" && prep != "à" {
			continue
		}
		det := nextWord(leaves, i)
		if det == nil || det.Category() != CatDeterminer {
			continue
		}
		after := nextWord(leaves, indexOf(leaves, det))
		switch strings.ToLower(det.Text) {
		case "le":
			if after != nil && elidable(after.Text) {
				continue
			}
			leaf.Text = map[string]string{"de": "du", "à": "au"}[prep]
			det.Text = ""
		case "les":
			leaf.Text = map[string]string{"de": "des", "à": "aux"}[prep]
			det.Text = ""
		case "des", "du":
			if prep == "de" {
				det.Text = ""
			}
		case "de la":
			if prep == "de" {
				det.Text = ""
			}
		}
	}
	for i, leaf := range leaves {
		next := nextWord(leaves, i)
		if next == nil || !elidable(next.Text) {
			continue
		}
		lower := strings.ToLower(leaf.Text)
		cat := leaf.Category()
		if e, ok := frenchEuphony[lower]; ok {
			switch {
			case cat == CatDeterminer, lower != "ce" && cat == CatPronoun:
				leaf.Text = e
				continue
			case lower == "ce" && cat == CatPronoun:
				leaf.Text = "c'"
				continue
			}
		}
		if lower == "de la" {
			leaf.Text = "de l'"
			continue
		}
		if lower == "si" && (strings.ToLower(next.Text) == "il" || strings.ToLower(next.Text) == "ils") {
			leaf.Text = "s'"
			continue
		}
		e, ok := frenchElisions[lower]
		if !ok {
			continue
		}
		if (lower == "le" || lower == "la") && cat != CatDeterminer && cat != CatPronoun {
			continue
		}
		leaf.Text = e
	}
}

func indexOf(leaves []*StringElement, leaf *StringElement) int {
	for i, l := range leaves {
		if l == leaf {
			return i
		}
	}
	return len(leaves) - 1
}
