package realiser

// Pronoun table positions.
const (
	posSubject = iota
	posObject
	posReflexive
	posPossessive
	posSpecifier
	numPositions
)

// Pronoun table columns: first and second person, then third person by
// gender.
const (
	colFirst = iota
	colSecond
	colMasculine
	colFeminine
	colNeuter
	numColumns
)

// PronounTable is indexed [number][position][person-or-gender]; number 0
// is singular.
type PronounTable [2][numPositions][numColumns]string

var englishPronouns = &PronounTable{
	{
		{"I", "you", "he", "she", "it"},
		{"me", "you", "him", "her", "it"},
		{"myself", "yourself", "himself", "herself", "itself"},
		{"mine", "yours", "his", "hers", "its"},
		{"my", "your", "his", "her", "its"},
	},
	{
		{"we", "you", "they", "they", "they"},
		{"us", "you", "them", "them", "them"},
		{"ourselves", "yourselves", "themselves", "themselves", "themselves"},
		{"ours", "yours", "theirs", "theirs", "theirs"},
		{"our", "your", "their", "their", "their"},
	},
}

var frenchPronouns = &PronounTable{
	{
		{"je", "tu", "il", "elle", "il"},
		{"me", "te", "le", "la", "le"},
		{"me", "te", "se", "se", "se"},
		{"mien", "tien", "sien", "sien", "sien"},
		{"mon", "ton", "son", "son", "son"},
	},
	{
		{"nous", "vous", "ils", "elles", "ils"},
		{"nous", "vous", "les", "les", "les"},
		{"nous", "vous", "se", "se", "se"},
		{"nôtre", "vôtre", "leur", "leur", "leur"},
		{"notre", "votre", "leur", "leur", "leur"},
	},
}

// French indirect-object and stressed forms, [number][column].
var (
	frenchIndirect = [2][numColumns]string{
		{"me", "te", "lui", "lui", "lui"},
		{"nous", "vous", "leur", "leur", "leur"},
	}
	frenchStressed = [2][numColumns]string{
		{"moi", "toi", "lui", "elle", "lui"},
		{"nous", "vous", "eux", "elles", "eux"},
	}
)

func numberIndex(n Number) int {
	if n == NumberPlural {
		return 1
	}
	return 0
}

// pronounColumn picks the column: the person, replaced by the gender in
// the third person.
func pronounColumn(p Person, g Gender) int {
	switch p {
	case PersonFirst:
		return colFirst
	case PersonSecond:
		return colSecond
	}
	switch g {
	case GenderMasculine:
		return colMasculine
	case GenderFeminine:
		return colFeminine
	}
	return colNeuter
}

// pronounPosition derives the table position from the usage features.
func pronounPosition(f Features) int {
	if f.Bool(FeatReflexive) {
		return posReflexive
	}
	fn := f.Function()
	if f.Bool(FeatPossessive) {
		if fn == FuncSpecifier {
			return posSpecifier
		}
		return posPossessive
	}
	passive := f.Bool(FeatPassive)
	switch {
	case fn == FuncSubject && !passive,
		fn == FuncObject && passive,
		fn == FuncSpecifier,
		fn == FuncComplement && f.Bool(featCopularComplement):
		return posSubject
	}
	return posObject
}

// Cell returns one table entry.
func (t *PronounTable) Cell(n Number, pos, col int) string {
	if pos < 0 || pos >= numPositions || col < 0 || col >= numColumns {
		return ""
	}
	return t[numberIndex(n)][pos][col]
}

// Find locates base in the table. Ambiguous spellings ("you", "it",
// "her") resolve to their first cell in table order.
func (t *PronounTable) Find(base string) (n Number, pos, col int, ok bool) {
	key := NormalizeKey(base)
	for ni := range t {
		for p := range t[ni] {
			for c := range t[ni][p] {
				if NormalizeKey(t[ni][p][c]) == key {
					n = NumberSingular
					if ni == 1 {
						n = NumberPlural
					}
					return n, p, c, true
				}
			}
		}
	}
	return "", 0, 0, false
}

// pronounAgreement returns the number, person and gender of a pronoun:
// the usage features, completed from the cell the base form sits in.
func (t *PronounTable) pronounAgreement(w *InflectedWordElement) (Number, Person, Gender) {
	n, _, col, ok := t.Find(w.BaseForm())
	return fillAgreement(w.Features(), n, col, ok)
}

// fillAgreement completes the features f with the number and column of
// the table cell a pronoun was found in.
func fillAgreement(f Features, cellNumber Number, col int, found bool) (Number, Person, Gender) {
	n, p, g := f.Number(), f.Person(), f.Gender()
	if found {
		if n == "" {
			n = cellNumber
		}
		if p == "" {
			switch col {
			case colFirst:
				p = PersonFirst
			case colSecond:
				p = PersonSecond
			default:
				p = PersonThird
			}
		}
		if g == "" {
			switch col {
			case colMasculine:
				g = GenderMasculine
			case colFeminine:
				g = GenderFeminine
			case colNeuter:
				g = GenderNeuter
			}
		}
	}
	if n == "" {
		n = NumberSingular
	}
	if p == "" {
		p = PersonThird
	}
	return n, p, g
}

// Resolve returns the surface pronoun for w. It reads only w's features
// and base form, so equal inputs always give the same cell.
func (t *PronounTable) Resolve(w *InflectedWordElement) string {
	n, p, g := t.pronounAgreement(w)
	return t.Cell(n, pronounPosition(w.Features()), pronounColumn(p, g))
}

// subjectPronoun is the base form a pronominal noun phrase starts from.
func (t *PronounTable) subjectPronoun(n Number, p Person, g Gender) string {
	return t.Cell(n, posSubject, pronounColumn(p, g))
}
