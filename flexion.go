package realiser

import "strings"

// InflectionTable computes the paradigm of base in cat: finite tenses by
// person and number plus the participles for verbs, singular and plural
// for nouns, agreement and degree forms for adjectives.
func (r *Realiser) InflectionTable(base string, cat Category) *InflectionTable {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil
	}
	table := &InflectionTable{Base: base, Category: cat}
	for _, feats := range paradigmFeatures(cat, r.lang.GenderAgreement()) {
		table.Cells = append(table.Cells, InflectionCell{
			Label:    cellLabel(feats),
			Features: feats,
			Form:     r.Inflect(base, cat, feats),
		})
	}
	return table
}

// Forms returns the distinct forms of the table in paradigm order.
func (t *InflectionTable) Forms() []string {
	if t == nil {
		return nil
	}
	forms := make([]string, 0, len(t.Cells))
	for _, c := range t.Cells {
		forms = append(forms, c.Form)
	}
	return unique(forms)
}

// paradigmFeatures lists the feature sets of a paradigm. Languages with
// gender agreement have synthetic futures and conditionals, imperative
// cells and gendered adjectives.
func paradigmFeatures(cat Category, agreeing bool) []Features {
	var out []Features
	switch cat {
	case CatVerb:
		tenses := []Tense{TensePresent, TensePast}
		if agreeing {
			tenses = append(tenses, TenseFuture, TenseConditional)
		}
		for _, t := range tenses {
			for _, c := range paradigmCells {
				out = append(out, Features{FeatTense: t, FeatPerson: c.person, FeatNumber: c.number})
			}
		}
		if agreeing {
			for _, c := range imperativeCells {
				out = append(out, Features{FeatForm: FormImperative, FeatPerson: c.person, FeatNumber: c.number})
			}
		}
		out = append(out,
			Features{FeatForm: FormPresentParticiple},
			Features{FeatForm: FormPastParticiple},
		)
	case CatNoun:
		out = append(out, Features{FeatNumber: NumberSingular}, Features{FeatNumber: NumberPlural})
	case CatAdjective:
		if agreeing {
			for _, g := range []Gender{GenderMasculine, GenderFeminine} {
				for _, n := range []Number{NumberSingular, NumberPlural} {
					out = append(out, Features{FeatGender: g, FeatNumber: n})
				}
			}
		} else {
			out = append(out, Features{})
		}
		out = append(out, Features{FeatComparative: true}, Features{FeatSuperlative: true})
	case CatAdverb:
		out = append(out, Features{}, Features{FeatComparative: true}, Features{FeatSuperlative: true})
	default:
		out = append(out, Features{})
	}
	return out
}

// cellLabel renders the values of a cell in a fixed order.
func cellLabel(f Features) string {
	var parts []string
	for _, k := range []string{FeatTense, FeatForm, FeatPerson, FeatGender, FeatNumber} {
		if v := f.Str(k); v != "" {
			parts = append(parts, v)
		}
	}
	for _, k := range []string{FeatComparative, FeatSuperlative} {
		if f.Bool(k) {
			parts = append(parts, k)
		}
	}
	if len(parts) == 0 {
		return "base"
	}
	return strings.Join(parts, " ")
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
