package realiser

import "sort"

// Lexicon is the word store the realiser consults. Implementations must
// be safe for concurrent readers; the realiser never writes to entries.
type Lexicon interface {
	// Lookup returns the entries whose base form is base; CatAny matches
	// every category.
	Lookup(base string, cat Category) []*WordElement
	// LookupByID returns the entry with the given identifier, or nil.
	LookupByID(id string) *WordElement
	// LookupByVariant returns the entries having spelling as a variant.
	LookupByVariant(spelling string) []*WordElement
}

// MemoryLexicon holds entries in maps, in the manner of the loaded
// tables of a lemmatiser.
type MemoryLexicon struct {
	// byBase maps NormalizeKey(base) → entries.
	byBase map[string][]*WordElement
	// byID maps id → entry.
	byID map[string]*WordElement
	// byVariant maps NormalizeKey(variant) → entries.
	byVariant map[string][]*WordElement
}

// NewMemoryLexicon returns an empty lexicon.
func NewMemoryLexicon() *MemoryLexicon {
	return &MemoryLexicon{
		byBase:    make(map[string][]*WordElement),
		byID:      make(map[string]*WordElement),
		byVariant: make(map[string][]*WordElement),
	}
}

// Add inserts w. An entry with the same base form and category replaces
// the earlier one, so later files override earlier ones.
func (l *MemoryLexicon) Add(w *WordElement) {
	if w == nil || w.Base == "" {
		return
	}
	key := NormalizeKey(w.Base)
	list := l.byBase[key]
	for i, old := range list {
		if old.category == w.category {
			l.forget(old)
			list[i] = w
			l.index(w)
			return
		}
	}
	l.byBase[key] = append(list, w)
	l.index(w)
}

func (l *MemoryLexicon) index(w *WordElement) {
	if w.ID != "" {
		l.byID[w.ID] = w
	}
	if w.Variant != "" {
		k := NormalizeKey(w.Variant)
		l.byVariant[k] = append(l.byVariant[k], w)
	}
}

func (l *MemoryLexicon) forget(w *WordElement) {
	if w.ID != "" && l.byID[w.ID] == w {
		delete(l.byID, w.ID)
	}
	if w.Variant != "" {
		k := NormalizeKey(w.Variant)
		kept := l.byVariant[k][:0]
		for _, v := range l.byVariant[k] {
			if v != w {
				kept = append(kept, v)
			}
		}
		l.byVariant[k] = kept
	}
}

// Merge copies every entry of other into l.
func (l *MemoryLexicon) Merge(other *MemoryLexicon) {
	for _, w := range other.Words() {
		l.Add(w)
	}
}

func (l *MemoryLexicon) Lookup(base string, cat Category) []*WordElement {
	var out []*WordElement
	for _, w := range l.byBase[NormalizeKey(base)] {
		if cat == CatAny || cat == "" || w.category == cat {
			out = append(out, w)
		}
	}
	return out
}

func (l *MemoryLexicon) LookupByID(id string) *WordElement { return l.byID[id] }

func (l *MemoryLexicon) LookupByVariant(spelling string) []*WordElement {
	return l.byVariant[NormalizeKey(spelling)]
}

// Len returns the number of entries.
func (l *MemoryLexicon) Len() int {
	n := 0
	for _, list := range l.byBase {
		n += len(list)
	}
	return n
}

// Words returns all entries sorted by base form then category.
func (l *MemoryLexicon) Words() []*WordElement {
	out := make([]*WordElement, 0, l.Len())
	for _, list := range l.byBase {
		out = append(out, list...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Base != out[j].Base {
			return out[i].Base < out[j].Base
		}
		return out[i].category < out[j].category
	})
	return out
}

// lookupWord finds the entry for base in cat, trying the spelling
// variants when the base form is unknown. A miss yields nil.
func lookupWord(lex Lexicon, base string, cat Category) *WordElement {
	if lex == nil || base == "" {
		return nil
	}
	if ws := lex.Lookup(base, cat); len(ws) > 0 {
		return ws[0]
	}
	for _, w := range lex.LookupByVariant(base) {
		if cat == CatAny || w.category == cat {
			return w
		}
	}
	return nil
}
