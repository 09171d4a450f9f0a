package realiser

import (
	"strings"
	"testing"
)

func newRealiser(t *testing.T, tag string) *Realiser {
	t.Helper()
	r, err := New(Config{Language: tag})
	if err != nil {
		t.Fatalf("New(%q): %v", tag, err)
	}
	return r
}

func TestNew(t *testing.T) {
	r := newRealiser(t, "en")
	if r.Lexicon() == nil {
		t.Fatal("New returned a realiser without lexicon")
	}
	lex, ok := r.Lexicon().(*MemoryLexicon)
	if !ok {
		t.Fatalf("Lexicon() = %T, want *MemoryLexicon", r.Lexicon())
	}
	t.Logf("loaded %d English entries", lex.Len())
	if got := r.String(); got != "realiser(en)" {
		t.Errorf("String() = %q, want %q", got, "realiser(en)")
	}
}

func TestNewUnknownLanguage(t *testing.T) {
	if _, err := New(Config{Language: "!!"}); err == nil {
		t.Error("New with a malformed tag: want error")
	}
}

func TestEnglishInflect(t *testing.T) {
	r := newRealiser(t, "en")
	present3s := Features{FeatTense: TensePresent, FeatPerson: PersonThird, FeatNumber: NumberSingular}
	tests := []struct {
		base  string
		cat   Category
		feats Features
		want  string
	}{
		{"chase", CatVerb, Features{FeatTense: TensePast}, "chased"},
		{"try", CatVerb, Features{FeatTense: TensePast}, "tried"},
		{"go", CatVerb, Features{FeatTense: TensePast}, "went"},
		{"go", CatVerb, present3s, "goes"},
		{"watch", CatVerb, present3s, "watches"},
		{"have", CatVerb, present3s, "has"},
		{"be", CatVerb, Features{FeatTense: TensePresent, FeatPerson: PersonFirst, FeatNumber: NumberSingular}, "am"},
		{"be", CatVerb, Features{FeatTense: TensePresent, FeatNumber: NumberPlural}, "are"},
		{"be", CatVerb, Features{FeatTense: TensePast, FeatNumber: NumberPlural}, "were"},
		{"be", CatVerb, Features{FeatForm: FormPastParticiple}, "been"},
		{"tug", CatVerb, Features{FeatForm: FormPresentParticiple}, "tugging"},
		{"tug", CatVerb, Features{FeatTense: TensePast}, "tugged"},
		{"make", CatVerb, Features{FeatForm: FormPresentParticiple}, "making"},
		{"see", CatVerb, Features{FeatForm: FormPresentParticiple}, "seeing"},
		{"box", CatNoun, Features{FeatNumber: NumberPlural}, "boxes"},
		{"baby", CatNoun, Features{FeatNumber: NumberPlural}, "babies"},
		{"child", CatNoun, Features{FeatNumber: NumberPlural}, "children"},
		{"sheep", CatNoun, Features{FeatNumber: NumberPlural}, "sheep"},
		{"information", CatNoun, Features{FeatNumber: NumberPlural}, "information"},
		{"dog", CatNoun, Features{FeatPossessive: true}, "dog's"},
		{"dog", CatNoun, Features{FeatNumber: NumberPlural, FeatPossessive: true}, "dogs'"},
		{"big", CatAdjective, Features{FeatComparative: true}, "bigger"},
		{"happy", CatAdjective, Features{FeatSuperlative: true}, "happiest"},
		{"good", CatAdjective, Features{FeatComparative: true}, "better"},
		{"beautiful", CatAdjective, Features{FeatSuperlative: true}, "most beautiful"},
		{"this", CatDeterminer, Features{FeatNumber: NumberPlural}, "these"},
		{"a", CatDeterminer, Features{FeatNumber: NumberPlural}, "some"},
		{"kiss", CatVerb, Features{FeatTense: TensePast}, "kissed"},
		{"dry", CatVerb, Features{FeatTense: TensePast}, "dried"},
		{"fly", CatNoun, Features{FeatNumber: NumberPlural}, "flies"},
	}
	for _, tt := range tests {
		got := r.Inflect(tt.base, tt.cat, tt.feats)
		if got != tt.want {
			t.Errorf("Inflect(%q, %s, %v) = %q, want %q", tt.base, tt.cat, tt.feats, got, tt.want)
		}
	}
}

func TestRequiresAn(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"apple", true},
		{"hour", true},
		{"dog", false},
		{"university", false},
		{"one", false},
		{"8", true},
		{"11", true},
		{"18000", true},
		{"12", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := requiresAn(tt.word); got != tt.want {
			t.Errorf("requiresAn(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// dogChasesCat builds "the dog chases the cat".
func dogChasesCat(f *Factory) *PhraseElement {
	return f.CreateClause(f.CreateNounPhrase("the", "dog"), "chase", f.CreateNounPhrase("the", "cat"))
}

func TestEnglishClause(t *testing.T) {
	tests := []struct {
		name  string
		feats Features
		want  string
	}{
		{"present", nil, "The dog chases the cat."},
		{"past", Features{FeatTense: TensePast}, "The dog chased the cat."},
		{"future", Features{FeatTense: TenseFuture}, "The dog will chase the cat."},
		{"progressive", Features{FeatProgressive: true}, "The dog is chasing the cat."},
		{"perfect", Features{FeatPerfect: true}, "The dog has chased the cat."},
		{"negated", Features{FeatNegated: true}, "The dog does not chase the cat."},
		{"negated past", Features{FeatNegated: true, FeatTense: TensePast}, "The dog did not chase the cat."},
		{"passive", Features{FeatPassive: true}, "The cat is chased by the dog."},
		{"passive past", Features{FeatPassive: true, FeatTense: TensePast}, "The cat was chased by the dog."},
		{"modal", Features{FeatModal: "can"}, "The dog can chase the cat."},
		{"modal past", Features{FeatModal: "can", FeatTense: TensePast}, "The dog could have chased the cat."},
		{"yes-no", Features{FeatInterrogative: InterrogYesNo}, "Does the dog chase the cat?"},
		{"yes-no perfect", Features{FeatInterrogative: InterrogYesNo, FeatPerfect: true}, "Has the dog chased the cat?"},
		{"who subject", Features{FeatInterrogative: InterrogWhoSubject}, "Who chases the cat?"},
		{"what object", Features{FeatInterrogative: InterrogWhatObject}, "What does the dog chase?"},
		{"why", Features{FeatInterrogative: InterrogWhy}, "Why does the dog chase the cat?"},
		{"who object", Features{FeatInterrogative: InterrogWhoObject}, "Who does the dog chase?"},
		{"where", Features{FeatInterrogative: InterrogWhere}, "Where does the dog chase the cat?"},
		{"how", Features{FeatInterrogative: InterrogHow}, "How does the dog chase the cat?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRealiser(t, "en")
			c := dogChasesCat(r.Factory())
			for k, v := range tt.feats {
				c.Features().Set(k, v)
			}
			if got := r.RealiseSentence(c); got != tt.want {
				t.Errorf("RealiseSentence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnglishAgreement(t *testing.T) {
	r := newRealiser(t, "en")
	f := r.Factory()

	plural := dogChasesCat(f)
	plural.Subjects()[0].Features().Set(FeatNumber, NumberPlural)
	if got, want := r.RealiseSentence(plural), "The dogs chase the cat."; got != want {
		t.Errorf("plural subject: got %q, want %q", got, want)
	}

	coord := f.CreateClause(f.CreateCoordinatedPhrase("John", "Mary"), "chase", f.CreateNounPhrase("the", "cat"))
	if got, want := r.RealiseSentence(coord), "John and Mary chase the cat."; got != want {
		t.Errorf("coordinated subject: got %q, want %q", got, want)
	}

	first := f.CreateClause(f.CreateNounPhrase("I", nil), "see", f.CreateNounPhrase("he", nil))
	if got, want := r.RealiseSentence(first), "I see him."; got != want {
		t.Errorf("pronouns: got %q, want %q", got, want)
	}

	we := f.CreateClause(f.CreateNounPhrase("we", nil), "see", f.CreateNounPhrase("they", nil))
	we.Features().Set(FeatTense, TensePast)
	if got, want := r.RealiseSentence(we), "We saw them."; got != want {
		t.Errorf("plural pronouns: got %q, want %q", got, want)
	}
}

func TestEnglishCopula(t *testing.T) {
	r := newRealiser(t, "en")
	f := r.Factory()
	c := f.CreateClause(f.CreateNounPhrase("the", "dog"), "be", nil)
	c.AddComplement(f.CreateAdjectivePhrase("happy"))
	c.Features().Set(FeatInterrogative, InterrogYesNo)
	if got, want := r.RealiseSentence(c), "Is the dog happy?"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	c = f.CreateClause(f.CreateNounPhrase("the", "dog"), "be", nil)
	c.AddComplement(f.CreateAdjectivePhrase("happy"))
	c.Features().Set(FeatInterrogative, InterrogHowPredicate)
	if got, want := r.RealiseSentence(c), "How is the dog?"; got != want {
		t.Errorf("how predicate: got %q, want %q", got, want)
	}
}

func TestEnglishEmbeddedClauses(t *testing.T) {
	r := newRealiser(t, "en")
	f := r.Factory()
	chaseCat := func() *PhraseElement {
		return f.CreateClause(nil, "chase", f.CreateNounPhrase("the", "cat"))
	}
	tests := []struct {
		name  string
		build func() Element
		want  string
	}{
		{"imperative object clause", func() Element {
			sub := chaseCat()
			sub.Features().Set(FeatForm, FormImperative)
			c := f.CreateClause("John", "want", nil)
			c.SetObject(sub)
			return c
		}, "John wants to chase the cat."},
		{"subject clause", func() Element {
			c := f.CreateClause(chaseCat(), "be", nil)
			c.AddComplement(f.CreateAdjectivePhrase("fun"))
			return c
		}, "Chasing the cat is fun."},
		{"infinitive front modifier", func() Element {
			sub := chaseCat()
			sub.Features().Set(FeatForm, FormInfinitive)
			sub.AddFrontModifier(f.CreateAdverbPhrase("quickly"))
			c := f.CreateClause("John", "want", nil)
			c.SetObject(sub)
			return c
		}, "John wants to chase the cat quickly."},
		{"complementiser", func() Element {
			c := f.CreateClause("John", "say", nil)
			c.SetObject(dogChasesCat(f))
			return c
		}, "John says that the dog chases the cat."},
		{"cue phrase", func() Element {
			c := dogChasesCat(f)
			c.Features().Set(FeatCuePhrase, f.CreateAdverbPhrase("however"))
			return c
		}, "However the dog chases the cat."},
		{"indirect object", func() Element {
			c := f.CreateClause("John", "give", f.CreateNounPhrase("the", "bone"))
			c.SetIndirectObject(f.CreateNounPhrase("Mary", nil))
			return c
		}, "John gives Mary the bone."},
		{"who indirect object", func() Element {
			c := f.CreateClause("John", "give", f.CreateNounPhrase("the", "bone"))
			c.SetIndirectObject(f.CreateNounPhrase("Mary", nil))
			c.Features().Set(FeatInterrogative, InterrogWhoIndirectObject)
			return c
		}, "Who does John give the bone to?"},
		{"how many", func() Element {
			c := dogChasesCat(f)
			c.Subjects()[0].Features().Set(FeatNumber, NumberPlural)
			c.Features().Set(FeatInterrogative, InterrogHowMany)
			return c
		}, "How many dogs chase the cat?"},
		{"several subjects", func() Element {
			c := f.CreateClause("John", "chase", f.CreateNounPhrase("the", "cat"))
			c.AddSubject(f.CreateNounPhrase("Mary", nil))
			c.AddSubject(f.CreateNounPhrase("Bill", nil))
			return c
		}, "John, Mary and Bill chase the cat."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RealiseSentence(tt.build()); got != tt.want {
				t.Errorf("RealiseSentence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRealiseString(t *testing.T) {
	r := newRealiser(t, "en")
	s := NewString("the cat")
	if got := r.Realise(s); got != Element(s) {
		t.Fatalf("Realise(string leaf) = %v, want the leaf itself", got)
	}
	if got := r.Realise(r.Realise(s)); got != Element(s) || s.Text != "the cat" {
		t.Errorf("realising twice changed the leaf: %q", s.Text)
	}
}

func TestPronounTables(t *testing.T) {
	for _, lang := range []Language{English(), French()} {
		table := lang.Pronouns()
		for _, n := range []Number{NumberSingular, NumberPlural} {
			for pos := 0; pos < numPositions; pos++ {
				for col := 0; col < numColumns; col++ {
					if table.Cell(n, pos, col) == "" {
						t.Errorf("%s: empty cell [%s][%d][%d]", lang.Tag(), n, pos, col)
					}
				}
			}
		}
	}

	tests := []struct {
		feats Features
		want  string
	}{
		{Features{FeatFunction: FuncSubject}, "he"},
		{Features{FeatFunction: FuncObject}, "him"},
		{Features{FeatReflexive: true}, "himself"},
		{Features{FeatPossessive: true}, "his"},
		{Features{FeatFunction: FuncObject, FeatNumber: NumberPlural}, "them"},
	}
	for _, tt := range tests {
		w := NewInflectedWord(NewWord("he", CatPronoun))
		for k, v := range tt.feats {
			w.Features().Set(k, v)
		}
		first, second := englishPronouns.Resolve(w), englishPronouns.Resolve(w)
		if first != second {
			t.Errorf("Resolve(he, %v) = %q then %q", tt.feats, first, second)
		}
		if first != tt.want {
			t.Errorf("Resolve(he, %v) = %q, want %q", tt.feats, first, tt.want)
		}
	}
}

func TestEnglishCoordination(t *testing.T) {
	r := newRealiser(t, "en")
	f := r.Factory()
	fruit := f.CreateCoordinatedPhrase(
		f.CreateNounPhrase("a", "apple"),
		f.CreateNounPhrase("a", "pear"),
		f.CreateNounPhrase("a", "banana"),
	)
	c := f.CreateClause("John", "eat", fruit)
	if got, want := r.RealiseSentence(c), "John eats an apple, a pear and a banana."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnglishSentences(t *testing.T) {
	r := newRealiser(t, "en")
	f := r.Factory()
	para := NewDocument(CatParagraph,
		f.CreateSentence(dogChasesCat(f)),
		f.CreateSentence(f.CreateClause("John", "go", nil)),
	)
	if got, want := r.RealiseSentence(para), "The dog chases the cat. John goes."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTokens(t *testing.T) {
	r := newRealiser(t, "en")
	tokens := r.Tokens(dogChasesCat(r.Factory()))
	var words []string
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	if got := strings.Join(words, " "); got != "the dog chases the cat" {
		t.Fatalf("Tokens = %q, want %q", got, "the dog chases the cat")
	}
	want := []Token{
		{Text: "the", Category: CatDeterminer, Function: FuncSpecifier},
		{Text: "dog", Category: CatNoun, Function: FuncSubject},
		{Text: "chases", Category: CatVerb, Function: FuncVerbPhrase},
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("Tokens[%d] = %+v, want %+v", i, tokens[i], w)
		}
	}
}

func TestJoinLeaves(t *testing.T) {
	leaf := func(text string, cat Category) *StringElement {
		return &StringElement{node: node{category: cat}, Text: text}
	}
	tests := []struct {
		leaves []*StringElement
		want   string
	}{
		{[]*StringElement{leaf("l'", CatDeterminer), leaf("homme", CatNoun)}, "l'homme"},
		{[]*StringElement{leaf("the", CatDeterminer), leaf("boys'", CatNoun), leaf("dog", CatNoun)}, "the boys' dog"},
		{[]*StringElement{leaf("apples", CatNoun), leaf(",", CatCanned), leaf("", CatNoun), leaf("pears", CatNoun)}, "apples, pears"},
	}
	for _, tt := range tests {
		if got := JoinLeaves(tt.leaves); got != tt.want {
			t.Errorf("JoinLeaves = %q, want %q", got, tt.want)
		}
	}
}

func TestInflectionTable(t *testing.T) {
	r := newRealiser(t, "en")
	if r.InflectionTable(" ", CatNoun) != nil {
		t.Error("InflectionTable of a blank base: want nil")
	}
	table := r.InflectionTable("go", CatVerb)
	// two tenses by six cells, then the two participles
	if len(table.Cells) != 14 {
		t.Fatalf("len(Cells) = %d, want 14", len(table.Cells))
	}
	if c := table.Cells[2]; c.Label != "present third singular" || c.Form != "goes" {
		t.Errorf("Cells[2] = %q %q, want %q %q", c.Label, c.Form, "present third singular", "goes")
	}
	want := []string{"go", "goes", "went", "going", "gone"}
	if got := table.Forms(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Forms() = %v, want %v", got, want)
	}
}
