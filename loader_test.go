package realiser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLexicon = `
! test lexicon
go|verb|V1|present3s=goes;past=went;past_participle=gone
finir|v|V2|infl=group2
être|verb|V3|copular;present=suis,es,est,sommes,êtes,sont
colour|noun|N1|variant=color
femme|n||gender=f
`

func TestReadLexicon(t *testing.T) {
	lex, err := ReadLexicon(strings.NewReader(sampleLexicon))
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if lex.Len() != 5 {
		t.Errorf("Len() = %d, want 5", lex.Len())
	}
	goVerb := lex.LookupByID("V1")
	if goVerb == nil || goVerb.Base != "go" {
		t.Fatalf("LookupByID(%q) = %v, want go(verb)", "V1", goVerb)
	}
	if s, ok := goVerb.Irregular(FormKey{Tense: TensePast}); !ok || s != "went" {
		t.Errorf("go past = %q, want %q", s, "went")
	}
	if w := lookupWord(lex, "finir", CatVerb); w == nil || w.DefaultClass != InflGroup2 {
		t.Errorf("finir class = %v, want %s", w, InflGroup2)
	}
	etre := lookupWord(lex, "Être", CatVerb)
	if etre == nil {
		t.Fatal("lookup of Être failed")
	}
	if !etre.Features().Bool(LexCopular) {
		t.Error("être: copular flag not set")
	}
	if s, _ := etre.Irregular(FormKey{Tense: TensePresent, Person: PersonFirst, Number: NumberPlural}); s != "sommes" {
		t.Errorf("être present 1p = %q, want %q", s, "sommes")
	}
	if w := lookupWord(lex, "color", CatNoun); w == nil || w.Base != "colour" {
		t.Errorf("variant lookup of color = %v, want colour(noun)", w)
	}
	if w := lookupWord(lex, "femme", CatNoun); w == nil || w.Features().Gender() != GenderFeminine {
		t.Errorf("femme gender = %v, want feminine", w)
	}
	if got := lex.Lookup("go", CatNoun); len(got) != 0 {
		t.Errorf("Lookup(go, noun) = %v, want none", got)
	}
}

func TestReadLexiconErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no category", "dog"},
		{"unknown category", "dog|animal"},
		{"unknown flag", "dog|noun||fluffy"},
		{"unknown attribute", "dog|noun||colour=brown"},
		{"short paradigm", "être|verb||present=suis,es,est"},
		{"short imperative", "être|verb||imperative=sois"},
	}
	for _, tt := range tests {
		_, err := ReadLexicon(strings.NewReader("! header\n" + tt.input))
		if err == nil {
			t.Errorf("%s: want error", tt.name)
			continue
		}
		if !errors.Is(err, ErrBadLexiconLine) {
			t.Errorf("%s: error %v does not wrap ErrBadLexiconLine", tt.name, err)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("%s: error %q does not name line 2", tt.name, err)
		}
	}
}

func TestLoadLexicon(t *testing.T) {
	if _, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.lex")); err == nil {
		t.Error("LoadLexicon of a missing file: want error")
	}
	path := filepath.Join(t.TempDir(), "extra.lex")
	if err := os.WriteFile(path, []byte("go|verb|X1|past=goed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	extra, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	lex, err := DefaultLexicon(English())
	if err != nil {
		t.Fatalf("DefaultLexicon: %v", err)
	}
	before := lex.Len()
	lex.Merge(extra)
	if lex.Len() != before {
		t.Errorf("Merge replaced nothing: Len %d -> %d", before, lex.Len())
	}
	w := lookupWord(lex, "go", CatVerb)
	if s, _ := w.Irregular(FormKey{Tense: TensePast}); s != "goed" {
		t.Errorf("merged go past = %q, want %q", s, "goed")
	}
	if lex.LookupByID("E0403") != nil {
		t.Error("replaced entry still indexed by its old id")
	}
}

func TestDefaultLexicon(t *testing.T) {
	for _, lang := range []Language{English(), French()} {
		lex, err := DefaultLexicon(lang)
		if err != nil {
			t.Fatalf("DefaultLexicon(%s): %v", lang.Tag(), err)
		}
		if lex.Len() == 0 {
			t.Errorf("DefaultLexicon(%s) is empty", lang.Tag())
		}
		t.Logf("%s: %d entries", lang.Tag(), lex.Len())
	}
	fr, _ := DefaultLexicon(French())
	if w := lookupWord(fr, "aller", CatVerb); w == nil || !w.Features().Bool(LexAuxEtre) {
		t.Errorf("aller: aux_etre flag missing")
	}
}

func TestLanguageFor(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"en-GB", "en"},
		{"fr", "fr"},
		{"fr-CA", "fr"},
	}
	for _, tt := range tests {
		lang, err := LanguageFor(tt.tag)
		if err != nil {
			t.Errorf("LanguageFor(%q): %v", tt.tag, err)
			continue
		}
		if got := lang.Tag().String(); got != tt.want {
			t.Errorf("LanguageFor(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
	if _, err := LanguageFor("no such tag!"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("LanguageFor of a malformed tag: err = %v, want ErrUnknownLanguage", err)
	}
	names := Languages()
	if names["fr"] != "français" || names["en"] != "English" {
		t.Errorf("Languages() = %v", names)
	}
}

func TestFormKey(t *testing.T) {
	k := FormKey{Tense: TensePresent, Person: PersonThird, Number: NumberSingular}
	if got, want := k.Key(), "form[tense=present,person=third,number=singular]"; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	// a usage-site override beats the lexicon form
	r := newRealiser(t, "en")
	got := r.Inflect("go", CatVerb, Features{
		FeatTense:  TensePresent,
		FeatPerson: PersonThird,
		FeatNumber: NumberSingular,
		k.Key():    "gos",
	})
	if got != "gos" {
		t.Errorf("override: got %q, want %q", got, "gos")
	}
}
