package realiser

import (
	"errors"
	"strings"
	"testing"
)

func realiseDocument(t *testing.T, tag, doc string) string {
	t.Helper()
	r := newRealiser(t, tag)
	el, err := DecodeDocument(strings.NewReader(doc), r.Factory())
	if err != nil {
		t.Fatalf("DecodeDocument: %v", err)
	}
	return r.RealiseSentence(el)
}

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		doc  string
		want string
	}{
		{
			name: "clause",
			tag:  "en",
			doc: `
subject: {spec: the, head: dog}
verb: chase
object: {spec: a, head: cat}
features: {tense: past, passive: true}
`,
			want: "A cat was chased by the dog.",
		},
		{
			name: "question alias",
			tag:  "en",
			doc: `
type: clause
subject: John
verb: eat
object: {spec: a, head: apple}
features: {question: yes_no}
`,
			want: "Does John eat an apple?",
		},
		{
			name: "json",
			tag:  "en",
			doc:  `{"subject": "Mary", "verb": "go", "features": {"tense": "past"}}`,
			want: "Mary went.",
		},
		{
			name: "coordination and modifiers",
			tag:  "en",
			doc: `
subject: {type: coord, items: [John, Mary]}
verb: {head: eat, post: quickly}
object: {spec: the, head: apple, pre: red, features: {number: plural}}
`,
			want: "John and Mary eat the red apples quickly.",
		},
		{
			name: "french",
			tag:  "fr",
			doc: `
subject: {spec: le, head: femme}
verb: arriver
features: {tense: past, negated: true}
`,
			want: "La femme n'est pas arrivée.",
		},
		{
			name: "paragraph",
			tag:  "en",
			doc: `
type: paragraph
items:
  - {items: [{subject: John, verb: go}]}
  - {items: [{type: text, text: "Mary stays"}]}
`,
			want: "John goes. Mary stays.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := realiseDocument(t, tt.tag, tt.doc); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"syntax", "subject: [John\n"},
		{"unknown field", "subject: John\nverbs: go\n"},
		{"unknown type", "type: gizmo\n"},
		{"word without base", "verb: {type: verb}\n"},
		{"text without text", "type: text\n"},
		{"bad tense", "verb: go\nfeatures: {tense: yesterday}\n"},
		{"bad question", "verb: go\nfeatures: {question: maybe}\n"},
		{"features not a mapping", "verb: go\nfeatures: [past]\n"},
	}
	for _, tt := range tests {
		_, err := DecodeDocument(strings.NewReader(tt.doc), nil)
		if err == nil {
			t.Errorf("%s: want error", tt.name)
			continue
		}
		if !errors.Is(err, ErrBadDocument) {
			t.Errorf("%s: error %v does not wrap ErrBadDocument", tt.name, err)
		}
	}
}

func TestParseFeature(t *testing.T) {
	tests := []struct {
		key, value string
		want       any
	}{
		{FeatTense, "Past", TensePast},
		{FeatForm, "gerund", FormGerund},
		{FeatNumber, "pl", NumberPlural},
		{FeatPerson, "1", PersonFirst},
		{FeatGender, "f", GenderFeminine},
		{FeatInterrogative, "who_subject", InterrogWhoSubject},
		{FeatFunction, "object", FuncObject},
		{FeatPassive, "true", true},
		{FeatNegated, "false", false},
		{FeatModal, "can", "can"},
	}
	for _, tt := range tests {
		got, err := ParseFeature(tt.key, tt.value)
		if err != nil {
			t.Errorf("ParseFeature(%q, %q): %v", tt.key, tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFeature(%q, %q) = %v (%T), want %v (%T)", tt.key, tt.value, got, got, tt.want, tt.want)
		}
	}
	if _, err := ParseFeature(FeatForm, "subjunctive"); err == nil {
		t.Error("ParseFeature(form, subjunctive): want error")
	}
}
