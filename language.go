package realiser

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnknownLanguage is returned when no realiser language matches a tag.
var ErrUnknownLanguage = errors.New("unknown language")

// SyntaxHelper holds the language-specific steps of the syntax stage.
// The shared clause and phrase algorithms call into it.
type SyntaxHelper interface {
	// Complementiser is the default word introducing a subordinate
	// clause ("that", "que").
	Complementiser() string
	// Conjunction is the default coordinating conjunction.
	Conjunction() string
	// AgentPreposition introduces the agent of a passive clause.
	AgentPreposition() string
	// SubjectClauseForm is the verb form of a clause used as a subject.
	SubjectClauseForm() Form
	// Question emits the fronted interrogative material of a clause and
	// may set the element to insert inside the verb group.
	Question(s *SyntaxProcessor, st *ClauseState)
	// TrailingParticle is the word closing a question of type q, if any.
	TrailingParticle(q Interrogative) string
	// VerbGroup builds the tagged verb tokens of a verb phrase.
	VerbGroup(s *SyntaxProcessor, vp *PhraseElement) *VerbGroup
	// PostposedModifier reports whether a noun pre-modifier is placed
	// after the head noun.
	PostposedModifier(mod Element) bool
	// GenderAgreement reports whether determiners, adjectives and past
	// participles agree in gender with their noun.
	GenderAgreement() bool
	// IndirectObjectPreposition introduces a nominal indirect object,
	// which then follows the direct object ("à la fille"). Empty means
	// the bare indirect object comes first ("gives Mary the bone").
	IndirectObjectPreposition() string
}

// MorphologyRules holds the inflection rules of a language, one entry
// point per lexical category, and its morphophonology.
type MorphologyRules interface {
	InflectNoun(w *InflectedWordElement) string
	InflectVerb(w *InflectedWordElement) string
	InflectAdjective(w *InflectedWordElement) string
	InflectAdverb(w *InflectedWordElement) string
	InflectPronoun(w *InflectedWordElement) string
	InflectDeterminer(w *InflectedWordElement) string
	// Pronouns is the personal pronoun table.
	Pronouns() *PronounTable
	// Morphophonology rewrites adjacent realised leaves in place
	// ("a apple" → "an apple", "de le" → "du"). Leaves emptied by a
	// contraction are dropped afterwards.
	Morphophonology(leaves []*StringElement)
}

// Language is one realiser language.
type Language interface {
	SyntaxHelper
	MorphologyRules
	// Tag is the BCP-47 tag of the language.
	Tag() language.Tag
}

var (
	supported = []Language{English(), French()}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.French})
)

// LanguageFor returns the language matching a BCP-47 tag: "en", "en-GB"
// and the like give English, "fr", "fr-CA" French.
func LanguageFor(tag string) (Language, error) {
	if strings.TrimSpace(tag) == "" {
		return English(), nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLanguage, tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}
	return supported[idx], nil
}

// Languages maps the supported tags to their names in their own language.
func Languages() map[string]string {
	out := make(map[string]string, len(supported))
	for _, l := range supported {
		out[l.Tag().String()] = display.Self.Name(l.Tag())
	}
	return out
}
