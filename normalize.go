package realiser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// foldReplacer strips French diacritics so that sound and ending tests
// can work on plain letters.
var foldReplacer = strings.NewReplacer(
	"\u00e0", "a", // à
	"\u00e2", "a", // â
	"\u00e4", "a", // ä
	"\u00e9", "e", // é
	"\u00e8", "e", // è
	"\u00ea", "e", // ê
	"\u00eb", "e", // ë
	"\u00ee", "i", // î
	"\u00ef", "i", // ï
	"\u00f4", "o", // ô
	"\u00f6", "o", // ö
	"\u00f9", "u", // ù
	"\u00fb", "u", // û
	"\u00fc", "u", // ü
	"\u00ff", "y", // ÿ
	"\u00e7", "c", // ç
	"\u0153", "oe", // œ
	"\u00e6", "ae", // æ
	"\u00c0", "A", // À
	"\u00c9", "E", // É
	"\u00c8", "E", // È
	"\u00ca", "E", // Ê
	"\u00ce", "I", // Î
	"\u00d4", "O", // Ô
	"\u00c7", "C", // Ç
	"\u0152", "Oe", // Œ
)

// Fold removes diacritics and ligatures from s.
func Fold(s string) string {
	return foldReplacer.Replace(norm.NFC.String(s))
}

// NormalizeKey returns the lookup key for a base form: NFC-composed and
// lower-cased, so "Être" and "être" land on the same entry.
func NormalizeKey(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// endsConsonantY matches a consonant followed by a final y ("fly", "dry").
var endsConsonantY = regexp.MustCompile(`[b-df-hj-np-tv-z]y$`)

// endsSibilant matches the endings that take -es ("box", "church").
var endsSibilant = regexp.MustCompile(`(s|x|z|ch|sh)$`)

// doubleFinal repeats the last letter of s ("tug" → "tugg").
func doubleFinal(s string) string {
	r, _ := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return s + string(r)
}

// trimRunes removes n runes from the end of s.
func trimRunes(s string, n int) string {
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:len(runes)-n])
}

// anExceptions start with a vowel letter but a consonant sound.
var anExceptions = []string{"one", "once", "uni", "use", "usu", "uti", "ure", "eu", "ewe", "ubiq", "uran", "uro"}

// silentH start with a consonant letter but a vowel sound.
var silentH = []string{"hour", "honest", "honour", "honor", "heir", "herb"}

// numericPrefix matches the leading digits of a token like "8-year".
var numericPrefix = regexp.MustCompile(`^[0-9]+`)

// requiresAn reports whether the English indefinite article before word
// is "an": a leading vowel sound, including silent h and numbers read
// with a vowel ("an 8", "an 11", "an 18", "an 80").
func requiresAn(word string) bool {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return false
	}
	for _, p := range silentH {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	if isVowel([]rune(lower)[0]) {
		for _, p := range anExceptions {
			if strings.HasPrefix(lower, p) {
				return false
			}
		}
		return true
	}
	if digits := numericPrefix.FindString(lower); digits != "" {
		return anNumber(digits)
	}
	return false
}

// anNumber tells whether the spoken form of the number starts with a vowel.
func anNumber(digits string) bool {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	if digits[0] == '8' {
		return true
	}
	// 11 and 18 and their thousands, millions...
	for n >= 1000 {
		if n < 1000000 && (n/1000 == 11 || n/1000 == 18) {
			return true
		}
		n /= 1000
	}
	return n == 11 || n == 18
}

// elidable reports whether a French clitic before word loses its vowel:
// the next word starts with a vowel sound or a mute h.
func elidable(word string) bool {
	f := strings.ToLower(Fold(word))
	if f == "" {
		return false
	}
	r := []rune(f)[0]
	if isVowel(r) || r == 'y' && len(f) > 1 && !isVowel([]rune(f)[1]) {
		return true
	}
	if r == 'h' {
		for _, aspirated := range aspiratedH {
			if strings.HasPrefix(f, aspirated) {
				return false
			}
		}
		return true
	}
	return false
}

// aspiratedH lists common words whose h blocks elision ("le héros").
var aspiratedH = []string{"haricot", "hero", "hibou", "hache", "haine", "hasard", "haut", "honte", "huit", "hors", "hamac", "hollande"}
