package textcase

import (
	"strings"
	"unicode/utf8"
)

// Vowels classifies letters for the two-letter capitalization rule.
type Vowels interface {
	IsVowel(r rune) bool
}

// NormalizeCase applies the name capitalization policy to a single token:
//
//   - dot and hyphen separated parts are capitalized individually
//   - one letter is upper-cased
//   - two letters are upper-cased ("NG", "AE") unless they read as a short
//     word ("Al", "Ty", "Bo"), which gets a leading capital only
//   - three or more letters in a single case are lowered and capitalized;
//     mixed case ("McDonald", "O'Brien") is kept
func NormalizeCase(token string, vowels Vowels) string {
	if strings.Contains(token, ".") {
		token = CapitalizeSegment(".", token)
	}
	if strings.Contains(token, "-") {
		token = CapitalizeSegment("-", token)
	}

	switch n := utf8.RuneCountInString(token); {
	case n == 1:
		token = Upper(token)
	case n == 2:
		token = normalizePair(token, vowels)
	case n >= 3 && (IsAllUpper(token) || IsAllLower(token)):
		token = CapitalizeFirst(Lower(token))
	}
	return token
}

func normalizePair(token string, vowels Vowels) string {
	runes := []rune(token)
	first, second := runes[0], runes[1]
	firstVowel := vowels.IsVowel(first)
	secondVowel := vowels.IsVowel(second)

	// Rules are applied in sequence; a consonant followed by "y" is first
	// upper-cased as a consonant pair and then re-capitalized.
	if firstVowel == secondVowel {
		token = Upper(token)
	}
	if firstVowel && !secondVowel {
		token = CapitalizeFirst(Lower(token))
	}
	if !firstVowel && (secondVowel || strings.EqualFold(string(second), "y")) {
		token = CapitalizeFirst(Lower(token))
	}
	return token
}
