// Package textcase provides Unicode-aware letter classification and the
// capitalization policy applied to individual name tokens.
package textcase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// camelHump matches an interior case transition between letters, as in
// "McDonald" or "MacElroy".
var camelHump = regexp.MustCompile(`\p{L}(\p{Lu}*\p{Ll}\p{Ll}*\p{Lu}|\p{Ll}*\p{Lu}\p{Lu}*\p{Ll})\p{L}*`)

// IsAllLetters reports whether every rune in s is a letter.
// The empty string satisfies it.
func IsAllLetters(s string) bool {
	return every(s, unicode.IsLetter)
}

// IsAllLower reports whether every rune in s is a lowercase letter.
// The empty string satisfies it.
func IsAllLower(s string) bool {
	return every(s, unicode.IsLower)
}

// IsAllUpper reports whether every rune in s is an uppercase letter.
// The empty string satisfies it.
func IsAllUpper(s string) bool {
	return every(s, unicode.IsUpper)
}

func every(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// WordCount returns the number of whitespace-separated runs in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Upper maps s to upper case using Unicode rules. The result has as many
// runes as s: where full case mapping would expand a rune ("ß", "ﬁ"), the
// simple per-rune mapping is used instead.
func Upper(s string) string {
	// Casers carry state and are not shared between goroutines.
	return sameLength(s, cases.Upper(language.Und).String(s), unicode.ToUpper)
}

// Lower maps s to lower case using Unicode rules, keeping the rune count.
func Lower(s string) string {
	return sameLength(s, cases.Lower(language.Und).String(s), unicode.ToLower)
}

func sameLength(s, mapped string, simple func(rune) rune) string {
	if utf8.RuneCountInString(mapped) == utf8.RuneCountInString(s) {
		return mapped
	}
	return strings.Map(simple, s)
}

// CapitalizeFirst upper-cases the first rune of s and leaves the rest as given.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return Upper(string(r)) + s[size:]
}

// IsCamelHump reports whether word has an internal case transition that marks
// a compounded proper name.
func IsCamelHump(word string) bool {
	return camelHump.MatchString(word)
}

// CapitalizeSegment capitalizes each separator-delimited part of word,
// leaving camel-hump parts untouched.
func CapitalizeSegment(separator, word string) string {
	parts := strings.Split(word, separator)
	for i, part := range parts {
		if !IsCamelHump(part) {
			parts[i] = CapitalizeFirst(Lower(part))
		}
	}
	return strings.Join(parts, separator)
}
