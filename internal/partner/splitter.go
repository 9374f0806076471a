// Package partner splits a string naming two or more people, such as
// "John and Jane Smith", into one name per person.
package partner

import "strings"

// SplitJointName returns the individual names in text. "&" is read as "and".
// When the conjunction is the second word, the remaining words are taken as a
// shared surname ("Mr and Mrs John Smith" → "Mr John Smith", "Mrs John Smith").
// The first word and the last two words are never treated as a conjunction, so
// "Acme & Co" stays a single name.
func SplitJointName(text string) []string {
	text = strings.ReplaceAll(text, "&", "and")
	words := strings.Fields(text)

	found := -1
	for i := 1; i < len(words)-2; i++ {
		if strings.EqualFold(words[i], "and") {
			found = i
		}
	}

	switch {
	case found == 1:
		return dividePartners(words)
	case found > 1:
		return dividePeople(words, words[found])
	default:
		return []string{text}
	}
}

// dividePartners pairs the first and third words with the shared remainder.
func dividePartners(words []string) []string {
	shared := strings.Join(words[3:], " ")
	return []string{words[0] + " " + shared, words[2] + " " + shared}
}

// dividePeople splits words at every occurrence of conj, matched exactly.
func dividePeople(words []string, conj string) []string {
	var people, current []string
	flush := func() {
		if len(current) > 0 {
			people = append(people, strings.Join(current, " "))
			current = nil
		}
	}
	for _, w := range words {
		if w == conj {
			flush()
			continue
		}
		current = append(current, w)
	}
	flush()
	return people
}
