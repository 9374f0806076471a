// Package parser splits a free-form full name into salutation, given name,
// initials, family name, suffix and nickname.
package parser

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/f3rmion/nameparts/internal/dictionary"
	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/f3rmion/nameparts/internal/textcase"
	"go.uber.org/zap"
)

// nickname matches the first parenthesized or double-quoted span. Single
// quotes are left alone since they appear inside surnames (O'Brien, N'Diaye).
var nickname = regexp.MustCompile(`\(.*?\)|".*?"`)

// Parser turns raw name strings into NameRecords. A Parser is immutable after
// construction and safe for concurrent use.
type Parser struct {
	dict         *dictionary.Dictionary
	notNicknames map[string]struct{}
	logger       *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithNicknameExclusions lists bracketed or quoted texts that must not be
// taken as nicknames, such as "(ret)" or "(deceased)". Matching ignores case.
func WithNicknameExclusions(words ...string) Option {
	return func(p *Parser) {
		for _, w := range words {
			p.notNicknames[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
		}
	}
}

// WithLogger sets a logger that receives stage decisions at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser backed by dict. A nil dict selects the built-in tables.
func New(dict *dictionary.Dictionary, opts ...Option) *Parser {
	if dict == nil {
		dict = dictionary.Default()
	}
	p := &Parser{
		dict:         dict,
		notNicknames: make(map[string]struct{}),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = sync.OnceValue(func() *Parser {
	return New(dictionary.Default())
})

// Parse parses name with the built-in dictionary.
func Parse(name string) nameparts.NameRecord {
	return defaultParser().Parse(name)
}

// Parse splits a full name into its parts. It never fails: input it cannot
// make sense of yields empty fields.
func (p *Parser) Parse(name string) nameparts.NameRecord {
	var rec nameparts.NameRecord
	fullName := strings.TrimSpace(name)

	// Everything from the first professional suffix onwards is suffix text.
	fullName, suffix := p.splitProfessional(fullName)
	fullName, rec.Nickname = p.extractNickname(fullName)
	suffix = p.liftLineage(suffix, fullName)

	words := breakWords(fullName)

	var salutations []string
	for len(words) > 0 {
		s, ok := p.salutation(words[0])
		if !ok {
			break
		}
		p.logger.Debug("salutation", zap.String("word", words[0]), zap.String("canonical", s))
		salutations = append(salutations, s)
		words = words[1:]
	}
	rec.Salutation = strings.Join(salutations, " ")

	for len(words) > 0 {
		last := words[len(words)-1]
		s, ok := p.lineageSuffix(last, fullName)
		if !ok {
			break
		}
		p.logger.Debug("lineage suffix", zap.String("word", last), zap.String("canonical", s))
		suffix = prependSuffix(s, suffix)
		words = words[:len(words)-1]
	}
	rec.Suffix = strings.TrimSpace(suffix)

	words = cleanWords(words)
	end := len(words)

	var first, initials []string
	i := 0
	for ; i < end-1; i++ {
		word := words[i]
		// A particle opens the family name, unless it is the very first word
		// ("Von Fabella" keeps "Von" as the given name).
		if i != 0 && p.dict.IsCompound(word) {
			p.logger.Debug("compound surname", zap.String("word", word), zap.Int("index", i))
			break
		}
		switch {
		case isInitial(word) && i == 0 && isInitial(words[i+1]):
			first = append(first, textcase.Upper(word))
		case isInitial(word):
			initials = append(initials, textcase.Upper(strings.TrimSuffix(word, ".")))
		default:
			first = append(first, p.fixCase(word))
		}
	}

	switch {
	case end > 1:
		var last, base, compound []string
		for ; i < end; i++ {
			word := words[i]
			if p.dict.IsCompound(word) {
				compound = append(compound, word)
			} else {
				base = append(base, p.fixCase(word))
			}
			last = append(last, p.fixCase(word))
		}
		rec.FirstName = strings.Join(first, " ")
		rec.LastName = strings.Join(last, " ")
		rec.LastNameBase = strings.Join(base, " ")
		rec.LastNameCompound = strings.Join(compound, " ")
	case end == 1:
		// A lone word is taken as a given name.
		rec.FirstName = p.fixCase(words[0])
	}
	rec.Initials = strings.Join(initials, " ")

	return trimRecord(rec)
}

// splitProfessional cuts name at the earliest professional suffix and returns
// the name before it and the suffix text from it to the end.
func (p *Parser) splitProfessional(name string) (string, string) {
	start := -1
	for _, pat := range p.dict.ProfessionalPatterns() {
		loc := pat.Re.FindStringSubmatchIndex(name)
		if loc == nil {
			continue
		}
		if start < 0 || loc[2] < start {
			start = loc[2]
		}
	}
	if start < 0 {
		return name, ""
	}
	p.logger.Debug("professional suffix", zap.String("suffix", name[start:]))
	return name[:start], strings.TrimSpace(name[start:])
}

// liftLineage moves lineage words found in professional suffix text ahead of
// it, so "MD Jr" and a trailing "Jr" before "MD" both read "Jr, MD".
// fullName is the name left once the suffix text and nickname are removed.
func (p *Parser) liftLineage(suffix, fullName string) string {
	if suffix == "" {
		return ""
	}
	var lineage, rest []string
	for _, word := range strings.Fields(suffix) {
		if s, ok := p.lineageSuffix(word, fullName); ok {
			lineage = append(lineage, s)
			continue
		}
		rest = append(rest, word)
	}
	remainder := strings.TrimRight(strings.Join(rest, " "), ", ")
	if len(lineage) == 0 {
		return remainder
	}
	if remainder == "" {
		return strings.Join(lineage, ", ")
	}
	return strings.Join(lineage, ", ") + ", " + remainder
}

// extractNickname removes the first bracketed or double-quoted span from name.
func (p *Parser) extractNickname(name string) (string, string) {
	span := nickname.FindString(name)
	if span == "" {
		return name, ""
	}
	inner := strings.TrimSpace(span[1 : len(span)-1])
	if p.excludedNickname(span, inner) {
		return name, ""
	}
	name = strings.ReplaceAll(name, span, "")
	name = strings.ReplaceAll(name, "  ", " ")
	return name, inner
}

func (p *Parser) excludedNickname(span, inner string) bool {
	if _, ok := p.notNicknames[strings.ToLower(span)]; ok {
		return true
	}
	_, ok := p.notNicknames[strings.ToLower(inner)]
	return ok
}

// salutation reports the canonical honorific for word, ignoring periods.
func (p *Parser) salutation(word string) (string, bool) {
	return p.dict.Salutation(strings.ReplaceAll(word, ".", ""))
}

// lineageSuffix reports whether word is a generational suffix. "Senior" and
// "Junior" double as given names, so they only count when the name has at
// least three words and carries no other lineage suffix.
func (p *Parser) lineageSuffix(word, fullName string) (string, bool) {
	key := strings.TrimRight(strings.ReplaceAll(strings.ToLower(word), ".", ""), ",")
	canonical, ok := p.dict.LineageSuffix(key)
	if !ok {
		return "", false
	}
	if key != "senior" && key != "junior" {
		return canonical, true
	}
	if textcase.WordCount(fullName) < 3 {
		return "", false
	}
	for _, pat := range p.dict.LineagePatterns() {
		if pat.Text == canonical {
			continue
		}
		if pat.Re.MatchString(fullName) {
			return "", false
		}
	}
	return canonical, true
}

func (p *Parser) fixCase(word string) string {
	return textcase.NormalizeCase(word, p.dict)
}

// breakWords splits name on whitespace, dropping bare commas.
func breakWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if w != "," {
			words = append(words, w)
		}
	}
	return words
}

// cleanWords strips trailing commas and drops stray single punctuation marks.
func cleanWords(words []string) []string {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSuffix(strings.TrimSpace(w), ",")
		if utf8.RuneCountInString(w) == 1 && !textcase.IsAllLetters(w) {
			continue
		}
		if strings.TrimSpace(w) == "" {
			continue
		}
		cleaned = append(cleaned, w)
	}
	return cleaned
}

// isInitial reports whether word is a single letter, optionally followed by a period.
func isInitial(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	if !unicode.IsLetter(r) {
		return false
	}
	return size == len(word) || word[size:] == "."
}

func prependSuffix(s, suffix string) string {
	if suffix == "" {
		return s
	}
	return s + ", " + suffix
}

func trimRecord(r nameparts.NameRecord) nameparts.NameRecord {
	r.Salutation = strings.TrimSpace(r.Salutation)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.Initials = strings.TrimSpace(r.Initials)
	r.LastName = strings.TrimSpace(r.LastName)
	r.LastNameBase = strings.TrimSpace(r.LastNameBase)
	r.LastNameCompound = strings.TrimSpace(r.LastNameCompound)
	r.Suffix = strings.TrimSpace(r.Suffix)
	r.Nickname = strings.TrimSpace(r.Nickname)
	return r
}
