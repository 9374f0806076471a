// Package dictionary holds the word lists the name parser consults:
// salutations and their spellings, professional and lineage suffixes,
// surname particles, and vowels.
package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultData []byte

// ErrEmptyTable is returned when a loaded word list leaves a required table empty.
var ErrEmptyTable = errors.New("dictionary table is empty")

// Salutation maps a canonical honorific to the spellings that stand for it.
type Salutation struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// File is the on-disk YAML layout of a dictionary.
type File struct {
	Salutations []Salutation `yaml:"salutations"`
	Suffixes    struct {
		Professional []string `yaml:"professional"`
		Lineage      []string `yaml:"lineage"`
	} `yaml:"suffixes"`
	Compound []string `yaml:"compound"`
	Vowels   []string `yaml:"vowels"`
}

// Pattern is a suffix together with the expression used to find it in text.
type Pattern struct {
	Text string
	Re   *regexp.Regexp
}

// Dictionary is an immutable set of lookup tables. It is safe for concurrent use.
type Dictionary struct {
	file         File
	salutations  map[string]string // lowercase variant → canonical
	lineage      map[string]string // lowercase suffix → canonical
	professional []Pattern
	lineageWords []Pattern
	compound     map[string]struct{}
	vowels       map[rune]struct{}
}

var loadDefault = sync.OnceValues(func() (*Dictionary, error) {
	return Load(defaultData)
})

// Default returns the built-in dictionary. It is decoded once per process.
func Default() *Dictionary {
	d, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("decoding built-in dictionary: %v", err))
	}
	return d
}

// LoadFromFile loads a dictionary from a YAML file.
func LoadFromFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}
	d, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return d, nil
}

// Load decodes a dictionary from YAML.
func Load(data []byte) (*Dictionary, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing dictionary: %w", err)
	}
	return New(f)
}

// New builds a dictionary from decoded tables.
func New(f File) (*Dictionary, error) {
	switch {
	case len(f.Salutations) == 0:
		return nil, fmt.Errorf("salutations: %w", ErrEmptyTable)
	case len(f.Suffixes.Professional) == 0:
		return nil, fmt.Errorf("professional suffixes: %w", ErrEmptyTable)
	case len(f.Suffixes.Lineage) == 0:
		return nil, fmt.Errorf("lineage suffixes: %w", ErrEmptyTable)
	case len(f.Vowels) == 0:
		return nil, fmt.Errorf("vowels: %w", ErrEmptyTable)
	}

	d := &Dictionary{
		file:        f,
		salutations: make(map[string]string),
		lineage:     make(map[string]string),
		compound:    make(map[string]struct{}),
		vowels:      make(map[rune]struct{}),
	}

	for _, s := range f.Salutations {
		for _, v := range s.Variants {
			key := strings.ToLower(v)
			// First listed canonical wins when a spelling is shared.
			if _, taken := d.salutations[key]; !taken {
				d.salutations[key] = s.Canonical
			}
		}
	}

	for _, s := range f.Suffixes.Professional {
		re, err := regexp.Compile(`(?i)[,\s]+(` + regexp.QuoteMeta(s) + `)(?:$|[^\pL\pN_])`)
		if err != nil {
			return nil, fmt.Errorf("compiling professional suffix %q: %w", s, err)
		}
		d.professional = append(d.professional, Pattern{Text: s, Re: re})
	}

	for _, s := range f.Suffixes.Lineage {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling lineage suffix %q: %w", s, err)
		}
		d.lineageWords = append(d.lineageWords, Pattern{Text: s, Re: re})
		d.lineage[strings.ToLower(s)] = s
	}

	for _, c := range f.Compound {
		d.compound[strings.ToLower(c)] = struct{}{}
	}

	for _, v := range f.Vowels {
		r, size := utf8.DecodeRuneInString(v)
		if r == utf8.RuneError || size != len(v) {
			return nil, fmt.Errorf("vowel %q is not a single character", v)
		}
		d.vowels[unicode.ToLower(r)] = struct{}{}
	}

	return d, nil
}

// Salutation returns the canonical honorific for a spelling variant.
// The lookup is case-insensitive; periods must be removed by the caller.
func (d *Dictionary) Salutation(word string) (string, bool) {
	canonical, ok := d.salutations[strings.ToLower(word)]
	return canonical, ok
}

// LineageSuffix returns the canonical form of a lineage suffix.
func (d *Dictionary) LineageSuffix(word string) (string, bool) {
	canonical, ok := d.lineage[strings.ToLower(word)]
	return canonical, ok
}

// IsCompound reports whether word is a surname particle (van, von, de...).
func (d *Dictionary) IsCompound(word string) bool {
	_, ok := d.compound[strings.ToLower(word)]
	return ok
}

// IsVowel reports whether r is a vowel, ignoring case.
func (d *Dictionary) IsVowel(r rune) bool {
	_, ok := d.vowels[unicode.ToLower(r)]
	return ok
}

// ProfessionalPatterns returns the professional suffixes in dictionary order.
// The returned slice must not be modified.
func (d *Dictionary) ProfessionalPatterns() []Pattern {
	return d.professional
}

// LineagePatterns returns the lineage suffixes in dictionary order.
// The returned slice must not be modified.
func (d *Dictionary) LineagePatterns() []Pattern {
	return d.lineageWords
}

// Tables returns a copy of the decoded tables.
func (d *Dictionary) Tables() File {
	f := File{
		Salutations: make([]Salutation, len(d.file.Salutations)),
		Compound:    append([]string(nil), d.file.Compound...),
		Vowels:      append([]string(nil), d.file.Vowels...),
	}
	for i, s := range d.file.Salutations {
		f.Salutations[i] = Salutation{
			Canonical: s.Canonical,
			Variants:  append([]string(nil), s.Variants...),
		}
	}
	f.Suffixes.Professional = append([]string(nil), d.file.Suffixes.Professional...)
	f.Suffixes.Lineage = append([]string(nil), d.file.Suffixes.Lineage...)
	return f
}

// Marshal encodes the dictionary back to YAML.
func (d *Dictionary) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d.Tables())
	if err != nil {
		return nil, fmt.Errorf("marshaling dictionary: %w", err)
	}
	return out, nil
}

// SaveToFile writes the dictionary as YAML to path.
func (d *Dictionary) SaveToFile(path string) error {
	out, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing dictionary file: %w", err)
	}
	return nil
}
