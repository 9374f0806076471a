// Package nameparts provides the core types shared by the name parser, the
// store and the output formatters.
package nameparts

// NameRecord holds the semantic parts of a parsed full name.
// Absent parts are empty strings, never missing fields.
type NameRecord struct {
	Salutation       string `yaml:"salutation" json:"salutation"`                 // Canonical honorific (e.g., "Dr")
	FirstName        string `yaml:"first_name" json:"first_name"`                 // Given name, may hold leading initials
	Initials         string `yaml:"initials" json:"initials"`                     // Middle initials, space-separated, no periods
	LastName         string `yaml:"last_name" json:"last_name"`                   // Full surname phrase
	LastNameBase     string `yaml:"last_name_base" json:"last_name_base"`         // Surname without particles
	LastNameCompound string `yaml:"last_name_compound" json:"last_name_compound"` // Particles only (e.g., "van der")
	Suffix           string `yaml:"suffix" json:"suffix"`                         // Lineage and professional suffixes
	Nickname         string `yaml:"nickname" json:"nickname"`                     // Text found in parentheses or double quotes
}

// FieldName identifies one part of a NameRecord.
type FieldName string

const (
	FieldSalutation       FieldName = "salutation"
	FieldFirstName        FieldName = "first_name"
	FieldInitials         FieldName = "initials"
	FieldLastName         FieldName = "last_name"
	FieldLastNameBase     FieldName = "last_name_base"
	FieldLastNameCompound FieldName = "last_name_compound"
	FieldSuffix           FieldName = "suffix"
	FieldNickname         FieldName = "nickname"
)

// Fields lists every part in display order.
var Fields = []FieldName{
	FieldSalutation,
	FieldFirstName,
	FieldInitials,
	FieldLastName,
	FieldLastNameBase,
	FieldLastNameCompound,
	FieldSuffix,
	FieldNickname,
}

// Label returns a human-readable label for the field.
func (f FieldName) Label() string {
	switch f {
	case FieldSalutation:
		return "Salutation"
	case FieldFirstName:
		return "First name"
	case FieldInitials:
		return "Initials"
	case FieldLastName:
		return "Last name"
	case FieldLastNameBase:
		return "Base"
	case FieldLastNameCompound:
		return "Compound"
	case FieldSuffix:
		return "Suffix"
	case FieldNickname:
		return "Nickname"
	default:
		return string(f)
	}
}

// Get returns the value stored for field f.
func (r NameRecord) Get(f FieldName) string {
	switch f {
	case FieldSalutation:
		return r.Salutation
	case FieldFirstName:
		return r.FirstName
	case FieldInitials:
		return r.Initials
	case FieldLastName:
		return r.LastName
	case FieldLastNameBase:
		return r.LastNameBase
	case FieldLastNameCompound:
		return r.LastNameCompound
	case FieldSuffix:
		return r.Suffix
	case FieldNickname:
		return r.Nickname
	default:
		return ""
	}
}

// Values returns the field values in the order of Fields.
func (r NameRecord) Values() []string {
	values := make([]string, len(Fields))
	for i, f := range Fields {
		values[i] = r.Get(f)
	}
	return values
}

// IsEmpty reports whether no part of the name was recognized.
func (r NameRecord) IsEmpty() bool {
	return r == NameRecord{}
}

// Result pairs a raw input with the record parsed from it.
type Result struct {
	Input  string     `yaml:"input" json:"input"`
	Record NameRecord `yaml:"record" json:"record"`
}
