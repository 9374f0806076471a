// Package format renders parse results as JSON, YAML, CSV, TSV, an aligned
// table, or a user-supplied template.
package format

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Template Format = "template"
)

// DefaultTemplate is used by the template format when none is configured.
const DefaultTemplate = `{{.LastName}}{{if .FirstName}}, {{.FirstName}}{{end}}{{if .Initials}} {{.Initials}}{{end}}`

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

var headerStyle = lipgloss.NewStyle().Bold(true)

// Formatter writes results in one format.
type Formatter struct {
	format   Format
	template *template.Template
}

// New creates a formatter. tmpl is only used by the template format; an
// empty tmpl selects DefaultTemplate.
func New(format, tmpl string) (*Formatter, error) {
	f := &Formatter{format: Format(strings.ToLower(strings.TrimSpace(format)))}

	switch f.format {
	case JSON, YAML, CSV, TSV, Table:
	case Template:
		if tmpl == "" {
			tmpl = DefaultTemplate
		}
		t, err := template.New("record").Option("missingkey=error").Parse(tmpl)
		if err != nil {
			return nil, fmt.Errorf("parsing template: %w", err)
		}
		f.template = t
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return f, nil
}

// Format returns the formatter's encoding.
func (f *Formatter) Format() Format {
	return f.format
}

// Write renders results to w.
func (f *Formatter) Write(w io.Writer, results []nameparts.Result) error {
	switch f.format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case CSV:
		return writeDelimited(w, ',', results)
	case TSV:
		return writeDelimited(w, '\t', results)
	case Table:
		return writeTable(w, results)
	case Template:
		return f.writeTemplate(w, results)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f.format)
}

// TemplateData is the value templates are executed against.
type TemplateData struct {
	Input string
	nameparts.NameRecord
}

func (f *Formatter) writeTemplate(w io.Writer, results []nameparts.Result) error {
	for _, r := range results {
		if err := f.template.Execute(w, TemplateData{Input: r.Input, NameRecord: r.Record}); err != nil {
			return fmt.Errorf("executing template for %q: %w", r.Input, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func header() []string {
	cols := []string{"input"}
	for _, field := range nameparts.Fields {
		cols = append(cols, string(field))
	}
	return cols
}

func writeDelimited(w io.Writer, comma rune, results []nameparts.Result) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		row := append([]string{r.Input}, r.Record.Values()...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", r.Input, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTable prints one row per result with columns padded to display width,
// so wide (CJK) and combining characters stay aligned.
func writeTable(w io.Writer, results []nameparts.Result) error {
	labels := []string{"Input"}
	for _, field := range nameparts.Fields {
		labels = append(labels, field.Label())
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = append([]string{r.Input}, r.Record.Values()...)
	}

	widths := make([]int, len(labels))
	for i, l := range labels {
		widths[i] = runewidth.StringWidth(l)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, l := range labels {
		b.WriteString(headerStyle.Render(runewidth.FillRight(l, widths[i])))
		if i < len(labels)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.TrimRight(joinPadded(row, widths), " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func joinPadded(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = runewidth.FillRight(c, widths[i])
	}
	return strings.Join(padded, "  ")
}
