package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = []nameparts.Result{
	{
		Input: "dr john q. public jr.",
		Record: nameparts.NameRecord{
			Salutation: "Dr", FirstName: "John", Initials: "Q",
			LastName: "Public", LastNameBase: "Public", Suffix: "Jr",
		},
	},
	{
		Input:  "李 小龙",
		Record: nameparts.NameRecord{FirstName: "李", LastName: "小龙", LastNameBase: "小龙"},
	},
}

func TestNewUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New("xml", "")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewBadTemplate(t *testing.T) {
	t.Parallel()

	_, err := New("template", "{{.LastName")
	require.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	f, err := New("JSON", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, sample))

	var got []nameparts.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), `"last_name_base": "Public"`)
}

func TestWriteJSONKeepsEmptyFields(t *testing.T) {
	t.Parallel()

	f, err := New("json", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, []nameparts.Result{{Input: ""}}))
	for _, field := range nameparts.Fields {
		assert.Contains(t, buf.String(), `"`+string(field)+`": ""`)
	}
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	f, err := New("yaml", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, sample))

	var got []nameparts.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestWriteDelimited(t *testing.T) {
	t.Parallel()

	f, err := New("csv", "")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, sample[:1]))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "input,salutation,first_name,initials,last_name,last_name_base,last_name_compound,suffix,nickname", lines[0])
	assert.Equal(t, "dr john q. public jr.,Dr,John,Q,Public,Public,,Jr,", lines[1])

	f, err = New("tsv", "")
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, f.Write(&buf, sample[:1]))
	assert.True(t, strings.HasPrefix(buf.String(), "input\tsalutation\t"))
}

func TestWriteTableAlignsWideRunes(t *testing.T) {
	t.Parallel()

	f, err := New("table", "")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, sample))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	// The first-name column starts at the same display offset on both rows.
	first := strings.Index(lines[1], "John")
	second := strings.LastIndex(lines[2], "李")
	require.Positive(t, first)
	require.Positive(t, second)
	assert.Equal(t, runewidth.StringWidth(lines[1][:first]), runewidth.StringWidth(lines[2][:second]))
}

func TestWriteTemplate(t *testing.T) {
	t.Parallel()

	f, err := New("template", "")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, sample[:1]))
	assert.Equal(t, "Public, John Q\n", buf.String())

	f, err = New("template", "{{.Input}} -> {{.Suffix}}")
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, f.Write(&buf, sample[:1]))
	assert.Equal(t, "dr john q. public jr. -> Jr\n", buf.String())
}
