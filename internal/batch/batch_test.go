package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/f3rmion/nameparts/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	names, err := ReadLines(strings.NewReader("John Smith\n\n  Jane Doe  \r\n\t\nMr Bob Jones"))
	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "Jane Doe", "Mr Bob Jones"}, names)
}

func TestReadCSVColumn(t *testing.T) {
	t.Parallel()

	input := "id, Full Name ,email\n1,John Smith,j@example.com\n2,,x@example.com\n3,\"Smith, John\",s@example.com\n4\n"

	tests := []struct {
		name    string
		column  string
		want    []string
		wantErr error
	}{
		{name: "case insensitive header", column: "full name", want: []string{"John Smith", "Smith, John"}},
		{name: "missing column", column: "surname", wantErr: ErrColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadCSVColumn(strings.NewReader(input), tt.column)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCSVColumnEmpty(t *testing.T) {
	t.Parallel()

	got, err := ReadCSVColumn(strings.NewReader(""), "name")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseAllKeepsOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 200)
	for i := 0; i < 100; i++ {
		names = append(names, "John Smith", "Dr Jane Q. Doe")
	}

	results, err := ParseAll(context.Background(), parser.New(nil), names, Options{Workers: 8})
	require.NoError(t, err)
	require.Len(t, results, len(names))

	for i, r := range results {
		assert.Equal(t, names[i], r.Input)
		if i%2 == 0 {
			assert.Equal(t, "Smith", r.Record.LastName)
		} else {
			assert.Equal(t, "Doe", r.Record.LastName)
			assert.Equal(t, "Q", r.Record.Initials)
		}
	}
}

func TestParseAllSplitPartners(t *testing.T) {
	t.Parallel()

	results, err := ParseAll(context.Background(), parser.New(nil),
		[]string{"Mr and Mrs John Smith", "Jane Doe"},
		Options{Workers: 2, SplitPartners: true})
	require.NoError(t, err)

	inputs := make([]string, len(results))
	for i, r := range results {
		inputs[i] = r.Input
	}
	assert.Equal(t, []string{"Mr John Smith", "Mrs John Smith", "Jane Doe"}, inputs)
	assert.Equal(t, "Mrs", results[1].Record.Salutation)
}

type stubParser struct{}

func (stubParser) Parse(name string) nameparts.NameRecord {
	return nameparts.NameRecord{LastName: name}
}

func TestParseAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseAll(ctx, stubParser{}, []string{"a", "b"}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseAllEmpty(t *testing.T) {
	t.Parallel()

	results, err := ParseAll(context.Background(), stubParser{}, nil, Options{Workers: 0})
	require.NoError(t, err)
	assert.Empty(t, results)
}
