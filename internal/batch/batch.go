// Package batch parses many names at once across a bounded worker pool.
package batch

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/nameparts/internal/nameparts"
	"github.com/f3rmion/nameparts/internal/partner"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrColumnNotFound is returned when a CSV header lacks the requested column.
var ErrColumnNotFound = errors.New("column not found")

// NameParser is the parsing capability batch needs.
type NameParser interface {
	Parse(name string) nameparts.NameRecord
}

// Options controls a batch run.
type Options struct {
	Workers       int
	SplitPartners bool
	Logger        *zap.Logger
}

// ReadLines returns every non-blank line of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}
	return names, nil
}

// ReadCSVColumn returns the values of the named column. The first record is
// the header; the column name is matched ignoring case and surrounding space.
// Blank cells are skipped.
func ReadCSVColumn(r io.Reader, column string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	idx := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(column)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	var names []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if idx >= len(rec) {
			continue
		}
		if v := strings.TrimSpace(rec[idx]); v != "" {
			names = append(names, v)
		}
	}
	return names, nil
}

// Expand applies partner splitting to each input, keeping order.
func Expand(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, partner.SplitJointName(n)...)
	}
	return out
}

// ParseAll parses names with p and returns results in input order. With
// SplitPartners set, joint names are divided first and each person becomes
// its own result. It stops early when ctx is cancelled.
func ParseAll(ctx context.Context, p NameParser, names []string, opts Options) ([]nameparts.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	if opts.SplitPartners {
		before := len(names)
		names = Expand(names)
		logger.Debug("partner split", zap.Int("inputs", before), zap.Int("names", len(names)))
	}

	results := make([]nameparts.Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = nameparts.Result{Input: name, Record: p.Parse(name)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parsing names: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parsing names: %w", err)
	}

	logger.Info("batch parsed", zap.Int("names", len(results)), zap.Int("workers", workers))
	return results, nil
}
