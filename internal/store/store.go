// Package store provides lookups of raw DOT occupation records by code.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/records"
)

// Source finds one occupation record by DOT code. Codes may be formatted
// (XXX.XXX-XXX) or numeric.
type Source interface {
	Lookup(ctx context.Context, code string) (records.Record, error)
}

// NotFoundError reports that no record exists for a code.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no occupation record for DOT code %s", e.Code)
}

// Static is an in-memory Source keyed by Ncode.
type Static struct {
	records map[int]records.Record
}

// NewStatic indexes recs by their Code or Ncode column. Records without a
// parseable code are skipped.
func NewStatic(recs []records.Record) *Static {
	s := &Static{records: make(map[int]records.Record, len(recs))}
	for _, r := range recs {
		if code, ok := recordCode(r); ok {
			s.records[code.Ncode] = r
		}
	}
	return s
}

// LoadJSON reads a JSON array of occupation records.
func LoadJSON(r io.Reader) (*Static, error) {
	var recs []records.Record
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("failed to parse occupation records: %w", err)
	}
	return NewStatic(recs), nil
}

// LoadJSONFile reads a JSON array of occupation records from path.
func LoadJSONFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadJSON(f)
}

// Len returns the number of indexed records.
func (s *Static) Len() int {
	return len(s.records)
}

// Each calls fn for every record in ascending Ncode order and stops at the
// first error.
func (s *Static) Each(fn func(code dotcode.Code, record records.Record) error) error {
	ncodes := make([]int, 0, len(s.records))
	for n := range s.records {
		ncodes = append(ncodes, n)
	}
	sort.Ints(ncodes)
	for _, n := range ncodes {
		if err := fn(dotcode.Code{Ncode: n, Formatted: dotcode.Format(n)}, s.records[n]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup implements Source.
func (s *Static) Lookup(ctx context.Context, code string) (records.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := dotcode.Clean(code)
	if err != nil {
		return nil, err
	}
	r, ok := s.records[c.Ncode]
	if !ok {
		return nil, &NotFoundError{Code: c.Formatted}
	}
	return r, nil
}

func recordCode(r records.Record) (dotcode.Code, bool) {
	for _, key := range []string{"Code", "dotCode", "code", "Ncode", "ncode"} {
		raw := r.Raw(key)
		if raw == "" {
			continue
		}
		if c, err := dotcode.Clean(raw); err == nil {
			return c, true
		}
	}
	return dotcode.Code{}, false
}
