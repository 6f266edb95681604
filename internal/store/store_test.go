package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/records"
)

func TestStatic_Lookup(t *testing.T) {
	s := NewStatic([]records.Record{
		{"Code": "249.587-018", "Title": "DOCUMENT PREPARER, MICROFILMING"},
		{"Ncode": float64(1061010), "Title": "ARCHITECT"},
		{"Title": "NO CODE"},
	})
	assert.Equal(t, 2, s.Len())

	tests := []struct {
		code  string
		title string
	}{
		{"249.587-018", "DOCUMENT PREPARER, MICROFILMING"},
		{"249587018", "DOCUMENT PREPARER, MICROFILMING"},
		{"001.061-010", "ARCHITECT"},
		{"1061010", "ARCHITECT"},
	}
	for _, tt := range tests {
		rec, err := s.Lookup(context.Background(), tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.title, rec.String("Title"), tt.code)
	}
}

func TestStatic_LookupErrors(t *testing.T) {
	s := NewStatic(nil)

	_, err := s.Lookup(context.Background(), "209.587-034")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "209.587-034", notFound.Code)

	_, err = s.Lookup(context.Background(), "not-a-code")
	var invalid *dotcode.InvalidCodeError
	assert.True(t, errors.As(err, &invalid))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Lookup(ctx, "209.587-034")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadJSON(t *testing.T) {
	s, err := LoadJSON(strings.NewReader(`[
		{"Code": "209.587-034", "Title": "MARKER", "StrengthNum": 2, "SVPNum": 2},
		{"Code": "205.367-014", "Title": "CHARGE-ACCOUNT CLERK"}
	]`))
	require.NoError(t, err)

	rec, err := s.Lookup(context.Background(), "209587034")
	require.NoError(t, err)
	n, presence := rec.Int("StrengthNum")
	assert.Equal(t, records.Present, presence)
	assert.Equal(t, 2, n)

	_, err = LoadJSON(strings.NewReader(`{"Code": 1}`))
	assert.Error(t, err)
}

func TestStatic_Each(t *testing.T) {
	s := NewStatic([]records.Record{
		{"Code": "249.587-018", "Title": "DOCUMENT PREPARER, MICROFILMING"},
		{"Ncode": float64(1061010), "Title": "ARCHITECT"},
	})

	var codes []string
	err := s.Each(func(code dotcode.Code, rec records.Record) error {
		codes = append(codes, code.Formatted)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"001.061-010", "249.587-018"}, codes)

	stop := errors.New("stop")
	calls := 0
	err = s.Each(func(dotcode.Code, records.Record) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
