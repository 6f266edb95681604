package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ve-auditor/internal/records"
)

func TestSchema(t *testing.T) {
	ddl := Schema()
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS dot_occupations")
	assert.Contains(t, ddl, "record     JSONB NOT NULL")
}

func TestDecodeRecord(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"Code": "249.587-018", "Ncode": 249587018, "StrengthNum": 1, "Title": "DOCUMENT PREPARER"}`))
	require.NoError(t, err)

	n, presence := rec.Int("Ncode")
	assert.Equal(t, records.Present, presence)
	assert.Equal(t, 249587018, n)
	assert.Equal(t, "249587018", rec.String("Ncode"))
	assert.Equal(t, "DOCUMENT PREPARER", rec.String("Title"))

	_, err = decodeRecord([]byte(`not json`))
	assert.Error(t, err)
}
