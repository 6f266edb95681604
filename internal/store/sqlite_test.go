package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDOT(t *testing.T) *SQLite {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE DOT (
		Ncode INTEGER PRIMARY KEY,
		Code TEXT,
		Title TEXT,
		StrengthNum INTEGER,
		SVPNum INTEGER
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO DOT (Ncode, Code, Title, StrengthNum, SVPNum) VALUES
		(249587018, '249.587-018', 'DOCUMENT PREPARER, MICROFILMING', 1, 2),
		(205367014, '205.367-014', 'CHARGE-ACCOUNT CLERK', 1, 4),
		(1061010, NULL, 'ARCHITECT', 1, 8)`)
	require.NoError(t, err)

	return NewSQLite(db, nil)
}

func TestSQLite_Lookup(t *testing.T) {
	s := setupDOT(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		code  string
		title string
	}{
		{"formatted code", "249.587-018", "DOCUMENT PREPARER, MICROFILMING"},
		{"numeric code", "205367014", "CHARGE-ACCOUNT CLERK"},
		{"ncode fallback", "001.061-010", "ARCHITECT"},
		{"unpadded ncode", "1061010", "ARCHITECT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := s.Lookup(ctx, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.title, rec.String("Title"))
		})
	}

	rec, err := s.Lookup(ctx, "205.367-014")
	require.NoError(t, err)
	svp, _ := rec.Int("SVPNum")
	assert.Equal(t, 4, svp)
}

func TestSQLite_LookupNotFound(t *testing.T) {
	s := setupDOT(t)

	_, err := s.Lookup(context.Background(), "999.999-999")
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = s.Lookup(context.Background(), "")
	assert.Error(t, err)
}

func TestOpenSQLite_MissingFile(t *testing.T) {
	_, err := OpenSQLite(context.Background(), t.TempDir()+"/missing.db", nil)
	assert.Error(t, err)
}
