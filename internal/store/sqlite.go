package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/records"
)

const (
	lookupByCode  = `SELECT * FROM DOT WHERE CAST(Code AS TEXT) = ? LIMIT 1`
	lookupByNcode = `SELECT * FROM DOT WHERE Ncode = ? LIMIT 1`
)

// SQLite reads occupations from a DOT SQLite database with a DOT table.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens the database at path read-only.
func OpenSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open DOT database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open DOT database %s: %w", path, err)
	}
	return NewSQLite(db, logger), nil
}

// NewSQLite wraps an existing connection.
func NewSQLite(db *sql.DB, logger *zap.Logger) *SQLite {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLite{db: db, logger: logger}
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Lookup matches the formatted code first, then the numeric Ncode.
func (s *SQLite) Lookup(ctx context.Context, code string) (records.Record, error) {
	c, err := dotcode.Clean(code)
	if err != nil {
		return nil, err
	}

	recs, err := s.query(ctx, lookupByCode, c.Formatted)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		s.logger.Debug("no match on formatted code, trying Ncode", zap.String("code", c.Formatted))
		recs, err = s.query(ctx, lookupByNcode, c.Ncode)
		if err != nil {
			return nil, err
		}
	}
	if len(recs) == 0 {
		return nil, &NotFoundError{Code: c.Formatted}
	}
	return recs[0], nil
}

func (s *SQLite) query(ctx context.Context, query string, args ...any) ([]records.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query DOT database: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read DOT columns: %w", err)
	}

	var out []records.Record
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan DOT row: %w", err)
		}
		rec := make(records.Record, len(columns))
		for i, col := range columns {
			rec[col] = values[i]
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read DOT rows: %w", err)
	}
	return out, nil
}
