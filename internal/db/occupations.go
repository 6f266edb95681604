package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/records"
	"github.com/jonathan/ve-auditor/internal/store"
)

var _ store.Source = (*DB)(nil)

// Lookup implements store.Source over dot_occupations.
func (db *DB) Lookup(ctx context.Context, code string) (records.Record, error) {
	c, err := dotcode.Clean(code)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = db.pool.QueryRow(ctx,
		`SELECT record FROM dot_occupations WHERE ncode = $1`,
		c.Ncode,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &store.NotFoundError{Code: c.Formatted}
		}
		return nil, fmt.Errorf("failed to get occupation %s: %w", c.Formatted, err)
	}

	return decodeRecord(raw)
}

// UpsertOccupation stores a raw record under its DOT code.
func (db *DB) UpsertOccupation(ctx context.Context, code string, record records.Record) error {
	c, err := dotcode.Clean(code)
	if err != nil {
		return err
	}
	content, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal occupation record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO dot_occupations (ncode, code, title, record)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (ncode) DO UPDATE SET code = $2, title = $3, record = $4, updated_at = NOW()`,
		c.Ncode, c.Formatted, record.String("Title", "title"), content,
	)
	if err != nil {
		return fmt.Errorf("failed to save occupation %s: %w", c.Formatted, err)
	}
	return nil
}

// decodeRecord keeps numbers as json.Number so integer codes survive.
func decodeRecord(raw []byte) (records.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec records.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal occupation record: %w", err)
	}
	return rec, nil
}
