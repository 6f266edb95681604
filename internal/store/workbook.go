package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/records"
)

// Workbook is a Source backed by a DOT spreadsheet export. The first row of
// the sheet holds column names matching the DOT table.
type Workbook struct {
	*Static
	Sheet   string
	Skipped int
}

// OpenWorkbook loads sheet from the workbook at path. An empty sheet name
// selects the first sheet.
func OpenWorkbook(path, sheet string, logger *zap.Logger) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return readWorkbook(f, sheet, logger)
}

// ReadWorkbook loads sheet from an xlsx stream.
func ReadWorkbook(r io.Reader, sheet string, logger *zap.Logger) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return readWorkbook(f, sheet, logger)
}

func readWorkbook(f *excelize.File, sheet string, logger *zap.Logger) (*Workbook, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	recs := make([]records.Record, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		rec := make(records.Record, len(header))
		for i, col := range header {
			if col == "" || i >= len(row) {
				continue
			}
			rec[col] = row[i]
		}
		if rec.IsEmpty() {
			continue
		}
		if _, ok := recordCode(rec); !ok {
			skipped++
			continue
		}
		recs = append(recs, rec)
	}

	static := NewStatic(recs)
	wb := &Workbook{Static: static, Sheet: sheet, Skipped: skipped}
	if wb.Skipped > 0 {
		logger.Warn("workbook rows without a usable DOT code were skipped",
			zap.String("sheet", sheet),
			zap.Int("skipped", wb.Skipped))
	}
	logger.Info("loaded occupation workbook", zap.String("sheet", sheet), zap.Int("records", static.Len()))
	return wb, nil
}
