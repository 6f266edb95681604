package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "dot.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Ncode", "Code", "Title", "StrengthNum"},
		{249587018, "249.587-018", "DOCUMENT PREPARER, MICROFILMING", 1},
		{205367014, "", "CHARGE-ACCOUNT CLERK", 1},
		{"", "", "", ""},
		{"", "", "UNCODED ROW", 2},
	})

	wb, err := OpenWorkbook(path, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", wb.Sheet)
	assert.Equal(t, 2, wb.Len())
	assert.Equal(t, 1, wb.Skipped)

	rec, err := wb.Lookup(context.Background(), "249587018")
	require.NoError(t, err)
	assert.Equal(t, "DOCUMENT PREPARER, MICROFILMING", rec.String("Title"))
	strength, _ := rec.Int("StrengthNum")
	assert.Equal(t, 1, strength)

	rec, err = wb.Lookup(context.Background(), "205.367-014")
	require.NoError(t, err)
	assert.Equal(t, "CHARGE-ACCOUNT CLERK", rec.String("Title"))
}

func TestOpenWorkbook_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "DOT", [][]any{
		{"Code", "Title"},
		{"001.061-010", "ARCHITECT"},
	})

	wb, err := OpenWorkbook(path, "DOT", nil)
	require.NoError(t, err)
	_, err = wb.Lookup(context.Background(), "001.061-010")
	assert.NoError(t, err)

	_, err = OpenWorkbook(path, "Missing", nil)
	assert.Error(t, err)
}

func TestOpenWorkbook_MissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "none.xlsx"), "", nil)
	assert.Error(t, err)
}
