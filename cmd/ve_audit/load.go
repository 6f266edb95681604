package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/records"
	"github.com/jonathan/ve-auditor/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load-occupations",
	Short: "Load DOT occupation records into PostgreSQL",
	Long: "Reads occupation records from --records or --workbook and upserts them into the dot_occupations " +
		"table at database_url, so later runs can use PostgreSQL as their record source.",
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var recs *store.Static
	switch {
	case recordsPath != "":
		recs, err = store.LoadJSONFile(recordsPath)
		if err != nil {
			return err
		}
	case a.cfg.Workbook != "":
		wb, err := store.OpenWorkbook(a.cfg.Workbook, sheetName, a.logger)
		if err != nil {
			return err
		}
		recs = wb.Static
	default:
		return errors.New("nothing to load: set --records or --workbook")
	}

	conn, err := a.database(ctx)
	if err != nil {
		return err
	}

	loaded := 0
	err = recs.Each(func(code dotcode.Code, record records.Record) error {
		if err := conn.UpsertOccupation(ctx, code.Formatted, record); err != nil {
			return err
		}
		loaded++
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("loaded occupations", zap.Int("count", loaded))
	return writeOutput(cmd, "", map[string]int{"loaded": loaded})
}
