package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/config"
	"github.com/jonathan/ve-auditor/internal/db"
	"github.com/jonathan/ve-auditor/internal/logging"
	"github.com/jonathan/ve-auditor/internal/observability"
	"github.com/jonathan/ve-auditor/internal/profile"
	"github.com/jonathan/ve-auditor/internal/reference"
	"github.com/jonathan/ve-auditor/internal/store"
	"github.com/jonathan/ve-auditor/internal/types"
)

// Flags shared by every subcommand.
var (
	configPath  string
	flagConfig  config.Config
	recordsPath string
	sheetName   string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	pf.StringVar(&flagConfig.DOTDatabase, "dot-database", "", "Path to DOT SQLite database")
	pf.StringVar(&flagConfig.Workbook, "workbook", "", "Path to DOT workbook export (.xlsx)")
	pf.StringVar(&sheetName, "sheet", "", "Workbook sheet name (default: first sheet)")
	pf.StringVar(&recordsPath, "records", "", "Path to JSON array of occupation records")
	pf.StringVar(&flagConfig.DatabaseURL, "database-url", "", "PostgreSQL connection URL")
	pf.StringVar(&flagConfig.GridRules, "grid-rules", "", "Override Medical-Vocational Guidelines JSON")
	pf.StringVar(&flagConfig.Obsolescence, "obsolescence", "", "JSON list of obsolete DOT codes")
	pf.StringVar(&flagConfig.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig.LogFormat, "log-format", "", "Log format: console or json")
	pf.BoolVarP(&flagConfig.Verbose, "verbose", "v", false, "Print summaries to stderr")
}

// app holds what a command needs after configuration is resolved.
type app struct {
	cfg        config.Config
	sourceKind string
	logger     *zap.Logger
	tables     *reference.Tables
	printer    *observability.Printer
	conn       *db.DB
	closers    []func()
}

// Record source kinds.
const (
	sourceNone        = ""
	sourceRecords     = "records"
	sourceDOTDatabase = "dot_database"
	sourceWorkbook    = "workbook"
	sourceDatabaseURL = "database_url"
)

// recordSource picks the record source named by the highest-precedence
// layer, so a source given on the command line beats one from the
// environment. Within a layer the DOT database wins over the workbook,
// which wins over the database URL.
func recordSource(layers ...config.Config) string {
	if recordsPath != "" {
		return sourceRecords
	}
	for _, l := range layers {
		switch {
		case l.DOTDatabase != "":
			return sourceDOTDatabase
		case l.Workbook != "":
			return sourceWorkbook
		case l.DatabaseURL != "":
			return sourceDatabaseURL
		}
	}
	return sourceNone
}

// loadConfig layers flags over the config file, environment and defaults,
// and reports which record source the layers select.
func loadConfig() (config.Config, string, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, sourceNone, err
		}
		fileCfg = *loaded
	}

	env := config.FromEnv()
	cfg := flagConfig.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, sourceNone, err
	}
	return cfg, recordSource(flagConfig, fileCfg, env), nil
}

func newApp() (*app, error) {
	cfg, kind, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	tables, err := reference.Load(reference.Options{
		GridPath:         cfg.GridRules,
		ObsolescencePath: cfg.Obsolescence,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}

	a := &app{cfg: cfg, sourceKind: kind, logger: logger, tables: tables}
	if cfg.Verbose {
		a.printer = observability.NewPrinter(os.Stderr)
	}
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.logger.Sync()
}

// source opens the first configured occupation record source.
func (a *app) source(ctx context.Context) (store.Source, error) {
	switch a.sourceKind {
	case sourceRecords:
		s, err := store.LoadJSONFile(recordsPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case sourceDOTDatabase:
		s, err := store.OpenSQLite(ctx, a.cfg.DOTDatabase, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = s.Close() })
		return s, nil
	case sourceWorkbook:
		wb, err := store.OpenWorkbook(a.cfg.Workbook, sheetName, a.logger)
		if err != nil {
			return nil, err
		}
		return wb, nil
	case sourceDatabaseURL:
		conn, err := a.database(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	default:
		return nil, errors.New("no occupation source configured: set --records, --dot-database, --workbook or --database-url")
	}
}

// database connects to PostgreSQL once and reuses the pool.
func (a *app) database(ctx context.Context) (*db.DB, error) {
	if a.conn != nil {
		return a.conn, nil
	}
	if a.cfg.DatabaseURL == "" {
		return nil, errors.New("database_url is not configured")
	}
	conn, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := conn.Migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	a.conn = conn
	a.closers = append(a.closers, conn.Close)
	return conn, nil
}

// buildProfile looks up code and builds its profile.
func (a *app) buildProfile(ctx context.Context, src store.Source, code, hearingDate string) (*types.JobProfile, error) {
	record, err := src.Lookup(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", code, err)
	}
	p, err := profile.NewBuilder(a.tables, a.logger).Build(record, hearingDate)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile for %s: %w", code, err)
	}
	return p, nil
}

// writeOutput writes v as indented JSON to path, or stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	out = append(out, '\n')

	if path == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// parseAge accepts a category name, regulation wording or age in years.
func parseAge(s string) (types.AgeCategory, error) {
	if s == "" {
		return types.AgeUnknown, nil
	}
	if years, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		age := types.AgeCategoryFromYears(years)
		if age == types.AgeUnknown {
			return age, fmt.Errorf("age %d is below the grid age categories", years)
		}
		return age, nil
	}
	age := types.ParseAgeCategory(s)
	if age == types.AgeUnknown {
		return age, fmt.Errorf("unrecognized age category %q", s)
	}
	return age, nil
}

func parseEducation(s string) (types.EducationCategory, error) {
	if s == "" {
		return types.EducationUnknown, nil
	}
	edu := types.ParseEducationCategory(s)
	if edu == types.EducationUnknown {
		return edu, fmt.Errorf("unrecognized education category %q", s)
	}
	return edu, nil
}

func parseRFC(s string) (types.Exertion, error) {
	rfc := types.ParseExertion(s)
	if !rfc.Known() {
		return rfc, fmt.Errorf("unrecognized RFC exertion level %q", s)
	}
	return rfc, nil
}
