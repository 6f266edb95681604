package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/store"
	"github.com/jonathan/ve-auditor/internal/tsa"
)

var tsaCmd = &cobra.Command{
	Use:   "tsa",
	Short: "Run a transferable skills analysis",
	Long: "Compares the skill fingerprint of past relevant work against each target occupation within the RFC, " +
		"then resolves the Medical-Vocational Guidelines rule for the claimant's factors.",
	RunE: runTSA,
}

var (
	tsaPRW         string
	tsaTargets     []string
	tsaRFC         string
	tsaAge         string
	tsaEducation   string
	tsaHearingDate string
	tsaWorkers     int
	tsaOutput      string
)

func init() {
	tsaCmd.Flags().StringVar(&tsaPRW, "prw", "", "DOT code of past relevant work (required)")
	tsaCmd.Flags().StringSliceVarP(&tsaTargets, "target", "t", nil, "Target DOT code (repeatable)")
	tsaCmd.Flags().StringVar(&tsaRFC, "rfc", "", "Residual functional capacity exertion level (required)")
	tsaCmd.Flags().StringVar(&tsaAge, "age", "", "Age category or age in years")
	tsaCmd.Flags().StringVar(&tsaEducation, "education", "", "Education category")
	tsaCmd.Flags().StringVar(&tsaHearingDate, "hearing-date", "", "Hearing date YYYY-MM-DD")
	tsaCmd.Flags().IntVar(&tsaWorkers, "workers", 0, "Concurrent target evaluations (default from config)")
	tsaCmd.Flags().StringVarP(&tsaOutput, "out", "o", "", "Path to output TSA JSON file (default: stdout)")

	if err := tsaCmd.MarkFlagRequired("prw"); err != nil {
		panic(fmt.Sprintf("failed to mark prw flag as required: %v", err))
	}
	if err := tsaCmd.MarkFlagRequired("rfc"); err != nil {
		panic(fmt.Sprintf("failed to mark rfc flag as required: %v", err))
	}

	rootCmd.AddCommand(tsaCmd)
}

func runTSA(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rfc, err := parseRFC(tsaRFC)
	if err != nil {
		return err
	}
	age, err := parseAge(tsaAge)
	if err != nil {
		return err
	}
	education, err := parseEducation(tsaEducation)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	src, err := a.source(ctx)
	if err != nil {
		return err
	}
	source, err := a.buildProfile(ctx, src, tsaPRW, tsaHearingDate)
	if err != nil {
		return err
	}
	targets, err := a.loadTargets(ctx, src, tsaTargets)
	if err != nil {
		return err
	}

	workers := tsaWorkers
	if workers == 0 {
		workers = a.cfg.Workers
	}
	engine, err := tsa.NewEngine(a.tables, workers, a.logger)
	if err != nil {
		return err
	}

	result, err := engine.Analyze(ctx, tsa.Request{
		Source:    source,
		Targets:   targets,
		RFC:       rfc,
		Age:       age,
		Education: education,
	})
	if err != nil {
		return err
	}

	if a.printer != nil {
		a.printer.PrintJobProfile(source)
		a.printer.PrintTSAResult(result)
	}
	return writeOutput(cmd, tsaOutput, result)
}

// loadTargets builds target profiles. Records that cannot be found or built
// become nil profiles, which the engine reports as unavailable.
func (a *app) loadTargets(ctx context.Context, src store.Source, codes []string) ([]tsa.TargetInput, error) {
	targets := make([]tsa.TargetInput, 0, len(codes))
	for _, code := range codes {
		p, err := a.buildProfile(ctx, src, code, tsaHearingDate)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			var notFound *store.NotFoundError
			if !errors.As(err, &notFound) {
				a.logger.Warn("target profile unavailable", zap.String("target", code), zap.Error(err))
			}
			targets = append(targets, tsa.TargetInput{Code: code})
			continue
		}
		targets = append(targets, tsa.TargetInput{Code: p.Code, Profile: p})
	}
	return targets, nil
}
