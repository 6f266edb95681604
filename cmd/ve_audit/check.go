package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ve-auditor/internal/consistency"
	"github.com/jonathan/ve-auditor/internal/schemas"
	"github.com/jonathan/ve-auditor/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a hypothetical against an occupation's requirements",
	Long:  "Compares a claimant LimitationModel JSON against a DOT occupation and writes the list of conflicts and coverage notes as JSON.",
	RunE:  runCheck,
}

var (
	checkLimits      string
	checkCode        string
	checkHearingDate string
	checkOutput      string
)

func init() {
	checkCmd.Flags().StringVarP(&checkLimits, "limits", "l", "", "Path to LimitationModel JSON file (required)")
	checkCmd.Flags().StringVar(&checkCode, "code", "", "DOT code of the occupation (required)")
	checkCmd.Flags().StringVar(&checkHearingDate, "hearing-date", "", "Hearing date YYYY-MM-DD")
	checkCmd.Flags().StringVarP(&checkOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := checkCmd.MarkFlagRequired("limits"); err != nil {
		panic(fmt.Sprintf("failed to mark limits flag as required: %v", err))
	}
	if err := checkCmd.MarkFlagRequired("code"); err != nil {
		panic(fmt.Sprintf("failed to mark code flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

// loadLimitations reads a LimitationModel and validates it against both
// the JSON schema and the struct constraints.
func loadLimitations(path string) (*types.LimitationModel, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read limitations file %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.LimitationModel, content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("limitations file is invalid: %w", err)
		}
		return nil, fmt.Errorf("could not validate limitations file: %w", err)
	}

	var limits types.LimitationModel
	if err := json.Unmarshal(content, &limits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal limitations JSON: %w", err)
	}
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("limitations file is invalid: %w", err)
	}
	return &limits, nil
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	limits, err := loadLimitations(checkLimits)
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
	p, err := a.buildProfile(ctx, src, checkCode, checkHearingDate)
	if err != nil {
		return err
	}

	result := consistency.NewChecker(a.tables, a.logger).Check(limits, p)

	if a.printer != nil {
		a.printer.PrintConsistency(&result)
	}
	return writeOutput(cmd, checkOutput, result)
}
