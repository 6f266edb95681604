package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Build a structured occupation profile from a DOT record",
	Long:  "Looks up a DOT occupation by code and writes its JobProfile JSON: exertion, skill level, GED, worker functions, physical demands, environmental conditions, aptitudes and temperaments.",
	RunE:  runProfile,
}

var (
	profileCode        string
	profileHearingDate string
	profileOutput      string
)

func init() {
	profileCmd.Flags().StringVar(&profileCode, "code", "", "DOT code, formatted or numeric (required)")
	profileCmd.Flags().StringVar(&profileHearingDate, "hearing-date", "", "Hearing date YYYY-MM-DD, selects the applicable SSR")
	profileCmd.Flags().StringVarP(&profileOutput, "out", "o", "", "Path to output JobProfile JSON file (default: stdout)")

	if err := profileCmd.MarkFlagRequired("code"); err != nil {
		panic(fmt.Sprintf("failed to mark code flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	src, err := a.source(ctx)
	if err != nil {
		return err
	}

	p, err := a.buildProfile(ctx, src, profileCode, profileHearingDate)
	if err != nil {
		return err
	}

	if a.printer != nil {
		a.printer.PrintJobProfile(p)
	}
	return writeOutput(cmd, profileOutput, p)
}
