package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ve-auditor/internal/tsa"
	"github.com/jonathan/ve-auditor/internal/types"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Resolve a Medical-Vocational Guidelines rule",
	Long:  "Finds the grid rule directing a decision for an RFC, age, education and previous work profile. Unmapped or ambiguous inputs yield an explicit no-match.",
	RunE:  runGrid,
}

var (
	gridRFC          string
	gridAge          string
	gridEducation    string
	gridPRWSkill     string
	gridTransferable bool
	gridOutput       string
)

func init() {
	gridCmd.Flags().StringVar(&gridRFC, "rfc", "", "Residual functional capacity exertion level (required)")
	gridCmd.Flags().StringVar(&gridAge, "age", "", "Age category or age in years")
	gridCmd.Flags().StringVar(&gridEducation, "education", "", "Education category")
	gridCmd.Flags().StringVar(&gridPRWSkill, "prw-skill", "", "Previous work skill level: none, unskilled, semiskilled, skilled")
	gridCmd.Flags().BoolVar(&gridTransferable, "transferable", false, "Skills are transferable")
	gridCmd.Flags().StringVarP(&gridOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	if err := gridCmd.MarkFlagRequired("rfc"); err != nil {
		panic(fmt.Sprintf("failed to mark rfc flag as required: %v", err))
	}

	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, _ []string) error {
	rfc, err := parseRFC(gridRFC)
	if err != nil {
		return err
	}
	age, err := parseAge(gridAge)
	if err != nil {
		return err
	}
	education, err := parseEducation(gridEducation)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	resolver, err := tsa.NewResolver(a.tables.Grid(), a.logger)
	if err != nil {
		return err
	}
	result := resolver.Resolve(types.GridQuery{
		RFC:          rfc,
		Age:          age,
		Education:    education,
		PRWSkill:     types.ParseSkillCategory(gridPRWSkill),
		Transferable: gridTransferable,
	})

	if a.printer != nil {
		a.printer.PrintGridResult(&result)
	}
	return writeOutput(cmd, gridOutput, result)
}
