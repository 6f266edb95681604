package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ve-auditor/internal/dotcode"
)

var dotCodeCmd = &cobra.Command{
	Use:   "dot-code CODE [CODE...]",
	Short: "Validate and convert DOT codes",
	Long:  "Converts each DOT code between the XXX.XXX-XXX form and the numeric Ncode, reporting malformed codes.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDOTCode,
}

var (
	dotCodeOutput string
	dotCodeStrict bool
)

func init() {
	dotCodeCmd.Flags().StringVarP(&dotCodeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	dotCodeCmd.Flags().BoolVar(&dotCodeStrict, "strict", false, "Exit with an error if any code is invalid")

	rootCmd.AddCommand(dotCodeCmd)
}

func runDOTCode(cmd *cobra.Command, args []string) error {
	results := make([]dotcode.Validation, 0, len(args))
	invalid := 0
	for _, arg := range args {
		v := dotcode.Validate(arg)
		if !v.Valid {
			invalid++
		}
		results = append(results, v)
	}

	if err := writeOutput(cmd, dotCodeOutput, results); err != nil {
		return err
	}
	if dotCodeStrict && invalid > 0 {
		return fmt.Errorf("%d of %d DOT codes are invalid", invalid, len(args))
	}
	return nil
}
