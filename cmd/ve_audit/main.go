// Package main provides the ve_audit CLI for vocational expert testimony analysis.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ve_audit",
	Short: "Vocational compatibility and transferability analysis",
	Long: "ve_audit builds DOT occupation profiles, checks them against a claimant hypothetical, " +
		"runs transferable skills analyses and resolves Medical-Vocational Guidelines rules.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
