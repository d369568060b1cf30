// Package main provides the entry point for the ATS compatibility scorer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scorer",
	Short: "ATS compatibility scoring engine",
	Long:  "ats_scorer computes a deterministic 0-100 ATS compatibility score for a structured resume against a job description and its extracted keyword data, with a weighted breakdown and actionable recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
