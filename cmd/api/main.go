// Package main provides the entry point for the TalentFlow API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentflow",
	Short: "TalentFlow ATS API Server",
	Long:  "TalentFlow serves a self-contained applicant-tracking API: job postings, candidate pipelines, assessments, and notes over an embedded store.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
