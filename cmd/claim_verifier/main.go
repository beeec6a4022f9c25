// Package main provides the entry point for the claim-verifier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "claim_verifier",
	Short: "CV claim verification against public GitHub evidence",
	Long:  "claim-verifier extracts the skills, projects, and certifications a resume explicitly claims, cross-checks the code-category claims against the candidate's public GitHub repositories, and optionally scores the verified profile against job specifications.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
