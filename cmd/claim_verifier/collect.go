package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/claim-verifier/internal/github"
	"github.com/jonathan/claim-verifier/internal/logger"
	"github.com/jonathan/claim-verifier/internal/observability"
)

var collectCommand = &cobra.Command{
	Use:   "collect",
	Short: "Collect GitHub evidence for a profile without running analysis",
	Long: `Scans a GitHub profile's owned repositories and prints the raw evidence bundle as JSON: languages, root files, dependencies, imports, recent commits, and a README excerpt per repository.

Useful for inspecting what the evidence validation stage would see, or for caching a profile scan.`,
	RunE: runCollectCmd,
}

var (
	collectGitHub   string
	collectToken    string
	collectOutput   string
	collectVerbose  bool
	collectJSONLogs bool
)

func init() {
	collectCommand.Flags().StringVarP(&collectGitHub, "github", "g", "", "GitHub profile URL or username (required)")
	collectCommand.Flags().StringVar(&collectToken, "github-token", "", "GitHub API token (optional, defaults to GITHUB_TOKEN env var)")
	collectCommand.Flags().StringVarP(&collectOutput, "output", "o", "", "Write the evidence bundle to this file instead of stdout")
	collectCommand.Flags().BoolVarP(&collectVerbose, "verbose", "v", false, "Print a formatted per-repository summary")
	collectCommand.Flags().BoolVar(&collectJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")

	_ = collectCommand.MarkFlagRequired("github")

	rootCmd.AddCommand(collectCommand)
}

func runCollectCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	log, err := logger.New(collectJSONLogs, collectVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	token := collectToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	collector := github.NewCollector(github.NewClient(token, nil), log)
	bundle, err := collector.CollectEvidence(ctx, collectGitHub)
	if err != nil {
		return fmt.Errorf("failed to collect GitHub evidence: %w", err)
	}

	if collectVerbose {
		observability.NewPrinter(os.Stdout).PrintEvidence(bundle)
	}

	encoded, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode evidence bundle: %w", err)
	}

	if collectOutput != "" {
		if err := os.WriteFile(collectOutput, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", collectOutput, err)
		}
		log.Info("evidence bundle written", zap.String("path", collectOutput))
		return nil
	}

	fmt.Println(string(encoded))
	return nil
}
