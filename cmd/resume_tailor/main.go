// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Resume tailoring preprocessing and validation",
	Long:  "Resume Tailor extracts keywords from job descriptions, analyzes resume keyword gaps section by section, and validates proposed resume edits against an experience corpus.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCommandConfig resolves the effective configuration for a command. The
// file named by RESUME_TAILOR_CONFIG provides ambient defaults; an explicit
// --config file overrides it field by field. Flag overrides happen in the
// callers because each command binds its own flags.
func loadCommandConfig(path string, verbose bool) (config.Config, error) {
	var cfg config.Config

	if envPath := os.Getenv(config.EnvConfigPath); envPath != "" {
		loaded, err := config.LoadConfig(envPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config from %s: %w", config.EnvConfigPath, err)
		}
		cfg = *loaded
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from %s: %s\n", config.EnvConfigPath, envPath)
		}
	}

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
