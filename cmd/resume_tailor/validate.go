package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate proposed resume edits against the experience corpus",
	Long: `Loads proposed edits from a JSON file, checks each against character limits,
corpus vocabulary, metric preservation, and new proper nouns, and writes the
per-edit results to the output path. Failed validations are reported in the
output, not as a command failure.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runValidateCmd,
}

var (
	validateConfigPath string
	validateEdits      string
	validateCorpus     string
	validateOutput     string
	validateVerbose    bool
)

func init() {
	// Config file flag (processed first)
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	validateCommand.Flags().StringVar(&validateEdits, "edits", "", "Path to the proposed edits JSON")
	validateCommand.Flags().StringVar(&validateCorpus, "corpus", "", "Path to the experience corpus")
	validateCommand.Flags().StringVarP(&validateOutput, "output", "o", "", "Output JSON path")
	validateCommand.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(validateConfigPath, validateVerbose)
	if err != nil {
		return err
	}

	// Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("edits") {
		cfg.Edits = validateEdits
	}
	if cmd.Flags().Changed("corpus") {
		cfg.Corpus = validateCorpus
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = validateOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = validateVerbose
	}

	// Validate required fields after merging
	if cfg.Edits == "" {
		return fmt.Errorf("--edits is required (via flag or config)")
	}
	if cfg.Corpus == "" {
		return fmt.Errorf("--corpus is required (via flag or config)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--output is required (via flag or config)")
	}

	return pipeline.RunValidation(pipeline.ValidateOptions{
		EditsPath:  cfg.Edits,
		CorpusPath: cfg.Corpus,
		OutputPath: cfg.Output,
		Verbose:    cfg.Verbose,
	})
}
