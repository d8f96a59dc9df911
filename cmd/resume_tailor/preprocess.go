package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var preprocessCommand = &cobra.Command{
	Use:   "preprocess",
	Short: "Extract job description keywords and analyze resume gaps",
	Long: `Reads the job description, resume, and experience corpus, extracts recognized
keywords, parses the resume into summary, highlights, and experience sections,
and writes a section-aware gap analysis report to the output path.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPreprocessCmd,
}

var (
	preprocessConfigPath string
	preprocessJD         string
	preprocessResume     string
	preprocessCorpus     string
	preprocessOutput     string
	preprocessVerbose    bool
)

func init() {
	// Config file flag (processed first)
	preprocessCommand.Flags().StringVar(&preprocessConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	preprocessCommand.Flags().StringVar(&preprocessJD, "jd", "", "Path to the job description (text, pdf, docx, or html)")
	preprocessCommand.Flags().StringVar(&preprocessResume, "resume", "", "Path to the resume")
	preprocessCommand.Flags().StringVar(&preprocessCorpus, "corpus", "", "Path to the experience corpus")
	preprocessCommand.Flags().StringVarP(&preprocessOutput, "output", "o", "", "Output JSON path")
	preprocessCommand.Flags().BoolVarP(&preprocessVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(preprocessCommand)
}

func runPreprocessCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(preprocessConfigPath, preprocessVerbose)
	if err != nil {
		return err
	}

	// Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("jd") {
		cfg.JD = preprocessJD
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = preprocessResume
	}
	if cmd.Flags().Changed("corpus") {
		cfg.Corpus = preprocessCorpus
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = preprocessOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = preprocessVerbose
	}

	// Validate required fields after merging
	if cfg.JD == "" {
		return fmt.Errorf("--jd is required (via flag or config)")
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Corpus == "" {
		return fmt.Errorf("--corpus is required (via flag or config)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--output is required (via flag or config)")
	}

	return pipeline.RunPreprocess(pipeline.PreprocessOptions{
		JDPath:     cfg.JD,
		ResumePath: cfg.Resume,
		CorpusPath: cfg.Corpus,
		OutputPath: cfg.Output,
		Verbose:    cfg.Verbose,
	})
}
