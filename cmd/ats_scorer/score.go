package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/jonathan/ats-scorer/schemas"
)

var (
	scoreResumePath   string
	scoreJobPath      string
	scoreJobURL       string
	scoreKeywordsPath string
	scoreConfigPath   string
	scoreValidate     bool
	scoreVerbose      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job description",
	Long:  `Score reads a resume JSON file, a job description (file or URL), and optional extension keyword data, then prints the compatibility report.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job description from")
	scoreCmd.Flags().StringVar(&scoreKeywordsPath, "keywords", "", "Path to extension keyword JSON file")
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreValidate, "validate", false, "Validate input files against the bundled JSON Schemas")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print a formatted report instead of raw JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	resume, err := loadResume(cfg.Resume, cfg.ValidateInput)
	if err != nil {
		return err
	}

	ext, err := loadKeywords(cfg.Keywords, cfg.ValidateInput)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	engine := scoring.New(cfg.ApplyToPolicy(scoring.DefaultPolicy()))
	result := engine.Score(resume, jobDescription, ext)

	return emitResult(&result, cfg.Verbose)
}

// resolveConfig loads the optional config file and merges flag values over it.
func resolveConfig() (*config.Config, error) {
	flags := &config.Config{
		Resume:        scoreResumePath,
		Job:           scoreJobPath,
		JobURL:        scoreJobURL,
		Keywords:      scoreKeywordsPath,
		ValidateInput: scoreValidate,
		Verbose:       scoreVerbose,
	}

	if scoreConfigPath == "" {
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(scoreConfigPath)
	if err != nil {
		return nil, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	// Policy overrides come only from the file; there are no flags for them.
	merged.SkillsMax = fileCfg.SkillsMax
	merged.ExperienceMax = fileCfg.ExperienceMax
	merged.CoverageMax = fileCfg.CoverageMax
	merged.EducationMax = fileCfg.EducationMax
	merged.FormattingMax = fileCfg.FormattingMax
	merged.StuffingThreshold = fileCfg.StuffingThreshold
	merged.OccurrenceCap = fileCfg.OccurrenceCap
	merged.SummaryKeywordCap = fileCfg.SummaryKeywordCap
	merged.ValidateInput = merged.ValidateInput || fileCfg.ValidateInput
	merged.Verbose = merged.Verbose || fileCfg.Verbose

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func loadResume(path string, validateInput bool) (types.ResumeData, error) {
	var resume types.ResumeData

	data, err := os.ReadFile(path)
	if err != nil {
		return resume, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	if validateInput {
		if err := schemas.ValidateResume(data); err != nil {
			return resume, fmt.Errorf("resume file %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, &resume); err != nil {
		return resume, fmt.Errorf("failed to parse resume JSON %s: %w", path, err)
	}
	return resume, nil
}

func loadKeywords(path string, validateInput bool) (*types.ExtensionKeywordData, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}
	if validateInput {
		if err := schemas.ValidateKeywords(data); err != nil {
			return nil, fmt.Errorf("keywords file %s: %w", path, err)
		}
	}
	var ext types.ExtensionKeywordData
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("failed to parse keywords JSON %s: %w", path, err)
	}
	return &ext, nil
}

func loadJobDescription(ctx context.Context, cfg *config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		return ingestion.FromFile(cfg.Job)
	case cfg.JobURL != "":
		return ingestion.FromURL(ctx, cfg.JobURL)
	default:
		return "", nil
	}
}

func emitResult(result *types.ScoreResult, verbose bool) error {
	if verbose {
		observability.NewPrinter(os.Stdout).PrintScoreReport(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
