// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-scorer/internal/scoring"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; zero values fall back to defaults or CLI flags. The scoring
// fields override the corresponding policy values so a deployment can tune
// the weighting scheme without a rebuild.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty"`   // Path to resume JSON file
	Job      string `json:"job,omitempty"`      // Path to job description text file
	JobURL   string `json:"job_url,omitempty"`  // URL to fetch the job description from
	Keywords string `json:"keywords,omitempty"` // Path to extension keyword JSON file

	// Scoring policy overrides
	SkillsMax         float64 `json:"skills_max,omitempty"`
	ExperienceMax     float64 `json:"experience_max,omitempty"`
	CoverageMax       float64 `json:"coverage_max,omitempty"`
	EducationMax      float64 `json:"education_max,omitempty"`
	FormattingMax     float64 `json:"formatting_max,omitempty"`
	StuffingThreshold int     `json:"stuffing_threshold,omitempty"`
	OccurrenceCap     int     `json:"occurrence_cap,omitempty"`
	SummaryKeywordCap int     `json:"summary_keyword_cap,omitempty"`

	// Behavior
	Port          int  `json:"port,omitempty"`     // HTTP server port for serve mode
	ValidateInput bool `json:"validate,omitempty"` // Validate input files against JSON Schemas
	Verbose       bool `json:"verbose,omitempty"`  // Print the formatted report instead of raw JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	for name, v := range map[string]float64{
		"skills_max":     c.SkillsMax,
		"experience_max": c.ExperienceMax,
		"coverage_max":   c.CoverageMax,
		"education_max":  c.EducationMax,
		"formatting_max": c.FormattingMax,
	} {
		if v < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}

	// A fully overridden weighting scheme must still distribute 100 points.
	if c.SkillsMax > 0 && c.ExperienceMax > 0 && c.CoverageMax > 0 && c.EducationMax > 0 && c.FormattingMax > 0 {
		sum := c.SkillsMax + c.ExperienceMax + c.CoverageMax + c.EducationMax + c.FormattingMax
		if sum != 100 {
			return fmt.Errorf("config error: sub-engine maxima must sum to 100, got %.0f", sum)
		}
	}

	if c.StuffingThreshold < 0 {
		return fmt.Errorf("config error: 'stuffing_threshold' must be non-negative")
	}
	if c.OccurrenceCap < 0 {
		return fmt.Errorf("config error: 'occurrence_cap' must be non-negative")
	}
	if c.SummaryKeywordCap < 0 {
		return fmt.Errorf("config error: 'summary_keyword_cap' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// ApplyToPolicy returns a copy of the policy with any non-zero overrides
// from the config applied.
func (c *Config) ApplyToPolicy(policy scoring.Policy) scoring.Policy {
	if c.SkillsMax > 0 {
		policy.SkillsMax = c.SkillsMax
	}
	if c.ExperienceMax > 0 {
		policy.ExperienceMax = c.ExperienceMax
	}
	if c.CoverageMax > 0 {
		policy.CoverageMax = c.CoverageMax
	}
	if c.EducationMax > 0 {
		policy.EducationMax = c.EducationMax
	}
	if c.FormattingMax > 0 {
		policy.FormattingMax = c.FormattingMax
	}
	if c.StuffingThreshold > 0 {
		policy.StuffingThreshold = c.StuffingThreshold
	}
	if c.OccurrenceCap > 0 {
		policy.OccurrenceCap = c.OccurrenceCap
	}
	if c.SummaryKeywordCap > 0 {
		policy.SummaryUniqueKeywords = c.SummaryKeywordCap
	}
	return policy
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}
