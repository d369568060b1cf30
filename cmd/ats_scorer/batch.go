package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

var (
	batchResumeDir    string
	batchJobPath      string
	batchKeywordsPath string
	batchConcurrency  int
)

// BatchResult pairs one scored resume file with its report.
type BatchResult struct {
	File   string            `json:"file"`
	Result types.ScoreResult `json:"result"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of resumes against one job description",
	Long:  `Batch scores every *.json resume in a directory against the same job description concurrently. Each scoring call is independent, so the work parallelizes with no coordination.`,
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchResumeDir, "resume-dir", "", "Directory of resume JSON files (required)")
	batchCmd.Flags().StringVar(&batchJobPath, "job", "", "Path to job description text file")
	batchCmd.Flags().StringVar(&batchKeywordsPath, "keywords", "", "Path to extension keyword JSON file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes scored in parallel")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchResumeDir == "" {
		return fmt.Errorf("--resume-dir is required")
	}
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	entries, err := os.ReadDir(batchResumeDir)
	if err != nil {
		return fmt.Errorf("failed to read resume directory %s: %w", batchResumeDir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(batchResumeDir, entry.Name()))
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume JSON files found in %s", batchResumeDir)
	}

	var jobDescription string
	if batchJobPath != "" {
		jobDescription, err = ingestion.FromFile(batchJobPath)
		if err != nil {
			return err
		}
	}

	ext, err := loadKeywords(batchKeywordsPath, false)
	if err != nil {
		return err
	}

	engine := scoring.NewDefault()

	var mu sync.Mutex
	results := make([]BatchResult, 0, len(paths))

	var group errgroup.Group
	group.SetLimit(batchConcurrency)
	for _, path := range paths {
		path := path
		group.Go(func() error {
			resume, err := loadResume(path, false)
			if err != nil {
				return err
			}
			result := engine.Score(resume, jobDescription, ext)

			mu.Lock()
			results = append(results, BatchResult{File: filepath.Base(path), Result: result})
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].File < results[j].File
	})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
