package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// validResumeJSON is a schema-conformant resume fixture used across
// command tests.
const validResumeJSON = `{
	"name": "Jane Doe",
	"title": "Senior Software Engineer",
	"sections": [
		{
			"title": "Skills",
			"bullets": [{"text": "Go, AWS, Terraform"}]
		},
		{
			"title": "Professional Experience",
			"bullets": [{"text": "Led migration to AWS, reducing costs by 23%"}]
		}
	]
}`

const validKeywordsJSON = `{"technicalKeywords": ["aws", "go"]}`

const sampleJobDescription = "Senior Software Engineer\nCloud role using AWS and Go."

// writeTestFile writes content to a file under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetCommandFlags restores every package-level flag variable to its
// default so tests do not leak state into each other.
func resetCommandFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		scoreResumePath = ""
		scoreJobPath = ""
		scoreJobURL = ""
		scoreKeywordsPath = ""
		scoreConfigPath = ""
		scoreValidate = false
		scoreVerbose = false

		batchResumeDir = ""
		batchJobPath = ""
		batchKeywordsPath = ""
		batchConcurrency = 4

		servePort = 8080
		serveConfigPath = ""
	}
	reset()
	t.Cleanup(reset)
}

// captureStdout runs fn while redirecting os.Stdout and returns what it
// wrote along with fn's error.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fnErr := fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), fnErr
}
