package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"jd": "testdata/jd.txt",
		"resume": "testdata/resume.txt",
		"corpus": "testdata/corpus.txt",
		"output": "out/report.json",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "testdata/jd.txt", cfg.JD)
	assert.Equal(t, "testdata/resume.txt", cfg.Resume)
	assert.Equal(t, "testdata/corpus.txt", cfg.Corpus)
	assert.Equal(t, "out/report.json", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{
		JD: filepath.Join(t.TempDir(), "missing-jd.txt"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jd file not found")
}

func TestValidate_OutputNotChecked(t *testing.T) {
	// Output may point at a file that does not exist yet.
	cfg := &Config{
		Output: filepath.Join(t.TempDir(), "not-written-yet.json"),
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	jdPath := filepath.Join(dir, "jd.txt")
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(jdPath, []byte("job description"), 0644))
	require.NoError(t, os.WriteFile(resumePath, []byte("resume"), 0644))

	cfg := &Config{
		JD:     jdPath,
		Resume: resumePath,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		JD:     "default-jd.txt",
		Resume: "default-resume.txt",
		Corpus: "default-corpus.txt",
		Output: "default-report.json",
	}

	partial := Config{
		JD:    "custom-jd.txt",
		Edits: "custom-edits.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-jd.txt", merged.JD)
	assert.Equal(t, "custom-edits.json", merged.Edits)

	// Default values should fill in empty fields
	assert.Equal(t, "default-resume.txt", merged.Resume)
	assert.Equal(t, "default-corpus.txt", merged.Corpus)
	assert.Equal(t, "default-report.json", merged.Output)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		JD:     "jd.txt",
		Resume: "resume.txt",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "jd.txt", merged.JD)
	assert.Equal(t, "resume.txt", merged.Resume)
}
