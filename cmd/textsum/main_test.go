package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Bees pollinate most flowering crops. " +
	"Without bees, crop yields would fall sharply. " +
	"Beekeepers report colony losses every winter. " +
	"Pesticides and parasites weaken bee colonies. " +
	"Importantly, wild bees pollinate crops too. " +
	"Protecting bees protects the food supply."

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := summarizeCMD()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSummarizeCommand_Stdin(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	out, err := run(t, sample)
	require.NoError(t, err)
	assert.Contains(t, out, "Compressed 6 sentences into 3")
}

func TestSummarizeCommand_FilesAsJSON(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	dir := t.TempDir()
	path := filepath.Join(dir, "bees.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	out, err := run(t, "", "--format", "json", "--ratio", "1", "--min-sentences", "1", path)
	require.NoError(t, err)
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, path, reports[0]["path"])
	result := reports[0]["result"].(map[string]any)
	assert.EqualValues(t, 6, result["summary_sentence_count"])
}

func TestSummarizeCommand_InvalidRatio(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	_, err := run(t, sample, "--ratio", "1.5")
	require.Error(t, err)
}

func TestSummarizeCommand_UnknownDetector(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	_, err := run(t, sample, "--detector", "ouija")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textsum.yaml")
	cmd := configCMD()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", path})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), path)
}

const threeSentences = "One here. Two here. Three here."

func TestSummarizeCommand_BasicPresetUsesItsThresholds(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	out, err := run(t, threeSentences, "--preset", "basic")
	require.NoError(t, err)
	assert.NotContains(t, out, "already concise")
	assert.Contains(t, out, "Compressed 3 sentences into 1")
}

func TestSummarizeCommand_BasicPresetFromConfigFile(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	path := filepath.Join(t.TempDir(), "textsum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summarizer:\n  preset: basic\n"), 0o644))

	out, err := run(t, threeSentences, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Compressed 3 sentences into 1")
}

func TestSummarizeCommand_FlagOverridesPreset(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	out, err := run(t, sample, "--preset", "basic", "--min-sentences", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Compressed 6 sentences into 4")
}

func TestSummarizeCommand_UnknownFormatFailsBeforeReading(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	cmd := summarizeCMD()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(iotest.ErrReader(errors.New("stdin must not be read")))
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--format", "xml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
	assert.NotContains(t, err.Error(), "read stdin")
}
