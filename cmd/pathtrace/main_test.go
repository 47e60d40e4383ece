package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zigzag = ">-A-+\n    |\ns-B-+\n"

// execute runs the root command with stdin and args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func writeDiagram(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestRoot_Stdin(t *testing.T) {
	out, err := execute(t, zigzag)
	require.NoError(t, err)
	assert.Equal(t, "Path: >-A-+|+-B-s\nLetters: AB\nStatus: stopped\n", out)
}

func TestRoot_MultipleFiles(t *testing.T) {
	a := writeDiagram(t, "a.txt", zigzag)
	b := writeDiagram(t, "b.txt", "no entry\n")

	out, err := execute(t, "", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "== "+a+" ==\nPath: >-A-+|+-B-s\n")
	assert.Contains(t, out, "== "+b+" ==\nPath: \nLetters: \nStatus: no-start\n")
}

func TestRoot_JSON(t *testing.T) {
	out, err := execute(t, "+>+\n| |\n+-+\n", "--format", "json")
	require.NoError(t, err)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, report{Input: "-", Path: ">+|+-+|+>", Status: "cycle-detected", Steps: 8}, reports[0])
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	cfg := writeDiagram(t, "pathtrace.yaml", "max_steps: 1\nformat: json\n")

	out, err := execute(t, zigzag, "--config", cfg, "--max-steps", "3", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "Path: >-A-\nLetters: A\nStatus: step-limit\n", out)
}

func TestRoot_ConfigMarkers(t *testing.T) {
	cfg := writeDiagram(t, "pathtrace.yaml", "markers:\n  entry: \"@\"\n  stop: \"#\"\n")

	out, err := execute(t, "@-Q-#\n", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "Path: @-Q-#\nLetters: Q\nStatus: stopped\n", out)
}

func TestRoot_NoCycleDetection(t *testing.T) {
	out, err := execute(t, "+>+\n| |\n+-+\n", "--no-cycle-detection", "--max-steps", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: step-limit\n")
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, zigzag, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, zigzag, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
