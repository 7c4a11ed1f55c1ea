package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSampleDefaultOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI(t)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "{ app: { callNum: 2, callLines: [ 6, 10 ] } }\n", stdout)
}

func TestRunJSONFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	code, stdout, stderr := runCLI(t, "-format", "json")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "{\"app\":{\"callNum\":2,\"callLines\":[6,10]}}\n", stdout)
}

func TestRunFileArgument(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "main.ts", "// header\nconst x = 1;\n")

	code, stdout, stderr := runCLI(t, path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "{}\n", stdout)
}

func TestRunWithConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "callscan.toml", `
[analysis]
count_declarations = true
skip_lines = []

[output]
format = "json"
`)
	code, stdout, stderr := runCLI(t, "-config", cfgPath)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "{\"app\":{\"callNum\":3,\"callLines\":[1,6,10]}}\n", stdout)
}

func TestRunMetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "callscan.prom")
	cfgPath := writeFile(t, "callscan.toml", `
[observability]
enable_metrics = true
metrics_file = "`+filepath.ToSlash(metricsPath)+`"
`)
	code, _, stderr := runCLI(t, "-config", cfgPath)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "callscan_references_total")
}

func TestRunErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	code, _, stderr := runCLI(t, "-config", "missing.toml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to load config")

	code, _, stderr = runCLI(t, "-format", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid config")

	code, _, _ = runCLI(t, "a.ts", "b.ts")
	assert.Equal(t, 2, code)

	code, _, stderr = runCLI(t, "missing.ts")
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(stderr, "NOT_FOUND"), stderr)
}

func TestRunLogsEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CALLSCAN_ANALYSIS_STRICT", "false")

	code, _, stderr := runCLI(t, "-verbose")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `msg="applying env override" key=CALLSCAN_ANALYSIS_STRICT`)

	t.Setenv("CALLSCAN_ANALYSIS_STRICT", "maybe")
	code, _, stderr = runCLI(t)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `level=WARN msg="ignoring invalid env override"`)
	assert.NotContains(t, stderr, "level=DEBUG")
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "-version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "callscan v"))
}
