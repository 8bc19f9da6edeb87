package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRunCmd_Defaults(t *testing.T) {
	out, err := executeCommand(t,
		"run", "--iterations", "100", "--no-color", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "p99")
}

func TestRunCmd_JSONOutput(t *testing.T) {
	out, err := executeCommand(t,
		"run", "--iterations", "100", "--json=true")
	require.NoError(t, err)

	assert.True(t, gjson.Valid(out), "output must be valid JSON")
	assert.Equal(t, int64(100), gjson.Get(out, "iterations").Int())
	assert.Equal(t, "monotonic", gjson.Get(out, "clock").String())
	assert.Greater(t, gjson.Get(out, "stats.maxNs").Uint(), uint64(0))
}

func TestRunCmd_WritesReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	_, err := executeCommand(t,
		"run", "--iterations", "100", "--json=false", "--no-color", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(100), gjson.GetBytes(data, "iterations").Int())
}

func TestRunCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: from config
iterations: 150
workload: alloc
`), 0o644))

	// Zero-valued flags mean "keep the config file's values"; earlier
	// tests may have left other values behind on the shared command.
	out, err := executeCommand(t,
		"run", path, "--json=true", "-o", "", "--iterations", "0", "--workload", "", "--clock", "")
	require.NoError(t, err)
	assert.Equal(t, "from config", gjson.Get(out, "name").String())
	assert.Equal(t, int64(150), gjson.Get(out, "iterations").Int())
	assert.Equal(t, "alloc", gjson.Get(out, "workload").String())
}

func TestRunCmd_BadConfig(t *testing.T) {
	_, err := executeCommand(t,
		"run", "--iterations", "100", "--json=false", "--workload", "fibonacci")
	assert.Error(t, err)
}

func TestRunCmd_MissingConfigFile(t *testing.T) {
	_, err := executeCommand(t, "run", "/does/not/exist.yaml")
	assert.Error(t, err)
}
