package cli

import (
	"os"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemCmd(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires /proc")
	}

	out, err := executeCommand(t, "mem", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "MemTotal")
}

func TestProcCmd_ByPid(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires /proc")
	}

	out, err := executeCommand(t, "proc", strconv.Itoa(os.Getpid()), "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "pid "+strconv.Itoa(os.Getpid()))
	assert.Contains(t, out, "threads")
}

func TestProcCmd_UnknownName(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires /proc")
	}

	_, err := executeCommand(t, "proc", "zz9qqx7")
	assert.Error(t, err)
}

func TestProcCmd_NoArgs(t *testing.T) {
	_, err := executeCommand(t, "proc")
	assert.Error(t, err)
}
