package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// execRun invokes the run subcommand through the root command with captured
// output. Flag state is global on the command tree, so strict is reset after
// each call.
func execRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer func() { runStrict = false }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	rootCmd.SetArgs(append([]string{"run"}, args...))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.vfsh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_ExecutesScript(t *testing.T) {
	path := writeScript(t, "mkdir a\ncd a\npwd\n")

	out, err := execRun(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "/a")
}

func TestRun_ErrorsContinueByDefault(t *testing.T) {
	path := writeScript(t, "cd nowhere\npwd\n")

	out, err := execRun(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "/")
}

func TestRun_StrictFailsFast(t *testing.T) {
	path := writeScript(t, "cd nowhere\npwd\n")

	_, err := execRun(t, path, "--strict")
	require.ErrorIs(t, err, vfsh.ErrScriptFailed)
	assert.Equal(t, vfsh.ExitScriptFailed, vfsh.ExitCodeForError(err))
}

func TestRun_MissingScriptFile(t *testing.T) {
	_, err := execRun(t, filepath.Join(t.TempDir(), "absent.vfsh"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open script")
}

func TestRun_RequiresArgument(t *testing.T) {
	_, err := execRun(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument")
	assert.Equal(t, vfsh.ExitUsageError, vfsh.ExitCodeForError(err))
}
