package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const groceries = `
steps:
  - {op: open}
  - {op: name, text: Eggs}
  - {op: quantity, text: "12"}
  - {op: confirm}
  - {op: open}
  - {op: name, text: Bread}
  - {op: confirm}
  - {op: delete, id: 1}
  - {op: open}
  - {op: name, text: Jam}
  - {op: confirm}
`

func setup(t *testing.T) string {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvLogFile, config.EnvLogFormat, config.EnvTheme, config.EnvIDScheme} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() { ui.SetTheme("classic") })

	dir := t.TempDir()
	path := filepath.Join(dir, "groceries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(groceries), 0o644))
	return path
}

func run(args ...string) (int, string, string) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := Run(args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestScriptJSON(t *testing.T) {
	path := setup(t)

	code, out, errOut := run("script", "--json", path)
	require.Equal(t, 0, code, errOut)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "Bread", snap.Items[0].Name)
	assert.EqualValues(t, 2, snap.Items[0].ID)
	assert.EqualValues(t, 3, snap.Items[1].ID, "sequence ids never repeat")
}

func TestScriptCountScheme(t *testing.T) {
	path := setup(t)

	code, out, errOut := run("script", "--json", "--id-scheme", "count", path)
	require.Equal(t, 0, code, errOut)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Len(t, snap.Items, 2)
	assert.EqualValues(t, 2, snap.Items[0].ID)
	assert.EqualValues(t, 2, snap.Items[1].ID)
}

func TestScriptPanel(t *testing.T) {
	path := setup(t)

	code, out, errOut := run("script", "--theme", "mono", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Items 2  Units 2")
	assert.Contains(t, out, "- Bread x1")
	assert.Contains(t, out, "- Jam x1")
	assert.NotContains(t, out, "Eggs")
}

func TestScriptOutAndTrace(t *testing.T) {
	path := setup(t)
	outFile := filepath.Join(t.TempDir(), "state.json")
	logFile := filepath.Join(t.TempDir(), "shoplist.log")

	code, _, errOut := run("script", "--trace", "--out", outFile, "--log-file", logFile, "--log-level", "debug", path)
	require.Equal(t, 0, code, errOut)
	traced := 0
	for _, line := range strings.Split(errOut, "\n") {
		if strings.HasPrefix(line, "#") {
			traced++
		}
	}
	assert.Equal(t, 11, traced)
	assert.Contains(t, errOut, "#1 items=0 dialog=open")
	assert.Contains(t, errOut, "wrote "+outFile)

	b, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name": "Jam"`)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"session_id"`)
	assert.Contains(t, string(logs), "store changed")
}

func TestScriptFromStdin(t *testing.T) {
	setup(t)
	root := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetIn(strings.NewReader(groceries))
	root.SetArgs([]string{"script", "--json", "-"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"Jam"`)
}

func TestUsageErrors(t *testing.T) {
	path := setup(t)

	code, _, _ := run("script")
	assert.Equal(t, 2, code)

	code, _, _ = run("bogus")
	assert.Equal(t, 2, code)

	code, _, _ = run("script", "--nope", path)
	assert.Equal(t, 2, code)

	code, _, errOut := run("script", "--id-scheme", "uuid", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "config validation error")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("steps:\n  - op: fly\n"), 0o644))
	code, _, errOut = run("script", bad)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "step 1")
}

func TestMissingScriptFile(t *testing.T) {
	setup(t)
	code, _, errOut := run("script", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open script")
}

func TestScriptWarnsOnRejectedSteps(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "rejected.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {op: open}\n  - {op: confirm}\n  - {op: delete, id: 7}\n"), 0o644))
	logFile := filepath.Join(t.TempDir(), "shoplist.log")

	code, _, errOut := run("script", "--log-file", logFile, path)
	require.Equal(t, 0, code, errOut)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"level":"warn"`)
	assert.Contains(t, string(logs), "2 script steps had no effect")
}

func TestFlagOverridesInvalidEnv(t *testing.T) {
	path := setup(t)
	t.Setenv(config.EnvTheme, "bogus")
	t.Setenv(config.EnvIDScheme, "uuid")

	code, out, errOut := run("script", "--theme", "mono", "--id-scheme", "count", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "- Jam x1")

	code, _, errOut = run("script", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "config validation error")
}
