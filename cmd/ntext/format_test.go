package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// resetFlags restores the defaults of the format command flags
func resetFlags(t *testing.T) {
	logger = zap.NewNop()
	inputFormat, configPath, overrides, complexity = "", "", nil, ""
	t.Cleanup(func() {
		inputFormat, configPath, overrides, complexity = "", "", nil, ""
	})
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := runFormat(cmd, args)
	return out.String(), err
}

func TestFormatJSONFromStdin(t *testing.T) {
	resetFlags(t)
	out, err := run(t, `{"b":[1,2.50,3],"a":"x","c":null}
{"z":true}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":{1,2.50,3},"c":null}`+"\n"+`{"z":true}`+"\n", out)
}

func TestFormatYAMLFile(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: grid\nrows:\n  - [1, 2]\n  - [3, 4]\n---\n- a\n- b\n"), 0o600))
	out, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"grid","rows":{{1,2},{3,4}}}`+"\n"+`{"a","b"}`+"\n", out)
}

func TestFormatSettingsFlags(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	config := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(config, []byte("string_quote: \"'\"\n"), 0o600))
	configPath = config
	overrides = []string{"array.prefix=<", "array.postfix=>"}
	inputFormat = "yaml"
	out, err := run(t, "[a, b]\n")
	require.NoError(t, err)
	assert.Equal(t, "<'a','b'>\n", out)
}

func TestFormatErrors(t *testing.T) {
	resetFlags(t)
	_, err := run(t, "", "notes.txt")
	assert.Error(t, err)

	_, err = run(t, "[1,}", "-")
	assert.Error(t, err)

	inputFormat = "xml"
	_, err = run(t, "")
	assert.Error(t, err)

	inputFormat = ""
	overrides = []string{"no-equals"}
	_, err = run(t, "1")
	assert.Error(t, err)

	overrides = nil
	complexity = "extreme"
	_, err = run(t, "1")
	assert.Error(t, err)

	complexity = ""
	_, err = run(t, "", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "ntext version dev\n", out.String())
}
