package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-lang/loop/internal/maincmd"
)

func stdio(stdin string) (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return mainer.Stdio{
		Stdin:  bytes.NewBufferString(stdin),
		Stdout: &out,
		Stderr: &errOut,
	}, &out, &errOut
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.loop")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateNoArgsAllowsRepl(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs(nil)
	c.SetFlags(map[string]bool{})
	assert.NoError(t, c.Validate())
}

func TestValidateUnknownCommandTreatedAsFilePath(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"script.loop"})
	c.SetFlags(map[string]bool{})
	assert.NoError(t, c.Validate())
}

func TestValidateTokenizeRequiresFile(t *testing.T) {
	c := &maincmd.Cmd{}
	c.SetArgs([]string{"tokenize"})
	c.SetFlags(map[string]bool{})
	assert.Error(t, c.Validate())
}

func TestMainRunPrintsValue(t *testing.T) {
	path := writeScript(t, "1 + 2")
	c := maincmd.Cmd{}
	io, out, _ := stdio("")
	code := c.Main([]string{"loop", "run", path}, io)
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "3")
}

func TestMainTokenizePrintsTokens(t *testing.T) {
	path := writeScript(t, "x := 1")
	c := maincmd.Cmd{}
	io, out, _ := stdio("")
	code := c.Main([]string{"loop", "tokenize", path}, io)
	assert.Equal(t, mainer.Success, code)
	assert.NotEmpty(t, out.String())
}

func TestMainHelp(t *testing.T) {
	c := maincmd.Cmd{}
	io, out, _ := stdio("")
	code := c.Main([]string{"loop", "-h"}, io)
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "usage")
}
