package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "static void Main()\n{\n    Console.WriteLine();\n}\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Program.cs")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	return path
}

func runResolveWith(t *testing.T, args []string, marks []string, text bool) (string, string, error) {
	t.Helper()
	color.NoColor = true
	resolveMarks, resolveText = marks, text
	t.Cleanup(func() { resolveMarks, resolveText = nil, false })

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := runResolve(cmd, args)
	return out.String(), errOut.String(), err
}

func TestRunResolve(t *testing.T) {
	path := writeSample(t)

	out, errOut, err := runResolveWith(t, []string{path}, []string{"3:5-3:24@breakpoint", "2:1"}, true)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, "3:5-3:24@breakpoint 25 19 \"Console.WriteLine()\"\n2:1 19 0 \"\"\n", out)
}

func TestRunResolveReportsEveryFailure(t *testing.T) {
	path := writeSample(t)

	out, errOut, err := runResolveWith(t, []string{path}, []string{"9:1-9:2", "1:1-1:7", "3:9-3:1"}, false)
	require.Error(t, err)
	assert.Equal(t, "2 of 3 marks failed", err.Error())
	assert.Equal(t, "1:1-1:7 0 6\n", out)
	assert.Contains(t, errOut, "9:1-9:2:")
	assert.Contains(t, errOut, "3:9-3:1:")
}

func TestRunResolveErrors(t *testing.T) {
	_, _, err := runResolveWith(t, []string{writeSample(t)}, []string{"bad"}, false)
	assert.Error(t, err)

	_, _, err = runResolveWith(t, []string{filepath.Join(t.TempDir(), "missing.cs")}, []string{"1:1-1:2"}, false)
	assert.ErrorContains(t, err, "reading")
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, nil))
	assert.Contains(t, buf.String(), "keymark dev")
	assert.Contains(t, buf.String(), "Go version:")
}
