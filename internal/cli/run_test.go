package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchkit/ahocorasick/internal/cli"
)

func TestRun_NoArgsShowsUsageAndFails(t *testing.T) {
	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch"})
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "Commands:")
}

func TestRun_HelpFlagShowsUsageAndSucceeds(t *testing.T) {
	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch", "--help"})
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch", "bogus"})
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "unknown command")
}

func TestRun_BuildCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries":[{"key":"cat","value":"cat"}]}`), 0o644))

	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch", "build", path})
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "nodes:")
}

func TestRun_MatchCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries":[{"key":"cat","value":"cat"}]}`), 0o644))

	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch", "match", path, "a cat sat"})
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "cat")
}

func TestRun_MatchCommand_DuplicateKeyWarns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"entries":[{"key":"cat","value":"a"},{"key":"cat","value":"b"}]}`,
	), 0o644))

	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch", "match", path, "cat"})
	require.Equal(t, 1, code, "duplicate key warning should flip exit code")
	require.Contains(t, errOut.String(), "duplicate dictionary key")
}

func TestRun_ExportCommand(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "dict.jsonc")
	require.NoError(t, os.WriteFile(dictPath, []byte(`{"entries":[{"key":"cat","value":"cat"}]}`), 0o644))

	outPath := filepath.Join(dir, "report.json")

	var out, errOut bytes.Buffer

	code := cli.Run(os.Stdin, &out, &errOut, []string{"acmatch", "export", dictPath, "a cat sat", outPath})
	require.Equal(t, 0, code, errOut.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "\"value\": \"cat\"")
}
