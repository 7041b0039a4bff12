package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePath = "../../testdata/example.txt"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	type testCase struct {
		name string
		args []string
		want string
	}

	cases := []testCase{
		{"default ranges", []string{"solve", examplePath}, "46\n"},
		{"values", []string{"solve", "--variant", "values", examplePath}, "35\n"},
		{"parallel", []string{"solve", "--workers", "3", examplePath}, "46\n"},
		{"verbose", []string{"-v", "solve", examplePath}, "46\n"},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			out, err := execute(t, "", tCase.args...)
			require.NoError(t, err)
			assert.Equal(t, tCase.want, out)
		})
	}
}

func TestSolve_Stdin(t *testing.T) {
	example, err := os.ReadFile(examplePath)
	require.NoError(t, err)

	out, err := execute(t, string(example), "solve", "--variant", "values", "-")
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)
}

func TestSolve_Profile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[profiles.one]\nvariant = \"values\"\nworkers = 2\n"), 0o600))

	out, err := execute(t, "", "solve", "--config", path, "--profile", "one", examplePath)
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)

	out, err = execute(t, "", "solve", "--config", path, "--profile", "one", "--variant", "ranges", examplePath)
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)

	_, err = execute(t, "", "solve", "--config", path, "--profile", "two", examplePath)
	require.Error(t, err)
}

func TestSolve_Env(t *testing.T) {
	t.Setenv("ALMANAC_VARIANT", "values")

	out, err := execute(t, "", "solve", examplePath)
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "", "solve", "--variant", "pairs", examplePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")

	_, err = execute(t, "", "solve", "missing.txt")
	require.Error(t, err)

	_, err = execute(t, "seeds: 1\n", "solve", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no map blocks")

	_, err = execute(t, "", "solve")
	require.Error(t, err)
}

func TestTrace(t *testing.T) {
	out, err := execute(t, "", "trace", examplePath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "seed [79, 93)", lines[0])
	assert.Equal(t, "  seed-to-soil: [81, 95)", lines[1])
	assert.Equal(t, "  humidity-to-location: [82, 85) [60, 61) [46, 56)", lines[7])
	assert.Equal(t, "seed [55, 68)", lines[8])
	assert.Equal(t, "  fertilizer-to-water: [53, 57) [61, 70)", lines[11])
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "almanac version dev")
}
