package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/cli"
	"github.com/katalvlaran/gridwalk/config"
	"github.com/katalvlaran/gridwalk/grid"
)

const reference = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := cli.New().WithOutput(&stdout, &stderr).WithInput(strings.NewReader(stdin))
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

// writeGrid stores content in a temp file and returns its path.
func writeGrid(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSolve(t *testing.T) {
	stdout, _, err := run(t, "", "solve", writeGrid(t, reference))
	require.NoError(t, err)
	require.Equal(t, "part1: 41\npart2: 6\n", stdout)
}

func TestSolve_Stdin(t *testing.T) {
	stdout, _, err := run(t, reference, "solve", "--workers", "2", "--strategy", "exhaustive")
	require.NoError(t, err)
	require.Equal(t, "part1: 41\npart2: 6\n", stdout)
}

// TestSolve_LoopingBaseline counts every free cell off the loop as a
// loop-inducing placement.
func TestSolve_LoopingBaseline(t *testing.T) {
	stdout, _, err := run(t, ".#...\n....#\n.^...\n#....\n...#.\n", "solve")
	require.NoError(t, err)
	require.Equal(t, "part1: loops after 8 cells\npart2: 13\n", stdout)
}

func TestWalk(t *testing.T) {
	stdout, _, err := run(t, reference, "walk", "-")
	require.NoError(t, err)
	require.Equal(t, "41\n", stdout)
}

func TestWalk_Trace(t *testing.T) {
	_, stderr, err := run(t, "..#..\n.....\n#.^..\n", "walk", "--trace", "--log-level", "trace", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"action":"turn"`)
	require.Contains(t, stderr, `"visited":4`)
}

func TestWalk_Loop(t *testing.T) {
	_, _, err := run(t, ".#.\n#^#\n.#.\n", "walk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "never leaves")
}

func TestSearch_List(t *testing.T) {
	stdout, _, err := run(t, reference, "search", "--list")
	require.NoError(t, err)
	require.Equal(t, "6\n3,6\n6,7\n7,7\n1,8\n3,8\n7,9\n", stdout)
}

func TestRender(t *testing.T) {
	stdout, _, err := run(t, "..#..\n.....\n#.^..\n", "render")
	require.NoError(t, err)
	require.Equal(t, "..#..\n..XXX\n#.^..\n", stdout)
}

func TestMalformedInput(t *testing.T) {
	_, _, err := run(t, "..\n.^.\n", "solve")
	require.ErrorIs(t, err, grid.ErrMalformedGrid)
	require.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	gridPath := writeGrid(t, reference)
	promPath := filepath.Join(dir, "gridwalk.prom")
	cfgPath := filepath.Join(dir, "gridwalk.yaml")
	cfg := "input: " + gridPath + "\nsearch:\n  workers: 3\n  strategy: exhaustive\nmetrics:\n  textfile: " + promPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	stdout, _, err := run(t, "", "search", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "6\n", stdout)

	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	// exhaustive: 100 cells - 8 obstacles - start
	require.Contains(t, string(data), `gridwalk_trials_total{outcome="escaped"} 85`)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, reference, "solve", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotFound)

	_, _, err = run(t, reference, "solve", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrValidationFailed)

	_, _, err = run(t, reference, "search", "--strategy", "random")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "gridwalk version "+cli.Version)
}
