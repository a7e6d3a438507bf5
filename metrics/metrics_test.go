package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/metrics"
	"github.com/katalvlaran/gridwalk/search"
	"github.com/katalvlaran/gridwalk/simulate"
)

func TestRecorder_ObserveTrial(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.ObserveTrial(simulate.Outcome{Kind: simulate.Looped, Steps: 12}, time.Millisecond)
	rec.ObserveTrial(simulate.Outcome{Kind: simulate.Escaped, Steps: 3}, time.Millisecond)
	rec.ObserveTrial(simulate.Outcome{Kind: simulate.Escaped, Steps: 4}, time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "gridwalk_trials_total")
	require.NoError(t, err)
	require.Equal(t, 2, n, "one series per outcome")

	want := `
# HELP gridwalk_trials_total Total number of obstruction trials by outcome
# TYPE gridwalk_trials_total counter
gridwalk_trials_total{outcome="escaped"} 2
gridwalk_trials_total{outcome="looped"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "gridwalk_trials_total"))
}

// TestRecorder_WithSearch wires the recorder into a real search.
func TestRecorder_WithSearch(t *testing.T) {
	g, err := grid.ParseString("....#.....\n.........#\n..........\n..#.......\n.......#..\n..........\n.#..^.....\n........#.\n#.........\n......#...\n")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	res, err := search.Count(g, search.WithRecorder(metrics.NewRecorder(reg)))
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "gridwalk_trial_steps")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	path := filepath.Join(t.TempDir(), "gridwalk.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `gridwalk_trials_total{outcome="looped"} 6`)
	require.Contains(t, string(data), "gridwalk_trial_steps_count 40")
	require.Equal(t, 40, res.Candidates)
}
