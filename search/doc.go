// Package search counts the single-obstacle placements that trap the agent
// in a loop.
//
// What
//
//   - Runs a baseline simulate.Run on the unmodified grid.
//   - Chooses candidate cells with a Strategy:
//   - BaselinePath (default): free cells on the baseline trajectory, or
//     every free cell when the baseline itself loops.
//   - Exhaustive: every free cell in the grid.
//     The start cell and existing obstacles are never candidates.
//   - For each candidate derives grid.WithAddedObstacle(cell), re-runs the
//     simulation from the same start and counts Looped outcomes.
//
// Baseline-path restriction
//
//	The agent only ever inspects the cell ahead and, when that cell is
//	free, steps onto it. A free cell the baseline walk never steps onto is
//	therefore never inspected, and blocking it leaves the outcome as it
//	was. For an escaping baseline those placements all escape and can be
//	skipped. For a looping baseline they all loop, so BaselinePath falls
//	back to the Exhaustive candidate set. Both strategies return the same
//	count.
//
// Concurrency
//
//	Trials fan out over golang.org/x/sync/errgroup with a worker limit.
//	Each trial owns its grid variant and its visited set; the base grid is
//	shared read-only. Results land in per-candidate slots, so the only
//	synchronisation is the final Wait.
//
// Options
//
//   - WithContext(ctx):   cancel the fan-out; Count returns ctx.Err().
//   - WithWorkers(n):     parallel trials (n > 0); 0 = GOMAXPROCS.
//   - WithStrategy(s):    BaselinePath or Exhaustive.
//   - WithRecorder(r):    observe every trial (e.g. metrics.Recorder).
//   - WithOnTrial(fn):    per-trial hook; called concurrently.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  for a negative worker count or unknown strategy.
//   - Any error from the baseline simulate.Simulate call.
//   - ctx.Err() on cancellation.
//
// Complexity
//
//   - Time:   O(C × W×H×4) for C candidates, divided across workers.
//   - Memory: O(workers × W×H×4) for concurrent visited sets.
package search
