// Package simulate walks a single agent through a grid.Grid until it either
// leaves the grid (Escaped) or repeats a (position, heading) state (Looped).
//
// What
//
//   - Step rule, repeated until termination:
//     1. Look at the cell one unit ahead of the agent.
//     2. Outside the grid: stop with Escaped.
//     3. Obstacle: stay put and turn 90° clockwise.
//     4. Free: move onto it, keeping the heading.
//   - Every resulting state is checked against the states seen so far in this
//     run; a repeat stops the run with Looped before anything else happens.
//   - The start state counts as seen at step 0, and the start cell counts as
//     visited.
//
// Why
//
//   - A bounded grid with a deterministic transition has at most W×H×4
//     states, so every run terminates in one of the two outcomes within that
//     many transitions.
//
// Determinism
//
//	No randomness and no shared state: identical inputs give identical
//	outcomes, visited counts and paths.
//
// Usage
//
//	out, err := simulate.Run(g)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrStartBlocked, ErrInvalidHeading,
//	    // ErrOptionViolation or ErrStepLimit
//	}
//	if out.Escaped() {
//	    fmt.Println(out.Visited)
//	}
//
//	// With functional options:
//	out, err := simulate.Simulate(g, start, grid.North,
//	    simulate.WithPath(),
//	    simulate.WithOnStep(func(step int, s grid.AgentState, a simulate.Action) { /* ... */ }),
//	)
//
// Complexity
//
//   - Time:   O(W×H×4) transitions in the worst case.
//   - Memory: O(W×H×4) for the per-run state set.
package simulate
