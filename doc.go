// Package gridwalk is an in-memory simulator for a single agent walking a
// character grid, with loop detection and an obstruction search on top.
//
// What is gridwalk?
//
//	A small, dependency-light toolkit built from three layers:
//		• grid:     immutable map of free and obstacle cells, headings, parser
//		• simulate: one deterministic walk, classified Escaped or Looped
//		• search:   parallel single-obstacle trials counting forced loops
//
//	plus the surroundings needed to run it as a tool:
//		• config:   YAML run configuration
//		• logging:  structured logging (bolt)
//		• metrics:  Prometheus trial metrics
//		• cli:      cobra commands (solve, walk, search, render, version)
//
// The walking rule
//
//	Look at the cell ahead. Outside the grid: stop, Escaped. Obstacle: turn
//	90° clockwise in place. Otherwise: step forward. A repeated
//	(position, heading) pair stops the walk as Looped.
//
// Quick ASCII example:
//
//	..#..        ..#..
//	.....   →    ..XXX     Escaped, 4 cells visited
//	#.^..        #.^..
//
// Under the hood:
//
//	grid/              : Grid, Heading, Point, AgentState, Parse, Render
//	simulate/          : Simulate, Run, Outcome, functional Options
//	search/            : Count, CountLoopInducingObstacles, strategies
//	config/            : Config, Load, LoadFile, Validate
//	logging/           : New, Field helpers
//	metrics/           : Recorder, WriteTextfile
//	cli/, cmd/gridwalk : command-line entry point
//	examples/          : runnable scenarios
package gridwalk
