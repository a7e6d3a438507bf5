package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/grid"
)

// searchOptions holds flags for commands that run the obstruction search.
type searchOptions struct {
	workers  int
	strategy string
	list     bool
}

func (o *searchOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.workers, "workers", "w", -1, "Concurrent trials (0 = GOMAXPROCS; default from config)")
	cmd.Flags().StringVar(&o.strategy, "strategy", "", "Candidate cells: path or exhaustive (default from config)")
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "solve [grid-file|-]",
		Short: "Print both answers for a grid",
		Long: `Print the number of distinct cells the agent visits before leaving the
unmodified grid (part1) and the number of cells where one added obstacle
traps it in a loop (part2).

Examples:
  gridwalk solve input.txt
  cat input.txt | gridwalk solve --workers 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.open(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			out, err := s.runWalk(false)
			if err != nil {
				return err
			}
			res, err := s.runSearch(cmd.Context(), opts.workers, opts.strategy)
			if err != nil {
				return err
			}
			if out.Escaped() {
				fmt.Fprintf(a.stdout, "part1: %d\n", out.Visited)
			} else {
				fmt.Fprintf(a.stdout, "part1: loops after %d cells\n", out.Visited)
			}
			fmt.Fprintf(a.stdout, "part2: %d\n", res.Loops)
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

// newWalkCmd creates the walk command.
func (a *App) newWalkCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "walk [grid-file|-]",
		Short: "Walk the agent and print the distinct cells visited",
		Long: `Walk the agent from its start marker until it leaves the grid and print
the number of distinct cells it visited. A map on which the agent never
leaves is reported as an error.

Use --trace with --log-level trace to log every move and turn.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.open(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			out, err := s.runWalk(trace)
			if err != nil {
				return err
			}
			if !out.Escaped() {
				return fmt.Errorf("agent never leaves the grid: loops at %s after %d steps", out.Final, out.Steps)
			}
			fmt.Fprintln(a.stdout, out.Visited)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Log every transition at trace level")
	return cmd
}

// newSearchCmd creates the search command.
func (a *App) newSearchCmd() *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search [grid-file|-]",
		Short: "Count the cells where one added obstacle forces a loop",
		Long: `Try an extra obstacle on each candidate cell, re-run the walk and count the
placements that trap the agent in a loop. The start cell and existing
obstacles are never tried.

Examples:
  gridwalk search input.txt --strategy exhaustive
  gridwalk search input.txt --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.open(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			res, err := s.runSearch(cmd.Context(), opts.workers, opts.strategy)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, res.Loops)
			if opts.list {
				for _, p := range res.Obstructions {
					fmt.Fprintln(a.stdout, p)
				}
			}
			return nil
		},
	}
	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.list, "list", false, "Also print each loop-inducing cell as x,y")
	return cmd
}

// newRenderCmd creates the render command.
func (a *App) newRenderCmd() *cobra.Command {
	var mark string
	cmd := &cobra.Command{
		Use:   "render [grid-file|-]",
		Short: "Print the grid with the agent's path drawn on it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len([]rune(mark)) != 1 {
				return fmt.Errorf("--mark must be a single character, got %q", mark)
			}
			s, err := a.open(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			out, err := s.runWalk(false)
			if err != nil {
				return err
			}
			seen := make(map[grid.Point]bool, len(out.Path))
			for _, p := range out.Path {
				seen[p] = true
			}
			fmt.Fprint(a.stdout, s.grid.Render(func(p grid.Point) bool { return seen[p] }, []rune(mark)[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&mark, "mark", "X", "Character drawn on visited cells")
	return cmd
}
