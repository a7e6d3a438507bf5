package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/config"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/logging"
	"github.com/katalvlaran/gridwalk/metrics"
	"github.com/katalvlaran/gridwalk/search"
	"github.com/katalvlaran/gridwalk/simulate"
)

var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"block": profile.BlockProfile,
	"mutex": profile.MutexProfile,
	"trace": profile.TraceProfile,
}

// session is everything one subcommand invocation needs: the resolved
// configuration, a logger, the parsed grid and the optional profiler and
// metrics registry. close must be called once the command is done.
type session struct {
	cfg      *config.Config
	log      *bolt.Logger
	grid     *grid.Grid
	source   string
	began    time.Time
	registry *prometheus.Registry
	recorder *metrics.Recorder
	profiler interface{ Stop() }
}

// open resolves configuration (file, then flags), builds the logger, starts
// profiling if asked and parses the grid from args[0], the configured
// input or stdin.
func (a *App) open(cmd *cobra.Command, args []string) (*session, error) {
	cfg := config.Default()
	if a.global.configPath != "" {
		loaded, err := config.LoadFile(a.global.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	a.applyOverrides(cfg)
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Log.Output = a.stderr
	s := &session{
		cfg:    cfg,
		log:    logging.New(cfg.Log),
		source: cfg.Input,
		began:  time.Now(),
	}
	if s.source == "" {
		s.source = "-"
	}

	g, err := readGrid(cmd.InOrStdin(), s.source)
	if err != nil {
		return nil, err
	}
	s.grid = g
	logging.With(s.log.Debug(), logging.Component("cli"), logging.Input(s.source), logging.Dimensions(g),
		logging.State(g.Start()), logging.Count("obstacles", g.ObstacleCount())).Msg("grid loaded")

	if cfg.Metrics.Textfile != "" {
		s.registry = prometheus.NewRegistry()
		s.recorder = metrics.NewRecorder(s.registry)
	}
	if mode := cfg.Profile.Mode; mode != "" {
		opts := []func(*profile.Profile){profileModes[mode], profile.Quiet, profile.NoShutdownHook}
		if cfg.Profile.Dir != "" {
			opts = append(opts, profile.ProfilePath(cfg.Profile.Dir))
		}
		s.profiler = profile.Start(opts...)
	}

	return s, nil
}

// applyOverrides copies every non-empty global flag over cfg.
func (a *App) applyOverrides(cfg *config.Config) {
	if a.global.logLevel != "" {
		cfg.Log.Level = a.global.logLevel
	}
	if a.global.logFormat != "" {
		cfg.Log.Format = a.global.logFormat
	}
	if a.global.profileMode != "" {
		cfg.Profile.Mode = a.global.profileMode
	}
	if a.global.profileDir != "" {
		cfg.Profile.Dir = a.global.profileDir
	}
	if a.global.metricsFile != "" {
		cfg.Metrics.Textfile = a.global.metricsFile
	}
}

// readGrid parses the grid from stdin for "-" and from a file otherwise.
func readGrid(stdin io.Reader, src string) (*grid.Grid, error) {
	r := stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open grid: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := grid.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid %s: %w", src, err)
	}
	return g, nil
}

// runWalk runs the baseline simulation, logging every transition at trace
// level when trace is set.
func (s *session) runWalk(trace bool) (simulate.Outcome, error) {
	opts := []simulate.Option{simulate.WithPath()}
	if trace {
		opts = append(opts, simulate.WithOnStep(func(step int, st grid.AgentState, act simulate.Action) {
			logging.With(s.log.Trace(), logging.Action(step, act), logging.State(st)).Msg("step")
		}))
	}
	out, err := simulate.Run(s.grid, opts...)
	if err != nil {
		return out, fmt.Errorf("failed to simulate: %w", err)
	}
	logging.With(s.log.Info(), logging.Component("simulate"), logging.Outcome(out)).Msg("walk finished")
	return out, nil
}

// runSearch runs the obstruction search with the session's configuration,
// overridden by a non-negative workers value or a non-empty strategy.
func (s *session) runSearch(ctx context.Context, workers int, strategy string) (*search.Result, error) {
	if workers >= 0 {
		s.cfg.Search.Workers = workers
	}
	if strategy != "" {
		s.cfg.Search.Strategy = strategy
	}
	st, err := search.ParseStrategy(s.cfg.Search.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithWorkers(s.cfg.Search.Workers),
		search.WithStrategy(st),
		search.WithOnTrial(func(cell grid.Point, out simulate.Outcome) {
			logging.With(s.log.Debug(), logging.Cell(cell), logging.Outcome(out)).Msg("trial")
		}),
	}
	if s.recorder != nil {
		opts = append(opts, search.WithRecorder(s.recorder))
	}

	began := time.Now()
	res, err := search.Count(s.grid, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	logging.With(s.log.Info(), logging.Component("search"), logging.Strategy(st), logging.Workers(s.cfg.Search.Workers),
		logging.Count("candidates", res.Candidates), logging.Count("loops", res.Loops),
		logging.Duration(time.Since(began))).Msg("search finished")
	return res, nil
}

// close stops the profiler and flushes metrics.
func (s *session) close() error {
	if s.profiler != nil {
		s.profiler.Stop()
	}
	if s.registry != nil {
		if err := metrics.WriteTextfile(s.cfg.Metrics.Textfile, s.registry); err != nil {
			logging.With(s.log.Error(), logging.ErrorField(err)).Msg("metrics not written")
			return err
		}
	}
	logging.With(s.log.Debug(), logging.Duration(time.Since(s.began))).Msg("done")
	return nil
}
