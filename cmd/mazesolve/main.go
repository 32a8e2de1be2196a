// Command mazesolve solves key-and-goal mazes from text files, replays YAML
// scenario suites, or serves the solver over HTTP.
//
// Usage:
//
//	mazesolve -maze FILE     solve one maze ("-" reads stdin)
//	mazesolve -suite FILE    run every case of a scenario suite
//	mazesolve -serve         start the HTTP service
//
// Settings not given as flags come from the environment (see package config).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/astar"
	"github.com/katalvlaran/keymaze/config"
	"github.com/katalvlaran/keymaze/maze"
	"github.com/katalvlaran/keymaze/mazefile"
	"github.com/katalvlaran/keymaze/mazesrv"
	"github.com/katalvlaran/keymaze/solver"
	"github.com/katalvlaran/keymaze/trace"
)

var (
	errUsage       = errors.New("exactly one of -maze, -suite or -serve is required")
	errSuiteFailed = errors.New("suite has failing cases")
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// cli is one invocation's resolved settings.
type cli struct {
	cfg    config.Config
	logger log.FieldLogger
	out    io.Writer
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(stdout)
	mazePath := fs.String("maze", "", "maze text file to solve, - for stdin")
	suitePath := fs.String("suite", "", "YAML scenario suite to replay")
	serve := fs.Bool("serve", false, "serve the solver over HTTP")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "log every search expansion")
	fs.BoolVar(&cfg.MultiKey, "multikey", cfg.MultiKey, "accept mazes with several keys")
	fs.IntVar(&cfg.MaxExpansions, "max-expansions", cfg.MaxExpansions, "per-phase expansion cap, 0 for unlimited")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if cfg.MaxExpansions < 0 {
		return fmt.Errorf("%w: -max-expansions=%d is negative", config.ErrInvalid, cfg.MaxExpansions)
	}

	selected := 0
	for _, set := range []bool{*mazePath != "", *suitePath != "", *serve} {
		if set {
			selected++
		}
	}
	if selected != 1 {
		fs.Usage()
		return errUsage
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)
	if cfg.Trace && !logger.IsLevelEnabled(log.DebugLevel) {
		logger.SetLevel(log.DebugLevel)
	}
	c := &cli{cfg: cfg, logger: logger, out: stdout}

	switch {
	case *mazePath == "-":
		return c.solveReader(stdin)
	case *mazePath != "":
		return c.solveFile(*mazePath)
	case *suitePath != "":
		return c.runSuite(*suitePath)
	default:
		return c.serve()
	}
}

func (c *cli) mazeOptions() maze.Options {
	opts := maze.DefaultOptions()
	opts.MultiKey = c.cfg.MultiKey
	return opts
}

func (c *cli) solveFile(path string) error {
	m, err := mazefile.Load(path, c.mazeOptions())
	if err != nil {
		return err
	}
	return c.report(m)
}

func (c *cli) solveReader(r io.Reader) error {
	m, err := mazefile.Read(r, c.mazeOptions())
	if err != nil {
		return err
	}
	return c.report(m)
}

// solve runs the solver under a fresh run ID.
func (c *cli) solve(m *maze.Maze) (*solver.Route, error) {
	logger := c.logger.WithField("run_id", uuid.NewString())
	opts := []astar.Option{astar.WithMaxExpansions(c.cfg.MaxExpansions)}
	if c.cfg.Trace {
		opts = append(opts, trace.Options(logger)...)
	}

	route, err := solver.Solve(m, opts...)
	if err != nil {
		logger.WithError(err).Error("solve failed")
		return nil, err
	}
	logger.WithFields(log.Fields{
		"found":    route.Found,
		"cost":     route.Cost,
		"expanded": route.Expanded,
	}).Info("solved")

	return route, nil
}

// report prints the route and its replayed verdict.
func (c *cli) report(m *maze.Maze) error {
	route, err := c.solve(m)
	if err != nil {
		return err
	}
	if !route.Found {
		fmt.Fprintln(c.out, route)
		return nil
	}

	valid, cost := solver.Check(m, route)
	fmt.Fprintf(c.out, "moves: %s\n", route)
	fmt.Fprintf(c.out, "valid=%t cost=%d\n", valid, cost)
	return nil
}

// runSuite replays every case and prints one PASS/FAIL line per case.
func (c *cli) runSuite(path string) error {
	suite, err := mazefile.LoadSuite(path)
	if err != nil {
		return err
	}

	failed := 0
	for _, tc := range suite.Mazes {
		if msg := c.check(tc); msg != "" {
			failed++
			fmt.Fprintf(c.out, "FAIL %s: %s\n", tc.Name, msg)
			continue
		}
		fmt.Fprintf(c.out, "PASS %s\n", tc.Name)
	}
	fmt.Fprintf(c.out, "%d/%d passed\n", len(suite.Mazes)-failed, len(suite.Mazes))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSuiteFailed, failed, len(suite.Mazes))
	}
	return nil
}

// check returns an empty string when tc behaves as expected.
func (c *cli) check(tc mazefile.Case) string {
	m, err := tc.Build()
	switch {
	case tc.Expect.Malformed && err == nil:
		return "expected malformed maze"
	case tc.Expect.Malformed:
		return ""
	case err != nil:
		return err.Error()
	}

	route, err := c.solve(m)
	if err != nil {
		return err.Error()
	}

	var problems []string
	if route.Found != tc.Expect.Solvable {
		problems = append(problems, fmt.Sprintf("found=%t want %t", route.Found, tc.Expect.Solvable))
	}
	if route.Found {
		if valid, cost := solver.Check(m, route); !valid || cost != tc.Expect.Cost {
			problems = append(problems, fmt.Sprintf("valid=%t cost=%d want cost %d", valid, cost, tc.Expect.Cost))
		}
	}
	return strings.Join(problems, "; ")
}

func (c *cli) serve() error {
	gin.SetMode(c.cfg.GinMode)
	controller := mazesrv.NewController(mazesrv.Config{
		Logger:        c.logger,
		MaxExpansions: c.cfg.MaxExpansions,
		Trace:         c.cfg.Trace,
		MultiKey:      c.cfg.MultiKey,
	})
	router := mazesrv.NewRouter(controller, c.cfg.BaseURL)

	c.logger.WithFields(log.Fields{
		"addr":     c.cfg.Addr,
		"base_url": c.cfg.BaseURL,
	}).Info("serving")
	return router.Run(c.cfg.Addr)
}
