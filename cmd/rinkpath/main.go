// Command rinkpath loads rink puzzles from HCL files, runs the requested
// search algorithms over each one and prints a report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/rinkpath/cli"
	"github.com/katalvlaran/rinkpath/ctxlog"
	"github.com/katalvlaran/rinkpath/puzzle"
	"github.com/katalvlaran/rinkpath/report"
	"github.com/katalvlaran/rinkpath/runner"
)

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves every puzzle found and writes the reports to outW.
// Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	puzzles, err := puzzle.NewLoader().Load(ctx, cfg.PuzzlePath)
	if err != nil {
		return err
	}

	for _, p := range puzzles {
		algs := p.Algorithms
		if len(cfg.Algorithms) > 0 {
			algs = cfg.Algorithms
		}
		logger.Info("solving puzzle", "puzzle", p.Name, "file", p.File, "algorithms", len(algs))

		outcomes, err := runner.Run(ctx, p.Grid, algs, runner.WithWorkers(cfg.Workers))
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", p.Name, err)
		}
		for _, oc := range outcomes {
			logger.Info("algorithm finished",
				"puzzle", p.Name, "algorithm", oc.Result.Algorithm.String(), "elapsed", oc.Elapsed)
		}
		if err := report.Write(outW, cfg.Format, p.Name, runner.Results(outcomes)); err != nil {
			return err
		}
	}
	return nil
}
