package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/rinkpath/report"
	"github.com/katalvlaran/rinkpath/search"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command configuration.
type Config struct {
	// PuzzlePath is a puzzle file or a directory of them.
	PuzzlePath string
	// Algorithms overrides the per-puzzle algorithm lists when non-empty.
	Algorithms []search.Algorithm
	Format     report.Format
	LogLevel   string
	LogFormat  string
	Workers    int
}

// Parse processes command-line arguments. It returns the Config, a flag
// telling the caller to exit cleanly (help was shown), or an *ExitError
// with code 2 for invalid usage.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("rinkpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rinkpath - Shortest-path search over weighted ice rinks.

Usage:
  rinkpath [options] [PUZZLE_PATH]

Arguments:
  PUZZLE_PATH
    Path to a single .hcl puzzle file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	puzzleFlag := flagSet.String("puzzle", "", "Path to the puzzle file or directory.")
	pFlag := flagSet.String("p", "", "Path to the puzzle file or directory (shorthand).")
	algorithmsFlag := flagSet.String("algorithms", "", "Comma-separated algorithms to run, overriding the puzzle files (bfs, dfs, ucs, greedy, astar, idastar).")
	formatFlag := flagSet.String("format", "text", "Report format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 1, "Number of algorithms searched concurrently per puzzle.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *puzzleFlag != "" {
		path = *puzzleFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		slog.Debug("No puzzle path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text' or 'json'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}

	algs, err := parseAlgorithms(*algorithmsFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid algorithms: " + err.Error()}
	}

	cfg := &Config{
		PuzzlePath: path,
		Algorithms: algs,
		Format:     format,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		Workers:    *workersFlag,
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// parseAlgorithms reads a comma-separated list, skipping empty items.
func parseAlgorithms(list string) ([]search.Algorithm, error) {
	var out []search.Algorithm
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		alg, err := search.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, alg)
	}
	return out, nil
}
