package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rinkpath/cli"
	"github.com/katalvlaran/rinkpath/report"
	"github.com/katalvlaran/rinkpath/search"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{"rinks/"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &cli.Config{
		PuzzlePath: "rinks/",
		Format:     report.FormatText,
		LogLevel:   "warn",
		LogFormat:  "text",
		Workers:    1,
	}, cfg)
}

func TestParse_AllFlags(t *testing.T) {
	args := []string{
		"-puzzle", "a.hcl",
		"-algorithms", "A*, bfs,,ida_star",
		"-format", "JSON",
		"-log-level", "DEBUG",
		"-log-format", "json",
		"-workers", "4",
	}
	cfg, exit, err := cli.Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "a.hcl", cfg.PuzzlePath)
	assert.Equal(t, []search.Algorithm{search.AStar, search.BFS, search.IDAStar}, cfg.Algorithms)
	assert.Equal(t, report.FormatJSON, cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 4, cfg.Workers)
}

func TestParse_PathPrecedence(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-p", "short.hcl", "positional.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "short.hcl", cfg.PuzzlePath)

	cfg, _, err = cli.Parse([]string{"-puzzle", "long.hcl", "-p", "short.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "long.hcl", cfg.PuzzlePath)
}

func TestParse_HelpAndMissingPath(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		cfg, exit, err := cli.Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_InvalidUsage(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":      {"-nope", "x.hcl"},
		"bad format":        {"-format", "yaml", "x.hcl"},
		"bad log format":    {"-log-format", "xml", "x.hcl"},
		"bad log level":     {"-log-level", "trace", "x.hcl"},
		"zero workers":      {"-workers", "0", "x.hcl"},
		"unknown algorithm": {"-algorithms", "bfs,dijkstra", "x.hcl"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, exit, err := cli.Parse(args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, exit)

			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Equal(t, exitErr.Message, err.Error())
		})
	}
}
