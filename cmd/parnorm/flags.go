package main

import (
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/parnorm/internal/reduce"
)

var (
	start     float64
	tolerance float64
	jsonOut   bool
	logLevel  string
	logFormat string
)

func commonReductionFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.Float64Flag{
			Name:        "start",
			Usage:       "first value of the generated ramp buffer",
			Value:       0,
			Destination: &start,
		},
		&cli.Float64Flag{
			Name:        "tolerance",
			Aliases:     []string{"tol"},
			Usage:       "absolute tolerance for the reference comparison",
			Value:       reduce.DefaultTolerance,
			Destination: &tolerance,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "print the result as JSON instead of text",
			Destination: &jsonOut,
		},
	}, loggingFlags()...)
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (auto, pretty, json, text)",
			Value:       "auto",
			Destination: &logFormat,
		},
	}
}
