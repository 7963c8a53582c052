package main

import (
	"os"

	"github.com/samcharles93/parnorm/internal/logger"
)

// stderrIsATTY is a small seam for tests.
var stderrIsATTY = stderrIsTTY

func buildLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	case "pretty":
		return logger.Pretty(os.Stderr, level)
	default:
		// auto: colors only when a human is watching.
		if stderrIsATTY() {
			return logger.Pretty(os.Stderr, level)
		}
		return logger.Text(os.Stderr, level)
	}
}
