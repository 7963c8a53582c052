package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the parnorm configuration file
// (~/.config/parnorm/config.yaml).  All numeric fields are pointers so we
// can distinguish "not set" from zero values.
type Config struct {
	// Buffer sizing defaults
	Rows      *int64   `yaml:"rows"`
	Cols      *int64   `yaml:"cols"`
	Length    *int64   `yaml:"length"`
	BlockSize *int64   `yaml:"block_size"`
	Start     *float64 `yaml:"start"`

	Tolerance *float64 `yaml:"tolerance"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string   `yaml:"server_address"`
	RatePerSec    *float64 `yaml:"rate_per_sec"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "parnorm", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or fails to parse.
func LoadConfig() Config {
	return loadConfigFrom(configPath())
}

func loadConfigFrom(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyCommonConfig applies config file defaults for the flags every
// reduction command shares, skipping any flag set on the command line.
func applyCommonConfig(c *cli.Command, cfg Config) {
	if cfg.Start != nil && !c.IsSet("start") {
		start = *cfg.Start
	}
	if cfg.Tolerance != nil && !c.IsSet("tolerance") && !c.IsSet("tol") {
		tolerance = *cfg.Tolerance
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyMatrixConfig applies sizing defaults for the matrix norm commands.
func applyMatrixConfig(c *cli.Command, cfg Config, rows, cols *int64) {
	applyCommonConfig(c, cfg)
	if cfg.Rows != nil && !c.IsSet("rows") {
		*rows = *cfg.Rows
	}
	if cfg.Cols != nil && !c.IsSet("cols") {
		*cols = *cfg.Cols
	}
}

// applyDotConfig applies sizing defaults for the dotprod command.
func applyDotConfig(c *cli.Command, cfg Config, length, blockSize *int64) {
	applyCommonConfig(c, cfg)
	if cfg.Length != nil && !c.IsSet("length") {
		*length = *cfg.Length
	}
	if cfg.BlockSize != nil && !c.IsSet("block-size") {
		*blockSize = *cfg.BlockSize
	}
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, addr *string, rps *float64) {
	applyCommonConfig(c, cfg)
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.RatePerSec != nil && !c.IsSet("rate") {
		*rps = *cfg.RatePerSec
	}
}
