// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lockwell/keyforge/internal/logging"
)

// Environment variable names. These are the only two environment
// variables this application reads.
const (
	EnvOutputRoot = "KEYFORGE_OUTPUT_ROOT"
	EnvLogLevel   = "KEYFORGE_LOG_LEVEL"
)

const defaultOutputRoot = "./keyforge-export"

// Config is the process-wide configuration, derived once at startup from
// the environment and never mutated.
type Config struct {
	// OutputRoot is the directory export bundles and intermediate
	// artifacts are written beneath.
	OutputRoot string

	// LogLevel is one of the levels internal/logging recognizes.
	LogLevel string

	// Log is a logger configured per LogLevel, ready for injection into
	// the effect executor and port adapters.
	Log zerolog.Logger
}

// New reads OutputRoot and LogLevel from the environment, applying
// documented defaults, and configures logging accordingly.
func New() (*Config, error) {
	cfg := &Config{
		OutputRoot: defaultOutputRoot,
		LogLevel:   logging.LogLevelInfo,
	}

	if v := os.Getenv(EnvOutputRoot); v != "" {
		cfg.OutputRoot = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err := logging.SetLoggingLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	cfg.Log = zerolog.New(consoleWriter).With().
		Timestamp().
		Str("output_root", cfg.OutputRoot).
		Str("log_level", cfg.LogLevel).
		Logger()

	return cfg, nil
}
