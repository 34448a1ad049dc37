// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the jsxmemo command.
//
// Settings are read from a .env file, then from JSXMEMO_* environment
// variables, then from command-line flags; each source overrides the
// one before it. Variables already present in the environment are not
// replaced by the .env file.
package config // import "go.jsxmemo.dev/internal/config"

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go.jsxmemo.dev/transform"
)

// Environment variables.
const (
	EnvMode      = "JSXMEMO_MODE"
	EnvPrimitive = "JSXMEMO_PRIMITIVE"
	EnvSource    = "JSXMEMO_SOURCE"
	EnvFactory   = "JSXMEMO_FACTORY"
	EnvJobs      = "JSXMEMO_JOBS"
	EnvCacheSize = "JSXMEMO_CACHE_SIZE"
	EnvVerbose   = "JSXMEMO_VERBOSE"
	EnvLogFormat = "JSXMEMO_LOG" // "console" or "json"
)

const (
	defaultJobs      = 4
	defaultCacheSize = 256
)

type Config struct {
	Mode      transform.Mode
	Primitive string
	Source    string
	Factory   string

	Write     bool   // rewrite files in place
	Code      string // snippet given by -c
	Jobs      int    // files transformed in parallel
	CacheSize int    // entries in the output cache
	Verbose   bool
	LogFormat string

	Files []string
}

// Load reads the configuration for a command named name from the
// given .env files (".env" if none), the environment, and args.
// A missing .env file is not an error.
func Load(name string, args []string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := &Config{
		Primitive: strings.TrimSpace(os.Getenv(EnvPrimitive)),
		Source:    strings.TrimSpace(os.Getenv(EnvSource)),
		Factory:   strings.TrimSpace(os.Getenv(EnvFactory)),
		LogFormat: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogFormat)), "console"),
	}
	mode := firstNonEmpty(strings.TrimSpace(os.Getenv(EnvMode)), transform.EventCallback.String())
	var err error
	if cfg.Jobs, err = envInt(EnvJobs, defaultJobs); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = envInt(EnvCacheSize, defaultCacheSize); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = envBool(EnvVerbose); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&mode, "mode", mode, "memoization `mode`: eventcallback or scoped")
	fs.StringVar(&cfg.Primitive, "primitive", cfg.Primitive, "dotted `name` of the memoization primitive")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "`module` the primitive is imported from")
	fs.StringVar(&cfg.Factory, "factory", cfg.Factory, "dotted `name` of the element factory (scoped mode)")
	fs.BoolVar(&cfg.Write, "w", false, "write result to source files instead of stdout")
	fs.StringVar(&cfg.Code, "c", "", "transform `code` given on the command line")
	fs.IntVar(&cfg.Jobs, "j", cfg.Jobs, "transform up to `n` files in parallel")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log each rewrite")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Files = fs.Args()

	if cfg.Mode, err = transform.ParseMode(mode); err != nil {
		return nil, err
	}
	if cfg.Jobs < 1 {
		return nil, fmt.Errorf("invalid job count %d", cfg.Jobs)
	}
	if cfg.CacheSize < 1 {
		return nil, fmt.Errorf("invalid cache size %d", cfg.CacheSize)
	}
	if cfg.Code != "" && len(cfg.Files) > 0 {
		return nil, errors.New("-c and file arguments are mutually exclusive")
	}
	if cfg.Write && len(cfg.Files) == 0 {
		return nil, errors.New("-w requires file arguments")
	}
	if err := cfg.Options(nil).Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options returns the transform options selected by cfg.
func (cfg *Config) Options(logger *zap.Logger) transform.Options {
	return transform.Options{
		Mode:           cfg.Mode,
		Primitive:      cfg.Primitive,
		Source:         cfg.Source,
		ElementFactory: cfg.Factory,
		Logger:         logger,
	}
}

// Logger builds the command's logger. Verbose output includes the
// debug entries of every rewrite.
func (cfg *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.LogFormat
	if cfg.LogFormat == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if cfg.Verbose {
		zc.Level.SetLevel(zap.DebugLevel)
	}
	zc.Sampling = nil
	zc.DisableStacktrace = true
	return zc.Build()
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envBool(key string) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
