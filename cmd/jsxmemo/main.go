// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The jsxmemo command wraps function-valued markup attributes of
// component source files in memoization calls.
//
// Usage:
//
//	jsxmemo [flags] [file ...]
//
// With file arguments it transforms each file and prints the results
// in argument order, or with -w writes them back. With -c it
// transforms the given code. Otherwise it transforms standard input,
// or starts an interactive loop if standard input is a terminal.
//
// Settings may also come from a .env file or JSXMEMO_* environment
// variables; see package go.jsxmemo.dev/internal/config.
package main // import "go.jsxmemo.dev/cmd/jsxmemo"

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"go.jsxmemo.dev/internal/cache"
	"go.jsxmemo.dev/internal/config"
	"go.jsxmemo.dev/repl"
	"go.jsxmemo.dev/transform"
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("jsxmemo: ")
	log.SetFlags(0)

	cfg, err := config.Load("jsxmemo", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Print(err)
		return 2
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Print(err)
		return 2
	}
	defer logger.Sync()

	if cfg.Code == "" && len(cfg.Files) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to jsxmemo (go.jsxmemo.dev)")
		repl.REPL(cfg.Options(logger))
		return 0
	}
	return run(cfg, logger, os.Stdin, os.Stdout, os.Stderr)
}

// run performs a non-interactive invocation and returns the exit status.
func run(cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cfg.Options(logger)
	switch {
	case cfg.Code != "":
		return transformOne("cmdline", cfg.Code, opts, stdout, stderr)
	case len(cfg.Files) == 0:
		src, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return transformOne("<stdin>", src, opts, stdout, stderr)
	}

	c, err := cache.New(cfg.CacheSize)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	outputs, errs := transformFiles(c, cfg.Files, cfg.Jobs, cfg.Write, opts, logger)
	status := 0
	for i := range cfg.Files {
		if errs[i] != nil {
			repl.PrintError(stderr, errs[i])
			status = 1
			continue
		}
		if !cfg.Write {
			stdout.Write(outputs[i])
		}
	}
	hits, misses := c.Stats()
	logger.Debug("batch done", zap.Int("files", len(cfg.Files)), zap.Int64("cache_hits", hits), zap.Int64("cache_misses", misses))
	return status
}

func transformOne(filename string, src interface{}, opts transform.Options, stdout, stderr io.Writer) int {
	out, _, err := transform.Source(filename, src, opts)
	if err != nil {
		repl.PrintError(stderr, err)
		return 1
	}
	stdout.Write(out)
	return 0
}

// transformFiles transforms files with at most jobs in flight.
// A failure affects only its own file. If write is set, each changed
// output replaces its file.
func transformFiles(c *cache.Cache, files []string, jobs int, write bool, opts transform.Options, logger *zap.Logger) ([][]byte, []error) {
	outputs := make([][]byte, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			outputs[i], errs[i] = transformFile(c, file, write, opts, logger)
			return nil
		})
	}
	g.Wait()
	return outputs, errs
}

func transformFile(c *cache.Cache, file string, write bool, opts transform.Options, logger *zap.Logger) ([]byte, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	out, res, err := c.Transform(file, src, opts)
	if err != nil {
		logger.Debug("transform failed", zap.String("file", file), zap.Error(err))
		return nil, err
	}
	logger.Info("transformed",
		zap.String("file", file),
		zap.Int("rewrites", res.Total()),
		zap.Bool("imported", res.Imported))
	if write && !bytes.Equal(src, out) {
		info, err := os.Stat(file)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(file, out, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("writing %s: %w", file, err)
		}
	}
	return out, nil
}
