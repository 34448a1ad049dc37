// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go.jsxmemo.dev/internal/config"
)

const (
	good    = "const A = () => <b onClick={() => go()} />;\n"
	goodOut = "import useEventCallback from 'react-use-event-callback';\n" +
		"const A = () => <b onClick={useEventCallback(() => go())} />;\n"
	bad = "let a;\nlet a;\n"
)

func writeFiles(t *testing.T, contents ...string) []string {
	dir := t.TempDir()
	var files []string
	for i, data := range contents {
		file := filepath.Join(dir, string(rune('a'+i))+".jsx")
		require.NoError(t, os.WriteFile(file, []byte(data), 0o644))
		files = append(files, file)
	}
	return files
}

func TestRunFiles(t *testing.T) {
	files := writeFiles(t, good, bad, good, "f();\n")
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{Files: files, Jobs: 1, CacheSize: 8}

	var stdout, stderr bytes.Buffer
	status := run(cfg, zap.New(core), strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Equal(t, goodOut+goodOut+"f();\n", stdout.String())
	assert.Equal(t, files[1]+":2:5: let a already declared at "+files[1]+":1:5\n", stderr.String())

	done := logs.FilterMessage("batch done").All()
	require.Len(t, done, 1)
	ctx := done[0].ContextMap()
	assert.EqualValues(t, 4, ctx["files"])
	assert.EqualValues(t, 1, ctx["cache_hits"])
	assert.Len(t, logs.FilterMessage("transformed").All(), 3)
}

func TestRunWrite(t *testing.T) {
	files := writeFiles(t, good, "f();\n")
	cfg := &config.Config{Files: files, Jobs: 1, CacheSize: 8, Write: true}

	var stdout, stderr bytes.Buffer
	status := run(cfg, zap.NewNop(), strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, goodOut, string(data))
	data, err = os.ReadFile(files[1])
	require.NoError(t, err)
	assert.Equal(t, "f();\n", string(data))
}

func TestRunCodeAndStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run(&config.Config{Code: good}, zap.NewNop(), strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, status)
	assert.Equal(t, goodOut, stdout.String())

	stdout.Reset()
	status = run(&config.Config{}, zap.NewNop(), strings.NewReader(bad), &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "<stdin>:2:5: let a already declared at <stdin>:1:5\n", stderr.String())
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.jsx")
	var stdout, stderr bytes.Buffer
	status := run(&config.Config{Files: []string{missing}, Jobs: 1, CacheSize: 1}, zap.NewNop(), nil, &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), missing)
}
