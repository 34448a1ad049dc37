// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jsxmemo.dev/internal/config"
	"go.jsxmemo.dev/transform"
)

var envKeys = []string{
	config.EnvMode, config.EnvPrimitive, config.EnvSource, config.EnvFactory,
	config.EnvJobs, config.EnvCacheSize, config.EnvVerbose, config.EnvLogFormat,
}

// clearEnv unsets every variable the loader reads, restoring them
// when the test ends.
func clearEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load("jsxmemo", nil, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, transform.EventCallback, cfg.Mode)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Files)
	assert.Equal(t, transform.Options{}, cfg.Options(nil))
}

func TestEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMode, "scoped")
	t.Setenv(config.EnvPrimitive, " hooks.useStable ")
	t.Setenv(config.EnvSource, "my-hooks")
	t.Setenv(config.EnvFactory, "h")
	t.Setenv(config.EnvJobs, "8")
	t.Setenv(config.EnvVerbose, "true")

	cfg, err := config.Load("jsxmemo", []string{"a.jsx", "b.jsx"}, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, transform.Scoped, cfg.Mode)
	assert.Equal(t, "hooks.useStable", cfg.Primitive)
	assert.Equal(t, "my-hooks", cfg.Source)
	assert.Equal(t, "h", cfg.Factory)
	assert.Equal(t, 8, cfg.Jobs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"a.jsx", "b.jsx"}, cfg.Files)

	opts := cfg.Options(nil)
	assert.Equal(t, "h", opts.ElementFactory)
	assert.Equal(t, transform.Scoped, opts.Mode)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMode, "scoped")
	t.Setenv(config.EnvJobs, "8")

	cfg, err := config.Load("jsxmemo", []string{"-mode", "eventcallback", "-j", "2", "-primitive", "useStable", "-w", "x.jsx"}, noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, transform.EventCallback, cfg.Mode)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, "useStable", cfg.Primitive)
	assert.True(t, cfg.Write)
	assert.Equal(t, []string{"x.jsx"}, cfg.Files)
}

func TestEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSource, "from-environment")

	file := filepath.Join(t.TempDir(), "test.env")
	data := "JSXMEMO_PRIMITIVE=fromFile\nJSXMEMO_SOURCE=from-file\nJSXMEMO_CACHE_SIZE=16\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0o644))

	cfg, err := config.Load("jsxmemo", nil, file)
	require.NoError(t, err)
	assert.Equal(t, "fromFile", cfg.Primitive)
	assert.Equal(t, "from-environment", cfg.Source, "the environment takes precedence over .env")
	assert.Equal(t, 16, cfg.CacheSize)
}

func TestErrors(t *testing.T) {
	for _, test := range []struct {
		env  map[string]string
		args []string
		want string
	}{
		{args: []string{"-mode", "memo"}, want: `unknown mode "memo"`},
		{args: []string{"-j", "0"}, want: "invalid job count 0"},
		{args: []string{"-c", "f()", "a.jsx"}, want: "mutually exclusive"},
		{args: []string{"-w"}, want: "-w requires file arguments"},
		{args: []string{"-primitive", "use-it"}, want: `invalid name "use-it"`},
		{args: []string{"-nosuchflag"}, want: "flag provided but not defined"},
		{env: map[string]string{config.EnvJobs: "many"}, want: config.EnvJobs},
		{env: map[string]string{config.EnvVerbose: "loud"}, want: config.EnvVerbose},
		{env: map[string]string{config.EnvCacheSize: "-1"}, want: "invalid cache size -1"},
	} {
		clearEnv(t)
		for k, v := range test.env {
			t.Setenv(k, v)
		}
		_, err := config.Load("jsxmemo", test.args, noEnvFile(t))
		if assert.Error(t, err, "args %v env %v", test.args, test.env) {
			assert.Contains(t, err.Error(), test.want)
		}
	}
}

func TestLogger(t *testing.T) {
	for _, test := range []struct {
		cfg   config.Config
		debug bool
	}{
		{config.Config{LogFormat: "console"}, false},
		{config.Config{LogFormat: "json", Verbose: true}, true},
	} {
		logger, err := test.cfg.Logger()
		require.NoError(t, err)
		assert.Equal(t, test.debug, logger.Core().Enabled(-1), "debug enabled for %+v", test.cfg)
		assert.True(t, logger.Core().Enabled(1), "warnings enabled for %+v", test.cfg)
	}

	_, err := (&config.Config{LogFormat: "xml"}).Logger()
	assert.Error(t, err)
}
