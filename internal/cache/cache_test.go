// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jsxmemo.dev/internal/cache"
	"go.jsxmemo.dev/transform"
)

const component = "const A = () => <b onClick={() => go()} />;\n"

func TestKey(t *testing.T) {
	src := []byte(component)
	base := cache.Key(transform.Options{}, src)
	assert.Equal(t, base, cache.Key(transform.Options{}, []byte(component)))
	assert.NotEqual(t, base, cache.Key(transform.Options{}, []byte(component+"\n")))
	assert.NotEqual(t, base, cache.Key(transform.Options{Mode: transform.Scoped}, src))
	assert.NotEqual(t, base, cache.Key(transform.Options{Primitive: "useStable"}, src))
	// Field boundaries are significant.
	assert.NotEqual(t,
		cache.Key(transform.Options{Primitive: "ab", Source: "c"}, src),
		cache.Key(transform.Options{Primitive: "a", Source: "bc"}, src))
}

func TestTransform(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)

	out1, res1, err := c.Transform("a.jsx", []byte(component), transform.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(out1), "useEventCallback(() => go())")
	assert.Equal(t, 1, res1.Total())

	out2, res2, err := c.Transform("b.jsx", []byte(component), transform.Options{})
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
	assert.Same(t, res1, res2)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, c.Len())
}

func TestErrorsNotCached(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)
	src := []byte("let a; let a;")
	for _, name := range []string{"x.jsx", "y.jsx"} {
		_, _, err := c.Transform(name, src, transform.Options{})
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), name+":1:12")
		}
	}
	assert.Equal(t, 0, c.Len())
}

func TestEviction(t *testing.T) {
	c, err := cache.New(2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		src := fmt.Sprintf("f(%d);\n", i)
		_, _, err := c.Transform("f.js", []byte(src), transform.Options{})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
}

func TestConcurrent(t *testing.T) {
	c, err := cache.New(4)
	require.NoError(t, err)
	var wg sync.WaitGroup
	outs := make([][]byte, 16)
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, _, err := c.Transform("c.jsx", []byte(component), transform.Options{})
			assert.NoError(t, err)
			outs[i] = out
		}(i)
	}
	wg.Wait()
	for _, out := range outs[1:] {
		assert.Equal(t, string(outs[0]), string(out))
	}
	hits, misses := c.Stats()
	assert.Equal(t, int64(len(outs)), hits+misses)
}

func TestNewInvalidSize(t *testing.T) {
	_, err := cache.New(0)
	assert.Error(t, err)
}
