// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoizes transform outputs by content. Two inputs
// with the same bytes and the same options share one entry, whatever
// their file names.
package cache // import "go.jsxmemo.dev/internal/cache"

import (
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"go.jsxmemo.dev/transform"
)

// An Entry is a cached transform output.
type Entry struct {
	Output []byte
	Result *transform.Result
}

// A Cache is a fixed-size LRU cache of transform outputs.
// It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[uint64, Entry]
	hits    atomic.Int64
	misses  atomic.Int64
}

// New returns a cache holding up to size entries.
func New(size int) (*Cache, error) {
	entries, err := lru.New[uint64, Entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Key returns the content key of src transformed with opts.
func Key(opts transform.Options, src []byte) uint64 {
	d := xxhash.New()
	for _, s := range []string{
		opts.Mode.String(),
		opts.Primitive,
		opts.Source,
		strings.Join(opts.DependencyPrimitives, ","),
		opts.ElementFactory,
		opts.HookPrefix,
	} {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	d.Write(src)
	return d.Sum64()
}

// Transform returns the transform of src, from the cache if possible.
// Errors are not cached, so that each failing file reports its own
// name. An entry served from the cache logs no rewrites.
func (c *Cache) Transform(filename string, src []byte, opts transform.Options) ([]byte, *transform.Result, error) {
	key := Key(opts, src)
	if e, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return e.Output, e.Result, nil
	}
	c.misses.Add(1)
	out, res, err := transform.Source(filename, src, opts)
	if err != nil {
		return nil, nil, err
	}
	c.entries.Add(key, Entry{Output: out, Result: res})
	return out, res, nil
}

// Stats reports the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return c.entries.Len() }
