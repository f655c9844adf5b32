// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package traverse provides primitives for parallel traversal of
// independent work items, such as the blocks of an ECB buffer.
package traverse

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/grailbio/rijndael/errors"
	"github.com/grailbio/rijndael/log"
)

// A T is a traverser: it provides facilities for concurrently
// invoking functions that traverse collections of data.
type T struct {
	// Limit is the traverser's concurrency limit: there will be no more
	// than Limit concurrent invocations per traversal. A limit value of
	// zero (the default value) denotes no limit.
	Limit int
}

// Parallel is the default traverser for parallel traversal, intended
// for CPU-intensive parallel computing. Parallel limits the number of
// concurrent invocations to the runtime's available processors.
var Parallel = T{Limit: runtime.GOMAXPROCS(0)}

// each invokes fn(i) for 0 <= i < n, each in its own goroutine, and
// returns after all invocations have completed. The first invocation
// error is returned; panics in fn are propagated to the caller.
func each(n int, fn func(i int) error) error {
	var (
		errors errors.Once
		wg     sync.WaitGroup
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			if err := apply(fn, i); err != nil {
				errors.Set(err)
			}
			wg.Done()
		}(i)
	}
	wg.Wait()
	err := errors.Err()
	if err, ok := err.(panicErr); ok {
		panic(fmt.Sprintf("traverse child: %v\n%s", err.v, string(err.stack)))
	}
	return err
}

// Range performs ranged traversal on fn: n is split into at most
// Limit contiguous ranges, and fn is invoked concurrently for each
// range. Range returns the first invocation error, and propagates
// panics from fn to the caller.
func (t T) Range(n int, fn func(start, end int) error) error {
	m := n
	if t.Limit > 0 && t.Limit < n {
		m = t.Limit
	}
	return each(m, func(i int) error {
		var (
			size  = float64(n) / float64(m)
			start = int(float64(i) * size)
			end   = int(float64(i+1) * size)
		)
		if start >= n {
			return nil
		}
		if i == m-1 {
			end = n
		}
		return fn(start, end)
	})
}

// Blocks traverses a buffer of n bytes made up of whole blocks of
// blockSize bytes. The buffer is split into contiguous, block-aligned
// byte ranges [start, end) and fn is invoked once per range. n must be
// a multiple of blockSize.
func (t T) Blocks(n, blockSize int, fn func(start, end int) error) error {
	if blockSize <= 0 || n%blockSize != 0 {
		log.Panicf("traverse.Blocks: %d bytes is not a whole number of %d-byte blocks", n, blockSize)
	}
	return t.Range(n/blockSize, func(start, end int) error {
		return fn(start*blockSize, end*blockSize)
	})
}

func apply(fn func(i int) error, i int) (err error) {
	defer func() {
		if perr := recover(); perr != nil {
			err = panicErr{perr, debug.Stack()}
		}
	}()
	return fn(i)
}

type panicErr struct {
	v     interface{}
	stack []byte
}

func (p panicErr) Error() string { return fmt.Sprint(p.v) }
