// Copyright 2019 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package must_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/grailbio/rijndael/must"
)

// TestDepth verifies that the depth passed to Func correctly locates the
// caller of the must function.
func TestDepth(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not determine current file")
	}
	defer func(f func(int, ...interface{})) { must.Func = f }(must.Func)
	var calls int
	must.Func = func(depth int, v ...interface{}) {
		calls++
		_, file, _, ok := runtime.Caller(depth)
		if !ok {
			t.Fatal("could not determine caller of Func")
		}
		if file != thisFile {
			t.Errorf("caller at depth %d is '%s'; should be '%s'", depth, file, thisFile)
		}
	}
	must.True(false)
	must.Truef(false, "")
	must.Nil(struct{}{})
	must.True(true)
	must.Nil(nil)
	if got, want := calls, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultPanics(t *testing.T) {
	defer func() {
		if got, want := recover(), "sbox is not a bijection"; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}()
	must.Truef(false, "sbox is not a %s", "bijection")
}

func Example() {
	defer func(f func(int, ...interface{})) { must.Func = f }(must.Func)
	must.Func = func(depth int, v ...interface{}) {
		fmt.Print(v...)
		fmt.Print("\n")
	}

	must.Nil(errors.New("unexpected condition"))
	must.Nil(nil)
	must.Nil(errors.New("zero has no inverse"), "building sbox")
	must.True(false, "inverse table mismatch")

	// Output:
	// unexpected condition
	// building sbox: zero has no inverse
	// inverse table mismatch
}
