// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gf256_test

import (
	"testing"

	"github.com/grailbio/rijndael/crypto/gf256"
	"github.com/grailbio/rijndael/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"pgregory.net/rapid"
)

func TestMul(t *testing.T) {
	for _, c := range []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
		{0x00, 0xff, 0x00},
		{0x01, 0xa5, 0xa5},
		{0x80, 0x02, 0x1b},
	} {
		if got, want := gf256.Mul(c.a, c.b), c.want; got != want {
			t.Errorf("Mul(%#x, %#x): got %#x, want %#x", c.a, c.b, got, want)
		}
	}
}

func TestXtime(t *testing.T) {
	for a := 0; a < 256; a++ {
		if got, want := gf256.Xtime(byte(a)), gf256.Mul(byte(a), 2); got != want {
			t.Errorf("Xtime(%#x): got %#x, want %#x", a, got, want)
		}
	}
}

func TestInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv, err := gf256.Inverse(byte(a))
		assert.Nil(t, err)
		if got, want := gf256.Mul(byte(a), inv), byte(1); got != want {
			t.Errorf("%#x * Inverse(%#x) = %#x, want %#x", a, a, got, want)
		}
	}
	inv, err := gf256.Inverse(0x53)
	assert.Nil(t, err)
	expect.EQ(t, inv, byte(0xca))

	_, err = gf256.Inverse(0)
	expect.HasSubstr(t, err, "no multiplicative inverse")
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestExp(t *testing.T) {
	// Round constants are successive powers of x.
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d}
	for i, w := range want {
		if got := gf256.Exp(2, i); got != w {
			t.Errorf("Exp(2, %d): got %#x, want %#x", i, got, w)
		}
	}
	expect.EQ(t, gf256.Exp(0, 0), byte(1))
	expect.EQ(t, gf256.Exp(0, 3), byte(0))
}

func TestMulTable(t *testing.T) {
	tab := gf256.MulTable(0x0e)
	for x := 0; x < 256; x++ {
		if got, want := tab[x], gf256.Mul(0x0e, byte(x)); got != want {
			t.Errorf("MulTable(0x0e)[%#x]: got %#x, want %#x", x, got, want)
		}
	}
}

func TestFieldLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")
		c := rapid.Byte().Draw(t, "c")
		if gf256.Mul(a, b) != gf256.Mul(b, a) {
			t.Fatalf("multiplication does not commute for %#x, %#x", a, b)
		}
		if gf256.Mul(gf256.Mul(a, b), c) != gf256.Mul(a, gf256.Mul(b, c)) {
			t.Fatalf("multiplication is not associative for %#x, %#x, %#x", a, b, c)
		}
		if gf256.Mul(a, b^c) != gf256.Mul(a, b)^gf256.Mul(a, c) {
			t.Fatalf("multiplication does not distribute for %#x, %#x, %#x", a, b, c)
		}
	})
}
