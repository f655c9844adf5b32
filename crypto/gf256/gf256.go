// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over GF(2^8) with the Rijndael
// reduction polynomial x^8 + x^4 + x^3 + x + 1. Elements are bytes;
// addition is XOR. All functions are pure.
package gf256

import "github.com/grailbio/rijndael/errors"

// Poly is the reduction polynomial, including the x^8 term.
const Poly = 0x11b

// Xtime returns a multiplied by x, reduced by Poly.
func Xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ Poly&0xff
	}
	return a << 1
}

// Mul returns the product of a and b.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return p
}

// Exp returns a raised to the n-th power. Exp(a, 0) is 1 for every a,
// including 0.
func Exp(a byte, n int) byte {
	r := byte(1)
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			r = Mul(r, a)
		}
		a = Mul(a, a)
	}
	return r
}

// Inverse returns the multiplicative inverse of a. The multiplicative
// group has order 255, so the inverse is a^254. Zero has no inverse
// and Inverse returns an error of kind errors.Invalid for it.
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, errors.E(errors.Invalid, "gf256.Inverse: 0 has no multiplicative inverse")
	}
	return Exp(a, 254), nil
}

// MulTable returns the table of products c*x for every x.
func MulTable(c byte) [256]byte {
	var t [256]byte
	for x := 0; x < 256; x++ {
		t[x] = Mul(c, byte(x))
	}
	return t
}
