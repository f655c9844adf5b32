// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael

import (
	"math/bits"

	"github.com/grailbio/rijndael/crypto/gf256"
	"github.com/grailbio/rijndael/must"
)

// Process-wide tables, computed once during initialization and never
// written afterwards.
var (
	sbox, invSbox [256]byte

	// MixColumns and InvMixColumns coefficients.
	mul2, mul3                [256]byte
	mul9, mul11, mul13, mul14 [256]byte
)

func init() {
	sbox, invSbox = buildSBox()
	mul2, mul3 = gf256.MulTable(2), gf256.MulTable(3)
	mul9, mul11 = gf256.MulTable(9), gf256.MulTable(11)
	mul13, mul14 = gf256.MulTable(13), gf256.MulTable(14)
}

// buildSBox computes the forward substitution table from the
// multiplicative inverse in GF(2^8), followed by the affine
// transformation, and derives the inverse table from it.
func buildSBox() (fwd, inv [256]byte) {
	var seen [256]bool
	for x := 0; x < 256; x++ {
		var b byte
		if x != 0 {
			var err error
			b, err = gf256.Inverse(byte(x))
			must.Nil(err, "rijndael: building sbox")
		}
		s := affine(b)
		must.Truef(!seen[s], "rijndael: sbox maps two inputs to %#x", s)
		seen[s] = true
		fwd[x] = s
		inv[s] = byte(x)
	}
	return
}

func affine(b byte) byte {
	return b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ 0x63
}

// SBox returns a copy of the forward substitution table.
func SBox() [256]byte { return sbox }

// InvSBox returns a copy of the inverse substitution table.
func InvSBox() [256]byte { return invSbox }
