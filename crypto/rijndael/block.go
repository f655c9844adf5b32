// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael

import "crypto/subtle"

// The state is stored column by column: byte (row, col) is at
// row + 4*col, the same order in which block bytes are read.

// shifts gives the ShiftRows offset of each row, indexed by
// (Nb-4)/2 for block sizes of 4, 6 and 8 columns.
var shifts = [3][4]int{
	{0, 1, 2, 3},
	{0, 1, 2, 3},
	{0, 1, 3, 4},
}

// encrypt transforms one block from src into dst. The round
// transformations operate on scratch arrays, so dst and src may alias.
func (e *Engine) encrypt(dst, src []byte) {
	var (
		bs   = e.blockSize
		nb   = bs / 4
		sh   = &shifts[(nb-4)/2]
		s, t [MaxBlockSize]byte
		st   = s[:bs]
		tt   = t[:bs]
	)
	subtle.XORBytes(st, src[:bs], e.subkey(0))
	for r := 1; r <= e.rounds; r++ {
		subShiftRows(tt, st, nb, sh)
		if r < e.rounds {
			mixColumns(st, tt)
		} else {
			copy(st, tt)
		}
		subtle.XORBytes(st, st, e.subkey(r))
	}
	copy(dst[:bs], st)
}

// decrypt inverts encrypt, applying the subkeys in reverse order.
func (e *Engine) decrypt(dst, src []byte) {
	var (
		bs   = e.blockSize
		nb   = bs / 4
		sh   = &shifts[(nb-4)/2]
		s, t [MaxBlockSize]byte
		st   = s[:bs]
		tt   = t[:bs]
	)
	subtle.XORBytes(st, src[:bs], e.subkey(e.rounds))
	for r := e.rounds - 1; r >= 0; r-- {
		invSubShiftRows(tt, st, nb, sh)
		subtle.XORBytes(tt, tt, e.subkey(r))
		if r > 0 {
			invMixColumns(st, tt)
		} else {
			copy(st, tt)
		}
	}
	copy(dst[:bs], st)
}

func (e *Engine) subkey(r int) []byte {
	return e.sched[r*e.blockSize : (r+1)*e.blockSize]
}

// subShiftRows applies SubBytes and ShiftRows from src into dst.
// Row r is rotated left by sh[r] columns.
func subShiftRows(dst, src []byte, nb int, sh *[4]int) {
	for c := 0; c < nb; c++ {
		for r := 0; r < 4; r++ {
			dst[r+4*c] = sbox[src[r+4*((c+sh[r])%nb)]]
		}
	}
}

// invSubShiftRows applies InvShiftRows and InvSubBytes from src into dst.
func invSubShiftRows(dst, src []byte, nb int, sh *[4]int) {
	for c := 0; c < nb; c++ {
		for r := 0; r < 4; r++ {
			dst[r+4*((c+sh[r])%nb)] = invSbox[src[r+4*c]]
		}
	}
}

// mixColumns multiplies every column of src by the fixed MDS matrix
//
//	2 3 1 1
//	1 2 3 1
//	1 1 2 3
//	3 1 1 2
//
// and stores the result in dst.
func mixColumns(dst, src []byte) {
	for c := 0; c < len(src); c += 4 {
		a0, a1, a2, a3 := src[c], src[c+1], src[c+2], src[c+3]
		dst[c] = mul2[a0] ^ mul3[a1] ^ a2 ^ a3
		dst[c+1] = a0 ^ mul2[a1] ^ mul3[a2] ^ a3
		dst[c+2] = a0 ^ a1 ^ mul2[a2] ^ mul3[a3]
		dst[c+3] = mul3[a0] ^ a1 ^ a2 ^ mul2[a3]
	}
}

// invMixColumns multiplies every column of src by the inverse matrix
//
//	e b d 9
//	9 e b d
//	d 9 e b
//	b d 9 e
//
// and stores the result in dst.
func invMixColumns(dst, src []byte) {
	for c := 0; c < len(src); c += 4 {
		a0, a1, a2, a3 := src[c], src[c+1], src[c+2], src[c+3]
		dst[c] = mul14[a0] ^ mul11[a1] ^ mul13[a2] ^ mul9[a3]
		dst[c+1] = mul9[a0] ^ mul14[a1] ^ mul11[a2] ^ mul13[a3]
		dst[c+2] = mul13[a0] ^ mul9[a1] ^ mul14[a2] ^ mul11[a3]
		dst[c+3] = mul11[a0] ^ mul13[a1] ^ mul9[a2] ^ mul14[a3]
	}
}
