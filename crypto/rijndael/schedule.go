// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael

import "github.com/grailbio/rijndael/crypto/gf256"

// rounds returns the number of rounds for a key and block size, both
// in bytes: 6 more than the larger of the two counted in 32-bit words.
func rounds(keyLength, blockSize int) int {
	n := keyLength
	if blockSize > n {
		n = blockSize
	}
	return n/4 + 6
}

// rcon returns the round constant for the i-th generation of the key
// schedule, i >= 1.
func rcon(i int) byte {
	return gf256.Exp(2, i-1)
}

// expandKey returns the key schedule for key: nr+1 subkeys of
// blockSize bytes each, stored back to back. Words are stored in
// column order, so subkey r is sched[r*blockSize : (r+1)*blockSize]
// and lines up with the state bytes it is added to.
func expandKey(key []byte, blockSize, nr int) []byte {
	var (
		nk    = len(key) / 4
		sched = make([]byte, blockSize*(nr+1))
		nw    = len(sched) / 4
		t     [4]byte
	)
	copy(sched, key)
	for i := nk; i < nw; i++ {
		copy(t[:], sched[4*(i-1):4*i])
		switch {
		case i%nk == 0:
			t[0], t[1], t[2], t[3] = sbox[t[1]]^rcon(i/nk), sbox[t[2]], sbox[t[3]], sbox[t[0]]
		case nk > 6 && i%nk == 4:
			t[0], t[1], t[2], t[3] = sbox[t[0]], sbox[t[1]], sbox[t[2]], sbox[t[3]]
		}
		for j := 0; j < 4; j++ {
			sched[4*i+j] = sched[4*(i-nk)+j] ^ t[j]
		}
	}
	return sched
}
