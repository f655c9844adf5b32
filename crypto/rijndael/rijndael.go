// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael

import (
	"fmt"

	"github.com/grailbio/rijndael/errors"
	"github.com/grailbio/rijndael/log"
)

const (
	// DefaultBlockSize is the block size, in bytes, of AES.
	DefaultBlockSize = 16
	// MaxBlockSize is the largest supported block size in bytes.
	MaxBlockSize = 32
)

// NullChain is the all-zero chain block. MakeKey uses its first
// blockSize bytes when no initial chain block is supplied.
const NullChain = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"

// Engine is a Rijndael session: an expanded key schedule and the
// chain register fed back by the CBC and CFB modes. The zero Engine
// is ready for MakeKey; every other operation fails with
// errors.KeyNotInitialized until MakeKey succeeds.
type Engine struct {
	keyLength, blockSize, rounds int

	// sched holds rounds+1 subkeys; its first keyLength bytes are
	// the key material itself.
	sched []byte

	// chain is the chain register and chain0 its value as of the
	// last MakeKey.
	chain, chain0 []byte
}

func validSize(n int) bool {
	return n == 16 || n == 24 || n == 32
}

// MakeKey expands key into a new key schedule for the given key
// length and block size, both of which must be 16, 24 or 32 bytes.
// The chain register is set to chain, which must be blockSize bytes
// long; a nil chain selects NullChain. MakeKey copies key and chain:
// the caller may reuse them afterwards.
//
// MakeKey replaces the engine's previous session. If it fails, the
// previous session is left untouched.
func (e *Engine) MakeKey(key, chain []byte, keyLength, blockSize int) error {
	if !validSize(keyLength) {
		return errors.E(errors.InvalidKeyLength,
			fmt.Sprintf("rijndael.MakeKey: key length %d is not one of 16, 24, 32", keyLength))
	}
	if len(key) != keyLength {
		return errors.E(errors.InvalidKeyLength,
			fmt.Sprintf("rijndael.MakeKey: got %d bytes of key, want %d", len(key), keyLength))
	}
	if !validSize(blockSize) {
		return errors.E(errors.InvalidBlockSize,
			fmt.Sprintf("rijndael.MakeKey: block size %d is not one of 16, 24, 32", blockSize))
	}
	if chain == nil {
		chain = []byte(NullChain[:blockSize])
	} else if len(chain) != blockSize {
		return errors.E(errors.Invalid,
			fmt.Sprintf("rijndael.MakeKey: got %d bytes of chain, want %d", len(chain), blockSize))
	}
	nr := rounds(keyLength, blockSize)
	e.keyLength, e.blockSize, e.rounds = keyLength, blockSize, nr
	e.sched = expandKey(key, blockSize, nr)
	e.chain0 = append([]byte(nil), chain...)
	e.chain = append([]byte(nil), chain...)
	log.Debug.Printf("rijndael: expanded %d-byte key for %d-byte blocks: %d rounds", keyLength, blockSize, nr)
	return nil
}

// KeyLength returns the key length, in bytes, of the current session,
// or 0 before MakeKey.
func (e *Engine) KeyLength() int { return e.keyLength }

// BlockSize returns the block size, in bytes, of the current session,
// or 0 before MakeKey.
func (e *Engine) BlockSize() int { return e.blockSize }

// Rounds returns the number of rounds of the current session, or 0
// before MakeKey.
func (e *Engine) Rounds() int { return e.rounds }

// ResetChain restores the chain register to the chain block supplied
// to the last MakeKey, so that one key schedule can serve several
// independent chained streams. It is a no-op before MakeKey.
func (e *Engine) ResetChain() {
	copy(e.chain, e.chain0)
}

// EncryptBlock encrypts exactly one block from in into out. in must
// be BlockSize bytes and out at least BlockSize bytes; they may be
// the same slice. The chain register is not used.
func (e *Engine) EncryptBlock(in, out []byte) error {
	if err := e.checkBlock("rijndael.EncryptBlock", in, out); err != nil {
		return err
	}
	e.encrypt(out, in)
	return nil
}

// DecryptBlock decrypts exactly one block from in into out, with the
// same requirements as EncryptBlock.
func (e *Engine) DecryptBlock(in, out []byte) error {
	if err := e.checkBlock("rijndael.DecryptBlock", in, out); err != nil {
		return err
	}
	e.decrypt(out, in)
	return nil
}

func (e *Engine) checkKey(op string) error {
	if e.rounds == 0 {
		return errors.E(errors.KeyNotInitialized, op+": MakeKey has not been called")
	}
	return nil
}

func (e *Engine) checkBlock(op string, in, out []byte) error {
	if err := e.checkKey(op); err != nil {
		return err
	}
	if len(in) != e.blockSize {
		return errors.E(errors.InvalidInputLength,
			fmt.Sprintf("%s: got %d bytes of input, want %d", op, len(in), e.blockSize))
	}
	if len(out) < e.blockSize {
		return errors.E(errors.InvalidInputLength,
			fmt.Sprintf("%s: got %d bytes of output space, want %d", op, len(out), e.blockSize))
	}
	return nil
}
