// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/grailbio/rijndael/errors"
	"github.com/grailbio/rijndael/traverse"
)

// Mode is a block chaining mode.
type Mode int

const (
	// ECB transforms every block independently.
	ECB Mode = iota
	// CBC XORs each plaintext block with the previous ciphertext
	// block (initially the chain block) before encrypting it.
	CBC
	// CFB encrypts the previous ciphertext block (initially the
	// chain block) and XORs the result with the plaintext block.
	// Both directions use the forward cipher.
	CFB
)

var modes = [...]string{ECB: "ECB", CBC: "CBC", CFB: "CFB"}

// String returns the mode's conventional name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modes) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m]
}

// ParseMode returns the mode named by s, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, name := range modes {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, errors.E(errors.NotSupported, fmt.Sprintf("rijndael.ParseMode: unknown mode %q", s))
}

// ECB buffers of at least this many blocks are transformed in parallel.
const parallelBlocks = 4096

// Encrypt encrypts in, a whole number of blocks, into out under mode.
// out must be at least as long as in; in and out may be the same
// slice but must not otherwise overlap. CBC and CFB start from the
// current chain register and leave the last ciphertext block in it,
// so consecutive calls continue one stream.
//
// All arguments are validated before any block is transformed: on
// error neither out nor the chain register has been written.
func (e *Engine) Encrypt(in, out []byte, mode Mode) error {
	if err := e.checkBuffers("rijndael.Encrypt", in, out, mode); err != nil {
		return err
	}
	bs := e.blockSize
	switch mode {
	case ECB:
		e.ecb(in, out, e.encrypt)
	case CBC:
		for i := 0; i < len(in); i += bs {
			subtle.XORBytes(e.chain, e.chain, in[i:i+bs])
			e.encrypt(e.chain, e.chain)
			copy(out[i:i+bs], e.chain)
		}
	case CFB:
		for i := 0; i < len(in); i += bs {
			e.encrypt(e.chain, e.chain)
			subtle.XORBytes(e.chain, e.chain, in[i:i+bs])
			copy(out[i:i+bs], e.chain)
		}
	}
	return nil
}

// Decrypt decrypts in, a whole number of blocks, into out under mode,
// with the same requirements and guarantees as Encrypt. In CBC and CFB
// the chain register is left holding the last ciphertext block
// consumed.
func (e *Engine) Decrypt(in, out []byte, mode Mode) error {
	if err := e.checkBuffers("rijndael.Decrypt", in, out, mode); err != nil {
		return err
	}
	var (
		bs = e.blockSize
		c  [MaxBlockSize]byte
		ct = c[:bs]
	)
	switch mode {
	case ECB:
		e.ecb(in, out, e.decrypt)
	case CBC:
		for i := 0; i < len(in); i += bs {
			// The ciphertext is saved first since out may be in.
			copy(ct, in[i:i+bs])
			e.decrypt(out[i:i+bs], ct)
			subtle.XORBytes(out[i:i+bs], out[i:i+bs], e.chain)
			copy(e.chain, ct)
		}
	case CFB:
		for i := 0; i < len(in); i += bs {
			copy(ct, in[i:i+bs])
			e.encrypt(e.chain, e.chain)
			subtle.XORBytes(out[i:i+bs], e.chain, ct)
			copy(e.chain, ct)
		}
	}
	return nil
}

// ecb applies fn to every block of in, writing to the corresponding
// block of out. Blocks are independent, so large buffers are split
// into runs of blocks that are transformed in parallel.
func (e *Engine) ecb(in, out []byte, fn func(dst, src []byte)) {
	bs := e.blockSize
	run := func(start, end int) error {
		for i := start; i < end; i += bs {
			fn(out[i:i+bs], in[i:i+bs])
		}
		return nil
	}
	if len(in) < parallelBlocks*bs {
		_ = run(0, len(in))
		return
	}
	_ = traverse.Parallel.Blocks(len(in), bs, run)
}

func (e *Engine) checkBuffers(op string, in, out []byte, mode Mode) error {
	if err := e.checkKey(op); err != nil {
		return err
	}
	if mode < ECB || mode > CFB {
		return errors.E(errors.NotSupported, fmt.Sprintf("%s: unknown mode %v", op, mode))
	}
	if len(in) == 0 || len(in)%e.blockSize != 0 {
		return errors.E(errors.InvalidInputLength,
			fmt.Sprintf("%s: %d bytes is not a whole number of %d-byte blocks", op, len(in), e.blockSize))
	}
	if len(out) < len(in) {
		return errors.E(errors.InvalidInputLength,
			fmt.Sprintf("%s: got %d bytes of output space, want %d", op, len(out), len(in)))
	}
	if inexactOverlap(out[:len(in)], in) {
		return errors.E(errors.Invalid, op+": input and output overlap")
	}
	return nil
}
