// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael

import "crypto/cipher"

// blockCipher adapts an Engine to cipher.Block. Only the immutable key
// schedule is used, so a blockCipher is safe for concurrent use.
type blockCipher struct {
	e Engine
}

// NewCipher returns a cipher.Block implementing AES: Rijndael with
// 16-byte blocks and a 16, 24 or 32-byte key.
func NewCipher(key []byte) (cipher.Block, error) {
	return NewBlockCipher(key, DefaultBlockSize)
}

// NewBlockCipher returns a cipher.Block implementing Rijndael with the
// given block size and a 16, 24 or 32-byte key. Errors are those of
// MakeKey.
func NewBlockCipher(key []byte, blockSize int) (cipher.Block, error) {
	c := new(blockCipher)
	if err := c.e.MakeKey(key, nil, len(key), blockSize); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *blockCipher) BlockSize() int { return c.e.blockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	c.check(dst, src)
	c.e.encrypt(dst, src)
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	c.check(dst, src)
	c.e.decrypt(dst, src)
}

func (c *blockCipher) check(dst, src []byte) {
	bs := c.e.blockSize
	if len(src) < bs {
		panic("rijndael: input not full block")
	}
	if len(dst) < bs {
		panic("rijndael: output not full block")
	}
	if inexactOverlap(dst[:bs], src[:bs]) {
		panic("rijndael: invalid buffer overlap")
	}
}
