// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rijndael implements the Rijndael block cipher, of which AES
// is the 128-bit block subset, with independently configurable key
// and block sizes of 16, 24 or 32 bytes.
//
// An Engine holds one session: the expanded key schedule established
// by MakeKey and the chain register used by the CBC and CFB modes.
// Single blocks are transformed by EncryptBlock and DecryptBlock;
// buffers made of whole blocks are transformed by Encrypt and Decrypt
// under ECB, CBC or CFB:
//
//	var e rijndael.Engine
//	if err := e.MakeKey(key, iv, len(key), rijndael.DefaultBlockSize); err != nil {
//		...
//	}
//	if err := e.Encrypt(plaintext, ciphertext, rijndael.CBC); err != nil {
//		...
//	}
//
// The engine operates only on caller-supplied buffers. Padding,
// key derivation, and authentication are the caller's concern.
//
// An Engine is not safe for concurrent use: MakeKey, Encrypt, Decrypt
// and ResetChain mutate it. Independent engines share no mutable
// state. ECB buffers are transformed in parallel internally; CBC and
// CFB buffers are transformed block by block, in order.
//
// NewCipher and NewBlockCipher expose the engine as a crypto/cipher.Block
// for use with the standard library's modes of operation.
package rijndael
