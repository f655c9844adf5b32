// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rijndael_test

import (
	"fmt"
	"testing"

	"github.com/grailbio/rijndael/crypto/rijndael"
)

func BenchmarkEncryptBlock(b *testing.B) {
	for _, bs := range sizes {
		b.Run(fmt.Sprintf("block%d", bs*8), func(b *testing.B) {
			e := newEngine(b, make([]byte, 16), nil, bs)
			buf := make([]byte, bs)
			b.SetBytes(int64(bs))
			for i := 0; i < b.N; i++ {
				if err := e.EncryptBlock(buf, buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncrypt(b *testing.B) {
	for _, mode := range []rijndael.Mode{rijndael.ECB, rijndael.CBC, rijndael.CFB} {
		b.Run(mode.String(), func(b *testing.B) {
			e := newEngine(b, make([]byte, 32), nil, 16)
			buf := make([]byte, 1<<20)
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				if err := e.Encrypt(buf, buf, mode); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
