/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

const detBlockLen = 512

// DetSource is a deterministic source of pseudo-random bits generated
// by the salsa20 stream cipher from a 32-byte key. Two sources created
// with the same key produce identical streams, which makes every
// sampler drawing from them fully reproducible.
//
// DetSource implements the rand.Source interface of
// golang.org/x/exp/rand. It is not safe for concurrent use.
type DetSource struct {
	key   [32]byte
	block uint64
	buf   [detBlockLen]byte
	off   int
}

// NewDetSource returns an instance of the DetSource deterministic
// source with the stream determined by the provided key.
func NewDetSource(key *[32]byte) *DetSource {
	s := &DetSource{off: detBlockLen}
	s.key = *key

	return s
}

// NewSeededSource returns a DetSource with the key expanded from the
// given seed. Equal seeds give equal streams.
func NewSeededSource(seed uint64) *DetSource {
	s := &DetSource{}
	s.Seed(seed)

	return s
}

// Seed resets the source to the beginning of the stream determined
// by the given seed.
func (s *DetSource) Seed(seed uint64) {
	// splitmix-style expansion of the seed into a full key
	for i := 0; i < 4; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		binary.LittleEndian.PutUint64(s.key[8*i:], seed)
	}
	s.block = 0
	s.off = detBlockLen
}

// Uint64 returns the next 8 bytes of the keystream as an unsigned
// integer.
func (s *DetSource) Uint64() uint64 {
	if s.off == detBlockLen {
		var nonce [8]byte
		binary.LittleEndian.PutUint64(nonce[:], s.block)
		in := make([]byte, detBlockLen)
		salsa20.XORKeyStream(s.buf[:], in, nonce[:], &s.key)
		s.block++
		s.off = 0
	}

	v := binary.LittleEndian.Uint64(s.buf[s.off : s.off+8])
	s.off += 8

	return v
}

// NewMT19937Source returns a Mersenne Twister source seeded with the
// given seed. It is faster than DetSource and statistically sound, but
// its stream is not suited for any cryptographic purpose.
func NewMT19937Source(seed uint64) rand.Source {
	src := prng.NewMT19937()
	src.Seed(seed)

	return src
}
