// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package scalar255

import "github.com/plotskogwq/curve25519-dalek/internal"

// Scalar is a packed 32-byte little-endian view of a residue mod l. It bridges to the
// unpacked limbs representation only when arithmetic is needed; bit-level recodings
// (Bits, ToRadix16, NonAdjacentForm) operate directly on the byte encoding.
type Scalar struct {
	b [32]byte
}

// Zero returns the additive identity.
func Zero() *Scalar {
	return &Scalar{}
}

// One returns the multiplicative identity.
func One() *Scalar {
	s := &Scalar{}
	s.b[0] = 1

	return s
}

// FromU64 writes x as eight little-endian bytes into an otherwise-zero scalar.
func FromU64(x uint64) *Scalar {
	s := &Scalar{}
	for i := 0; i < 8; i++ {
		s.b[i] = byte(x >> (8 * i))
	}

	return s
}

// FromCanonicalBytes interprets b as a little-endian integer and rejects it unless it
// is already the canonical representative in [0, l).
func FromCanonicalBytes(b [32]byte) (*Scalar, error) {
	reduced := toBytes(condSubL(fromBytes(&b)))
	if reduced != b {
		return nil, internal.ErrInvalidScalarEncoding
	}

	return &Scalar{b: b}, nil
}

// FromBytesModOrder reduces an arbitrary 32-byte little-endian value mod l. Unlike
// FromCanonicalBytes, this never fails: inputs need not already be canonical.
func FromBytesModOrder(b [32]byte) *Scalar {
	var wide [64]byte
	copy(wide[:32], b[:])

	return &Scalar{b: toBytes(fromBytesWide(&wide))}
}

// FromBytesModOrderWide reduces a uniformly random 64-byte little-endian value mod l.
func FromBytesModOrderWide(b [64]byte) *Scalar {
	return &Scalar{b: toBytes(fromBytesWide(&b))}
}

// Random fills 64 bytes from source and reduces mod l, yielding a uniform scalar with
// negligible bias. source must supply cryptographically secure randomness; the caller
// (internal/ristretto, via internal.RandomBytes) is responsible for that guarantee.
func Random(source func(n int) []byte) *Scalar {
	wide := source(64)

	var arr [64]byte
	copy(arr[:], wide)

	return FromBytesModOrderWide(arr)
}

// HashFromBytes reduces a 64-byte hash digest mod l.
func HashFromBytes(digest [64]byte) *Scalar {
	return FromBytesModOrderWide(digest)
}

// Bytes returns the 32-byte little-endian encoding.
func (s *Scalar) Bytes() [32]byte {
	return s.b
}

// At returns the byte at position i.
func (s *Scalar) At(i int) byte {
	return s.b[i]
}

func (s *Scalar) limbs() limbs {
	return fromBytes(&s.b)
}

func (s *Scalar) fromLimbs(l limbs) *Scalar {
	s.b = toBytes(l)
	return s
}

// Add returns (s+other) mod l.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return new(Scalar).fromLimbs(add(s.limbs(), other.limbs()))
}

// Subtract returns (s-other) mod l.
func (s *Scalar) Subtract(other *Scalar) *Scalar {
	return new(Scalar).fromLimbs(sub(s.limbs(), other.limbs()))
}

// Multiply returns (s*other) mod l.
func (s *Scalar) Multiply(other *Scalar) *Scalar {
	return new(Scalar).fromLimbs(mul(s.limbs(), other.limbs()))
}

// MultiplyAdd returns (s*b + c) mod l.
func (s *Scalar) MultiplyAdd(b, c *Scalar) *Scalar {
	prod := mul(s.limbs(), b.limbs())
	return new(Scalar).fromLimbs(add(prod, c.limbs()))
}

// Square returns s^2 mod l.
func (s *Scalar) Square() *Scalar {
	return new(Scalar).fromLimbs(square(s.limbs()))
}

// Invert returns s^-1 mod l. The caller must not invert the zero scalar; behavior is
// otherwise unspecified, matching the fixed addition chain's domain.
func (s *Scalar) Invert() *Scalar {
	return new(Scalar).fromLimbs(invert(s.limbs()))
}

// Equal performs a constant-time byte-equality comparison, returning 1 if equal, 0
// otherwise.
func (s *Scalar) Equal(other *Scalar) int {
	var acc byte
	for i := range s.b {
		acc |= s.b[i] ^ other.b[i]
	}

	// acc == 0 iff every byte matched; fold to a single 0/1 result without branching.
	return int((uint32(acc) - 1) >> 31)
}

// IsZero reports whether s is the all-zero encoding.
func (s *Scalar) IsZero() bool {
	return s.Equal(Zero()) == 1
}

// ConditionalAssign sets s to other when choice == 1, and leaves s unchanged when
// choice == 0, without branching on choice.
func (s *Scalar) ConditionalAssign(other *Scalar, choice byte) {
	mask := -choice
	for i := range s.b {
		s.b[i] = (s.b[i] &^ mask) | (other.b[i] & mask)
	}
}

// Bits decomposes s into 256 bits, bit i = (byte[i/8] >> (i%8)) & 1.
func (s *Scalar) Bits() [256]int8 {
	var out [256]int8
	for i := 0; i < 256; i++ {
		out[i] = int8((s.b[i/8] >> uint(i%8)) & 1)
	}

	return out
}

// ToRadix16 produces 64 signed digits in [-8, 8] with a = sum(digit[i] * 16^i).
// Precondition: b[31] <= 127, which holds for any reduced scalar (the specification's
// radix-16 recoding is only defined on canonical residues).
func (s *Scalar) ToRadix16() [64]int8 {
	var out [64]int8

	for i := 0; i < 32; i++ {
		out[2*i] = int8(s.b[i] & 0xf)
		out[2*i+1] = int8((s.b[i] >> 4) & 0xf)
	}

	var carry int8
	for i := 0; i < 63; i++ {
		out[i] += carry
		carry = (out[i] + 8) >> 4
		out[i] -= carry << 4
	}

	out[63] += carry

	return out
}

// NonAdjacentForm produces the width-5 non-adjacent form: 256 signed digits, each
// nonzero digit odd with |d| < 16, no two nonzero digits within any five consecutive
// positions, ported from the reference ristretto255/curve25519-dalek scalar recoding.
// A sliding window of w=5 bits is read starting at each position, with the running
// carry added in; an even window emits no digit and advances one position with the
// carry left unchanged (with carry 1 this means the current bit was 1, absorbed the
// carry, and the carry moves on to the next bit). An odd window either fits in
// [0, 16) directly, or is recentered into [-15, -1] by subtracting the window width
// (32) and carrying a 1 into the next window.
func (s *Scalar) NonAdjacentForm() [256]int8 {
	const w = 5
	const width = 1 << w
	const windowMask = width - 1

	var naf [256]int8

	var x [5]uint64
	for i := 0; i < 4; i++ {
		x[i] = leUint64(s.b[i*8 : i*8+8])
	}

	pos := 0
	var carry uint64

	for pos < 256 {
		u64Idx := pos / 64
		bitIdx := uint(pos % 64)

		var bitBuf uint64
		if bitIdx < 64-w {
			bitBuf = x[u64Idx] >> bitIdx
		} else {
			bitBuf = (x[u64Idx] >> bitIdx) | (x[u64Idx+1] << (64 - bitIdx))
		}

		window := carry + (bitBuf & windowMask)

		if window&1 == 0 {
			pos++
			continue
		}

		if window < width/2 {
			carry = 0
			naf[pos] = int8(window)
		} else {
			carry = 1
			naf[pos] = int8(window) - width
		}

		pos += w
	}

	return naf
}
