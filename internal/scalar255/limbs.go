// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package scalar255 implements the ring Z/lZ that drives scalar multiplication on the
// ristretto255 group, where l = 2^252 + 27742317777372353535851937790883648493 is the
// basepoint order of curve25519. It hosts both the unpacked limb representation used
// for arithmetic (limbs, in this file) and the packed 32-byte Scalar (scalar.go).
package scalar255

import "math/bits"

// limbs is an unpacked residue mod l, stored as four 64-bit limbs in little-endian
// limb order: value = limbs[0] + limbs[1]*2^64 + limbs[2]*2^128 + limbs[3]*2^192.
//
// Two sub-forms share this type: the standard representation (an integer in [0, l))
// and the Montgomery representation (integer * R mod l, R = 2^256 mod l). Conversions
// between the two are explicit (toMontgomery / fromMontgomery) and never implicit.
type limbs [4]uint64

// modL, rr and lfactor are the compile-time constants a Montgomery backend needs: the
// modulus itself, R^2 mod l (to enter Montgomery form), and -l[0]^-1 mod 2^64 (the
// per-round Montgomery reduction factor). They are derived once, in init, from the
// decimal value of l given by the specification rather than hand-transcribed limb
// literals, so a transcription mistake in a 256-bit magic constant can't silently
// corrupt every operation in this package.
var (
	modL    limbs
	rr      limbs // R^2 mod l, R = 2^256 mod l
	lfactor uint64
)

func init() {
	l := modulusL()

	modL = limbsFromBigInt(l)

	r := new(bigInt).Lsh(one(), 256)
	r.Mod(r, l)

	rrBig := new(bigInt).Mul(r, r)
	rrBig.Mod(rrBig, l)
	rr = limbsFromBigInt(rrBig)

	// lfactor = -l[0]^-1 mod 2^64.
	base := new(bigInt).Lsh(one(), 64)
	l0 := new(bigInt).And(l, new(bigInt).Sub(base, one()))
	inv := new(bigInt).ModInverse(l0, base)
	neg := new(bigInt).Sub(base, inv)
	neg.Mod(neg, base)
	lfactor = neg.Uint64()
}

// addAt adds val into A at word index idx, propagating the carry through every higher
// word of A, so the number of steps depends only on idx and len(A), never on the
// values. A must have enough headroom for the carry to resolve into.
func addAt(a []uint64, idx int, val uint64) {
	carry := val
	for ; idx < len(a); idx++ {
		a[idx], carry = bits.Add64(a[idx], carry, 0)
	}
}

// mulWide computes the schoolbook 4x4 -> 8 limb product of a and b.
func mulWide(a, b limbs) [8]uint64 {
	var t [8]uint64

	for i := 0; i < 4; i++ {
		var carry uint64

		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])

			s, c1 := bits.Add64(t[i+j], lo, 0)
			s, c2 := bits.Add64(s, carry, 0)
			t[i+j] = s

			carry = hi + c1 + c2
		}

		t[i+4] += carry
	}

	return t
}

// addLimbs computes a+b as a plain 4-limb addition, returning the carry-out (always 0
// for the value ranges this package operates on, since every public operation keeps
// residues below l < 2^253).
func addLimbs(a, b limbs) (limbs, uint64) {
	var out limbs

	var carry uint64

	for i := 0; i < 4; i++ {
		s, c := bits.Add64(a[i], b[i], carry)
		out[i] = s
		carry = c
	}

	return out, carry
}

// subLimbs computes a-b as a plain 4-limb subtraction (wrapping mod 2^256 on borrow),
// returning the borrow-out.
func subLimbs(a, b limbs) (limbs, uint64) {
	var out limbs

	var borrow uint64

	for i := 0; i < 4; i++ {
		d, bo := bits.Sub64(a[i], b[i], borrow)
		out[i] = d
		borrow = bo
	}

	return out, borrow
}

// condSubL subtracts l from a if a >= l, and returns a unchanged otherwise, without
// branching on the comparison result.
func condSubL(a limbs) limbs {
	diff, borrow := subLimbs(a, modL)

	want := uint64(1) - borrow // 1 when a >= l (safe to keep the subtracted value)
	mask := -want

	var out limbs
	for i := 0; i < 4; i++ {
		out[i] = (diff[i] & mask) | (a[i] &^ mask)
	}

	return out
}

// montgomeryReduce implements REDC: given an 8-limb value t with t < R*l, it returns
// t * R^-1 mod l, in [0, l). The four-round CIOS-style loop eliminates one limb of t
// per round by adding a multiple of l chosen to zero that limb mod 2^64.
func montgomeryReduce(t [8]uint64) limbs {
	a := make([]uint64, 9)
	copy(a, t[:])

	for i := 0; i < 4; i++ {
		u := a[i] * lfactor

		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(u, modL[j])
			addAt(a, i+j, lo)
			addAt(a, i+j+1, hi)
		}
	}

	var result limbs
	copy(result[:], a[4:8])

	return condSubL(result)
}

// toMontgomery converts a standard-form residue a into Montgomery form (a*R mod l).
func toMontgomery(a limbs) limbs {
	return montgomeryReduce(mulWide(a, rr))
}

// fromMontgomery converts a Montgomery-form residue back to standard form.
func fromMontgomery(a limbs) limbs {
	var wide [8]uint64
	copy(wide[:4], a[:])

	return montgomeryReduce(wide)
}

// montMul multiplies two Montgomery-form (or one Montgomery-, one standard-form, per
// the caller's bookkeeping) residues and reduces the product, staying in Montgomery
// form. It is the single primitive both mul and invert build on.
func montMul(a, b limbs) limbs {
	return montgomeryReduce(mulWide(a, b))
}

func montSquare(a limbs) limbs {
	return montMul(a, a)
}

// add computes (a+b) mod l. Inputs and output are standard-form residues in [0, l).
func add(a, b limbs) limbs {
	sum, _ := addLimbs(a, b)
	return condSubL(sum)
}

// sub computes (a-b) mod l. Inputs and output are standard-form residues in [0, l).
func sub(a, b limbs) limbs {
	diff, borrow := subLimbs(a, b)
	restored, _ := addLimbs(diff, modL)

	mask := -borrow

	var out limbs
	for i := 0; i < 4; i++ {
		out[i] = (restored[i] & mask) | (diff[i] &^ mask)
	}

	return out
}

// mul computes (a*b) mod l via two Montgomery reductions: aR := toMontgomery(a),
// then REDC(aR*b) = a*b*R*R^-1 = a*b. Both inputs and the output are standard form;
// the Montgomery domain is only visited transiently.
func mul(a, b limbs) limbs {
	aR := toMontgomery(a)
	return montMul(aR, b)
}

func square(a limbs) limbs {
	return mul(a, a)
}

// invert returns a^(l-2) mod l via the fixed addition chain below, ported from the
// reference ristretto255/curve25519-dalek scalar inversion: it runs entirely in
// Montgomery form, paying one conversion in and one conversion out. The chain is
// data-independent: its shape depends only on the public exponent l-2, never on a.
func invert(a limbs) limbs {
	sqm := func(x limbs, squarings int) limbs {
		for i := 0; i < squarings; i++ {
			x = montSquare(x)
		}

		return x
	}

	squareMultiply := func(y limbs, squarings int, x limbs) limbs {
		y = sqm(y, squarings)
		return montMul(y, x)
	}

	_1 := toMontgomery(a)
	_10 := montSquare(_1)
	_100 := montSquare(_10)
	_11 := montMul(_10, _1)
	_101 := montMul(_10, _11)
	_111 := montMul(_10, _101)
	_1001 := montMul(_10, _111)
	_1011 := montMul(_10, _1001)
	_1111 := montMul(_100, _1011)

	y := montMul(_1111, _1) // _10000

	y = squareMultiply(y, 123+3, _101)
	y = squareMultiply(y, 2+2, _11)
	y = squareMultiply(y, 1+4, _1111)
	y = squareMultiply(y, 1+4, _1111)
	y = squareMultiply(y, 4, _1001)
	y = squareMultiply(y, 2, _11)
	y = squareMultiply(y, 1+4, _1111)
	y = squareMultiply(y, 1+3, _101)
	y = squareMultiply(y, 3+3, _101)
	y = squareMultiply(y, 3, _111)
	y = squareMultiply(y, 1+4, _1111)
	y = squareMultiply(y, 2+3, _111)
	y = squareMultiply(y, 2+2, _11)
	y = squareMultiply(y, 1+4, _1011)
	y = squareMultiply(y, 2+4, _1011)
	y = squareMultiply(y, 6+4, _1001)
	y = squareMultiply(y, 2+2, _11)
	y = squareMultiply(y, 3+2, _11)
	y = squareMultiply(y, 3+2, _11)
	y = squareMultiply(y, 1+4, _1001)
	y = squareMultiply(y, 1+3, _111)
	y = squareMultiply(y, 2+4, _1111)
	y = squareMultiply(y, 1+4, _1011)
	y = squareMultiply(y, 3, _101)
	y = squareMultiply(y, 2+4, _1111)
	y = squareMultiply(y, 3, _101)
	y = squareMultiply(y, 1+2, _11)

	return fromMontgomery(y)
}

// fromBytes interprets 32 little-endian bytes as an integer in [0, 2^256). The result
// is not reduced mod l; callers that need a canonical residue must use fromBytesWide
// or validate the input is already < l.
func fromBytes(b *[32]byte) limbs {
	var out limbs
	for i := 0; i < 4; i++ {
		out[i] = leUint64(b[i*8 : i*8+8])
	}

	return out
}

// toBytes encodes a residue assumed to be in [0, l) as 32 canonical little-endian
// bytes.
func toBytes(a limbs) [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		putLeUint64(out[i*8:i*8+8], a[i])
	}

	return out
}

// fromBytesWide reduces a uniformly random 512-bit little-endian value mod l, via
// bit-serial double-and-add reduction: process the bits from most to least
// significant, doubling the running residue and conditionally subtracting l after
// each doubling, then conditionally adding the next input bit. This does not assume
// the input halves are already reduced, unlike the Montgomery multiply path, which is
// why it is not expressed in terms of montMul.
func fromBytesWide(b *[64]byte) limbs {
	var acc limbs

	for bitPos := 511; bitPos >= 0; bitPos-- {
		byteIdx := bitPos / 8
		bitIdx := uint(bitPos % 8)
		bit := uint64((b[byteIdx] >> bitIdx) & 1)

		doubled, _ := addLimbs(acc, acc)
		doubled = condSubL(doubled)

		incremented, _ := addLimbs(doubled, limbs{1, 0, 0, 0})
		incremented = condSubL(incremented)

		mask := -bit
		for i := 0; i < 4; i++ {
			acc[i] = (incremented[i] & mask) | (doubled[i] &^ mask)
		}
	}

	return acc
}

func leUint64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLeUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
