// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package scalar255

import (
	"math/big"
	"testing"
)

// Two arbitrary scalar fixtures used across the arithmetic tests below. Each is built
// by reducing a fixed non-canonical byte pattern mod l via FromBytesModOrder, which
// guarantees canonicality without hand-verifying a literal against l.
func fixtureX() *Scalar {
	var b [32]byte
	for i := range b {
		b[i] = byte(0x4e + 7*i)
	}

	return FromBytesModOrder(b)
}

func fixtureY() *Scalar {
	var b [32]byte
	for i := range b {
		b[i] = byte(0x90 + 11*i)
	}

	return FromBytesModOrder(b)
}

func TestScalar_ZeroOne(t *testing.T) {
	z := Zero()
	if !z.IsZero() {
		t.Fatal("Zero() is not zero")
	}

	one := One()
	if one.IsZero() {
		t.Fatal("One() reported as zero")
	}

	if one.Subtract(one).Equal(Zero()) != 1 {
		t.Fatal("1 - 1 != 0")
	}
}

func TestScalar_AddSubtractRoundtrip(t *testing.T) {
	x := fixtureX()
	y := fixtureY()

	sum := x.Add(y)
	back := sum.Subtract(y)

	if back.Equal(x) != 1 {
		t.Fatalf("(x+y)-y != x: got %x, want %x", back.Bytes(), x.Bytes())
	}
}

func TestScalar_MultiplyCommutative(t *testing.T) {
	x := fixtureX()
	y := fixtureY()

	xy := x.Multiply(y)
	yx := y.Multiply(x)

	if xy.Equal(yx) != 1 {
		t.Fatalf("x*y != y*x: %x vs %x", xy.Bytes(), yx.Bytes())
	}
}

func TestScalar_InvertRoundtrip(t *testing.T) {
	x := fixtureX()

	inv := x.Invert()
	product := x.Multiply(inv)

	if product.Equal(One()) != 1 {
		t.Fatalf("x * x^-1 != 1, got %x", product.Bytes())
	}
}

func TestScalar_SquareMatchesMultiply(t *testing.T) {
	x := fixtureX()

	sq := x.Square()
	mul := x.Multiply(x)

	if sq.Equal(mul) != 1 {
		t.Fatalf("x^2 != x*x: %x vs %x", sq.Bytes(), mul.Bytes())
	}
}

func TestScalar_MultiplyAdd(t *testing.T) {
	x := fixtureX()
	y := fixtureY()
	one := One()

	got := x.MultiplyAdd(y, one)
	want := x.Multiply(y).Add(one)

	if got.Equal(want) != 1 {
		t.Fatalf("x*y+1 mismatch: %x vs %x", got.Bytes(), want.Bytes())
	}
}

func TestScalar_FromCanonicalBytesRejectsNonCanonical(t *testing.T) {
	// l itself (the modulus) is not a valid residue representative.
	var lBytes [32]byte = ModulusBytes()

	if _, err := FromCanonicalBytes(lBytes); err == nil {
		t.Fatal("expected l's own encoding to be rejected as non-canonical")
	}

	// All-0xff bytes are far larger than l and must be rejected.
	var allFF [32]byte
	for i := range allFF {
		allFF[i] = 0xff
	}

	if _, err := FromCanonicalBytes(allFF); err == nil {
		t.Fatal("expected an out-of-range encoding to be rejected")
	}
}

func TestScalar_FromBytesModOrderReducesNonCanonical(t *testing.T) {
	var allFF [32]byte
	for i := range allFF {
		allFF[i] = 0xff
	}

	reduced := FromBytesModOrder(allFF)

	// The reduced value must itself be a valid canonical encoding.
	if _, err := FromCanonicalBytes(reduced.Bytes()); err != nil {
		t.Fatalf("FromBytesModOrder produced a non-canonical result: %s", err)
	}
}

func TestScalar_BitsRoundtripsToRadix16(t *testing.T) {
	x := fixtureX()

	bits := x.Bits()
	radix16 := x.ToRadix16()

	fromBits := new(big.Int)
	for i := 255; i >= 0; i-- {
		fromBits.Lsh(fromBits, 1)
		fromBits.Or(fromBits, big.NewInt(int64(bits[i])))
	}

	fromRadix16 := new(big.Int)
	base := big.NewInt(16)
	for i := 63; i >= 0; i-- {
		fromRadix16.Mul(fromRadix16, base)
		fromRadix16.Add(fromRadix16, big.NewInt(int64(radix16[i])))
	}

	if fromBits.Cmp(fromRadix16) != 0 {
		t.Fatalf("bit and radix-16 reassembly disagree: %s vs %s", fromBits, fromRadix16)
	}
}

func TestScalar_ToRadix16DigitsInRange(t *testing.T) {
	x := fixtureX()
	digits := x.ToRadix16()

	for i, d := range digits {
		if d < -8 || d > 8 {
			t.Fatalf("digit %d out of range [-8,8]: %d", i, d)
		}
	}
}

func TestScalar_NonAdjacentFormProperties(t *testing.T) {
	x := fixtureX()
	naf := x.NonAdjacentForm()

	for i, d := range naf {
		if d == 0 {
			continue
		}

		if d%2 == 0 {
			t.Fatalf("nonzero NAF digit at %d is even: %d", i, d)
		}

		if d < -15 || d > 15 {
			t.Fatalf("NAF digit at %d out of range: %d", i, d)
		}

		for j := i + 1; j < i+5 && j < len(naf); j++ {
			if naf[j] != 0 {
				t.Fatalf("two nonzero NAF digits within width 5: positions %d and %d", i, j)
			}
		}
	}
}

func TestScalar_NonAdjacentFormOfZero(t *testing.T) {
	naf := Zero().NonAdjacentForm()
	for i, d := range naf {
		if d != 0 {
			t.Fatalf("expected all-zero NAF for the zero scalar, got nonzero digit at %d", i)
		}
	}
}

func TestScalar_EqualIsConstantShape(t *testing.T) {
	x := fixtureX()
	y := fixtureY()

	if x.Equal(x) != 1 {
		t.Fatal("x != x")
	}

	if x.Equal(y) != 0 {
		t.Fatal("x == y for distinct fixtures")
	}
}

func TestScalar_ConditionalAssign(t *testing.T) {
	x := fixtureX()
	y := fixtureY()

	cpy := *x
	cpy.ConditionalAssign(y, 0)
	if cpy.Equal(x) != 1 {
		t.Fatal("ConditionalAssign with choice=0 must not change the receiver")
	}

	cpy.ConditionalAssign(y, 1)
	if cpy.Equal(y) != 1 {
		t.Fatal("ConditionalAssign with choice=1 must overwrite the receiver")
	}
}
