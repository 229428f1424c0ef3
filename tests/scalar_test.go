// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ecc_test

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"math/big"
	"slices"
	"testing"

	"github.com/plotskogwq/curve25519-dalek"
)

func TestScalar_Group(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		s := group.group.NewScalar()
		if s.Group() != group.group {
			t.Fatal("expected matching group identifier")
		}
	})
}

func testScalarCopySet(t *testing.T, scalar, other *ecc.Scalar) {
	if !scalar.Equal(other) {
		t.Fatalf("expected equality")
	}

	scalar.Add(scalar)
	if scalar.Equal(other) {
		t.Fatalf("unexpected equality")
	}

	other.Invert()
	if scalar.Equal(other) {
		t.Fatalf("unexpected equality")
	}

	if !scalar.Set(nil).Equal(other.Zero()) {
		t.Error("expected equality")
	}
}

func TestScalar_Copy(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		random := group.group.NewScalar().Random()
		cpy := random.Copy()
		testScalarCopySet(t, random, cpy)
	})
}

func TestScalar_Set(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		random := group.group.NewScalar().Random()
		other := group.group.NewScalar()
		other.Set(random)
		testScalarCopySet(t, random, other)
	})
}

func testScalarUInt64(t *testing.T, s *ecc.Scalar, expectedValue uint64, expectError bool) {
	t.Helper()

	i, err := s.UInt64()
	if expectError {
		if err == nil {
			t.Fatalf("expected an error")
		}

		return
	}

	if err != nil {
		t.Fatalf("unexpected error %q", err)
	}

	if i != expectedValue {
		t.Fatalf("expected %d, got %d", expectedValue, i)
	}
}

func TestScalar_UInt64(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		testScalarUInt64(t, group.group.NewScalar(), 0, false)
		testScalarUInt64(t, group.group.NewScalar().One(), 1, false)
		testScalarUInt64(t, group.group.NewScalar().SetUInt64(math.MaxUint64), math.MaxUint64, false)

		s := group.group.NewScalar().SetUInt64(math.MaxUint64).Add(group.group.NewScalar().One())
		testScalarUInt64(t, s, 0, true)

		s = group.group.NewScalar().Subtract(group.group.NewScalar().One())
		testScalarUInt64(t, s, 0, true)
	})
}

func TestScalar_SetUInt64(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		s := group.group.NewScalar().SetUInt64(0)
		if !s.IsZero() {
			t.Fatal("expected 0")
		}

		s.SetUInt64(1)
		if !s.Equal(group.group.NewScalar().One()) {
			t.Fatal("expected 1")
		}

		s.SetUInt64(math.MaxUint64)
		ref := make([]byte, group.group.ScalarLength())
		binary.LittleEndian.PutUint64(ref, math.MaxUint64)

		if hex.EncodeToString(ref) != s.Hex() {
			t.Fatalf("expected %q, got %q", hex.EncodeToString(ref), s.Hex())
		}
	})
}

func TestScalar_EncodedLength(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		encodedScalar := group.group.NewScalar().Random().Encode()
		if len(encodedScalar) != group.scalarLength {
			t.Fatalf(
				"Encode() is expected to return %d bytes, but returned %d bytes",
				group.scalarLength,
				len(encodedScalar),
			)
		}
	})
}

func TestScalar_Decode_OutOfBounds(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		bad := []byte{0, 1}
		if err := group.group.NewScalar().Decode(bad); err == nil {
			t.Error("expected an error decoding a short scalar")
		}

		tooHigh := make([]byte, group.scalarLength)
		for i := range tooHigh {
			tooHigh[i] = 0xff
		}

		if err := group.group.NewScalar().Decode(tooHigh); err == nil {
			t.Error("expected an error decoding a scalar above the group order")
		}
	})
}

func TestScalar_Arithmetic(t *testing.T) {
	testAllGroups(t, func(group *testGroup) {
		scalarTestZero(t, group.group)
		scalarTestOne(t, group.group)
		scalarTestMinusOne(t, group.group)
		scalarTestEqual(t, group.group)
		scalarTestLessOrEqual(t, group.group)
		scalarTestRandom(t, group.group)
		scalarTestAdd(t, group.group)
		scalarTestSubtract(t, group.group)
		scalarTestMultiply(t, group.group)
		scalarTestPow(t, group.group)
		scalarTestInvert(t, group.group)
	})
}

func scalarTestZero(t *testing.T, g ecc.Group) {
	zero := g.NewScalar()
	if !zero.IsZero() {
		t.Fatal("expected zero scalar")
	}

	s := g.NewScalar().Random()
	if !s.Subtract(s).IsZero() {
		t.Fatal("expected zero scalar")
	}

	s = g.NewScalar().Random()
	if !s.Add(zero).Equal(s) {
		t.Fatal("expected no change in adding zero scalar")
	}
}

func scalarTestOne(t *testing.T, g ecc.Group) {
	one := g.NewScalar().One()
	m := one.Copy()
	if !one.Equal(m.Multiply(m)) {
		t.Fatal("expected equality")
	}
}

func scalarTestMinusOne(t *testing.T, g ecc.Group) {
	m1 := g.NewScalar().MinusOne()
	one := g.NewScalar().One()
	if !m1.Add(one).IsZero() {
		t.Fatal("expected equality")
	}
}

func scalarTestRandom(t *testing.T, g ecc.Group) {
	r := g.NewScalar().Random()
	if r.Equal(g.NewScalar().Zero()) {
		t.Fatalf("random scalar is zero: %v", r.Hex())
	}
}

func scalarTestEqual(t *testing.T, g ecc.Group) {
	zero := g.NewScalar().Zero()
	zero2 := g.NewScalar().Zero()

	if g.NewScalar().Random().Equal(nil) {
		t.Fatal("unexpected equality")
	}

	if !zero.Equal(zero2) {
		t.Fatal("expected equality")
	}

	random := g.NewScalar().Random()
	cpy := random.Copy()
	if !random.Equal(cpy) {
		t.Fatal("expected equality")
	}

	random2 := g.NewScalar().Random()
	if random.Equal(random2) {
		t.Fatal("unexpected equality")
	}
}

func scalarTestLessOrEqual(t *testing.T, g ecc.Group) {
	zero := g.NewScalar().Zero()
	one := g.NewScalar().One()
	two := g.NewScalar().One().Add(one)

	if g.NewScalar().Random().LessOrEqual(nil) {
		t.Fatal("unexpected equality")
	}

	if !zero.LessOrEqual(one) {
		t.Fatal("expected 0 < 1")
	}

	if !one.LessOrEqual(two) {
		t.Fatal("expected 1 < 2")
	}

	if one.LessOrEqual(zero) {
		t.Fatal("expected 1 > 0")
	}

	if two.LessOrEqual(one) {
		t.Fatal("expected 2 > 1")
	}

	if !two.LessOrEqual(two) {
		t.Fatal("expected 2 == 2")
	}
}

func scalarTestAdd(t *testing.T, g ecc.Group) {
	r := g.NewScalar().Random()
	cpy := r.Copy()
	if !r.Add(nil).Equal(cpy) {
		t.Fatal("expected equality")
	}
}

func scalarTestSubtract(t *testing.T, g ecc.Group) {
	r := g.NewScalar().Random()
	cpy := r.Copy()
	if !r.Subtract(nil).Equal(cpy) {
		t.Fatal("expected equality")
	}
}

func scalarTestMultiply(t *testing.T, g ecc.Group) {
	s := g.NewScalar().Random()
	if !s.Multiply(nil).IsZero() {
		t.Fatal("expected zero")
	}
}

func scalarTestPow(t *testing.T, g ecc.Group) {
	s := g.NewScalar().Random()
	if !s.Pow(nil).Equal(g.NewScalar().One()) {
		t.Fatal("expected s**nil = 1")
	}

	s = g.NewScalar().Random()
	zero := g.NewScalar().Zero()
	if !s.Pow(zero).Equal(g.NewScalar().One()) {
		t.Fatal("expected s**0 = 1")
	}

	s = g.NewScalar().Random()
	exp := g.NewScalar().One()
	if !s.Copy().Pow(exp).Equal(s) {
		t.Fatal("expected s**1 = s")
	}

	// 5**7 = 78125
	result := g.NewScalar().SetUInt64(uint64(math.Pow(5, 7)))
	s.SetUInt64(5)
	exp.SetUInt64(7)

	res := s.Pow(exp)
	if !res.Equal(result) {
		t.Fatal("expected 5**7 = 78125")
	}

	// 3**255 against a big.Int oracle over the published group order.
	iBase := big.NewInt(3)
	iExp := big.NewInt(255)
	result = bigIntExp(t, g, iBase, iExp)

	s.SetUInt64(3)
	exp.SetUInt64(255)

	res = s.Pow(exp)
	if !res.Equal(result) {
		t.Fatal("expected equality on 3**255")
	}
}

func bigIntExp(t *testing.T, g ecc.Group, base, exp *big.Int) *ecc.Scalar {
	t.Helper()

	orderBytes := g.Order()
	orderBytes = slices.Clone(orderBytes)
	slices.Reverse(orderBytes)

	order := new(big.Int).SetBytes(orderBytes)
	r := new(big.Int).Exp(base, exp, order)

	b := make([]byte, g.ScalarLength())
	r.FillBytes(b)
	slices.Reverse(b)

	result := g.NewScalar()
	if err := result.Decode(b); err != nil {
		t.Fatal(err)
	}

	return result
}

func scalarTestInvert(t *testing.T, g ecc.Group) {
	s := g.NewScalar().Random()
	sqr := s.Copy().Multiply(s)

	i := s.Copy().Invert().Multiply(sqr)
	if !i.Equal(s) {
		t.Fatal("expected equality")
	}
}
