// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"math/big"

	"filippo.io/edwards25519/field"
)

// The named field constants below (sqrtM1, edwardsD, sqrtADMinusOne, invSqrtAMinusD)
// are derived once, at init, from the curve parameters stated by the specification
// (a = -1, d = -121665/121666 over GF(2^255-19)) via math/big, rather than
// hand-transcribed as 255-bit literals. A transcription slip in a magic constant of
// this size is exactly the kind of mistake that is invisible by inspection and fatal
// in a constant-time group library, so the derivation is made reproducible from first
// principles instead. None of this runs on a hot path: every actual field operation
// (Add, Multiply, SqrtRatio, ...) is performed by filippo.io/edwards25519/field.
var (
	sqrtM1         *field.Element
	edwardsD       *field.Element
	sqrtADMinusOne *field.Element
	invSqrtAMinusD *field.Element
)

func init() {
	p := fieldModulus()

	sqrtM1 = feFromBigInt(modPow(big.NewInt(2), new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 2), p))

	invD := new(big.Int).ModInverse(big.NewInt(121666), p)
	d := new(big.Int).Mul(big.NewInt(-121665), invD)
	d.Mod(d, p)
	edwardsD = feFromBigInt(d)

	// a*d - 1 == a - d == -(d+1), since a = -1. sqrtADMinusOne and invSqrtAMinusD are
	// therefore square root and reciprocal square root of the very same field value.
	v := new(big.Int).Add(d, big.NewInt(1))
	v.Sub(p, v)
	v.Mod(v, p)

	root := sqrtNonNegative(v, p)
	sqrtADMinusOne = feFromBigInt(root)

	invRoot := new(big.Int).ModInverse(root, p)
	invSqrtAMinusD = feFromBigInt(invRoot)
}

func fieldModulus() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}

func modPow(base, exp, mod *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, mod)
}

// sqrtNonNegative returns the root of v mod p whose little-endian canonical byte
// encoding has an even low bit (the "non-negative" convention IsNegative uses
// throughout this codebase), matching the sign convention fixed constants need so
// that derived formulas are self-consistent across the package.
func sqrtNonNegative(v, p *big.Int) *big.Int {
	r := new(big.Int).ModSqrt(v, p)
	if r == nil {
		panic("ristretto: constant derivation requires v to be a square mod p")
	}

	if r.Bit(0) == 1 {
		r.Sub(p, r)
	}

	return r
}

// feFromBigInt encodes a non-negative value below the field modulus as a 32-byte
// little-endian field.Element.
func feFromBigInt(v *big.Int) *field.Element {
	be := make([]byte, 32)
	v.FillBytes(be)

	le := make([]byte, 32)
	for i := range be {
		le[i] = be[31-i]
	}

	e, err := new(field.Element).SetBytes(le)
	if err != nil {
		panic("ristretto: invalid constant encoding: " + err.Error())
	}

	return e
}
