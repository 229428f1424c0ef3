// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards25519 carries the teacher's second curve backend, the full (cofactor
// 8) twisted Edwards group that Ristretto255 quotients, as reference infrastructure for
// a multi-curve Group surface. It plays no role in the Ristretto255 group itself:
// internal/ristretto builds its own points directly on filippo.io/edwards25519, and
// this package is adapted (not extended with new spec semantics) so the root facade
// keeps a second, independently addressable curve.
package edwards25519

const (
	// Identifier distinguishes this group from the others by a byte representation.
	Identifier = byte(2)

	canonicalEncodingLength = 32

	// orderPrime is curve25519's subgroup prime order l, the same value ristretto255's
	// scalar ring reduces modulo (both curves share the same basepoint order):
	//
	//	l = 2^252 + 27742317777372353535851937790883648493
	orderPrime = "7237005577332262213973186563042994240857116359379907606001950938285454250989"
)
