// SPDX-License-Identifier: MIT
//
// Copyright (C)2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package secp256k1 carries the teacher's secp256k1 scalar ring as reference
// infrastructure for a second curve's Group surface. secp256k1 itself is outside the
// scope of this module's Ristretto255/Curve25519 focus, so only the scalar ring is
// adapted here: a constant-time secp256k1 Element (the Point side of the Group
// interface) is not built on top of it, since the retrieval pack never exercised
// github.com/0xBridge/secp256k1's point API and guessing at its method set would
// risk fabricating signatures this package can't verify.
package secp256k1

const (
	// Identifier distinguishes this group from the others by a byte representation.
	Identifier = byte(3)

	scalarLength = 32
)
