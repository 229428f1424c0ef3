// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto allows simple and abstracted operations in the Ristretto255 group.
package ristretto

import (
	"crypto"
	"fmt"

	"filippo.io/edwards25519/field"
	"github.com/0xBridge/hash2curve"

	"github.com/plotskogwq/curve25519-dalek/internal"
	"github.com/plotskogwq/curve25519-dalek/internal/scalar255"
)

const (
	// Identifier distinguishes this group from the others by a byte representation.
	Identifier = byte(1)

	inputLength = 64

	// H2C represents the hash-to-curve string identifier.
	H2C = "ristretto255_XMD:SHA-512_R255MAP_RO_"
)

// Group represents the Ristretto255 group. It exposes a prime-order group API with
// hash-to-curve operations, per spec.md §4.4's random/hash_from_bytes and §6's
// external hash collaborator.
type Group struct{}

// New returns a new instantiation of the Ristretto255 Group.
func New() internal.Group {
	return Group{}
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() internal.Scalar {
	return newScalar(scalar255.Zero())
}

// NewElement returns the identity element (point at infinity).
func (g Group) NewElement() internal.Element {
	return &Element{p: *identityPoint()}
}

// Base returns group's base point a.k.a. canonical generator.
func (g Group) Base() internal.Element {
	return &Element{p: *basePoint()}
}

// HashFunc returns the RFC9380 associated hash function of the group.
func (g Group) HashFunc() crypto.Hash {
	return crypto.SHA512
}

// HashToScalar returns a safe mapping of the arbitrary input to a Scalar.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToScalar(input, dst []byte) internal.Scalar {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, inputLength)

	var wide [64]byte
	copy(wide[:], uniform)

	return newScalar(scalar255.HashFromBytes(wide))
}

// HashToGroup returns a safe mapping of the arbitrary input to an Element in the Group,
// applying the ristretto-flavoured Elligator-2 map to a 32-byte digest per spec.md §4.4.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, canonicalEncodingLength)

	r0, err := new(field.Element).SetBytes(maskHighBit(uniform))
	if err != nil {
		panic(fmt.Sprintf("ristretto: hash-to-group produced an invalid field element: %s", err))
	}

	return &Element{p: *elligator(r0)}
}

// EncodeToGroup returns a non-uniform mapping of the arbitrary input to an Element in the Group.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) EncodeToGroup(input, dst []byte) internal.Element {
	return g.HashToGroup(input, dst)
}

// Ciphersuite returns the hash-to-curve ciphersuite identifier.
func (g Group) Ciphersuite() string {
	return H2C
}

// ScalarLength returns the byte size of an encoded scalar.
func (g Group) ScalarLength() int {
	return canonicalEncodingLength
}

// ElementLength returns the byte size of an encoded element.
func (g Group) ElementLength() int {
	return canonicalEncodingLength
}

// Order returns the byte encoding of the canonical order of scalars, l.
func (g Group) Order() []byte {
	b := orderBytes()
	out := make([]byte, len(b))
	copy(out, b[:])

	return out
}

func maskHighBit(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	if len(out) > 0 {
		out[len(out)-1] &= 0x7f
	}

	return out
}
