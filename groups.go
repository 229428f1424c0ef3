// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ecc exposes prime-order elliptic curve groups with hash-to-curve operations,
// built around the Ristretto255 group over Curve25519.
package ecc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/plotskogwq/curve25519-dalek/internal"
	"github.com/plotskogwq/curve25519-dalek/internal/edwards25519"
	"github.com/plotskogwq/curve25519-dalek/internal/ristretto"
)

// disallowEqual is embedded in Element and Scalar as an uncomparable zero-size field so
// that the compiler rejects `==` on them, steering callers to the constant-time Equal
// method instead.
type disallowEqual [0]func()

// Group identifies a prime-order group with hash-to-group operations.
type Group byte

const (
	// Ristretto255Sha512 identifies the Ristretto255 group with SHA2-512 hash-to-group hashing.
	Ristretto255Sha512 Group = 1 + iota

	// Edwards25519Sha512 identifies the full (cofactor 8) Edwards25519 curve group with
	// SHA2-512 hash-to-group hashing.
	Edwards25519Sha512

	maxID

	dstfmt                = "%s-V%02d-CS%02d-%s"
	minLength             = 0
	recommendedMinLength = 16
)

var (
	once   [maxID - 1]sync.Once
	groups [maxID - 1]internal.Group

	errInvalidGroup = errors.New("invalid group identifier")
	errZeroLenDST   = errors.New("zero-length DST")
)

// Available reports whether the given Group is linked into the binary.
func (g Group) Available() bool {
	return 0 < g && g < maxID
}

func (g Group) get() internal.Group {
	if !g.Available() {
		panic(errInvalidGroup)
	}

	once[g-1].Do(g.init)

	return groups[g-1]
}

func (g Group) init() {
	switch g {
	case Ristretto255Sha512:
		groups[g-1] = ristretto.New()
	case Edwards25519Sha512:
		groups[g-1] = edwards25519.New()
	case maxID:
		fallthrough
	default:
		panic(errInvalidGroup)
	}
}

func checkDST(dst []byte) {
	if len(dst) == minLength {
		panic(errZeroLenDST)
	}
}

// MakeDST builds a domain separation tag of the form <app>-V<version>-CS<id>-<h2c-id>.
func (g Group) MakeDST(app string, version uint8) []byte {
	return []byte(fmt.Sprintf(dstfmt, app, version, byte(g), g.get().Ciphersuite()))
}

// String returns the hash-to-curve string identifier of the ciphersuite.
func (g Group) String() string {
	return g.get().Ciphersuite()
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() *Scalar {
	return newScalar(g.get().NewScalar())
}

// NewElement returns the identity element (point at infinity).
func (g Group) NewElement() *Element {
	return newPoint(g.get().NewElement())
}

// Base returns the group's base point a.k.a. canonical generator.
func (g Group) Base() *Element {
	return newPoint(g.get().Base())
}

// HashToScalar returns a safe mapping of the arbitrary input to a Scalar.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToScalar(input, dst []byte) *Scalar {
	checkDST(dst)
	return newScalar(g.get().HashToScalar(input, dst))
}

// HashToGroup returns a safe mapping of the arbitrary input to an Element in the Group.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) HashToGroup(input, dst []byte) *Element {
	checkDST(dst)
	return newPoint(g.get().HashToGroup(input, dst))
}

// EncodeToGroup returns a non-uniform mapping of the arbitrary input to an Element in the Group.
// The DST must not be empty or nil, and is recommended to be longer than 16 bytes.
func (g Group) EncodeToGroup(input, dst []byte) *Element {
	checkDST(dst)
	return newPoint(g.get().EncodeToGroup(input, dst))
}

// ScalarLength returns the byte size of an encoded scalar.
func (g Group) ScalarLength() int {
	return g.get().ScalarLength()
}

// ElementLength returns the byte size of an encoded element.
func (g Group) ElementLength() int {
	return g.get().ElementLength()
}

// Order returns the byte encoding of the canonical order of scalars.
func (g Group) Order() []byte {
	return g.get().Order()
}
