// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds the group-agnostic interfaces that every concrete curve
// implementation under internal/<curve> must satisfy, along with the errors and
// helpers shared across them.
package internal

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Errors returned by the concrete group implementations. They are wrapped with
// fmt.Errorf("%w", ...) at package boundaries so callers can match them with errors.Is.
var (
	ErrParamNilScalar            = errors.New("nil scalar")
	ErrParamNilPoint             = errors.New("nil point")
	ErrParamScalarLength         = errors.New("invalid scalar length")
	ErrParamInvalidPointEncoding = errors.New("invalid point encoding")
	ErrCastScalar                = errors.New("could not cast to same group scalar")
	ErrCastElement               = errors.New("could not cast to same group element")
	ErrIdentity                  = errors.New("element is the identity point")
	ErrUInt64TooBig              = errors.New("uint64 overflow")

	// ErrInvalidScalarEncoding is returned when a 32-byte string does not represent a
	// canonical residue in [0, l), distinguishing spec.md's InvalidEncoding error kind
	// from the generic length failure above.
	ErrInvalidScalarEncoding = errors.New("scalar encoding is not a canonical representative mod l")

	// ErrNonCanonicalPoint is returned by CompressedRistretto decompression whenever the
	// 32-byte input fails the canonicality re-encode-and-compare check, is negative, has a
	// non-square discriminant, or fails the final t/y validation (spec.md §4.3, §7).
	ErrNonCanonicalPoint = errors.New("ristretto: invalid or non-canonical point encoding")

	// ErrBigIntConversion is returned when a decimal literal naming a curve order fails
	// to parse, which would indicate a transcription error in that literal.
	ErrBigIntConversion = errors.New("could not convert big.Int value")
)

// Scalar is the group-agnostic interface a scalar of any supported curve must implement.
type Scalar interface {
	Group() byte
	Zero() Scalar
	One() Scalar
	MinusOne() Scalar
	Random() Scalar
	Add(Scalar) Scalar
	Subtract(Scalar) Scalar
	Multiply(Scalar) Scalar
	Pow(Scalar) Scalar
	Invert() Scalar
	Equal(Scalar) int
	LessOrEqual(Scalar) int
	IsZero() bool
	Set(Scalar) Scalar
	SetUInt64(uint64) Scalar
	UInt64() (uint64, error)
	Copy() Scalar
	Encode() []byte
	Decode([]byte) error
	Hex() string
	DecodeHex(string) error
}

// Element is the group-agnostic interface a group element of any supported curve must
// implement.
type Element interface {
	Group() byte
	Base() Element
	Identity() Element
	Add(Element) Element
	Double() Element
	Negate() Element
	Subtract(Element) Element
	Multiply(Scalar) Element
	Equal(Element) int
	IsIdentity() bool
	Set(Element) Element
	Copy() Element
	Encode() []byte
	XCoordinate() []byte
	Decode([]byte) error
	Hex() string
	DecodeHex(string) error
}

// Group is the group-agnostic interface a prime-order group implementation exposes,
// including hash-to-curve per the ciphersuite it advertises.
type Group interface {
	NewScalar() Scalar
	NewElement() Element
	Base() Element
	HashToScalar(input, dst []byte) Scalar
	HashToGroup(input, dst []byte) Element
	EncodeToGroup(input, dst []byte) Element
	Ciphersuite() string
	ScalarLength() int
	ElementLength() int
	Order() []byte
}

// RandomBytes fills and returns a slice of n bytes read from crypto/rand. It panics if
// the system RNG fails, since a silently degraded RNG would be a much worse failure
// mode for a constant-time group library than a hard panic.
func RandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("internal: crypto/rand failure: %s", err))
	}

	return b
}
