// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/plotskogwq/curve25519-dalek/internal"
)

// Element implements the internal.Element interface for ristretto255 group elements.
type Element struct {
	p point
}

func assertElement(e internal.Element) *Element {
	el, ok := e.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return el
}

// Group returns the group's Identifier.
func (e *Element) Group() byte {
	return Identifier
}

// Base sets e to the distinguished basepoint and returns it.
func (e *Element) Base() internal.Element {
	e.p = *basePoint()
	return e
}

// Identity sets e to the group identity and returns it.
func (e *Element) Identity() internal.Element {
	e.p = *identityPoint()
	return e
}

// Add sets e to e+el and returns it.
func (e *Element) Add(el internal.Element) internal.Element {
	if el == nil {
		return e
	}

	other := assertElement(el)
	e.p = *e.p.add(&other.p)

	return e
}

// Double sets e to e+e and returns it.
func (e *Element) Double() internal.Element {
	e.p = *e.p.double()
	return e
}

// Negate sets e to -e and returns it.
func (e *Element) Negate() internal.Element {
	e.p = *e.p.negate()
	return e
}

// Subtract sets e to e-el and returns it.
func (e *Element) Subtract(el internal.Element) internal.Element {
	if el == nil {
		return e
	}

	other := assertElement(el)
	e.p = *e.p.subtract(&other.p)

	return e
}

// Multiply sets e to s*e and returns it.
func (e *Element) Multiply(s internal.Scalar) internal.Element {
	if s == nil {
		e.p = *identityPoint()
		return e
	}

	sc := scalarFromInternal(s)
	e.p = *e.p.scalarMult(sc)

	return e
}

// Equal implements ct_eq on cosets (spec.md §4.4), returning 1 if e and el represent
// the same group element, 0 otherwise.
func (e *Element) Equal(el internal.Element) int {
	if el == nil {
		return 0
	}

	other := assertElement(el)

	return e.p.equal(&other.p)
}

// IsIdentity reports whether e is the group identity.
func (e *Element) IsIdentity() bool {
	return e.p.isIdentity()
}

// Set sets e to the value of el and returns it.
func (e *Element) Set(el internal.Element) internal.Element {
	if el == nil {
		e.Identity()
		return e
	}

	other := assertElement(el)
	e.p = *other.p.copy()

	return e
}

// Copy returns a copy of e.
func (e *Element) Copy() internal.Element {
	return &Element{p: *e.p.copy()}
}

// Encode returns the 32-byte canonical Ristretto encoding of e.
func (e *Element) Encode() []byte {
	c := e.p.compress()
	return c[:]
}

// XCoordinate returns the canonical byte encoding of the Edwards x-coordinate of e's
// representative. This is a debug/interop accessor, not part of the Ristretto
// encoding, which is only ever the output of Encode.
func (e *Element) XCoordinate() []byte {
	x, _, z, _ := e.p.ed.ExtendedCoordinates()

	var affineX, zInv field.Element
	zInv.Invert(z)
	affineX.Multiply(x, &zInv)

	return affineX.Bytes()
}

// Decode sets e to the decompression of in, returning an error on any of the
// rejection conditions of spec.md §4.3/§7 (InvalidEncoding, InvalidLength).
func (e *Element) Decode(in []byte) error {
	if len(in) != canonicalEncodingLength {
		return fmt.Errorf("%w: got %d bytes", internal.ErrParamScalarLength, len(in))
	}

	var c CompressedRistretto
	copy(c[:], in)

	p, err := decompress(c)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	e.p = *p

	return nil
}

// Hex returns the fixed-size hexadecimal encoding of e.
func (e *Element) Hex() string {
	return hex.EncodeToString(e.Encode())
}

// DecodeHex sets e to the decoding of the hex-encoded element.
func (e *Element) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return e.Decode(b)
}

// scalarFromInternal converts an internal.Scalar (backed by this module's
// scalar255.Scalar) into the edwards25519.Scalar the Edwards collaborator's
// ScalarMult/ScalarBaseMult expect.
func scalarFromInternal(s internal.Scalar) *edwards25519.Scalar {
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(s.Encode())
	if err != nil {
		panic(fmt.Sprintf("ristretto: scalar %x is not a canonical edwards25519 scalar: %s", s.Encode(), err))
	}

	return sc
}
