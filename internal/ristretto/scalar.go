// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ristretto allows simple and abstracted operations in the Ristretto255
// group: the prime-order quotient group built over Curve25519 via the Ristretto
// point-compression technique, and the scalar ring Z/lZ that drives scalar
// multiplication on it.
package ristretto

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/plotskogwq/curve25519-dalek/internal"
	"github.com/plotskogwq/curve25519-dalek/internal/scalar255"
)

const canonicalEncodingLength = 32

// orderBytes is curve25519's subgroup prime order
//
//	l = 2^252 + 27742317777372353535851937790883648493
//	  = 7237005577332262213973186563042994240857116359379907606001950938285454250989
//
// with cofactor h = 8. Exposed for callers (e.g. the root facade's Order()) that need
// the raw byte encoding.
func orderBytes() [32]byte {
	return scalar255.ModulusBytes()
}

// Scalar implements the internal.Scalar interface for ristretto255 scalars.
type Scalar struct {
	s *scalar255.Scalar
}

func newScalar(v *scalar255.Scalar) *Scalar {
	return &Scalar{s: v}
}

func assertScalar(s internal.Scalar) *Scalar {
	sc, ok := s.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return sc
}

// Group returns the group's Identifier.
func (s *Scalar) Group() byte {
	return Identifier
}

// Zero sets the scalar to 0, and returns it.
func (s *Scalar) Zero() internal.Scalar {
	s.s = scalar255.Zero()
	return s
}

// One sets the scalar to 1, and returns it.
func (s *Scalar) One() internal.Scalar {
	s.s = scalar255.One()
	return s
}

// MinusOne sets the scalar to l-1, and returns it.
func (s *Scalar) MinusOne() internal.Scalar {
	s.s = scalar255.Zero().Subtract(scalar255.One())
	return s
}

// Random sets the current scalar to a new, uniformly-sampled random scalar (via wide
// reduction of 64 bytes from crypto/rand) and returns it. Guaranteed non-zero.
func (s *Scalar) Random() internal.Scalar {
	for {
		candidate := scalar255.Random(internal.RandomBytes)
		if !candidate.IsZero() {
			s.s = candidate
			return s
		}
	}
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (s *Scalar) Add(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	s.s = s.s.Add(assertScalar(scalar).s)

	return s
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (s *Scalar) Subtract(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	s.s = s.s.Subtract(assertScalar(scalar).s)

	return s
}

// Multiply multiplies the receiver with the input, and returns the receiver.
func (s *Scalar) Multiply(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.Zero()
	}

	s.s = s.s.Multiply(assertScalar(scalar).s)

	return s
}

func getMSBit(in byte) int {
	for i := 7; i >= 0; i-- {
		if in&byte(1<<uint(i)) != 0 {
			return i
		}
	}

	return 0
}

func getMSByte(in []byte) int {
	msb := 0

	for i, b := range in {
		if b != 0 {
			msb = i
		}
	}

	return msb
}

// Pow sets s to s**scalar modulo l, and returns s. If scalar is nil, it returns 1.
func (s *Scalar) Pow(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.One()
	}

	base := s.s
	s1 := base
	s2 := base.Square()

	bytes := assertScalar(scalar).Encode()
	msbyte := getMSByte(bytes)
	msbit := getMSBit(bytes[msbyte])

	b := bytes[msbyte]
	for j := msbit - 1; j >= 0; j-- {
		if b&byte(1<<uint(j)) == 0 {
			s2 = s1.Multiply(s2)
			s1 = s1.Square()
		} else {
			s1 = s1.Multiply(s2)
			s2 = s2.Square()
		}
	}

	for i := msbyte - 1; i >= 0; i-- {
		b = bytes[i]
		for j := 7; j >= 0; j-- {
			if b&byte(1<<uint(j)) == 0 {
				s2 = s1.Multiply(s2)
				s1 = s1.Square()
			} else {
				s1 = s1.Multiply(s2)
				s2 = s2.Square()
			}
		}
	}

	if scalar.IsZero() {
		s1 = scalar255.One()
	}

	s.s = s1

	return s
}

// Invert sets the receiver to the scalar's modular inverse (1/scalar), and returns it.
func (s *Scalar) Invert() internal.Scalar {
	s.s = s.s.Invert()
	return s
}

// Equal returns 1 if the scalars are equal, and 0 otherwise.
func (s *Scalar) Equal(scalar internal.Scalar) int {
	if scalar == nil {
		return 0
	}

	return s.s.Equal(assertScalar(scalar).s)
}

// LessOrEqual returns 1 if s <= scalar and 0 otherwise, comparing the two canonical
// little-endian encodings from the most significant byte down.
func (s *Scalar) LessOrEqual(scalar internal.Scalar) int {
	ienc := s.Encode()
	jenc := assertScalar(scalar).Encode()

	for i := len(ienc) - 1; i >= 0; i-- {
		if ienc[i] != jenc[i] {
			if ienc[i] < jenc[i] {
				return 1
			}

			return 0
		}
	}

	return 1
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Set sets the receiver to the value of the argument scalar, and returns the receiver.
func (s *Scalar) Set(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		s.Zero()
		return s
	}

	s.s = assertScalar(scalar).s

	return s
}

// SetUInt64 sets s to i modulo l, and returns the receiver.
func (s *Scalar) SetUInt64(i uint64) internal.Scalar {
	s.s = scalar255.FromU64(i)
	return s
}

// UInt64 returns the uint64 representation of the scalar, or an error if its value is
// higher than the authorized limit for uint64.
func (s *Scalar) UInt64() (uint64, error) {
	b := s.Encode()

	var overflows byte
	for _, bx := range b[8:] {
		overflows |= bx
	}

	if overflows != 0 {
		return 0, internal.ErrUInt64TooBig
	}

	return binary.LittleEndian.Uint64(b[:8]), nil
}

// Copy returns a copy of the receiver.
func (s *Scalar) Copy() internal.Scalar {
	return newScalar(s.s)
}

// Encode returns the 32-byte little-endian canonical encoding of the scalar.
func (s *Scalar) Encode() []byte {
	b := s.s.Bytes()
	return b[:]
}

func (s *Scalar) decodeScalar(in []byte) error {
	if len(in) == 0 {
		return internal.ErrParamNilScalar
	}

	if len(in) != canonicalEncodingLength {
		return internal.ErrParamScalarLength
	}

	var arr [32]byte
	copy(arr[:], in)

	v, err := scalar255.FromCanonicalBytes(arr)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	s.s = v

	return nil
}

// Decode sets the receiver to a decoding of the input data, and returns an error on failure.
func (s *Scalar) Decode(in []byte) error {
	return s.decodeScalar(in)
}

// Hex returns the fixed-sized hexadecimal encoding of s.
func (s *Scalar) Hex() string {
	return hex.EncodeToString(s.Encode())
}

// DecodeHex sets s to the decoding of the hex encoded scalar.
func (s *Scalar) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return s.Decode(b)
}
