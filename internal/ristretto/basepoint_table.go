// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import "github.com/plotskogwq/curve25519-dalek/internal"

// BasepointTable is a thin facade over the Edwards basepoint's scalar multiplication
// path (spec.md §4.5). It carries no state beyond the basepoint itself: the windowed
// precomputation spec.md describes lives inside filippo.io/edwards25519's own
// ScalarBaseMult, so this type just pins the receiver to the canonical generator and
// hands back RistrettoPoint-shaped results.
type BasepointTable struct{}

// NewBasepointTable returns the table built over the Ristretto255 basepoint.
func NewBasepointTable() *BasepointTable {
	return &BasepointTable{}
}

// Basepoint returns the basepoint this table was built from.
func (BasepointTable) Basepoint() *Element {
	return &Element{p: *basePoint()}
}

// Multiply returns scalar * basepoint as a ristretto255 Element.
func (BasepointTable) Multiply(s internal.Scalar) *Element {
	sc := scalarFromInternal(s)
	return &Element{p: *scalarBaseMult(sc)}
}
