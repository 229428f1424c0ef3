// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package vartime holds operations whose running time depends on operand values.
// Nothing here is safe to call with secret scalars or secret points: point and scalar
// bit patterns leak through branch and cache timing. spec.md §5 requires these routines
// to live apart from the constant-time core rather than be offered as an option on it.
package vartime

import (
	"fmt"

	"github.com/plotskogwq/curve25519-dalek"
	"github.com/plotskogwq/curve25519-dalek/internal"
	"github.com/plotskogwq/curve25519-dalek/internal/ristretto"
)

// MultiscalarMul returns the sum of scalars[i]*points[i], computed in variable time.
// All arguments must belong to the Ristretto255 group; points and scalars are
// extracted down to their internal representations and handed to
// filippo.io/edwards25519's own VarTimeMultiScalarMult.
func MultiscalarMul(scalars []*ecc.Scalar, points []*ecc.Element) (*ecc.Element, error) {
	internalScalars := make([]internal.Scalar, len(scalars))
	internalPoints := make([]internal.Element, len(points))

	for i, s := range scalars {
		internalScalars[i] = s.Scalar
	}

	for i, e := range points {
		internalPoints[i] = e.Element
	}

	result, err := ristretto.MultiscalarMulVartime(internalScalars, internalPoints)
	if err != nil {
		return nil, fmt.Errorf("vartime multiscalar multiplication: %w", err)
	}

	return ecc.NewElementFrom(result), nil
}
