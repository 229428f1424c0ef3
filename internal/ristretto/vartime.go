// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"filippo.io/edwards25519"

	"github.com/plotskogwq/curve25519-dalek/internal"
)

// MultiscalarMulVartime computes the sum of scalars[i]*points[i] using
// filippo.io/edwards25519's variable-time multiscalar multiplication. Timing leaks
// operand values (point and scalar bit patterns) through cache and branch behavior;
// callers must never pass secret scalars or secret points here (spec.md §5).
func MultiscalarMulVartime(scalars []internal.Scalar, points []internal.Element) (internal.Element, error) {
	if len(scalars) != len(points) {
		return nil, internal.ErrParamScalarLength
	}

	edScalars := make([]*edwards25519.Scalar, len(scalars))
	edPoints := make([]*edwards25519.Point, len(points))

	for i, s := range scalars {
		if s == nil || points[i] == nil {
			return nil, internal.ErrParamNilScalar
		}

		edScalars[i] = scalarFromInternal(s)
		edPoints[i] = assertElement(points[i]).p.ed
	}

	out := edwards25519.NewIdentityPoint().VarTimeMultiScalarMult(edScalars, edPoints)

	return &Element{p: point{ed: out}}, nil
}
