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
	"filippo.io/edwards25519/field"

	"github.com/plotskogwq/curve25519-dalek/internal"
)

// minusOne is -1 in the field, the curve's "a" parameter.
var minusOne = new(field.Element).Negate(new(field.Element).One())

// CompressedRistretto is the 32-byte canonical encoding of a ristretto255 group
// element (spec.md §4.3). The all-zero string is the identity.
type CompressedRistretto [32]byte

// point is a ristretto255 group element, represented internally by an extended
// twisted Edwards representative (X:Y:Z:T). Equality is defined on cosets (Equal),
// not on the representative itself: two points are equal in the group iff their
// Edwards representatives differ by a 4-torsion point. Group law, doubling and
// scalar multiplication are delegated to filippo.io/edwards25519, the extended
// twisted Edwards collaborator this package treats as an external dependency.
type point struct {
	ed *edwards25519.Point
}

func identityPoint() *point {
	return &point{ed: edwards25519.NewIdentityPoint()}
}

func basePoint() *point {
	return &point{ed: edwards25519.NewGeneratorPoint()}
}

func (p *point) set(other *point) *point {
	p.ed = edwards25519.NewIdentityPoint().Set(other.ed)
	return p
}

func (p *point) copy() *point {
	return new(point).set(p)
}

func (p *point) add(q *point) *point {
	return &point{ed: edwards25519.NewIdentityPoint().Add(p.ed, q.ed)}
}

func (p *point) subtract(q *point) *point {
	return &point{ed: edwards25519.NewIdentityPoint().Subtract(p.ed, q.ed)}
}

func (p *point) negate() *point {
	return &point{ed: edwards25519.NewIdentityPoint().Negate(p.ed)}
}

func (p *point) double() *point {
	return p.add(p)
}

func (p *point) scalarMult(s *edwards25519.Scalar) *point {
	return &point{ed: edwards25519.NewIdentityPoint().ScalarMult(s, p.ed)}
}

func scalarBaseMult(s *edwards25519.Scalar) *point {
	return &point{ed: edwards25519.NewIdentityPoint().ScalarBaseMult(s)}
}

func (p *point) isIdentity() bool {
	return p.equal(identityPoint()) == 1
}

// equal implements ct_eq on cosets (spec.md §4.4): P=(X1:Y1:Z1:T1), Q=(X2:Y2:Z2:T2)
// are equal in the ristretto255 group iff X1*Y2 == Y1*X2 OR X1*X2 == Y1*Y2. Checking
// only the first product is a common, incorrect shortcut: it identifies P with
// P + (0, -1), which maps (x, y) to (-x, -y), but misses P + (i, 0) for i = sqrt(-1),
// which maps (x, y) to (i*y, i*x) and is caught only by the second product.
func (p *point) equal(q *point) int {
	x1, y1, _, _ := p.ed.ExtendedCoordinates()
	x2, y2, _, _ := q.ed.ExtendedCoordinates()

	var a, b, lhs, rhs field.Element

	a.Multiply(x1, y2)
	b.Multiply(y1, x2)
	first := a.Equal(&b)

	lhs.Multiply(x1, x2)
	rhs.Multiply(y1, y2)
	second := lhs.Equal(&rhs)

	return first | second
}

// compress implements the one-inverse-square-root compression algorithm of spec.md
// §4.4 on the extended coordinates (X0:Y0:Z0:T0).
func (p *point) compress() CompressedRistretto {
	x0, y0, z0, t0 := p.ed.ExtendedCoordinates()

	var zpy, zmy, u1, u2 field.Element
	zpy.Add(z0, y0)
	zmy.Subtract(z0, y0)
	u1.Multiply(&zpy, &zmy)
	u2.Multiply(x0, y0)

	var u2sq, u1u2sq field.Element
	u2sq.Square(&u2)
	u1u2sq.Multiply(&u1, &u2sq)

	inv, _ := new(field.Element).SqrtRatio(new(field.Element).One(), &u1u2sq)

	var i1, i2, zInv field.Element
	i1.Multiply(inv, &u1)
	i2.Multiply(inv, &u2)
	zInv.Multiply(new(field.Element).Multiply(&i1, &i2), t0)

	var ix, iy field.Element
	ix.Multiply(x0, sqrtM1)
	iy.Multiply(y0, sqrtM1)

	var xyZinv field.Element
	xyZinv.Multiply(t0, &zInv)
	rotate := xyZinv.IsNegative()

	x := new(field.Element).Select(&iy, x0, rotate)
	y := new(field.Element).Select(&ix, y0, rotate)
	denInv := new(field.Element).Select(
		new(field.Element).Multiply(&i1, invSqrtAMinusD),
		&i2,
		rotate,
	)

	var xZinv field.Element
	xZinv.Multiply(x, &zInv)
	xSign := xZinv.IsNegative()
	y.Select(new(field.Element).Negate(y), y, xSign)

	var s, zmy2 field.Element
	zmy2.Subtract(z0, y)
	s.Multiply(denInv, &zmy2)

	sNeg := s.IsNegative()
	s.Select(new(field.Element).Negate(&s), &s, sNeg)

	var out CompressedRistretto
	copy(out[:], s.Bytes())

	return out
}

// decompress implements the decompression algorithm of spec.md §4.3: parse, reject
// non-canonical or negative encodings, reconstruct via one inverse-square-root, and
// validate the result before returning a point.
func decompress(c CompressedRistretto) (*point, error) {
	s, err := new(field.Element).SetBytes(c[:])
	if err != nil {
		return nil, internal.ErrParamInvalidPointEncoding
	}

	if !bytesEqual(s.Bytes(), c[:]) {
		return nil, internal.ErrNonCanonicalPoint
	}

	if s.IsNegative() == 1 {
		return nil, internal.ErrNonCanonicalPoint
	}

	// With a = -1: ynum = 1 - s^2, yden = 1 + s^2.
	var ss, ynum, yden field.Element
	ss.Square(s)
	ynum.Subtract(new(field.Element).One(), &ss)
	yden.Add(new(field.Element).One(), &ss)

	var ydenSqr, ynumSqr, xdenSqr field.Element
	ydenSqr.Square(&yden)
	ynumSqr.Square(&ynum)
	xdenSqr.Multiply(new(field.Element).Negate(edwardsD), &ynumSqr)
	xdenSqr.Subtract(&xdenSqr, &ydenSqr)

	var discriminant field.Element
	discriminant.Multiply(&xdenSqr, &ydenSqr)

	inv, ok := new(field.Element).SqrtRatio(new(field.Element).One(), &discriminant)
	if ok == 0 {
		return nil, internal.ErrNonCanonicalPoint
	}

	var xdenInv, ydenInv field.Element
	xdenInv.Multiply(inv, &yden)
	ydenInv.Multiply(inv, &xdenInv)
	ydenInv.Multiply(&ydenInv, &xdenSqr)

	two := new(field.Element).Add(new(field.Element).One(), new(field.Element).One())

	var x, y, t field.Element
	x.Multiply(two, s)
	x.Multiply(&x, &xdenInv)

	xNeg := x.IsNegative()
	x.Select(new(field.Element).Negate(&x), &x, xNeg)

	y.Multiply(&ynum, &ydenInv)
	t.Multiply(&x, &y)

	if t.IsNegative() == 1 || y.Equal(new(field.Element).Zero()) == 1 {
		return nil, internal.ErrNonCanonicalPoint
	}

	z := new(field.Element).One()

	ed, err := new(edwards25519.Point).SetExtendedCoordinates(&x, &y, z, &t)
	if err != nil {
		return nil, internal.ErrNonCanonicalPoint
	}

	return &point{ed: ed}, nil
}

// elligator applies the ristretto-flavoured Elligator-2 map to a field element r0,
// per spec.md §4.4.
func elligator(r0 *field.Element) *point {
	var r field.Element
	r.Square(r0)
	r.Multiply(&r, sqrtM1)

	var dr, rPlusD, dPlus1r field.Element
	dr.Multiply(edwardsD, &r)
	rPlusD.Add(&r, edwardsD)
	dPlus1r.Add(&dr, new(field.Element).One())

	var D field.Element
	D.Multiply(new(field.Element).Negate(&dPlus1r), &rPlusD)

	var dSq, dSqMinus1, rPlus1 field.Element
	dSq.Square(edwardsD)
	dSqMinus1.Subtract(&dSq, new(field.Element).One())
	rPlus1.Add(&r, new(field.Element).One())

	var N field.Element
	N.Multiply(new(field.Element).Negate(&dSqMinus1), &rPlus1)

	sCand, wasSquare := new(field.Element).SqrtRatio(&N, &D)

	var rN field.Element
	rN.Multiply(&r, &N)

	sOther, _ := new(field.Element).SqrtRatio(&rN, &D)
	sOther.Negate(sOther)

	s := new(field.Element).Select(sCand, sOther, wasSquare)
	c := new(field.Element).Select(minusOne, &r, wasSquare)

	var rMinus1, dMinus1, dMinus1Sq, cTerm field.Element
	rMinus1.Subtract(&r, new(field.Element).One())
	dMinus1.Subtract(edwardsD, new(field.Element).One())
	dMinus1Sq.Square(&dMinus1)
	cTerm.Multiply(c, &rMinus1)
	cTerm.Multiply(&cTerm, &dMinus1Sq)

	var T field.Element
	T.Subtract(&cTerm, &D)

	// cX, cY, cZ, cT are completed-point coordinates (dalek's CompletedPoint), not
	// extended ones: the extended representative is (cX*cT : cY*cZ : cZ*cT : cX*cY),
	// per ristretto.rs's to_extended() conversion.
	var cX, cY, cZ, cT, sSq field.Element
	cX.Add(s, s)
	cX.Multiply(&cX, &D)

	cZ.Multiply(&T, sqrtADMinusOne)

	sSq.Square(s)
	cY.Subtract(new(field.Element).One(), &sSq)
	cT.Add(new(field.Element).One(), &sSq)

	var X, Y, Z, Tout field.Element
	X.Multiply(&cX, &cT)
	Y.Multiply(&cY, &cZ)
	Z.Multiply(&cZ, &cT)
	Tout.Multiply(&cX, &cY)

	ed, err := new(edwards25519.Point).SetExtendedCoordinates(&X, &Y, &Z, &Tout)
	if err != nil {
		panic("ristretto: elligator produced an invalid extended representative")
	}

	return &point{ed: ed}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}

	return acc == 0
}
