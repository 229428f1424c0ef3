// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ristretto

import (
	"testing"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

func scalarN(n uint64) *edwards25519.Scalar {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(n >> (8 * i))
	}

	sc, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return sc
}

func TestPoint_IdentityCompressDecompressRoundtrip(t *testing.T) {
	id := identityPoint()

	enc := id.compress()

	back, err := decompress(enc)
	if err != nil {
		t.Fatalf("decompress(compress(identity)) failed: %s", err)
	}

	if back.equal(id) != 1 {
		t.Fatal("decompressed identity does not equal the original identity")
	}
}

func TestPoint_BasepointCompressDecompressRoundtrip(t *testing.T) {
	b := basePoint()

	enc := b.compress()

	back, err := decompress(enc)
	if err != nil {
		t.Fatalf("decompress(compress(basepoint)) failed: %s", err)
	}

	if back.equal(b) != 1 {
		t.Fatal("decompressed basepoint does not equal the original basepoint")
	}
}

func TestPoint_SmallMultiplesCompressDecompressRoundtrip(t *testing.T) {
	for n := uint64(2); n <= 16; n++ {
		p := basePoint().scalarMult(scalarN(n))

		enc := p.compress()

		back, err := decompress(enc)
		if err != nil {
			t.Fatalf("n=%d: decompress(compress(p)) failed: %s", n, err)
		}

		if back.equal(p) != 1 {
			t.Fatalf("n=%d: decompressed point does not equal the original", n)
		}
	}
}

func TestPoint_DistinctMultiplesCompressToDistinctEncodings(t *testing.T) {
	seen := map[CompressedRistretto]uint64{}

	for n := uint64(1); n <= 32; n++ {
		enc := basePoint().scalarMult(scalarN(n)).compress()

		if prev, ok := seen[enc]; ok {
			t.Fatalf("n=%d and n=%d compressed to the same encoding", n, prev)
		}

		seen[enc] = n
	}
}

func TestPoint_AddMatchesDoubleForEqualOperands(t *testing.T) {
	b := basePoint()

	doubled := b.double()
	added := b.add(b)

	if doubled.equal(added) != 1 {
		t.Fatal("p.double() != p.add(p)")
	}
}

func TestPoint_AddThenSubtractRoundtrips(t *testing.T) {
	p := basePoint().scalarMult(scalarN(7))
	q := basePoint().scalarMult(scalarN(3))

	sum := p.add(q)
	back := sum.subtract(q)

	if back.equal(p) != 1 {
		t.Fatal("(p+q)-q != p")
	}
}

func TestPoint_NegateRoundtrips(t *testing.T) {
	p := basePoint().scalarMult(scalarN(5))

	neg := p.negate()
	sum := p.add(neg)

	if sum.equal(identityPoint()) != 1 {
		t.Fatal("p + (-p) != identity")
	}
}

func TestPoint_EqualUsesBothCrossProducts(t *testing.T) {
	// A point must equal itself, and a point must equal a fresh copy built through
	// the Edwards collaborator's own Set rather than a shared pointer, exercising the
	// real coset-equality computation rather than Go's pointer identity.
	p := basePoint().scalarMult(scalarN(9))
	q := p.copy()

	if p.equal(q) != 1 {
		t.Fatal("p does not equal a structurally identical copy of itself")
	}

	other := basePoint().scalarMult(scalarN(10))
	if p.equal(other) != 0 {
		t.Fatal("distinct multiples of the basepoint compared equal")
	}

	// Adding the 4-torsion point (sqrt(-1), 0) maps (x, y) to (i*y, i*x): the first
	// product X1*Y2 == Y1*X2 fails for this pair, and only the second product
	// X1*X2 == Y1*Y2 identifies the two representatives.
	zero, one := new(field.Element).Zero(), new(field.Element).One()

	t4, err := new(edwards25519.Point).SetExtendedCoordinates(sqrtM1, zero, one, zero)
	if err != nil {
		t.Fatalf("4-torsion point setup failed: %s", err)
	}

	torqued := p.add(&point{ed: t4})
	if p.equal(torqued) != 1 {
		t.Fatal("p does not equal p plus a 4-torsion point")
	}
}

func TestDecompress_RejectsNonCanonicalFieldEncoding(t *testing.T) {
	// p = 2^255 - 19. The all-0xff string is above p and has its top bit set.
	// field.Element.SetBytes accepts it (ignoring the top bit and reducing mod p),
	// so it is the re-encode-and-compare step in decompress (bytesEqual) that must
	// reject it as non-canonical.
	var nonCanonical CompressedRistretto
	for i := range nonCanonical {
		nonCanonical[i] = 0xff
	}

	if _, err := decompress(nonCanonical); err == nil {
		t.Fatal("expected decompress to reject an all-0xff (non-canonical) encoding")
	}
}

func TestDecompress_RejectsNegativeSEncoding(t *testing.T) {
	enc := basePoint().compress()

	// Flipping the sign of a valid s by negating its field representation produces an
	// encoding whose low bit pattern now decodes to IsNegative()==1, which spec.md's
	// decompression procedure must reject outright.
	s, err := new(field.Element).SetBytes(enc[:])
	if err != nil {
		t.Fatalf("fixture basepoint encoding failed to parse: %s", err)
	}

	neg := new(field.Element).Negate(s)

	var negEnc CompressedRistretto
	copy(negEnc[:], neg.Bytes())

	if negEnc == enc {
		t.Skip("negation did not change the encoding; field element was its own negative")
	}

	if neg.IsNegative() == 0 {
		t.Skip("negated encoding is not itself flagged negative under this field's sign convention")
	}

	if _, err := decompress(negEnc); err == nil {
		t.Fatal("expected decompress to reject a negative s encoding")
	}
}

func TestElligator_ProducesValidPoint(t *testing.T) {
	for n := uint64(1); n <= 8; n++ {
		r0 := new(field.Element)
		b := scalarN(n).Bytes()

		if _, err := r0.SetBytes(b[:32]); err != nil {
			t.Fatalf("n=%d: field element setup failed: %s", n, err)
		}

		p := elligator(r0)

		// elligator's output must itself round-trip through compress/decompress,
		// since it is built via SetExtendedCoordinates and must satisfy the curve
		// equation like any other valid representative.
		enc := p.compress()

		back, err := decompress(enc)
		if err != nil {
			t.Fatalf("n=%d: decompress(compress(elligator(r0))) failed: %s", n, err)
		}

		if back.equal(p) != 1 {
			t.Fatalf("n=%d: elligator output did not round-trip through compress/decompress", n)
		}
	}
}

func TestElligator_DeterministicOnSameInput(t *testing.T) {
	var b [32]byte
	b[0] = 0x2a

	r0 := new(field.Element)
	if _, err := r0.SetBytes(b[:]); err != nil {
		t.Fatalf("field element setup failed: %s", err)
	}

	p1 := elligator(r0)
	p2 := elligator(r0)

	if p1.equal(p2) != 1 {
		t.Fatal("elligator is not deterministic on identical input")
	}
}
