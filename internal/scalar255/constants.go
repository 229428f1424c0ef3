// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package scalar255

import "math/big"

// bigInt is used exactly once, at package init, to derive the fixed-width limb
// constants (modL, rr, lfactor) from the textual decimal value of l stated by the
// specification. It never appears on a hot path: every arithmetic operation below
// operates on the limbs type with fixed-width uint64 words.
type bigInt = big.Int

func one() *bigInt {
	return big.NewInt(1)
}

// modulusL returns l = 2^252 + 27742317777372353535851937790883648493, the
// basepoint order of curve25519.
func modulusL() *bigInt {
	l := new(bigInt).Lsh(one(), 252)

	delta, ok := new(bigInt).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("scalar255: invalid literal for l's low-order term")
	}

	return l.Add(l, delta)
}

// ModulusBytes returns l's own canonical 32-byte little-endian encoding. Unlike every
// other public function in this package, the returned value is not itself a member of
// [0, l) — it is l, exposed for callers (e.g. the ristretto255 group glue) that need
// to report the group order rather than compute with it.
func ModulusBytes() [32]byte {
	return toBytes(modL)
}

// limbsFromBigInt converts a non-negative value below 2^256 to little-endian 64-bit
// limbs.
func limbsFromBigInt(v *bigInt) limbs {
	var out limbs

	mask64 := new(bigInt).Sub(new(bigInt).Lsh(one(), 64), one())

	tmp := new(bigInt).Set(v)
	for i := 0; i < 4; i++ {
		word := new(bigInt).And(tmp, mask64)
		out[i] = word.Uint64()
		tmp.Rsh(tmp, 64)
	}

	return out
}
