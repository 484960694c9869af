// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

// kahan is a Kahan-compensated accumulator for complex128 sums. Both
// the real-space and reciprocal-space lattice sums in Zeta and
// ZetaReg share this one primitive (spec.md §9): cancellation between
// the two sums near ν ≈ d is the dominant source of error, so both
// must carry their own running compensation term.
type kahan struct {
	sum, c complex128
}

// add accumulates v into the running sum using Kahan compensation.
func (k *kahan) add(v complex128) {
	y := v - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// finish returns the compensated total.
func (k *kahan) finish() complex128 {
	return k.sum
}
