// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

// boxIter walks the integer box |n_i| ≤ radii[i] in a fixed odometer
// order, the least-significant axis (index 0) varying fastest. This
// ordering is load-bearing: the two lattice sums are only
// bit-reproducible if every implementation visits points in the same
// sequence (spec.md §5). boxIter mutates its own n in place rather
// than recomputing each index from a flat counter, so no division is
// needed per step.
type boxIter struct {
	d        int
	radii    []int
	n        []int
	first    bool
	skipZero bool
}

// newBoxIter returns an iterator over |n_i| ≤ radii[i], optionally
// skipping the all-zero centre (used by the reciprocal sum, which
// excludes it).
func newBoxIter(d int, radii []int, skipZero bool) *boxIter {
	n := make([]int, d)
	for i := range n {
		n[i] = -radii[i]
	}
	return &boxIter{d: d, radii: radii, n: n, first: true, skipZero: skipZero}
}

// next advances to the next point, reporting whether one exists. The
// returned slice is b's own backing array and must not be retained
// across calls.
func (b *boxIter) next() ([]int, bool) {
	for {
		if b.first {
			b.first = false
		} else if !b.advance() {
			return nil, false
		}
		if b.skipZero && b.isZero() {
			continue
		}
		return b.n, true
	}
}

func (b *boxIter) advance() bool {
	for i := 0; i < b.d; i++ {
		b.n[i]++
		if b.n[i] <= b.radii[i] {
			return true
		}
		b.n[i] = -b.radii[i]
	}
	return false
}

func (b *boxIter) isZero() bool {
	for _, v := range b.n {
		if v != 0 {
			return false
		}
	}
	return true
}
