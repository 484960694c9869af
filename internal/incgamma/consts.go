// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package incgamma implements the upper incomplete gamma function
// Γ(a,x) and its twice-regularised companion γ*(a,x) = γ(a,x) /
// (Γ(a)·x^a) for real a (possibly negative) and real x ≥ 0, via
// domain selection among five algorithms following the Gautschi-style
// region split described in spec.md §4.2: qt, rek, ua, cf, pt.
package incgamma

// relTol is the relative convergence tolerance shared by the iterative
// algorithms (2^-54); ua does not iterate and does not use it.
const relTol = 1.0 / (1 << 54)

// Iteration caps, per spec.md §4.2. ua has no iteration cap: it
// evaluates a fixed-length coefficient table (see ua.go) rather than
// iterating to a tolerance. qt's shifted branch combines the fixed
// reciprocalGammaCoefs table with lowerSeries, which is capped by
// maxIterQT.
const (
	maxIterPT = 80
	maxIterCF = 200
	maxIterQT = 20
)
