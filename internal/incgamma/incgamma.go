// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incgamma

import "math"

// removableATol bounds how close a must be to a non-positive integer
// before GammaStar switches to the removable closed form, per
// spec.md §4.2.
const removableATol = 1e-9

// UpperIncomplete computes the upper incomplete gamma integral
//
//	Γ(a,x) = ∫_x^∞ t^(a-1) e^-t dt
//
// for real a and real x ≥ 0, selecting among five algorithms by the
// (a,x) region (spec.md §4.2). It always returns a finite double;
// callers must clip tiny magnitudes themselves.
func UpperIncomplete(a, x float64) float64 {
	switch selectRegion(a, x) {
	case regionQT:
		return qt(a, x)
	case regionREK:
		return rek(a, x)
	case regionUA:
		return ua(a, x)
	case regionCF:
		return cf(a, x)
	default:
		return pt(a, x)
	}
}

// GammaStar computes the twice-regularised lower gamma function
//
//	γ*(a,x) = γ(a,x) / (Γ(a)·x^a)
//
// which is entire in (a,x). For a a non-positive integer, γ*(a,x)
// reduces to the removable closed form x^-a (spec.md §4.2); this is
// handled before dispatch since the general-purpose algorithms below
// evaluate Γ(a) directly and are unstable exactly at its poles.
func GammaStar(a, x float64) float64 {
	if a <= 0 {
		if n := -a; math.Abs(a-math.Round(a)) < removableATol {
			return math.Pow(x, n)
		}
	}
	switch selectRegionStar(a, x) {
	case regionQT:
		return gammaStarSeries(a, x, maxIterQT)
	case regionREK:
		return gammaStarSeries(a, x, maxIterPT)
	case regionPT:
		return gammaStarSeries(a, x, maxIterPT)
	default:
		// ua/cf region (x > 1.5): a non-positive integer a was
		// handled above, so Γ(a) is finite here.
		g := UpperIncomplete(a, x)
		return (1 - g/math.Gamma(a)) / math.Pow(x, a)
	}
}
