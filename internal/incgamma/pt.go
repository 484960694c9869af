// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incgamma

import "math"

// pt evaluates Γ(a,x) = Γ(a) − γ(a,x) via the power series for the
// lower incomplete gamma function
//
//	γ(a,x) = x^a e^-x Σ_{k=0}^∞ x^k / (a(a+1)...(a+k))
//
// which converges for all x ≥ 0 and a not a non-positive integer, and
// fastest when x is small relative to a — the "otherwise" region of
// the selector in spec.md §4.2.
func pt(a, x float64) float64 {
	if x == 0 {
		return math.Gamma(a)
	}
	if math.Abs(a) < shiftBand {
		// pt's own region (a > α(x)) pinches a toward 0 whenever x is
		// also small (α(x)→0 as x→0), which hits the same Γ(a)−γ(a,x)
		// cancellation qtShifted was written to avoid; reuse it rather
		// than duplicating the fix.
		return qtShifted(a, x)
	}
	term := 1 / a
	sum := term
	for k := 1; k < maxIterPT; k++ {
		term *= x / (a + float64(k))
		sum += term
		if math.Abs(term) < relTol*math.Abs(sum) {
			break
		}
	}
	lower := math.Pow(x, a) * math.Exp(-x) * sum
	return math.Gamma(a) - lower
}

// gammaStarSeries evaluates γ*(a,x) directly via its own series,
// entire in a because it sums reciprocal gamma values rather than
// Γ(a) itself:
//
//	γ*(a,x) = e^-x Σ_{k=0}^∞ x^k / Γ(a+k+1)
//
// This is the shared core behind the qt/rek/pt branches of GammaStar.
func gammaStarSeries(a, x float64, maxIter int) float64 {
	term := 1 / math.Gamma(a+1)
	sum := term
	for k := 1; k < maxIter; k++ {
		term *= x / (a + float64(k))
		sum += term
		if math.Abs(term) < relTol*math.Abs(sum) {
			break
		}
	}
	return math.Exp(-x) * sum
}
