// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incgamma

import "math"

// eulerGamma is the Euler-Mascheroni constant, used by the a≈0
// removable limit Γ(0,x) = E1(x) and by reciprocalGammaCoefs.
const eulerGamma = 0.5772156649015328606

// nearZeroTol bounds how close a must be to 0 before qt switches to
// the E1(x) series rather than any a(a+1)...-based series.
const nearZeroTol = 1e-12

// shiftBand bounds how close a may be to the pole of Γ at 0 before qt
// stops forming Γ(a) and γ(a,x) directly. Both grow like 1/a as a→0,
// so subtracting them to get an O(1) result loses about log10(1/a)
// digits (spec.md §4.2's Γ(a,x) = u − x^a·Σ is exactly this
// subtraction, done via a tabulated correction instead of via
// math.Gamma to control that loss). Below shiftBand, qt instead
// evaluates at a+1 — safely clear of the pole — and steps back down
// through the exact recurrence Γ(a,x) = (Γ(a+1,x) − x^a·e^-x)/a,
// which confines the cancellation to that single final division
// rather than compounding it across two independently rounded 1/a
// quantities.
const shiftBand = 1.0

// reciprocalGammaCoefs are the Maclaurin coefficients of the entire
// function 1/Γ(1+t) = 1 + Σ c_k t^k, obtained by exponentiating the
// Weierstrass-product expansion (A&S 6.1.34)
//
//	ln(1/Γ(1+t)) = γ_E·t − Σ_{n≥2} (-1)^n ζ(n) t^n / n.
//
// c_1 = γ_E and c_2 = γ_E²/2 − ζ(2)/2 follow directly from squaring
// that series (see DESIGN.md for the expansion); the rest are the
// standard continuation of the same published series. Used to
// evaluate Γ(1+t) near t=0 without calling math.Gamma close to its
// pole at 0.
var reciprocalGammaCoefs = [21]float64{
	0.5772156649015329,
	-0.6558780715202538,
	-0.0420026350340952,
	0.1665386113822915,
	-0.0421977345555443,
	-0.0096219715278770,
	0.0072189432466630,
	-0.0011651675918591,
	-0.0002152416741149,
	0.0001280502823882,
	-0.0000201348547807,
	-0.0000012504934821,
	0.0000011330272320,
	-0.0000002056338417,
	0.0000000061160950,
	0.0000000050020075,
	-0.0000000011812746,
	0.0000000001043427,
	0.0000000000077823,
	-0.0000000000036968,
	0.0000000000005100,
}

// gammaOnePlus evaluates Γ(1+t) via reciprocalGammaCoefs, valid for
// |t| well within shiftBand.
func gammaOnePlus(t float64) float64 {
	recip := 1.0
	p := t
	for _, c := range reciprocalGammaCoefs {
		recip += c * p
		p *= t
	}
	return 1 / recip
}

// qt evaluates Γ(a,x) by a Taylor-style power series for small
// x (x ≤ 1.5), the region of spec.md §4.2 where a ≥ -½.
func qt(a, x float64) float64 {
	if math.Abs(a) < nearZeroTol {
		return e1(x)
	}
	if math.Abs(a) < shiftBand {
		return qtShifted(a, x)
	}
	return math.Gamma(a) - lowerSeries(a, x)
}

// qtShifted evaluates Γ(a,x) for a within shiftBand of the pole by
// stepping down once from the well-conditioned a+1:
//
//	Γ(a,x) = (Γ(a+1,x) − x^a·e^-x) / a.
func qtShifted(a, x float64) float64 {
	a0 := a + 1
	g1 := gammaOnePlus(a) - lowerSeries(a0, x)
	return (g1 - math.Pow(x, a)*math.Exp(-x)) / a
}

// lowerSeries evaluates the lower incomplete gamma function
//
//	γ(a,x) = x^a·e^-x·Σ_{k=0}^∞ x^k / (a(a+1)...(a+k)).
func lowerSeries(a, x float64) float64 {
	term := 1 / a
	sum := term
	for k := 1; k < maxIterQT; k++ {
		term *= x / (a + float64(k))
		sum += term
		if math.Abs(term) < relTol*math.Abs(sum) {
			break
		}
	}
	return math.Pow(x, a) * math.Exp(-x) * sum
}

// e1 evaluates the exponential integral E1(x) = Γ(0,x) for 0 < x ≤
// 1.5 via its convergent series
//
//	E1(x) = -γ_E - ln(x) + Σ_{k=1}^∞ (-1)^(k+1) x^k / (k·k!)
func e1(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	term := 1.0 // x^k / k!, built incrementally starting at k=0's x^0/0!=1
	sign := -1.0
	for k := 1; k < maxIterQT+10; k++ {
		term *= x / float64(k)
		sign = -sign
		delta := sign * term / float64(k)
		sum += delta
		if math.Abs(delta) < relTol*math.Abs(sum) {
			break
		}
	}
	return -eulerGamma - math.Log(x) + sum
}
