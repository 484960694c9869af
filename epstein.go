// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

import (
	"math"
	"math/cmplx"

	"github.com/epsteinlib/epsteinlib/internal/crandall"
	"github.com/epsteinlib/epsteinlib/internal/linalg"
)

// Zeta evaluates the Epstein zeta function
//
//	Z_Λ,ν(x;y) = Σ'_{z∈Λ} e^{−2πi y·z} / |z − x|^ν
//
// for the lattice Λ = AZᵈ, by meromorphic continuation to all real ν.
// A is a d×d row-major, invertible generator matrix; x and y are
// shift vectors of length d. Zeta panics if d ≤ 0, if A, x or y have
// the wrong length, or if A is singular.
//
// At the exposed pole (ν = d and y projecting to the origin of the
// reciprocal lattice), Zeta returns complex(NaN, NaN).
func Zeta(nu float64, d int, a, x, y []float64) complex128 {
	return evaluate(nu, d, a, x, y, false)
}

// ZetaReg evaluates the regularised Epstein zeta function
//
//	Zʳᵉᵍ_Λ,ν(x;y) = e^{2πi x·y}·Z_Λ,ν(x;y) − ŝ(y)/|det A|,
//
// which removes the y-singularity of Zeta at ν = d. ZetaReg panics
// under the same conditions as Zeta, but never returns NaN: the
// self-term is handled analytically, including its logarithmic branch
// at the resonance points ν = d+2k.
func ZetaReg(nu float64, d int, a, x, y []float64) complex128 {
	return evaluate(nu, d, a, x, y, true)
}

// trivialZeroTol and poleTol are the 2^-30 tolerances spec.md uses for
// the near-integer classifications in the special-case gate.
const (
	trivialZeroTol = 1.0 / (1 << 30)
	poleTol        = 1.0 / (1 << 30)
)

// isTrivialZero implements the open-ended predicate of spec.md §9:
// the C source's guard is ν < 1 && |ν/2 − round(ν/2)| < 2^-30, which
// is slightly wider than "ν non-positive even integer": it also accepts
// ν within 2^-29 above 0. Preserved verbatim rather than narrowed (see
// DESIGN.md).
func isTrivialZero(nu float64) bool {
	if nu >= 1 {
		return false
	}
	half := nu / 2
	return math.Abs(half-math.Round(half)) < trivialZeroTol
}

func evaluate(nu float64, d int, a, x, y []float64, regularized bool) complex128 {
	if d <= 0 {
		panic(ErrDimension)
	}
	if len(x) != d || len(y) != d {
		panic(ErrLength)
	}

	lat := newLattice(d, a)
	xPrime := lat.scaleVec(x)
	yPrime := lat.unscaleVec(y)
	xTilde := lat.projectReal(xPrime)
	yTilde := lat.projectRecip(yPrime)

	if isTrivialZero(nu) {
		if math.Abs(nu) < trivialZeroTol && linalg.VecIsZero(d, xTilde) {
			phase := -2 * math.Pi * linalg.Dot(d, xPrime, yTilde)
			return cmplx.Rect(-1, phase)
		}
		return 0
	}
	if !regularized && math.Abs(nu-float64(d)) < poleTol && linalg.Dot(d, yTilde, yTilde) < 1e-64 {
		return complex(math.NaN(), math.NaN())
	}

	bound := crandall.AsymptoticBound(nu)
	boundRec := crandall.AsymptoticBound(float64(d) - nu)

	xDiff := subVec(d, xPrime, xTilde)
	xfactor := cmplx.Rect(1, -2*math.Pi*linalg.Dot(d, xDiff, yPrime))

	realRadii, recipRadii := lat.truncationRadii()

	var s1, s2 kahan
	realIt := newBoxIter(d, realRadii, false)
	for n, ok := realIt.next(); ok; n, ok = realIt.next() {
		l := matVecInt(d, lat.aScaled, n)
		rho := cmplx.Rect(1, -2*math.Pi*linalg.Dot(d, l, yTilde))
		s1.add(rho * complex(crandall.G(nu, subVec(d, l, xTilde), 1, bound), 0))
	}

	recipIt := newBoxIter(d, recipRadii, true)
	for n, ok := recipIt.next(); ok; n, ok = recipIt.next() {
		k := addVec(d, matVecInt(d, lat.bScaled, n), yTilde)
		rho := cmplx.Rect(1, -2*math.Pi*linalg.Dot(d, k, xTilde))
		s2.add(rho * complex(crandall.G(float64(d)-nu, k, 1, boundRec), 0))
	}

	var sum1, sum2 complex128
	if !regularized {
		c := complex(crandall.G(float64(d)-nu, yTilde, 1, boundRec), 0) *
			cmplx.Rect(1, -2*math.Pi*linalg.Dot(d, xTilde, yTilde))
		s2.add(c)
		sum1, sum2 = s1.finish(), s2.finish()
	} else {
		c := complex(crandall.GReg(float64(d)-nu, yPrime, 1), 0)
		rot := cmplx.Rect(1, 2*math.Pi*linalg.Dot(d, xPrime, yPrime))
		if !linalg.VecEqual(d, yTilde, yPrime) {
			corr := complex(crandall.G(float64(d)-nu, yTilde, 1, boundRec), 0)*cmplx.Rect(1, -2*math.Pi*linalg.Dot(d, xPrime, yTilde)) -
				complex(crandall.G(float64(d)-nu, yPrime, 1, boundRec), 0)*cmplx.Rect(1, -2*math.Pi*linalg.Dot(d, xPrime, yPrime))
			s2.add(corr)
		}
		sum2 = s2.finish()*rot + c
		sum1 = s1.finish() * rot * xfactor
		xfactor = 1
	}

	res := xfactor * complex(math.Pow(math.Pi, nu/2)/math.Gamma(nu/2), 0) * (sum1 + sum2)
	if regularized {
		res += logCorrection(nu, d, y, lat.ms, lat.volume)
	}

	return complex(math.Pow(lat.ms, nu), 0) * res
}

// logCorrection implements spec.md §4.4 step 8: the term that
// compensates the log(ms²) introduced by the scaling of step 2, added
// only at the resonance points ν = d+2k of the regularised variant.
func logCorrection(nu float64, d int, y []float64, ms, volume float64) complex128 {
	k, resonant := crandall.ResonanceOrder(float64(d) - nu)
	if !resonant {
		return 0
	}
	logms2 := math.Log(ms * ms)
	dHalf := float64(d) / 2
	if k == 0 {
		return complex(math.Pow(math.Pi, dHalf)*logms2/(math.Gamma(dHalf)*volume), 0)
	}
	y2 := linalg.Dot(d, y, y)
	sign := 1.0
	if k%2 != 0 {
		sign = -1.0
	}
	val := sign / factorial(k) * math.Pow(math.Pi, 2*float64(k)+dHalf) * math.Pow(y2, float64(k)) * logms2 / (math.Gamma(float64(k)+dHalf) * volume)
	return complex(-val, 0)
}

func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

func subVec(d int, a, b []float64) []float64 {
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = a[i] - b[i]
	}
	return out
}

func addVec(d int, a, b []float64) []float64 {
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = a[i] + b[i]
	}
	return out
}

func matVecInt(d int, m []float64, n []int) []float64 {
	out := make([]float64, d)
	linalg.MatVecInt(d, m, n, out)
	return out
}
