// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crandall implements the per-lattice-point summand of
// Crandall's symmetric real-space/reciprocal-space decomposition of
// the Epstein zeta function (spec.md §4.3): G evaluates the
// non-regularised kernel, GReg the y-regularised variant used at and
// near the logarithmic resonance points ν = d + 2k.
package crandall

import (
	"math"

	"github.com/epsteinlib/epsteinlib/internal/incgamma"
	"github.com/epsteinlib/epsteinlib/internal/linalg"
)

// removableR2 is the threshold below which r² is treated as exactly
// zero (the removable −2/ν limit of G), spec.md §4.3.
const removableR2 = 1e-64

// radius2 returns r² = π·p²·|z|².
func radius2(z []float64, p float64) float64 {
	return math.Pi * p * p * linalg.Dot(len(z), z, z)
}

// G evaluates the Crandall summand Γ(ν/2, r²) / (r²)^(ν/2) at lattice
// point z, where r² = π·p²·|z|², switching to a closed-form
// asymptotic expansion once r² exceeds bound (spec.md §4.3).
func G(nu float64, z []float64, p, bound float64) float64 {
	r2 := radius2(z, p)
	switch {
	case r2 < removableR2:
		return -2 / nu
	case r2 > bound:
		return math.Exp(-r2) * (-2 + 2*r2 + nu) / (2 * r2 * r2)
	default:
		return incgamma.UpperIncomplete(nu/2, r2) / math.Pow(r2, nu/2)
	}
}

// taylorCutoffR2 bounds r² below which the k=0 logarithmic branch of
// GReg switches to its 10-term Taylor series to avoid cancellation
// (spec.md §4.3).
const taylorCutoffR2 = 0.031

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.5772156649015328606

// GReg evaluates the regularised Crandall summand for s = d − ν at
// lattice point z, where r² = π·p²·|z|². For generic s it returns
// −Γ(s/2)·γ*(s/2,r²); at the resonance points s = −2k (k ∈ ℕ₀, i.e.
// ν = d+2k) it returns the removable logarithmic combination
// (spec.md §4.3).
func GReg(s float64, z []float64, p float64) float64 {
	r2 := radius2(z, p)
	k, resonant := resonanceOrder(s)
	if !resonant {
		return -math.Gamma(s/2) * incgamma.GammaStar(s/2, r2)
	}
	if k == 0 {
		if r2 < taylorCutoffR2 {
			return logResonanceTaylor(r2) - math.Log(p*p)
		}
		return (incgamma.UpperIncomplete(0, r2) + math.Log(r2)) - math.Log(p*p)
	}
	if r2 == 0 {
		return 1 / float64(k)
	}
	rk := math.Pow(r2, float64(k))
	sign := 1.0
	if k%2 != 0 {
		sign = -1.0
	}
	return rk*(incgamma.UpperIncomplete(-float64(k), r2)+(sign/factorial(k))*math.Log(r2)) - rk*math.Log(p*p)
}

// ResonanceOrder reports whether s is a non-positive even integer
// (within 2^-30, mirroring the tolerance spec.md uses for its other
// near-integer classifications) and, if so, its order k = −s/2. The
// driver (root package) also uses this to decide whether ZetaReg's
// log correction (spec.md §4.4 step 8) applies at a given ν.
func ResonanceOrder(s float64) (k int, ok bool) {
	return resonanceOrder(s)
}

func resonanceOrder(s float64) (k int, ok bool) {
	const tol = 1.0 / (1 << 30)
	if s > tol {
		return 0, false
	}
	half := -s / 2
	r := math.Round(half)
	if math.Abs(half-r) > tol || r < 0 {
		return 0, false
	}
	return int(r), true
}

func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// logResonanceCoefs are the coefficients c_j of the Taylor expansion
//
//	Γ(0,r²) + log(r²) = −γ_E + Σ_{j=1}^10 c_j (r²)^j
//
// derived in closed form from the exponential-integral series
// E1(x) = −γ_E − log(x) + Σ_{j=1}^∞ (−1)^(j+1) x^j/(j·j!), since
// Γ(0,x) = E1(x) (spec.md §4.3's k=0 Taylor branch).
var logResonanceCoefs = func() [10]float64 {
	var c [10]float64
	for j := 1; j <= 10; j++ {
		sign := 1.0
		if j%2 == 0 {
			sign = -1.0
		}
		c[j-1] = sign / (float64(j) * factorial(j))
	}
	return c
}()

// logResonanceTaylor evaluates the k=0 Taylor series above at r2,
// via Horner's scheme from the highest-order coefficient down.
func logResonanceTaylor(r2 float64) float64 {
	sum := 0.0
	for j := len(logResonanceCoefs) - 1; j >= 0; j-- {
		sum = sum*r2 + logResonanceCoefs[j]
	}
	return -eulerGamma + sum*r2
}
