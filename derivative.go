// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

// maxDerivOrder is the |α| ≤ 12 bound spec.md §3 requires of the
// derivative-extension multi-index.
const maxDerivOrder = 12

// derivStep is the central-difference step used by ZetaDeriv and
// ZetaRegDeriv. It is fixed rather than adapted to x's magnitude: x is
// always reduced modulo the lattice before being handed to the
// evaluator, so its scale is already bounded by the fundamental cell.
const derivStep = 1e-4

// ZetaDeriv evaluates ∂^|α|/∂x^α Zeta(ν,d,A,x,y), the x-derivative of
// the Epstein zeta function of multi-index alpha (length d, each
// entry non-negative, sum at most 12). It is built from Zeta itself by
// a recursive tensor-product central finite difference (see
// DESIGN.md): each unit of alpha[j] replaces every evaluation by a
// pair shifted by ±derivStep along axis j, so a call makes 2^|α| Zeta
// evaluations in all.
func ZetaDeriv(nu float64, d int, a, x, y []float64, alpha []int) complex128 {
	f := func(xv []float64) complex128 { return Zeta(nu, d, a, xv, y) }
	return nthPartial(f, x, alpha)
}

// ZetaRegDeriv is the regularised counterpart of ZetaDeriv.
func ZetaRegDeriv(nu float64, d int, a, x, y []float64, alpha []int) complex128 {
	f := func(xv []float64) complex128 { return ZetaReg(nu, d, a, xv, y) }
	return nthPartial(f, x, alpha)
}

func validateAlpha(d int, alpha []int) {
	if len(alpha) != d {
		panic(ErrLength)
	}
	total := 0
	for _, ai := range alpha {
		if ai < 0 {
			panic(Error("epsteinlib: derivative multi-index must be non-negative"))
		}
		total += ai
	}
	if total > maxDerivOrder {
		panic(Error("epsteinlib: derivative order exceeds the supported bound of 12"))
	}
}

// nthPartial evaluates the mixed partial derivative of f at x of
// order alpha by recursively applying a central difference along the
// first axis with a remaining non-zero order, until alpha is all
// zero.
func nthPartial(f func([]float64) complex128, x []float64, alpha []int) complex128 {
	validateAlpha(len(x), alpha)
	return nthPartialUnchecked(f, x, alpha)
}

func nthPartialUnchecked(f func([]float64) complex128, x []float64, alpha []int) complex128 {
	axis := -1
	for i, ai := range alpha {
		if ai > 0 {
			axis = i
			break
		}
	}
	if axis < 0 {
		return f(x)
	}

	reduced := make([]int, len(alpha))
	copy(reduced, alpha)
	reduced[axis]--

	plus := append([]float64(nil), x...)
	plus[axis] += derivStep
	minus := append([]float64(nil), x...)
	minus[axis] -= derivStep

	fp := nthPartialUnchecked(f, plus, reduced)
	fm := nthPartialUnchecked(f, minus, reduced)
	return (fp - fm) / complex(2*derivStep, 0)
}
