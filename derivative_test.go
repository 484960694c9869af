// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

import (
	"math/cmplx"
	"testing"
)

func TestZetaDerivZeroOrderMatchesZeta(t *testing.T) {
	t.Parallel()
	d := 2
	a := identity(2)
	x := []float64{0.1, 0.2}
	y := []float64{0.3, -0.1}
	nu := 1.5

	got := ZetaDeriv(nu, d, a, x, y, []int{0, 0})
	want := Zeta(nu, d, a, x, y)
	if cmplx.Abs(got-want) > 1e-9*cmplx.Abs(want) {
		t.Errorf("ZetaDeriv with zero multi-index = %v, want %v", got, want)
	}
}

func TestZetaDerivPanicsOnBadAlpha(t *testing.T) {
	t.Parallel()
	d := 2
	a := identity(2)
	x := []float64{0.1, 0.2}
	y := []float64{0.3, -0.1}

	cases := [][]int{
		{1},     // wrong length
		{-1, 0}, // negative order
		{7, 7},  // exceeds |alpha| <= 12
	}
	for i, alpha := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected panic for alpha=%v", i, alpha)
				}
			}()
			ZetaDeriv(1.5, d, a, x, y, alpha)
		}()
	}
}

func TestZetaDerivFirstOrderFiniteAndSmooth(t *testing.T) {
	t.Parallel()
	// Away from any singular configuration the first x-derivative
	// should be a small, finite perturbation relative to the value
	// itself for a small coordinate shift, a basic smoothness sanity
	// check rather than a closed-form comparison.
	d := 1
	a := []float64{1}
	y := []float64{0}
	nu := 2.0

	x0 := []float64{-0.3}
	val := Zeta(nu, d, a, x0, y)
	deriv := ZetaDeriv(nu, d, a, x0, y, []int{1})
	if cmplx.IsNaN(deriv) || cmplx.IsInf(deriv) {
		t.Fatalf("ZetaDeriv returned non-finite value: %v", deriv)
	}

	h := 0.001
	xh := []float64{x0[0] + h}
	valh := Zeta(nu, d, a, xh, y)
	approxDeriv := (valh - val) / complex(h, 0)
	if cmplx.Abs(deriv-approxDeriv) > 0.05*cmplx.Abs(deriv) {
		t.Errorf("ZetaDeriv = %v, forward-difference check gives %v", deriv, approxDeriv)
	}
}
