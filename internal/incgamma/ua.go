// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incgamma

import "math"

// c0EtaPivot is the smallest |η| at which c0Closed is evaluated
// directly; below it, both terms of c0Closed blow up (η→0 is a
// removable singularity of C_0) and c0Poly is used instead.
const c0EtaPivot = 0.1

// c0Coefs are the Maclaurin coefficients of Temme's leading-order
// uniform-asymptotic correction function
//
//	C_0(η) = 1/(λ-1) - 1/η,     ½η² = λ - 1 - ln(λ),
//
// around η=0 (DLMF 8.12.18, 8.12.8). Derived by reverting the series
// for η²(λ) about λ=1 and substituting into 1/(λ-1) − 1/η (see
// DESIGN.md); c0Coefs[k] is the coefficient of η^k in
// C_0(η) = -1/3 + η/12 - 2η²/135 + η³/864 + ...
var c0Coefs = [7]float64{
	-1.0 / 3,
	1.0 / 12,
	-2.0 / 135,
	1.0 / 864,
	1.0 / 2835,
	-139.0 / 777600,
	1.0 / 25515,
}

// c0Poly evaluates the Maclaurin polynomial for C_0(η) near η=0.
func c0Poly(eta float64) float64 {
	sum := 0.0
	p := 1.0
	for _, c := range c0Coefs {
		sum += c * p
		p *= eta
	}
	return sum
}

// c0Closed evaluates C_0(η) = 1/(λ-1) - 1/η directly, valid away from
// η=0.
func c0Closed(lambda, eta float64) float64 {
	return 1/(lambda-1) - 1/eta
}

// ua evaluates Γ(a,x) in the uniform-asymptotic region (a ≥ 12 and
// a ≥ x/2.35, spec.md §4.2), via the leading-order term of Temme's
// uniform asymptotic expansion (DLMF 8.12.18):
//
//	Q(a,x) ~ ½erfc(η√(a/2)) + e^(-aη²/2)/√(2πa) · C_0(η)
//
// with λ=x/a and η defined by ½η² = λ-1-ln(λ), sign(η)=sign(λ-1).
// This is the branch NR's gcf continued fraction (cf.go) handles
// slowly when x is just above a; ua is a genuinely distinct
// algorithm from cf; it is not folded into the cf case so the
// five-way dispatch stays independently testable per region, as
// spec.md §9 requires.
func ua(a, x float64) float64 {
	lambda := x / a
	eta := etaOf(lambda)

	var c0 float64
	if math.Abs(eta) < c0EtaPivot {
		c0 = c0Poly(eta)
	} else {
		c0 = c0Closed(lambda, eta)
	}

	q := 0.5*math.Erfc(eta*math.Sqrt(a/2)) + math.Exp(-a*eta*eta/2)/math.Sqrt(2*math.Pi*a)*c0
	return math.Gamma(a) * q
}

// etaOf returns η from ½η² = λ-1-ln(λ), sign(η) = sign(λ-1). λ-1-ln(λ)
// ≥ 0 for all λ>0 (equality only at λ=1), so this is exact up to the
// log's own rounding; no iteration is needed.
func etaOf(lambda float64) float64 {
	target := lambda - 1 - math.Log(lambda)
	if target < 0 {
		target = 0 // rounding noise guard near lambda=1
	}
	eta := math.Sqrt(2 * target)
	if lambda < 1 {
		eta = -eta
	}
	return eta
}
