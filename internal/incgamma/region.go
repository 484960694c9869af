// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incgamma

import "math"

// region names one of the five algorithms the Gautschi-style selector
// can dispatch to. It is a first-class tagged value (spec.md §9)
// rather than hidden behind an interface, so each branch can be
// exercised directly by tests.
type region int

const (
	regionQT region = iota
	regionREK
	regionUA
	regionCF
	regionPT
)

func (r region) String() string {
	switch r {
	case regionQT:
		return "qt"
	case regionREK:
		return "rek"
	case regionUA:
		return "ua"
	case regionCF:
		return "cf"
	case regionPT:
		return "pt"
	default:
		return "unknown"
	}
}

// alpha implements the α(x) boundary of spec.md §4.2.
func alpha(x float64) float64 {
	if x >= 0.5 {
		return x
	}
	return math.Log(0.5) / math.Log(x/2)
}

// selectRegion picks the algorithm used to evaluate the upper
// incomplete gamma function Γ(a,x), following spec.md §4.2 exactly.
func selectRegion(a, x float64) region {
	al := alpha(x)
	switch {
	case a <= al && x <= 1.5 && a >= -0.5:
		return regionQT
	case a <= al && x <= 1.5:
		return regionREK
	case a <= al && a >= 12 && a >= x/2.35:
		return regionUA
	case a <= al:
		return regionCF
	default:
		return regionPT
	}
}

// ldomainSmallX and ldomainMinA extend the pt region for γ* relative
// to Γ(a,x)'s own selector (spec.md §4.2: "a second selector (ldomain)
// differs in one condition (extends the pt region for slightly more
// negative a and very small x)"). spec.md gives this relationship in
// prose only, with no numeric boundary to copy verbatim; the
// thresholds below are an engineering choice rather than a value
// recovered from the original source.
const (
	ldomainSmallX = 1e-3
	ldomainMinA   = -1.0
)

// selectRegionStar picks the algorithm used to evaluate the entire
// function γ*(a,x), which widens the pt region relative to
// selectRegion.
func selectRegionStar(a, x float64) region {
	if x < ldomainSmallX && a > ldomainMinA {
		return regionPT
	}
	return selectRegion(a, x)
}
