// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crandall

import "math"

// asymptoticTol bounds how close ν must be to 2 or 4 to trigger the
// tightest asymptotic threshold, spec.md §4.3's first step.
const asymptoticTol = 1e-9

// AsymptoticBound implements the ν-dependent step function of
// spec.md §4.3 that chooses how large r² = π·p²·|z|² must be before
// G switches from the incomplete-gamma evaluation to its asymptotic
// closed form, while keeping ≥18-digit accuracy. The thresholds are
// given in the spec as bounds on √(r²/π); AsymptoticBound converts
// them to a bound on r² itself.
func AsymptoticBound(nu float64) float64 {
	switch {
	case math.Abs(nu-2) < asymptoticTol || math.Abs(nu-4) < asymptoticTol:
		return ratioBound(2.6)
	case nu > 1.6 && nu < 4.4:
		return ratioBound(2.99)
	case nu > -3 && nu < 8:
		return ratioBound(3.15)
	case nu > -70 && nu < 40:
		return ratioBound(3.35)
	case nu > -600 && nu < 80:
		return ratioBound(3.5)
	default:
		return math.Inf(1)
	}
}

func ratioBound(c float64) float64 {
	return c * c * math.Pi
}
