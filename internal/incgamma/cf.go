// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incgamma

import "math"

// tiny guards the modified Lentz continued-fraction iteration in cf
// against division by an exactly-zero partial numerator/denominator.
const tiny = 1e-300

// cf evaluates Γ(a,x) via the modified Lentz continued fraction
//
//	Γ(a,x) = x^a e^-x / (x+1-a- 1·(1-a)/(x+3-a- 2·(2-a)/(x+5-a- ...)))
//
// the region of spec.md §4.2 where a ≤ α(x) but neither the Taylor
// (qt/rek) nor uniform-asymptotic (ua) branches apply.
func cf(a, x float64) float64 {
	b := x + 1 - a
	c := 1 / tiny
	d := 1 / b
	h := d
	for i := 1; i < maxIterCF; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = b + an/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		delta := d * c
		h *= delta
		if math.Abs(delta-1) < relTol {
			break
		}
	}
	logPrefix := -x + a*math.Log(x)
	return math.Exp(logPrefix) * h
}
