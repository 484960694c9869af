// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package epsteinlib evaluates the Epstein zeta function
//
//	Z_Λ,ν(x;y) = Σ'_{z∈Λ} e^{−2πi y·z} / |z − x|^ν,   Re ν > d,
//
// and its y-regularised variant over an arbitrary real lattice
// Λ = AZᵈ, by meromorphic continuation to all real ν. The lattice is
// given by its generator matrix A (row-major, invertible); x and y are
// real shift vectors of length d.
//
// Evaluation follows Crandall's symmetric decomposition of the sum
// into a real-space lattice sum and a reciprocal-space lattice sum,
// glued together by the incomplete gamma function (internal/crandall,
// internal/incgamma). This package's driver handles coordinate
// normalisation, truncation-radius selection, Kahan-compensated
// summation, and the regularisation needed near y=0 and at the
// ν = d+2k resonance points.
package epsteinlib
