// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

// Error represents a contract violation by the caller: a dimension
// d ≤ 0, a slice of the wrong length, or a singular generator matrix
// A. Zeta and ZetaReg panic with one of these rather than returning a
// value, since neither has a meaningful numeric result to propagate.
// A's invertibility is the caller's responsibility: only an LU
// determinant that is exactly zero or NaN is detected.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrDimension signals d ≤ 0.
	ErrDimension = Error("epsteinlib: dimension must be positive")
	// ErrLength signals a generator matrix or shift vector whose length
	// does not match d.
	ErrLength = Error("epsteinlib: slice length does not match dimension")
	// ErrSingular signals a generator matrix A whose LU determinant
	// is exactly zero or NaN; a tiny but non-zero pivot is not caught.
	ErrSingular = Error("epsteinlib: generator matrix is singular")
)
