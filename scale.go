// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

import (
	"math"

	"github.com/epsteinlib/epsteinlib/internal/linalg"
)

// diagTol is the tolerance below which an off-diagonal entry of A is
// treated as zero when detecting diagonality (spec.md §4.4 step 1).
const diagTol = 1e-14

// lattice holds the derived quantities of spec.md §3's lattice
// descriptor: the rescaled generator A_scaled (|det A_scaled| = 1),
// its reciprocal B_scaled = (A_scaled⁻¹)ᵀ, the scale factor ms, the
// volume V = |det A|, and whether A is diagonal.
type lattice struct {
	d        int
	aScaled  []float64 // d*d row-major
	bScaled  []float64 // d*d row-major
	ms       float64
	volume   float64
	diagonal bool
}

// newLattice builds a lattice descriptor from the d×d row-major
// generator matrix a (spec.md §4.4 steps 1–2). a is read but not
// modified.
func newLattice(d int, a []float64) *lattice {
	if d <= 0 {
		panic(ErrDimension)
	}
	if len(a) != d*d {
		panic(ErrLength)
	}

	lu := make([]float64, d*d)
	copy(lu, a)
	piv := make([]int, d)
	aInv := make([]float64, d*d)
	det := linalg.Invert(d, lu, piv, aInv)
	if det == 0 || math.IsNaN(det) {
		panic(ErrSingular)
	}
	volume := math.Abs(det)

	b := make([]float64, d*d)
	copy(b, aInv)
	linalg.TransposeInPlace(d, b)

	diagonal := true
	for i := 0; i < d && diagonal; i++ {
		for j := 0; j < d; j++ {
			if i == j {
				continue
			}
			if math.Abs(a[i*d+j]) > diagTol {
				diagonal = false
				break
			}
		}
	}

	ms := math.Pow(volume, -1/float64(d))
	aScaled := make([]float64, d*d)
	bScaled := make([]float64, d*d)
	for i := range aScaled {
		aScaled[i] = ms * a[i]
		bScaled[i] = b[i] / ms
	}

	return &lattice{
		d:        d,
		aScaled:  aScaled,
		bScaled:  bScaled,
		ms:       ms,
		volume:   volume,
		diagonal: diagonal,
	}
}

// scaleVec returns ms·v.
func (l *lattice) scaleVec(v []float64) []float64 {
	out := make([]float64, l.d)
	for i := range out {
		out[i] = l.ms * v[i]
	}
	return out
}

// unscaleVec returns v/ms.
func (l *lattice) unscaleVec(v []float64) []float64 {
	out := make([]float64, l.d)
	for i := range out {
		out[i] = v[i] / l.ms
	}
	return out
}

// projectReal projects a real-space vector v' into the fundamental
// cell of Λ_scaled, returning the representative ṽ congruent to v'
// modulo Λ_scaled (spec.md §4.4 step 3; coordinates are v' expressed
// in the A_scaled basis, i.e. A_scaled⁻¹·v' = B_scaledᵀ·v').
func (l *lattice) projectReal(v []float64) []float64 {
	coords := matTVec(l.d, l.bScaled, v)
	rem := make([]float64, l.d)
	for i := range rem {
		rem[i] = coords[i] - math.Round(coords[i])
	}
	return matVec(l.d, l.aScaled, rem)
}

// projectRecip projects a reciprocal-space vector v' into the
// fundamental cell of Λ_scaled*, returning the representative ṽ
// congruent to v' modulo Λ_scaled* (coordinates are A_scaledᵀ·v').
func (l *lattice) projectRecip(v []float64) []float64 {
	coords := matTVec(l.d, l.aScaled, v)
	rem := make([]float64, l.d)
	for i := range rem {
		rem[i] = coords[i] - math.Round(coords[i])
	}
	return matVec(l.d, l.bScaled, rem)
}

// gBoundBase is G_BOUND + ½ of spec.md §4.4 step 4.
const gBoundBase = 3.2 + 0.5

// truncationRadii picks the per-axis non-negative integer cutoffs for
// the real-space and reciprocal-space lattice sums (spec.md §4.4
// step 4).
func (l *lattice) truncationRadii() (realRadii, recipRadii []int) {
	realRadii = make([]int, l.d)
	recipRadii = make([]int, l.d)
	if l.diagonal {
		for i := 0; i < l.d; i++ {
			diag := math.Abs(l.aScaled[i*l.d+i])
			realRadii[i] = int(math.Floor(gBoundBase / diag))
			recipRadii[i] = int(math.Floor(gBoundBase * diag))
		}
		return realRadii, recipRadii
	}
	cReal := int(math.Floor(gBoundBase * linalg.InfNorm(l.d, l.bScaled)))
	cRecip := int(math.Floor(gBoundBase * linalg.InfNorm(l.d, l.aScaled)))
	for i := 0; i < l.d; i++ {
		realRadii[i] = cReal
		recipRadii[i] = cRecip
	}
	return realRadii, recipRadii
}

// matVec returns m·v for a d×d row-major matrix m and length-d v.
func matVec(d int, m, v []float64) []float64 {
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		var s float64
		row := m[i*d : i*d+d]
		for j := 0; j < d; j++ {
			s += row[j] * v[j]
		}
		out[i] = s
	}
	return out
}

// matTVec returns mᵀ·v for a d×d row-major matrix m and length-d v.
func matTVec(d int, m, v []float64) []float64 {
	out := make([]float64, d)
	for j := 0; j < d; j++ {
		var s float64
		for i := 0; i < d; i++ {
			s += m[i*d+j] * v[i]
		}
		out[j] = s
	}
	return out
}
