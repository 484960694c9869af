// Copyright ©2024 The epsteinlib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package epsteinlib

import (
	"math/cmplx"
	"testing"
)

func TestKahanRecoversLostPrecision(t *testing.T) {
	t.Parallel()
	var plain complex128
	var k kahan
	values := []complex128{1e16, 1, -1e16, 1, 1, 1}
	for _, v := range values {
		plain += v
		k.add(v)
	}
	want := complex(3, 0)
	if plainErr, kahanErr := cmplx.Abs(plain-want), cmplx.Abs(k.finish()-want); kahanErr > plainErr {
		t.Errorf("Kahan summation did not improve accuracy: plain err=%v kahan err=%v", plainErr, kahanErr)
	}
	if got := cmplx.Abs(k.finish() - want); got > 1e-9 {
		t.Errorf("kahan sum = %v, want %v (within 1e-9)", k.finish(), want)
	}
}
