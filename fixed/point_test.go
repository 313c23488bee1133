// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointAdd(t *testing.T) {
	p := NewPoint[float32]([...]float32{1, 2, 3})
	q := NewPoint[float32]([...]float32{0.5, -2, 10})

	got := p.Add(q)
	if diff := cmp.Diff([3]float32{1.5, 0, 13}, got.Array()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if !got.Equal(q.Add(p)) {
		t.Errorf("Point Add is not commutative: %v != %v", got, q.Add(p))
	}

	// Translating a point is the same element-wise add as for vectors.
	if !got.Vector().Equal(p.Vector().Add(q.Vector())) {
		t.Errorf("Point Add %v differs from Vector Add %v", got, p.Vector().Add(q.Vector()))
	}

	p.AddAssign(q)
	if !p.Equal(got) {
		t.Errorf("AddAssign = %v, want %v", p, got)
	}
}

func TestPointConversions(t *testing.T) {
	v := New[float64]([...]float64{1, 2})
	p := v.Point()
	if diff := cmp.Diff(v.Array(), p.Array()); diff != "" {
		t.Errorf("Point() mismatch (-want +got):\n%s", diff)
	}
	if !p.Vector().Equal(v) {
		t.Errorf("Vector() round trip = %v, want %v", p.Vector(), v)
	}

	var q Point2Float64 = SplatPoint[float64, [2]float64](3)
	q.Set(0, 4)
	if q.At(0) != 4 || q.At(1) != 3 || q.Len() != 2 {
		t.Errorf("Set/At = %v, want [4 3]", q)
	}
	if got := q.String(); got != "[4 3]" {
		t.Errorf("String() = %q, want %q", got, "[4 3]")
	}
}
