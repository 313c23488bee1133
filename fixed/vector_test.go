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
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f32"
)

// approx compares reductions of random data against a left-to-right loop.
var approx = cmpopts.EquateApprox(1e-5, 1e-5)

func randomArray[A Array[float32]](rng *rand.Rand) A {
	var a A
	for i := range len(a) {
		a[i] = rng.Float32()*2 - 1
	}
	return a
}

// checkDim runs the arithmetic properties for vectors of len(A) elements.
func checkDim[A Array[float32]](t *testing.T) {
	var zero A
	d := len(zero)
	t.Run(fmt.Sprintf("D%d", d), func(t *testing.T) {
		rng := rand.New(rand.NewPCG(uint64(d), 42))
		a, b := randomArray[A](rng), randomArray[A](rng)
		va, vb := New[float32](a), New[float32](b)

		var wantSum, wantDot float32
		for i := range d {
			wantSum += a[i]
			wantDot += a[i] * b[i]
		}
		if diff := cmp.Diff(wantSum, va.Sum(), approx); diff != "" {
			t.Errorf("Sum() mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantDot, va.Dot(vb), approx); diff != "" {
			t.Errorf("Dot() mismatch (-want +got):\n%s", diff)
		}

		sum, prod := va.Add(vb), va.Mul(vb)
		for i := range d {
			if sum.At(i) != a[i]+b[i] {
				t.Errorf("Add()[%d] = %v, want %v", i, sum.At(i), a[i]+b[i])
			}
			if prod.At(i) != a[i]*b[i] {
				t.Errorf("Mul()[%d] = %v, want %v", i, prod.At(i), a[i]*b[i])
			}
		}
		if !sum.Equal(vb.Add(va)) {
			t.Errorf("Add is not commutative: %v != %v", sum, vb.Add(va))
		}
		if diff := cmp.Diff(a, va.Array()); diff != "" {
			t.Errorf("Array() round trip mismatch (-want +got):\n%s", diff)
		}
		if va.Len() != d {
			t.Errorf("Len() = %d, want %d", va.Len(), d)
		}
	})
}

func TestArithmeticAcrossDims(t *testing.T) {
	checkDim[[0]float32](t)
	checkDim[[1]float32](t)
	checkDim[[2]float32](t)
	checkDim[[3]float32](t)
	checkDim[[4]float32](t)
	checkDim[[5]float32](t)
	checkDim[[7]float32](t)
	checkDim[[8]float32](t)
	checkDim[[9]float32](t)
	checkDim[[16]float32](t)
	checkDim[[17]float32](t)
	checkDim[[33]float32](t)
	checkDim[[64]float32](t)
	checkDim[[384]float32](t)
}

func TestDotScenario(t *testing.T) {
	a := New[float32]([...]float32{1, 2, 3, 4})
	b := Splat[float32, [4]float32](2)
	if got := a.Dot(b); got != 20 {
		t.Errorf("[1 2 3 4] . [2 2 2 2] = %v, want 20", got)
	}
}

func TestSumScenario(t *testing.T) {
	v := New[float32]([...]float32{1, 2, 3, 4, 5})
	if got := v.Sum(); got != 15 {
		t.Errorf("[1 2 3 4 5].Sum() = %v, want 15", got)
	}
}

func TestZeroDimension(t *testing.T) {
	var v Vector[float32, [0]float32]
	if got := v.Sum(); got != 0 {
		t.Errorf("Sum() = %v, want 0", got)
	}
	if got := v.Dot(v); got != 0 {
		t.Errorf("Dot() = %v, want 0", got)
	}
	if got := v.Add(v).Len(); got != 0 {
		t.Errorf("Add().Len() = %d, want 0", got)
	}
	if got := v.Mul(v).Len(); got != 0 {
		t.Errorf("Mul().Len() = %d, want 0", got)
	}
}

func TestZeroValue(t *testing.T) {
	var v Vector3Float64
	if diff := cmp.Diff([3]float64{}, v.Array()); diff != "" {
		t.Errorf("zero value mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignOps(t *testing.T) {
	v := New[float64]([...]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	w := Splat[float64, [9]float64](0.5)

	v.AddAssign(w)
	want := [...]float64{1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5, 8.5, 9.5}
	if diff := cmp.Diff(want, v.Array()); diff != "" {
		t.Errorf("AddAssign mismatch (-want +got):\n%s", diff)
	}

	v.MulAssign(v)
	for i := range want {
		want[i] *= want[i]
	}
	if diff := cmp.Diff(want, v.Array()); diff != "" {
		t.Errorf("MulAssign(self) mismatch (-want +got):\n%s", diff)
	}
}

func TestSetAt(t *testing.T) {
	var v Vector4Float32
	v.Set(2, 7)
	if got := v.At(2); got != 7 {
		t.Errorf("At(2) = %v, want 7", got)
	}
	if diff := cmp.Diff([4]float32{0, 0, 7, 0}, v.Array()); diff != "" {
		t.Errorf("Set mismatch (-want +got):\n%s", diff)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"At", func() { New[float32]([...]float32{1, 2, 3}).At(3) }},
		{"AtNegative", func() { New[float32]([...]float32{1, 2, 3}).At(-1) }},
		{"Set", func() {
			var v Vector[int32, [2]int32]
			v.Set(2, 1)
		}},
		{"EmptyAt", func() { Vector[float32, [0]float32]{}.At(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestIntegerVector(t *testing.T) {
	a := New[int32]([...]int32{1, -2, 3, -4, 5})
	b := New[int32]([...]int32{5, 4, 3, 2, 1})
	if got := a.Dot(b); got != 5-8+9-8+5 {
		t.Errorf("Dot() = %d, want 3", got)
	}
	if got := a.Sum(); got != 3 {
		t.Errorf("Sum() = %d, want 3", got)
	}
	if diff := cmp.Diff([5]int32{6, 2, 6, -2, 6}, a.Add(b).Array()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedArrayType(t *testing.T) {
	v := New[float32](f32.Vec4{1, 2, 3, 4})
	w := New[float32](f32.Vec4{4, 3, 2, 1})

	var got f32.Vec4 = v.Add(w).Array()
	if diff := cmp.Diff(f32.Vec4{5, 5, 5, 5}, got); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}
	if d := v.Dot(w); d != 20 {
		t.Errorf("Dot() = %v, want 20", d)
	}

	m := New[float32](f32.Mat4{})
	if m.Len() != 16 {
		t.Errorf("f32.Mat4 vector Len() = %d, want 16", m.Len())
	}
}

func TestString(t *testing.T) {
	v := New[float32]([...]float32{1, 2.5, 3})
	if got := v.String(); got != "[1 2.5 3]" {
		t.Errorf("String() = %q, want %q", got, "[1 2.5 3]")
	}
}

func TestNoAllocations(t *testing.T) {
	a := Splat[float32, [384]float32](0.5)
	b := Splat[float32, [384]float32](2)
	small := New[float32]([...]float32{1, 2, 3, 4, 5})
	var sink float32

	allocs := testing.AllocsPerRun(100, func() {
		sink += a.Dot(b)
		sink += a.Sum()
		c := a.Add(b)
		c.MulAssign(b)
		sink += c.At(0)
		sink += small.Mul(small).Sum()
	})
	if allocs != 0 {
		t.Errorf("vector arithmetic allocated %v times per run, want 0", allocs)
	}
	_ = sink
}

func BenchmarkDot(b *testing.B) {
	b.Run("D4", func(b *testing.B) {
		x := Splat[float32, [4]float32](1)
		var sink float32
		for b.Loop() {
			sink += x.Dot(x)
		}
		_ = sink
	})
	b.Run("D384", func(b *testing.B) {
		x := Splat[float32, [384]float32](1)
		var sink float32
		for b.Loop() {
			sink += x.Dot(x)
		}
		_ = sink
	})
	b.Run("D1536", func(b *testing.B) {
		x := Splat[float32, [1536]float32](1)
		var sink float32
		for b.Loop() {
			sink += x.Dot(x)
		}
		_ = sink
	})
}
