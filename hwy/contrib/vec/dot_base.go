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

package vec

import "github.com/ajroetker/go-fixedvec/hwy"

// BaseDot computes the dot product (inner product) of two vectors using hwy primitives.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func BaseDot[T hwy.Lanes](a, b []T) T {
	return dotLanes(a, b, hwy.MaxLanes[T]())
}

func dotLanes[T hwy.Lanes](a, b []T, lanes int) T {
	switch lanes {
	case 64:
		return dotRegister[T, [64]T](a, b)
	case 32:
		return dotRegister[T, [32]T](a, b)
	case 16:
		return dotRegister[T, [16]T](a, b)
	case 8:
		return dotRegister[T, [8]T](a, b)
	case 4:
		return dotRegister[T, [4]T](a, b)
	case 2:
		return dotRegister[T, [2]T](a, b)
	}
	return dotRegister[T, [1]T](a, b)
}

func dotRegister[T hwy.Lanes, R hwy.Register[T]](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	var acc R
	lanes := len(acc)
	full, rem := hwy.PartitionN(n, lanes)

	var i int
	for range full {
		ca := a[i : i+lanes : i+lanes]
		cb := b[i : i+lanes : i+lanes]
		for j := range lanes {
			acc[j] += T(ca[j] * cb[j])
		}
		i += lanes
	}

	// Padding lanes are zero in both operands, so they add 0*0 to the sum.
	if rem > 0 {
		var va, vb R
		hwy.LoadPadded[T](&va, a[i:n])
		hwy.LoadPadded[T](&vb, b[i:n])
		hwy.MulAdd[T](&acc, &va, &vb)
	}

	return hwy.ReduceSum[T](&acc)
}
