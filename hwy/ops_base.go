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

package hwy

// This file provides pure Go implementations of the register operations.
// Registers are passed by pointer and updated in place; every loop runs over
// the register's own length, which is a constant for each instantiation.

// Load fills r from the first len(r) elements of src. It panics if src is
// shorter than the register.
func Load[T Lanes, R Register[T]](r *R, src []T) {
	n := len(*r)
	src = src[:n]
	for i := range n {
		(*r)[i] = src[i]
	}
}

// LoadPadded loads min(len(src), len(r)) elements of src into the low lanes
// of r and zeroes the rest. src is never read past its length.
func LoadPadded[T Lanes, R Register[T]](r *R, src []T) {
	n := min(len(src), len(*r))
	for i := range n {
		(*r)[i] = src[i]
	}
	for i := n; i < len(*r); i++ {
		(*r)[i] = 0
	}
}

// Store writes the low min(len(dst), len(r)) lanes of r to dst. Elements of
// dst past that count are left untouched.
func Store[T Lanes, R Register[T]](r *R, dst []T) {
	n := min(len(dst), len(*r))
	for i := range n {
		dst[i] = (*r)[i]
	}
}

// Set sets every lane of r to value.
func Set[T Lanes, R Register[T]](r *R, value T) {
	for i := range len(*r) {
		(*r)[i] = value
	}
}

// Add performs element-wise addition: dst[i] += a[i].
func Add[T Lanes, R Register[T]](dst, a *R) {
	for i := range len(*dst) {
		(*dst)[i] += (*a)[i]
	}
}

// Mul performs element-wise multiplication: dst[i] *= a[i].
func Mul[T Lanes, R Register[T]](dst, a *R) {
	for i := range len(*dst) {
		(*dst)[i] *= (*a)[i]
	}
}

// MulAdd accumulates the element-wise product: acc[i] += a[i]*b[i]. The
// product is rounded to T before the addition, the same as a vector multiply
// followed by a vector add; it is never contracted into a fused
// multiply-add.
func MulAdd[T Lanes, R Register[T]](acc, a, b *R) {
	for i := range len(*acc) {
		(*acc)[i] += T((*a)[i] * (*b)[i])
	}
}

// ReduceSum sums all lanes, left to right starting at lane 0.
func ReduceSum[T Lanes, R Register[T]](r *R) T {
	sum := (*r)[0]
	for i := 1; i < len(*r); i++ {
		sum += (*r)[i]
	}
	return sum
}
