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
	"unsafe"

	"github.com/ajroetker/go-fixedvec/hwy/contrib/vec"
)

// Vector is a fixed-length vector of len(A) elements of type T.
//
// The zero value is the vector of all zeros.
type Vector[T Element, A Array[T]] struct {
	a A
}

// New returns the vector holding the elements of a.
//
// T cannot be inferred from the array type, so it is given explicitly:
//
//	v := fixed.New[float32]([...]float32{1, 2, 3})
func New[T Element, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{a: a}
}

// Splat returns the vector with every element set to x.
func Splat[T Element, A Array[T]](x T) Vector[T, A] {
	var v Vector[T, A]
	for i := range len(v.a) {
		v.a[i] = x
	}
	return v
}

// Array returns the elements of v as an array.
func (v Vector[T, A]) Array() A {
	return v.a
}

// Len returns the number of elements of v.
func (v Vector[T, A]) Len() int {
	return len(v.a)
}

// At returns element i. It panics if i is out of range.
func (v Vector[T, A]) At(i int) T {
	return v.a[i]
}

// Set sets element i to x. It panics if i is out of range.
func (v *Vector[T, A]) Set(i int, x T) {
	v.a[i] = x
}

// Equal reports whether v and w hold the same elements.
func (v Vector[T, A]) Equal(w Vector[T, A]) bool {
	return v.a == w.a
}

// Point converts v to a Point with the same coordinates.
func (v Vector[T, A]) Point() Point[T, A] {
	return Point[T, A](v)
}

// String formats v like a slice, for example [1 2 3].
func (v Vector[T, A]) String() string {
	return fmt.Sprint(v.elems())
}

// Sum returns the sum of the elements of v.
//
// The elements are accumulated lane-wise and reduced once at the end, so
// floating point results can differ in the last bits from a left-to-right
// loop.
func (v Vector[T, A]) Sum() T {
	return vec.Sum(v.elems())
}

// Dot returns the dot product of v and w.
func (v Vector[T, A]) Dot(w Vector[T, A]) T {
	return vec.Dot(v.elems(), w.elems())
}

// Add returns the element-wise sum v + w.
func (v Vector[T, A]) Add(w Vector[T, A]) Vector[T, A] {
	var r Vector[T, A]
	vec.Add(r.elems(), v.elems(), w.elems())
	return r
}

// Mul returns the element-wise product v * w.
func (v Vector[T, A]) Mul(w Vector[T, A]) Vector[T, A] {
	var r Vector[T, A]
	vec.Mul(r.elems(), v.elems(), w.elems())
	return r
}

// AddAssign sets v to v + w.
func (v *Vector[T, A]) AddAssign(w Vector[T, A]) {
	*v = v.Add(w)
}

// MulAssign sets v to v * w.
func (v *Vector[T, A]) MulAssign(w Vector[T, A]) {
	*v = v.Mul(w)
}

// elems views the backing array as a slice without copying it.
func (v *Vector[T, A]) elems() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.a)), len(v.a))
}
