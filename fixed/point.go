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

// Point is a position with len(A) coordinates of type T.
//
// A Point has the same representation as a Vector and converts to and from
// one for free. The only arithmetic it offers is Add, which translates the
// point and runs the same element-wise kernel as Vector.Add.
type Point[T Element, A Array[T]] Vector[T, A]

// NewPoint returns the point with the coordinates of a.
func NewPoint[T Element, A Array[T]](a A) Point[T, A] {
	return Point[T, A]{a: a}
}

// SplatPoint returns the point with every coordinate set to x.
func SplatPoint[T Element, A Array[T]](x T) Point[T, A] {
	return Point[T, A](Splat[T, A](x))
}

// Array returns the coordinates of p as an array.
func (p Point[T, A]) Array() A {
	return p.a
}

// Len returns the number of coordinates of p.
func (p Point[T, A]) Len() int {
	return len(p.a)
}

// At returns coordinate i. It panics if i is out of range.
func (p Point[T, A]) At(i int) T {
	return p.a[i]
}

// Set sets coordinate i to x. It panics if i is out of range.
func (p *Point[T, A]) Set(i int, x T) {
	p.a[i] = x
}

// Equal reports whether p and q have the same coordinates.
func (p Point[T, A]) Equal(q Point[T, A]) bool {
	return p.a == q.a
}

// Vector converts p to a Vector with the same elements.
func (p Point[T, A]) Vector() Vector[T, A] {
	return Vector[T, A](p)
}

// String formats p like a slice, for example [1 2 3].
func (p Point[T, A]) String() string {
	return p.Vector().String()
}

// Add returns p translated by q.
func (p Point[T, A]) Add(q Point[T, A]) Point[T, A] {
	return Point[T, A](p.Vector().Add(q.Vector()))
}

// AddAssign translates p by q.
func (p *Point[T, A]) AddAssign(q Point[T, A]) {
	*p = p.Add(q)
}
