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

// Package fixed provides fixed-length numeric vectors, points and
// column-major matrices whose arithmetic runs on the chunked SIMD kernels of
// hwy/contrib/vec.
//
// The length of a Vector is part of its type: Vector[T, A] holds one value
// of the array type A, so a Vector[float32, [3]float32] and a
// Vector[float32, [4]float32] cannot be added, and constructing one from an
// array of the wrong length does not compile:
//
//	a := fixed.New[float32]([...]float32{1, 2, 3, 4})
//	b := fixed.Splat[float32, [4]float32](2)
//	d := a.Dot(b) // 20
//
// The lengths that can be used are the ones listed in the generated Array
// constraint; see fixedgen.yaml. Named array types with a supported
// underlying type, such as f32.Vec4 from golang.org/x/image/math/f32, work
// as well.
//
// Vectors, points and matrices are plain values: they are copied on
// assignment, never allocate, and are safe to use from multiple goroutines
// as long as each mutation has exclusive access to its value.
//
// Indexing outside [0, Len()) panics with the usual runtime index error.
// There is no error return anywhere in this package.
package fixed

//go:generate go run ../cmd/fixedgen -config fixedgen.yaml -output arrays_gen.go

import "github.com/ajroetker/go-fixedvec/hwy"

// Element is the set of numeric types a Vector can hold.
type Element interface {
	hwy.Lanes
}
