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

// The generic entry points switch on the element type and call the
// per-type functions directly. Calling through a function value would make
// every slice argument escape to the heap, and callers such as fixed.Vector
// pass slices of stack arrays.

// Sum returns the sum of the elements of v. It is the generic API that
// dispatches to the appropriate SIMD implementation.
func Sum[T hwy.Lanes](v []T) T {
	switch s := any(v).(type) {
	case []float32:
		return T(SumFloat32(s))
	case []float64:
		return T(SumFloat64(s))
	}
	return BaseSum(v)
}

// Dot is the generic API that dispatches to the appropriate SIMD implementation.
func Dot[T hwy.Lanes](a, b []T) T {
	switch sa := any(a).(type) {
	case []float32:
		return T(DotFloat32(sa, any(b).([]float32)))
	case []float64:
		return T(DotFloat64(sa, any(b).([]float64)))
	}
	return BaseDot(a, b)
}

// Add is the generic API that dispatches to the appropriate SIMD implementation.
func Add[T hwy.Lanes](dst, a, b []T) {
	switch sd := any(dst).(type) {
	case []float32:
		AddFloat32(sd, any(a).([]float32), any(b).([]float32))
	case []float64:
		AddFloat64(sd, any(a).([]float64), any(b).([]float64))
	default:
		BaseAdd(dst, a, b)
	}
}

// Mul is the generic API that dispatches to the appropriate SIMD implementation.
func Mul[T hwy.Lanes](dst, a, b []T) {
	switch sd := any(dst).(type) {
	case []float32:
		MulFloat32(sd, any(a).([]float32), any(b).([]float32))
	case []float64:
		MulFloat64(sd, any(a).([]float64), any(b).([]float64))
	default:
		BaseMul(dst, a, b)
	}
}
