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

//go:build amd64 && goexperiment.simd

package vec

import "github.com/ajroetker/go-fixedvec/hwy"

// The AVX2 and AVX-512 kernels use registers of exactly MaxLanes elements for
// their level, so they chunk the data the same way the portable kernels do.
// SSE2 and AVX levels run the portable kernels.

// SumFloat32 sums v with the kernel for the detected dispatch level.
func SumFloat32(v []float32) float32 {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		return sumAVX512F32(v)
	case hwy.DispatchAVX2:
		return sumAVX2F32(v)
	}
	return BaseSum(v)
}

// SumFloat64 sums v with the kernel for the detected dispatch level.
func SumFloat64(v []float64) float64 {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		return sumAVX512F64(v)
	case hwy.DispatchAVX2:
		return sumAVX2F64(v)
	}
	return BaseSum(v)
}

// DotFloat32 returns the dot product of a and b with the kernel for the
// detected dispatch level.
func DotFloat32(a, b []float32) float32 {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		return dotAVX512F32(a, b)
	case hwy.DispatchAVX2:
		return dotAVX2F32(a, b)
	}
	return BaseDot(a, b)
}

// DotFloat64 returns the dot product of a and b with the kernel for the
// detected dispatch level.
func DotFloat64(a, b []float64) float64 {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		return dotAVX512F64(a, b)
	case hwy.DispatchAVX2:
		return dotAVX2F64(a, b)
	}
	return BaseDot(a, b)
}

// AddFloat32 sets dst[i] = a[i] + b[i] with the kernel for the detected
// dispatch level.
func AddFloat32(dst, a, b []float32) {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		addAVX512F32(dst, a, b)
	case hwy.DispatchAVX2:
		addAVX2F32(dst, a, b)
	default:
		BaseAdd(dst, a, b)
	}
}

// AddFloat64 sets dst[i] = a[i] + b[i] with the kernel for the detected
// dispatch level.
func AddFloat64(dst, a, b []float64) {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		addAVX512F64(dst, a, b)
	case hwy.DispatchAVX2:
		addAVX2F64(dst, a, b)
	default:
		BaseAdd(dst, a, b)
	}
}

// MulFloat32 sets dst[i] = a[i] * b[i] with the kernel for the detected
// dispatch level.
func MulFloat32(dst, a, b []float32) {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		mulAVX512F32(dst, a, b)
	case hwy.DispatchAVX2:
		mulAVX2F32(dst, a, b)
	default:
		BaseMul(dst, a, b)
	}
}

// MulFloat64 sets dst[i] = a[i] * b[i] with the kernel for the detected
// dispatch level.
func MulFloat64(dst, a, b []float64) {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX512:
		mulAVX512F64(dst, a, b)
	case hwy.DispatchAVX2:
		mulAVX2F64(dst, a, b)
	default:
		BaseMul(dst, a, b)
	}
}
