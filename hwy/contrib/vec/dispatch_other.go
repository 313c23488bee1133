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

//go:build !amd64 || !goexperiment.simd

package vec

// Without archsimd every target runs the portable kernels at the lane width
// the hwy package resolved.

// SumFloat32 sums v with the portable kernel.
func SumFloat32(v []float32) float32 { return BaseSum(v) }

// SumFloat64 sums v with the portable kernel.
func SumFloat64(v []float64) float64 { return BaseSum(v) }

// DotFloat32 returns the dot product of a and b with the portable kernel.
func DotFloat32(a, b []float32) float32 { return BaseDot(a, b) }

// DotFloat64 returns the dot product of a and b with the portable kernel.
func DotFloat64(a, b []float64) float64 { return BaseDot(a, b) }

// AddFloat32 sets dst[i] = a[i] + b[i] with the portable kernel.
func AddFloat32(dst, a, b []float32) { BaseAdd(dst, a, b) }

// AddFloat64 sets dst[i] = a[i] + b[i] with the portable kernel.
func AddFloat64(dst, a, b []float64) { BaseAdd(dst, a, b) }

// MulFloat32 sets dst[i] = a[i] * b[i] with the portable kernel.
func MulFloat32(dst, a, b []float32) { BaseMul(dst, a, b) }

// MulFloat64 sets dst[i] = a[i] * b[i] with the portable kernel.
func MulFloat64(dst, a, b []float64) { BaseMul(dst, a, b) }
