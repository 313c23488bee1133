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

import (
	"simd/archsimd"

	"github.com/ajroetker/go-fixedvec/hwy"
)

// AVX2 kernels: 8 float32 or 4 float64 lanes per 256-bit register.

func sumAVX2F32(v []float32) float32 {
	acc := archsimd.BroadcastFloat32x8(0)
	full, rem := hwy.PartitionN(len(v), 8)

	var i int
	for range full {
		acc = acc.Add(archsimd.LoadFloat32x8Slice(v[i:]))
		i += 8
	}

	if rem > 0 {
		var pad [8]float32
		copy(pad[:], v[i:])
		acc = acc.Add(archsimd.LoadFloat32x8Slice(pad[:]))
	}

	return reduceF32x8(acc)
}

func dotAVX2F32(a, b []float32) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat32x8(0)
	full, rem := hwy.PartitionN(n, 8)

	var i int
	for range full {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		acc = va.Mul(vb).Add(acc)
		i += 8
	}

	if rem > 0 {
		var padA, padB [8]float32
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat32x8Slice(padA[:])
		vb := archsimd.LoadFloat32x8Slice(padB[:])
		acc = va.Mul(vb).Add(acc)
	}

	return reduceF32x8(acc)
}

func addAVX2F32(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 8)

	var i int
	for range full {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
		i += 8
	}

	if rem > 0 {
		var padA, padB [8]float32
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat32x8Slice(padA[:])
		vb := archsimd.LoadFloat32x8Slice(padB[:])
		va.Add(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

func mulAVX2F32(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 8)

	var i int
	for range full {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
		i += 8
	}

	if rem > 0 {
		var padA, padB [8]float32
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat32x8Slice(padA[:])
		vb := archsimd.LoadFloat32x8Slice(padB[:])
		va.Mul(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

// reduceF32x8 spills the register to an array and reduces it
// with hwy.ReduceSum, the reduction the portable kernels use.
func reduceF32x8(acc archsimd.Float32x8) float32 {
	var lanes [8]float32
	acc.StoreSlice(lanes[:])
	return hwy.ReduceSum[float32](&lanes)
}

func sumAVX2F64(v []float64) float64 {
	acc := archsimd.BroadcastFloat64x4(0)
	full, rem := hwy.PartitionN(len(v), 4)

	var i int
	for range full {
		acc = acc.Add(archsimd.LoadFloat64x4Slice(v[i:]))
		i += 4
	}

	if rem > 0 {
		var pad [4]float64
		copy(pad[:], v[i:])
		acc = acc.Add(archsimd.LoadFloat64x4Slice(pad[:]))
	}

	return reduceF64x4(acc)
}

func dotAVX2F64(a, b []float64) float64 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat64x4(0)
	full, rem := hwy.PartitionN(n, 4)

	var i int
	for range full {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		acc = va.Mul(vb).Add(acc)
		i += 4
	}

	if rem > 0 {
		var padA, padB [4]float64
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat64x4Slice(padA[:])
		vb := archsimd.LoadFloat64x4Slice(padB[:])
		acc = va.Mul(vb).Add(acc)
	}

	return reduceF64x4(acc)
}

func addAVX2F64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 4)

	var i int
	for range full {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
		i += 4
	}

	if rem > 0 {
		var padA, padB [4]float64
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat64x4Slice(padA[:])
		vb := archsimd.LoadFloat64x4Slice(padB[:])
		va.Add(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

func mulAVX2F64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 4)

	var i int
	for range full {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
		i += 4
	}

	if rem > 0 {
		var padA, padB [4]float64
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat64x4Slice(padA[:])
		vb := archsimd.LoadFloat64x4Slice(padB[:])
		va.Mul(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

// reduceF64x4 spills the register to an array and reduces it
// with hwy.ReduceSum, the reduction the portable kernels use.
func reduceF64x4(acc archsimd.Float64x4) float64 {
	var lanes [4]float64
	acc.StoreSlice(lanes[:])
	return hwy.ReduceSum[float64](&lanes)
}
