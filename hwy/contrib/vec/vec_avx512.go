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

// AVX-512 kernels: 16 float32 or 8 float64 lanes per 512-bit register.

func sumAVX512F32(v []float32) float32 {
	acc := archsimd.BroadcastFloat32x16(0)
	full, rem := hwy.PartitionN(len(v), 16)

	var i int
	for range full {
		acc = acc.Add(archsimd.LoadFloat32x16Slice(v[i:]))
		i += 16
	}

	if rem > 0 {
		var pad [16]float32
		copy(pad[:], v[i:])
		acc = acc.Add(archsimd.LoadFloat32x16Slice(pad[:]))
	}

	return reduceF32x16(acc)
}

func dotAVX512F32(a, b []float32) float32 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat32x16(0)
	full, rem := hwy.PartitionN(n, 16)

	var i int
	for range full {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		acc = va.Mul(vb).Add(acc)
		i += 16
	}

	if rem > 0 {
		var padA, padB [16]float32
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat32x16Slice(padA[:])
		vb := archsimd.LoadFloat32x16Slice(padB[:])
		acc = va.Mul(vb).Add(acc)
	}

	return reduceF32x16(acc)
}

func addAVX512F32(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 16)

	var i int
	for range full {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
		i += 16
	}

	if rem > 0 {
		var padA, padB [16]float32
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat32x16Slice(padA[:])
		vb := archsimd.LoadFloat32x16Slice(padB[:])
		va.Add(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

func mulAVX512F32(dst, a, b []float32) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 16)

	var i int
	for range full {
		va := archsimd.LoadFloat32x16Slice(a[i:])
		vb := archsimd.LoadFloat32x16Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
		i += 16
	}

	if rem > 0 {
		var padA, padB [16]float32
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat32x16Slice(padA[:])
		vb := archsimd.LoadFloat32x16Slice(padB[:])
		va.Mul(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

// reduceF32x16 spills the register to an array and reduces it
// with hwy.ReduceSum, the reduction the portable kernels use.
func reduceF32x16(acc archsimd.Float32x16) float32 {
	var lanes [16]float32
	acc.StoreSlice(lanes[:])
	return hwy.ReduceSum[float32](&lanes)
}

func sumAVX512F64(v []float64) float64 {
	acc := archsimd.BroadcastFloat64x8(0)
	full, rem := hwy.PartitionN(len(v), 8)

	var i int
	for range full {
		acc = acc.Add(archsimd.LoadFloat64x8Slice(v[i:]))
		i += 8
	}

	if rem > 0 {
		var pad [8]float64
		copy(pad[:], v[i:])
		acc = acc.Add(archsimd.LoadFloat64x8Slice(pad[:]))
	}

	return reduceF64x8(acc)
}

func dotAVX512F64(a, b []float64) float64 {
	n := min(len(a), len(b))
	acc := archsimd.BroadcastFloat64x8(0)
	full, rem := hwy.PartitionN(n, 8)

	var i int
	for range full {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		acc = va.Mul(vb).Add(acc)
		i += 8
	}

	if rem > 0 {
		var padA, padB [8]float64
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat64x8Slice(padA[:])
		vb := archsimd.LoadFloat64x8Slice(padB[:])
		acc = va.Mul(vb).Add(acc)
	}

	return reduceF64x8(acc)
}

func addAVX512F64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 8)

	var i int
	for range full {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
		i += 8
	}

	if rem > 0 {
		var padA, padB [8]float64
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat64x8Slice(padA[:])
		vb := archsimd.LoadFloat64x8Slice(padB[:])
		va.Add(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

func mulAVX512F64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	full, rem := hwy.PartitionN(n, 8)

	var i int
	for range full {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
		i += 8
	}

	if rem > 0 {
		var padA, padB [8]float64
		copy(padA[:], a[i:n])
		copy(padB[:], b[i:n])
		va := archsimd.LoadFloat64x8Slice(padA[:])
		vb := archsimd.LoadFloat64x8Slice(padB[:])
		va.Mul(vb).StoreSlice(padA[:])
		copy(dst[i:n], padA[:rem])
	}
}

// reduceF64x8 spills the register to an array and reduces it
// with hwy.ReduceSum, the reduction the portable kernels use.
func reduceF64x8(acc archsimd.Float64x8) float64 {
	var lanes [8]float64
	acc.StoreSlice(lanes[:])
	return hwy.ReduceSum[float64](&lanes)
}
