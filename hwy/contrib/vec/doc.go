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

// Package vec provides the chunked SIMD arithmetic kernels used by the
// fixed-size containers: horizontal Sum, Dot, and element-wise Add and Mul
// over slices.
//
// Every kernel runs in three phases. The input is partitioned into
// len/MaxLanes full chunks and a remainder, each full chunk is processed in
// one lane register, and the remainder is zero-padded to a full register
// and processed with the same operation. Sum and Dot accumulate into a
// single register that is reduced to a scalar once at the end; Add and Mul
// write back only the true remainder positions.
//
// # Dispatch
//
// The portable Base* kernels switch once on the lane width hwy resolved at
// startup and run a kernel instantiated for that exact register array
// ([8]float32, [16]float32, ...), so the per-chunk loops have a constant
// trip count and the accumulator lives on the stack. On
// amd64 builds with GOEXPERIMENT=simd, float32 and float64 inputs run
// archsimd kernels for AVX2 and AVX-512 instead. Both produce identical
// results for the same lane width: the multiply and add of Dot are never
// fused, and the final register reduction runs left to right.
//
// Results may differ from a strictly left-to-right scalar loop by floating
// point reassociation.
//
// None of the kernels allocate.
package vec
