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

package hwy

import "simd/archsimd"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

// detectCPUFeatures uses the same feature checks archsimd uses to guard its
// own instructions, so a level picked here is always safe for the archsimd
// kernels in hwy/contrib/vec.
func detectCPUFeatures() {
	switch {
	case archsimd.X86.AVX512():
		setLevel(DispatchAVX512)
	case archsimd.X86.AVX2():
		setLevel(DispatchAVX2)
	case archsimd.X86.AVX():
		setLevel(DispatchAVX)
	default:
		// SSE2 is baseline for amd64
		setLevel(DispatchSSE2)
	}
}
