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

// Package hwy resolves the native SIMD lane width of the running target and
// provides allocation-free lane registers for writing chunked kernels.
//
// The lane width is chosen once, at package init, by checking the widest
// vector extension the CPU supports. A register is a plain array whose
// length is the lane count, so a kernel instantiated for [8]float32 loops
// over exactly eight lanes and the register stays on the stack:
//
//	var acc [8]float32
//	for i := 0; i+len(acc) <= len(data); i += len(acc) {
//	    var v [8]float32
//	    hwy.Load[float32](&v, data[i:])
//	    hwy.Add[float32](&acc, &v)
//	}
//	sum := hwy.ReduceSum[float32](&acc)
//
// The element type is passed explicitly: it cannot be inferred from a
// register constraint that spans several array lengths.
//
// Kernels that must run at the resolved width switch once on MaxLanes and
// instantiate the matching register type.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// MaxRegisterLanes is the widest register: 512 bits of 1-byte lanes.
const MaxRegisterLanes = 64

// Register is the set of lane registers, one array type per lane count that
// MaxLanes can return. The lane count is part of the type, so copying a
// register copies exactly its lanes and loops over it have a constant trip
// count.
type Register[T Lanes] interface {
	~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// NumLanes returns the number of lanes of register type R.
func NumLanes[T Lanes, R Register[T]]() int {
	var r R
	return len(r)
}
