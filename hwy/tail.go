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

package hwy

// Partition splits size elements into full vectors of the current lane
// width and a remainder: size == full*MaxLanes[T]() + rem, 0 <= rem < lanes.
//
// Example:
//
//	full, rem := hwy.Partition[float32](len(data))
//	// data[:full*lanes] is processed one register at a time and
//	// data[full*lanes:] is padded with hwy.LoadPadded.
func Partition[T Lanes](size int) (full, rem int) {
	return PartitionN(size, MaxLanes[T]())
}

// PartitionN is Partition for an explicit lane count.
func PartitionN(size, lanes int) (full, rem int) {
	if size <= 0 {
		return 0, 0
	}
	lanes = clampLanes(lanes)
	return size / lanes, size % lanes
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
//
// Example:
//
//	hwy.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        var v [8]float32
//	        hwy.Load[float32](&v, data[offset:])
//	        hwy.Add[float32](&v, &v)
//	        hwy.Store[float32](&v, output[offset:])
//	    },
//	    func(offset, count int) {
//	        var v [8]float32
//	        hwy.LoadPadded[float32](&v, data[offset:offset+count])
//	        hwy.Add[float32](&v, &v)
//	        hwy.Store[float32](&v, output[offset:offset+count])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	ProcessWithTailN(size, MaxLanes[T](), fullFn, tailFn)
}

// ProcessWithTailN is ProcessWithTail for an explicit lane count.
func ProcessWithTailN(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes = clampLanes(lanes)
	fullVectors, remaining := PartitionN(size, lanes)

	// Process full vectors
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail if any
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

func clampLanes(lanes int) int {
	return min(max(lanes, 1), MaxRegisterLanes)
}
