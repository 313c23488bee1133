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

// BaseSum computes the sum of all elements in a slice using hwy primitives.
//
// Returns 0 if the slice is empty.
//
// Full chunks of MaxLanes elements are accumulated into a register, the
// remainder is zero-padded to a full register and accumulated the same way,
// and the register is reduced to a scalar once at the end.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func BaseSum[T hwy.Lanes](v []T) T {
	return sumLanes(v, hwy.MaxLanes[T]())
}

// sumLanes is BaseSum with an explicit register width.
func sumLanes[T hwy.Lanes](v []T, lanes int) T {
	switch lanes {
	case 64:
		return sumRegister[T, [64]T](v)
	case 32:
		return sumRegister[T, [32]T](v)
	case 16:
		return sumRegister[T, [16]T](v)
	case 8:
		return sumRegister[T, [8]T](v)
	case 4:
		return sumRegister[T, [4]T](v)
	case 2:
		return sumRegister[T, [2]T](v)
	}
	return sumRegister[T, [1]T](v)
}

func sumRegister[T hwy.Lanes, R hwy.Register[T]](v []T) T {
	if len(v) == 0 {
		return 0
	}

	var acc R
	lanes := len(acc)
	full, rem := hwy.PartitionN(len(v), lanes)

	// Process full vectors
	var i int
	for range full {
		chunk := v[i : i+lanes : i+lanes]
		for j := range lanes {
			acc[j] += chunk[j]
		}
		i += lanes
	}

	// Zero-padded remainder
	if rem > 0 {
		var tail R
		hwy.LoadPadded[T](&tail, v[i:])
		hwy.Add[T](&acc, &tail)
	}

	return hwy.ReduceSum[T](&acc)
}
