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

// BaseAdd performs element-wise addition: dst[i] = a[i] + b[i].
//
// Processes min(len(dst), len(a), len(b)) elements. Elements of dst past
// that length are left untouched. dst may alias a or b.
//
// Example:
//
//	dst := make([]float32, 3)
//	Add(dst, []float32{1, 2, 3}, []float32{4, 5, 6})  // dst = [5, 7, 9]
func BaseAdd[T hwy.Lanes](dst, a, b []T) {
	addLanes(dst, a, b, hwy.MaxLanes[T]())
}

func addLanes[T hwy.Lanes](dst, a, b []T, lanes int) {
	switch lanes {
	case 64:
		addRegister[T, [64]T](dst, a, b)
	case 32:
		addRegister[T, [32]T](dst, a, b)
	case 16:
		addRegister[T, [16]T](dst, a, b)
	case 8:
		addRegister[T, [8]T](dst, a, b)
	case 4:
		addRegister[T, [4]T](dst, a, b)
	case 2:
		addRegister[T, [2]T](dst, a, b)
	default:
		addRegister[T, [1]T](dst, a, b)
	}
}

func addRegister[T hwy.Lanes, R hwy.Register[T]](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	var va, vb R
	lanes := len(va)
	full, rem := hwy.PartitionN(n, lanes)

	var i int
	for range full {
		cd := dst[i : i+lanes : i+lanes]
		ca := a[i : i+lanes : i+lanes]
		cb := b[i : i+lanes : i+lanes]
		for j := range lanes {
			cd[j] = ca[j] + cb[j]
		}
		i += lanes
	}

	if rem > 0 {
		hwy.LoadPadded[T](&va, a[i:n])
		hwy.LoadPadded[T](&vb, b[i:n])
		hwy.Add[T](&va, &vb)
		hwy.Store[T](&va, dst[i:n])
	}
}

// BaseMul performs element-wise multiplication: dst[i] = a[i] * b[i].
//
// Processes min(len(dst), len(a), len(b)) elements. Elements of dst past
// that length are left untouched. dst may alias a or b.
//
// Example:
//
//	dst := make([]float32, 3)
//	Mul(dst, []float32{1, 2, 3}, []float32{4, 5, 6})  // dst = [4, 10, 18]
func BaseMul[T hwy.Lanes](dst, a, b []T) {
	mulLanes(dst, a, b, hwy.MaxLanes[T]())
}

func mulLanes[T hwy.Lanes](dst, a, b []T, lanes int) {
	switch lanes {
	case 64:
		mulRegister[T, [64]T](dst, a, b)
	case 32:
		mulRegister[T, [32]T](dst, a, b)
	case 16:
		mulRegister[T, [16]T](dst, a, b)
	case 8:
		mulRegister[T, [8]T](dst, a, b)
	case 4:
		mulRegister[T, [4]T](dst, a, b)
	case 2:
		mulRegister[T, [2]T](dst, a, b)
	default:
		mulRegister[T, [1]T](dst, a, b)
	}
}

func mulRegister[T hwy.Lanes, R hwy.Register[T]](dst, a, b []T) {
	n := min(len(dst), len(a), len(b))
	var va, vb R
	lanes := len(va)
	full, rem := hwy.PartitionN(n, lanes)

	var i int
	for range full {
		cd := dst[i : i+lanes : i+lanes]
		ca := a[i : i+lanes : i+lanes]
		cb := b[i : i+lanes : i+lanes]
		for j := range lanes {
			cd[j] = ca[j] * cb[j]
		}
		i += lanes
	}

	if rem > 0 {
		hwy.LoadPadded[T](&va, a[i:n])
		hwy.LoadPadded[T](&vb, b[i:n])
		hwy.Mul[T](&va, &vb)
		hwy.Store[T](&va, dst[i:n])
	}
}
