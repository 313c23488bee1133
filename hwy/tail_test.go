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

import (
	"fmt"
	"testing"
)

func TestPartitionN(t *testing.T) {
	tests := []struct {
		size, lanes      int
		wantFull, wantRm int
	}{
		{0, 4, 0, 0},
		{3, 4, 0, 3},
		{4, 4, 1, 0},
		{5, 4, 1, 1},
		{17, 8, 2, 1},
		{17, 16, 1, 1},
		{9, 1, 9, 0},
		{-1, 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.size, tt.lanes), func(t *testing.T) {
			full, rem := PartitionN(tt.size, tt.lanes)
			if full != tt.wantFull || rem != tt.wantRm {
				t.Errorf("PartitionN(%d, %d) = (%d, %d), want (%d, %d)",
					tt.size, tt.lanes, full, rem, tt.wantFull, tt.wantRm)
			}
		})
	}
}

func TestPartitionCoversSize(t *testing.T) {
	lanes := MaxLanes[float32]()
	for size := range 40 {
		full, rem := Partition[float32](size)
		if full*lanes+rem != size || rem < 0 || rem >= lanes {
			t.Errorf("Partition(%d) = (%d, %d) with %d lanes", size, full, rem, lanes)
		}
	}
}

func TestProcessWithTailN(t *testing.T) {
	for _, size := range []int{0, 1, 3, 4, 5, 8, 9} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			var offsets []int
			tailOffset, tailCount := -1, 0
			ProcessWithTailN(size, 4,
				func(offset int) { offsets = append(offsets, offset) },
				func(offset, count int) { tailOffset, tailCount = offset, count },
			)

			if len(offsets) != size/4 {
				t.Errorf("full chunks = %d, want %d", len(offsets), size/4)
			}
			for i, off := range offsets {
				if off != i*4 {
					t.Errorf("chunk %d offset = %d, want %d", i, off, i*4)
				}
			}
			if size%4 == 0 {
				if tailOffset != -1 {
					t.Errorf("tail called for size %d", size)
				}
				return
			}
			if tailOffset != size-size%4 || tailCount != size%4 {
				t.Errorf("tail = (%d, %d), want (%d, %d)", tailOffset, tailCount, size-size%4, size%4)
			}
		})
	}
}

func TestProcessWithTailRegisters(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	result := make([]float32, len(data)+1)
	result[len(data)] = -1

	ProcessWithTailN(len(data), 8,
		func(offset int) {
			var v [8]float32
			Load[float32](&v, data[offset:])
			Add[float32](&v, &v)
			Store[float32](&v, result[offset:])
		},
		func(offset, count int) {
			var v [8]float32
			LoadPadded[float32](&v, data[offset:offset+count])
			Add[float32](&v, &v)
			Store[float32](&v, result[offset:offset+count])
		},
	)

	for i := range data {
		if result[i] != 2*data[i] {
			t.Errorf("result[%d] = %v, want %v", i, result[i], 2*data[i])
		}
	}
	if result[len(data)] != -1 {
		t.Errorf("tail wrote past its count: result[%d] = %v", len(data), result[len(data)])
	}
}

func TestProcessWithTailUsesMaxLanes(t *testing.T) {
	lanes := MaxLanes[float64]()
	var chunks, tail int
	ProcessWithTail[float64](3*lanes+1,
		func(int) { chunks++ },
		func(_, count int) { tail = count },
	)
	if chunks != 3 || tail != 1 {
		t.Errorf("ProcessWithTail(%d) = %d chunks, tail %d; want 3 chunks, tail 1", 3*lanes+1, chunks, tail)
	}
}
