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

package fixed

import (
	"fmt"
	"unsafe"
)

// Matrix is a matrix stored as len(M) columns, each a Vector of len(A)
// rows.
//
// Columns are the only access path: there is no row access, multiplication
// or transpose.
type Matrix[T Element, A Array[T], M Columns[T, A]] struct {
	cols M
}

// NewMatrix returns the matrix whose columns are the elements of cols.
//
// The row array type is given explicitly and the column array type is
// inferred:
//
//	// 1 2
//	// 3 4
//	m := fixed.NewMatrix[float32, [2]float32]([2][2]float32{{1, 3}, {2, 4}})
func NewMatrix[T Element, A Array[T], M Columns[T, A]](cols M) Matrix[T, A, M] {
	return Matrix[T, A, M]{cols: cols}
}

// Rows returns the number of rows, the length of every column.
func (m Matrix[T, A, M]) Rows() int {
	var col A
	return len(col)
}

// Columns returns the number of columns.
func (m Matrix[T, A, M]) Columns() int {
	return len(m.cols)
}

// Column returns a copy of column i. It panics if i is out of range.
func (m Matrix[T, A, M]) Column(i int) Vector[T, A] {
	return Vector[T, A]{a: m.cols[i]}
}

// SetColumn sets column i to v. It panics if i is out of range.
func (m *Matrix[T, A, M]) SetColumn(i int, v Vector[T, A]) {
	m.cols[i] = v.a
}

// ColumnRef returns a pointer to column i for in-place updates such as
//
//	m.ColumnRef(0).AddAssign(v)
//
// It panics if i is out of range.
func (m *Matrix[T, A, M]) ColumnRef(i int) *Vector[T, A] {
	// Vector[T, A] is a struct holding exactly one A.
	return (*Vector[T, A])(unsafe.Pointer(&m.cols[i]))
}

// Array returns the columns of m as an array of column arrays.
func (m Matrix[T, A, M]) Array() M {
	return m.cols
}

// Equal reports whether m and n hold the same elements.
func (m Matrix[T, A, M]) Equal(n Matrix[T, A, M]) bool {
	return m.cols == n.cols
}

// String formats m as its list of columns, for example [[1 2] [3 4]].
func (m Matrix[T, A, M]) String() string {
	return fmt.Sprint(m.cols)
}
