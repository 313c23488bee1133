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

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string

	// MaxLanes returns the number of elements one register of this width holds.
	MaxLanes() int
}

// ScalableTag adapts to the widest SIMD available at runtime.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// ScalarTag describes a target without a vector extension: one lane.
type ScalarTag[T Lanes] struct{}

// Width returns 0: there is no vector register.
func (ScalarTag[T]) Width() int {
	return 0
}

// Name returns "scalar".
func (ScalarTag[T]) Name() string {
	return "scalar"
}

// MaxLanes returns 1.
func (ScalarTag[T]) MaxLanes() int {
	return 1
}

// FixedTag128 describes 128-bit SIMD (SSE, NEON, WASM SIMD128).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return lanesForWidth[T](16)
}

// FixedTag256 describes 256-bit SIMD (AVX, AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return lanesForWidth[T](32)
}

// FixedTag512 describes 512-bit SIMD (AVX-512).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	return lanesForWidth[T](64)
}

// Tags returns the width tags for T from widest to narrowest, the order in
// which the resolver checks for vector extensions.
func Tags[T Lanes]() []Tag {
	return []Tag{FixedTag512[T]{}, FixedTag256[T]{}, FixedTag128[T]{}, ScalarTag[T]{}}
}
