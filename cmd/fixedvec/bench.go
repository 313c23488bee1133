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

package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-fixedvec/fixed"
	"github.com/ajroetker/go-fixedvec/hwy"
)

// benchSink keeps the benchmarked results alive.
var benchSink float32

type benchResult struct {
	Dim                int
	Dot, VekDot        time.Duration
	Sum, VekSum        time.Duration
	DotErr, SumErr     float32
	DotValue, SumValue float32
}

type benchCase struct {
	dim int
	run func(iters int) benchResult
}

// Vector lengths are part of the type, so each benchmarked dimension is its
// own instantiation.
var benchCases = []benchCase{
	{4, benchDim[[4]float32]},
	{16, benchDim[[16]float32]},
	{17, benchDim[[17]float32]},
	{128, benchDim[[128]float32]},
	{384, benchDim[[384]float32]},
	{768, benchDim[[768]float32]},
	{1536, benchDim[[1536]float32]},
}

func benchDims() []int {
	dims := make([]int, len(benchCases))
	for i, c := range benchCases {
		dims[i] = c.dim
	}
	return dims
}

func runBench(cmd *cobra.Command, args []string) error {
	dim, _ := cmd.Flags().GetInt("dim")
	iters, _ := cmd.Flags().GetInt("iters")

	if iters <= 0 {
		return fmt.Errorf("iters must be positive, got %d", iters)
	}
	cases := benchCases
	if dim != 0 {
		i := slices.IndexFunc(benchCases, func(c benchCase) bool { return c.dim == dim })
		if i < 0 {
			return fmt.Errorf("unsupported dimension %d (supported: %v)", dim, benchDims())
		}
		cases = benchCases[i : i+1]
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Dispatch: %s, %d float32 lanes, %d iterations\n\n", hwy.CurrentName(), hwy.MaxLanes[float32](), iters)
	printBenchHeader(w)
	for _, c := range cases {
		printBenchResult(w, c.run(iters))
	}
	return nil
}

// benchDim times Dot and Sum on vectors of len(A) elements and compares
// them with vek32 on the same data.
func benchDim[A fixed.Array[float32]](iters int) benchResult {
	var a, b A
	for i := range len(a) {
		a[i] = float32(i%17)*0.25 - 2
		b[i] = float32(i%5)*0.5 + 0.125
	}
	va, vb := fixed.New[float32](a), fixed.New[float32](b)

	xs := make([]float32, len(a))
	ys := make([]float32, len(b))
	for i := range xs {
		xs[i], ys[i] = a[i], b[i]
	}

	res := benchResult{Dim: len(a)}
	var sink float32
	res.Dot = timePerOp(iters, func() { sink += va.Dot(vb) })
	res.VekDot = timePerOp(iters, func() { sink += vek32.Dot(xs, ys) })
	res.Sum = timePerOp(iters, func() { sink += va.Sum() })
	res.VekSum = timePerOp(iters, func() { sink += vek32.Sum(xs) })
	benchSink = sink

	res.DotValue, res.SumValue = va.Dot(vb), va.Sum()
	res.DotErr = relErr(res.DotValue, vek32.Dot(xs, ys))
	res.SumErr = relErr(res.SumValue, vek32.Sum(xs))
	return res
}

func timePerOp(iters int, fn func()) time.Duration {
	start := time.Now()
	for range iters {
		fn()
	}
	return time.Since(start) / time.Duration(iters)
}

// relErr is |got-want| relative to |want|, or absolute when |want| < 1.
func relErr(got, want float32) float32 {
	return math32.Abs(got-want) / math32.Max(math32.Abs(want), 1)
}

func printBenchHeader(w io.Writer) {
	fmt.Fprintf(w, "%6s %12s %12s %12s %12s %10s %10s\n",
		"dim", "dot", "vek32.Dot", "sum", "vek32.Sum", "dot err", "sum err")
}

func printBenchResult(w io.Writer, r benchResult) {
	fmt.Fprintf(w, "%6d %12s %12s %12s %12s %10.2e %10.2e\n",
		r.Dim, r.Dot, r.VekDot, r.Sum, r.VekSum, r.DotErr, r.SumErr)
}
