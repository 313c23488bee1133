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

// Command fixedvec reports how the fixed-size vector kernels are dispatched
// on this machine and benchmarks them against github.com/viterin/vek.
//
// Usage:
//
//	fixedvec info
//	fixedvec bench --dim 384 --iters 100000
//
// Set HWY_NO_SIMD=1 to see the scalar fallback.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fixedvec",
		Short: "Inspect and benchmark fixed-size SIMD vectors",
		Long: `fixedvec reports the SIMD dispatch level and lane widths chosen for this
machine, and benchmarks fixed-size vector arithmetic.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print dispatch level, lane widths and CPU features",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	})

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark Dot and Sum against vek32",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().Int("dim", 0, "Vector dimension to benchmark (0 = all benchmark dimensions)")
	benchCmd.Flags().Int("iters", 100000, "Iterations per measurement")
	rootCmd.AddCommand(benchCmd)

	return rootCmd
}
