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
	"runtime"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fixedvec/hwy"
)

func runInfo(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Dispatch name: %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
	fmt.Fprintln(w)

	printLaneTable(w)
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}

	info := vek32.Info()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "vek32 acceleration: %v %v\n", info.Acceleration, info.CPUFeatures)
	return nil
}

func printLaneTable(w io.Writer) {
	fmt.Fprintln(w, "=== Lanes per register ===")
	fmt.Fprintf(w, "  %-8s %6s %8s %8s\n", "tag", "bytes", "float32", "float64")
	tags32, tags64 := hwy.Tags[float32](), hwy.Tags[float64]()
	for i := range tags32 {
		fmt.Fprintf(w, "  %-8s %6d %8d %8d\n", tags32[i].Name(), tags32[i].Width(), tags32[i].MaxLanes(), tags64[i].MaxLanes())
	}
	fmt.Fprintf(w, "  %-8s %6d %8d %8d\n", "current", hwy.CurrentWidth(), hwy.MaxLanes[float32](), hwy.MaxLanes[float64]())
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
}
