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
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func TestLaneTable(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want int
	}{
		{"512bit float32", FixedTag512[float32]{}, 16},
		{"512bit float64", FixedTag512[float64]{}, 8},
		{"256bit float32", FixedTag256[float32]{}, 8},
		{"256bit float64", FixedTag256[float64]{}, 4},
		{"128bit float32", FixedTag128[float32]{}, 4},
		{"128bit float64", FixedTag128[float64]{}, 2},
		{"scalar float32", ScalarTag[float32]{}, 1},
		{"scalar float64", ScalarTag[float64]{}, 1},
		{"512bit int8", FixedTag512[int8]{}, 64},
		{"128bit uint16", FixedTag128[uint16]{}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.MaxLanes(); got != tt.want {
				t.Errorf("%s.MaxLanes() = %d, want %d", tt.tag.Name(), got, tt.want)
			}
		})
	}
}

func TestTagsWidestFirst(t *testing.T) {
	tags := Tags[float32]()
	for i := 1; i < len(tags); i++ {
		if tags[i].Width() >= tags[i-1].Width() {
			t.Errorf("Tags()[%d] width %d not narrower than %d", i, tags[i].Width(), tags[i-1].Width())
		}
	}
}

func TestMaxLanesMatchesLevel(t *testing.T) {
	level := CurrentLevel()
	if CurrentWidth() != level.Width() {
		t.Errorf("CurrentWidth() = %d, want %d for %s", CurrentWidth(), level.Width(), level)
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}

	want32 := max(level.Width()/4, 1)
	if got := MaxLanes[float32](); got != want32 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want32)
	}
	want64 := max(level.Width()/8, 1)
	if got := MaxLanes[float64](); got != want64 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, want64)
	}
	if got := (ScalableTag[float32]{}).MaxLanes(); got != want32 {
		t.Errorf("ScalableTag.MaxLanes() = %d, want %d", got, want32)
	}
}

func TestDetectedLevelForArch(t *testing.T) {
	level := CurrentLevel()
	if NoSimdEnv() {
		if level != DispatchScalar {
			t.Errorf("HWY_NO_SIMD set but level is %s", level)
		}
		return
	}

	switch runtime.GOARCH {
	case "amd64":
		switch level {
		case DispatchSSE2, DispatchAVX, DispatchAVX2, DispatchAVX512:
		default:
			t.Errorf("amd64 resolved to %s", level)
		}
	case "arm64":
		if level != DispatchNEON && level != DispatchScalar {
			t.Errorf("arm64 resolved to %s", level)
		}
	default:
		if level != DispatchScalar {
			t.Errorf("%s resolved to %s, want scalar", runtime.GOARCH, level)
		}
	}
}

// initLevelChildEnv marks the copy of the test binary started by
// TestNoSimdEnvForcesScalarAtInit.
const initLevelChildEnv = "HWY_TEST_INIT_LEVEL_CHILD"

// The level is resolved once in init, so the override is checked in a fresh
// process started with HWY_NO_SIMD=1.
func TestNoSimdEnvForcesScalarAtInit(t *testing.T) {
	if os.Getenv(initLevelChildEnv) == "1" {
		if got := CurrentLevel(); got != DispatchScalar {
			t.Fatalf("CurrentLevel() = %s, want scalar", got)
		}
		if got := MaxLanes[float32](); got != 1 {
			t.Fatalf("MaxLanes[float32]() = %d, want 1", got)
		}
		if got := MaxLanes[uint8](); got != 1 {
			t.Fatalf("MaxLanes[uint8]() = %d, want 1", got)
		}
		t.Log("init resolved the scalar level")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestNoSimdEnvForcesScalarAtInit$", "-test.v")
	cmd.Env = append(os.Environ(), initLevelChildEnv+"=1", "HWY_NO_SIMD=1")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("child test failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "init resolved the scalar level") {
		t.Fatalf("child test did not run the scalar checks:\n%s", out)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestDispatchLevelString(t *testing.T) {
	if got := DispatchLevel(99).String(); got != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q, want unknown", got)
	}
	if got := DispatchAVX512.String(); got != "avx512" {
		t.Errorf("DispatchAVX512.String() = %q", got)
	}
}
