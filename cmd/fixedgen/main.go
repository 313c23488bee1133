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

// Command fixedgen generates the per-dimension constraints and aliases of
// package fixed.
//
// Go generics cannot be parameterized by a constant, so the set of vector
// lengths a fixed.Vector accepts is the type set of the generated Array
// constraint, one ~[D]T term per supported dimension D.
//
// Usage:
//
//	fixedgen -config fixedgen.yaml -output arrays_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/fixedgen -config fixedgen.yaml -output arrays_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	configFile = flag.String("config", "fixedgen.yaml", "YAML file listing dimensions and aliases")
	outputFile = flag.String("output", "arrays_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "", "Output package name (default: the package in the config)")
)

func main() {
	flag.Parse()

	if err := run(*configFile, *outputFile, *packageOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, outputPath, pkg string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if pkg != "" {
		cfg.Package = pkg
	}

	src, err := Generate(cfg, outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	dims := cfg.DimList()
	fmt.Printf("Successfully generated %s: %d dimensions (max %d), %d column counts\n",
		outputPath, len(dims), dims[len(dims)-1], cfg.Columns.Max+1)
	return nil
}
