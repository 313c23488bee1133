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
	"errors"
	"fmt"
	"go/token"
	"os"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// maxDimension bounds the array lengths the generator accepts. Larger
// arrays are legal Go but are no longer a reasonable value type.
const maxDimension = 1 << 16

// elementTypes are the concrete types concrete aliases may be emitted for.
var elementTypes = []string{
	"float32", "float64",
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
}

// Config describes the generated file.
type Config struct {
	// Package is the package clause of the generated file.
	Package string        `yaml:"package"`
	Dims    DimsConfig    `yaml:"dims"`
	Columns ColumnsConfig `yaml:"columns"`
	Aliases AliasConfig   `yaml:"aliases"`
}

// DimsConfig selects the vector lengths: every length in [0, Max] plus the
// Extra lengths.
type DimsConfig struct {
	Max   int   `yaml:"max"`
	Extra []int `yaml:"extra"`
}

// ColumnsConfig selects the matrix column counts, [0, Max].
type ColumnsConfig struct {
	Max int `yaml:"max"`
}

// AliasConfig lists the dimensions that get VectorN, PointN and MatrixRxC
// aliases, and the element types that get concrete aliases such as
// Vector4Float32.
type AliasConfig struct {
	Dims  []int    `yaml:"dims"`
	Types []string `yaml:"types"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for values the generator cannot emit.
func (c *Config) Validate() error {
	var errs []error
	if !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("package %q is not a valid identifier", c.Package))
	}
	if c.Dims.Max < 0 || c.Dims.Max > maxDimension {
		errs = append(errs, fmt.Errorf("dims.max %d out of range [0, %d]", c.Dims.Max, maxDimension))
	}
	for _, d := range c.Dims.Extra {
		if d < 0 || d > maxDimension {
			errs = append(errs, fmt.Errorf("dims.extra %d out of range [0, %d]", d, maxDimension))
		}
	}
	if c.Columns.Max < 1 {
		errs = append(errs, fmt.Errorf("columns.max must be at least 1, got %d", c.Columns.Max))
	}

	dims := c.DimList()
	for _, d := range c.Aliases.Dims {
		if !slices.Contains(dims, d) {
			errs = append(errs, fmt.Errorf("alias dimension %d is not in dims", d))
		}
		if d > c.Columns.Max {
			errs = append(errs, fmt.Errorf("alias dimension %d exceeds columns.max %d", d, c.Columns.Max))
		}
	}
	for _, typ := range c.Aliases.Types {
		if !lo.Contains(elementTypes, typ) {
			errs = append(errs, fmt.Errorf("alias type %q is not one of %v", typ, elementTypes))
		}
	}
	return errors.Join(errs...)
}

// DimList returns the sorted, deduplicated vector lengths.
func (c *Config) DimList() []int {
	dims := lo.Uniq(append(lo.Range(c.Dims.Max+1), c.Dims.Extra...))
	slices.Sort(dims)
	return dims
}

// AliasDims returns the sorted, deduplicated alias dimensions.
func (c *Config) AliasDims() []int {
	dims := lo.Uniq(c.Aliases.Dims)
	slices.Sort(dims)
	return dims
}
