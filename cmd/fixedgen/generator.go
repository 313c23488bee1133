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
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// termsPerLine keeps the union constraints readable.
const termsPerLine = 8

// Generate renders the generated file for cfg. filename is only used to
// report formatting errors.
func Generate(cfg *Config, filename string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by fixedgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)

	dims := cfg.DimList()
	fmt.Fprintf(&buf, "// Array is the set of array types a Vector can hold: [D]T for every\n")
	fmt.Fprintf(&buf, "// supported length D, or a named type with such an underlying type.\n")
	fmt.Fprintf(&buf, "type Array[T Element] interface {\n")
	emitUnion(&buf, lo.Map(dims, func(d int, _ int) string {
		return fmt.Sprintf("~[%d]T", d)
	}))
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// Columns is the set of column arrays a Matrix can hold: [C]A for every\n")
	fmt.Fprintf(&buf, "// supported column count C.\n")
	fmt.Fprintf(&buf, "type Columns[T Element, A Array[T]] interface {\n")
	emitUnion(&buf, lo.Map(lo.Range(cfg.Columns.Max+1), func(c int, _ int) string {
		return fmt.Sprintf("~[%d]A", c)
	}))
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// MaxDim is the largest supported vector length.\n")
	fmt.Fprintf(&buf, "const MaxDim = %d\n\n", dims[len(dims)-1])
	fmt.Fprintf(&buf, "// MaxColumns is the largest supported matrix column count.\n")
	fmt.Fprintf(&buf, "const MaxColumns = %d\n\n", cfg.Columns.Max)

	emitAliases(&buf, cfg)

	formatted, err := imports.Process(filepath.Base(filename), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

func emitUnion(buf *bytes.Buffer, terms []string) {
	for i, chunk := range lo.Chunk(terms, termsPerLine) {
		// gofmt indents continuation lines of a union one level deeper.
		indent := "\t\t"
		if i == 0 {
			indent = "\t"
		}
		sep := " |"
		if (i+1)*termsPerLine >= len(terms) {
			sep = ""
		}
		fmt.Fprintf(buf, "%s%s%s\n", indent, strings.Join(chunk, " | "), sep)
	}
}

func emitAliases(buf *bytes.Buffer, cfg *Config) {
	aliasDims := cfg.AliasDims()
	if len(aliasDims) == 0 {
		return
	}

	for _, d := range aliasDims {
		fmt.Fprintf(buf, "// Vector%d is a vector of %d elements.\n", d, d)
		fmt.Fprintf(buf, "type Vector%d[T Element] = Vector[T, [%d]T]\n\n", d, d)
		fmt.Fprintf(buf, "// Point%d is a point with %d coordinates.\n", d, d)
		fmt.Fprintf(buf, "type Point%d[T Element] = Point[T, [%d]T]\n\n", d, d)
	}
	for _, r := range aliasDims {
		for _, c := range aliasDims {
			fmt.Fprintf(buf, "// %s is a matrix of %d rows and %d columns.\n", matrixName(r, c), r, c)
			fmt.Fprintf(buf, "type %s[T Element] = Matrix[T, [%d]T, [%d][%d]T]\n\n", matrixName(r, c), r, c, r)
		}
	}

	title := cases.Title(language.English)
	for _, typ := range lo.Uniq(cfg.Aliases.Types) {
		suffix := title.String(typ)
		for _, d := range aliasDims {
			fmt.Fprintf(buf, "// Vector%d%s is a Vector%d of %s.\n", d, suffix, d, typ)
			fmt.Fprintf(buf, "type Vector%d%s = Vector[%s, [%d]%s]\n", d, suffix, typ, d, typ)
			fmt.Fprintf(buf, "// Point%d%s is a Point%d of %s.\n", d, suffix, d, typ)
			fmt.Fprintf(buf, "type Point%d%s = Point[%s, [%d]%s]\n", d, suffix, typ, d, typ)
		}
		for _, d := range aliasDims {
			name := matrixName(d, d)
			fmt.Fprintf(buf, "// %s%s is a %s of %s.\n", name, suffix, name, typ)
			fmt.Fprintf(buf, "type %s%s = Matrix[%s, [%d]%s, [%d][%d]%s]\n", name, suffix, typ, d, typ, d, d, typ)
		}
		fmt.Fprintf(buf, "\n")
	}
}

func matrixName(rows, cols int) string {
	return fmt.Sprintf("Matrix%dx%d", rows, cols)
}
