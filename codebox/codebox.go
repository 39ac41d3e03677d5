// This file is part of fish - https://github.com/db47h/fish
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package codebox

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/db47h/fish/internal/ewriter"
	"github.com/db47h/fish/vm"
	"github.com/pkg/errors"
)

// EncodeString returns the code points of s as values, in order.
func EncodeString(s string) []vm.Value {
	v := make([]vm.Value, 0, len(s))
	for _, r := range s {
		v = append(v, vm.Value(r))
	}
	return v
}

// ParseNumbers parses a list of numbers separated by white space or commas.
func ParseNumbers(s string) ([]vm.Value, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	v := make([]vm.Value, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		v = append(v, vm.Value(n))
	}
	return v, nil
}

// printable returns the character to use when displaying v.
func printable(v vm.Value) rune {
	if v == 0 {
		return ' '
	}
	if !v.IsInt() || v < 0 || v > utf8.MaxRune {
		return utf8.RuneError
	}
	if r := rune(v); unicode.IsPrint(r) {
		return r
	}
	return utf8.RuneError
}

// Disassemble writes a disassembly of the cell at (row, col) to the specified
// io.Writer and returns any write error.
func Disassemble(g *vm.Grid, row, col int, w io.Writer) error {
	ew := ewriter.New(w)
	v := g.Get(row, col)
	op := vm.Opcode(0)
	if v.IsInt() && v >= 0 && v <= utf8.MaxRune {
		op = vm.Opcode(v)
	}
	fmt.Fprintf(ew, "% 4d % 4d\t%c\t", row, col, printable(v))
	if m := vm.Mnemonic(op); m != "" && (op != vm.OpBlank || v == 0) {
		io.WriteString(ew, m)
	} else {
		io.WriteString(ew, "??? ")
		io.WriteString(ew, v.String())
	}
	return ew.Err
}

// DisassembleAll writes a disassembly of all non blank cells of the grid,
// including cells written outside of the grid boundaries, to the specified
// io.Writer. It will return any write error.
func DisassembleAll(g *vm.Grid, w io.Writer) error {
	ew := ewriter.New(w)
	emit := func(row, col int) {
		Disassemble(g, row, col, ew)
		ew.Write([]byte{'\n'})
	}
	for row := 0; row < g.Height(); row++ {
		for col, v := range g.Row(row) {
			if v != 0 {
				emit(row, col)
			}
		}
	}
	for _, p := range g.OutOfBounds() {
		emit(p.Row, p.Col)
	}
	return ew.Err
}

// Format writes the grid as source text. Blank cells are written as spaces,
// trailing blanks are trimmed and values that cannot be displayed are written
// as U+FFFD.
func Format(g *vm.Grid, w io.Writer) error {
	ew := ewriter.New(w)
	var b strings.Builder
	for row := 0; row < g.Height(); row++ {
		b.Reset()
		for _, v := range g.Row(row) {
			b.WriteRune(printable(v))
		}
		io.WriteString(ew, strings.TrimRight(b.String(), " "))
		ew.Write([]byte{'\n'})
	}
	return ew.Err
}
