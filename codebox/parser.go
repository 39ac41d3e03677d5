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
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/db47h/fish/vm"
	"github.com/pkg/errors"
)

// Parse reads ><> source code from r and returns the resulting grid.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Parse(name string, r io.Reader) (*vm.Grid, error) {
	var (
		lines []string
		width int
		br    = bufio.NewReader(r)
	)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
			if w := utf8.RuneCountInString(line); w > width {
				width = w
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: read failed", name)
		}
	}
	if len(lines) == 0 || width == 0 {
		return nil, errors.Errorf("%s: empty program", name)
	}

	g := vm.NewGrid(len(lines), width)
	for row, line := range lines {
		col := 0
		for _, c := range line {
			if c != ' ' {
				g.Set(row, col, vm.Value(c))
			}
			col++
		}
	}
	return g, nil
}

// Load loads ><> source code from file fileName.
func Load(fileName string) (*vm.Grid, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open the script %q", fileName)
	}
	defer f.Close()
	return Parse(fileName, f)
}
