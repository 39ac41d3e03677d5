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

package vm

import "sort"

// Point is a (row, column) location in a Grid.
type Point struct {
	Row, Col int
}

// Grid is the code box of a ><> program. Cells inside [0, Height) x [0, Width)
// are stored in a dense array. Writes anywhere else are kept in a sparse map
// and can be read back at the same coordinates.
type Grid struct {
	width   int
	height  int
	cells   []Value
	outside map[Point]Value
}

// NewGrid returns a blank grid of the given size.
func NewGrid(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]Value, width*height),
		outside: make(map[Point]Value),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the value of the cell at (row, col). Cells outside the grid that
// have never been written read as 0.
func (g *Grid) Get(row, col int) Value {
	if g.inBounds(row, col) {
		return g.cells[row*g.width+col]
	}
	return g.outside[Point{row, col}]
}

// Set sets the value of the cell at (row, col).
func (g *Grid) Set(row, col int, v Value) {
	if g.inBounds(row, col) {
		g.cells[row*g.width+col] = v
		return
	}
	g.outside[Point{row, col}] = v
}

// Row returns a copy of the in-bounds cells of the given row.
func (g *Grid) Row(row int) []Value {
	if row < 0 || row >= g.height {
		return nil
	}
	r := make([]Value, g.width)
	copy(r, g.cells[row*g.width:(row+1)*g.width])
	return r
}

// OutOfBounds returns the coordinates of all cells written outside the grid,
// sorted by row then column.
func (g *Grid) OutOfBounds() []Point {
	pts := make([]Point, 0, len(g.outside))
	for p := range g.outside {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Row != pts[j].Row {
			return pts[i].Row < pts[j].Row
		}
		return pts[i].Col < pts[j].Col
	})
	return pts
}
