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

// Direction is a unit vector giving the motion of the instruction pointer.
type Direction struct {
	DY, DX int
}

// Cardinal directions.
var (
	Right = Direction{0, 1}
	Left  = Direction{0, -1}
	Up    = Direction{-1, 0}
	Down  = Direction{1, 0}
)

var directions = [...]Direction{Down, Up, Right, Left}

// mirror transforms.

func (d Direction) slash() Direction     { return Direction{-d.DX, -d.DY} }
func (d Direction) backslash() Direction { return Direction{d.DX, d.DY} }
func (d Direction) vertical() Direction  { return Direction{d.DY, -d.DX} }
func (d Direction) horizontal() Direction {
	return Direction{-d.DY, d.DX}
}
func (d Direction) hash() Direction { return Direction{-d.DY, -d.DX} }

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// advance moves the instruction pointer one step in the current direction,
// wrapping around the grid edges.
func (i *Instance) advance() {
	i.ip.Row = wrap(i.ip.Row+i.dir.DY, i.grid.height)
	i.ip.Col = wrap(i.ip.Col+i.dir.DX, i.grid.width)
}

// jump pops a column, then a row, and moves the instruction pointer there.
// The target is not validated; the next advance wraps it into the grid.
func (i *Instance) jump() error {
	col, row, err := i.top().pop2()
	if err != nil {
		return err
	}
	i.ip = Point{row.Int(), col.Int()}
	return nil
}

// IP returns the position of the instruction pointer.
func (i *Instance) IP() Point {
	return i.ip
}

// Direction returns the current direction of the instruction pointer.
func (i *Instance) Direction() Direction {
	return i.dir
}
