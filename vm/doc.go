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

// Package vm implements a virtual machine for the ><> (fish) programming
// language.
//
// A ><> program is a rectangular grid of cells (the code box). An instruction
// pointer travels across the grid in one of the four cardinal directions,
// wrapping around at the edges, and executes the symbol found in each cell.
// Programs manipulate a stack of stacks, each with an optional register, and
// may read and modify the grid at run time.
//
// Values are stored as float64 (see Value). Integral values print without a
// fractional part, and integer arguments (coordinates, counts, symbols) are
// truncated toward zero.
//
// The VM reports run-time errors as a Fault, wrapped with the position of the
// instruction pointer. Use errors.Cause from github.com/pkg/errors to get the
// underlying Fault:
//
//	err := i.Run(ctx)
//	if f, ok := errors.Cause(err).(vm.Fault); ok {
//		// program fault
//	}
//
// Out of grid cells are addressable by the get and put instructions. Reading a
// cell that was never written returns 0.
package vm
