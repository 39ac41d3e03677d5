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

import (
	"math"
	"strconv"
)

// Value is the type of stack entries and grid cells.
type Value float64

// String returns the decimal representation of v. Integral values are
// formatted without a fractional part.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// Int returns v truncated toward zero.
func (v Value) Int() int {
	return int(v)
}

// IsInt returns true if v has no fractional part.
func (v Value) IsInt() bool {
	f := float64(v)
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

func truthy(v Value) bool {
	return v != 0
}

func bool2Value(b bool) Value {
	if b {
		return 1
	}
	return 0
}

// floored modulo: the result has the sign of the divisor.
func mod(b, a Value) Value {
	r := math.Mod(float64(b), float64(a))
	if r != 0 && (r < 0) != (a < 0) {
		r += float64(a)
	}
	return Value(r)
}
