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

// Package codebox loads ><> source code into a vm.Grid and provides listing
// utilities.
//
// Source format:
//
// A program is plain UTF-8 text. Each line of text is a row of the grid, each
// character a cell. Lines are terminated by "\n" or "\r\n". Short lines are
// padded with blank cells to the length of the longest line.
//
// The space character is stored as a blank cell (value 0). Any other
// character is stored as its Unicode code point.
//
// Initial stack values:
//
// EncodeString and ParseNumbers convert command line arguments to values that
// can be passed to vm.Stack.
package codebox
