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

package main

import (
	"io"

	"github.com/db47h/fish/codebox"
	"github.com/db47h/fish/internal/ewriter"
	"github.com/db47h/fish/vm"
)

func dumpSlice(w io.Writer, a []vm.Value) {
	for n, v := range a {
		if n > 0 {
			io.WriteString(w, " ")
		}
		io.WriteString(w, v.String())
	}
}

// dumpVM dumps the active stack, its register and the code box to the
// specified io.Writer. Sections are separated by 0x1C and 0x1D, the register
// section is empty if the register is not set.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ewriter.New(w)
	ew.Write([]byte{'\x1C'})
	dumpSlice(ew, i.Data())
	ew.Write([]byte{'\x1D'})
	if r, ok := i.Register(); ok {
		io.WriteString(ew, r.String())
	}
	ew.Write([]byte{'\x1D'})
	if ew.Err != nil {
		return ew.Err
	}
	return codebox.Format(i.Grid(), ew)
}
