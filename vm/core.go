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
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

func opNop(*Instance, Opcode) error { return nil }

func opSetDirection(i *Instance, op Opcode) error {
	switch op {
	case OpLeft:
		i.dir = Left
	case OpRight:
		i.dir = Right
	case OpUp:
		i.dir = Up
	case OpDown:
		i.dir = Down
	}
	return nil
}

func opRandomDirection(i *Instance, _ Opcode) error {
	i.dir = directions[i.rnd.Intn(len(directions))]
	return nil
}

func opMirror(i *Instance, op Opcode) error {
	switch op {
	case OpMirrorSlash:
		i.dir = i.dir.slash()
	case OpMirrorBackslash:
		i.dir = i.dir.backslash()
	case OpMirrorVertical:
		i.dir = i.dir.vertical()
	case OpMirrorHorizontal:
		i.dir = i.dir.horizontal()
	case OpMirrorHash:
		i.dir = i.dir.hash()
	}
	return nil
}

func opTrampoline(i *Instance, _ Opcode) error {
	i.advance()
	return nil
}

func opCondTrampoline(i *Instance, _ Opcode) error {
	v, err := i.top().pop()
	if err != nil {
		return err
	}
	if !truthy(v) {
		i.advance()
	}
	return nil
}

func opJump(i *Instance, _ Opcode) error {
	return i.jump()
}

func opPushDigit(i *Instance, op Opcode) error {
	if op <= '9' {
		i.Push(Value(op - '0'))
	} else {
		i.Push(Value(op - 'a' + 10))
	}
	return nil
}

// opArith pops a, then b, and pushes b OP a.
func opArith(i *Instance, op Opcode) error {
	s := i.top()
	a, b, err := s.pop2()
	if err != nil {
		return err
	}
	var r Value
	switch op {
	case OpAdd:
		r = b + a
	case OpSub:
		r = b - a
	case OpMul:
		r = b * a
	case OpDiv:
		if a == 0 {
			return ErrDivisionByZero
		}
		r = b / a
	case OpMod:
		if a == 0 {
			return ErrDivisionByZero
		}
		r = mod(b, a)
	case OpEqual:
		r = bool2Value(b == a)
	case OpGreater:
		r = bool2Value(b > a)
	case OpLess:
		r = bool2Value(b < a)
	}
	s.push(r)
	return nil
}

func opQuote(i *Instance, op Opcode) error {
	if op == OpQuote {
		i.quote = !i.quote
	} else {
		i.dquote = !i.dquote
	}
	return nil
}

func opDup(i *Instance, _ Opcode) error { return i.top().dup() }

func opDrop(i *Instance, _ Opcode) error {
	_, err := i.top().pop()
	return err
}

func opSwap(i *Instance, _ Opcode) error  { return i.top().swap() }
func opSwap3(i *Instance, _ Opcode) error { return i.top().swap3() }

func opShift(i *Instance, op Opcode) error {
	if op == OpShiftRight {
		i.top().shiftRight()
	} else {
		i.top().shiftLeft()
	}
	return nil
}

func opReverse(i *Instance, _ Opcode) error {
	i.top().reverse()
	return nil
}

func opLength(i *Instance, _ Opcode) error {
	s := i.top()
	s.push(Value(len(s.data)))
	return nil
}

func opNewStack(i *Instance, _ Opcode) error    { return i.newStack() }
func opRemoveStack(i *Instance, _ Opcode) error { return i.removeStack() }

func opPrintChar(i *Instance, _ Opcode) error {
	v, err := i.top().pop()
	if err != nil {
		return err
	}
	if !v.IsInt() || v < 0 || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return ErrType
	}
	if i.output == nil {
		return nil
	}
	_, err = i.output.WriteRune(rune(v))
	return errors.Wrap(err, "write failed")
}

func opPrintNum(i *Instance, _ Opcode) error {
	v, err := i.top().pop()
	if err != nil {
		return err
	}
	if i.output == nil {
		return nil
	}
	_, err = io.WriteString(i.output, v.String())
	return errors.Wrap(err, "write failed")
}

// opRead skips new lines and pushes the next input character, or -1 at end of
// input.
func opRead(i *Instance, _ Opcode) error {
	if i.input == nil {
		i.Push(-1)
		return nil
	}
	for {
		r, size, err := i.input.ReadRune()
		if size > 0 && r == '\n' {
			continue
		}
		if size > 0 {
			i.Push(Value(r))
			return nil
		}
		if err == io.EOF || err == nil {
			i.Push(-1)
			return nil
		}
		return errors.Wrap(err, "read failed")
	}
}

func opRegister(i *Instance, _ Opcode) error { return i.top().toggleRegister() }

// opGet pops a row, then a column, and pushes the value of the cell there.
func opGet(i *Instance, _ Opcode) error {
	s := i.top()
	row, col, err := s.pop2()
	if err != nil {
		return err
	}
	s.push(i.grid.Get(row.Int(), col.Int()))
	return nil
}

// opPut pops a row, a column, then a value and stores it at (row, column).
func opPut(i *Instance, _ Opcode) error {
	s := i.top()
	if err := s.need(3); err != nil {
		return err
	}
	row, col, _ := s.pop2()
	v, _ := s.pop()
	i.grid.Set(row.Int(), col.Int(), v)
	return nil
}

func opEnd(i *Instance, _ Opcode) error {
	i.state = Halted
	return nil
}
