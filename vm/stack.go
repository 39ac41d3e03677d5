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

import "math"

// stack is a stack-register pair.
type stack struct {
	data   []Value
	reg    Value
	hasReg bool
}

func (s *stack) need(n int) error {
	if len(s.data) < n {
		return ErrUnderflow
	}
	return nil
}

func (s *stack) push(v Value) {
	s.data = append(s.data, v)
}

func (s *stack) pop() (Value, error) {
	l := len(s.data) - 1
	if l < 0 {
		return 0, ErrUnderflow
	}
	v := s.data[l]
	s.data = s.data[:l]
	return v, nil
}

// pop2 pops a then b.
func (s *stack) pop2() (a, b Value, err error) {
	if err = s.need(2); err != nil {
		return 0, 0, err
	}
	l := len(s.data)
	a, b = s.data[l-1], s.data[l-2]
	s.data = s.data[:l-2]
	return a, b, nil
}

func (s *stack) dup() error {
	if err := s.need(1); err != nil {
		return err
	}
	s.push(s.data[len(s.data)-1])
	return nil
}

func (s *stack) swap() error {
	if err := s.need(2); err != nil {
		return err
	}
	d := s.data[len(s.data)-2:]
	d[0], d[1] = d[1], d[0]
	return nil
}

// swap3 moves the top value below the next two: x y z -> z x y.
func (s *stack) swap3() error {
	if err := s.need(3); err != nil {
		return err
	}
	d := s.data[len(s.data)-3:]
	d[0], d[1], d[2] = d[2], d[0], d[1]
	return nil
}

// shiftRight moves the value at index i to (i+1) mod len: the top value wraps
// around to the bottom.
func (s *stack) shiftRight() {
	l := len(s.data)
	if l < 2 {
		return
	}
	top := s.data[l-1]
	copy(s.data[1:], s.data[:l-1])
	s.data[0] = top
}

// shiftLeft is the inverse of shiftRight.
func (s *stack) shiftLeft() {
	l := len(s.data)
	if l < 2 {
		return
	}
	bottom := s.data[0]
	copy(s.data, s.data[1:])
	s.data[l-1] = bottom
}

func (s *stack) reverse() {
	d := s.data
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}

// toggleRegister moves the top of the stack to the register if it is empty,
// or pushes the register value back and empties it.
func (s *stack) toggleRegister() error {
	if s.hasReg {
		s.push(s.reg)
		s.reg, s.hasReg = 0, false
		return nil
	}
	v, err := s.pop()
	if err != nil {
		return err
	}
	s.reg, s.hasReg = v, true
	return nil
}

// top returns the active stack.
func (i *Instance) top() *stack {
	return i.stacks[len(i.stacks)-1]
}

// newStack pops a count n, then moves n values, in the order they are popped,
// to a new stack which becomes the active one. A negative count creates an
// empty stack. A count that is not finite is an underflow.
func (i *Instance) newStack() error {
	s := i.top()
	v, err := s.pop()
	if err != nil {
		return err
	}
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) || v > Value(len(s.data)) {
		return ErrUnderflow
	}
	n := v.Int()
	if n < 0 {
		n = 0
	}
	ns := &stack{data: make([]Value, 0, n)}
	for k := len(s.data) - 1; k >= len(s.data)-n; k-- {
		ns.data = append(ns.data, s.data[k])
	}
	s.data = s.data[:len(s.data)-n]
	i.stacks = append(i.stacks, ns)
	return nil
}

// removeStack pops every value of the active stack onto the stack beneath it,
// then discards the active stack and its register.
func (i *Instance) removeStack() error {
	l := len(i.stacks)
	if l < 2 {
		return ErrStackMachineEmpty
	}
	dying, below := i.stacks[l-1], i.stacks[l-2]
	for k := len(dying.data) - 1; k >= 0; k-- {
		below.push(dying.data[k])
	}
	i.stacks[l-1] = nil
	i.stacks = i.stacks[:l-1]
	return nil
}

// Push pushes v on top of the active stack.
func (i *Instance) Push(v Value) {
	i.top().push(v)
}

// Pop pops the value on top of the active stack and returns it.
func (i *Instance) Pop() (Value, error) {
	return i.top().pop()
}

// Data returns the active stack, bottom first. Note that value changes will be
// reflected in the instance's stack, but re-slicing will not affect it.
func (i *Instance) Data() []Value {
	return i.top().data
}

// Register returns the value of the active register and whether it is set.
func (i *Instance) Register() (Value, bool) {
	s := i.top()
	return s.reg, s.hasReg
}

// StackCount returns the number of stacks.
func (i *Instance) StackCount() int {
	return len(i.stacks)
}
