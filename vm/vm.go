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
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// State is the execution state of an Instance.
type State int

// Execution states.
const (
	Running State = iota
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return "unknown"
}

// Instance represents a ><> VM instance.
type Instance struct {
	grid     *Grid
	ip       Point
	dir      Direction
	quote    bool
	dquote   bool
	state    State
	stacks   []*stack
	insCount int64
	maxSteps int64
	rnd      *rand.Rand
	input    io.RuneReader
	output   runeWriter
	log      commonlog.Logger
}

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output writer. If w implements a Flush method, it will
// be called by Flush.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// Stack pushes the given values on the initial stack, in order.
func Stack(values ...Value) Option {
	return func(i *Instance) error {
		for _, v := range values {
			i.Push(v)
		}
		return nil
	}
}

// Seed sets the seed of the random source used by the random direction
// instruction. The default seed is time based.
func Seed(seed int64) Option {
	return func(i *Instance) error {
		i.rnd = rand.New(rand.NewSource(seed))
		return nil
	}
}

// MaxSteps sets the maximum number of instructions executed by Run. Zero,
// the default, means no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid instruction limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Logger sets the logger used for instruction traces. Traces are logged at
// debug level.
func Logger(log commonlog.Logger) Option {
	return func(i *Instance) error {
		if log == nil {
			return errors.New("nil logger")
		}
		i.log = log
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance that will run the program in grid. The grid
// is modified in place by the running program.
//
// The instruction pointer starts at the top left cell, moving right, with a
// single empty stack.
func New(grid *Grid, opts ...Option) (*Instance, error) {
	if grid == nil || grid.width == 0 || grid.height == 0 {
		return nil, errors.New("empty grid")
	}
	i := &Instance{
		grid:   grid,
		dir:    Right,
		stacks: []*stack{new(stack)},
		log:    commonlog.GetLogger("fish.vm"),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.rnd == nil {
		i.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return i, nil
}

// Grid returns the instance's grid.
func (i *Instance) Grid() *Grid {
	return i.grid
}

// State returns the execution state.
func (i *Instance) State() State {
	return i.state
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// StringMode returns the state of the single and double quote string modes.
func (i *Instance) StringMode() (quote, dquote bool) {
	return i.quote, i.dquote
}
