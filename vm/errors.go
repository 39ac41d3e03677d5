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

import "github.com/pkg/errors"

// Fault describes the nature of a run-time error. A Fault is fatal to the
// running program.
type Fault int

// List of VM faults.
const (
	ErrUnderflow Fault = iota + 1
	ErrDivisionByZero
	ErrInvalidOpcode
	ErrStackMachineEmpty
	ErrType
)

var strFault = [...]string{
	ErrUnderflow:         "stack underflow",
	ErrDivisionByZero:    "division by zero",
	ErrInvalidOpcode:     "invalid instruction",
	ErrStackMachineEmpty: "cannot remove the last stack",
	ErrType:              "value is not a character",
}

func (f Fault) Error() string {
	if f <= 0 || int(f) >= len(strFault) {
		return "unknown fault"
	}
	return strFault[f]
}

// ErrStepLimit is returned by Run when the instruction limit set with the
// MaxSteps option is reached.
var ErrStepLimit = errors.New("instruction limit reached")

// IsFault returns true if the cause of err is a Fault.
func IsFault(err error) bool {
	_, ok := errors.Cause(err).(Fault)
	return ok
}
