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
	"context"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// symbol returns the symbol in the cell under the instruction pointer,
// truncated to an int.
func (i *Instance) symbol() int {
	return i.grid.Get(i.ip.Row, i.ip.Col).Int()
}

// step executes a single symbol, either as an instruction or, in string mode,
// as a literal.
func (i *Instance) step(sym int) error {
	if (i.quote && sym != int(OpQuote)) || (i.dquote && sym != int(OpDoubleQuote)) {
		if sym == int(OpBlank) {
			sym = int(OpNop)
		}
		i.Push(Value(sym))
		return nil
	}
	if sym < 0 || sym >= len(opTable) {
		return ErrInvalidOpcode
	}
	op := Opcode(sym)
	fn := opTable[op]
	if fn == nil {
		return ErrInvalidOpcode
	}
	return fn(i, op)
}

func (i *Instance) trace(sym int) {
	if op := Opcode(sym); op.Valid() {
		i.log.Debugf("instr [%c] %s n=%d ip=%d,%d", sym, Mnemonic(op), i.insCount+1, i.ip.Row, i.ip.Col)
	} else {
		i.log.Debugf("instr [%d] n=%d ip=%d,%d", sym, i.insCount+1, i.ip.Row, i.ip.Col)
	}
}

// Run starts execution of the VM.
//
// Run returns nil when the program executes the end instruction. If an error
// occurs, the VM state is set to Faulted and the instruction pointer is left on
// the offending instruction. The returned error wraps a Fault for program
// errors, or an I/O error.
//
// Cancelling ctx stops the VM cleanly and Run returns ctx.Err(). The VM state
// remains Running and Run may be called again to resume execution. The input
// instruction may block on its reader, in which case cancellation takes effect
// after it returns.
func (i *Instance) Run(ctx context.Context) (err error) {
	if i.state != Running {
		return errors.Errorf("cannot run a %v VM", i.state)
	}
	done := ctx.Done()
	trace := i.log.AllowLevel(commonlog.Debug)
	for i.state == Running {
		if done != nil && i.insCount&0xff == 0 {
			select {
			case <-done:
				return ctx.Err()
			default:
			}
		}
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return ErrStepLimit
		}
		sym := i.symbol()
		if trace {
			i.trace(sym)
		}
		if err = i.step(sym); err != nil {
			i.state = Faulted
			return errors.Wrapf(err, "symbol %d @%d,%d, step %d, stack %d", sym, i.ip.Row, i.ip.Col, i.insCount+1, len(i.stacks))
		}
		if trace {
			i.log.Debugf("stack %v", i.Data())
		}
		i.insCount++
		if i.state == Running {
			i.advance()
		}
	}
	return nil
}
