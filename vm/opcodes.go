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

// Opcode is an instruction symbol.
type Opcode rune

// ><> opcodes.
const (
	OpBlank            Opcode = 0
	OpNop              Opcode = ' '
	OpLeft             Opcode = '<'
	OpRight            Opcode = '>'
	OpUp               Opcode = '^'
	OpDown             Opcode = 'v'
	OpRandom           Opcode = 'x'
	OpMirrorSlash      Opcode = '/'
	OpMirrorBackslash  Opcode = '\\'
	OpMirrorVertical   Opcode = '|'
	OpMirrorHorizontal Opcode = '_'
	OpMirrorHash       Opcode = '#'
	OpTrampoline       Opcode = '!'
	OpCondTrampoline   Opcode = '?'
	OpJump             Opcode = '.'
	OpAdd              Opcode = '+'
	OpSub              Opcode = '-'
	OpMul              Opcode = '*'
	OpDiv              Opcode = ','
	OpMod              Opcode = '%'
	OpEqual            Opcode = '='
	OpGreater          Opcode = ')'
	OpLess             Opcode = '('
	OpQuote            Opcode = '\''
	OpDoubleQuote      Opcode = '"'
	OpDup              Opcode = ':'
	OpDrop             Opcode = '~'
	OpSwap             Opcode = '$'
	OpSwap3            Opcode = '@'
	OpShiftRight       Opcode = '}'
	OpShiftLeft        Opcode = '{'
	OpReverse          Opcode = 'r'
	OpLength           Opcode = 'l'
	OpNewStack         Opcode = '['
	OpRemoveStack      Opcode = ']'
	OpPrintChar        Opcode = 'o'
	OpPrintNum         Opcode = 'n'
	OpRead             Opcode = 'i'
	OpRegister         Opcode = '&'
	OpGet              Opcode = 'g'
	OpPut              Opcode = 'p'
	OpEnd              Opcode = ';'
)

type opFunc func(i *Instance, op Opcode) error

var opTable = [128]opFunc{
	OpBlank:            opNop,
	OpNop:              opNop,
	OpLeft:             opSetDirection,
	OpRight:            opSetDirection,
	OpUp:               opSetDirection,
	OpDown:             opSetDirection,
	OpRandom:           opRandomDirection,
	OpMirrorSlash:      opMirror,
	OpMirrorBackslash:  opMirror,
	OpMirrorVertical:   opMirror,
	OpMirrorHorizontal: opMirror,
	OpMirrorHash:       opMirror,
	OpTrampoline:       opTrampoline,
	OpCondTrampoline:   opCondTrampoline,
	OpJump:             opJump,
	'0':                opPushDigit,
	'1':                opPushDigit,
	'2':                opPushDigit,
	'3':                opPushDigit,
	'4':                opPushDigit,
	'5':                opPushDigit,
	'6':                opPushDigit,
	'7':                opPushDigit,
	'8':                opPushDigit,
	'9':                opPushDigit,
	'a':                opPushDigit,
	'b':                opPushDigit,
	'c':                opPushDigit,
	'd':                opPushDigit,
	'e':                opPushDigit,
	'f':                opPushDigit,
	OpAdd:              opArith,
	OpSub:              opArith,
	OpMul:              opArith,
	OpDiv:              opArith,
	OpMod:              opArith,
	OpEqual:            opArith,
	OpGreater:          opArith,
	OpLess:             opArith,
	OpQuote:            opQuote,
	OpDoubleQuote:      opQuote,
	OpDup:              opDup,
	OpDrop:             opDrop,
	OpSwap:             opSwap,
	OpSwap3:            opSwap3,
	OpShiftRight:       opShift,
	OpShiftLeft:        opShift,
	OpReverse:          opReverse,
	OpLength:           opLength,
	OpNewStack:         opNewStack,
	OpRemoveStack:      opRemoveStack,
	OpPrintChar:        opPrintChar,
	OpPrintNum:         opPrintNum,
	OpRead:             opRead,
	OpRegister:         opRegister,
	OpGet:              opGet,
	OpPut:              opPut,
	OpEnd:              opEnd,
}

var mnemonics = [128]string{
	OpBlank:            "nop",
	OpNop:              "nop",
	OpLeft:             "left",
	OpRight:            "right",
	OpUp:               "up",
	OpDown:             "down",
	OpRandom:           "random",
	OpMirrorSlash:      "mirror/",
	OpMirrorBackslash:  "mirror\\",
	OpMirrorVertical:   "mirror|",
	OpMirrorHorizontal: "mirror_",
	OpMirrorHash:       "mirror#",
	OpTrampoline:       "skip",
	OpCondTrampoline:   "skipz",
	OpJump:             "jump",
	'0':                "lit 0",
	'1':                "lit 1",
	'2':                "lit 2",
	'3':                "lit 3",
	'4':                "lit 4",
	'5':                "lit 5",
	'6':                "lit 6",
	'7':                "lit 7",
	'8':                "lit 8",
	'9':                "lit 9",
	'a':                "lit 10",
	'b':                "lit 11",
	'c':                "lit 12",
	'd':                "lit 13",
	'e':                "lit 14",
	'f':                "lit 15",
	OpAdd:              "add",
	OpSub:              "sub",
	OpMul:              "mul",
	OpDiv:              "div",
	OpMod:              "mod",
	OpEqual:            "eq",
	OpGreater:          "gt",
	OpLess:             "lt",
	OpQuote:            "quote",
	OpDoubleQuote:      "dquote",
	OpDup:              "dup",
	OpDrop:             "drop",
	OpSwap:             "swap",
	OpSwap3:            "rot",
	OpShiftRight:       "shr",
	OpShiftLeft:        "shl",
	OpReverse:          "reverse",
	OpLength:           "len",
	OpNewStack:         "newstack",
	OpRemoveStack:      "remstack",
	OpPrintChar:        "putc",
	OpPrintNum:         "putn",
	OpRead:             "getc",
	OpRegister:         "reg",
	OpGet:              "get",
	OpPut:              "put",
	OpEnd:              "end",
}

// Valid returns true if op is a ><> instruction.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opTable) && opTable[op] != nil
}

// Mnemonic returns a short name for the given opcode, or an empty string if op
// is not a valid instruction.
func Mnemonic(op Opcode) string {
	if !op.Valid() {
		return ""
	}
	return mnemonics[op]
}
