// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

// ErrOpcode is the cause of all malformed program errors: an instruction word
// whose opcode is not one of the ten defined ones, a mode digit outside 0-2,
// or an immediate mode store operand. Fatal. Use errors.Cause to test for it.
var ErrOpcode = errors.New("malformed instruction")

// Opcode is the operation selector of an instruction: the low two decimal
// digits of the instruction word.
type Opcode Cell

// Intcode machine opcodes. The set is closed; any other value found in the
// instruction stream aborts the run with ErrOpcode.
const (
	OpAdd  Opcode = 1  // dst = a + b
	OpMul  Opcode = 2  // dst = a * b
	OpIn   Opcode = 3  // dst = next input cell; suspends when none queued
	OpOut  Opcode = 4  // append a to the output queue
	OpJnz  Opcode = 5  // if a != 0, jump to b
	OpJz   Opcode = 6  // if a == 0, jump to b
	OpLt   Opcode = 7  // dst = 1 if a < b, else 0
	OpEq   Opcode = 8  // dst = 1 if a == b, else 0
	OpArb  Opcode = 9  // relative base += a
	OpHalt Opcode = 99 // stop, permanently
)

// Mode is the addressing mode of a single operand.
type Mode Cell

// Operand addressing modes, one decimal digit per operand in the instruction
// word, least significant digit first, missing digits meaning Positional.
const (
	Positional Mode = iota // operand is the address of the value
	Immediate              // operand is the value itself
	Relative               // operand plus the relative base is the address
)

var opDefs = map[Opcode]struct {
	name  string
	arity int
}{
	OpAdd:  {"add", 3},
	OpMul:  {"mul", 3},
	OpIn:   {"in", 1},
	OpOut:  {"out", 1},
	OpJnz:  {"jnz", 2},
	OpJz:   {"jz", 2},
	OpLt:   {"lt", 3},
	OpEq:   {"eq", 3},
	OpArb:  {"arb", 1},
	OpHalt: {"halt", 0},
}

// String returns the assembler mnemonic of op.
func (op Opcode) String() string {
	if d, ok := opDefs[op]; ok {
		return d.name
	}
	return "?"
}

// Arity returns the number of operands op takes, 0 for invalid opcodes.
func (op Opcode) Arity() int {
	return opDefs[op].arity
}

// Valid reports whether op is one of the ten defined opcodes.
func (op Opcode) Valid() bool {
	_, ok := opDefs[op]
	return ok
}

// Decode splits the instruction word w into its opcode and the addressing
// mode of each operand. Unknown opcodes and mode digits outside 0-2 are
// reported as errors wrapping ErrOpcode.
func Decode(w Cell) (Opcode, [3]Mode, error) {
	var modes [3]Mode
	op := Opcode(w % 100)
	if !op.Valid() {
		return op, modes, errors.Wrapf(ErrOpcode, "opcode %d in word %d", op, w)
	}
	d := w / 100
	for k := 0; d != 0; k, d = k+1, d/10 {
		if k >= len(modes) {
			return op, modes, errors.Wrapf(ErrOpcode, "too many mode digits in word %d", w)
		}
		m := Mode(d % 10)
		if m > Relative {
			return op, modes, errors.Wrapf(ErrOpcode, "mode digit %d in word %d", m, w)
		}
		modes[k] = m
	}
	return op, modes, nil
}
