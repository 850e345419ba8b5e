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

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status discriminates the three reasons Run hands control back to its
// caller.
type Status int

// Run statuses.
const (
	StatusOutput    Status = iota // an output instruction executed
	StatusSuspended               // an input instruction found the input queue empty
	StatusHalted                  // a halt instruction executed
)

var statusNames = [...]string{"output", "suspended", "halted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Result is what Run reports back to its caller.
//
// Value holds the emitted cell when Status is StatusOutput. When Status is
// StatusHalted it holds the last cell the machine ever output, as a
// convenience for pipeline drivers; use LastOutput to tell a final 0 from no
// output at all. It is meaningless when Status is StatusSuspended.
type Result struct {
	Status Status
	Value  Cell
}

// arg resolves operand k of the instruction at PC for reading.
func (i *Instance) arg(k int, modes [3]Mode) Cell {
	v := i.Mem.Fetch(Cell(i.PC + k))
	switch modes[k-1] {
	case Immediate:
		return v
	case Relative:
		return i.Mem.Fetch(v + i.Base)
	default:
		return i.Mem.Fetch(v)
	}
}

// dst resolves operand k of the instruction at PC as a store address.
// Immediate mode has no meaning for a destination and is rejected as a
// malformed instruction.
func (i *Instance) dst(k int, modes [3]Mode) Cell {
	v := i.Mem.Fetch(Cell(i.PC + k))
	switch modes[k-1] {
	case Positional:
		return v
	case Relative:
		return v + i.Base
	default:
		panic(errors.Wrapf(ErrOpcode, "immediate mode store operand %d", k))
	}
}

// Run feeds the given cells to the input queue, then executes instructions
// until the machine outputs a value, suspends for lack of input, or halts;
// see Result for how the three are told apart. A suspended machine leaves its
// PC on the unsatisfied input instruction, so the next Run call, after more
// input arrived, re-attempts that exact instruction. Run may be called any
// number of times; once the machine halted it keeps reporting Halted.
//
// Errors are fatal and non-recoverable: the machine stops with the PC
// addressing the offending instruction and will not make further progress.
// The error's cause is ErrOpcode for malformed instructions and ErrAddress
// for negative address accesses, including jumps to negative addresses.
func (i *Instance) Run(in ...Cell) (r Result, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "@pc=%d, base=%d, mem=%d cells", i.PC, i.Base, len(i.Mem))
			default:
				panic(e)
			}
		}
	}()
	for _, v := range in {
		i.In.Push(v)
	}
	for !i.halted {
		w := i.Mem.Fetch(Cell(i.PC))
		op, modes, err := Decode(w)
		if err != nil {
			return r, errors.Wrapf(err, "@pc=%d", i.PC)
		}
		if i.trace != nil {
			text, _ := disasmText(i.Mem, i.PC)
			fmt.Fprintf(i.trace, "% 8d\t%-24s\tbase=%d in=%d out=%d\n", i.PC, text, i.Base, i.In.Len(), i.Out.Len())
		}
		switch op {
		case OpAdd:
			i.Mem.Store(i.dst(3, modes), i.arg(1, modes)+i.arg(2, modes))
			i.PC += 4
		case OpMul:
			i.Mem.Store(i.dst(3, modes), i.arg(1, modes)*i.arg(2, modes))
			i.PC += 4
		case OpIn:
			v, ok := i.In.Pop()
			if !ok {
				return Result{Status: StatusSuspended}, nil
			}
			i.Mem.Store(i.dst(1, modes), v)
			i.PC += 2
		case OpOut:
			v := i.arg(1, modes)
			i.Out.Push(v)
			i.lastOut = v
			i.outCount++
			i.insCount++
			i.PC += 2
			return Result{Status: StatusOutput, Value: v}, nil
		case OpJnz:
			if i.arg(1, modes) != 0 {
				i.PC = int(i.arg(2, modes))
			} else {
				i.PC += 3
			}
		case OpJz:
			if i.arg(1, modes) == 0 {
				i.PC = int(i.arg(2, modes))
			} else {
				i.PC += 3
			}
		case OpLt:
			var v Cell
			if i.arg(1, modes) < i.arg(2, modes) {
				v = 1
			}
			i.Mem.Store(i.dst(3, modes), v)
			i.PC += 4
		case OpEq:
			var v Cell
			if i.arg(1, modes) == i.arg(2, modes) {
				v = 1
			}
			i.Mem.Store(i.dst(3, modes), v)
			i.PC += 4
		case OpArb:
			i.Base += i.arg(1, modes)
			i.PC += 2
		case OpHalt:
			i.halted = true
		default:
			// Decode validated op, so this only triggers when an opcode is
			// added to opDefs without a matching case here.
			return r, errors.Wrapf(ErrOpcode, "unimplemented opcode %d @pc=%d", op, i.PC)
		}
		i.insCount++
	}
	return Result{Status: StatusHalted, Value: i.lastOut}, nil
}
