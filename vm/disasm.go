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
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// operand renders a single operand: positional as [n], immediate as a bare
// number, relative as [rb+n] or [rb-n].
func operand(v Cell, m Mode) string {
	switch m {
	case Immediate:
		return strconv.FormatInt(int64(v), 10)
	case Relative:
		if v < 0 {
			return "[rb-" + strconv.FormatInt(int64(-v), 10) + "]"
		}
		return "[rb+" + strconv.FormatInt(int64(v), 10) + "]"
	default:
		return "[" + strconv.FormatInt(int64(v), 10) + "]"
	}
}

// disasmText renders the instruction at pc as text and returns the address of
// the instruction following it. Cells that do not decode as a complete, valid
// instruction render as ".dat" and are skipped one at a time, like assembler
// listings render embedded data.
func disasmText(m []Cell, pc int) (text string, next int) {
	w := m[pc]
	op, modes, err := Decode(w)
	if err != nil || pc+op.Arity() >= len(m) {
		return ".dat " + strconv.FormatInt(int64(w), 10), pc + 1
	}
	var b strings.Builder
	b.WriteString(op.String())
	for k := 1; k <= op.Arity(); k++ {
		b.WriteByte(' ')
		b.WriteString(operand(m[pc+k], modes[k-1]))
	}
	return b.String(), pc + op.Arity() + 1
}

// Disasm writes a one line disassembly of the instruction at pc in m to w,
// without trailing newline, and returns the address of the next instruction.
// Out of range pc values are an error; cells that do not decode as a valid
// instruction are rendered as ".dat" data cells.
func Disasm(m []Cell, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(m) {
		return pc, errors.Wrapf(ErrAddress, "disasm @%d", pc)
	}
	text, next := disasmText(m, pc)
	if _, err = io.WriteString(w, text); err != nil {
		// advance anyway so that listing loops using a sticky error writer
		// still terminate
		return next, errors.Wrap(err, "disasm")
	}
	return next, nil
}
