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
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Cell is the machine's only data type: one memory location, one I/O value.
type Cell int64

// Instance represents a single Intcode machine: its memory, registers and I/O
// queues. Instances are created by New or Restore and driven with Run. They
// are never reset: a halted machine stays halted, and a machine that hit a
// fatal error is dead.
//
// The exported fields may be inspected, and In and Out reassigned, between
// Run calls. Replacing a queue is how machines are wired together after the
// fact; see Queue.
type Instance struct {
	PC   int    // instruction pointer
	Base Cell   // relative addressing base register
	Mem  Mem    // memory, seeded from the program
	In   *Queue // input queue
	Out  *Queue // output queue

	insCount int64
	outCount int64
	lastOut  Cell
	halted   bool
	trace    io.Writer
}

// Option interface
type Option func(*Instance) error

// Input sets the machine's input queue. Passing another machine's output
// queue forms a pipe.
func Input(q *Queue) Option {
	return func(i *Instance) error {
		if q == nil {
			return errors.New("nil input queue")
		}
		i.In = q
		return nil
	}
}

// Output sets the machine's output queue. Passing another machine's input
// queue forms a pipe.
func Output(q *Queue) Option {
	return func(i *Instance) error {
		if q == nil {
			return errors.New("nil output queue")
		}
		i.Out = q
		return nil
	}
}

// MemSize pre-allocates the machine's memory to size cells. The memory still
// grows transparently past size; this is only a hint that saves re-allocations
// for programs known to use a large address range.
func MemSize(size int) Option {
	return func(i *Instance) error {
		if size < 0 {
			return errors.Errorf("invalid memory size %d", size)
		}
		if size > len(i.Mem) {
			t := make(Mem, size)
			copy(t, i.Mem)
			i.Mem = t
		}
		return nil
	}
}

// Trace makes the machine write a one line disassembly of every instruction
// it executes to w, along with the relative base and queue depths.
func Trace(w io.Writer) Option {
	return func(i *Instance) error {
		i.trace = w
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

// New creates a machine instance running the given program.
//
// The machine's memory starts as a private copy of the program and grows on
// demand from there; the program slice is never aliased. Input and output
// default to fresh private queues. Use the Input and Output options, or
// assign the In and Out fields directly, to wire machines together.
func New(program []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: append(Mem(nil), program...),
		In:  NewQueue(),
		Out: NewQueue(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Halted reports whether the machine has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// LastOutput returns the most recent cell the machine has output. The second
// return value is false when the machine never produced any output; callers
// that require an output value must treat that as an error rather than use
// the zero value.
func (i *Instance) LastOutput() (Cell, bool) {
	return i.lastOut, i.outCount > 0
}

// InstructionCount returns the total number of instructions executed since
// the machine was created.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *errWriter) dumpCells(a []Cell) error {
	for i, v := range a {
		if i > 0 {
			w.Write([]byte{','})
		}
		io.WriteString(w, strconv.FormatInt(int64(v), 10))
	}
	return w.err
}

// Dump writes the machine state to w in text form: a header line with the
// registers, then memory, input queue and output queue as comma separated
// cells, one line each. The memory line is valid program text, so a dump can
// be fed back to the machine, minus registers and queues.
func (i *Instance) Dump(w io.Writer) error {
	ew := &errWriter{w: w}
	fmt.Fprintf(ew, "pc %d base %d halted %v\n", i.PC, i.Base, i.halted)
	ew.dumpCells(i.Mem)
	ew.Write([]byte{'\n'})
	ew.dumpCells(i.In.Cells())
	ew.Write([]byte{'\n'})
	ew.dumpCells(i.Out.Cells())
	ew.Write([]byte{'\n'})
	return ew.err
}
