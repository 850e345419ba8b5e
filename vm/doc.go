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

// Package vm implements the Intcode virtual machine.
//
// An Intcode machine executes a program stored in its own memory: a flat,
// growable array of 64 bit signed integer cells, addressed from 0. An
// instruction is one cell whose low two decimal digits select the operation
// and whose remaining digits give each operand an addressing mode, least
// significant digit first: positional (0, the operand is an address),
// immediate (1, the operand is the value), or relative (2, the operand plus
// the relative base register is an address). Store operands are positional or
// relative, never immediate.
//
// The machine does I/O through two unbounded FIFO queues of cells. Run
// executes instructions until the machine outputs a cell, needs input it does
// not have, or halts, and says which in its Result; a machine out of input
// suspends with the PC still on the input instruction and resumes there on
// the next Run call. This makes machines composable: several instances wired
// together by sharing queues (one machine's In being another's Out) form
// pipelines and feedback rings driven cooperatively from a single goroutine,
// with no locking anywhere. Package circuit builds these topologies.
//
// Malformed instructions and negative addresses kill a machine: Run returns
// an error wrapping ErrOpcode or ErrAddress and no further progress is
// possible. Suspension, on the other hand, is never an error.
//
// The complete machine state can be serialized with Snapshot and revived
// with Restore, pausing a suspended program across process runs.
package vm
