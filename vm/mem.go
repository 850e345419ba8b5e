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

// ErrAddress is the cause of all memory bounds errors: a fetch, store or jump
// to a negative address. Such errors are fatal to the machine that triggered
// them. Use errors.Cause to test for it.
var ErrAddress = errors.New("memory address out of bounds")

// Mem is a machine's memory: a flat array of cells addressed from 0 that
// grows transparently when accessed past its current extent. New cells read
// as 0. Memory never shrinks, and is owned by exactly one machine.
//
// Fetch and Store panic with an error wrapping ErrAddress when given a
// negative address. Instance.Run converts these panics into ordinary error
// returns; code accessing a Mem outside of Run must either validate addresses
// or recover itself.
type Mem []Cell

// grow extends the memory so that addr is a valid index, doubling the backing
// array when that is larger, to keep repeated one-past-the-end accesses from
// reallocating every time.
func (m *Mem) grow(addr Cell) {
	n := int(addr) + 1
	if n <= len(*m) {
		return
	}
	if d := 2 * len(*m); n < d {
		n = d
	}
	t := make(Mem, n)
	copy(t, *m)
	*m = t
}

// Fetch returns the contents of the cell at addr, extending the memory if
// addr is past its current extent.
func (m *Mem) Fetch(addr Cell) Cell {
	if addr < 0 {
		panic(errors.Wrapf(ErrAddress, "fetch @%d", addr))
	}
	m.grow(addr)
	return (*m)[addr]
}

// Store writes v to the cell at addr, extending the memory if addr is past
// its current extent.
func (m *Mem) Store(addr, v Cell) {
	if addr < 0 {
		panic(errors.Wrapf(ErrAddress, "store @%d", addr))
	}
	m.grow(addr)
	(*m)[addr] = v
}
