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

package vm_test

import (
	"bytes"
	"testing"

	"github.com/db47h/intcode/vm"
)

// Interrupt a machine mid-suspension, snapshot it, and check that the
// restored copy finishes exactly like the original.
func TestSnapshot(t *testing.T) {
	a, err := vm.New(twoIn)
	if err != nil {
		t.Fatal(err)
	}
	r, err := a.Run(7)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if r.Status != vm.StatusSuspended {
		t.Fatalf("expected suspended, got %v", r.Status)
	}

	var buf bytes.Buffer
	if err = a.Snapshot(&buf); err != nil {
		t.Fatalf("%+v", err)
	}
	b, err := vm.Restore(&buf)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqualI(t, "pc", a.PC, b.PC)
	assertCells(t, "mem", a.Mem, b.Mem)
	if a.InstructionCount() != b.InstructionCount() {
		t.Errorf("instruction count: expected %d, got %d", a.InstructionCount(), b.InstructionCount())
	}

	outA, err := drain(a, 3)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	outB, err := drain(b, 3)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "outputs", outA, outB)
	assertCells(t, "final mem", a.Mem, b.Mem)
	if !b.Halted() {
		t.Error("restored machine did not halt")
	}
}

// Snapshots must capture queued but unconsumed I/O.
func TestSnapshot_queues(t *testing.T) {
	a, err := vm.New(twoIn)
	if err != nil {
		t.Fatal(err)
	}
	// 55 is still queued when the machine stops at its first output
	r, err := a.Run(2, 9, 55)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if r.Status != vm.StatusOutput {
		t.Fatalf("expected output, got %v", r.Status)
	}

	var buf bytes.Buffer
	if err = a.Snapshot(&buf); err != nil {
		t.Fatalf("%+v", err)
	}
	b, err := vm.Restore(&buf)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "in queue", a.In.Cells(), b.In.Cells())
	assertCells(t, "out queue", a.Out.Cells(), b.Out.Cells())
	v, ok := b.LastOutput()
	if !ok || v != 92 {
		t.Errorf("expected last output 92, got %d %v", v, ok)
	}
}

// The encoding is canonical: identical states make identical snapshots.
func TestSnapshot_canonical(t *testing.T) {
	var b1, b2 bytes.Buffer
	a, err := vm.New(quine)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = a.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if err = a.Snapshot(&b1); err != nil {
		t.Fatalf("%+v", err)
	}
	if err = a.Snapshot(&b2); err != nil {
		t.Fatalf("%+v", err)
	}
	if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
		t.Error("two snapshots of the same state differ")
	}
	b, err := vm.Restore(&b1)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	out, err := drain(b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "restored quine", quine, out)
}

func TestRestore_errors(t *testing.T) {
	if _, err := vm.Restore(bytes.NewReader([]byte{0xff, 0x00})); err == nil {
		t.Error("garbage snapshot: expected an error")
	}
}
