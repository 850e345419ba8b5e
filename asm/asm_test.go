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

package asm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

func assertCells(t *testing.T, name string, got, want []vm.Cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: cell %d = %d, want %d", name, i, got[i], want[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want C
	}{
		{"single", "99", C{99}},
		{"classic", "1,9,10,3,2,3,11,0,99,30,40,50", C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"negative", "-1,-22,3", C{-1, -22, 3}},
		{"newlines", "1\n2\n\n3\n", C{1, 2, 3}},
		{"mixed_sep", "1, 2\n3,4", C{1, 2, 3, 4}},
		{"trailing_sep", "1,2,\n", C{1, 2}},
		{"tabs_crlf", "1,\t2,\r\n3", C{1, 2, 3}},
		{"comments", "// header\n1,2, // inline\n/* block */ 3", C{1, 2, 3}},
		{"go_literals", "0x10,1_000,-0b101", C{16, 1000, -5}},
		{"empty", "", nil},
		{"blank", " \t\n\n", nil},
	}
	for _, tt := range tests {
		got, err := asm.ParseString(tt.src)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		assertCells(t, tt.name, got, tt.want)
	}
}

// check that errors point at the correct place in the source.
func TestParse_errors(t *testing.T) {
	// scanner level error
	_, err := asm.Parse("test", strings.NewReader("\x80"))
	if err == nil {
		t.Fatal("expected error on illegal rune")
	}
	errs, ok := err.(asm.ErrAsm)
	if !ok || len(errs) == 0 {
		t.Fatalf("expected ErrAsm, got %T", err)
	}
	if got := errs[0].Error(); got != "test:1:1: illegal UTF-8 encoding" {
		t.Errorf("unexpected first error %q", got)
	}

	// parse level errors: check the first error reported for each source
	tests := []struct {
		src  string
		line int
		col  int
		msg  string
	}{
		{"1,,2", 1, 3, "empty cell"},
		{",1", 1, 1, "empty cell"},
		{"1 2", 1, 3, "missing separator before cell"},
		{"1,-", 1, 3, "dangling sign"},
		{"-,5", 1, 1, "dangling sign"},
		{"1,x", 1, 3, `unexpected "x"`},
		{"1,2.5", 1, 4, `unexpected "."`},
		{"99999999999999999999", 1, 1, `bad cell "99999999999999999999": value out of range`},
	}
	for _, tt := range tests {
		_, err := asm.Parse("test", strings.NewReader(tt.src))
		if err == nil {
			t.Errorf("%q: expected error", tt.src)
			continue
		}
		e := err.(asm.ErrAsm)[0]
		if e.Pos.Line != tt.line || e.Pos.Column != tt.col || e.Msg != tt.msg {
			t.Errorf("%q: got %q at %d:%d, want %q at %d:%d",
				tt.src, e.Msg, e.Pos.Line, e.Pos.Column, tt.msg, tt.line, tt.col)
		}
	}

	// all errors are collected, in source order
	_, err = asm.Parse("t", strings.NewReader(",,"))
	if got, want := err.Error(), "t:1:1: empty cell\nt:1:2: empty cell"; got != want {
		t.Errorf("got error %q, want %q", got, want)
	}

	// and capped at 10
	_, err = asm.Parse("t", strings.NewReader(strings.Repeat("?,", 12)))
	if n := len(err.(asm.ErrAsm)); n != 10 {
		t.Errorf("got %d errors, want 10", n)
	}
}

func TestLoad(t *testing.T) {
	prog, err := asm.Load("testdata/countdown.txt")
	if err != nil {
		t.Fatal(err)
	}
	assertCells(t, "countdown", prog,
		C{1101, 5, 0, 20, 4, 20, 101, -1, 20, 20, 1005, 20, 4, 99})

	// and it should actually run
	i, err := vm.New(prog)
	if err != nil {
		t.Fatal(err)
	}
	var out []vm.Cell
	for {
		r, err := i.Run()
		if err != nil {
			t.Fatal(err)
		}
		if r.Status != vm.StatusOutput {
			break
		}
		out = append(out, r.Value)
	}
	assertCells(t, "countdown output", out, C{5, 4, 3, 2, 1})

	if _, err = asm.Load("testdata/nonexistent.txt"); err == nil {
		t.Error("expected error on missing file")
	}
}

func TestDisassembleAll(t *testing.T) {
	prog := C{1002, 4, 3, 4, 33}
	var b strings.Builder
	if err := asm.DisassembleAll(prog, 0, &b); err != nil {
		t.Fatal(err)
	}
	want := "     0\tmul [4] 3 [4]\n     4\t.dat 33\n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// base offsets the listing addresses
	b.Reset()
	if err := asm.DisassembleAll(prog, 100, &b); err != nil {
		t.Fatal(err)
	}
	want = "   100\tmul [4] 3 [4]\n   104\t.dat 33\n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// write errors are reported and do not stall the listing
	if err := asm.DisassembleAll(prog, 0, failWriter{}); err == nil {
		t.Error("expected write error")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}
