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

package asm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// Parse reads an Intcode program in text form from r and returns it as a
// cell slice ready to be loaded with vm.New. The name argument is used only
// in error positions, usually the source file name.
//
// If errors occur during parsing, the returned error value can safely be
// cast to an ErrAsm value that will list up to the first 10 errors found.
func Parse(name string, r io.Reader) ([]vm.Cell, error) {
	var p parser
	return p.parse(name, r)
}

// ParseString is a convenience wrapper around Parse for programs held in a
// string.
func ParseString(src string) ([]vm.Cell, error) {
	return Parse("string", strings.NewReader(src))
}

// Load reads the program from the named file.
func Load(path string) ([]vm.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load program")
	}
	defer f.Close()
	return Parse(path, f)
}

// DisassembleAll writes a disassembly listing of all cells in p to the
// specified io.Writer. The base argument is the memory address of p[0] and
// only offsets the addresses shown in the listing. Cells that do not decode
// to a valid instruction are listed as ".dat" directives, so disassembling
// the data section of a program produces noise rather than an error.
//
// It returns any write error that may have occurred.
func DisassembleAll(p []vm.Cell, base int, w io.Writer) error {
	ew, ok := w.(*ici.ErrWriter)
	if !ok {
		ew = ici.NewErrWriter(w)
	}
	for pc := 0; pc < len(p); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = vm.Disasm(p, pc, ew)
		ew.WriteString("\n")
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
