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

// Package asm provides utility functions to parse and disassemble Intcode
// programs.
//
// Program format:
//
// An Intcode program in text form is a list of integer values separated by
// commas or newlines. This is the format programs are commonly distributed
// in, as a single comma-separated line:
//
//	1,9,10,3,2,3,11,0,99,30,40,50
//
// The parser is slightly more liberal than that:
//
//	- values are Go integer literals (see strconv.ParseInt with base 0),
//	  so hexadecimal cells like 0x1F and digit-separated cells like 1_000
//	  are accepted,
//	- a '-' prefix negates the value that follows it,
//	- newlines count as separators, blank lines are skipped, and a trailing
//	  separator before EOF is not an error,
//	- Go style comments (// and /* */) are ignored.
//
// This makes it possible to keep annotated program sources:
//
//	// compute 10 + 0 and print the result
//	109, 20,	// arb 20
//	21101, 10, 0, 0,	// add 10 + 0 -> [rb+0]
//	4, 20,			// out [20]
//	99
//
// Parse collects all errors found in the source instead of stopping at the
// first one and reports them with their position as an ErrAsm value.
//
// Disassembly:
//
// DisassembleAll writes a one instruction per line listing with addresses.
// Since Intcode programs mix code and data freely, the disassembler makes no
// attempt at separating them: any cell that does not start a well formed
// instruction, including one truncated by the end of the slice, is listed as
// a ".dat" directive. The listing for the small program above looks like
// this:
//
//	     0	arb 20
//	     2	add 10 0 [rb+0]
//	     6	out [20]
//	     8	halt
//
// Mnemonics:
//
//	opcode	asm	operands	description
//	------	----	--------	------------------------------------------
//	1	add	a b dst		dst <- a + b
//	2	mul	a b dst		dst <- a * b
//	3	in	dst		dst <- next input value
//	4	out	a		append a to the output
//	5	jnz	a target	jump to target if a != 0
//	6	jz	a target	jump to target if a == 0
//	7	lt	a b dst		dst <- 1 if a < b, else 0
//	8	eq	a b dst		dst <- 1 if a == b, else 0
//	9	arb	a		add a to the relative base
//	99	halt			stop execution
//
// Operands are shown bare for immediate mode, as [n] for positional mode and
// as [rb+n] for relative mode.
package asm
