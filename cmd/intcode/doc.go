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

// The intcode command line tool runs Intcode programs. It is a showcase for
// the package github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [options] program.txt
//
//	-a	ASCII mode, bytes in and out instead of numbers
//	-d	disassemble the program and exit
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump the machine state upon exit
//	-i cells
//		  feed cells to the input queue (can be specified multiple times)
//	-noraw
//		  disable raw terminal IO in ASCII mode
//	-restore filename
//		  resume from the machine snapshot in filename
//	-save filename
//		  save a machine snapshot to filename upon exit
//	-size cells
//		  preallocate machine memory to cells cells
//	-trace
//		  trace executed instructions to stderr
//
// The program file is a comma or newline separated list of cells, the format
// puzzle inputs come in; see the asm package for the exact syntax.
//
// Program outputs are printed one number per line. When the program asks for
// input that the queue cannot satisfy, intcode reads a line from stdin and
// parses it as a list of cells, so interactive use and piping both work:
//
//	$ echo 5 | intcode program.txt
//
// -i: seeds the input queue before the program starts, -i 1,2 -i 3 queues
// 1, 2, 3. Values typed on stdin get appended after these.
//
// -a: byte oriented IO for programs that speak ASCII. Each output cell in
// 0..127 is written as a byte, anything else as a number on its own line.
// Input is read a byte at a time. Unless stdin has been redirected or -noraw
// is given, the terminal is switched to raw mode, so keys reach the program
// without line buffering; quit with CTRL-D.
//
// -d: prints a disassembly listing of the program instead of running it.
// Combined with -restore it lists the memory of a saved machine, including
// whatever the program wrote there before the snapshot.
//
// -save, -restore: a machine that halted, or ran out of input, or was loaded
// with -restore in the first place, can be written to a snapshot file and
// picked up later. Snapshots capture memory, registers and queued IO, so a
// suspended program resumes exactly where it left off:
//
//	$ intcode -save game.snap game.txt
//	$ intcode -restore game.snap -i 2
//
// -trace: writes a one line disassembly of every executed instruction to
// stderr, with the relative base and queue depths.
//
// -debug: on errors, prints the failure with a stack trace and a full
// machine state dump instead of the one line message.
package main
