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

// The amp command line tool runs Intcode amplifier chains, see the package
// github.com/db47h/intcode/circuit.
//
// Usage:
//
//	amp -phases 4,3,2,1,0 [options] program.txt
//	amp -plan circuit.toml
//
//	-debug
//		  enable debug diagnostics
//	-loop
//		  wire the amplifiers in a feedback ring
//	-phases cells
//		  comma separated phase settings, one per amplifier
//	-plan filename
//		  run the amplifier plan in filename (TOML)
//	-search
//		  try all phase orderings, keep the best
//	-signal n
//		  seed signal (default 0)
//
// One amplifier per phase setting is loaded with the program and they are
// wired output to input, in a straight chain, or in a ring with -loop. The
// resulting signal is printed on stdout; with -search, every ordering of the
// phase settings is tried and the phase order that won is printed as well:
//
//	$ amp -phases 0,1,2,3,4 -search program.txt
//	43210
//	phases [4 3 2 1 0]
//
// A plan file describes the same run in TOML form:
//
//	program = "program.txt"	# relative to the plan file
//	mode = "feedback"	# or "serial", the default
//	phases = [5, 6, 7, 8, 9]
//	search = true
package main
