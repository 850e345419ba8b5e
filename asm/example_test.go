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
	"fmt"
	"os"

	"github.com/db47h/intcode/asm"
)

func ExampleParseString() {
	prog, err := asm.ParseString("1,9,10,3,2,3,11,0,99,30,40,50")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(prog)

	// Output:
	// [1 9 10 3 2 3 11 0 99 30 40 50]
}

func ExampleParseString_errors() {
	_, err := asm.ParseString("1,,2\n-")
	fmt.Println(err)

	// Output:
	// string:1:3: empty cell
	// string:2:1: dangling sign
}

func ExampleDisassembleAll() {
	prog, err := asm.ParseString("109,20,21101,10,0,0,4,20,99")
	if err != nil {
		fmt.Println(err)
		return
	}
	asm.DisassembleAll(prog, 0, os.Stdout)

	// Output:
	//      0	arb 20
	//      2	add 10 0 [rb+0]
	//      6	out [20]
	//      8	halt
}
