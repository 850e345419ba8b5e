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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
)

type cellList []vm.Cell

func (c *cellList) String() string { return "" }
func (c *cellList) Set(s string) error {
	cells, err := asm.ParseString(s)
	if err != nil {
		return err
	}
	*c = append(*c, cells...)
	return nil
}
func (c *cellList) Get() interface{} { return []vm.Cell(*c) }

var debug bool

func atExit(err error) {
	if err == nil {
		return
	}
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	var phases cellList
	planName := flag.String("plan", "", "run the amplifier plan in `filename` (TOML)")
	flag.Var(&phases, "phases", "comma separated phase settings, one per amplifier")
	signal := flag.Int64("signal", 0, "seed signal")
	loop := flag.Bool("loop", false, "wire the amplifiers in a feedback ring")
	search := flag.Bool("search", false, "try all phase orderings, keep the best")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	var (
		out      vm.Cell
		order    []vm.Cell
		searched = *search
	)
	if *planName != "" {
		var p *circuit.Plan
		if p, err = circuit.LoadPlan(*planName); err != nil {
			return
		}
		searched = p.Search
		out, order, err = p.Run()
	} else {
		if flag.Arg(0) == "" {
			err = errors.New("no program file")
			return
		}
		if len(phases) == 0 {
			err = errors.New("no phase settings")
			return
		}
		var prog []vm.Cell
		if prog, err = asm.Load(flag.Arg(0)); err != nil {
			return
		}
		if searched {
			out, order, err = circuit.MaxSignal(prog, phases, vm.Cell(*signal), *loop)
		} else {
			run := circuit.Serial
			if *loop {
				run = circuit.Feedback
			}
			out, err = run(prog, phases, vm.Cell(*signal))
		}
	}
	if err != nil {
		return
	}

	fmt.Println(out)
	if searched {
		fmt.Println("phases", order)
	}
}
