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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/asm"
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

var (
	ascii       bool
	disasm      bool
	dump        bool
	debug       bool
	noRaw       bool
	trace       bool
	memSize     int
	saveName    string
	restoreName string
	rawtty      bool
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		i.Dump(os.Stderr)
	}
	os.Exit(1)
}

func newMachine(path string, inputs []vm.Cell) (*vm.Instance, error) {
	if restoreName != "" {
		f, err := os.Open(restoreName)
		if err != nil {
			return nil, errors.Wrap(err, "restore")
		}
		defer f.Close()
		i, err := vm.Restore(f)
		if err != nil {
			return nil, err
		}
		for _, c := range inputs {
			i.In.Push(c)
		}
		if trace {
			return i, i.SetOptions(vm.Trace(os.Stderr))
		}
		return i, nil
	}
	if path == "" {
		return nil, errors.New("no program file")
	}
	prog, err := asm.Load(path)
	if err != nil {
		return nil, err
	}
	opts := []vm.Option{vm.Input(vm.NewQueue(inputs...))}
	if memSize > 0 {
		opts = append(opts, vm.MemSize(memSize))
	}
	if trace {
		opts = append(opts, vm.Trace(os.Stderr))
	}
	return vm.New(prog, opts...)
}

// feed reads more input once the machine suspends: single bytes in ASCII
// mode, lines of comma separated cells otherwise. It returns io.EOF when the
// input source is exhausted.
func feed(i *vm.Instance, in *bufio.Reader, out *bufio.Writer) error {
	if err := out.Flush(); err != nil {
		return err
	}
	if ascii {
		b, err := in.ReadByte()
		if err != nil {
			return err
		}
		if b == 4 { // ^D, raw mode
			return io.EOF
		}
		if b == '\r' { // enter key, raw mode
			b = '\n'
		}
		if rawtty {
			// terminal echo is off in raw mode, echo by hand
			out.WriteByte(b)
			out.Flush()
		}
		i.In.Push(vm.Cell(b))
		return nil
	}
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			cells, perr := asm.ParseString(line)
			if perr != nil {
				fmt.Fprintln(os.Stderr, perr)
			} else {
				for _, c := range cells {
					i.In.Push(c)
				}
				if len(cells) > 0 {
					return nil
				}
			}
		}
		if err != nil {
			return err
		}
	}
}

func run(i *vm.Instance, in *bufio.Reader, out *bufio.Writer) error {
	for {
		r, err := i.Run()
		if err != nil {
			return err
		}
		switch r.Status {
		case vm.StatusOutput:
			if ascii && r.Value >= 0 && r.Value < 128 {
				err = out.WriteByte(byte(r.Value))
			} else {
				// out of range values are scores and the like, print them as
				// numbers even in ASCII mode
				_, err = fmt.Fprintln(out, r.Value)
			}
			if err != nil {
				return err
			}
		case vm.StatusSuspended:
			if err = feed(i, in, out); err != nil {
				return err
			}
		case vm.StatusHalted:
			return nil
		}
	}
}

func save(i *vm.Instance, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	if err = i.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "save")
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		stdout.Flush()
		if err == nil && dump && i != nil {
			err = i.Dump(os.Stdout)
		}
		atExit(i, err)
	}()

	var inputs cellList
	flag.Var(&inputs, "i", "feed `cells` to the input queue (can be specified multiple times)")
	flag.BoolVar(&ascii, "a", false, "ASCII mode, bytes in and out instead of numbers")
	flag.BoolVar(&disasm, "d", false, "disassemble the program and exit")
	flag.BoolVar(&dump, "dump", false, "dump the machine state upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&noRaw, "noraw", false, "disable raw terminal IO in ASCII mode")
	flag.BoolVar(&trace, "trace", false, "trace executed instructions to stderr")
	flag.IntVar(&memSize, "size", 0, "preallocate machine memory to `cells` cells")
	flag.StringVar(&saveName, "save", "", "save a machine snapshot to `filename` upon exit")
	flag.StringVar(&restoreName, "restore", "", "resume from the machine snapshot in `filename`")
	flag.Parse()

	i, err = newMachine(flag.Arg(0), inputs)
	if err != nil {
		return
	}

	if disasm {
		err = asm.DisassembleAll(i.Mem, 0, stdout)
		return
	}

	// switch the terminal to raw mode for interactive ASCII programs
	if ascii && !noRaw {
		if tearDown, rerr := setRawIO(); rerr == nil {
			rawtty = true
			defer tearDown()
		}
	}

	err = run(i, bufio.NewReader(os.Stdin), stdout)
	if err == io.EOF {
		err = nil
	}
	if err == nil && saveName != "" {
		err = save(i, saveName)
	}
}
