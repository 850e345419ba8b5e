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
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/vm"
)

// maxErrors is the cap on reported parse errors. Parsing a binary file by
// mistake yields one error per byte, there is no point in listing them all.
const maxErrors = 10

// An ErrPos is a single parse error and its position in the source.
type ErrPos struct {
	Pos scanner.Position
	Msg string
}

func (e ErrPos) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Parse. It lists all errors found in
// the source, in order of occurrence, capped at 10 entries.
type ErrAsm []ErrPos

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

type parser struct {
	s     scanner.Scanner
	cells []vm.Cell
	errs  ErrAsm
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrPos{Pos: pos, Msg: msg})
	}
}

// parse states. A program is a list of integers separated by commas or
// newlines; blank lines and Go style comments are skipped.
const (
	wantCell = iota
	wantSep
)

func (p *parser) parse(name string, r io.Reader) ([]vm.Cell, error) {
	s := &p.s
	s.Init(r)
	s.Filename = name
	s.Mode = scanner.ScanInts | scanner.ScanComments | scanner.SkipComments
	s.Whitespace = 1<<'\t' | 1<<'\r' | 1<<' '
	s.Error = func(s *scanner.Scanner, msg string) {
		pos := s.Position
		if !pos.IsValid() {
			pos = s.Pos()
		}
		p.error(pos, msg)
	}

	var (
		state  = wantCell
		neg    = false // pending '-' sign
		negPos scanner.Position
	)
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if len(p.errs) >= maxErrors {
			break
		}
		switch tok {
		case scanner.Int:
			if state == wantSep {
				p.error(s.Position, "missing separator before cell")
			}
			text := s.TokenText()
			v, err := strconv.ParseInt(text, 0, 64)
			if err != nil {
				msg := err.Error()
				if ne, ok := err.(*strconv.NumError); ok {
					msg = ne.Err.Error()
				}
				p.error(s.Position, "bad cell "+strconv.Quote(text)+": "+msg)
			} else {
				if neg {
					v = -v
				}
				p.cells = append(p.cells, vm.Cell(v))
			}
			neg = false
			state = wantSep
		case '-':
			if state == wantSep {
				p.error(s.Position, "missing separator before cell")
				state = wantCell
			}
			if neg {
				p.error(negPos, "dangling sign")
			}
			neg = true
			negPos = s.Position
		case ',':
			if neg {
				p.error(negPos, "dangling sign")
				neg = false
			}
			if state == wantCell {
				p.error(s.Position, "empty cell")
			}
			state = wantCell
		case '\n':
			// newlines separate cells as well, and blank lines are fine
			if neg {
				p.error(negPos, "dangling sign")
				neg = false
			}
			state = wantCell
		default:
			p.error(s.Position, "unexpected "+scanner.TokenString(tok))
		}
	}
	if neg {
		p.error(negPos, "dangling sign")
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.cells, nil
}
