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

package circuit

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// Chain wiring modes in a Plan.
const (
	ModeSerial   = "serial"
	ModeFeedback = "feedback"
)

// A Plan describes an amplifier chain experiment in a TOML file:
//
//	program = "amp.txt"	# Intcode program, relative to the plan file
//	mode = "feedback"	# "serial" (the default) or "feedback"
//	phases = [5, 6, 7, 8, 9]
//	signal = 0		# seed signal, default 0
//	search = true		# try all phase orderings, keep the best
type Plan struct {
	Program string    `toml:"program"`
	Mode    string    `toml:"mode"`
	Phases  []vm.Cell `toml:"phases"`
	Signal  vm.Cell   `toml:"signal"`
	Search  bool      `toml:"search"`

	// Dir is the directory containing the plan file, set at load time.
	// Relative program paths resolve against it.
	Dir string `toml:"-"`
}

// LoadPlan reads and validates the plan in the named TOML file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load plan")
	}
	var p Plan
	if err = toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "parse plan %s", path)
	}
	p.Dir = filepath.Dir(path)
	if p.Mode == "" {
		p.Mode = ModeSerial
	}
	if p.Mode != ModeSerial && p.Mode != ModeFeedback {
		return nil, errors.Errorf("plan %s: unknown mode %q", path, p.Mode)
	}
	if p.Program == "" {
		return nil, errors.Errorf("plan %s: missing program", path)
	}
	if len(p.Phases) == 0 {
		return nil, errors.Errorf("plan %s: missing phases", path)
	}
	return &p, nil
}

// Run loads the plan's program and runs the chain it describes. It returns
// the resulting signal and the phase order that produced it, which is the
// plan's own phase list unless Search is set.
func (p *Plan) Run() (vm.Cell, []vm.Cell, error) {
	prog, err := asm.Load(p.programPath())
	if err != nil {
		return 0, nil, err
	}
	if p.Search {
		return MaxSignal(prog, p.Phases, p.Signal, p.Mode == ModeFeedback)
	}
	run := Serial
	if p.Mode == ModeFeedback {
		run = Feedback
	}
	out, err := run(prog, p.Phases, p.Signal)
	if err != nil {
		return 0, nil, err
	}
	return out, p.Phases, nil
}

func (p *Plan) programPath() string {
	if filepath.IsAbs(p.Program) || p.Dir == "" {
		return p.Program
	}
	return filepath.Join(p.Dir, p.Program)
}
