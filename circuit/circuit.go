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

// Package circuit composes Intcode machines into amplifier chains.
//
// A chain runs one machine per phase setting, all loaded with the same
// program. Serial wires the machines output to input in a straight line and
// pushes a seed signal through; Feedback closes the line into a ring so that
// the last machine feeds the first one again, which keeps the signal
// circulating until the program decides to halt. MaxSignal searches all
// orderings of a phase set for the one yielding the strongest signal.
//
// Chains can also be described in a TOML plan file, see Plan.
package circuit

import (
	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

var (
	// ErrNoOutput is returned when a chain halts without having produced
	// any output signal.
	ErrNoOutput = errors.New("no output signal")

	// ErrStarved is returned when no machine in a chain can make progress:
	// the ones still running are all suspended waiting for input that no
	// other machine will produce.
	ErrStarved = errors.New("all machines starved")
)

// Serial runs one machine per phase setting in a chain where each machine's
// output signal becomes the next machine's input. Machine k receives
// phases[k] as its first input value and the signal as its second; the
// first machine receives the seed signal given as argument. Serial returns
// the last output of the last machine.
func Serial(prog []vm.Cell, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	for k, phase := range phases {
		i, err := vm.New(prog)
		if err != nil {
			return 0, err
		}
		out, err := drive(i, phase, signal)
		if err != nil {
			return 0, errors.Wrapf(err, "amp %d", k)
		}
		signal = out
	}
	return signal, nil
}

// drive runs i to completion on the given inputs and returns its last
// output. A machine that suspends mid-run wants more input than the chain
// provides and fails with ErrStarved.
func drive(i *vm.Instance, in ...vm.Cell) (vm.Cell, error) {
	r, err := i.Run(in...)
	for err == nil {
		switch r.Status {
		case vm.StatusHalted:
			if out, ok := i.LastOutput(); ok {
				return out, nil
			}
			return 0, ErrNoOutput
		case vm.StatusSuspended:
			return 0, ErrStarved
		}
		r, err = i.Run()
	}
	return 0, err
}

// Feedback runs one machine per phase setting in a ring: machine k's output
// queue is machine k+1's input queue and the last machine feeds back into
// the first. Every input queue is seeded with its machine's phase setting,
// the seed signal is pushed to the first machine, and the machines then run
// round robin, each consuming the signals the previous one left in their
// shared queue. Feedback returns the last output of the last machine once
// it halts.
func Feedback(prog []vm.Cell, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	n := len(phases)
	if n == 0 {
		return signal, nil
	}
	qs := make([]*vm.Queue, n)
	for k := range qs {
		qs[k] = vm.NewQueue(phases[k])
	}
	amps := make([]*vm.Instance, n)
	for k := range amps {
		a, err := vm.New(prog, vm.Input(qs[k]), vm.Output(qs[(k+1)%n]))
		if err != nil {
			return 0, err
		}
		amps[k] = a
	}
	qs[0].Push(signal)

	for {
		progress := false
		for k, a := range amps {
			if a.Halted() {
				continue
			}
			r, err := a.Run()
			if err != nil {
				return 0, errors.Wrapf(err, "amp %d", k)
			}
			switch {
			case r.Status == vm.StatusOutput:
				progress = true
			case r.Status == vm.StatusHalted && k == n-1:
				if out, ok := a.LastOutput(); ok {
					return out, nil
				}
				return 0, ErrNoOutput
			}
		}
		if !progress {
			return 0, ErrStarved
		}
	}
}

// MaxSignal runs the chain once per permutation of the given phase settings
// and returns the strongest signal found along with the phase order that
// produced it. With loop set the machines are wired with Feedback, otherwise
// with Serial. The phases argument is left untouched.
func MaxSignal(prog []vm.Cell, phases []vm.Cell, signal vm.Cell, loop bool) (best vm.Cell, order []vm.Cell, err error) {
	run := Serial
	if loop {
		run = Feedback
	}
	perm := append([]vm.Cell(nil), phases...)
	err = permute(perm, 0, func(p []vm.Cell) error {
		out, err := run(prog, p, signal)
		if err != nil {
			return err
		}
		if order == nil || out > best {
			best = out
			order = append(order[:0], p...)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return best, order, nil
}

// permute calls f with every permutation of p, generated in place by
// recursive swapping.
func permute(p []vm.Cell, k int, f func([]vm.Cell) error) error {
	if k == len(p) {
		return f(p)
	}
	for j := k; j < len(p); j++ {
		p[k], p[j] = p[j], p[k]
		if err := permute(p, k+1, f); err != nil {
			return err
		}
		p[k], p[j] = p[j], p[k]
	}
	return nil
}
