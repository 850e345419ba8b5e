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

// Package robot drives a hull painting robot with an Intcode brain.
//
// The robot sits on an unbounded grid of panels, all black to start with.
// Each step it sends the color of the panel under it to the brain, paints
// that panel the color the brain answers, then turns left or right as the
// brain directs and moves forward one panel, until the brain halts.
package robot

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// ErrBrain is the cause of all errors reported when a brain program breaks
// the camera/paint/turn protocol.
var ErrBrain = errors.New("brain out of protocol")

// Color of a hull panel.
type Color vm.Cell

// Panel colors.
const (
	Black Color = iota
	White
)

// A Point is a panel position on the hull, x growing right and y growing
// down.
type Point struct {
	X, Y int
}

// A Grid records panel colors on the hull, one entry per panel painted at
// least once. Panels never painted read Black.
type Grid struct {
	panels map[Point]Color
}

// NewGrid returns an empty, all black grid.
func NewGrid() *Grid {
	return &Grid{panels: make(map[Point]Color)}
}

// At returns the color of the panel at p.
func (g *Grid) At(p Point) Color {
	return g.panels[p]
}

// Paint sets the color of the panel at p.
func (g *Grid) Paint(p Point, c Color) {
	g.panels[p] = c
}

// Painted returns the number of panels painted at least once, whatever their
// current color.
func (g *Grid) Painted() int {
	return len(g.panels)
}

// Bounds returns the smallest rectangle covering all painted panels. With
// nothing painted it returns two zero points.
func (g *Grid) Bounds() (min, max Point) {
	first := true
	for p := range g.panels {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Render draws the painted area as text, one row per line, white panels as
// '#' and black ones as '.'.
func (g *Grid) Render() string {
	if len(g.panels) == 0 {
		return ""
	}
	min, max := g.Bounds()
	var b strings.Builder
	b.Grow((max.X - min.X + 2) * (max.Y - min.Y + 1))
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if g.panels[Point{x, y}] == White {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// headings, clockwise from up
var moves = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// A Robot paints a hull grid under control of an Intcode brain.
type Robot struct {
	brain *vm.Instance
	grid  *Grid
	pos   Point
	dir   int // index into moves
}

// New builds a robot around the given brain program. The robot starts at the
// grid origin, facing up.
func New(prog []vm.Cell) (*Robot, error) {
	brain, err := vm.New(prog)
	if err != nil {
		return nil, err
	}
	return &Robot{brain: brain, grid: NewGrid()}, nil
}

// Paint drops the robot on an all black hull and runs the brain until it
// halts, then returns the painted grid. A start color other than Black is
// painted on the panel under the robot before the first step and counts as
// painted.
//
// The brain must answer each camera input with a color output and a turn
// output, 0 or 1 each; anything else fails with an error caused by ErrBrain.
// Errors raised by the brain program itself are passed through.
func (r *Robot) Paint(start Color) (*Grid, error) {
	if start != Black {
		r.grid.Paint(r.pos, start)
	}
	for {
		res, err := r.brain.Run(vm.Cell(r.grid.At(r.pos)))
		if err != nil {
			return nil, err
		}
		if res.Status == vm.StatusHalted {
			return r.grid, nil
		}
		if res.Status == vm.StatusSuspended {
			return nil, errors.Wrap(ErrBrain, "suspended before color output")
		}
		if res.Value != vm.Cell(Black) && res.Value != vm.Cell(White) {
			return nil, errors.Wrapf(ErrBrain, "bad color %d", res.Value)
		}
		r.grid.Paint(r.pos, Color(res.Value))

		res, err = r.brain.Run()
		if err != nil {
			return nil, err
		}
		if res.Status == vm.StatusHalted {
			// brain quit mid step with the paint already applied
			return r.grid, nil
		}
		if res.Status == vm.StatusSuspended {
			return nil, errors.Wrap(ErrBrain, "suspended before turn output")
		}
		switch res.Value {
		case 0:
			r.dir = (r.dir + 3) % 4
		case 1:
			r.dir = (r.dir + 1) % 4
		default:
			return nil, errors.Wrapf(ErrBrain, "bad turn %d", res.Value)
		}
		r.pos.X += moves[r.dir].X
		r.pos.Y += moves[r.dir].Y
	}
}
