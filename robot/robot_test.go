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

package robot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/intcode/robot"
	"github.com/db47h/intcode/vm"
)

type C = []vm.Cell

// script replays the painting walk from the hull painting example: the
// brain ignores its camera and emits seven fixed (color, turn) pairs.
var script = C{
	104, 1, 104, 0,
	104, 0, 104, 0,
	104, 1, 104, 0,
	104, 1, 104, 0,
	104, 0, 104, 1,
	104, 1, 104, 0,
	104, 1, 104, 0,
	99,
}

// echo paints every panel the color the camera sees and always turns right.
var echo = C{
	3, 50, 4, 50, 104, 1,
	3, 50, 4, 50, 104, 1,
	3, 50, 4, 50, 104, 1,
	3, 50, 4, 50, 104, 1,
	99,
}

func TestRobot_Paint(t *testing.T) {
	assert := assert.New(t)

	r, err := robot.New(script)
	if !assert.NoError(err) {
		return
	}
	g, err := r.Paint(robot.Black)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(6, g.Painted())
	assert.Equal(robot.White, g.At(robot.Point{X: 1, Y: -1}))
	// the start panel was repainted black on the fifth step
	assert.Equal(robot.Black, g.At(robot.Point{X: 0, Y: 0}))

	min, max := g.Bounds()
	assert.Equal(robot.Point{X: -1, Y: -1}, min)
	assert.Equal(robot.Point{X: 1, Y: 1}, max)

	assert.Equal("..#\n..#\n##.\n", g.Render())
}

// starting on a white panel: the seeded color must be visible to the camera
// and counted as painted.
func TestRobot_Paint_start(t *testing.T) {
	assert := assert.New(t)

	r, err := robot.New(echo)
	if !assert.NoError(err) {
		return
	}
	g, err := r.Paint(robot.White)
	if !assert.NoError(err) {
		return
	}

	// the robot circles right: origin, (1,0), (1,1), (0,1)
	assert.Equal(4, g.Painted())
	assert.Equal(robot.White, g.At(robot.Point{X: 0, Y: 0}))
	assert.Equal(robot.Black, g.At(robot.Point{X: 1, Y: 0}))
	assert.Equal(robot.Black, g.At(robot.Point{X: 1, Y: 1}))
	assert.Equal(robot.Black, g.At(robot.Point{X: 0, Y: 1}))
	assert.Equal("#.\n..\n", g.Render())
}

func TestRobot_Paint_halt(t *testing.T) {
	assert := assert.New(t)

	// brain halts after the color output: the paint sticks, no move happens
	r, err := robot.New(C{104, 1, 99})
	if !assert.NoError(err) {
		return
	}
	g, err := r.Paint(robot.Black)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(1, g.Painted())
	assert.Equal(robot.White, g.At(robot.Point{}))
}

func TestRobot_Paint_errors(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		prog C
		msg  string
	}{
		{"bad color", C{104, 7, 99}, "bad color 7"},
		{"bad turn", C{104, 1, 104, 5, 99}, "bad turn 5"},
		{"starved for color", C{3, 9, 3, 9, 4, 9, 99}, "suspended before color output"},
		{"starved for turn", C{104, 1, 3, 9, 3, 9, 99}, "suspended before turn output"},
	}
	for _, tt := range tests {
		r, err := robot.New(tt.prog)
		if !assert.NoError(err, tt.name) {
			continue
		}
		_, err = r.Paint(robot.Black)
		assert.ErrorIs(err, robot.ErrBrain, tt.name)
		assert.Contains(err.Error(), tt.msg, tt.name)
	}

	// brain program errors pass through untouched
	r, err := robot.New(C{77})
	if assert.NoError(err) {
		_, err = r.Paint(robot.Black)
		assert.ErrorIs(err, vm.ErrOpcode)
	}
}

func TestGrid(t *testing.T) {
	assert := assert.New(t)

	g := robot.NewGrid()
	assert.Equal(0, g.Painted())
	assert.Equal(robot.Black, g.At(robot.Point{X: 3, Y: -2}))
	assert.Equal("", g.Render())
	min, max := g.Bounds()
	assert.Equal(robot.Point{}, min)
	assert.Equal(robot.Point{}, max)

	g.Paint(robot.Point{X: 2, Y: 1}, robot.White)
	g.Paint(robot.Point{X: 0, Y: 0}, robot.Black)
	g.Paint(robot.Point{X: 2, Y: 1}, robot.White)
	assert.Equal(2, g.Painted())
	assert.Equal(robot.White, g.At(robot.Point{X: 2, Y: 1}))
	assert.Equal("...\n..#\n", g.Render())
}
