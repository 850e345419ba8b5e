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

package vm

// Queue is an unbounded first-in first-out queue of cells, the channel type
// that connects machines to their callers and to each other. Pushing always
// succeeds and popping never blocks; the machine, not the queue, implements
// waiting, by suspending when its input queue runs empty.
//
// Handing the same *Queue to two machines, one as output and one as input,
// forms a pipe: cells pushed by the producer are immediately visible to the
// consumer. The queue is shared by reference, never copied.
//
// The machine is strictly cooperative and single threaded, and so are its
// queues: they are not safe for concurrent use.
type Queue struct {
	cells []Cell
}

// NewQueue returns a queue seeded with the given cells.
func NewQueue(cells ...Cell) *Queue {
	return &Queue{cells: cells}
}

// Push appends v at the back of the queue.
func (q *Queue) Push(v Cell) {
	q.cells = append(q.cells, v)
}

// Pop removes and returns the oldest cell. The second return value is false
// when the queue is empty.
func (q *Queue) Pop() (Cell, bool) {
	if len(q.cells) == 0 {
		return 0, false
	}
	v := q.cells[0]
	q.cells = q.cells[1:]
	return v, true
}

// Len returns the number of cells queued.
func (q *Queue) Len() int {
	return len(q.cells)
}

// Cells returns the queued cells, oldest first. The slice aliases the queue's
// backing store and is invalidated by the next Push or Pop.
func (q *Queue) Cells() []Cell {
	return q.cells
}
