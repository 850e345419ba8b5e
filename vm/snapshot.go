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

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// snapshot is the CBOR wire form of a machine instance.
type snapshot struct {
	PC     int    `cbor:"pc"`
	Base   Cell   `cbor:"base"`
	Mem    []Cell `cbor:"mem"`
	In     []Cell `cbor:"in"`
	Out    []Cell `cbor:"out"`
	Halted bool   `cbor:"halted"`
	NumOut int64  `cbor:"nout"`
	Last   Cell   `cbor:"last"`
	Steps  int64  `cbor:"steps"`
}

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Snapshot serializes the complete machine state to w: registers, memory, the
// contents of both queues, and the halt and output bookkeeping. A machine
// restored from the snapshot runs on bit-identically from this point. The
// encoding is canonical CBOR, so snapshots of identical states are byte
// identical.
func (i *Instance) Snapshot(w io.Writer) error {
	s := snapshot{
		PC:     i.PC,
		Base:   i.Base,
		Mem:    i.Mem,
		In:     i.In.Cells(),
		Out:    i.Out.Cells(),
		Halted: i.halted,
		NumOut: i.outCount,
		Last:   i.lastOut,
		Steps:  i.insCount,
	}
	b, err := cborEnc.Marshal(&s)
	if err != nil {
		return errors.Wrap(err, "snapshot: encode")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "snapshot: write")
}

// Restore rebuilds a machine from a snapshot taken with Snapshot. The
// restored machine gets fresh private queues seeded with the saved contents;
// callers composing machines must re-wire the In and Out fields themselves.
func Restore(r io.Reader) (*Instance, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "restore: read")
	}
	var s snapshot
	if err = cbor.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrap(err, "restore: decode")
	}
	if s.PC < 0 {
		return nil, errors.Wrapf(ErrAddress, "restore: pc=%d", s.PC)
	}
	return &Instance{
		PC:       s.PC,
		Base:     s.Base,
		Mem:      s.Mem,
		In:       NewQueue(s.In...),
		Out:      NewQueue(s.Out...),
		halted:   s.Halted,
		outCount: s.NumOut,
		lastOut:  s.Last,
		insCount: s.Steps,
	}, nil
}
