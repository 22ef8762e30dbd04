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


// Package assist searches for the pair of inputs of a gravity assist program
// that makes it produce a given value.
//
// The program's inputs are the values at addresses 1 and 2, called noun and
// verb. Its output is the value left at address 0 when it halts.
package assist

import (
	"github.com/codahale/metrics"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// MaxInput is the highest value tried for the noun and the verb.
const MaxInput = 99

// ErrNeedsInput is returned when a program waits for input.
var ErrNeedsInput = errors.New("program waits for input")

var (
	runs   = metrics.Counter("assist.runs")
	faults = metrics.Counter("assist.faults")
)

// Patch returns a copy of prog with noun and verb stored at addresses 1 and 2.
func Patch(prog vm.Memory, noun, verb vm.Cell) (vm.Memory, error) {
	if len(prog) < 3 {
		return nil, errors.Errorf("program too short (%d cells)", len(prog))
	}
	m := prog.Clone()
	m[1], m[2] = noun, verb
	return m, nil
}

// Output runs prog with the given noun and verb and returns the value at
// address 0 once it halts. If the program executes an IN instruction, the
// returned error's cause is ErrNeedsInput.
func Output(prog vm.Memory, noun, verb vm.Cell) (vm.Cell, error) {
	m, err := Patch(prog, noun, verb)
	if err != nil {
		return 0, err
	}
	i, err := vm.Run(m)
	runs.Add()
	if err != nil {
		faults.Add()
		return 0, err
	}
	if i.State() != vm.Halted {
		return 0, errors.Wrapf(ErrNeedsInput, "@pc=%d", i.PC)
	}
	return i.Mem[0], nil
}

// Find tries every noun and verb between 0 and MaxInput and returns the pairs,
// as [noun, verb], for which prog outputs want. Pairs are sorted by noun, then
// verb.
//
// Runs that fault or wait for input are skipped. prog is not modified.
func Find(prog vm.Memory, want vm.Cell) ([][2]vm.Cell, error) {
	if len(prog) < 3 {
		return nil, errors.Errorf("program too short (%d cells)", len(prog))
	}
	var found [][2]vm.Cell
	for noun := vm.Cell(0); noun <= MaxInput; noun++ {
		for verb := vm.Cell(0); verb <= MaxInput; verb++ {
			v, err := Output(prog, noun, verb)
			switch {
			case vm.IsFault(err, vm.IndexError), vm.IsFault(err, vm.CodeError):
				continue
			case errors.Cause(err) == ErrNeedsInput:
				continue
			case err != nil:
				return nil, errors.Wrapf(err, "noun %d, verb %d", noun, verb)
			}
			if v == want {
				found = append(found, [2]vm.Cell{noun, verb})
			}
		}
	}
	return found, nil
}
