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

package amp

import (
	"github.com/codahale/metrics"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Func computes the final signal of an amplifier chain running prog with the
// given phase settings, one per amplifier. Series and Feedback are Funcs.
//
// A Func must not modify prog.
type Func func(prog vm.Memory, phases []vm.Cell) (vm.Cell, error)

var (
	machines     = metrics.Counter("amp.machines")
	instructions = metrics.Counter("amp.instructions")
	faults       = metrics.Counter("amp.faults")
)

func account(amps ...*vm.Instance) {
	for _, i := range amps {
		if i == nil {
			continue
		}
		machines.Add()
		instructions.AddN(uint64(i.InstructionCount()))
		if i.State() == vm.Faulted {
			faults.Add()
		}
	}
}

// Series runs one amplifier per phase setting, in order. Each amplifier gets
// its phase setting and the previous signal as input and must halt. The last
// value output by an amplifier is the signal passed to the next one.
func Series(prog vm.Memory, phases []vm.Cell) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errors.New("no amplifiers")
	}
	var signal vm.Cell
	for n, p := range phases {
		i, err := vm.Run(prog, vm.Input(p, signal))
		account(i)
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", n)
		}
		if i.State() != vm.Halted {
			return 0, errors.Errorf("amplifier %d: %v @pc=%d", n, i.State(), i.PC)
		}
		v, ok := i.LastOutput()
		if !ok {
			return 0, errors.Errorf("amplifier %d: no output", n)
		}
		signal = v
	}
	return signal, nil
}

// Feedback runs one amplifier per phase setting in a loop: the signal output
// by the last amplifier is fed back to the first one. Each amplifier is started
// with its phase setting, then resumed in turn with the most recent signal.
// The loop ends when the last amplifier halts and its final output is
// returned.
//
// Every amplifier must output at least one value each time it is resumed. An
// amplifier that halts before the last one makes the loop fail with an error
// whose cause is vm.ErrNotSuspended.
func Feedback(prog vm.Memory, phases []vm.Cell) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errors.New("no amplifiers")
	}
	amps := make([]*vm.Instance, len(phases))
	defer func() { account(amps...) }()
	for n, p := range phases {
		i, err := vm.Run(prog, vm.Input(p))
		amps[n] = i
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", n)
		}
	}
	var signal vm.Cell
	last := amps[len(amps)-1]
	for round := 0; ; round++ {
		for n, i := range amps {
			seen := len(i.Output())
			if err := i.Resume(signal); err != nil {
				return 0, errors.Wrapf(err, "amplifier %d, round %d", n, round)
			}
			if len(i.Output()) == seen {
				return 0, errors.Errorf("amplifier %d, round %d: no output", n, round)
			}
			signal, _ = i.LastOutput()
		}
		if last.State() == vm.Halted {
			log.Tracef("feedback %v: %d rounds, signal %d", phases, round+1, signal)
			return signal, nil
		}
	}
}
