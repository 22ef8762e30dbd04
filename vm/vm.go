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

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      Memory // Memory, owned by the instance
	state    State
	fault    *Fault
	input    []Cell
	output   []Cell
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input queues the given values. IN instructions consume queued values in
// order and the machine only suspends once the queue is empty.
func Input(values ...Cell) Option {
	return func(i *Instance) error {
		i.input = append(i.input, values...)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance with the PC set to 0.
//
// The instance works on a private copy of mem, so the same program can be used
// to create any number of independent instances.
//
// Options will be set by calling SetOptions.
func New(mem Memory, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: mem.Clone(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Run creates a new instance for mem and runs it. See Instance.Run.
//
// The returned instance is nil only if one of the options failed.
func Run(mem Memory, opts ...Option) (*Instance, error) {
	i, err := New(mem, opts...)
	if err != nil {
		return nil, err
	}
	return i, i.Run()
}

// State returns the current execution state.
func (i *Instance) State() State {
	return i.state
}

// Fault returns the fault that stopped the machine, or nil if the machine is
// not in the Faulted state.
func (i *Instance) Fault() *Fault {
	return i.fault
}

// Output returns all values written by OUT instructions since the instance was
// created, across suspensions. The returned slice must not be modified.
func (i *Instance) Output() []Cell {
	return i.output
}

// LastOutput returns the most recent output value. ok is false if the machine
// has not produced any output yet.
func (i *Instance) LastOutput() (v Cell, ok bool) {
	if len(i.output) == 0 {
		return 0, false
	}
	return i.output[len(i.output)-1], true
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
