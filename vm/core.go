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

import "github.com/pkg/errors"

func (i *Instance) indexFault(addr Cell) *Fault {
	f := &Fault{Kind: IndexError, PC: i.PC, Addr: addr}
	if i.PC >= 0 && i.PC < len(i.Mem) {
		f.Field = i.Mem[i.PC]
	}
	return f
}

// load returns the value stored at addr.
func (i *Instance) load(addr Cell) (Cell, *Fault) {
	if addr < 0 || addr >= Cell(len(i.Mem)) {
		return 0, i.indexFault(addr)
	}
	return i.Mem[addr], nil
}

// param returns the raw value of the k-th parameter (1 based) of the current
// instruction.
func (i *Instance) param(k int) (Cell, *Fault) {
	return i.load(Cell(i.PC + k))
}

// read resolves the k-th parameter of ins as an operand value.
func (i *Instance) read(ins *instruction, k int) (Cell, *Fault) {
	raw, f := i.param(k)
	if f != nil {
		return 0, f
	}
	if ins.modes[k-1] == Immediate {
		return raw, nil
	}
	return i.load(raw)
}

// target resolves the k-th parameter as a write address. Write targets are
// always positional, whatever their mode digit says.
func (i *Instance) target(k int) (int, *Fault) {
	addr, f := i.param(k)
	if f != nil {
		return 0, f
	}
	if addr < 0 || addr >= Cell(len(i.Mem)) {
		return 0, i.indexFault(addr)
	}
	return int(addr), nil
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// exec executes the instruction at PC. On return, either the state is
// unchanged and PC points to the next instruction, or the state has been set
// to AwaitingInput or Halted with PC left at the current instruction. A fault
// leaves PC at the faulting instruction, with any memory write done by that
// instruction preserved.
func (i *Instance) exec() *Fault {
	if i.PC < 0 || i.PC >= len(i.Mem) {
		return i.indexFault(Cell(i.PC))
	}
	field := i.Mem[i.PC]
	ins, ok := decode(field)
	if !ok {
		return &Fault{Kind: CodeError, PC: i.PC, Field: field}
	}
	next := i.PC + ins.op.size()
	switch ins.op {
	case OpAdd, OpMul, OpLess, OpEquals:
		a, f := i.read(&ins, 1)
		if f != nil {
			return f
		}
		b, f := i.read(&ins, 2)
		if f != nil {
			return f
		}
		dst, f := i.target(3)
		if f != nil {
			return f
		}
		switch ins.op {
		case OpAdd:
			i.Mem[dst] = a + b
		case OpMul:
			i.Mem[dst] = a * b
		case OpLess:
			i.Mem[dst] = b2c(a < b)
		case OpEquals:
			i.Mem[dst] = b2c(a == b)
		}
	case OpIn:
		if len(i.input) == 0 {
			i.state = AwaitingInput
			return nil
		}
		dst, f := i.target(1)
		if f != nil {
			return f
		}
		i.Mem[dst] = i.input[0]
		i.input = i.input[1:]
	case OpOut:
		v, f := i.read(&ins, 1)
		if f != nil {
			return f
		}
		i.output = append(i.output, v)
	case OpJumpTrue, OpJumpFalse:
		c, f := i.read(&ins, 1)
		if f != nil {
			return f
		}
		addr, f := i.read(&ins, 2)
		if f != nil {
			return f
		}
		if (c != 0) == (ins.op == OpJumpTrue) {
			if addr < 0 || addr >= Cell(len(i.Mem)) {
				return i.indexFault(addr)
			}
			next = int(addr)
		}
	case OpHalt:
		i.state = Halted
		i.insCount++
		return nil
	}
	if next >= len(i.Mem) {
		return i.indexFault(Cell(next))
	}
	i.PC = next
	i.insCount++
	return nil
}

func (i *Instance) stopped(op string) error {
	if i.state == Halted || i.state == Faulted {
		return errors.Wrapf(ErrStopped, "%s: machine %v", op, i.state)
	}
	return nil
}

func (i *Instance) setFault(f *Fault) error {
	i.fault = f
	i.state = Faulted
	return f
}

// Step executes a single instruction.
//
// If the instruction is an IN and no input is queued, the machine enters the
// AwaitingInput state and PC is left unchanged. A fault is returned as a
// *Fault and is final: any further call to Step, Run or Resume returns an
// error whose cause is ErrStopped or ErrNotSuspended.
func (i *Instance) Step() error {
	if err := i.stopped("step"); err != nil {
		return err
	}
	i.state = Running
	if f := i.exec(); f != nil {
		return i.setFault(f)
	}
	return nil
}

// Run starts or continues execution of the VM until it halts, faults or needs
// input that has not been queued.
//
// Run returns nil when the machine halted or is awaiting input; check State
// to tell the two apart. If a fault occurs, the returned error is a *Fault and
// the PC will point to the instruction that triggered it.
func (i *Instance) Run() error {
	if err := i.stopped("run"); err != nil {
		return err
	}
	i.state = Running
	for i.state == Running {
		if f := i.exec(); f != nil {
			return i.setFault(f)
		}
	}
	return nil
}

// Resume supplies v to the pending IN instruction of a suspended machine and
// continues execution as Run does. The output log is kept and extended.
//
// Calling Resume on a machine that is not in the AwaitingInput state returns
// an error whose cause is ErrNotSuspended.
func (i *Instance) Resume(v Cell) error {
	if i.state != AwaitingInput {
		return errors.Wrapf(ErrNotSuspended, "resume: machine %v", i.state)
	}
	i.input = append(i.input, v)
	return i.Run()
}
