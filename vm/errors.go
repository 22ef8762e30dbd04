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
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotSuspended is returned by Resume when the instance is not waiting for
// input. It signals misuse of the Instance API, never a fault encoded in the
// program.
var ErrNotSuspended = errors.New("machine not awaiting input")

// ErrStopped is returned by Run and Step when the instance has already halted
// or faulted.
var ErrStopped = errors.New("machine stopped")

// State is the execution state of an Instance.
type State int

// Instance states.
const (
	Running State = iota
	AwaitingInput
	Halted
	Faulted
)

var stateNames = [...]string{
	Running:       "running",
	AwaitingInput: "awaiting input",
	Halted:        "halted",
	Faulted:       "faulted",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// FaultKind classifies machine faults.
type FaultKind int

// Fault kinds.
const (
	IndexError FaultKind = iota + 1 // address out of memory bounds
	CodeError                       // unknown opcode or parameter mode
)

func (k FaultKind) String() string {
	switch k {
	case IndexError:
		return "index error"
	case CodeError:
		return "code error"
	default:
		return fmt.Sprintf("fault(%d)", int(k))
	}
}

// Fault is a terminal machine error. Memory and PC of the faulted Instance
// are left as they were when the fault occurred.
type Fault struct {
	Kind  FaultKind
	PC    int  // address of the faulting instruction
	Field Cell // instruction field at PC, if PC is within bounds
	Addr  Cell // offending address, for IndexError
}

func (f *Fault) Error() string {
	switch f.Kind {
	case IndexError:
		return fmt.Sprintf("%v @pc=%d: address %d out of bounds", f.Kind, f.PC, f.Addr)
	case CodeError:
		return fmt.Sprintf("%v @pc=%d: bad instruction %d", f.Kind, f.PC, f.Field)
	}
	return fmt.Sprintf("%v @pc=%d", f.Kind, f.PC)
}

// IsFault reports whether the cause of err is a machine fault of the given
// kind.
func IsFault(err error, kind FaultKind) bool {
	f, ok := errors.Cause(err).(*Fault)
	return ok && f.Kind == kind
}
