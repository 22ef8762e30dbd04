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

// Mode is a parameter addressing mode.
type Mode int8

// Parameter modes.
const (
	Position  Mode = iota // the parameter is the address of the operand
	Immediate             // the parameter is the operand
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	default:
		return "unknown mode"
	}
}

// maxField is the largest instruction field: a two digit opcode and three
// mode digits.
const maxField = 99999

type instruction struct {
	op    Opcode
	modes [3]Mode
}

// decode splits an instruction field into its opcode and parameter modes.
// Mode digits are read least significant first, one per parameter. It reports
// false if the opcode is unknown or if any mode digit is neither 0 nor 1.
func decode(field Cell) (ins instruction, ok bool) {
	if field < 0 || field > maxField {
		return ins, false
	}
	ins.op = Opcode(field % 100)
	if _, ok = opcodes[ins.op]; !ok {
		return ins, false
	}
	m := field / 100
	for k := range ins.modes {
		switch m % 10 {
		case 0:
			ins.modes[k] = Position
		case 1:
			ins.modes[k] = Immediate
		default:
			return ins, false
		}
		m /= 10
	}
	return ins, true
}
