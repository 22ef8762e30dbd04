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

import "strconv"

// Opcode is the instruction selector held in the two low order decimal digits
// of an instruction field.
type Opcode Cell

// Intcode VM Opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpTrue
	OpJumpFalse
	OpLess
	OpEquals
	OpHalt Opcode = 99
)

type opInfo struct {
	name   string
	params int  // number of parameters, including the write target
	write  bool // last parameter is a write target
}

var opcodes = map[Opcode]opInfo{
	OpAdd:       {"add", 3, true},
	OpMul:       {"mul", 3, true},
	OpIn:        {"in", 1, true},
	OpOut:       {"out", 1, false},
	OpJumpTrue:  {"jt", 2, false},
	OpJumpFalse: {"jf", 2, false},
	OpLess:      {"lt", 3, true},
	OpEquals:    {"eq", 3, true},
	OpHalt:      {"halt", 0, false},
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// size returns the number of cells taken by an instruction with opcode op.
func (op Opcode) size() int {
	return opcodes[op].params + 1
}
