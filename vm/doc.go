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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat sequence of signed integers used as both code
// and data. Each instruction starts with a field whose two low order decimal
// digits are the opcode. The digits above select the addressing mode of each
// parameter, least significant first: 0 for position mode (the parameter is an
// address) and 1 for immediate mode (the parameter is the value itself).
// Parameters that an instruction writes to are always addresses.
//
//	opcode	asm	params	description
//	------	---	------	------------------------------------------------------
//	1	add	a b c	mem[c] = a + b
//	2	mul	a b c	mem[c] = a * b
//	3	in	a	mem[a] = next input value
//	4	out	a	append a to the output log
//	5	jt	a b	jump to b if a != 0
//	6	jf	a b	jump to b if a == 0
//	7	lt	a b c	mem[c] = 1 if a < b, 0 otherwise
//	8	eq	a b c	mem[c] = 1 if a == b, 0 otherwise
//	99	halt		stop
//
// An IN instruction with no input available does not block: Run returns with
// the instance in the AwaitingInput state, and Resume supplies the value and
// continues from the same instruction. Several instances can thus be wired
// together by the caller, each output being fed as input to another instance.
//
// Out of bounds addresses and malformed instructions stop the machine with a
// *Fault. Faults are final.
package vm
