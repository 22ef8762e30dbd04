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

// Package amp wires Intcode machines into amplifier chains.
//
// Every amplifier runs its own copy of the same program. It first reads its
// phase setting, then an input signal, and outputs a new signal for the next
// amplifier. The first amplifier receives a signal of 0.
//
// In Series mode, each amplifier runs to completion before the next starts. In
// Feedback mode, the output of the last amplifier loops back to the first one
// and the machines are resumed in turn until the last one halts. MaxThrust
// searches all orderings of a set of phase settings for the highest final
// signal.
package amp
