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

package amp_test

import (
	"context"
	"fmt"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
)

func ExampleMaxThrust() {
	prog, err := vm.ParseString("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27," +
		"4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	if err != nil {
		panic(err)
	}
	r, err := amp.MaxThrust(context.Background(), prog, []vm.Cell{5, 6, 7, 8, 9}, amp.Feedback)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Signal, r.Phases)

	// Output:
	// 139629729 [9 8 7 6 5]
}

// Drives a feedback loop by hand with Run and Resume.
func ExampleFeedback() {
	prog, _ := vm.ParseString("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27," +
		"4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	phases := []vm.Cell{9, 8, 7, 6, 5}

	amps := make([]*vm.Instance, len(phases))
	for n, p := range phases {
		amps[n], _ = vm.Run(prog, vm.Input(p))
	}
	var signal vm.Cell
	for amps[len(amps)-1].State() != vm.Halted {
		for _, i := range amps {
			if err := i.Resume(signal); err != nil {
				panic(err)
			}
			signal, _ = i.LastOutput()
		}
	}
	fmt.Println(signal)

	s, _ := amp.Feedback(prog, phases)
	fmt.Println(s)

	// Output:
	// 139629729
	// 139629729
}
