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

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func TestRun_interactive(t *testing.T) {
	i, err := vm.New(vm.Memory{4, 0, 3, 0, 4, 0, 3, 0, 4, 0, 99}, vm.Input(5))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	prompts := 0
	err = run(i, strings.NewReader("\n  -7 \n"), &out, func() error { prompts++; return nil })
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out.String() != "4\n5\n-7\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
	if prompts != 1 {
		t.Errorf("Expected 1 prompt, got %d", prompts)
	}
}

func TestRun_inputClosed(t *testing.T) {
	i, err := vm.New(vm.Memory{3, 0, 99})
	if err != nil {
		t.Fatal(err)
	}
	err = run(i, strings.NewReader(""), &bytes.Buffer{}, nil)
	if errors.Cause(err) != io.ErrUnexpectedEOF {
		t.Fatalf("Expected unexpected EOF, got %v", err)
	}
}

func TestRun_promptError(t *testing.T) {
	i, err := vm.New(vm.Memory{3, 0, 99})
	if err != nil {
		t.Fatal(err)
	}
	errTTY := errors.New("tty gone")
	err = run(i, strings.NewReader("1\n"), &bytes.Buffer{}, func() error { return errTTY })
	if errors.Cause(err) != errTTY {
		t.Fatalf("Expected %v, got %v", errTTY, err)
	}
	if i.State() != vm.AwaitingInput {
		t.Errorf("Expected machine to still wait for input, got %v", i.State())
	}
}

func TestFind(t *testing.T) {
	var out bytes.Buffer
	prog := vm.Memory{1, 0, 0, 3, 2, 3, 11, 0, 99, 30, 40, 50}
	if err := find(prog, 3500, &out); err != nil {
		t.Fatalf("%+v", err)
	}
	if exp := "noun=9 verb=10 (910)\nnoun=10 verb=9 (1009)\n"; out.String() != exp {
		t.Errorf("Expected %q, got %q", exp, out.String())
	}
	if err := find(prog, -1, &out); err == nil {
		t.Error("Unexpected nil error when nothing matches")
	}
}

func TestPrintStats(t *testing.T) {
	executed.AddN(3)
	var out bytes.Buffer
	printStats(&out)
	if !strings.Contains(out.String(), "intcode.instructions: ") {
		t.Errorf("Counter missing from %q", out.String())
	}
}

func TestRun_fault(t *testing.T) {
	i, err := vm.New(vm.Memory{104, 12, 42})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err = run(i, strings.NewReader(""), &out, nil)
	if !vm.IsFault(err, vm.CodeError) {
		t.Fatalf("Expected code error, got %v", err)
	}
	if out.String() != "12\n" {
		t.Errorf("Output before fault not printed: %q", out.String())
	}
}

func TestFlags(t *testing.T) {
	var inputs cellList
	for _, s := range []string{"1", " -2"} {
		if err := inputs.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	if err := inputs.Set("x"); err == nil {
		t.Error("Unexpected nil error")
	}
	if len(inputs) != 2 || inputs[0] != 1 || inputs[1] != -2 {
		t.Errorf("Unexpected inputs %d", inputs)
	}

	var want optCell
	if want.String() != "" {
		t.Errorf("Unexpected value %q for unset flag", want.String())
	}
	if err := want.Set("19690720"); err != nil || !want.set || want.v != 19690720 {
		t.Errorf("Unexpected flag state %+v, err %v", want, err)
	}
	if err := (&optCell{}).Set("1e3"); err == nil {
		t.Error("Unexpected nil error")
	}

	var patches patchList
	for _, s := range []string{"1=12", "2 = 2"} {
		if err := patches.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	for _, s := range []string{"12", "a=1", "1=b"} {
		if err := patches.Set(s); err == nil {
			t.Errorf("%q: unexpected nil error", s)
		}
	}
	mem := vm.Memory{1, 0, 0, 3, 99}
	if err := patches.apply(mem); err != nil {
		t.Fatal(err)
	}
	if mem[1] != 12 || mem[2] != 2 {
		t.Errorf("Unexpected memory %d", mem)
	}
	if err := (patchList{{5, 1}}).apply(mem); err == nil {
		t.Error("Unexpected nil error for out of bounds patch")
	}
}
