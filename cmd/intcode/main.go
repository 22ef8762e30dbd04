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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/codahale/metrics"
	"github.com/db47h/intcode/assist"
	"github.com/db47h/intcode/vm"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, vm.Cell(n))
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type patch struct {
	addr  int
	value vm.Cell
}

type patchList []patch

func (l *patchList) String() string { return "" }
func (l *patchList) Set(s string) error {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 {
		return errors.Errorf("%q: expected addr=value", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(kv[0]))
	if err != nil {
		return errors.Wrap(err, "bad address")
	}
	v, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 10, 64)
	if err != nil {
		return errors.Wrap(err, "bad value")
	}
	*l = append(*l, patch{addr, vm.Cell(v)})
	return nil
}
func (l *patchList) Get() interface{} { return *l }

// optCell is a Cell flag that remembers whether it has been set.
type optCell struct {
	v   vm.Cell
	set bool
}

func (c *optCell) String() string {
	if !c.set {
		return ""
	}
	return strconv.FormatInt(int64(c.v), 10)
}

func (c *optCell) Set(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return err
	}
	c.v, c.set = vm.Cell(n), true
	return nil
}

func (c *optCell) Get() interface{} { return c.v }

func (l patchList) apply(mem vm.Memory) error {
	for _, p := range l {
		if p.addr < 0 || p.addr >= len(mem) {
			return errors.Errorf("patch address %d out of bounds (memory size %d)", p.addr, len(mem))
		}
		mem[p.addr] = p.value
	}
	return nil
}

// config holds the defaults read from INTCODE_* environment variables.
type config struct {
	Image    string `default:"input"`
	LogLevel string `default:"info"`
}

var (
	cfg         config
	debug       bool
	dump        bool
	stats       bool
	outFileName string
	log         = btclog.Disabled
	executed    = metrics.Counter("intcode.instructions")
)

// readCell reads the next non blank line from sc and parses it as a Cell.
func readCell(sc *bufio.Scanner) (vm.Cell, error) {
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "bad input %q", s)
		}
		return vm.Cell(n), nil
	}
	if err := sc.Err(); err != nil {
		return 0, errors.Wrap(err, "read failed")
	}
	return 0, errors.Wrap(io.ErrUnexpectedEOF, "input closed")
}

// run runs i to completion. Output values are written to w as soon as they are
// produced, one per line. Whenever the machine needs input, prompt is called,
// if not nil, and a value is read from r.
func run(i *vm.Instance, r io.Reader, w io.Writer, prompt func() error) error {
	sc := bufio.NewScanner(r)
	printed := 0
	err := i.Run()
	for {
		out := i.Output()
		for ; printed < len(out); printed++ {
			if _, werr := fmt.Fprintln(w, out[printed]); werr != nil {
				return errors.Wrap(werr, "write failed")
			}
		}
		if err != nil || i.State() != vm.AwaitingInput {
			return err
		}
		log.Tracef("awaiting input @pc=%d", i.PC)
		if prompt != nil {
			if perr := prompt(); perr != nil {
				return errors.Wrap(perr, "prompt failed")
			}
		}
		v, rerr := readCell(sc)
		if rerr != nil {
			return errors.Wrapf(rerr, "input @pc=%d", i.PC)
		}
		err = i.Resume(v)
	}
}

func setupLog() error {
	backend := btclog.NewBackend(os.Stderr)
	log = backend.Logger("ICOD")
	lvl, ok := btclog.LevelFromString(cfg.LogLevel)
	if !ok {
		return errors.Errorf("unknown log level %q", cfg.LogLevel)
	}
	log.SetLevel(lvl)
	return nil
}

// find prints every noun/verb pair for which mem outputs want, one per line.
func find(mem vm.Memory, want vm.Cell, w io.Writer) error {
	pairs, err := assist.Find(mem, want)
	if err != nil {
		return err
	}
	log.Debugf("%d pairs output %d", len(pairs), want)
	if len(pairs) == 0 {
		return errors.Errorf("no noun and verb output %d", want)
	}
	for _, p := range pairs {
		if _, err = fmt.Fprintf(w, "noun=%d verb=%d (%d)\n", p[0], p[1], 100*p[0]+p[1]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}

func printStats(w io.Writer) {
	counters, _ := metrics.Snapshot()
	names := make([]string, 0, len(counters))
	for n := range counters {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "%s: %d\n", n, counters[n])
	}
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		if i.PC >= 0 && i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), State: %v, Output: %v\n", i.PC, i.Mem[i.PC], i.State(), i.Output())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, State: %v, Output: %v\n", i.PC, i.State(), i.Output())
		}
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); err == nil {
			err = ferr
		}
		if stats {
			printStats(os.Stderr)
		}
		atExit(i, err)
	}()

	if err = envconfig.Process("intcode", &cfg); err != nil {
		return
	}

	var inputs cellList
	var patches patchList
	var want optCell

	flag.StringVar(&cfg.Image, "image", cfg.Image, "Load program from file `filename`")
	flag.Var(&inputs, "input", "Queue input `value` (can be specified multiple times)")
	flag.Var(&patches, "set", "Set memory cell before running, as `addr=value` (can be specified multiple times)")
	flag.Var(&want, "find", "search the noun and verb for which the program leaves `value` at address 0")
	flag.BoolVar(&dump, "dump", false, "dump memory to stdout upon exit")
	flag.StringVar(&outFileName, "o", "", "save memory to `filename` upon exit")
	flag.BoolVar(&stats, "stats", false, "print counters to stderr upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log `level` (trace, debug, info, warn, error, critical, off)")

	flag.Parse()

	if err = setupLog(); err != nil {
		return
	}

	var mem vm.Memory
	if mem, err = vm.Load(cfg.Image); err != nil {
		return
	}
	if err = patches.apply(mem); err != nil {
		return
	}
	if want.set {
		err = find(mem, want.v, stdout)
		return
	}
	if i, err = vm.New(mem, vm.Input(inputs...)); err != nil {
		return
	}

	var prompt func() error
	if isTerminal(os.Stdin.Fd()) {
		prompt = func() error {
			if err := stdout.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprint(os.Stderr, "? ")
			return err
		}
	}
	err = run(i, os.Stdin, stdout, prompt)
	executed.AddN(uint64(i.InstructionCount()))
	log.Debugf("%v @pc=%d after %d instructions", i.State(), i.PC, i.InstructionCount())
	if err != nil {
		return
	}

	if dump {
		if err = i.Mem.Dump(stdout); err != nil {
			return
		}
	}
	if outFileName != "" {
		err = i.Mem.Save(outFileName)
	}
}
