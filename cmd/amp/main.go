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
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/codahale/metrics"
	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// phaseList is a comma separated list of phase settings.
type phaseList []vm.Cell

func (l *phaseList) String() string {
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *phaseList) Set(s string) error {
	m, err := vm.ParseString(s)
	if err != nil {
		return errors.Wrap(err, "bad phase list")
	}
	*l = phaseList(m)
	return nil
}

func (l *phaseList) Get() interface{} { return *l }

// cfg holds the defaults read from INTCODE_* environment variables.
var cfg struct {
	Image    string `default:"input"`
	LogLevel string `default:"info"`
}

var (
	debug    bool
	feedback bool
	stats    bool
	log      = btclog.Disabled
)

func setupLog() error {
	backend := btclog.NewBackend(os.Stderr)
	log = backend.Logger("AMPS")
	lvl, ok := btclog.LevelFromString(cfg.LogLevel)
	if !ok {
		return errors.Errorf("unknown log level %q", cfg.LogLevel)
	}
	log.SetLevel(lvl)
	amp.UseLogger(log)
	return nil
}

func printStats() {
	counters, _ := metrics.Snapshot()
	names := make([]string, 0, len(counters))
	for n := range counters {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(os.Stderr, "%s: %d\n", n, counters[n])
	}
}

func atExit(err error) {
	if err == nil {
		return
	}
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	if err = envconfig.Process("intcode", &cfg); err != nil {
		return
	}

	var phases phaseList

	flag.StringVar(&cfg.Image, "image", cfg.Image, "Load program from file `filename`")
	flag.BoolVar(&feedback, "feedback", false, "wire amplifiers in a feedback loop")
	flag.Var(&phases, "phases", "comma separated `list` of phase settings (default 0,1,2,3,4, or 5,6,7,8,9 with -feedback)")
	flag.BoolVar(&stats, "stats", false, "print counters to stderr upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log `level` (trace, debug, info, warn, error, critical, off)")

	flag.Parse()

	if err = setupLog(); err != nil {
		return
	}

	f := amp.Series
	if feedback {
		f = amp.Feedback
	}
	if len(phases) == 0 {
		phases = phaseList{0, 1, 2, 3, 4}
		if feedback {
			phases = phaseList{5, 6, 7, 8, 9}
		}
	}

	var prog vm.Memory
	if prog, err = vm.Load(cfg.Image); err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Infof("searching %d amplifiers, phases %v, feedback %v", len(phases), phases.String(), feedback)
	var r amp.Result
	if r, err = amp.MaxThrust(ctx, prog, phases, f); err != nil {
		return
	}
	p := phaseList(r.Phases)
	fmt.Printf("max thrust %d with phases %s\n", r.Signal, p.String())
	if stats {
		printStats()
	}
}
