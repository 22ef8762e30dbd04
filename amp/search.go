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

package amp

import (
	"context"
	"runtime"
	"sync"

	"github.com/codahale/metrics"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

var searched = metrics.Counter("amp.permutations")

// Result is the outcome of a phase setting search.
type Result struct {
	Signal vm.Cell   // highest signal found
	Phases []vm.Cell // phase settings that produced it
}

// orderings generates the permutations of a set of values one at a time.
type orderings struct {
	values []vm.Cell
	gen    *combin.PermutationGenerator
	idx    []int
	done   bool
}

func newOrderings(values []vm.Cell) *orderings {
	o := &orderings{values: values}
	if len(values) > 0 {
		o.gen = combin.NewPermutationGenerator(len(values), len(values))
		o.idx = make([]int, len(values))
	}
	return o
}

// next returns a new slice holding the next ordering, or nil, false once all
// of them have been returned.
func (o *orderings) next() ([]vm.Cell, bool) {
	if o.gen == nil {
		// a single, empty ordering
		if o.done {
			return nil, false
		}
		o.done = true
		return []vm.Cell{}, true
	}
	if !o.gen.Next() {
		return nil, false
	}
	o.gen.Permutation(o.idx)
	p := make([]vm.Cell, len(o.idx))
	for k, n := range o.idx {
		p[k] = o.values[n]
	}
	return p, true
}

// Permutations returns all orderings of values, following the order in which
// combin.PermutationGenerator permutes their indices. The first ordering is
// values itself. values is not modified.
func Permutations(values []vm.Cell) [][]vm.Cell {
	var perms [][]vm.Cell
	for o := newOrderings(values); ; {
		p, ok := o.next()
		if !ok {
			return perms
		}
		perms = append(perms, p)
	}
}

// MaxThrust evaluates f for every ordering of phases and returns the one
// yielding the highest signal. Orderings are generated in the same order as by
// Permutations and evaluated concurrently, at most GOMAXPROCS at a time. If
// several orderings yield the same signal, the first one in that order wins.
//
// The search stops at the first error returned by f, or when ctx is done.
func MaxThrust(ctx context.Context, prog vm.Memory, phases []vm.Cell, f Func) (Result, error) {
	var (
		mu    sync.Mutex
		best  Result
		first = -1 // index of best
		tried int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	o := newOrderings(phases)
	for n := 0; gctx.Err() == nil; n++ {
		p, ok := o.next()
		if !ok {
			break
		}
		n := n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := f(prog, p)
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			searched.Add()
			mu.Lock()
			defer mu.Unlock()
			tried++
			if first < 0 || s > best.Signal || (s == best.Signal && n < first) {
				best, first = Result{Signal: s, Phases: p}, n
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	log.Debugf("%d phase settings tried, best %v: %d", tried, best.Phases, best.Signal)
	return best, nil
}
