/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dataflow

import (
	"sync/atomic"

	"github.com/oleiade/lane"

	"github.com/cloudwego/regflow/internal/cfg"
	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/internal/logging"
	"github.com/cloudwego/regflow/internal/opts"
)

var (
	SolveCount uint64
	VisitCount uint64
)

type _Solver struct {
	g     *cfg.CFG
	a     *Analysis
	log   *logging.LogGroup
	obs   opts.Observer
	queue *lane.Queue
	inq   []bool
	pin   []bool
	bound []bool
	gen   [][]*factset.Set
	kill  [][]*factset.Set
	bgen  []*factset.Set
	bkill []*factset.Set
	start []*factset.Set
	exit  []*factset.Set
	nvis  int
}

// Solve computes the fixpoint of analysis a over g, and records the fact set
// before and after every instruction.
//
// The graph and its blocks are only read, Solve may be called concurrently
// on the same graph.
func Solve(g *cfg.CFG, a *Analysis, o opts.Options) *Result {
	a.check()
	s := newSolver(g, a, o)

	/* run the worklist until it drains */
	s.seed()
	s.run()

	/* update the statistics */
	atomic.AddUint64(&SolveCount, 1)
	atomic.AddUint64(&VisitCount, uint64(s.nvis))
	s.log.Debugf("dataflow: %s (%s, %s) converged after %d visits over %d blocks", a.Name, a.Direction, a.Join, s.nvis, g.Len())
	return s.result()
}

func newSolver(g *cfg.CFG, a *Analysis, o opts.Options) *_Solver {
	nb := g.Len()
	s := &_Solver{
		g:     g,
		a:     a,
		log:   o.Logger(),
		obs:   o.Observer,
		queue: lane.NewQueue(),
		inq:   make([]bool, nb),
		pin:   make([]bool, nb),
		bound: make([]bool, nb),
		gen:   make([][]*factset.Set, nb),
		kill:  make([][]*factset.Set, nb),
		bgen:  make([]*factset.Set, nb),
		bkill: make([]*factset.Set, nb),
		start: make([]*factset.Set, nb),
		exit:  make([]*factset.Set, nb),
	}

	/* boundary blocks, the entry for forward analyses and exits for backward ones */
	if a.Direction == Forward {
		s.bound[0] = true
		s.pinUnless(g.Reachable())
	} else {
		for _, i := range g.Exits() {
			s.bound[i] = true
		}
		s.pinUnless(g.CanReachExit())
	}

	/* transfer sets of every instruction and block, initial estimates */
	for i := 0; i < nb; i++ {
		s.transferBlock(i)
		s.start[i] = a.identity()
		s.exit[i] = a.identity()
	}
	return s
}

// pinUnless pins every block not marked in live to the identity element.
// Pinned blocks are visited once, and never queued again.
func (self *_Solver) pinUnless(live []bool) {
	for i, ok := range live {
		self.pin[i] = !ok
	}
}

// transferBlock precomputes the gen/kill sets of every instruction of block
// i, and composes them in flow order into the gen/kill sets of the block.
func (self *_Solver) transferBlock(i int) {
	bb := self.g.Block(i)
	nb := bb.Len()
	gen := factset.New()
	kill := factset.New()

	/* per-instruction sets, in program order */
	self.gen[i] = make([]*factset.Set, nb)
	self.kill[i] = make([]*factset.Set, nb)

	/* convert every instruction */
	for j := 0; j < nb; j++ {
		g, k := self.a.Transfer(bb.At(j))
		self.gen[i][j] = factset.Of(g...)
		self.kill[i][j] = factset.Of(k...)
	}

	/* compose the block transfer: gen = (gen - k) | g, kill = (kill - g) | k */
	for _, j := range self.order(nb) {
		gen.Subtract(self.kill[i][j])
		gen.Union(self.gen[i][j])
		kill.Subtract(self.gen[i][j])
		kill.Union(self.kill[i][j])
	}

	/* save the block sets */
	self.bgen[i] = gen
	self.bkill[i] = kill
}

// order returns the instruction indices of a block of n instructions in
// flow order.
func (self *_Solver) order(n int) []int {
	ret := make([]int, n)
	for j := range ret {
		if self.a.Direction == Forward {
			ret[j] = j
		} else {
			ret[j] = n - j - 1
		}
	}
	return ret
}

func (self *_Solver) flowPred(i int) []int {
	if self.a.Direction == Forward {
		return self.g.Pred(i)
	} else {
		return self.g.Succ(i)
	}
}

func (self *_Solver) flowSucc(i int) []int {
	if self.a.Direction == Forward {
		return self.g.Succ(i)
	} else {
		return self.g.Pred(i)
	}
}

func (self *_Solver) enqueue(i int) {
	if !self.inq[i] {
		self.inq[i] = true
		self.queue.Enqueue(i)
	}
}

func (self *_Solver) seed() {
	var seq []int
	if self.a.Direction == Forward {
		seq = self.g.ReversePostOrder()
	} else {
		seq = self.g.PostOrder()
	}

	/* every block is visited at least once */
	for _, i := range seq {
		self.enqueue(i)
	}
}

func (self *_Solver) run() {
	for !self.queue.Empty() {
		i := self.queue.Dequeue().(int)
		self.inq[i] = false
		self.visit(i)
	}
}

func (self *_Solver) visit(i int) {
	in := self.join(i)
	out := in.Clone()

	/* apply the block transfer */
	out.Apply(self.bgen[i], self.bkill[i])
	self.start[i] = in
	self.nvis++

	/* notify the observer if any */
	self.log.Tracef("dataflow: %s: visit %s, in = %s, out = %s", self.a.Name, self.g.Block(i), in, out)
	if self.obs != nil {
		self.obs(self.g.Block(i), out.Clone())
	}

	/* nothing changed, the successors already saw this estimate */
	if out.Equal(self.exit[i]) {
		return
	}

	/* save the new estimate and propagate it */
	self.exit[i] = out
	for _, j := range self.flowSucc(i) {
		if !self.pin[j] {
			self.enqueue(j)
		}
	}
}

// join merges the estimates flowing into block i. Boundary blocks join the
// boundary with their flow predecessors, which only exist when a loop goes
// back to them. Blocks that no boundary can flow into, either from the entry
// or towards an exit, stay at the identity element.
func (self *_Solver) join(i int) *factset.Set {
	var ret *factset.Set
	var now []int

	/* never reached by the boundary */
	if self.pin[i] {
		return self.a.identity()
	}

	/* select the starting point */
	if ps := self.flowPred(i); self.bound[i] {
		ret, now = self.a.Boundary.Clone(), ps
	} else if len(ps) == 0 {
		return self.a.identity()
	} else {
		ret, now = self.exit[ps[0]].Clone(), ps[1:]
	}

	/* join with the rest of the predecessors */
	for _, p := range now {
		if self.a.Join == Union {
			ret.Union(self.exit[p])
		} else {
			ret.Intersect(self.exit[p])
		}
	}
	return ret
}

// result replays the transfer inside every block from the fixpoint
// estimates, and records the fact set around each instruction.
func (self *_Solver) result() *Result {
	nb := self.g.Len()
	rs := &Result{
		g:      self.g,
		name:   self.a.Name,
		visits: self.nvis,
		before: make([][]*factset.Set, nb),
		after:  make([][]*factset.Set, nb),
	}

	/* replay every block */
	for i := 0; i < nb; i++ {
		n := self.g.Block(i).Len()
		cur := self.start[i].Clone()
		rs.before[i] = make([]*factset.Set, n)
		rs.after[i] = make([]*factset.Set, n)

		/* backward analyses see the block from the end */
		for _, j := range self.order(n) {
			pre := cur.Clone()
			cur.Apply(self.gen[i][j], self.kill[i][j])

			/* record in program order */
			if self.a.Direction == Forward {
				rs.before[i][j], rs.after[i][j] = pre, cur.Clone()
			} else {
				rs.before[i][j], rs.after[i][j] = cur.Clone(), pre
			}
		}
	}
	return rs
}
