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
	"fmt"

	"github.com/cloudwego/regflow/internal/cfg"
	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/ir"
)

// Point is an instruction boundary, Index 0 is before the first instruction
// of Block and Index Block.Len() is after its terminator.
type Point struct {
	Block *ir.BasicBlock
	Index int
}

func (self Point) String() string {
	if self.Block == nil {
		return fmt.Sprintf("(<nil>, %d)", self.Index)
	} else {
		return fmt.Sprintf("(%s, %d)", self.Block.Label, self.Index)
	}
}

// Result holds the fixpoint of an analysis, it is never modified once Solve
// returns. Every set returned by its methods is a copy.
type Result struct {
	g      *cfg.CFG
	name   string
	visits int
	before [][]*factset.Set
	after  [][]*factset.Set
}

// Name returns the name of the analysis that produced the result.
func (self *Result) Name() string {
	return self.name
}

// Graph returns the control-flow graph the result was computed over.
func (self *Result) Graph() *cfg.CFG {
	return self.g
}

// Visits returns the number of block visits the solver took to converge.
func (self *Result) Visits() int {
	return self.visits
}

func (self *Result) locate(p Point) (int, error) {
	if p.Block == nil {
		return -1, &PointError{Point: p, Reason: "nil block"}
	}

	/* the block must be the one that was analyzed */
	i, ok := self.g.Index(p.Block)
	if !ok {
		return -1, &PointError{Point: p, Reason: "block is not in the analyzed function"}
	}

	/* check the instruction index */
	if p.Index < 0 || p.Index > p.Block.Len() {
		return -1, &PointError{Point: p, Reason: fmt.Sprintf("index out of range [0, %d]", p.Block.Len())}
	} else {
		return i, nil
	}
}

// Before returns the facts that hold immediately before the instruction at p.
// Before the end of the block is the same as after its terminator.
func (self *Result) Before(p Point) (*factset.Set, error) {
	i, err := self.locate(p)
	if err != nil {
		return nil, err
	}

	/* the trailing point is after the terminator */
	if p.Index == len(self.before[i]) {
		return self.after[i][p.Index-1].Clone(), nil
	} else {
		return self.before[i][p.Index].Clone(), nil
	}
}

// After returns the facts that hold immediately after the instruction at p.
// There is no instruction at the end of a block, so Index must be less than
// Block.Len().
func (self *Result) After(p Point) (*factset.Set, error) {
	i, err := self.locate(p)
	if err != nil {
		return nil, err
	}

	/* nothing is after the end of the block */
	if p.Index == len(self.after[i]) {
		return nil, &PointError{Point: p, Reason: "no instruction after the end of the block"}
	} else {
		return self.after[i][p.Index].Clone(), nil
	}
}

// In returns the facts at the beginning of bb, in program order.
func (self *Result) In(bb *ir.BasicBlock) (*factset.Set, error) {
	return self.Before(Point{Block: bb})
}

// Out returns the facts at the end of bb, in program order.
func (self *Result) Out(bb *ir.BasicBlock) (*factset.Set, error) {
	if bb == nil {
		return nil, &PointError{Point: Point{}, Reason: "nil block"}
	} else {
		return self.Before(Point{Block: bb, Index: bb.Len()})
	}
}

// Points returns every program point with an instruction attached, in block
// then index order.
func (self *Result) Points() []Point {
	var ret []Point
	for _, bb := range self.g.Blocks {
		for i := 0; i < bb.Len(); i++ {
			ret = append(ret, Point{Block: bb, Index: i})
		}
	}
	return ret
}

// Equal reports whether two results carry the same facts at every point of
// the same graph.
func (self *Result) Equal(other *Result) bool {
	if self.g != other.g || len(self.before) != len(other.before) {
		return false
	}

	/* compare every point */
	for i := range self.before {
		if len(self.before[i]) != len(other.before[i]) {
			return false
		}
		for j := range self.before[i] {
			if !self.before[i][j].Equal(other.before[i][j]) || !self.after[i][j].Equal(other.after[i][j]) {
				return false
			}
		}
	}
	return true
}
