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

// Package dataflow solves monotone gen/kill dataflow problems over the
// control-flow graph of a function.
package dataflow

import (
	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/ir"
)

type Direction uint8

const (
	// Forward analyses propagate facts from the entry to the exits.
	Forward Direction = iota

	// Backward analyses propagate facts from the exits to the entry.
	Backward
)

func (self Direction) String() string {
	switch self {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		panic("unreachable")
	}
}

type Join uint8

const (
	// Union is the join of "may" analyses, the identity element is the empty set.
	Union Join = iota

	// Intersection is the join of "must" analyses, the identity element is the universe.
	Intersection
)

func (self Join) String() string {
	switch self {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	default:
		panic("unreachable")
	}
}

// Transfer returns the values an instruction adds to (gen) and removes from
// (kill) the running fact set. The two are applied atomically, kill first.
type Transfer func(ins ir.Instr) (gen []*ir.Value, kill []*ir.Value)

// Analysis describes a single dataflow problem.
//
// Boundary is the fact set at the entry block (Forward) or at the exit blocks
// (Backward). Universe is the identity element of Intersection, it is not used
// by Union analyses.
type Analysis struct {
	Name      string
	Direction Direction
	Join      Join
	Transfer  Transfer
	Boundary  *factset.Set
	Universe  *factset.Set
}

// identity returns a fresh copy of the identity element of the join.
func (self *Analysis) identity() *factset.Set {
	if self.Join == Union {
		return factset.New()
	} else {
		return self.Universe.Clone()
	}
}

func (self *Analysis) check() {
	if self.Transfer == nil {
		panic("dataflow: analysis " + self.Name + " has no transfer function")
	} else if self.Boundary == nil {
		panic("dataflow: analysis " + self.Name + " has no boundary")
	}

	/* must analyses need a universe to start from, and the boundary lives in it */
	if self.Join == Intersection {
		if self.Universe == nil {
			panic("dataflow: must analysis " + self.Name + " has no universe")
		} else if !self.Boundary.SubsetOf(self.Universe) {
			panic("dataflow: boundary of " + self.Name + " is not a subset of its universe")
		}
	}
}
