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

package cfg

import (
	"gonum.org/v1/gonum/graph/flow"
	"gonum.org/v1/gonum/graph/simple"
)

// DominatorTree maps each reachable block to its immediate dominator.
type DominatorTree struct {
	idom []int
}

// Dominators computes the dominator tree rooted at the entry block.
func (self *CFG) Dominators() DominatorTree {
	nb := self.Len()
	dg := simple.NewDirectedGraph()

	/* add every block */
	for i := 0; i < nb; i++ {
		dg.AddNode(simple.Node(i))
	}

	/* self-loops do not affect dominance, and are rejected by simple graphs */
	for i, ss := range self.succ {
		for _, j := range ss {
			if i != j {
				dg.SetEdge(dg.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	/* compute the immediate dominators */
	dt := flow.Dominators(simple.Node(0), dg)
	ret := DominatorTree{idom: make([]int, nb)}

	/* unreachable blocks, and the entry block, have no dominator */
	for i := range ret.idom {
		if p := dt.DominatorOf(int64(i)); p == nil || i == 0 {
			ret.idom[i] = -1
		} else {
			ret.idom[i] = int(p.ID())
		}
	}
	return ret
}

// Idom returns the immediate dominator of block i, or -1 if there is none.
func (self DominatorTree) Idom(i int) int {
	return self.idom[i]
}

// Dominates reports whether block a dominates block b. Every reachable block
// dominates itself.
func (self DominatorTree) Dominates(a int, b int) bool {
	for p := b; p >= 0; p = self.idom[p] {
		if p == a {
			return true
		}
	}
	return false
}

// Edge is a control-flow edge between two blocks.
type Edge struct {
	From int
	To   int
}

// BackEdges returns the edges whose target dominates their source, in block
// order. They are exactly the edges closing a natural loop.
func (self *CFG) BackEdges() []Edge {
	var ret []Edge
	dt := self.Dominators()
	reach := self.Reachable()

	/* scan every reachable edge */
	for i, ss := range self.succ {
		if reach[i] {
			for _, j := range ss {
				if dt.Dominates(j, i) {
					ret = append(ret, Edge{From: i, To: j})
				}
			}
		}
	}
	return ret
}
