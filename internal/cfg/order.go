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
	"github.com/oleiade/lane"
)

type _BlockIter struct {
	g *CFG
	b int
	s *lane.Stack
	v []bool
}

func newBlockIter(g *CFG) *_BlockIter {
	it := &_BlockIter{
		g: g,
		b: -1,
		s: lane.NewStack(),
		v: make([]bool, g.Len()),
	}

	/* start from the entry block */
	it.v[0] = true
	it.s.Push(0)
	return it
}

// next advances to the next block in post-order.
func (self *_BlockIter) next() bool {
	var tail bool
	var this int

	/* scan until the stack is empty */
	for !self.s.Empty() {
		tail = true
		this = self.s.Head().(int)

		/* descend into the first unvisited successor */
		for _, p := range self.g.succ[this] {
			if !self.v[p] {
				tail = false
				self.v[p] = true
				self.s.Push(p)
				break
			}
		}

		/* all the successors are visited, pop the current node */
		if tail {
			self.b = self.s.Pop().(int)
			return true
		}
	}

	/* no more blocks */
	self.b = -1
	return false
}

// PostOrder returns the post-order of the blocks reachable from the entry,
// followed by the unreachable blocks in their original order.
func (self *CFG) PostOrder() []int {
	it := newBlockIter(self)
	ret := make([]int, 0, self.Len())

	/* dump all the reachable blocks */
	for it.next() {
		ret = append(ret, it.b)
	}

	/* then everything else */
	for i, ok := range it.v {
		if !ok {
			ret = append(ret, i)
		}
	}
	return ret
}

// ReversePostOrder returns the reverse post-order of the blocks reachable
// from the entry, followed by the unreachable blocks in their original order.
func (self *CFG) ReversePostOrder() []int {
	it := newBlockIter(self)
	ret := make([]int, 0, self.Len())

	/* dump all the reachable blocks */
	for it.next() {
		ret = append(ret, it.b)
	}

	/* reverse the order */
	for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
		ret[i], ret[j] = ret[j], ret[i]
	}

	/* then everything else */
	for i, ok := range it.v {
		if !ok {
			ret = append(ret, i)
		}
	}
	return ret
}
