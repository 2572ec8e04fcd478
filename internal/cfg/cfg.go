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

// Package cfg derives the control-flow graph of a function body.
//
// Blocks are addressed by their position in the input sequence, block 0 is
// the entry. The graph is a read-only view, building it never modifies the
// blocks, and it may be shared by analyses running concurrently.
package cfg

import (
	"fmt"
	"sync/atomic"

	"github.com/cloudwego/regflow/ir"
)

// BuildCount counts the graphs built so far.
var BuildCount uint64

type CFG struct {
	Blocks []*ir.BasicBlock
	index  map[*ir.BasicBlock]int
	succ   [][]int
	pred   [][]int
	exits  []int
}

// Build computes the successor and predecessor relations of blocks.
//
// The successors of a block are the targets of its terminator plus the error
// handlers that may receive control while the block or one of its successors
// is executing. Duplicated edges are merged, the first occurrence decides
// the order.
func Build(blocks []*ir.BasicBlock) (*CFG, error) {
	nb := len(blocks)
	ret := &CFG{
		Blocks: blocks,
		index:  make(map[*ir.BasicBlock]int, nb),
		succ:   make([][]int, nb),
		pred:   make([][]int, nb),
	}

	/* empty function body */
	if nb == 0 {
		return nil, emalformed(nil, -1, "function has no blocks")
	}

	/* assign an index to each block */
	if err := ret.indexBlocks(); err != nil {
		return nil, err
	}

	/* compute the successors of each block */
	for i, bb := range blocks {
		if err := ret.linkBlock(i, bb); err != nil {
			return nil, err
		}
	}

	/* predecessors are the inverse relation, blocks without successors are exits */
	for i, ss := range ret.succ {
		if len(ss) == 0 {
			ret.exits = append(ret.exits, i)
		}
		for _, j := range ss {
			ret.pred[j] = append(ret.pred[j], i)
		}
	}

	/* update the statistics */
	atomic.AddUint64(&BuildCount, 1)
	return ret, nil
}

func (self *CFG) indexBlocks() error {
	labels := make(map[string]int, len(self.Blocks))

	/* check for duplications */
	for i, bb := range self.Blocks {
		if bb == nil {
			return emalformed(nil, i, "nil basic block")
		} else if _, ok := self.index[bb]; ok {
			return emalformed(bb, -1, "block appears more than once")
		} else if p, ok := labels[bb.Label]; ok {
			return emalformed(bb, -1, fmt.Sprintf("label is already used by block #%d", p))
		}

		/* add to index */
		labels[bb.Label] = i
		self.index[bb] = i
	}
	return nil
}

func (self *CFG) linkBlock(i int, bb *ir.BasicBlock) error {
	seen := make(map[int]bool)
	term := bb.Term

	/* explicit terminator required */
	if term == nil {
		return emalformed(bb, -1, "block is not terminated")
	}

	/* control-flow instructions must be at the end of blocks */
	for j, ins := range bb.Ins {
		if _, ok := ins.(ir.Terminator); ok {
			return emalformed(bb, j, "terminator in the middle of the block: "+ins.String())
		}
	}

	/* add every branch target */
	for _, to := range term.Targets() {
		if err := self.addEdge(i, to, seen, "branch target"); err != nil {
			return err
		}
	}

	/* errors may be raised before the block or any of its successors completes */
	points := append([]*ir.BasicBlock{bb}, term.Targets()...)
	for _, p := range points {
		if p.ErrorHandler != nil {
			if err := self.addEdge(i, p.ErrorHandler, seen, "error handler"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (self *CFG) addEdge(i int, to *ir.BasicBlock, seen map[int]bool, what string) error {
	if to == nil {
		return emalformed(self.Blocks[i], -1, "nil "+what)
	}

	/* the target must be part of this function */
	j, ok := self.index[to]
	if !ok {
		return emalformed(self.Blocks[i], -1, fmt.Sprintf("%s %s is not in the function", what, to.Label))
	}

	/* merge duplicated edges */
	if !seen[j] {
		seen[j] = true
		self.succ[i] = append(self.succ[i], j)
	}
	return nil
}

// Len returns the number of blocks.
func (self *CFG) Len() int {
	return len(self.Blocks)
}

// Entry returns the entry block.
func (self *CFG) Entry() *ir.BasicBlock {
	return self.Blocks[0]
}

// Index returns the position of bb in the graph.
func (self *CFG) Index(bb *ir.BasicBlock) (int, bool) {
	i, ok := self.index[bb]
	return i, ok
}

// Block returns the i-th block.
func (self *CFG) Block(i int) *ir.BasicBlock {
	return self.Blocks[i]
}

// Succ returns the successor indices of block i, the slice must not be modified.
func (self *CFG) Succ(i int) []int {
	return self.succ[i]
}

// Pred returns the predecessor indices of block i, the slice must not be modified.
func (self *CFG) Pred(i int) []int {
	return self.pred[i]
}

// Exits returns the indices of the blocks without successors.
func (self *CFG) Exits() []int {
	return self.exits
}

// IsExit reports whether block i has no successors.
func (self *CFG) IsExit(i int) bool {
	return len(self.succ[i]) == 0
}

// Successors returns the successor blocks of bb.
func (self *CFG) Successors(bb *ir.BasicBlock) []*ir.BasicBlock {
	return self.blocksOf(self.succ[self.mustIndex(bb)])
}

// Predecessors returns the predecessor blocks of bb.
func (self *CFG) Predecessors(bb *ir.BasicBlock) []*ir.BasicBlock {
	return self.blocksOf(self.pred[self.mustIndex(bb)])
}

func (self *CFG) mustIndex(bb *ir.BasicBlock) int {
	if i, ok := self.index[bb]; ok {
		return i
	} else {
		panic("cfg: block is not in the graph: " + bb.Label)
	}
}

func (self *CFG) blocksOf(ids []int) []*ir.BasicBlock {
	ret := make([]*ir.BasicBlock, len(ids))
	for i, id := range ids {
		ret[i] = self.Blocks[id]
	}
	return ret
}
