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

package ir

import (
	"fmt"
	"strings"
)

// BasicBlock is a straight-line sequence of instructions ended by exactly one
// terminator. The terminator is counted as the last instruction of the block,
// so a block with n ordinary instructions has n + 1 program points with an
// instruction attached.
//
// ErrorHandler is the block control transfers to when any instruction of this
// block raises an error, it is nil when errors propagate to the caller.
type BasicBlock struct {
	Label        string
	Ins          []Instr
	Term         Terminator
	ErrorHandler *BasicBlock
}

// Len returns the number of instructions, including the terminator.
func (self *BasicBlock) Len() int {
	if self.Term == nil {
		return len(self.Ins)
	} else {
		return len(self.Ins) + 1
	}
}

// At returns the i-th instruction of the block, the terminator is at index Len() - 1.
func (self *BasicBlock) At(i int) Instr {
	if i >= 0 && i < len(self.Ins) {
		return self.Ins[i]
	} else if i == len(self.Ins) && self.Term != nil {
		return self.Term
	} else {
		panic(fmt.Sprintf("ir: instruction index %d out of range in block %s", i, self.Label))
	}
}

// Append adds ordinary instructions to the end of the block.
func (self *BasicBlock) Append(ins ...Instr) {
	self.Ins = append(self.Ins, ins...)
}

// Terminate sets the terminator of this block.
func (self *BasicBlock) Terminate(term Terminator) {
	self.Term = term
}

func (self *BasicBlock) String() string {
	return self.Label
}

// Dump returns the textual listing of the block.
func (self *BasicBlock) Dump() string {
	buf := make([]string, 0, self.Len()+1)

	/* block header */
	if self.ErrorHandler == nil {
		buf = append(buf, self.Label+":")
	} else {
		buf = append(buf, fmt.Sprintf("%s: (error handler %s)", self.Label, self.ErrorHandler))
	}

	/* every instruction with its index */
	for i := 0; i < self.Len(); i++ {
		buf = append(buf, fmt.Sprintf("    %d: %s", i, self.At(i)))
	}

	/* join them together */
	return strings.Join(buf, "\n")
}
