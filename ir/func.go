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

// Func is the body of a single compiled function. Blocks[0] is the entry block.
type Func struct {
	Name   string
	Args   []*Value
	Blocks []*BasicBlock
	values []*Value
}

func NewFunc(name string) *Func {
	return &Func{Name: name}
}

func (self *Func) newValue(name string, arg bool) *Value {
	v := &Value{
		id:   len(self.values),
		arg:  arg,
		name: name,
		fn:   self,
	}
	self.values = append(self.values, v)
	return v
}

// NewArg declares a new formal parameter.
func (self *Func) NewArg(name string) *Value {
	v := self.newValue(name, true)
	self.Args = append(self.Args, v)
	return v
}

// NewValue declares a new register.
func (self *Func) NewValue(name string) *Value {
	return self.newValue(name, false)
}

// NewBlock creates a new block and appends it to the function body.
func (self *Func) NewBlock(label string) *BasicBlock {
	bb := &BasicBlock{Label: label}
	self.Blocks = append(self.Blocks, bb)
	return bb
}

// Values returns every value declared by the function, indexed by ID. The
// returned slice must not be modified.
func (self *Func) Values() []*Value {
	return self.values
}

// Value returns the value with the given ID, or nil if there is none.
func (self *Func) Value(id int) *Value {
	if id < 0 || id >= len(self.values) {
		return nil
	} else {
		return self.values[id]
	}
}

// Verify checks that every block is terminated and every register referenced
// by an instruction is declared by this function.
func (self *Func) Verify() error {
	for _, bb := range self.Blocks {
		if bb == nil {
			return &VerifyError{Func: self.Name, Index: -1, Reason: "nil basic block"}
		}

		/* blocks never fall through */
		if bb.Term == nil {
			return &VerifyError{Func: self.Name, Block: bb.Label, Index: -1, Reason: "block is not terminated"}
		}

		/* check every operand */
		for i := 0; i < bb.Len(); i++ {
			if err := self.verifyInstr(bb, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func (self *Func) verifyInstr(bb *BasicBlock, i int) error {
	ins := bb.At(i)
	ops := append(append([]*Value(nil), ins.Defines()...), ins.Uses()...)

	/* stolen operands are operands as well */
	if st, ok := ins.(Stealer); ok {
		ops = append(ops, st.Stolen()...)
	}

	/* all of them must belong to this function */
	for _, v := range ops {
		if v.fn != self {
			return &VerifyError{
				Func:   self.Name,
				Block:  bb.Label,
				Index:  i,
				Reason: fmt.Sprintf("register %s is not declared by this function", v),
			}
		}
	}
	return nil
}

func (self *Func) String() string {
	buf := make([]string, 0, len(self.Blocks)+1)
	buf = append(buf, fmt.Sprintf("def %s(%s):", self.Name, strings.Join(valuenames(self.Args), ", ")))

	/* dump every block */
	for _, bb := range self.Blocks {
		buf = append(buf, bb.Dump())
	}

	/* join them together */
	return strings.Join(buf, "\n")
}
