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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Builder constructs a function body block by block. Blocks are addressed by
// label, a label may be referenced by a branch before it is defined.
//
// The first error stops the construction, it is reported by Build.
type Builder struct {
	fn    *Func
	bb    *BasicBlock
	err   error
	refs  map[string]*BasicBlock
	defs  map[string]bool
	names map[string]*Value
}

func CreateBuilder(name string) *Builder {
	return &Builder{
		fn:    NewFunc(name),
		refs:  make(map[string]*BasicBlock),
		defs:  make(map[string]bool),
		names: make(map[string]*Value),
	}
}

func (self *Builder) fail(label string, reason string) {
	if self.err == nil {
		self.err = &LabelError{Label: label, Reason: reason}
	}
}

func (self *Builder) block(label string) *BasicBlock {
	if bb, ok := self.refs[label]; ok {
		return bb
	}

	/* not seen yet, create a placeholder */
	bb := &BasicBlock{Label: label}
	self.refs[label] = bb
	return bb
}

func (self *Builder) add(ins Instr) {
	if self.bb == nil {
		self.fail("", "instruction outside of any block: "+ins.String())
	} else if self.bb.Term != nil {
		self.fail(self.bb.Label, "instruction after the terminator: "+ins.String())
	} else {
		self.bb.Append(ins)
	}
}

func (self *Builder) term(term Terminator) {
	if self.bb == nil {
		self.fail("", "terminator outside of any block: "+term.String())
	} else if self.bb.Term != nil {
		self.fail(self.bb.Label, "block is already terminated")
	} else {
		self.bb.Terminate(term)
	}
}

// Func returns the function under construction.
func (self *Builder) Func() *Func {
	return self.fn
}

// Arg declares a formal parameter.
func (self *Builder) Arg(name string) *Value {
	if v, ok := self.names[name]; ok {
		self.fail("", "duplicated argument "+name)
		return v
	}

	/* declare the argument */
	v := self.fn.NewArg(name)
	self.names[name] = v
	return v
}

// Value returns the register with the given name, declaring it on first use.
// Every call with an empty name declares a new anonymous register.
func (self *Builder) Value(name string) *Value {
	if name == "" {
		return self.fn.NewValue("")
	} else if v, ok := self.names[name]; ok {
		return v
	}

	/* declare the register */
	v := self.fn.NewValue(name)
	self.names[name] = v
	return v
}

// Label starts a new block, the previous block must have been terminated.
func (self *Builder) Label(label string) {
	if self.defs[label] {
		self.fail(label, "label has already been defined")
		return
	}

	/* blocks never fall through */
	if self.bb != nil && self.bb.Term == nil {
		self.fail(self.bb.Label, "block is not terminated")
		return
	}

	/* place the block */
	self.bb = self.block(label)
	self.defs[label] = true
	self.fn.Blocks = append(self.fn.Blocks, self.bb)
}

// OnError sets the error handler of the current block.
func (self *Builder) OnError(label string) {
	if self.bb == nil {
		self.fail(label, "error handler outside of any block")
	} else {
		self.bb.ErrorHandler = self.block(label)
	}
}

func (self *Builder) Const(r *Value, v int64) {
	self.add(&IrConst{R: r, V: v})
}

func (self *Builder) Assign(r *Value, v *Value) {
	self.add(&IrAssign{R: r, V: v})
}

func (self *Builder) Unary(r *Value, op IrUnaryOp, v *Value) {
	self.add(&IrUnaryExpr{R: r, V: v, Op: op})
}

func (self *Builder) Binary(r *Value, op IrBinaryOp, x *Value, y *Value) {
	self.add(&IrBinaryExpr{R: r, X: x, Y: y, Op: op})
}

// Call emits a call to fn, r may be nil for calls without results.
func (self *Builder) Call(r *Value, fn string, in []*Value, steal ...*Value) {
	self.add(&IrCall{R: r, Fn: fn, In: in, Steal: steal})
}

func (self *Builder) IncRef(v *Value) {
	self.add(&IrIncRef{V: v})
}

func (self *Builder) DecRef(v *Value) {
	self.add(&IrDecRef{V: v})
}

func (self *Builder) KeepAlive(v ...*Value) {
	self.add(&IrKeepAlive{V: v})
}

func (self *Builder) Goto(to string) {
	self.term(&IrGoto{To: self.block(to)})
}

func (self *Builder) Branch(v *Value, then string, els string) {
	self.term(&IrBranch{V: v, Then: self.block(then), Else: self.block(els)})
}

// Switch emits a multi-way branch, cases are ordered by their values.
func (self *Builder) Switch(v *Value, def string, cases map[int64]string) {
	keys := maps.Keys(cases)
	slices.Sort(keys)

	/* build every case */
	br := make([]IrCase, 0, len(keys))
	for _, k := range keys {
		br = append(br, IrCase{V: k, To: self.block(cases[k])})
	}

	/* add the terminator */
	self.term(&IrSwitch{V: v, Br: br, Ln: self.block(def)})
}

// Return emits a return, v may be nil.
func (self *Builder) Return(v *Value) {
	self.term(&IrReturn{V: v})
}

func (self *Builder) Unreachable() {
	self.term(new(IrUnreachable))
}

// Build finishes the construction and checks that every referenced label has
// been defined.
func (self *Builder) Build() (*Func, error) {
	if self.err != nil {
		return nil, self.err
	}

	/* the last block must be terminated as well */
	if self.bb == nil {
		return nil, &LabelError{Reason: "function has no blocks"}
	} else if self.bb.Term == nil {
		return nil, &LabelError{Label: self.bb.Label, Reason: "block is not terminated"}
	}

	/* check for unresolved labels */
	keys := maps.Keys(self.refs)
	slices.Sort(keys)

	/* every one of them must be placed */
	for _, key := range keys {
		if !self.defs[key] {
			return nil, &LabelError{Label: key, Reason: "label is not defined"}
		}
	}
	return self.fn, nil
}
