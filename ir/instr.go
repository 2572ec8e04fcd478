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

// Instr is a single register-based instruction.
//
// Defines returns the registers written by the instruction and Uses the
// registers it reads. An instruction may both use and define the same
// register, the write happens after all the reads.
type Instr interface {
	fmt.Stringer
	Defines() []*Value
	Uses() []*Value
}

// Terminator is the last instruction of a basic block. Targets lists the
// successor blocks in order, it is empty for returns and traps.
type Terminator interface {
	Instr
	Targets() []*BasicBlock
}

// Stealer is implemented by instructions that take the ownership of some of
// their operands.
type Stealer interface {
	Instr
	Stolen() []*Value
}

type IrUnaryOp uint8

const (
	IrOpNegate IrUnaryOp = iota
	IrOpNot
	IrOpBox
	IrOpUnbox
)

func (self IrUnaryOp) String() string {
	switch self {
	case IrOpNegate:
		return "-"
	case IrOpNot:
		return "!"
	case IrOpBox:
		return "box "
	case IrOpUnbox:
		return "unbox "
	default:
		panic("unreachable")
	}
}

type IrBinaryOp uint8

const (
	IrOpAdd IrBinaryOp = iota
	IrOpSub
	IrOpMul
	IrOpDiv
	IrOpAnd
	IrOpOr
	IrOpXor
	IrCmpEq
	IrCmpNe
	IrCmpLt
	IrCmpGe
)

var _BinaryOps = [...]string{
	IrOpAdd: "+",
	IrOpSub: "-",
	IrOpMul: "*",
	IrOpDiv: "/",
	IrOpAnd: "&",
	IrOpOr:  "|",
	IrOpXor: "^",
	IrCmpEq: "==",
	IrCmpNe: "!=",
	IrCmpLt: "<",
	IrCmpGe: ">=",
}

func (self IrBinaryOp) String() string {
	if int(self) < len(_BinaryOps) {
		return _BinaryOps[self]
	} else {
		panic("unreachable")
	}
}

// ParseBinaryOp converts an operator symbol back to IrBinaryOp.
func ParseBinaryOp(s string) (IrBinaryOp, bool) {
	for op, str := range _BinaryOps {
		if str == s {
			return IrBinaryOp(op), true
		}
	}
	return 0, false
}

type IrConst struct {
	R *Value
	V int64
}

func (self *IrConst) String() string {
	return fmt.Sprintf("%s = %d", self.R, self.V)
}

func (self *IrConst) Defines() []*Value { return valueslice(self.R) }
func (self *IrConst) Uses() []*Value { return nil }

// IrAssign copies V into R. A copy into an argument register redefines that
// argument.
type IrAssign struct {
	R *Value
	V *Value
}

func (self *IrAssign) String() string {
	return fmt.Sprintf("%s = %s", self.R, self.V)
}

func (self *IrAssign) Defines() []*Value { return valueslice(self.R) }
func (self *IrAssign) Uses() []*Value { return valueslice(self.V) }

type IrUnaryExpr struct {
	R  *Value
	V  *Value
	Op IrUnaryOp
}

func (self *IrUnaryExpr) String() string {
	return fmt.Sprintf("%s = %s%s", self.R, self.Op, self.V)
}

func (self *IrUnaryExpr) Defines() []*Value { return valueslice(self.R) }
func (self *IrUnaryExpr) Uses() []*Value { return valueslice(self.V) }

type IrBinaryExpr struct {
	R  *Value
	X  *Value
	Y  *Value
	Op IrBinaryOp
}

func (self *IrBinaryExpr) String() string {
	return fmt.Sprintf("%s = %s %s %s", self.R, self.X, self.Op, self.Y)
}

func (self *IrBinaryExpr) Defines() []*Value { return valueslice(self.R) }
func (self *IrBinaryExpr) Uses() []*Value { return valueslice(self.X, self.Y) }

// IrCall invokes Fn with the arguments In. The result register R is optional.
// Arguments listed in Steal are handed over to the callee.
type IrCall struct {
	R     *Value
	Fn    string
	In    []*Value
	Steal []*Value
}

func (self *IrCall) String() string {
	var buf strings.Builder
	if self.R != nil {
		buf.WriteString(self.R.Name())
		buf.WriteString(" = ")
	}

	/* function name and arguments */
	fmt.Fprintf(&buf, "%s(%s)", self.Fn, strings.Join(valuenames(self.In), ", "))

	/* stolen arguments, if any */
	if len(self.Steal) != 0 {
		fmt.Fprintf(&buf, " steals {%s}", strings.Join(valuenames(self.Steal), ", "))
	}
	return buf.String()
}

func (self *IrCall) Defines() []*Value { return valueslice(self.R) }
func (self *IrCall) Uses() []*Value { return valueslice(self.In...) }
func (self *IrCall) Stolen() []*Value { return valueslice(self.Steal...) }

type IrIncRef struct {
	V *Value
}

func (self *IrIncRef) String() string { return fmt.Sprintf("inc_ref %s", self.V) }
func (self *IrIncRef) Defines() []*Value { return nil }
func (self *IrIncRef) Uses() []*Value { return valueslice(self.V) }

type IrDecRef struct {
	V *Value
}

func (self *IrDecRef) String() string { return fmt.Sprintf("dec_ref %s", self.V) }
func (self *IrDecRef) Defines() []*Value { return nil }
func (self *IrDecRef) Uses() []*Value { return valueslice(self.V) }

// IrKeepAlive extends the live range of V up to this point.
type IrKeepAlive struct {
	V []*Value
}

func (self *IrKeepAlive) String() string {
	return fmt.Sprintf("keep_alive %s", strings.Join(valuenames(self.V), ", "))
}

func (self *IrKeepAlive) Defines() []*Value { return nil }
func (self *IrKeepAlive) Uses() []*Value { return valueslice(self.V...) }

type IrGoto struct {
	To *BasicBlock
}

func (self *IrGoto) String() string { return fmt.Sprintf("goto %s", self.To) }
func (self *IrGoto) Defines() []*Value { return nil }
func (self *IrGoto) Uses() []*Value { return nil }
func (self *IrGoto) Targets() []*BasicBlock { return []*BasicBlock{self.To} }

// IrBranch jumps to Then if V is non-zero, or to Else otherwise.
type IrBranch struct {
	V    *Value
	Then *BasicBlock
	Else *BasicBlock
}

func (self *IrBranch) String() string {
	return fmt.Sprintf("if %s goto %s else goto %s", self.V, self.Then, self.Else)
}

func (self *IrBranch) Defines() []*Value { return nil }
func (self *IrBranch) Uses() []*Value { return valueslice(self.V) }
func (self *IrBranch) Targets() []*BasicBlock { return []*BasicBlock{self.Then, self.Else} }

type IrCase struct {
	V  int64
	To *BasicBlock
}

// IrSwitch is a multi-way branch on V, Ln is taken when no case matches.
type IrSwitch struct {
	V  *Value
	Br []IrCase
	Ln *BasicBlock
}

func (self *IrSwitch) String() string {
	ret := make([]string, 0, len(self.Br)+1)

	/* add each case */
	for _, c := range self.Br {
		ret = append(ret, fmt.Sprintf("%d => %s", c.V, c.To))
	}

	/* default branch */
	ret = append(ret, fmt.Sprintf("_ => %s", self.Ln))
	return fmt.Sprintf("switch %s {%s}", self.V, strings.Join(ret, ", "))
}

func (self *IrSwitch) Defines() []*Value { return nil }
func (self *IrSwitch) Uses() []*Value { return valueslice(self.V) }

func (self *IrSwitch) Targets() []*BasicBlock {
	ret := make([]*BasicBlock, 0, len(self.Br)+1)
	for _, c := range self.Br {
		ret = append(ret, c.To)
	}
	return append(ret, self.Ln)
}

// IrReturn leaves the function, the returned value V is optional.
type IrReturn struct {
	V *Value
}

func (self *IrReturn) String() string {
	if self.V == nil {
		return "return"
	} else {
		return fmt.Sprintf("return %s", self.V)
	}
}

func (self *IrReturn) Defines() []*Value { return nil }
func (self *IrReturn) Uses() []*Value { return valueslice(self.V) }
func (self *IrReturn) Targets() []*BasicBlock { return nil }

type IrUnreachable struct{}

func (*IrUnreachable) String() string { return "unreachable" }
func (*IrUnreachable) Defines() []*Value { return nil }
func (*IrUnreachable) Uses() []*Value { return nil }
func (*IrUnreachable) Targets() []*BasicBlock { return nil }
