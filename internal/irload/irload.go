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

// Package irload reads function bodies from YAML documents.
package irload

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cloudwego/regflow/ir"
)

// Case is a loaded function, with the analysis it is checked against and the
// expected textual output, if the document provides them.
type Case struct {
	Func     *ir.Func
	Analysis string
	Expect   []string
}

// OpError occures when an operation of the document can not be converted to
// an instruction.
type OpError struct {
	Func   string
	Block  string
	Index  int
	Reason string
}

func (self *OpError) Error() string {
	return fmt.Sprintf("OpError(%s, block %s, op %d): %s", self.Func, self.Block, self.Index, self.Reason)
}

var _UnaryOps = map[string]ir.IrUnaryOp{
	"-":     ir.IrOpNegate,
	"!":     ir.IrOpNot,
	"box":   ir.IrOpBox,
	"unbox": ir.IrOpUnbox,
}

// LoadFile reads every function from the YAML file at path.
func LoadFile(path string) ([]Case, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	/* parse the file */
	defer fp.Close()
	return Load(fp)
}

// Load reads every function from a YAML document. Unknown fields are rejected.
func Load(r io.Reader) ([]Case, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	/* decode the document */
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("irload: %w", err)
	}

	/* convert every function */
	ret := make([]Case, 0, len(doc.Functions))
	for _, fd := range doc.Functions {
		if fn, err := Convert(fd); err != nil {
			return nil, fmt.Errorf("irload: function %s: %w", fd.Name, err)
		} else {
			ret = append(ret, Case{Func: fn, Analysis: fd.Analysis, Expect: splitLines(fd.Expect)})
		}
	}
	return ret, nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	} else {
		return strings.Split(s, "\n")
	}
}

// Convert builds the function described by fd.
func Convert(fd Function) (*ir.Func, error) {
	if fd.Name == "" {
		return nil, &OpError{Index: -1, Reason: "function has no name"}
	}

	/* declare the arguments */
	p := CreateProgram(fd.Name)
	for _, arg := range fd.Args {
		p.b.Arg(arg)
	}

	/* convert every block */
	for _, bd := range fd.Blocks {
		if err := p.block(bd); err != nil {
			return nil, err
		}
	}

	/* resolve the labels */
	return p.b.Build()
}

// Program converts the blocks of one function.
type Program struct {
	b  *ir.Builder
	fn string
}

func CreateProgram(name string) *Program {
	return &Program{b: ir.CreateBuilder(name), fn: name}
}

func (self *Program) value(name string) *ir.Value {
	if name == "" {
		return nil
	} else {
		return self.b.Value(name)
	}
}

func (self *Program) values(names []string) []*ir.Value {
	ret := make([]*ir.Value, len(names))
	for i, name := range names {
		ret[i] = self.b.Value(name)
	}
	return ret
}

func (self *Program) block(bd Block) error {
	self.b.Label(bd.Label)
	if bd.ErrorHandler != "" {
		self.b.OnError(bd.ErrorHandler)
	}

	/* convert every operation */
	for i, op := range bd.Ops {
		if reason := self.op(op); reason != "" {
			return &OpError{Func: self.fn, Block: bd.Label, Index: i, Reason: reason}
		}
	}
	return nil
}

func (self *Program) op(op Op) string {
	switch op.Op {
	case "const":
		if op.Dest == "" {
			return "const requires dest"
		}
		self.b.Const(self.value(op.Dest), op.Int)

	case "assign":
		if op.Dest == "" || op.Src == "" {
			return "assign requires dest and src"
		}
		self.b.Assign(self.value(op.Dest), self.value(op.Src))

	case "unary":
		uop, ok := _UnaryOps[op.Operator]
		if !ok {
			return fmt.Sprintf("invalid unary operator %q", op.Operator)
		} else if op.Dest == "" || op.Src == "" {
			return "unary requires dest and src"
		}
		self.b.Unary(self.value(op.Dest), uop, self.value(op.Src))

	case "binary":
		bop, ok := ir.ParseBinaryOp(op.Operator)
		if !ok {
			return fmt.Sprintf("invalid binary operator %q", op.Operator)
		} else if op.Dest == "" || op.X == "" || op.Y == "" {
			return "binary requires dest, x and y"
		}
		self.b.Binary(self.value(op.Dest), bop, self.value(op.X), self.value(op.Y))

	case "call":
		if op.Fn == "" {
			return "call requires fn"
		}
		self.b.Call(self.value(op.Dest), op.Fn, self.values(op.Args), self.values(op.Steal)...)

	case "inc_ref", "dec_ref":
		if op.Src == "" {
			return op.Op + " requires src"
		} else if op.Op == "inc_ref" {
			self.b.IncRef(self.value(op.Src))
		} else {
			self.b.DecRef(self.value(op.Src))
		}

	case "keep_alive":
		self.b.KeepAlive(self.values(op.Args)...)

	case "goto":
		if op.Target == "" {
			return "goto requires target"
		}
		self.b.Goto(op.Target)

	case "branch":
		if op.Src == "" || op.Then == "" || op.Else == "" {
			return "branch requires src, then and else"
		}
		self.b.Branch(self.value(op.Src), op.Then, op.Else)

	case "switch":
		if op.Src == "" || op.Default == "" {
			return "switch requires src and default"
		}
		self.b.Switch(self.value(op.Src), op.Default, op.Cases)

	case "return":
		self.b.Return(self.value(op.Src))

	case "unreachable":
		self.b.Unreachable()

	default:
		return fmt.Sprintf("unknown op %q", op.Op)
	}
	return ""
}
