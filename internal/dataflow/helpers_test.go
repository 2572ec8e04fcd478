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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudwego/regflow/internal/cfg"
	"github.com/cloudwego/regflow/internal/opts"
	"github.com/cloudwego/regflow/ir"
)

type program struct {
	t  *testing.T
	fn *ir.Func
	g  *cfg.CFG
}

func compile(t *testing.T, build func(b *ir.Builder)) *program {
	b := ir.CreateBuilder("f")
	build(b)
	fn, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, fn.Verify())
	g, err := cfg.Build(fn.Blocks)
	require.NoError(t, err)
	return &program{t: t, fn: fn, g: g}
}

func (self *program) block(label string) *ir.BasicBlock {
	for _, bb := range self.fn.Blocks {
		if bb.Label == label {
			return bb
		}
	}
	self.t.Fatalf("no such block: %s", label)
	return nil
}

func (self *program) solve(mk func(*ir.Func) *Analysis) *Result {
	return Solve(self.g, mk(self.fn), opts.Options{})
}

func (self *program) before(res *Result, label string, i int) []string {
	s, err := res.Before(Point{Block: self.block(label), Index: i})
	require.NoError(self.t, err)
	return Names(self.fn, s)
}

func (self *program) after(res *Result, label string, i int) []string {
	s, err := res.After(Point{Block: self.block(label), Index: i})
	require.NoError(self.t, err)
	return Names(self.fn, s)
}

func (self *program) in(res *Result, label string) []string {
	s, err := res.In(self.block(label))
	require.NoError(self.t, err)
	return Names(self.fn, s)
}

func (self *program) out(res *Result, label string) []string {
	s, err := res.Out(self.block(label))
	require.NoError(self.t, err)
	return Names(self.fn, s)
}
