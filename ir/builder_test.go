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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Straight(t *testing.T) {
	b := CreateBuilder("f")
	x := b.Arg("x")
	b.Label("L0")
	a := b.Value("a")
	b.Const(a, 1)
	b.Binary(b.Value("b"), IrOpAdd, a, x)
	b.Return(b.Value("b"))
	fn, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, fn.Verify())
	require.Equal(t, []*Value{x}, fn.Args)
	require.Len(t, fn.Values(), 3)
	require.Len(t, fn.Blocks, 1)
	require.Equal(t, 3, fn.Blocks[0].Len())
	require.Equal(t, "def f(x):\nL0:\n    0: a = 1\n    1: b = a + x\n    2: return b", fn.String())
}

func TestBuilder_ForwardLabels(t *testing.T) {
	b := CreateBuilder("f")
	c := b.Arg("c")
	b.Label("L0")
	b.Branch(c, "L2", "L1")
	b.Label("L1")
	b.Goto("L2")
	b.Label("L2")
	b.Return(nil)
	fn, err := b.Build()
	require.NoError(t, err)
	br := fn.Blocks[0].Term.(*IrBranch)
	require.Same(t, fn.Blocks[2], br.Then)
	require.Same(t, fn.Blocks[1], br.Else)
	require.Same(t, fn.Blocks[2], fn.Blocks[1].Term.(*IrGoto).To)
}

func TestBuilder_Switch(t *testing.T) {
	b := CreateBuilder("f")
	v := b.Arg("v")
	b.Label("L0")
	b.Switch(v, "L3", map[int64]string{2: "L2", 1: "L1"})
	for _, label := range []string{"L1", "L2", "L3"} {
		b.Label(label)
		b.Return(nil)
	}
	fn, err := b.Build()
	require.NoError(t, err)
	sw := fn.Blocks[0].Term.(*IrSwitch)
	require.Equal(t, []*BasicBlock{fn.Blocks[1], fn.Blocks[2], fn.Blocks[3]}, sw.Targets())
	require.Equal(t, "switch v {1 => L1, 2 => L2, _ => L3}", sw.String())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		label string
	}{
		{
			name:  "no blocks",
			build: func(b *Builder) {},
			label: "",
		},
		{
			name: "undefined label",
			build: func(b *Builder) {
				b.Label("L0")
				b.Goto("L9")
			},
			label: "L9",
		},
		{
			name: "duplicated label",
			build: func(b *Builder) {
				b.Label("L0")
				b.Goto("L0")
				b.Label("L0")
			},
			label: "L0",
		},
		{
			name: "fall through",
			build: func(b *Builder) {
				b.Label("L0")
				b.Const(b.Value("x"), 1)
				b.Label("L1")
				b.Return(nil)
			},
			label: "L0",
		},
		{
			name: "unterminated last block",
			build: func(b *Builder) {
				b.Label("L0")
			},
			label: "L0",
		},
		{
			name: "instruction after terminator",
			build: func(b *Builder) {
				b.Label("L0")
				b.Return(nil)
				b.Const(b.Value("x"), 1)
			},
			label: "L0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CreateBuilder("f")
			tt.build(b)
			fn, err := b.Build()
			require.Nil(t, fn)
			require.IsType(t, new(LabelError), err)
			require.Equal(t, tt.label, err.(*LabelError).Label)
		})
	}
}

func TestBuilder_DuplicatedArg(t *testing.T) {
	b := CreateBuilder("f")
	x := b.Arg("x")
	require.Same(t, x, b.Arg("x"))
	b.Label("L0")
	b.Return(nil)
	_, err := b.Build()
	require.Error(t, err)
}

func TestBuilder_AnonymousValues(t *testing.T) {
	b := CreateBuilder("f")
	v0 := b.Value("")
	v1 := b.Value("")
	require.NotSame(t, v0, v1)
	require.Equal(t, "r0", v0.Name())
	require.Equal(t, "r1", v1.Name())
	require.Same(t, b.Value("x"), b.Value("x"))
}
