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

func TestFunc_VerifyForeignValue(t *testing.T) {
	other := NewFunc("g").NewValue("y")
	fn := NewFunc("f")
	bb := fn.NewBlock("L0")
	bb.Append(&IrConst{R: other, V: 1})
	bb.Terminate(&IrReturn{})
	err := fn.Verify()
	require.IsType(t, new(VerifyError), err)
	require.Equal(t, "VerifyError(f, block L0, instruction 0): register y is not declared by this function", err.Error())
}

func TestFunc_VerifyStolenValue(t *testing.T) {
	other := NewFunc("g").NewValue("y")
	fn := NewFunc("f")
	bb := fn.NewBlock("L0")
	bb.Append(&IrCall{Fn: "g", Steal: []*Value{other}})
	bb.Terminate(&IrReturn{})
	require.Error(t, fn.Verify())
}

func TestFunc_VerifyUnterminated(t *testing.T) {
	fn := NewFunc("f")
	fn.NewBlock("L0")
	err := fn.Verify()
	require.Equal(t, "VerifyError(f, block L0): block is not terminated", err.Error())
}

func TestFunc_Values(t *testing.T) {
	fn := NewFunc("f")
	a := fn.NewArg("a")
	r := fn.NewValue("")
	require.True(t, a.IsArg())
	require.False(t, r.IsArg())
	require.Equal(t, 1, r.ID())
	require.Same(t, fn, r.Func())
	require.Same(t, r, fn.Value(1))
	require.Nil(t, fn.Value(2))
	require.Nil(t, fn.Value(-1))
}

func TestBasicBlock_At(t *testing.T) {
	fn := NewFunc("f")
	x := fn.NewValue("x")
	bb := fn.NewBlock("L0")
	bb.Append(&IrConst{R: x, V: 7}, &IrIncRef{V: x})
	bb.Terminate(&IrReturn{V: x})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, "x = 7", bb.At(0).String())
	require.Equal(t, "inc_ref x", bb.At(1).String())
	require.Same(t, bb.Term, bb.At(2))
	require.Panics(t, func() { bb.At(3) })
	require.Panics(t, func() { bb.At(-1) })
}

func TestInstr_DefinesUses(t *testing.T) {
	fn := NewFunc("f")
	a := fn.NewArg("a")
	x := fn.NewValue("x")
	y := fn.NewValue("y")
	tests := []struct {
		ins  Instr
		str  string
		defs []*Value
		uses []*Value
	}{
		{&IrAssign{R: x, V: a}, "x = a", []*Value{x}, []*Value{a}},
		{&IrUnaryExpr{R: y, V: x, Op: IrOpNot}, "y = !x", []*Value{y}, []*Value{x}},
		{&IrBinaryExpr{R: x, X: x, Y: a, Op: IrCmpLt}, "x = x < a", []*Value{x}, []*Value{x, a}},
		{&IrCall{Fn: "g", In: []*Value{a, x}, Steal: []*Value{a}}, "g(a, x) steals {a}", []*Value{}, []*Value{a, x}},
		{&IrCall{R: y, Fn: "h"}, "y = h()", []*Value{y}, []*Value{}},
		{&IrKeepAlive{V: []*Value{x, y}}, "keep_alive x, y", nil, []*Value{x, y}},
		{&IrDecRef{V: y}, "dec_ref y", nil, []*Value{y}},
		{&IrReturn{}, "return", nil, []*Value{}},
		{new(IrUnreachable), "unreachable", nil, nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.str, tt.ins.String())
		require.ElementsMatch(t, tt.defs, tt.ins.Defines(), tt.str)
		require.ElementsMatch(t, tt.uses, tt.ins.Uses(), tt.str)
	}
}

func TestParseBinaryOp(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/", "&", "|", "^", "==", "!=", "<", ">="} {
		op, ok := ParseBinaryOp(s)
		require.True(t, ok, s)
		require.Equal(t, s, op.String())
	}
	_, ok := ParseBinaryOp("<=>")
	require.False(t, ok)
}
