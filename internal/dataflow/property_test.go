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
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/regflow/internal/cfg"
	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/internal/opts"
	"github.com/cloudwego/regflow/ir"
)

const (
	_RandomRounds = 200
	_MaxBlocks    = 8
)

var analyses = []func(*ir.Func) *Analysis{
	MaybeDefined,
	MustDefined,
	Liveness,
	BorrowedArguments,
	MaybeUndefined,
}

func randomFunc(t *testing.T, seed int64) *program {
	fk := gofakeit.New(seed)
	b := ir.CreateBuilder(fmt.Sprintf("rand%d", seed))
	nb := fk.Number(1, _MaxBlocks)

	/* arguments and registers */
	var vals []*ir.Value
	for i := fk.Number(0, 3); i > 0; i-- {
		vals = append(vals, b.Arg(fmt.Sprintf("a%d", i)))
	}
	for i := fk.Number(1, 5); i > 0; i-- {
		vals = append(vals, b.Value(fmt.Sprintf("v%d", i)))
	}

	/* random pickers */
	pick := func() *ir.Value { return vals[fk.Number(0, len(vals)-1)] }
	label := func() string { return fmt.Sprintf("L%d", fk.Number(0, nb-1)) }

	/* emit every block */
	for i := 0; i < nb; i++ {
		b.Label(fmt.Sprintf("L%d", i))
		if fk.Number(0, 3) == 0 {
			b.OnError(label())
		}

		/* ordinary instructions */
		for j := fk.Number(0, 4); j > 0; j-- {
			switch fk.Number(0, 5) {
			case 0:
				b.Const(pick(), int64(fk.Number(0, 100)))
			case 1:
				b.Assign(pick(), pick())
			case 2:
				b.Binary(pick(), ir.IrOpAdd, pick(), pick())
			case 3:
				x := pick()
				if fk.Bool() {
					b.Call(pick(), "g", []*ir.Value{x, pick()}, x)
				} else {
					b.Call(nil, "h", []*ir.Value{x})
				}
			case 4:
				b.KeepAlive(pick(), pick())
			case 5:
				b.Unary(pick(), ir.IrOpNot, pick())
			}
		}

		/* terminator */
		switch fk.Number(0, 4) {
		case 0:
			b.Goto(label())
		case 1, 2:
			b.Branch(pick(), label(), label())
		case 3:
			b.Switch(pick(), label(), map[int64]string{0: label(), 1: label()})
		case 4:
			if fk.Bool() {
				b.Return(pick())
			} else {
				b.Unreachable()
			}
		}
	}

	/* must always be well-formed */
	fn, err := b.Build()
	require.NoError(t, err)
	g, err := cfg.Build(fn.Blocks)
	require.NoError(t, err)
	return &program{t: t, fn: fn, g: g}
}

func forEachRandomFunc(t *testing.T, do func(p *program)) {
	for seed := int64(1); seed <= _RandomRounds; seed++ {
		do(randomFunc(t, seed))
	}
}

func TestProperty_Monotonic(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		for _, mk := range analyses {
			a := mk(p.fn)
			last := make(map[*ir.BasicBlock]*factset.Set)

			/* every estimate must move in one direction only */
			Solve(p.g, a, opts.Options{
				Observer: func(bb *ir.BasicBlock, state *factset.Set) {
					if prev, ok := last[bb]; ok {
						if a.Join == Union {
							require.True(p.t, prev.SubsetOf(state), "%s of %s at %s: %s -> %s", a.Name, p.fn.Name, bb, prev, state)
						} else {
							require.True(p.t, state.SubsetOf(prev), "%s of %s at %s: %s -> %s", a.Name, p.fn.Name, bb, prev, state)
						}
					}
					last[bb] = state
				},
			})
		}
	})
}

func TestProperty_Terminates(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		edges := 0
		for i := 0; i < p.g.Len(); i++ {
			edges += len(p.g.Succ(i))
		}

		/* every block once, then once more per edge every time its source changes */
		bound := p.g.Len() + edges*len(p.fn.Values())
		for _, mk := range analyses {
			res := p.solve(mk)
			require.GreaterOrEqual(t, res.Visits(), p.g.Len())
			require.LessOrEqual(t, res.Visits(), bound, "%s of %s", res.Name(), p.fn.Name)
		}
	})
}

func TestProperty_MustIsSubsetOfMaybe(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		must := p.solve(MustDefined)
		maybe := p.solve(MaybeDefined)
		reach := p.g.Reachable()

		/* only meaningful where the code can run */
		for _, pt := range must.Points() {
			if i, _ := p.g.Index(pt.Block); reach[i] {
				x, err := must.Before(pt)
				require.NoError(t, err)
				y, err := maybe.Before(pt)
				require.NoError(t, err)
				require.True(t, x.SubsetOf(y), "%s at %s: %s vs %s", p.fn.Name, pt, x, y)
				x, _ = must.After(pt)
				y, _ = maybe.After(pt)
				require.True(t, x.SubsetOf(y), "%s at %s: %s vs %s", p.fn.Name, pt, x, y)
			}
		}
	})
}

func TestProperty_LivenessDuality(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		res := p.solve(Liveness)
		for _, pt := range res.Points() {
			ins := pt.Block.At(pt.Index)
			used := factset.Of(ins.Uses()...)
			live, err := res.Before(pt)
			require.NoError(t, err)

			/* overwritten without being read */
			for _, v := range ins.Defines() {
				if !used.Contains(v) {
					require.False(t, live.Contains(v), "%s at %s: %s", p.fn.Name, pt, ins)
				}
			}

			/* read, so live right before */
			for _, v := range ins.Uses() {
				require.True(t, live.Contains(v), "%s at %s: %s", p.fn.Name, pt, ins)
			}
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		for _, mk := range analyses {
			require.True(t, p.solve(mk).Equal(p.solve(mk)))
		}
	})
}

func TestProperty_UnreachableIsIdentity(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		maybe := p.solve(MaybeDefined)
		must := p.solve(MustDefined)
		borrowed := p.solve(BorrowedArguments)
		live := p.solve(Liveness)
		reach := p.g.Reachable()
		exit := p.g.CanReachExit()

		/* no path from the entry, nothing but the identity element */
		for i, ok := range reach {
			if !ok {
				bb := p.g.Block(i)
				s, _ := maybe.In(bb)
				require.True(t, s.Empty(), "%s at %s: %s", p.fn.Name, bb, s)
				s, _ = must.In(bb)
				require.True(t, s.Equal(factset.Of(p.fn.Values()...)), "%s at %s: %s", p.fn.Name, bb, s)
				s, _ = borrowed.In(bb)
				require.True(t, s.Equal(factset.Of(p.fn.Args...)), "%s at %s: %s", p.fn.Name, bb, s)
			}
		}

		/* no path to any exit, nothing is live when leaving the block */
		for i, ok := range exit {
			if !ok {
				bb := p.g.Block(i)
				s, _ := live.Out(bb)
				require.True(t, s.Empty(), "%s at %s: %s", p.fn.Name, bb, s)
			}
		}
	})
}

func TestProperty_BorrowedNeverReturns(t *testing.T) {
	forEachRandomFunc(t, func(p *program) {
		res := p.solve(BorrowedArguments)
		for _, pt := range res.Points() {
			x, _ := res.Before(pt)
			y, _ := res.After(pt)
			require.True(t, y.SubsetOf(x), "%s at %s", p.fn.Name, pt)
		}
	})
}
