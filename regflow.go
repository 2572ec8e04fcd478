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

// Package regflow computes per-instruction register facts of compiled
// functions: which registers are defined, live, or still borrowed from the
// caller, at every instruction boundary.
package regflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/gopkg/util/gopool"

	"github.com/cloudwego/regflow/internal/cfg"
	"github.com/cloudwego/regflow/internal/dataflow"
	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/internal/opts"
	"github.com/cloudwego/regflow/ir"
)

type (
	// CFG is the control-flow graph of a function body.
	CFG = cfg.CFG

	// Result holds the facts at every instruction boundary of a function.
	Result = dataflow.Result

	// Point is an instruction boundary of a function.
	Point = dataflow.Point

	// FactSet is a set of registers, keyed by their IDs.
	FactSet = factset.Set
)

// BuildCFG verifies fn and computes its control-flow graph.
func BuildCFG(fn *ir.Func) (*CFG, error) {
	if err := fn.Verify(); err != nil {
		return nil, err
	} else {
		return cfg.Build(fn.Blocks)
	}
}

// Analyze runs the analysis selected by kind over fn.
func Analyze(fn *ir.Func, kind Kind, options ...Option) (*Result, error) {
	g, err := BuildCFG(fn)
	if err != nil {
		return nil, err
	}

	/* solve */
	o := applyOptions(options)
	return analyzeGraph(fn, g, kind, o)
}

// AnalyzeGraph runs the analysis selected by kind over fn, reusing the
// control-flow graph g built by BuildCFG.
func AnalyzeGraph(fn *ir.Func, g *CFG, kind Kind, options ...Option) (*Result, error) {
	return analyzeGraph(fn, g, kind, applyOptions(options))
}

func analyzeGraph(fn *ir.Func, g *CFG, kind Kind, o opts.Options) (*Result, error) {
	a, err := kind.Analysis(fn)
	if err != nil {
		return nil, err
	}

	/* run the solver */
	o.Logger().Infof("regflow: %s analysis of %s: %d blocks, %d values", kind, fn.Name, g.Len(), len(fn.Values()))
	return dataflow.Solve(g, a, o), nil
}

// Format renders res in the textual diagnostic form, one line per
// instruction of fn.
func Format(fn *ir.Func, res *Result) []string {
	return dataflow.Format(fn, res)
}

// Names returns the sorted names of the registers of fn in s.
func Names(fn *ir.Func, s *FactSet) []string {
	return dataflow.Names(fn, s)
}

// Report is the outcome of one analysis of one function.
type Report struct {
	Func   *ir.Func
	Kind   Kind
	Result *Result
	Err    error
}

// AnalyzeAll runs every analysis in kinds over every function in fns, at most
// opts.Workers of them at the same time. The graph of each function is built
// once and shared by all of its analyses.
//
// Reports are ordered by function, then by kind. The returned error is the
// first failure in that order, if any.
func AnalyzeAll(ctx context.Context, fns []*ir.Func, kinds []Kind, options ...Option) ([]Report, error) {
	var wg sync.WaitGroup
	o := applyOptions(options)
	ret := make([]Report, len(fns)*len(kinds))
	pool := gopool.NewPool("regflow.AnalyzeAll", int32(o.Workers), gopool.NewConfig())

	/* schedule every analysis */
	for i, fn := range fns {
		g, err := BuildCFG(fn)

		/* every analysis of this function shares the graph */
		for j, kind := range kinds {
			rp := &ret[i*len(kinds)+j]
			rp.Func, rp.Kind = fn, kind

			/* the function itself is broken */
			if err != nil {
				rp.Err = err
				continue
			}

			/* the caller gave up */
			if err := ctx.Err(); err != nil {
				rp.Err = err
				continue
			}

			/* run in the pool */
			wg.Add(1)
			pool.CtxGo(ctx, func() {
				defer wg.Done()
				defer recoverReport(rp)
				rp.Result, rp.Err = analyzeGraph(rp.Func, g, rp.Kind, o)
			})
		}
	}

	/* wait for everything to finish */
	wg.Wait()
	return ret, firstError(ret)
}

func recoverReport(rp *Report) {
	if v := recover(); v != nil {
		rp.Result = nil
		rp.Err = fmt.Errorf("regflow: panic in %s analysis of %s: %v", rp.Kind, rp.Func.Name, v)
	}
}

func firstError(rps []Report) error {
	for _, rp := range rps {
		if rp.Err != nil {
			return fmt.Errorf("regflow: %s analysis of %s: %w", rp.Kind, rp.Func.Name, rp.Err)
		}
	}
	return nil
}
