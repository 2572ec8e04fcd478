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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/cloudwego/regflow"
	"github.com/cloudwego/regflow/debug"
	"github.com/cloudwego/regflow/internal/irload"
	"github.com/cloudwego/regflow/internal/logging"
)

var (
	analysisFlag = ""
	logLevelFlag = ""
	dumpFlag     = false
	statsFlag    = false
	graphFlag    = false
	logTimeFlag  = true
)

func init() {
	flag.StringVar(&analysisFlag, "analysis", "", "comma-separated analyses to run, or \"all\"")
	flag.StringVar(&logLevelFlag, "log-level", "", "log level (error, warn, info, debug, trace)")
	flag.BoolVar(&logTimeFlag, "log-time", true, "prefix every log line with the time")
	flag.BoolVar(&dumpFlag, "dump", false, "dump the raw results")
	flag.BoolVar(&statsFlag, "stats", false, "print engine statistics")
	flag.BoolVar(&graphFlag, "graph", false, "print control-flow graph notes")
}

const usage = `Compute register facts of IR functions.

Usage:
  regflow [options] file.yaml...

When -analysis is not given, each function runs the analysis named by its
"analysis" field, or every analysis if it has none.

Use the -help flag to display the options.

Examples:
% regflow -analysis liveness testdata/analysis.yaml
`

func main() {
	if err := doMain(); err != nil {
		fmt.Fprintf(os.Stderr, "regflow: %s\n", err)
		os.Exit(1)
	}
}

func doMain() error {
	var options []regflow.Option
	flag.Parse()

	/* need at least one file */
	if len(flag.Args()) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	/* select the analyses */
	kinds, err := parseKinds(analysisFlag)
	if err != nil {
		return err
	}

	/* logging level */
	if logLevelFlag != "" {
		if lv, err := logging.ParseLevel(logLevelFlag); err != nil {
			return err
		} else {
			options = append(options, regflow.WithLogLevel(lv))
		}
	}

	/* timestamps */
	if !logTimeFlag {
		options = append(options, regflow.WithLogFlags(0))
	}

	/* run every file */
	for _, path := range flag.Args() {
		if err := runFile(path, kinds, options); err != nil {
			return err
		}
	}

	/* statistics, if requested */
	if statsFlag {
		st := debug.GetStats()
		fmt.Println(faint(fmt.Sprintf("graphs built: %d, solver runs: %d, block visits: %d", st.Graph.Builds, st.Solver.Runs, st.Solver.Visits)))
	}
	return nil
}

func parseKinds(s string) ([]regflow.Kind, error) {
	if s == "" {
		return nil, nil
	} else if s == "all" {
		return regflow.Kinds(), nil
	}

	/* parse every name */
	var ret []regflow.Kind
	for _, name := range strings.Split(s, ",") {
		if kind, err := regflow.ParseKind(strings.TrimSpace(name)); err != nil {
			return nil, err
		} else {
			ret = append(ret, kind)
		}
	}
	return ret, nil
}

func runFile(path string, kinds []regflow.Kind, options []regflow.Option) error {
	fmt.Fprintln(os.Stderr, faint("Reading "+path))
	cases, err := irload.LoadFile(path)
	if err != nil {
		return err
	}

	/* run every function */
	for _, tc := range cases {
		if err := runCase(tc, kinds, options); err != nil {
			return err
		}
	}
	return nil
}

func runCase(tc irload.Case, kinds []regflow.Kind, options []regflow.Option) error {
	fn := tc.Func
	g, err := regflow.BuildCFG(fn)
	if err != nil {
		return err
	}

	/* use the analysis declared by the function if none is selected */
	if kinds == nil {
		if tc.Analysis == "" {
			kinds = regflow.Kinds()
		} else if kind, err := regflow.ParseKind(tc.Analysis); err != nil {
			return err
		} else {
			kinds = []regflow.Kind{kind}
		}
	}

	/* function listing */
	fmt.Println(bold(fn.Name))
	fmt.Println(fn.String())
	if graphFlag {
		printGraph(g)
	}

	/* run every analysis */
	for _, kind := range kinds {
		res, err := regflow.AnalyzeGraph(fn, g, kind, options...)
		if err != nil {
			return err
		}

		/* textual form */
		fmt.Println(cyan(kind.String()))
		for _, line := range regflow.Format(fn, res) {
			fmt.Println(line)
		}

		/* raw dump, if requested */
		if dumpFlag {
			spew.Dump(res)
		}
	}
	return nil
}

func printGraph(g *regflow.CFG) {
	reach := g.Reachable()
	for i, ok := range reach {
		if !ok {
			fmt.Println(yellow("unreachable block " + g.Block(i).Label))
		}
	}

	/* loops */
	for _, e := range g.BackEdges() {
		fmt.Println(faint(fmt.Sprintf("back edge %s -> %s", g.Block(e.From), g.Block(e.To))))
	}

	/* strongly connected components */
	for _, comp := range g.Cycles() {
		labels := make([]string, len(comp))
		for i, id := range comp {
			labels[i] = g.Block(id).Label
		}
		fmt.Println(faint("cycle {" + strings.Join(labels, ", ") + "}"))
	}
}
