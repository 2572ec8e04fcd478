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

package irload

// Document is the top-level YAML document.
type Document struct {
	Functions []Function `yaml:"functions"`
}

// Function is a function body. Analysis and Expect are optional, they are
// used by the data-driven tests and must be given together.
type Function struct {
	Name     string   `yaml:"name"`
	Args     []string `yaml:"args,omitempty"`
	Analysis string   `yaml:"analysis,omitempty"`
	Blocks   []Block  `yaml:"blocks"`
	Expect   string   `yaml:"expect,omitempty"`
}

type Block struct {
	Label        string `yaml:"label"`
	ErrorHandler string `yaml:"error-handler,omitempty"`
	Ops          []Op   `yaml:"ops"`
}

// Op is a single instruction, Op selects which of the other fields are used.
//
//	const        dest, int
//	assign       dest, src
//	unary        dest, operator, src
//	binary       dest, operator, x, y
//	call         dest (optional), fn, args, steal
//	inc_ref      src
//	dec_ref      src
//	keep_alive   args
//	goto         target
//	branch       src, then, else
//	switch       src, cases, default
//	return       src (optional)
//	unreachable
type Op struct {
	Op       string           `yaml:"op"`
	Dest     string           `yaml:"dest,omitempty"`
	Int      int64            `yaml:"int,omitempty"`
	Src      string           `yaml:"src,omitempty"`
	X        string           `yaml:"x,omitempty"`
	Y        string           `yaml:"y,omitempty"`
	Operator string           `yaml:"operator,omitempty"`
	Fn       string           `yaml:"fn,omitempty"`
	Args     []string         `yaml:"args,omitempty"`
	Steal    []string         `yaml:"steal,omitempty"`
	Target   string           `yaml:"target,omitempty"`
	Then     string           `yaml:"then,omitempty"`
	Else     string           `yaml:"else,omitempty"`
	Cases    map[int64]string `yaml:"cases,omitempty"`
	Default  string           `yaml:"default,omitempty"`
}
