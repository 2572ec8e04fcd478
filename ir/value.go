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
)

// Value is a register or an argument slot of a function. Values are compared
// by identity, two values with the same name are still distinct registers.
type Value struct {
	id   int
	arg  bool
	name string
	fn   *Func
}

// ID returns the dense index of the value within its function.
func (self *Value) ID() int {
	return self.id
}

// IsArg reports whether the value is a formal parameter.
func (self *Value) IsArg() bool {
	return self.arg
}

// Func returns the function that declares the value.
func (self *Value) Func() *Func {
	return self.fn
}

// Name returns the display name, unnamed values are shown as r<ID>.
func (self *Value) Name() string {
	if self.name != "" {
		return self.name
	} else {
		return fmt.Sprintf("r%d", self.id)
	}
}

func (self *Value) String() string {
	return self.Name()
}

func valueslice(vv ...*Value) []*Value {
	ret := make([]*Value, 0, len(vv))
	for _, v := range vv {
		if v != nil {
			ret = append(ret, v)
		}
	}
	return ret
}

func valuenames(vv []*Value) []string {
	ret := make([]string, len(vv))
	for i, v := range vv {
		ret[i] = v.Name()
	}
	return ret
}
