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

// Package factset implements the lattice elements of the dataflow analyses:
// finite sets of registers keyed by their dense per-function index.
package factset

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/container/intsets"
)

// Indexed is anything with a dense index, usually an *ir.Value.
type Indexed interface {
	ID() int
}

// Set is a set of value indices. The zero value is an empty set.
//
// A Set must not be copied after first use, pass it around by pointer and
// use Clone to take a snapshot.
type Set struct {
	bits intsets.Sparse
}

// New creates a set containing the given indices.
func New(ids ...int) *Set {
	rs := new(Set)
	for _, id := range ids {
		rs.bits.Insert(id)
	}
	return rs
}

// Of creates a set containing the indices of the given values.
func Of[T Indexed](vv ...T) *Set {
	rs := new(Set)
	for _, v := range vv {
		rs.bits.Insert(v.ID())
	}
	return rs
}

// Range creates the set {0, 1, ..., n - 1}.
func Range(n int) *Set {
	rs := new(Set)
	for i := 0; i < n; i++ {
		rs.bits.Insert(i)
	}
	return rs
}

func (self *Set) Add(id int) bool {
	return self.bits.Insert(id)
}

func (self *Set) Remove(id int) bool {
	return self.bits.Remove(id)
}

func (self *Set) Has(id int) bool {
	return self.bits.Has(id)
}

// Contains reports whether the index of v is in the set.
func (self *Set) Contains(v Indexed) bool {
	return self.bits.Has(v.ID())
}

func (self *Set) Len() int {
	return self.bits.Len()
}

func (self *Set) Empty() bool {
	return self.bits.IsEmpty()
}

// Union adds every element of x to the set, and reports whether the set grew.
func (self *Set) Union(x *Set) bool {
	return self.bits.UnionWith(&x.bits)
}

// Intersect removes every element that is not in x.
func (self *Set) Intersect(x *Set) {
	self.bits.IntersectionWith(&x.bits)
}

// Subtract removes every element of x.
func (self *Set) Subtract(x *Set) {
	self.bits.DifferenceWith(&x.bits)
}

// Assign replaces the content of the set with x.
func (self *Set) Assign(x *Set) {
	self.bits.Copy(&x.bits)
}

func (self *Set) Equal(x *Set) bool {
	return self.bits.Equals(&x.bits)
}

func (self *Set) SubsetOf(x *Set) bool {
	return self.bits.SubsetOf(&x.bits)
}

func (self *Set) Clone() *Set {
	rs := new(Set)
	rs.bits.Copy(&self.bits)
	return rs
}

// IDs returns the elements in ascending order.
func (self *Set) IDs() []int {
	return self.bits.AppendTo(make([]int, 0, self.bits.Len()))
}

// Apply performs the gen/kill step (self - kill) | gen in place.
func (self *Set) Apply(gen *Set, kill *Set) {
	self.bits.DifferenceWith(&kill.bits)
	self.bits.UnionWith(&gen.bits)
}

func (self *Set) String() string {
	ids := self.IDs()
	buf := make([]string, len(ids))

	/* convert every index */
	for i, id := range ids {
		buf[i] = strconv.Itoa(id)
	}

	/* join them together */
	return fmt.Sprintf(
		"{%s}",
		strings.Join(buf, ", "),
	)
}
