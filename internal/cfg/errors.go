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

package cfg

import (
	"fmt"

	"github.com/cloudwego/regflow/ir"
)

// MalformedError occures when the blocks handed to Build do not form a valid
// control-flow graph. It always indicates a bug in the pass that produced the
// blocks.
type MalformedError struct {
	Block  string
	Index  int
	Reason string
}

func (self *MalformedError) Error() string {
	if self.Block == "" {
		return fmt.Sprintf("MalformedError: %s", self.Reason)
	} else if self.Index < 0 {
		return fmt.Sprintf("MalformedError(%s): %s", self.Block, self.Reason)
	} else {
		return fmt.Sprintf("MalformedError(%s:%d): %s", self.Block, self.Index, self.Reason)
	}
}

func emalformed(bb *ir.BasicBlock, i int, reason string) *MalformedError {
	if bb == nil {
		return &MalformedError{Index: i, Reason: reason}
	} else {
		return &MalformedError{Block: bb.Label, Index: i, Reason: reason}
	}
}
