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

// VerifyError occures when a function body is not well-formed.
type VerifyError struct {
	Func   string
	Block  string
	Index  int
	Reason string
}

func (self *VerifyError) Error() string {
	if self.Block == "" {
		return fmt.Sprintf("VerifyError(%s): %s", self.Func, self.Reason)
	} else if self.Index < 0 {
		return fmt.Sprintf("VerifyError(%s, block %s): %s", self.Func, self.Block, self.Reason)
	} else {
		return fmt.Sprintf("VerifyError(%s, block %s, instruction %d): %s", self.Func, self.Block, self.Index, self.Reason)
	}
}

// LabelError occures when the Builder can not resolve a block label.
type LabelError struct {
	Label  string
	Reason string
}

func (self *LabelError) Error() string {
	return fmt.Sprintf("LabelError(%s): %s", self.Label, self.Reason)
}
