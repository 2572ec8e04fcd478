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

package regflow

import (
	"fmt"

	"github.com/cloudwego/regflow/internal/cfg"
	"github.com/cloudwego/regflow/internal/dataflow"
	"github.com/cloudwego/regflow/ir"
)

type (
	// MalformedError occures when the blocks of a function do not form a valid
	// control-flow graph.
	MalformedError = cfg.MalformedError

	// PointError occures when the facts of a program point that does not belong
	// to the analyzed function are requested.
	PointError = dataflow.PointError

	// VerifyError occures when a function body is not well-formed.
	VerifyError = ir.VerifyError

	// LabelError occures when a function body refers to an undefined label.
	LabelError = ir.LabelError
)

// KindError occures when parsing an unknown analysis name.
type KindError struct {
	Name string
}

func (self KindError) Error() string {
	return fmt.Sprintf("KindError(%q): unknown analysis", self.Name)
}
