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

package debug

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudwego/regflow"
	"github.com/cloudwego/regflow/ir"
)

func TestGetStats(t *testing.T) {
	b := ir.CreateBuilder("f")
	b.Label("L0")
	b.Return(nil)
	fn, err := b.Build()
	require.NoError(t, err)

	/* one graph, one solver run, one visit */
	st := GetStats()
	_, err = regflow.Analyze(fn, regflow.Liveness, regflow.WithLogOutput(nil))
	require.NoError(t, err)
	nst := GetStats()
	require.Equal(t, st.Graph.Builds+1, nst.Graph.Builds)
	require.Equal(t, st.Solver.Runs+1, nst.Solver.Runs)
	require.Equal(t, st.Solver.Visits+1, nst.Solver.Visits)
}
