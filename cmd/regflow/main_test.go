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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudwego/regflow"
)

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds("")
	require.NoError(t, err)
	require.Nil(t, kinds)

	kinds, err = parseKinds("all")
	require.NoError(t, err)
	require.Equal(t, regflow.Kinds(), kinds)

	kinds, err = parseKinds("liveness, must-defined")
	require.NoError(t, err)
	require.Equal(t, []regflow.Kind{regflow.Liveness, regflow.MustDefined}, kinds)

	_, err = parseKinds("liveness,nope")
	require.Error(t, err)
}

func TestRunFile(t *testing.T) {
	require.NoError(t, runFile("../../testdata/analysis.yaml", nil, nil))
	require.NoError(t, runFile("../../testdata/analysis.yaml", []regflow.Kind{regflow.Liveness}, nil))
	require.Error(t, runFile("../../testdata/missing.yaml", nil, nil))
}
