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

package opts

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudwego/regflow/internal/logging"
)

func TestParseOrDefault(t *testing.T) {
	t.Setenv("REGFLOW_TEST_INT", "")
	require.Equal(t, 7, parseOrDefault("REGFLOW_TEST_INT", 7, 1))
	t.Setenv("REGFLOW_TEST_INT", "0x10")
	require.Equal(t, 16, parseOrDefault("REGFLOW_TEST_INT", 7, 1))
	t.Setenv("REGFLOW_TEST_INT", "0")
	require.Panics(t, func() { parseOrDefault("REGFLOW_TEST_INT", 7, 1) })
	t.Setenv("REGFLOW_TEST_INT", "many")
	require.Panics(t, func() { parseOrDefault("REGFLOW_TEST_INT", 7, 1) })
}

func TestParseLevelOrDefault(t *testing.T) {
	t.Setenv("REGFLOW_TEST_LEVEL", "")
	require.Equal(t, logging.WarnLevel, parseLevelOrDefault("REGFLOW_TEST_LEVEL", logging.WarnLevel))
	t.Setenv("REGFLOW_TEST_LEVEL", "trace")
	require.Equal(t, logging.TraceLevel, parseLevelOrDefault("REGFLOW_TEST_LEVEL", logging.WarnLevel))
	t.Setenv("REGFLOW_TEST_LEVEL", "loud")
	require.Panics(t, func() { parseLevelOrDefault("REGFLOW_TEST_LEVEL", logging.WarnLevel) })
}

func TestOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	o := Options{LogLevel: logging.DebugLevel}
	require.Nil(t, o.Logger())
	o.LogOutput = &buf
	require.Equal(t, logging.DebugLevel, o.Logger().Level())
	o.LogLevel = 0
	require.Nil(t, o.Logger())
}

func TestOptions_BindLogger(t *testing.T) {
	var buf bytes.Buffer
	o := Options{LogLevel: logging.InfoLevel, LogOutput: &buf}
	require.NotSame(t, o.Logger(), o.Logger())

	/* every copy shares the same group */
	o.BindLogger()
	c := o
	require.Same(t, o.Logger(), c.Logger())
	c.Logger().Infof("hello")
	require.Equal(t, "[INFO] hello\n", buf.String())

	/* turned off */
	o.LogOutput = nil
	o.BindLogger()
	require.Nil(t, o.Logger())
}

func TestGetDefaultOptions(t *testing.T) {
	o := GetDefaultOptions()
	require.Equal(t, Workers, o.Workers)
	require.Equal(t, LogLevel, o.LogLevel)
	require.NotNil(t, o.LogOutput)
	require.Equal(t, log.LstdFlags, o.LogFlags)
	require.Nil(t, o.Observer)
}
