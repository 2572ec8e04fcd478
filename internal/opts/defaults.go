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
	"os"
	"strconv"

	"github.com/cloudwego/regflow/internal/logging"
)

const (
	_DefaultWorkers  = 4                 // concurrent analyses in AnalyzeAll
	_DefaultLogLevel = logging.WarnLevel // quiet unless something is off
)

var (
	Workers  = parseOrDefault("REGFLOW_WORKERS", _DefaultWorkers, 1)
	LogLevel = parseLevelOrDefault("REGFLOW_LOG_LEVEL", _DefaultLogLevel)
)

func parseOrDefault(key string, def int, min int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 64); err != nil {
		panic("regflow: invalid value for " + key)
	} else if ret := int(val); ret < min {
		panic("regflow: value too small for " + key)
	} else {
		return ret
	}
}

func parseLevelOrDefault(key string, def logging.Level) logging.Level {
	if env := os.Getenv(key); env == "" {
		return def
	} else if lv, err := logging.ParseLevel(env); err != nil {
		panic("regflow: invalid value for " + key + ": " + err.Error())
	} else {
		return lv
	}
}
