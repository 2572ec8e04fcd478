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
	"io"
	"log"
	"os"

	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/internal/logging"
	"github.com/cloudwego/regflow/ir"
)

// Observer is called by the solver after every block visit with the fact set
// leaving the block in the direction of the analysis.
type Observer func(bb *ir.BasicBlock, state *factset.Set)

type Options struct {
	LogLevel  logging.Level
	LogFlags  int
	LogOutput io.Writer
	Observer  Observer
	Workers   int

	logger *logging.LogGroup
}

// Logger returns the log group described by the options, nil when logging
// is turned off. It is the same group for every copy of the options made
// after BindLogger.
func (self *Options) Logger() *logging.LogGroup {
	if self.logger != nil {
		return self.logger
	} else if self.LogOutput == nil || self.LogLevel <= 0 {
		return nil
	}

	/* create a new log group */
	ret := logging.NewLogGroup(self.LogLevel, self.LogOutput)
	ret.SetAllFlags(self.LogFlags)
	return ret
}

// BindLogger creates the log group once, every later copy of the options
// shares it.
func (self *Options) BindLogger() {
	self.logger = nil
	self.logger = self.Logger()
}

func GetDefaultOptions() Options {
	return Options{
		LogLevel:  LogLevel,
		LogFlags:  log.LstdFlags,
		LogOutput: os.Stderr,
		Workers:   Workers,
	}
}
