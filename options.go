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
	"io"

	"github.com/cloudwego/regflow/internal/factset"
	"github.com/cloudwego/regflow/internal/logging"
	"github.com/cloudwego/regflow/internal/opts"
	"github.com/cloudwego/regflow/ir"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// LogLevel is the verbosity of the engine logs.
type LogLevel = logging.Level

const (
	LogError = logging.ErrLevel
	LogWarn  = logging.WarnLevel
	LogInfo  = logging.InfoLevel
	LogDebug = logging.DebugLevel
	LogTrace = logging.TraceLevel
)

// WithLogLevel sets the maximum level of the messages being logged.
//
// Set this option to "0" turns logging off.
//
// The default value of this option is "warn", it can also be configured with
// the `REGFLOW_LOG_LEVEL` environment variable.
func WithLogLevel(level LogLevel) Option {
	if level < 0 || level > LogTrace {
		panic(fmt.Sprintf("regflow: invalid log level: %d", level))
	} else {
		return func(o *opts.Options) { o.LogLevel = level }
	}
}

// WithLogOutput sets the destination of the engine logs, nil turns logging
// off. The default output is os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *opts.Options) { o.LogOutput = w }
}

// WithLogFlags sets the output flags of the engine logs, as defined by the
// log package. The default value is log.LstdFlags, "0" drops the timestamps.
func WithLogFlags(flags int) Option {
	return func(o *opts.Options) { o.LogFlags = flags }
}

// WithBlockObserver registers a function that is called after every block
// visit of the solver, with the fact set leaving the block in the direction
// of the analysis. The set is a copy and may be retained.
//
// When used with AnalyzeAll, the observer is called concurrently from
// multiple goroutines.
func WithBlockObserver(fn func(bb *ir.BasicBlock, facts *factset.Set)) Option {
	return func(o *opts.Options) { o.Observer = fn }
}

// WithWorkers sets the maximum number of analyses AnalyzeAll runs at the
// same time.
//
// The default value of this option is "4", it can also be configured with
// the `REGFLOW_WORKERS` environment variable.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("regflow: invalid worker count: %d", n))
	} else {
		return func(o *opts.Options) { o.Workers = n }
	}
}

// SetDefaultWorkers sets the default number of workers for every call to
// AnalyzeAll from now on.
//
// Returns the old opts.Workers value.
func SetDefaultWorkers(n int) int {
	n, opts.Workers = opts.Workers, n
	return n
}

func applyOptions(options []Option) opts.Options {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}

	/* every analysis started by this call shares the log group */
	o.BindLogger()
	return o
}
