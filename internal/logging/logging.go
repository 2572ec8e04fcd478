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

package logging

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
)

type Level int

const (
	// ErrLevel=1 - the minimum level of logging.
	ErrLevel Level = iota + 1

	// WarnLevel=2 - warnings and errors.
	WarnLevel

	// InfoLevel=3 - high-level information about each analysis run.
	InfoLevel

	// DebugLevel=4 - convergence information, one line per solved analysis.
	DebugLevel

	// TraceLevel=5 - one line per block visit. Only useful on small functions.
	TraceLevel
)

var _LevelNames = [...]string{
	ErrLevel:   "error",
	WarnLevel:  "warn",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

func (self Level) String() string {
	if self >= ErrLevel && self <= TraceLevel {
		return _LevelNames[self]
	} else {
		return "Level(" + strconv.Itoa(int(self)) + ")"
	}
}

// ParseLevel accepts either a level name or its numeric value.
func ParseLevel(s string) (Level, error) {
	for lv, name := range _LevelNames {
		if name != "" && strings.EqualFold(name, s) {
			return Level(lv), nil
		}
	}

	/* try numeric values */
	if v, err := strconv.Atoi(s); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	} else if v < int(ErrLevel) || v > int(TraceLevel) {
		return 0, fmt.Errorf("log level %d out of range [%d, %d]", v, ErrLevel, TraceLevel)
	} else {
		return Level(v), nil
	}
}

// LogGroup is a set of loggers, one per level, sharing the same output.
// A nil *LogGroup discards everything.
//
// A LogGroup may be used from multiple goroutines, messages of every level
// are serialized on the output.
type LogGroup struct {
	level Level
	trace *log.Logger
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
}

type _SyncWriter struct {
	mu sync.Mutex
	wr io.Writer
}

func (self *_SyncWriter) Write(p []byte) (int, error) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.wr.Write(p)
}

// NewLogGroup returns a log group that writes messages up to level into w.
func NewLogGroup(level Level, w io.Writer) *LogGroup {
	sw := &_SyncWriter{wr: w}
	return &LogGroup{
		level: level,
		trace: log.New(sw, "[TRACE] ", log.LstdFlags),
		debug: log.New(sw, "[DEBUG] ", log.LstdFlags),
		info:  log.New(sw, "[INFO] ", log.LstdFlags),
		warn:  log.New(sw, "[WARN] ", log.LstdFlags),
		err:   log.New(sw, "[ERROR] ", log.LstdFlags),
	}
}

// Level returns the maximum level of the messages that are printed.
func (self *LogGroup) Level() Level {
	if self == nil {
		return 0
	} else {
		return self.level
	}
}

// SetAllFlags sets the output flags of every logger in the group, see the
// log package for their meanings.
func (self *LogGroup) SetAllFlags(x int) {
	if self != nil {
		self.trace.SetFlags(x)
		self.debug.SetFlags(x)
		self.info.SetFlags(x)
		self.warn.SetFlags(x)
		self.err.SetFlags(x)
	}
}

// Tracef prints to the trace logger. Arguments are handled in the manner of Printf
func (self *LogGroup) Tracef(format string, v ...any) {
	if self.Level() >= TraceLevel {
		self.trace.Printf(format, v...)
	}
}

// Debugf prints to the debug logger. Arguments are handled in the manner of Printf
func (self *LogGroup) Debugf(format string, v ...any) {
	if self.Level() >= DebugLevel {
		self.debug.Printf(format, v...)
	}
}

// Infof prints to the info logger. Arguments are handled in the manner of Printf
func (self *LogGroup) Infof(format string, v ...any) {
	if self.Level() >= InfoLevel {
		self.info.Printf(format, v...)
	}
}

// Warnf prints to the warning logger. Arguments are handled in the manner of Printf
func (self *LogGroup) Warnf(format string, v ...any) {
	if self.Level() >= WarnLevel {
		self.warn.Printf(format, v...)
	}
}

// Errorf prints to the error logger. Arguments are handled in the manner of Printf
func (self *LogGroup) Errorf(format string, v ...any) {
	if self.Level() >= ErrLevel {
		self.err.Printf(format, v...)
	}
}
