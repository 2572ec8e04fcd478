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
	"fmt"

	"golang.org/x/term"
)

var (
	bold   = color("\033[1m%s\033[0m")
	faint  = color("\033[2m%s\033[0m")
	yellow = color("\033[1;33m%s\033[0m")
	cyan   = color("\033[1;36m%s\033[0m")
)

func color(format string) func(...interface{}) string {
	return func(args ...interface{}) string {
		if term.IsTerminal(1) {
			return fmt.Sprintf(format, fmt.Sprint(args...))
		} else {
			return fmt.Sprint(args...)
		}
	}
}
