/*
   Copyright 2025 The s33r Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package callsite

import (
	"fmt"
	"runtime"
	"strings"
)

// maxFrames bounds how many stack frames a capture renders. Deep traces
// add noise without adding origin information; three frames is enough to
// see who constructed the record.
const maxFrames = 3

// Capturer produces a best-effort textual description of the current call
// site. Implementations must never fail: when no information is available
// they return the empty string.
//
// The capturer is an injectable collaborator so tests can pin locations.
type Capturer interface {
	// Capture returns the call-site trace, skipping skip frames above the
	// caller of Capture itself.
	Capture(skip int) string
}

// Default is the process-wide capturer used when a construction site does
// not supply its own. It walks the runtime call stack.
var Default Capturer = runtimeCapturer{}

// Disabled is a Capturer that always returns the empty string. Useful in
// tests and in hot paths where capture cost is unwanted.
var Disabled Capturer = disabledCapturer{}

// Fixed returns a Capturer that always reports the given location.
// Intended for tests that assert on formatted output.
func Fixed(location string) Capturer {
	return fixedCapturer(location)
}

type runtimeCapturer struct{}

// Capture renders up to maxFrames frames as "file:line" separated by
// " <- ", innermost first. Runtime internals at the top of the stack are
// already excluded by the skip offset.
func (runtimeCapturer) Capture(skip int) string {
	pcs := make([]uintptr, maxFrames)
	// +2 skips runtime.Callers and this method.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var parts []string
	for {
		f, more := frames.Next()
		if f.File != "" {
			parts = append(parts, fmt.Sprintf("%s:%d", f.File, f.Line))
		}
		if !more {
			break
		}
	}
	return strings.Join(parts, " <- ")
}

type disabledCapturer struct{}

func (disabledCapturer) Capture(int) string { return "" }

type fixedCapturer string

func (c fixedCapturer) Capture(int) string { return string(c) }
