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

package results

import "github.com/s33r/results/record"

// CollectAll merges a sequence of outcomes under the all-or-nothing
// policy: if any input failed, the whole result is a Failure carrying the
// concatenation of every failing input's errors — input order first, each
// input's internal error order preserved — and the successes' data is
// discarded. Only when zero inputs failed is the result a Success with
// all data in the original input order.
//
// An empty input is a present (empty) sequence, not an absent value, so
// it yields Success with an empty slice.
func CollectAll[T any](outcomes []Outcome[T], opts ...Option) Outcome[[]T] {
	data := make([]T, 0, len(outcomes))
	var errs []record.Record
	for _, o := range outcomes {
		if o.success {
			data = append(data, o.data)
			continue
		}
		errs = append(errs, o.errs...)
	}
	if len(errs) > 0 {
		return Failure[[]T](errs, opts...)
	}
	return Success(data)
}

// CollectAny merges a sequence of outcomes under the best-effort policy:
// if at least one input succeeded, the result is a Success carrying the
// successes' data in the original input order, and the failures are
// dropped — silently, by design. Only when zero inputs succeeded is the
// result a Failure with every collected error concatenated in order.
func CollectAny[T any](outcomes []Outcome[T], opts ...Option) Outcome[[]T] {
	data := make([]T, 0, len(outcomes))
	var errs []record.Record
	for _, o := range outcomes {
		if o.success {
			data = append(data, o.data)
			continue
		}
		errs = append(errs, o.errs...)
	}
	if len(data) > 0 {
		return Success(data)
	}
	return Failure[[]T](errs, opts...)
}
