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

import (
	"cmp"
	"slices"

	"github.com/s33r/results/record"
)

// ComposeAll merges a keyed mapping of outcomes under the all-or-nothing
// policy: any failing entry makes the whole result a Failure carrying the
// concatenation of every failing entry's errors, and the result mapping
// is discarded. Only when every entry succeeded is the result a Success
// whose mapping holds each value under its original key.
//
// Go maps iterate in random order, so entries are visited in sorted key
// order — that is this package's determinism rule for keyed error
// accumulation. An empty input yields Success with an empty map.
func ComposeAll[K cmp.Ordered, T any](outcomes map[K]Outcome[T], opts ...Option) Outcome[map[K]T] {
	data := make(map[K]T, len(outcomes))
	var errs []record.Record
	keys := make([]K, 0, len(outcomes))
	for k := range outcomes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		o := outcomes[k]
		if o.success {
			data[k] = o.data
			continue
		}
		errs = append(errs, o.errs...)
	}
	if len(errs) > 0 {
		return Failure[map[K]T](errs, opts...)
	}
	return Success(data)
}

// ComposeAny merges a keyed mapping of outcomes under the best-effort
// policy: the result mapping holds every succeeding key/value pair, and
// failing entries are dropped by design. Only when the result mapping
// would be empty is the result a Failure with every collected error
// concatenated in sorted key order.
func ComposeAny[K cmp.Ordered, T any](outcomes map[K]Outcome[T], opts ...Option) Outcome[map[K]T] {
	data := make(map[K]T, len(outcomes))
	var errs []record.Record
	keys := make([]K, 0, len(outcomes))
	for k := range outcomes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		o := outcomes[k]
		if o.success {
			data[k] = o.data
			continue
		}
		errs = append(errs, o.errs...)
	}
	if len(data) > 0 {
		return Success(data)
	}
	return Failure[map[K]T](errs, opts...)
}
