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

// Package results models the outcome of any fallible operation as a
// tagged union — Outcome[T] — holding either a successful value or a
// non-empty sequence of normalized error records, and provides the
// combinators to compose many such outcomes into one.
//
// Two aggregation policies are first-class:
//
//   - all-or-nothing (CollectAll, ComposeAll): any failing input fails
//     the whole, and every failing input's errors are accumulated in
//     order — nothing is silently dropped;
//   - best-effort (CollectAny, ComposeAny): any succeeding input makes
//     the whole succeed, and the failures are dropped by design.
//
// The package is entirely synchronous, pure and stateless. Nothing is
// mutated after construction, so every function is safe to call from any
// number of goroutines. Errors never propagate via panic except through
// MustUnwrap, the explicitly opt-in escape hatch.
package results
