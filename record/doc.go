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

// Package record defines the immutable normalized error value used across
// the results library.
//
// Every error, regardless of origin, is flattened into exactly one shape
// with four fields: message, code, location and source. There is no error
// hierarchy to preserve — handling code never needs to branch on origin,
// only on field values.
//
// Records are constructed fresh, passed by value and never mutated in
// place. All "mutations" (WithMessage, WithSource, Translate) return new
// values. This makes Records safe to share between goroutines without
// any synchronization.
package record
