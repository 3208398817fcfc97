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

// FailureError is the error a failed outcome unwraps into. It is the
// single designed bridge from the outcome world into Go's error-based
// control flow; within this library errors otherwise travel as data
// inside Failure outcomes.
type FailureError struct {
	errs []record.Record
}

// Error renders every contained record via record.Format, joined by
// newlines.
func (e *FailureError) Error() string {
	return record.FormatAll(e.errs, record.DefaultDelimiter)
}

// Records returns a copy of the contained error records, in order.
func (e *FailureError) Records() []record.Record {
	out := make([]record.Record, len(e.errs))
	copy(out, e.errs)
	return out
}

// Unwrap extracts the successful value from an outcome. On a failure it
// returns a *FailureError carrying every contained record, each
// back-filled with the WithSource option when its own source is empty.
//
// Callers that have no recovery strategy and want crash-on-failure
// semantics should use MustUnwrap instead.
func Unwrap[T any](o Outcome[T], opts ...Option) (T, error) {
	if o.success {
		return o.data, nil
	}
	s := apply(opts)
	errs := make([]record.Record, 0, len(o.errs))
	for _, r := range o.errs {
		errs = append(errs, r.FillSource(s.source))
	}
	var zero T
	return zero, &FailureError{errs: errs}
}

// MustUnwrap is the panic-on-failure variant of Unwrap. It panics with
// the *FailureError a plain Unwrap would have returned.
func MustUnwrap[T any](o Outcome[T], opts ...Option) T {
	v, err := Unwrap(o, opts...)
	if err != nil {
		panic(err)
	}
	return v
}
