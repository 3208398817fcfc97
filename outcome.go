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
	"time"

	"github.com/google/uuid"
	"github.com/s33r/results/normalize"
	"github.com/s33r/results/record"
)

// UnknownErrorCode is the code of the record synthesized when a failure
// is constructed with no error information at all.
const UnknownErrorCode = "UnknownError"

// unknownErrorMessage documents the producer-side ambiguity the synthetic
// record stands in for.
const unknownErrorMessage = "No value for data was provided, but no errors were either."

// Outcome is the tagged union representing either a successful value or
// a non-empty ordered sequence of error records.
//
// The discriminant (IsSuccess) is the only thing consumers may branch on:
// Value is meaningful only on success and Errors only on failure. The
// zero Outcome is not a valid value; always use the constructors.
//
// Each outcome is stamped with a unique id and its creation time. Neither
// participates in any semantic comparison; they exist for correlation in
// diagnostics.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   bool
	data      T
	errs      []record.Record
}

// Success constructs a successful outcome carrying data.
func Success[T any](data T) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		success:   true,
		data:      data,
	}
}

// Failure constructs a failed outcome from an ordered sequence of
// records. Every contributed record with an empty source is back-filled
// (as a copy — the inputs are never modified) with the WithSource option
// when one is given.
//
// A failure's error sequence is always non-empty: handed an empty
// sequence, Failure synthesizes the UnknownError record so the invariant
// holds for every constructed outcome.
func Failure[T any](errs []record.Record, opts ...Option) Outcome[T] {
	s := apply(opts)
	out := make([]record.Record, 0, max(len(errs), 1))
	for _, r := range errs {
		out = append(out, r.FillSource(s.source))
	}
	if len(out) == 0 {
		out = append(out, unknownRecord(s.source))
	}
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		success:   false,
		errs:      out,
	}
}

// FailureText constructs a failed outcome from a single message,
// normalized via normalize.FromString.
func FailureText[T any](text string, opts ...Option) Outcome[T] {
	s := apply(opts)
	return Failure[T]([]record.Record{
		normalize.FromString(text, record.WithSource(s.source)),
	})
}

// FailureRecord constructs a failed outcome from a single record.
func FailureRecord[T any](r record.Record, opts ...Option) Outcome[T] {
	return Failure[T]([]record.Record{r}, opts...)
}

// Wrap builds a well-formed outcome from loosely-structured producer
// output, which may supply errors, data, or neither.
//
//   - non-empty errs  -> Failure with those errors;
//   - nil data        -> Failure with the synthesized UnknownError record
//     (nil is the "absent" sentinel — a pointer to an empty or zero value
//     is a present value and yields Success);
//   - otherwise       -> Success(*data).
func Wrap[T any](data *T, errs []record.Record, opts ...Option) Outcome[T] {
	if len(errs) > 0 {
		return Failure[T](errs, opts...)
	}
	if data == nil {
		s := apply(opts)
		return Failure[T]([]record.Record{unknownRecord(s.source)})
	}
	return Success(*data)
}

// IsSuccess reports which variant is active.
func (o Outcome[T]) IsSuccess() bool { return o.success }

// Value returns the successful data. Meaningful only when IsSuccess
// reports true; on a failure it returns the zero value of T.
func (o Outcome[T]) Value() T { return o.data }

// Errors returns a copy of the error sequence. Meaningful only when
// IsSuccess reports false; on a success it returns nil. The copy keeps
// the outcome immutable no matter what the caller does with the slice.
func (o Outcome[T]) Errors() []record.Record {
	if len(o.errs) == 0 {
		return nil
	}
	out := make([]record.Record, len(o.errs))
	copy(out, o.errs)
	return out
}

// ID returns the outcome's correlation id.
func (o Outcome[T]) ID() uuid.UUID { return o.id }

// CreatedAt returns the construction time (UTC).
func (o Outcome[T]) CreatedAt() time.Time { return o.createdAt }

// unknownRecord is the record synthesized for failures that carry no
// error information. No call site is captured: the construction site of
// the synthetic record points at this library, not at the producer.
func unknownRecord(source string) record.Record {
	return record.New(unknownErrorMessage,
		record.WithCode(UnknownErrorCode),
		record.WithLocation(""),
		record.WithSource(source),
	)
}
