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

package record

import "github.com/s33r/results/record/callsite"

// Record is the canonical normalized error value.
//
// It carries:
//   - message: human-oriented description of what went wrong (required);
//   - code: optional machine-usable classifier, e.g. "404" or "UnknownError",
//     used for lookup and translation;
//   - location: optional origin pointer (call site, URL, path);
//   - source: optional free-text identifier of the subsystem or operation
//     that raised the error, e.g. "storage.pg.connect".
//
// All fields are fixed at construction. Every transformer (WithX, Translate)
// returns a new Record, so instances can be freely shared across goroutines
// and compared by field values only — never by identity.
type Record struct {
	message  string
	code     string
	location string
	source   string
}

// Option is a functional option for constructing a Record with New.
type Option func(*settings)

// settings accumulates optional fields during construction.
type settings struct {
	code     string
	source   string
	location string
	// locationSet distinguishes "explicitly empty location" from
	// "not provided, capture the call site".
	locationSet bool
	capturer    callsite.Capturer
}

// WithCode sets the classifier code.
func WithCode(code string) Option {
	return func(s *settings) { s.code = code }
}

// WithSource sets the originating subsystem/operation identifier.
func WithSource(source string) Option {
	return func(s *settings) { s.source = source }
}

// WithLocation sets the origin pointer explicitly and suppresses the
// default call-site capture. WithLocation("") therefore yields a record
// with an empty location.
func WithLocation(location string) Option {
	return func(s *settings) {
		s.location = location
		s.locationSet = true
	}
}

// WithCapturer replaces the call-site capturer used when no explicit
// location is supplied. Intended for tests that need stable locations.
func WithCapturer(c callsite.Capturer) Option {
	return func(s *settings) { s.capturer = c }
}

// New constructs a Record.
//
// Usage:
//
//	r := record.New("db is down",
//	    record.WithCode("unavailable"),
//	    record.WithSource("storage.pg.connect"),
//	)
//
// When no WithLocation option is given, the location defaults to a
// best-effort call-site capture (empty string when unavailable). New never
// fails.
func New(message string, opts ...Option) Record {
	s := settings{capturer: callsite.Default}
	for _, opt := range opts {
		opt(&s)
	}
	loc := s.location
	if !s.locationSet {
		// Skip New itself so the trace starts at the construction site.
		loc = s.capturer.Capture(1)
	}
	return Record{
		message:  message,
		code:     s.code,
		location: loc,
		source:   s.source,
	}
}

// Message returns the human-readable description.
func (r Record) Message() string { return r.message }

// Code returns the classifier code. May be empty.
func (r Record) Code() string { return r.code }

// Location returns the origin pointer. May be empty.
func (r Record) Location() string { return r.location }

// Source returns the originating subsystem identifier. May be empty.
func (r Record) Source() string { return r.source }

// WithMessage returns a copy of r with a replaced message.
// The original record is not modified.
func (r Record) WithMessage(message string) Record {
	r.message = message
	return r
}

// WithSource returns a copy of r with a replaced source.
// The original record is not modified.
func (r Record) WithSource(source string) Record {
	r.source = source
	return r
}

// FillSource returns a copy of r with the source set to fallback when the
// record has none, or r unchanged otherwise. This is the back-fill rule the
// outcome constructors apply to contributed records.
func (r Record) FillSource(fallback string) Record {
	if r.source != "" || fallback == "" {
		return r
	}
	return r.WithSource(fallback)
}
