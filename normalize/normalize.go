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

package normalize

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/s33r/results/record"
)

// ParseErrorMessage is the fixed message carried by records produced from
// structured parse errors. The parse-error shape carries only a numeric
// classifier; this normalizer cannot recover a human-readable text from
// the input alone, so the caller must resolve it separately (typically
// through a catalog keyed by the record's code). This is a documented
// limitation of this one normalizer, not a defect.
const ParseErrorMessage = "The message for this parse error must be resolved from its code by the caller."

// ValidationIssue is the shape of a single validation failure as emitted
// by schema validators: a message, the path of the failing field, and a
// classifier string.
type ValidationIssue struct {
	// Message is the validator's human-readable description.
	Message string

	// Path is the ordered field path; elements are strings (field names)
	// or integers (sequence indexes).
	Path []any

	// Code is the validator's classifier, e.g. "invalid_type".
	Code string
}

// ParseError is the shape of a structured parse failure: a numeric
// classifier plus the offending span. Only the classifier survives
// normalization; the span fields exist so callers can carry the full
// shape around before normalizing.
type ParseError struct {
	// Code is the parser's numeric error classifier.
	Code int

	// Offset and Length describe the offending input span.
	Offset int
	Length int
}

// FromError normalizes an arbitrary recovered value into a Record.
//
// Three shapes are recognized:
//   - a record.Record passes through, with options applied as overrides;
//   - an error maps Error() to the message and the dynamic type name to
//     the code, with the default call-site capture as location;
//   - anything else is stringified into the message with empty code and
//     location.
//
// FromError never fails, even on nil input.
func FromError(v any, opts ...record.Option) record.Record {
	switch e := v.(type) {
	case record.Record:
		return record.New(e.Message(), prepend(opts,
			record.WithCode(e.Code()),
			record.WithLocation(e.Location()),
			record.WithSource(e.Source()),
		)...)
	case error:
		return record.New(e.Error(), prepend(opts,
			record.WithCode(typeName(e)),
		)...)
	default:
		return record.New(fmt.Sprint(v), prepend(opts,
			record.WithLocation(""),
		)...)
	}
}

// FromHTTPResponse normalizes an HTTP response into a Record: the status
// text becomes the message, the decimal status code the code, and the
// request URL the location. Nil responses and responses without an
// attached request are handled gracefully; FromHTTPResponse never fails.
func FromHTTPResponse(resp *http.Response, opts ...record.Option) record.Record {
	if resp == nil {
		return record.New("no response", prepend(opts, record.WithLocation(""))...)
	}
	url := ""
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.String()
	}
	msg := http.StatusText(resp.StatusCode)
	if msg == "" {
		msg = resp.Status
	}
	return record.New(msg, prepend(opts,
		record.WithCode(strconv.Itoa(resp.StatusCode)),
		record.WithLocation(url),
	)...)
}

// FromString normalizes a bare message into a Record with default code
// and location.
func FromString(text string, opts ...record.Option) record.Record {
	return record.New(text, opts...)
}

// FromValidationIssue normalizes a validator issue: the issue message
// becomes the message, the dot-joined field path the location, and the
// classifier the code.
func FromValidationIssue(issue ValidationIssue, opts ...record.Option) record.Record {
	return record.New(issue.Message, prepend(opts,
		record.WithCode(issue.Code),
		record.WithLocation(joinPath(issue.Path)),
	)...)
}

// FromParseError normalizes a structured parse error. Only the classifier
// is recoverable; the message is the fixed ParseErrorMessage constant.
func FromParseError(e ParseError, opts ...record.Option) record.Record {
	return record.New(ParseErrorMessage, prepend(opts,
		record.WithCode(strconv.Itoa(e.Code)),
		record.WithLocation(""),
	)...)
}

// prepend places the derived options before the caller's overrides, so a
// caller-supplied WithSource/WithLocation always wins.
func prepend(overrides []record.Option, derived ...record.Option) []record.Option {
	out := make([]record.Option, 0, len(derived)+len(overrides))
	out = append(out, derived...)
	out = append(out, overrides...)
	return out
}

// joinPath renders a field path as a dotted string, e.g.
// ["items", 2, "name"] -> "items.2.name".
func joinPath(path []any) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ".")
}

// typeName returns the dynamic type name of an error with any leading
// pointer stars stripped, e.g. "*fs.PathError" -> "fs.PathError".
func typeName(err error) string {
	return strings.TrimLeft(fmt.Sprintf("%T", err), "*")
}
