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
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/s33r/results/record"
	"github.com/s33r/results/record/callsite"
)

func TestFromError_PlainError(t *testing.T) {
	r := FromError(errors.New("boom"))
	if r.Message() != "boom" {
		t.Fatalf("message = %q", r.Message())
	}
	if r.Code() != "errors.errorString" {
		t.Fatalf("code should be the dynamic type name, got %q", r.Code())
	}
	if !strings.Contains(r.Location(), "normalize") {
		t.Fatalf("location should be a call-site capture, got %q", r.Location())
	}
}

func TestFromError_TypedError(t *testing.T) {
	err := &fs.PathError{Op: "open", Path: "/nope", Err: errors.New("gone")}
	r := FromError(err, record.WithCapturer(callsite.Disabled))
	if r.Code() != "fs.PathError" {
		t.Fatalf("pointer star should be stripped, got %q", r.Code())
	}
	if r.Message() != err.Error() {
		t.Fatalf("message = %q", r.Message())
	}
}

func TestFromError_RecordPassesThrough(t *testing.T) {
	in := record.New("orig", record.WithCode("c1"), record.WithLocation("l1"))
	out := FromError(in, record.WithSource("backfilled"))
	if out.Message() != "orig" || out.Code() != "c1" || out.Location() != "l1" {
		t.Fatalf("record fields should survive: %+v", out.Plain())
	}
	if out.Source() != "backfilled" {
		t.Fatalf("source override lost, got %q", out.Source())
	}
}

func TestFromError_RawValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "just text", "just text"},
		{"int", 42, "42"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromError(tt.in)
			if r.Message() != tt.want {
				t.Fatalf("message = %q, want %q", r.Message(), tt.want)
			}
			if r.Code() != "" || r.Location() != "" {
				t.Fatalf("raw values get empty code/location, got %q / %q", r.Code(), r.Location())
			}
		})
	}
}

func TestFromHTTPResponse(t *testing.T) {
	u, _ := url.Parse("https://example.com/data.json")
	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
		Request:    &http.Request{URL: u},
	}
	r := FromHTTPResponse(resp)
	if r.Message() != "Not Found" {
		t.Fatalf("message = %q", r.Message())
	}
	if r.Code() != "404" {
		t.Fatalf("code = %q", r.Code())
	}
	if r.Location() != "https://example.com/data.json" {
		t.Fatalf("location = %q", r.Location())
	}
}

func TestFromHTTPResponse_NilSafe(t *testing.T) {
	r := FromHTTPResponse(nil)
	if r.Message() == "" {
		t.Fatal("nil response still needs a message")
	}

	// No request attached: location stays empty.
	r = FromHTTPResponse(&http.Response{StatusCode: 500})
	if r.Location() != "" {
		t.Fatalf("location = %q, want empty", r.Location())
	}
	if r.Code() != "500" {
		t.Fatalf("code = %q", r.Code())
	}
}

func TestFromString(t *testing.T) {
	r := FromString("plain", record.WithSource("cli"))
	if r.Message() != "plain" || r.Source() != "cli" || r.Code() != "" {
		t.Fatalf("unexpected record: %+v", r.Plain())
	}
}

func TestFromValidationIssue(t *testing.T) {
	r := FromValidationIssue(ValidationIssue{
		Message: "expected string",
		Path:    []any{"items", 2, "name"},
		Code:    "invalid_type",
	})
	if r.Location() != "items.2.name" {
		t.Fatalf("location = %q", r.Location())
	}
	if r.Code() != "invalid_type" || r.Message() != "expected string" {
		t.Fatalf("unexpected record: %+v", r.Plain())
	}
}

func TestFromParseError(t *testing.T) {
	r := FromParseError(ParseError{Code: 6, Offset: 14, Length: 2})
	if r.Message() != ParseErrorMessage {
		t.Fatalf("message must be the fixed constant, got %q", r.Message())
	}
	if r.Code() != "6" {
		t.Fatalf("code = %q", r.Code())
	}
	if r.Location() != "" {
		t.Fatalf("location = %q, want empty", r.Location())
	}
}

func TestSourceOverride_SharedContract(t *testing.T) {
	src := record.WithSource("sub.sys")
	recs := []record.Record{
		FromError(errors.New("e"), src),
		FromHTTPResponse(&http.Response{StatusCode: 502}, src),
		FromString("s", src),
		FromValidationIssue(ValidationIssue{Message: "v"}, src),
		FromParseError(ParseError{Code: 1}, src),
	}
	for i, r := range recs {
		if r.Source() != "sub.sys" {
			t.Fatalf("factory %d dropped the source override: %+v", i, r.Plain())
		}
	}
}
