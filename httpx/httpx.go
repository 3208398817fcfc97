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

// Package httpx writes failure records as HTTP error responses.
//
// The body is a google.rpc.Status JSON document rendered via protojson,
// with one ErrorInfo detail per record. That keeps the HTTP and gRPC
// projections of the same failure structurally identical.
package httpx

import (
	"net/http"
	"strconv"

	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/s33r/results/grpcx"
	"github.com/s33r/results/record"
)

// StatusFunc resolves a record code into the HTTP status to respond
// with.
type StatusFunc func(code string) int

// DefaultStatus treats decimal record codes in the HTTP range as the
// status itself (the shape normalize.FromHTTPResponse produces) and
// falls back to 500 for everything else.
func DefaultStatus(code string) int {
	if n, err := strconv.Atoi(code); err == nil && n >= 100 && n < 600 {
		return n
	}
	return http.StatusInternalServerError
}

// Writer is a thin adapter that turns failure records into an HTTP
// response.
type Writer struct {
	// Status resolves the response status from the leading record's
	// code. Nil means DefaultStatus.
	Status StatusFunc
}

// Write renders the records as a google.rpc.Status JSON body and writes
// it with the resolved HTTP status. An empty sequence writes nothing.
//
// No redaction or filtering is performed here: whatever the records
// contain is exposed as-is. Higher-level handlers should apply policy
// (and catalog translation) before writing.
func (w Writer) Write(rw http.ResponseWriter, errs []record.Record) {
	if len(errs) == 0 {
		return
	}
	statusOf := w.Status
	if statusOf == nil {
		statusOf = DefaultStatus
	}

	st := &spb.Status{
		Code:    int32(grpcx.StatusCode(errs[0].Code())),
		Message: errs[0].Message(),
	}
	for _, r := range errs {
		// A detail that fails to pack is skipped; the leading code and
		// message still describe the failure.
		if detail, err := anypb.New(grpcx.Detail(r)); err == nil {
			st.Details = append(st.Details, detail)
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusOf(errs[0].Code()))

	// IMPORTANT: protojson must be used here to ensure proper
	// serialization of the Any-typed details and json_name fields.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(st)
	_, _ = rw.Write(b)
}
