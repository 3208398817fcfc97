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

// Package grpcx projects failure records onto gRPC statuses and back.
//
// Each record travels as one google.rpc.ErrorInfo detail (reason=code,
// domain=source, metadata carrying message and location), so the full
// normalized error sequence survives a gRPC hop without a custom proto.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/s33r/results"
	"github.com/s33r/results/record"
)

// StatusCode maps a record code to a gRPC status code. Decimal HTTP
// status codes (as produced by normalize.FromHTTPResponse) map through
// the canonical HTTP-to-gRPC table; anything unrecognized, including the
// UnknownError sentinel, maps to codes.Unknown.
func StatusCode(code string) gcodes.Code {
	switch code {
	case "400":
		return gcodes.InvalidArgument
	case "401":
		return gcodes.Unauthenticated
	case "403":
		return gcodes.PermissionDenied
	case "404", "410":
		return gcodes.NotFound
	case "409":
		return gcodes.Aborted
	case "412":
		return gcodes.FailedPrecondition
	case "413", "429":
		return gcodes.ResourceExhausted
	case "499":
		return gcodes.Canceled
	case "500":
		return gcodes.Internal
	case "501":
		return gcodes.Unimplemented
	case "503":
		return gcodes.Unavailable
	case "504":
		return gcodes.DeadlineExceeded
	}
	if n, err := strconv.Atoi(code); err == nil {
		switch {
		case n >= 400 && n < 500:
			return gcodes.FailedPrecondition
		case n >= 500 && n < 600:
			return gcodes.Internal
		}
	}
	return gcodes.Unknown
}

// Detail renders one record as a google.rpc.ErrorInfo.
func Detail(r record.Record) *errdetails.ErrorInfo {
	meta := map[string]string{"message": r.Message()}
	if r.Location() != "" {
		meta["location"] = r.Location()
	}
	return &errdetails.ErrorInfo{
		Reason:   r.Code(),
		Domain:   r.Source(),
		Metadata: meta,
	}
}

// Error builds a gRPC error from an ordered sequence of failure records.
// The status code and message come from the leading record; every record
// is attached as an ErrorInfo detail so nothing is lost in transit. A nil
// or empty sequence yields nil.
func Error(errs []record.Record) error {
	if len(errs) == 0 {
		return nil
	}
	base := gstatus.New(StatusCode(errs[0].Code()), errs[0].Message())

	details := make([]protoadapt.MessageV1, 0, len(errs))
	for _, r := range errs {
		details = append(details, Detail(r))
	}
	// Attach each record as a detail; if that fails, the base status still
	// carries the leading code and message.
	if with, err := base.WithDetails(details...); err == nil {
		return with.Err()
	}
	return base.Err()
}

// Records extracts the normalized error records out of a gRPC error, if
// any were attached by Error. Useful in clients and tests. Order is the
// order the details were attached in.
func Records(err error) ([]record.Record, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	var recs []record.Record
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		recs = append(recs, record.FromPlain(record.Plain{
			Message:  info.GetMetadata()["message"],
			Code:     info.GetReason(),
			Location: info.GetMetadata()["location"],
			Source:   info.GetDomain(),
		}))
	}
	if len(recs) == 0 {
		return nil, false
	}
	return recs, true
}

// UnaryServerInterceptor converts a *results.FailureError returned by a
// handler — the error an Unwrap of a failed outcome produces — into a
// rich gRPC status carrying every record as a detail. Other errors pass
// through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var fe *results.FailureError
		if !errors.As(err, &fe) {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, Error(fe.Records())
	}
}
