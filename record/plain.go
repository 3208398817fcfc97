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

// Plain is the behavior-free structural projection of a Record. This is
// the canonical wire/storage-safe shape: it survives JSON round-trips and
// can be embedded in API payloads or log events without dragging the
// Record type along.
type Plain struct {
	// Message is the human-readable description.
	Message string `json:"message"`

	// Code is the classifier code. Empty means "not classified".
	Code string `json:"code,omitempty"`

	// Location is the origin pointer (call site, URL, path).
	Location string `json:"location,omitempty"`

	// Source identifies the subsystem/operation that raised the error.
	Source string `json:"source,omitempty"`
}

// Plain returns the structural copy of the record's four fields.
func (r Record) Plain() Plain {
	return Plain{
		Message:  r.message,
		Code:     r.code,
		Location: r.location,
		Source:   r.source,
	}
}

// FromPlain reconstructs a Record from its plain projection. No default
// call-site capture happens here — the plain shape is trusted as-is.
func FromPlain(p Plain) Record {
	return Record{
		message:  p.Message,
		code:     p.Code,
		location: p.Location,
		source:   p.Source,
	}
}
