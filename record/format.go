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

import "strings"

// DefaultDelimiter separates records in FormatAll when no delimiter is
// given.
const DefaultDelimiter = "\n"

// Format renders a record as a deterministic, human-readable line:
//
//	[{code} {source}] [{location}] {message}
//
// The code/source bracket is omitted entirely when the code is empty, and
// the location bracket is omitted entirely when the location is empty.
// Absent fields are never printed as empty brackets.
func Format(r Record) string {
	var b strings.Builder
	if r.code != "" {
		b.WriteByte('[')
		b.WriteString(r.code)
		if r.source != "" {
			b.WriteByte(' ')
			b.WriteString(r.source)
		}
		b.WriteString("] ")
	}
	if r.location != "" {
		b.WriteByte('[')
		b.WriteString(r.location)
		b.WriteString("] ")
	}
	b.WriteString(r.message)
	return b.String()
}

// FormatAll formats each record independently and joins the lines with
// delim. An empty delim means DefaultDelimiter.
func FormatAll(recs []Record, delim string) string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, Format(r))
	}
	return strings.Join(lines, delim)
}
