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

// Translate returns a record identical to r except that the message is
// replaced by messages[r.Code()] when that key exists. When the code has
// no entry the input record is returned unchanged.
//
// Translate is pure: neither r nor messages is modified. For richer
// resolution (per-source rules, fallbacks) see the catalog package.
func Translate(r Record, messages map[string]string) Record {
	if m, ok := messages[r.code]; ok {
		return r.WithMessage(m)
	}
	return r
}

// TranslateAll applies Translate to every record, returning a new slice.
// The input slice and its records are not modified.
func TranslateAll(recs []Record, messages map[string]string) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, Translate(r, messages))
	}
	return out
}
