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

// Option is a functional option accepted by the failure constructors,
// Unwrap, and every combinator.
type Option func(*settings)

type settings struct {
	source string
}

// WithSource back-fills the given source onto every contributed record
// whose own source is empty. Records that already carry a source are
// left untouched. Back-filling always produces new record values; the
// inputs are never mutated.
func WithSource(source string) Option {
	return func(s *settings) { s.source = source }
}

func apply(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
