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

package catalog

// Option configures a Catalog under construction with New.
type Option func(*builder)

// prefixRule associates one dot-separated source prefix with a message.
type prefixRule struct {
	prefix  string
	message string
}

type builder struct {
	defaults    map[string]string
	prefixes    map[string][]prefixRule
	fallback    string
	hasFallback bool
}

func newBuilder() *builder {
	return &builder{
		defaults: make(map[string]string),
		prefixes: make(map[string][]prefixRule),
	}
}

// WithMessage registers the default message for a code. It applies
// whenever no source-prefix rule for the code matches.
func WithMessage(code, message string) Option {
	return func(b *builder) { b.defaults[code] = message }
}

// WithSourcePrefix registers a message for a code that applies only when
// the record's source starts with the given dot-separated prefix. "*"
// matches exactly one segment; the longest matching prefix wins.
func WithSourcePrefix(code, prefix, message string) Option {
	return func(b *builder) {
		b.prefixes[code] = append(b.prefixes[code], prefixRule{prefix: prefix, message: message})
	}
}

// WithFallback registers the catalog-wide message returned for codes that
// have no rule at all. Without it, Resolve reports no match instead.
func WithFallback(message string) Option {
	return func(b *builder) {
		b.fallback = message
		b.hasFallback = true
	}
}
