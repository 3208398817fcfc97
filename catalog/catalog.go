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

import (
	"fmt"
	"strings"

	"github.com/s33r/results/catalog/internal/segmenttrie"
	"github.com/s33r/results/record"
)

// New constructs an immutable Catalog snapshot.
//
// Build process:
//
//  1. Start from an empty builder (no built-in messages — unlike status
//     mapping, message text is always application policy).
//  2. Apply the user-provided options (per-code defaults, source-prefix
//     rules, fallback).
//  3. Build one prefix trie per code from the source rules; "*" matches
//     exactly one segment and the longest prefix wins.
//  4. Freeze everything into a read-only snapshot.
//
// The resulting Catalog is fully thread-safe and designed for long-lived
// reuse. Errors indicate invalid prefix rules.
func New(opts ...Option) (*Catalog, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	tries := make(map[string]*segmenttrie.Trie, len(b.prefixes))
	for code, rules := range b.prefixes {
		t := segmenttrie.New()
		for _, r := range rules {
			p := normalizePrefix(r.prefix)
			if p == "" {
				return nil, fmt.Errorf("catalog: empty source prefix for code %q", code)
			}
			if err := t.Insert(p, r.message); err != nil {
				return nil, fmt.Errorf("catalog: cannot insert prefix %q for code %q: %w", r.prefix, code, err)
			}
		}
		tries[code] = t
	}

	defaults := make(map[string]string, len(b.defaults))
	for k, v := range b.defaults {
		defaults[k] = v
	}

	return &Catalog{
		defaults:    defaults,
		tries:       tries,
		fallback:    b.fallback,
		hasFallback: b.hasFallback,
	}, nil
}

// Catalog resolves a (code, source) pair into a human-readable message.
// It is an immutable snapshot: all lookups are read-only and safe for
// concurrent use.
type Catalog struct {
	// defaults holds the per-code default messages.
	defaults map[string]string

	// tries holds the per-code source-prefix rules.
	tries map[string]*segmenttrie.Trie

	// fallback applies when a code has no rule at all.
	fallback    string
	hasFallback bool
}

// Resolve returns the message for the given code and source.
//
// Resolution order (highest to lowest):
//
//  1. per-code longest-prefix match on the source;
//  2. per-code default message;
//  3. catalog-wide fallback, when one was configured.
//
// The second return reports whether any tier matched.
func (c *Catalog) Resolve(code, source string) (string, bool) {
	if t, ok := c.tries[code]; ok {
		if v, ok := t.Match(normalizePrefix(source)); ok {
			return v, true
		}
	}
	if v, ok := c.defaults[code]; ok {
		return v, true
	}
	if c.hasFallback {
		return c.fallback, true
	}
	return "", false
}

// Translate returns a copy of r whose message is the resolved catalog
// message for the record's code and source. When nothing resolves, r is
// returned unchanged. The input is never modified.
func (c *Catalog) Translate(r record.Record) record.Record {
	if m, ok := c.Resolve(r.Code(), r.Source()); ok {
		return r.WithMessage(m)
	}
	return r
}

// TranslateAll applies Translate to every record, returning a new slice.
func (c *Catalog) TranslateAll(recs []record.Record) []record.Record {
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, c.Translate(r))
	}
	return out
}

// Explain produces a textual trace of how the catalog resolved a
// (code, source) pair: which tier matched (prefix, default, fallback, or
// none) and, for prefix matches, which pattern was used.
//
// Example output:
//
//	code="502" source="mirror.eu.fetch"
//	message: tier=prefix pattern="mirror.*" -> "The mirror did not respond."
func (c *Catalog) Explain(code, source string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q source=%q\n", code, source)

	if t, ok := c.tries[code]; ok {
		if v, pat, ok := t.MatchPattern(normalizePrefix(source)); ok {
			_, _ = fmt.Fprintf(&b, "message: tier=prefix pattern=%q -> %q", pat, v)
			return b.String()
		}
	}
	if v, ok := c.defaults[code]; ok {
		_, _ = fmt.Fprintf(&b, "message: tier=default -> %q", v)
		return b.String()
	}
	if c.hasFallback {
		_, _ = fmt.Fprintf(&b, "message: tier=fallback -> %q", c.fallback)
		return b.String()
	}
	b.WriteString("message: tier=none")
	return b.String()
}

// normalizePrefix brings a source or prefix closer to canonical dotted
// form: trimmed, lowercased, slashes as dots, dashes as underscores.
func normalizePrefix(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
