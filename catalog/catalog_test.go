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
	"testing"

	"github.com/s33r/results/record"
	"github.com/s33r/results/record/callsite"
)

func mustNew(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestResolve_Tiers(t *testing.T) {
	c := mustNew(t,
		WithMessage("502", "The upstream failed."),
		WithSourcePrefix("502", "mirror", "A mirror failed."),
		WithSourcePrefix("502", "mirror.eu", "The EU mirror failed."),
		WithFallback("Something went wrong."),
	)

	tests := []struct {
		name   string
		code   string
		source string
		want   string
	}{
		{"longest prefix", "502", "mirror.eu.fetch", "The EU mirror failed."},
		{"shorter prefix", "502", "mirror.us.fetch", "A mirror failed."},
		{"default when no prefix matches", "502", "gateway.push", "The upstream failed."},
		{"default on empty source", "502", "", "The upstream failed."},
		{"fallback for unknown code", "999", "mirror.eu", "Something went wrong."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Resolve(tt.code, tt.source)
			if !ok || got != tt.want {
				t.Fatalf("Resolve(%q, %q) = (%q, %v), want %q", tt.code, tt.source, got, ok, tt.want)
			}
		})
	}
}

func TestResolve_NoFallbackMeansMiss(t *testing.T) {
	c := mustNew(t, WithMessage("404", "Missing."))
	if _, ok := c.Resolve("500", ""); ok {
		t.Fatal("unknown code without fallback must not resolve")
	}
}

func TestResolve_NormalizesSource(t *testing.T) {
	c := mustNew(t, WithSourcePrefix("x", "storage.pg", "PG."))
	if got, ok := c.Resolve("x", "Storage/PG/connect"); !ok || got != "PG." {
		t.Fatalf("normalized source should match, got (%q, %v)", got, ok)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	if _, err := New(WithSourcePrefix("x", "*.*", "m")); err == nil {
		t.Fatal("all-wildcard prefix must be rejected")
	}
	if _, err := New(WithSourcePrefix("x", "", "m")); err == nil {
		t.Fatal("empty prefix must be rejected")
	}
}

func TestTranslate(t *testing.T) {
	c := mustNew(t, WithMessage("6", "Unexpected end of input."))

	in := record.New("placeholder", record.WithCode("6"),
		record.WithSource("config.load"), record.WithCapturer(callsite.Disabled))
	out := c.Translate(in)

	if out.Message() != "Unexpected end of input." {
		t.Fatalf("message = %q", out.Message())
	}
	if out.Code() != "6" || out.Source() != "config.load" {
		t.Fatal("Translate must only change the message")
	}
	if in.Message() != "placeholder" {
		t.Fatal("input mutated")
	}

	miss := record.New("keep me", record.WithCode("7"), record.WithCapturer(callsite.Disabled))
	if c.Translate(miss) != miss {
		t.Fatal("unresolved record must pass through unchanged")
	}
}

func TestTranslateAll(t *testing.T) {
	c := mustNew(t, WithMessage("1", "One."))
	in := []record.Record{
		record.New("a", record.WithCode("1"), record.WithCapturer(callsite.Disabled)),
		record.New("b", record.WithCode("2"), record.WithCapturer(callsite.Disabled)),
	}
	out := c.TranslateAll(in)
	if out[0].Message() != "One." || out[1].Message() != "b" {
		t.Fatalf("unexpected: %q, %q", out[0].Message(), out[1].Message())
	}
}
