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

package segmenttrie

import (
	"errors"
	"testing"
)

func mustInsert(t *testing.T, tr *Trie, prefix, val string) {
	t.Helper()
	if err := tr.Insert(prefix, val); err != nil {
		t.Fatalf("Insert(%q): %v", prefix, err)
	}
}

func TestInsert_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"empty segment", "a..b"},
		{"trailing dot", "a."},
		{"only wildcards", "*.*"},
		{"single wildcard", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := New().Insert(tt.prefix, "v"); !errors.Is(err, ErrInvalidPrefix) {
				t.Fatalf("Insert(%q) = %v, want ErrInvalidPrefix", tt.prefix, err)
			}
		})
	}
}

func TestMatch_LongestPrefixWins(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "storage", "short")
	mustInsert(t, tr, "storage.pg", "long")

	tests := []struct {
		name   string
		source string
		want   string
		ok     bool
	}{
		{"deep hit", "storage.pg.connect_timeout", "long", true},
		{"exact hit", "storage.pg", "long", true},
		{"shallow hit", "storage.mysql", "short", true},
		{"prefix alone", "storage", "short", true},
		{"miss", "network.dns", "", false},
		{"empty source", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Match(tt.source)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Match(%q) = (%q, %v), want (%q, %v)", tt.source, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMatch_Wildcard(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "auth.*.verify", "wild")

	if v, ok := tr.Match("auth.jwt.verify"); !ok || v != "wild" {
		t.Fatalf("wildcard should match one segment, got (%q, %v)", v, ok)
	}
	if _, ok := tr.Match("auth.verify"); ok {
		t.Fatal("wildcard must consume exactly one segment")
	}
	if _, ok := tr.Match("auth.a.b.verify"); ok {
		t.Fatal("wildcard must not span two segments")
	}
}

func TestMatch_ExactBeatsWildcardAtSameDepth(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "auth.*", "wild")
	mustInsert(t, tr, "auth.jwt", "exact")

	if v, _ := tr.Match("auth.jwt.expired"); v != "exact" {
		t.Fatalf("exact branch should win, got %q", v)
	}
	if v, _ := tr.Match("auth.saml"); v != "wild" {
		t.Fatalf("wildcard should cover the rest, got %q", v)
	}
}

func TestMatchPattern(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "mirror.*", "m")

	v, pat, ok := tr.MatchPattern("mirror.eu.fetch")
	if !ok || v != "m" || pat != "mirror.*" {
		t.Fatalf("MatchPattern = (%q, %q, %v)", v, pat, ok)
	}
}

func TestMatch_RootValue(t *testing.T) {
	tr := New()
	mustInsert(t, tr, "a", "v")
	// The root itself never carries a value; an unrelated source misses.
	if _, ok := tr.Match("zzz"); ok {
		t.Fatal("unrelated source must miss")
	}
}
