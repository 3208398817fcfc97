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
	"strings"
)

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// an empty segment, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie is a prefix index over dot-separated source strings. Each node is
// one segment; the wildcard "*" matches exactly one segment. Lookups
// return the deepest stored prefix that matches the front of the source
// (longest-prefix match), so a more specific rule wins over a shorter
// one.
type Trie struct {
	children map[string]*Trie
	hasVal   bool
	val      string
	// pattern is the dotted prefix as inserted (wildcards included),
	// kept for Explain-style diagnostics.
	pattern string
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{children: make(map[string]*Trie)}
}

// Insert stores val under the dot-separated prefix, e.g. "storage.pg" or
// "auth.*.verify". A prefix made only of wildcards is rejected — it would
// match everything.
func (t *Trie) Insert(prefix, val string) error {
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if s == "" {
			return ErrInvalidPrefix
		}
		if s != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest matching prefix for source.
func (t *Trie) Match(source string) (string, bool) {
	v, _, ok := t.MatchPattern(source)
	return v, ok
}

// MatchPattern is Match plus the stored pattern that produced the value,
// for diagnostics.
//
// The walk keeps a frontier of candidate nodes per segment: at each
// segment every candidate is advanced along both its exact branch and its
// wildcard branch. The deepest node holding a value across the whole walk
// wins.
func (t *Trie) MatchPattern(source string) (val string, pattern string, ok bool) {
	best := (*Trie)(nil)
	bestDepth := -1
	frontier := []*Trie{t}

	// Requiring strictly greater depth makes the first hit at a depth
	// stick, so an exact branch beats a wildcard branch of equal depth.
	consider := func(n *Trie, depth int) {
		if n.hasVal && depth > bestDepth {
			best = n
			bestDepth = depth
		}
	}
	consider(t, 0)

	if source != "" {
		for depth, seg := range strings.Split(source, ".") {
			next := frontier[:0:0]
			for _, n := range frontier {
				if child, ok := n.children[seg]; ok {
					next = append(next, child)
					consider(child, depth+1)
				}
				if child, ok := n.children["*"]; ok {
					next = append(next, child)
					consider(child, depth+1)
				}
			}
			if len(next) == 0 {
				break
			}
			frontier = next
		}
	}

	if best == nil {
		return "", "", false
	}
	return best.val, best.pattern, true
}
