// Package rules holds the regional address convention: suffix rewrite tables,
// the vocabularies of expected tokens, and the patterns used to pick tokens
// out of a raw value.
package rules

import "sort"

// Table maps a raw token to its canonical replacement. A Table is never
// mutated after construction, so it can be shared between goroutines.
// Lookups are exact and case-sensitive.
type Table struct {
	entries map[string]string
}

// NewTable copies m into a new Table.
func NewTable(m map[string]string) Table {
	entries := make(map[string]string, len(m))
	for k, v := range m {
		entries[k] = v
	}
	return Table{entries: entries}
}

// Lookup returns the canonical form of token, if the table has one.
func (t Table) Lookup(token string) (string, bool) {
	v, ok := t.entries[token]
	return v, ok
}

// Replace returns the canonical form of token, or token itself.
func (t Table) Replace(token string) string {
	if v, ok := t.entries[token]; ok {
		return v
	}
	return token
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.entries) }

// Keys returns the raw tokens in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the table contents.
func (t Table) Map() map[string]string {
	out := make(map[string]string, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Vocabulary is an immutable set of tokens considered canonical.
type Vocabulary struct {
	words map[string]struct{}
	order []string
}

// NewVocabulary builds a Vocabulary. Duplicates are dropped; the first
// occurrence fixes the listing order.
func NewVocabulary(words ...string) Vocabulary {
	v := Vocabulary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if _, ok := v.words[w]; ok {
			continue
		}
		v.words[w] = struct{}{}
		v.order = append(v.order, w)
	}
	return v
}

// Contains reports whether token is in the vocabulary (exact match).
func (v Vocabulary) Contains(token string) bool {
	_, ok := v.words[token]
	return ok
}

// Len returns the number of distinct words.
func (v Vocabulary) Len() int { return len(v.order) }

// Words returns the words in declaration order.
func (v Vocabulary) Words() []string {
	return append([]string(nil), v.order...)
}
