package audit

import "sort"

// ExceptionSet groups non-conforming values by the token that made them
// fail. Each value is stored at most once per token.
type ExceptionSet struct {
	groups map[string]map[string]struct{}
}

// NewExceptionSet returns an empty set.
func NewExceptionSet() *ExceptionSet {
	return &ExceptionSet{groups: make(map[string]map[string]struct{})}
}

// Add records value under token. It reports whether value was new.
func (s *ExceptionSet) Add(token, value string) bool {
	g, ok := s.groups[token]
	if !ok {
		g = make(map[string]struct{})
		s.groups[token] = g
	}
	if _, dup := g[value]; dup {
		return false
	}
	g[value] = struct{}{}
	return true
}

// Has reports whether any value was recorded under token.
func (s *ExceptionSet) Has(token string) bool {
	_, ok := s.groups[token]
	return ok
}

// Len returns the number of distinct tokens.
func (s *ExceptionSet) Len() int { return len(s.groups) }

// Total returns the number of (token, value) pairs.
func (s *ExceptionSet) Total() int {
	n := 0
	for _, g := range s.groups {
		n += len(g)
	}
	return n
}

// Tokens returns the offending tokens in sorted order.
func (s *ExceptionSet) Tokens() []string {
	tokens := make([]string, 0, len(s.groups))
	for t := range s.groups {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Values returns the values recorded under token, sorted.
func (s *ExceptionSet) Values(token string) []string {
	g := s.groups[token]
	values := make([]string, 0, len(g))
	for v := range g {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Map returns a sorted snapshot of the set, suitable for encoding.
func (s *ExceptionSet) Map() map[string][]string {
	out := make(map[string][]string, len(s.groups))
	for t := range s.groups {
		out[t] = s.Values(t)
	}
	return out
}
