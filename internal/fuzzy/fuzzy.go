// Package fuzzy ranks option names by edit distance so that an unknown
// long option can be answered with a "did you mean" hint.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher provides fuzzy matching functionality for option suggestions
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // short names are never corrected
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindMatches returns every candidate within the distance limit, best first.
// Exact (case-insensitive) matches are not suggestions and are skipped.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := []rune(strings.ToLower(input))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		c := []rune(strings.ToLower(candidate))
		if string(c) == string(in) {
			continue
		}
		d := m.distance(in, c)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: candidate, Distance: d, Score: score(in, c, d)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score weighs edit distance first, then shared prefix and length similarity.
func score(a, b []rune, distance int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}
	s := 1.0 - float64(distance)/float64(longest)

	prefix := 0
	for prefix < min(len(a), len(b)) && a[prefix] == b[prefix] {
		prefix++
	}
	if shortest := min(len(a), len(b)); shortest > 0 {
		s += float64(prefix) / float64(shortest) * 0.3
	}
	s += (1.0 - float64(abs(len(a)-len(b)))/float64(longest)) * 0.2
	return min(s, 1.0)
}

// distance is a two-row Levenshtein that gives up once every cell in a row
// exceeds maxDistance.
func (m *Matcher) distance(a, b []rune) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindSuggestions returns up to maxSuggestions candidates, best first.
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	out := make([]string, len(matches))
	for i, match := range matches {
		out[i] = match.Value
	}
	return out
}
