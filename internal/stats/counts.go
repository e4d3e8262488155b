// Package stats computes and renders descriptive trip statistics.
package stats

import (
	"cmp"
	"sort"
)

// Count pairs a value with its number of occurrences.
type Count[T cmp.Ordered] struct {
	Value T
	N     int
}

// ValueCounts counts occurrences and sorts them by descending frequency.
// Equal frequencies are ordered by ascending value.
func ValueCounts[T cmp.Ordered](values []T) []Count[T] {
	counts := map[T]int{}
	for _, v := range values {
		counts[v]++
	}
	out := make([]Count[T], 0, len(counts))
	for v, n := range counts {
		out = append(out, Count[T]{Value: v, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N == out[j].N {
			return out[i].Value < out[j].Value
		}
		return out[i].N > out[j].N
	})
	return out
}

// Mode returns the most frequent value, breaking ties toward the smallest
// value. It reports false when values is empty.
func Mode[T cmp.Ordered](values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	counts := map[T]int{}
	best := zero
	bestN := 0
	for _, v := range values {
		counts[v]++
		n := counts[v]
		if n > bestN || (n == bestN && v < best) {
			best = v
			bestN = n
		}
	}
	return best, true
}
