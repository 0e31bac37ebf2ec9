package match

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// prefixIndex partitions patterns by their leading code-point. Lookup
// dereferences one bucket and scans it linearly, longest candidate
// first. Buckets are tiny for natural-language mappings, so the linear
// scan beats hashing every candidate window.
type prefixIndex struct {
	buckets map[rune][]Pattern // each bucket sorted by key length, descending
}

func newPrefixIndex(patterns []Pattern) Matcher {
	pi := &prefixIndex{buckets: make(map[rune][]Pattern)}
	for _, p := range patterns {
		if p.Key == "" {
			continue
		}
		lead, _ := utf8.DecodeRuneInString(p.Key)
		pi.buckets[lead] = append(pi.buckets[lead], p)
	}
	for lead := range pi.buckets {
		bucket := pi.buckets[lead]
		sort.SliceStable(bucket, func(i, j int) bool {
			return len(bucket[i].Key) > len(bucket[j].Key)
		})
	}
	return pi
}

// Lookup scans the bucket of the leading code-point. The first prefix
// hit is the longest one.
func (pi *prefixIndex) Lookup(text string) (interface{}, int, bool) {
	if text == "" {
		return nil, 0, false
	}
	lead, _ := utf8.DecodeRuneInString(text)
	for _, p := range pi.buckets[lead] {
		if len(p.Key) <= len(text) && strings.HasPrefix(text, p.Key) {
			return p.Value, len(p.Key), true
		}
	}
	return nil, 0, false
}
