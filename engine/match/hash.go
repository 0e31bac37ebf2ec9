package match

import "sort"

// hashTable is the baseline strategy: a plain map probed with candidate
// windows, longest first. Construction is trivial; each Lookup costs one
// map probe per distinct key length.
type hashTable struct {
	entries map[string]interface{}
	lengths []int // distinct key byte-lengths, descending
}

func newHashTable(patterns []Pattern) Matcher {
	ht := &hashTable{entries: make(map[string]interface{}, len(patterns))}
	seen := make(map[int]bool)
	for _, p := range patterns {
		if p.Key == "" {
			continue
		}
		ht.entries[p.Key] = p.Value
		if !seen[len(p.Key)] {
			seen[len(p.Key)] = true
			ht.lengths = append(ht.lengths, len(p.Key))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ht.lengths)))
	return ht
}

// Lookup probes the table with every candidate window length, longest
// first. A window that cuts a code-point in half simply misses: keys are
// well-formed UTF-8.
func (ht *hashTable) Lookup(text string) (interface{}, int, bool) {
	for _, l := range ht.lengths {
		if l > len(text) {
			continue
		}
		if v, ok := ht.entries[text[:l]]; ok {
			return v, l, true
		}
	}
	return nil, 0, false
}
