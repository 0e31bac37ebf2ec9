package match

import "unicode/utf8"

// automaton is a multi-pattern matcher in the Aho-Corasick family: a
// rune-keyed trie over all pattern keys, augmented with failure links.
// Lookup is a goto-walk from the root recording the deepest terminal
// node. The failure links power Scan, which finds every pattern
// occurrence in a single linear pass and is used to cross-check path
// composition.
type automaton struct {
	root *acNode
}

type acNode struct {
	next  map[rune]*acNode
	fail  *acNode
	term  bool
	value interface{}
	depth int // length of the node's key in bytes
}

func newAutomaton(patterns []Pattern) Matcher {
	a := &automaton{root: &acNode{next: make(map[rune]*acNode)}}
	for _, p := range patterns {
		if p.Key == "" {
			continue
		}
		a.insert(p.Key, p.Value)
	}
	a.linkFailures()
	return a
}

func (a *automaton) insert(key string, value interface{}) {
	node := a.root
	depth := 0
	for _, r := range key {
		depth += utf8.RuneLen(r)
		child := node.next[r]
		if child == nil {
			child = &acNode{next: make(map[rune]*acNode), depth: depth}
			node.next[r] = child
		}
		node = child
	}
	node.term = true
	node.value = value
}

// linkFailures computes failure links breadth-first: the failure of a
// node for key w is the node for the longest proper suffix of w that is
// also a prefix of some pattern.
func (a *automaton) linkFailures() {
	queue := make([]*acNode, 0, 64)
	for _, child := range a.root.next {
		child.fail = a.root
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for r, child := range node.next {
			f := node.fail
			for f != nil && f.next[r] == nil {
				f = f.fail
			}
			if f == nil {
				child.fail = a.root
			} else {
				child.fail = f.next[r]
			}
			queue = append(queue, child)
		}
	}
}

// Lookup walks goto transitions from the root, remembering the deepest
// terminal node passed. Matches are anchored at the start of text, so
// failure links play no role here.
func (a *automaton) Lookup(text string) (interface{}, int, bool) {
	node := a.root
	var value interface{}
	length, found := 0, false
	for _, r := range text {
		node = node.next[r]
		if node == nil {
			break
		}
		if node.term {
			value, length, found = node.value, node.depth, true
		}
	}
	return value, length, found
}

// Hit is one pattern occurrence found by Scan. Start and End are byte
// offsets into the scanned text.
type Hit struct {
	Start, End int
	Value      interface{}
}

// Scan finds all pattern occurrences in text in one linear pass, using
// the failure links to carry state across positions. Hits are ordered by
// end position; for each end position the longest hit comes first.
func (a *automaton) Scan(text string) []Hit {
	var hits []Hit
	node := a.root
	pos := 0
	for _, r := range text {
		pos += utf8.RuneLen(r)
		for node != a.root && node.next[r] == nil {
			node = node.fail
		}
		if next := node.next[r]; next != nil {
			node = next
		}
		for out := node; out != a.root && out != nil; out = out.fail {
			if out.term {
				hits = append(hits, Hit{Start: pos - out.depth, End: pos, Value: out.value})
			}
		}
	}
	return hits
}
