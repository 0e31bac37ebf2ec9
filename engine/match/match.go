package match

// Pattern associates one grapheme (a key of one or more code-points) with
// an opaque mapping value. What the value is depends on the conversion
// path: a schema entry for chained paths, precomputed target text for
// flattened direct paths.
type Pattern struct {
	Key   string
	Value interface{}
}

// Matcher is the shared contract of all matching strategies.
type Matcher interface {
	// Lookup finds the longest registered pattern that is a prefix of
	// text. It returns the pattern's value and the number of bytes
	// matched, or ok=false if no pattern matches at this position.
	Lookup(text string) (value interface{}, length int, ok bool)
}

// Strategy selects a matching implementation.
type Strategy int8

// Matching strategies.
const (
	HashTable Strategy = iota
	Automaton
	PrefixIndex
)

func (s Strategy) String() string {
	switch s {
	case HashTable:
		return "hash-table"
	case Automaton:
		return "automaton"
	case PrefixIndex:
		return "prefix-index"
	}
	return "unknown-strategy"
}

// Build constructs a matcher over patterns using the given strategy.
// Patterns with empty keys are dropped. Build copies what it needs;
// callers may reuse the slice.
func Build(s Strategy, patterns []Pattern) Matcher {
	tracer().Debugf("building %s matcher over %d patterns", s, len(patterns))
	switch s {
	case Automaton:
		return newAutomaton(patterns)
	case PrefixIndex:
		return newPrefixIndex(patterns)
	}
	return newHashTable(patterns)
}
