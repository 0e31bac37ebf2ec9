/*
Package match provides pattern matchers for grapheme lookup.

Transliteration throughput is dominated by finding the longest registered
grapheme at each input position. This package exposes one contract for
that operation and three interchangeable strategies implementing it:
a hash table probing candidate windows, a multi-pattern automaton (a trie
with failure links, built once per mapping), and a prefix-indexed table
scanning only the bucket for the leading code-point.

The strategies differ in construction cost, memory and per-call latency,
never in behavior: for identical patterns and input they return identical
matches. Callers pick one via Strategy at path-construction time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aksara.match'.
func tracer() tracing.Trace {
	return tracing.Select("aksara.match")
}
