/*
Package tokenize segments text into schema graphemes.

The scanner walks the input with greedy longest-match lookup over a
script schema's grapheme table. Content the schema does not know is cut
into grapheme clusters (so combining marks stay attached) and passed
through untouched.

The package also hosts the phoneme resolver, the small state machine
that turns a raw token run into hub phoneme emissions. For Brahmic
scripts this is where the inherent vowel lives: a bare consonant emits
the short a, a following vowel sign substitutes its vowel, a virama
suppresses it, and a nukta fuses with its consonant. The machine only
ever looks one token ahead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokenize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aksara.tokens'.
func tracer() tracing.Trace {
	return tracing.Select("aksara.tokens")
}
