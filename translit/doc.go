/*
Package translit is the top-level transliteration API.

A Transliterator converts text between Sanskrit and Indic writing
systems. Clients name scripts by identifier or alias; the package loads
the script schemas, picks a conversion path, and runs it:

	tr, err := translit.New(translit.WithProfile(path.ProfileCommonPairs))
	if err != nil { ... }
	out, err := tr.Convert("धर्म", "devanagari", "iast")   // "dharma"

Unrecognized input never fails a conversion: unmatched graphemes pass
through to the output unchanged, and ConvertWithMetadata reports them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aksara.translit'.
func tracer() tracing.Trace {
	return tracing.Select("aksara.translit")
}
