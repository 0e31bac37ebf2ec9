/*
Package path builds and executes conversion paths.

A conversion path connects one source script to one target script. The
general (chained) form runs source graphemes through the source schema,
the hub bridge if source and target belong to different families, and
the target schema. The direct form precomputes that chain into one
flattened lookup table per (source,target) pair. Flattening is a pure
optimization: a direct path must produce byte-identical output to the
chain it replaces, which is verified when the path is built.

Paths are immutable once built and cached per (source,target) pair.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package path

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aksara.path'.
func tracer() tracing.Trace {
	return tracing.Select("aksara.path")
}
