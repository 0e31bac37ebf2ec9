/*
Package script manages script schemas.

A schema is the structured definition of one script or romanization
scheme: its grapheme inventory and the mapping of every grapheme onto a
phoneme of the script family's hub catalog. Schemas are loaded from TOML
documents (the documents for all packaged scripts are embedded in the
binary), validated against the hub catalogs, and registered in a
process-wide registry. After loading, schemas are immutable; conversion
calls only ever borrow read-only references.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aksara.script'.
func tracer() tracing.Trace {
	return tracing.Select("aksara.script")
}
