/*
Package hub defines the two phoneme hubs of the conversion engine.

Scripts never convert into one another directly. Instead, every script
schema maps its graphemes onto the phoneme catalog of its own family hub:
Brahmic (abugida) scripts onto the Indic hub, romanization schemes onto
the Roman hub. Converting across families crosses the single bridge
between the two hubs. This star topology keeps the number of conversion
tables linear in the number of scripts.

The catalogs are closed: adding a phoneme means touching this package,
never a schema file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hub

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aksara.hub'.
func tracer() tracing.Trace {
	return tracing.Select("aksara.hub")
}
