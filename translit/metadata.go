package translit

import (
	"github.com/npillmayer/aksara/engine/path"
)

// Metadata accompanies a conversion result. It names the resolved
// source and target scripts and accounts for every piece of input that
// passed through untranslated, in input order.
type Metadata struct {
	SourceScript   string
	TargetScript   string
	UnknownTokens  []path.Unknown
	UsedExtensions []string
}

// HasUnknowns reports whether any input passed through untranslated.
func (md *Metadata) HasUnknowns() bool {
	return md != nil && len(md.UnknownTokens) > 0
}
