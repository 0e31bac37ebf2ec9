package script

import (
	"sort"

	"github.com/npillmayer/aksara/core/hub"
	"golang.org/x/text/language"
)

// Mapping is one entry of a schema's grapheme table: a grapheme of one or
// more code-points, mapped onto exactly one hub phoneme.
type Mapping struct {
	Grapheme  string
	Phoneme   hub.Phoneme
	Extension bool // from the best-effort extension set
	Alternate bool // accepted on input, never chosen for rendering
}

// Class is a shorthand for the mapped phoneme's class.
func (m *Mapping) Class() hub.Class {
	return m.Phoneme.Class()
}

// Schema is the immutable definition of one script. Instances are
// created by the loader and owned by the registry; they are never
// mutated by conversion calls.
type Schema struct {
	Name    string          // canonical name, e.g. "devanagari"
	Display string          // human-readable name
	Family  hub.Family      // determines the hub catalog
	Script  language.Script // ISO 15924 code, if declared
	Aliases []string
	Sample  string // a short sample text for script descriptions

	graphemes map[string]*Mapping   // grapheme → mapping
	output    map[hub.Phoneme]string // phoneme → canonical grapheme
	maxKey    int                   // longest grapheme, in bytes
}

// Grapheme looks up the mapping for a grapheme string.
func (s *Schema) Grapheme(g string) (*Mapping, bool) {
	m, ok := s.graphemes[g]
	return m, ok
}

// Mappings returns all grapheme mappings of the schema, ordered by
// grapheme. The slice is freshly allocated; the mappings are shared and
// must not be modified.
func (s *Schema) Mappings() []*Mapping {
	keys := make([]string, 0, len(s.graphemes))
	for g := range s.graphemes {
		keys = append(keys, g)
	}
	sort.Strings(keys)
	ms := make([]*Mapping, len(keys))
	for i, g := range keys {
		ms[i] = s.graphemes[g]
	}
	return ms
}

// Output returns the canonical grapheme rendering the given phoneme in
// this script, if the script can express it.
func (s *Schema) Output(p hub.Phoneme) (string, bool) {
	g, ok := s.output[p]
	return g, ok
}

// MaxGraphemeLen returns the byte length of the longest registered
// grapheme. It bounds the tokenizer's lookahead.
func (s *Schema) MaxGraphemeLen() int {
	return s.maxKey
}

// HasInherentVowel reports whether bare consonants of this script carry
// the short inherent vowel (true for every Brahmic script).
func (s *Schema) HasInherentVowel() bool {
	return s.Family == hub.FamilyIndic
}
