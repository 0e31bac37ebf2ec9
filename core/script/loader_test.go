package script

import (
	"testing"

	"github.com/npillmayer/aksara/core"
	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const miniSchema = `
[metadata]
name = "mini"
display = "Mini"
family = "roman"
iso15924 = "Latn"
aliases = ["mn"]
sample = "ka"

[vowels]
a = "vowel.a"
aa = "vowel.aa"

[consonants]
k = "consonant.k"
kh = "consonant.kh"
`

func TestLoadMinimalSchema(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	s, err := LoadSchema([]byte(miniSchema))
	assert.NoError(t, err)
	assert.Equal(t, "mini", s.Name)
	assert.Equal(t, hub.FamilyRoman, s.Family)
	assert.Equal(t, "Latn", s.Script.String())
	assert.False(t, s.HasInherentVowel())
	//
	m, ok := s.Grapheme("kh")
	assert.True(t, ok)
	assert.Equal(t, hub.RomanConsKh, m.Phoneme)
	out, ok := s.Output(hub.RomanVowelAa)
	assert.True(t, ok)
	assert.Equal(t, "aa", out)
	_, ok = s.Output(hub.RomanConsG) // not mapped
	assert.False(t, ok)
	assert.Equal(t, 2, s.MaxGraphemeLen())
}

func TestLoadSchemaMissingSections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	doc := `
[metadata]
name = "broken"
family = "roman"

[vowels]
a = "vowel.a"
`
	_, err := LoadSchema([]byte(doc))
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Contains(t, err.Error(), "consonants")
}

func TestLoadSchemaForeignPhoneme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	// a Roman scheme cannot reference the virama
	doc := miniSchema + `
[marks]
x = "mark.virama"
`
	_, err := LoadSchema([]byte(doc))
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestLoadSchemaSignsRequireIndic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	doc := miniSchema + `
[vowel_signs]
x = "sign.aa"
`
	_, err := LoadSchema([]byte(doc))
	assert.Error(t, err)
}

func TestLoadSchemaGraphemeCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	doc := miniSchema + `
[marks]
k = "mark.anusvara"
`
	_, err := LoadSchema([]byte(doc))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}

func TestLoadSchemaDuplicateRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	// two graphemes for one phoneme: only legal when one is an alternate
	doc := miniSchema + `
[marks]
x = "mark.anusvara"
y = "mark.anusvara"
`
	_, err := LoadSchema([]byte(doc))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "alternate")
	//
	doc = miniSchema + `
[marks]
x = "mark.anusvara"

[alternates]
y = "mark.anusvara"
`
	s, err := LoadSchema([]byte(doc))
	assert.NoError(t, err)
	out, ok := s.Output(hub.RomanAnusvara)
	assert.True(t, ok)
	assert.Equal(t, "x", out)
	_, ok = s.Grapheme("y")
	assert.True(t, ok)
}

func TestNormalizationVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	doc := `
[metadata]
name = "norm"
family = "roman"

[vowels]
a = "vowel.a"
"ā" = "vowel.aa"

[consonants]
k = "consonant.k"
`
	s, err := LoadSchema([]byte(doc))
	assert.NoError(t, err)
	// the decomposed spelling a+U+0304 is accepted as input
	m, ok := s.Grapheme("ā")
	assert.True(t, ok)
	assert.Equal(t, hub.RomanVowelAa, m.Phoneme)
	assert.True(t, m.Alternate)
	// but rendering sticks to the declared composed form
	out, _ := s.Output(hub.RomanVowelAa)
	assert.Equal(t, "ā", out)
}
