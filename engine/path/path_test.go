package path

import (
	"testing"

	"github.com/npillmayer/aksara/core/script"
	"github.com/npillmayer/aksara/engine/match"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func loadSchema(t *testing.T, name string) *script.Schema {
	r, err := script.Global()
	assert.NoError(t, err)
	s, err := r.Load(name)
	assert.NoError(t, err)
	return s
}

func TestChainedDevaToIAST(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	p := NewChained(loadSchema(t, "devanagari"), loadSchema(t, "iast"), match.HashTable)
	assert.False(t, p.IsDirect())
	assert.Equal(t, "dharma", p.Apply("धर्म", nil))
	assert.Equal(t, "kurukṣetre", p.Apply("कुरुक्षेत्रे", nil))
	assert.Equal(t, "", p.Apply("", nil))
}

func TestChainedIASTToDeva(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	p := NewChained(loadSchema(t, "iast"), loadSchema(t, "devanagari"), match.HashTable)
	assert.Equal(t, "धर्म", p.Apply("dharma", nil))
	// final consonant takes a virama, medial vowels become signs
	assert.Equal(t, "संस्कृतम्", p.Apply("saṃskṛtam", nil))
}

func TestChainedRomanToRoman(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	p := NewChained(loadSchema(t, "iast"), loadSchema(t, "slp1"), match.HashTable)
	assert.Equal(t, "saMskftam", p.Apply("saṃskṛtam", nil))
	assert.Equal(t, "Darmakzetre", p.Apply("dharmakṣetre", nil))
}

func TestIdentityPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	deva := loadSchema(t, "devanagari")
	p := NewChained(deva, deva, match.HashTable)
	for _, text := range []string{"धर्म", "कुरुक्षेत्रे", "संस्कृतम्", "ॐ", "१२३"} {
		assert.Equal(t, text, p.Apply(text, nil))
	}
	// alternate and decomposed spellings echo unchanged instead of
	// being normalized to the canonical graphemes
	assert.Equal(t, "क़िला", p.Apply("क़िला", nil)) // precomposed क़
	iast := loadSchema(t, "iast")
	q := NewChained(iast, iast, match.HashTable)
	assert.Equal(t, "saṃskṛtam", q.Apply("saṃskṛtam", nil))
}

func TestIdentityPathMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	deva := loadSchema(t, "devanagari")
	p := NewChained(deva, deva, match.HashTable)
	var c Collector
	assert.Equal(t, "धर्मkr ज़", p.Apply("धर्मkr ज़", &c))
	assert.Len(t, c.Unknowns, 2)
	assert.Equal(t, "k", c.Unknowns[0].Token)
	assert.Equal(t, "r", c.Unknowns[1].Token)
	assert.Equal(t, []string{"consonant.z"}, c.UsedExtensions())
}

func TestPassthroughAndCollector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	p := NewChained(loadSchema(t, "devanagari"), loadSchema(t, "iast"), match.HashTable)
	var c Collector
	out := p.Apply("धर्म kr", &c)
	assert.Equal(t, "dharma kr", out)
	// the space is noise, k and r are foreign letters
	assert.Len(t, c.Unknowns, 2)
	assert.Equal(t, "k", c.Unknowns[0].Token)
	assert.Equal(t, "devanagari", c.Unknowns[0].Script)
	assert.Equal(t, []rune{'k'}, c.Unknowns[0].Codepoints)
	assert.Equal(t, "r", c.Unknowns[1].Token)
}

func TestExtensionTracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	p := NewChained(loadSchema(t, "devanagari"), loadSchema(t, "iast"), match.HashTable)
	var c Collector
	out := p.Apply("ज़ल", &c) // za la
	assert.Equal(t, "zala", out)
	assert.Equal(t, []string{"consonant.z"}, c.UsedExtensions())
	assert.Empty(t, c.Unknowns)
}

func TestDirectMatchesChained(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	pairs := [][2]string{
		{"devanagari", "iast"}, {"iast", "devanagari"},
		{"devanagari", "slp1"}, {"slp1", "devanagari"},
		{"iast", "slp1"}, {"slp1", "iast"},
		{"devanagari", "gujarati"}, {"gujarati", "devanagari"},
	}
	texts := []string{
		"धर्मक्षेत्रे कुरुक्षेत्रे", "संस्कृतम्", "ॐ नमः",
		"dharmakṣetre", "saṃskṛtam", "Darmakzetre", "kfzRa",
		"mixed धर्म and latin", "",
	}
	for _, pair := range pairs {
		from, to := loadSchema(t, pair[0]), loadSchema(t, pair[1])
		direct, err := NewDirect(from, to, match.HashTable)
		assert.NoError(t, err, "%s → %s does not flatten", pair[0], pair[1])
		assert.True(t, direct.IsDirect())
		chained := NewChained(from, to, match.HashTable)
		for _, text := range texts {
			assert.Equal(t, chained.Apply(text, nil), direct.Apply(text, nil),
				"%s → %s diverges on %q", pair[0], pair[1], text)
		}
	}
}

func TestStrategiesProduceIdenticalOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	from, to := loadSchema(t, "devanagari"), loadSchema(t, "iast")
	texts := []string{"धर्मक्षेत्रे कुरुक्षेत्रे", "संस्कृतम् ॐ", "क़िला"}
	ps := []*Path{
		NewChained(from, to, match.HashTable),
		NewChained(from, to, match.Automaton),
		NewChained(from, to, match.PrefixIndex),
	}
	for _, text := range texts {
		want := ps[0].Apply(text, nil)
		assert.Equal(t, want, ps[1].Apply(text, nil), "automaton diverges on %q", text)
		assert.Equal(t, want, ps[2].Apply(text, nil), "prefix index diverges on %q", text)
	}
}

func TestCacheProfiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	reg, err := script.Global()
	assert.NoError(t, err)
	//
	cache, err := NewCache(reg, ProfileNone, match.HashTable)
	assert.NoError(t, err)
	deva, iast := loadSchema(t, "devanagari"), loadSchema(t, "iast")
	p := cache.Get(deva, iast)
	assert.False(t, p.IsDirect())
	assert.Same(t, p, cache.Get(deva, iast)) // cached
	//
	cache, err = NewCache(reg, ProfileCommonPairs, match.HashTable)
	assert.NoError(t, err)
	assert.True(t, cache.Get(deva, iast).IsDirect())
	assert.True(t, cache.Get(iast, deva).IsDirect())
	hk := loadSchema(t, "harvard-kyoto")
	assert.False(t, cache.Get(deva, hk).IsDirect()) // outside the profile
	//
	cache, err = NewCache(reg, ProfileIndicToRoman, match.HashTable)
	assert.NoError(t, err)
	assert.True(t, cache.Get(deva, hk).IsDirect())
	assert.False(t, cache.Get(hk, deva).IsDirect())
}

func TestDirectOutputLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.path")
	defer teardown()
	//
	direct, err := NewDirect(loadSchema(t, "devanagari"), loadSchema(t, "slp1"), match.HashTable)
	assert.NoError(t, err)
	assert.Equal(t, "Darmakzetre", direct.Apply("धर्मक्षेत्रे", nil))
	direct, err = NewDirect(loadSchema(t, "devanagari"), loadSchema(t, "gujarati"), match.HashTable)
	assert.NoError(t, err)
	assert.Equal(t, "ધર્મ", direct.Apply("धर्म", nil))
}
