package hub

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBridgeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	// every 1:1 correspondence survives a round trip; signs bridge
	// one-way onto their vowels and are checked separately
	for _, p := range Catalog(FamilyIndic) {
		iv := p.(Indic)
		if iv.Class() == VowelSign {
			continue
		}
		rs, ok := ToRoman(iv)
		if !ok || len(rs) != 1 {
			continue
		}
		back, ok := ToIndic(rs[0])
		assert.True(t, ok, "no way back for %s", rs[0])
		assert.Equal(t, []Indic{iv}, back)
	}
}

func TestBridgeOm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	// the oṁ sign expands to two Roman phonemes
	rs, ok := ToRoman(IndicOm)
	assert.True(t, ok)
	assert.Equal(t, []Roman{RomanVowelO, RomanAnusvara}, rs)
}

func TestBridgeSignsResolveToVowels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	for sign := IndicSignAa; sign <= IndicSignAu; sign++ {
		rs, ok := ToRoman(sign)
		assert.True(t, ok, "sign %s does not bridge", sign)
		assert.Len(t, rs, 1)
		assert.Equal(t, Vowel, rs[0].Class())
	}
}

func TestBridgeMisses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	// structural Indic phonemes have no alphabetic counterpart
	_, ok := ToRoman(IndicVirama)
	assert.False(t, ok)
	_, ok = ToRoman(IndicNukta)
	assert.False(t, ok)
}
