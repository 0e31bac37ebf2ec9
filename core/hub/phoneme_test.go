package hub

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPhonemeClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	assert.Equal(t, Vowel, IndicVowelA.Class())
	assert.Equal(t, Vowel, IndicVowelAu.Class())
	assert.Equal(t, VowelSign, IndicSignAa.Class())
	assert.Equal(t, VowelSign, IndicSignAu.Class())
	assert.Equal(t, Consonant, IndicConsK.Class())
	assert.Equal(t, Consonant, IndicConsYya.Class())
	assert.Equal(t, Virama, IndicVirama.Class())
	assert.Equal(t, Mark, IndicAnusvara.Class())
	assert.Equal(t, Mark, IndicOm.Class())
	assert.Equal(t, Digit, IndicDigit0.Class())
	assert.Equal(t, Vowel, RomanVowelR.Class())
	assert.Equal(t, Consonant, RomanConsSs.Class())
	assert.Equal(t, Mark, RomanVisarga.Class())
	assert.Equal(t, Digit, RomanDigit9.Class())
}

func TestPhonemeNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	assert.Equal(t, "vowel.aa", IndicVowelAa.Name())
	assert.Equal(t, "consonant.k", IndicConsK.Name())
	assert.Equal(t, "mark.virama", IndicVirama.Name())
	p, ok := IndicByName("sign.ai")
	assert.True(t, ok)
	assert.Equal(t, IndicSignAi, p)
	q, ok := RomanByName("consonant.dddha")
	assert.True(t, ok)
	assert.Equal(t, RomanConsDddha, q)
	_, ok = RomanByName("mark.virama") // alphabetic scripts have no virama
	assert.False(t, ok)
	_, ok = ByName(FamilyIndic, "consonant.nosuch")
	assert.False(t, ok)
}

func TestVowelSignCorrespondence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	// every sign denotes exactly one vowel and back
	for sign := IndicSignAa; sign <= IndicSignAu; sign++ {
		vowel, ok := VowelForSign(sign)
		assert.True(t, ok, "no vowel for %s", sign)
		assert.Equal(t, Vowel, vowel.Class())
		back, ok := SignForVowel(vowel)
		assert.True(t, ok)
		assert.Equal(t, sign, back)
	}
	// the inherent a has no sign
	_, ok := SignForVowel(IndicVowelA)
	assert.False(t, ok)
	_, ok = VowelForSign(IndicConsK)
	assert.False(t, ok)
}

func TestNuktaFusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	ext, ok := FuseNukta(IndicConsK)
	assert.True(t, ok)
	assert.Equal(t, IndicConsQ, ext)
	ext, ok = FuseNukta(IndicConsDdh)
	assert.True(t, ok)
	assert.Equal(t, IndicConsRha, ext)
	_, ok = FuseNukta(IndicConsM) // म has no nukta form
	assert.False(t, ok)
	assert.True(t, IsExtension(IndicConsQ))
	assert.True(t, IsExtension(IndicNukta))
	assert.True(t, IsExtension(RomanConsF))
	assert.False(t, IsExtension(IndicConsK))
}

func TestCatalogsAreClosed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.hub")
	defer teardown()
	//
	indic := Catalog(FamilyIndic)
	roman := Catalog(FamilyRoman)
	assert.NotEmpty(t, indic)
	assert.NotEmpty(t, roman)
	// Indic has 13 signs plus virama and nukta on top of the Roman side's
	// shared inventory, Roman has no om
	assert.Equal(t, len(roman)+13+2+1, len(indic))
	for _, p := range indic {
		assert.Equal(t, FamilyIndic, p.Family())
		assert.NotEqual(t, Unmapped, p.Class(), "unclassified %s", p.Name())
	}
	for _, p := range roman {
		assert.Equal(t, FamilyRoman, p.Family())
		assert.NotEqual(t, Unmapped, p.Class(), "unclassified %s", p.Name())
	}
}
