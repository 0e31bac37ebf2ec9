package hub

// The bridge is the single point of contact between the two hub catalogs.
// No schema ever maps onto the opposite family's hub; crossing families
// always passes through the tables in this file.
//
// Correspondence is 1:1 except for a handful of entries: the oṁ sign
// decomposes into vowel + anusvara on the Roman side, and vowel signs map
// one-way onto the vowel they denote (the Indic renderer reintroduces
// signs from context, so no reverse entry exists). A lone nukta and a
// virama have no Roman correspondent at all; the resolver eliminates
// viramas and fuses nuktas before bridging, so hitting one of these here
// means unresolvable input, which degrades to passthrough.

var bridgePairs = []struct {
	i Indic
	r Roman
}{
	{IndicVowelA, RomanVowelA},
	{IndicVowelAa, RomanVowelAa},
	{IndicVowelI, RomanVowelI},
	{IndicVowelIi, RomanVowelIi},
	{IndicVowelU, RomanVowelU},
	{IndicVowelUu, RomanVowelUu},
	{IndicVowelR, RomanVowelR},
	{IndicVowelRr, RomanVowelRr},
	{IndicVowelL, RomanVowelL},
	{IndicVowelLl, RomanVowelLl},
	{IndicVowelE, RomanVowelE},
	{IndicVowelAi, RomanVowelAi},
	{IndicVowelO, RomanVowelO},
	{IndicVowelAu, RomanVowelAu},
	{IndicConsK, RomanConsK},
	{IndicConsKh, RomanConsKh},
	{IndicConsG, RomanConsG},
	{IndicConsGh, RomanConsGh},
	{IndicConsNg, RomanConsNg},
	{IndicConsC, RomanConsC},
	{IndicConsCh, RomanConsCh},
	{IndicConsJ, RomanConsJ},
	{IndicConsJh, RomanConsJh},
	{IndicConsNy, RomanConsNy},
	{IndicConsTt, RomanConsTt},
	{IndicConsTth, RomanConsTth},
	{IndicConsDd, RomanConsDd},
	{IndicConsDdh, RomanConsDdh},
	{IndicConsNn, RomanConsNn},
	{IndicConsT, RomanConsT},
	{IndicConsTh, RomanConsTh},
	{IndicConsD, RomanConsD},
	{IndicConsDh, RomanConsDh},
	{IndicConsN, RomanConsN},
	{IndicConsP, RomanConsP},
	{IndicConsPh, RomanConsPh},
	{IndicConsB, RomanConsB},
	{IndicConsBh, RomanConsBh},
	{IndicConsM, RomanConsM},
	{IndicConsY, RomanConsY},
	{IndicConsR, RomanConsR},
	{IndicConsL, RomanConsL},
	{IndicConsV, RomanConsV},
	{IndicConsLla, RomanConsLla},
	{IndicConsSh, RomanConsSh},
	{IndicConsSs, RomanConsSs},
	{IndicConsS, RomanConsS},
	{IndicConsH, RomanConsH},
	{IndicConsQ, RomanConsQ},
	{IndicConsKhha, RomanConsKhha},
	{IndicConsGhha, RomanConsGhha},
	{IndicConsZ, RomanConsZ},
	{IndicConsDddha, RomanConsDddha},
	{IndicConsRha, RomanConsRha},
	{IndicConsF, RomanConsF},
	{IndicConsYya, RomanConsYya},
	{IndicAnusvara, RomanAnusvara},
	{IndicVisarga, RomanVisarga},
	{IndicCandrabindu, RomanCandrabindu},
	{IndicAvagraha, RomanAvagraha},
	{IndicDanda, RomanDanda},
	{IndicDoubleDanda, RomanDoubleDanda},
	{IndicDigit0, RomanDigit0},
	{IndicDigit1, RomanDigit1},
	{IndicDigit2, RomanDigit2},
	{IndicDigit3, RomanDigit3},
	{IndicDigit4, RomanDigit4},
	{IndicDigit5, RomanDigit5},
	{IndicDigit6, RomanDigit6},
	{IndicDigit7, RomanDigit7},
	{IndicDigit8, RomanDigit8},
	{IndicDigit9, RomanDigit9},
}

var indicToRoman = map[Indic][]Roman{}
var romanToIndic = map[Roman][]Indic{}

func init() {
	for _, pair := range bridgePairs {
		indicToRoman[pair.i] = []Roman{pair.r}
		romanToIndic[pair.r] = []Indic{pair.i}
	}
	// decomposed correspondences
	indicToRoman[IndicOm] = []Roman{RomanVowelO, RomanAnusvara}
	// vowel signs bridge one-way onto their vowel
	for sign := IndicSignAa; sign <= IndicSignAu; sign++ {
		vowel, _ := VowelForSign(sign)
		indicToRoman[sign] = indicToRoman[vowel]
	}
}

// ToRoman translates an Indic-hub phoneme into its Roman-hub
// correspondents. A single phoneme may decompose into several (oṁ).
// ok is false for phonemes with no Roman correspondent (virama, lone
// nukta).
func ToRoman(p Indic) (roman []Roman, ok bool) {
	roman, ok = indicToRoman[p]
	if !ok {
		tracer().Debugf("no Roman-hub correspondent for %v", p)
	}
	return roman, ok
}

// ToIndic translates a Roman-hub phoneme into its Indic-hub
// correspondents.
func ToIndic(p Roman) (indic []Indic, ok bool) {
	indic, ok = romanToIndic[p]
	if !ok {
		tracer().Debugf("no Indic-hub correspondent for %v", p)
	}
	return indic, ok
}
