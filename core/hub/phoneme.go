package hub

import "fmt"

// Family denotes the script family a schema or phoneme belongs to.
type Family int8

// Script families. Brahmic scripts are syllabic (abugida) scripts, Roman
// covers alphabetic romanization schemes.
const (
	FamilyOther Family = iota
	FamilyIndic
	FamilyRoman
)

func (f Family) String() string {
	switch f {
	case FamilyIndic:
		return "indic"
	case FamilyRoman:
		return "roman"
	}
	return "other"
}

// Class is the grapheme/phoneme class used by the tokenizer and the
// renderers. Brahmic vowel handling is driven entirely by it.
type Class int8

// Phoneme classes.
const (
	Unmapped Class = iota // no schema mapping; content passes through
	Consonant
	Vowel     // independent vowel
	VowelSign // dependent vowel (matra), Indic hub only
	Virama    // vowel suppressor, Indic hub only
	Mark      // anusvara, visarga, candrabindu, nukta, punctuation marks
	Digit
)

func (c Class) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	case VowelSign:
		return "vowel-sign"
	case Virama:
		return "virama"
	case Mark:
		return "mark"
	case Digit:
		return "digit"
	}
	return "unmapped"
}

// Phoneme is one phonemic unit in either hub catalog. The two concrete
// types are Indic and Roman; no other implementations exist.
type Phoneme interface {
	Class() Class
	Family() Family
	Name() string
}

// --- Indic hub catalog -----------------------------------------------------

// Indic is a phoneme id in the Indic-hub catalog.
type Indic uint16

const (
	indicNone Indic = iota

	// Independent vowels
	IndicVowelA
	IndicVowelAa
	IndicVowelI
	IndicVowelIi
	IndicVowelU
	IndicVowelUu
	IndicVowelR  // vocalic r̥
	IndicVowelRr // vocalic r̥̄
	IndicVowelL  // vocalic l̥
	IndicVowelLl // vocalic l̥̄
	IndicVowelE
	IndicVowelAi
	IndicVowelO
	IndicVowelAu

	indicSigns // marker

	// Dependent vowel signs (matras); there is no sign for the short a,
	// it is the inherent vowel of every bare consonant.
	IndicSignAa
	IndicSignI
	IndicSignIi
	IndicSignU
	IndicSignUu
	IndicSignR
	IndicSignRr
	IndicSignL
	IndicSignLl
	IndicSignE
	IndicSignAi
	IndicSignO
	IndicSignAu

	indicConsonants // marker

	// Velar
	IndicConsK
	IndicConsKh
	IndicConsG
	IndicConsGh
	IndicConsNg
	// Palatal
	IndicConsC
	IndicConsCh
	IndicConsJ
	IndicConsJh
	IndicConsNy
	// Retroflex
	IndicConsTt
	IndicConsTth
	IndicConsDd
	IndicConsDdh
	IndicConsNn
	// Dental
	IndicConsT
	IndicConsTh
	IndicConsD
	IndicConsDh
	IndicConsN
	// Labial
	IndicConsP
	IndicConsPh
	IndicConsB
	IndicConsBh
	IndicConsM
	// Semivowels and liquids
	IndicConsY
	IndicConsR
	IndicConsL
	IndicConsV
	IndicConsLla // retroflex ḷa
	// Sibilants and aspirate
	IndicConsSh // palatal ś
	IndicConsSs // retroflex ṣ
	IndicConsS
	IndicConsH
	// Nukta consonants (extensions)
	IndicConsQ     // क़
	IndicConsKhha  // ख़
	IndicConsGhha  // ग़
	IndicConsZ     // ज़
	IndicConsDddha // ड़
	IndicConsRha   // ढ़
	IndicConsF     // फ़
	IndicConsYya   // य़

	indicMarks // marker

	IndicAnusvara
	IndicVisarga
	IndicCandrabindu
	IndicVirama
	IndicNukta
	IndicAvagraha
	IndicOm
	IndicDanda
	IndicDoubleDanda

	indicDigits // marker

	IndicDigit0
	IndicDigit1
	IndicDigit2
	IndicDigit3
	IndicDigit4
	IndicDigit5
	IndicDigit6
	IndicDigit7
	IndicDigit8
	IndicDigit9

	indicTop // marker
)

// Class returns the phoneme class of p.
func (p Indic) Class() Class {
	switch {
	case p > indicNone && p < indicSigns:
		return Vowel
	case p > indicSigns && p < indicConsonants:
		return VowelSign
	case p > indicConsonants && p < indicMarks:
		return Consonant
	case p == IndicVirama:
		return Virama
	case p > indicMarks && p < indicDigits:
		return Mark
	case p > indicDigits && p < indicTop:
		return Digit
	}
	return Unmapped
}

// Family returns FamilyIndic.
func (p Indic) Family() Family {
	return FamilyIndic
}

// Name returns the symbolic catalog name of p, e.g. "vowel.aa" or
// "consonant.k". Schema documents reference phonemes by these names.
func (p Indic) Name() string {
	if n, ok := indicNames[p]; ok {
		return n
	}
	return fmt.Sprintf("indic.%d", uint16(p))
}

func (p Indic) String() string {
	return p.Name()
}

var _ Phoneme = indicNone

var indicNames = map[Indic]string{
	IndicVowelA:      "vowel.a",
	IndicVowelAa:     "vowel.aa",
	IndicVowelI:      "vowel.i",
	IndicVowelIi:     "vowel.ii",
	IndicVowelU:      "vowel.u",
	IndicVowelUu:     "vowel.uu",
	IndicVowelR:      "vowel.r",
	IndicVowelRr:     "vowel.rr",
	IndicVowelL:      "vowel.l",
	IndicVowelLl:     "vowel.ll",
	IndicVowelE:      "vowel.e",
	IndicVowelAi:     "vowel.ai",
	IndicVowelO:      "vowel.o",
	IndicVowelAu:     "vowel.au",
	IndicSignAa:      "sign.aa",
	IndicSignI:       "sign.i",
	IndicSignIi:      "sign.ii",
	IndicSignU:       "sign.u",
	IndicSignUu:      "sign.uu",
	IndicSignR:       "sign.r",
	IndicSignRr:      "sign.rr",
	IndicSignL:       "sign.l",
	IndicSignLl:      "sign.ll",
	IndicSignE:       "sign.e",
	IndicSignAi:      "sign.ai",
	IndicSignO:       "sign.o",
	IndicSignAu:      "sign.au",
	IndicConsK:       "consonant.k",
	IndicConsKh:      "consonant.kh",
	IndicConsG:       "consonant.g",
	IndicConsGh:      "consonant.gh",
	IndicConsNg:      "consonant.ng",
	IndicConsC:       "consonant.c",
	IndicConsCh:      "consonant.ch",
	IndicConsJ:       "consonant.j",
	IndicConsJh:      "consonant.jh",
	IndicConsNy:      "consonant.ny",
	IndicConsTt:      "consonant.tt",
	IndicConsTth:     "consonant.tth",
	IndicConsDd:      "consonant.dd",
	IndicConsDdh:     "consonant.ddh",
	IndicConsNn:      "consonant.nn",
	IndicConsT:       "consonant.t",
	IndicConsTh:      "consonant.th",
	IndicConsD:       "consonant.d",
	IndicConsDh:      "consonant.dh",
	IndicConsN:       "consonant.n",
	IndicConsP:       "consonant.p",
	IndicConsPh:      "consonant.ph",
	IndicConsB:       "consonant.b",
	IndicConsBh:      "consonant.bh",
	IndicConsM:       "consonant.m",
	IndicConsY:       "consonant.y",
	IndicConsR:       "consonant.r",
	IndicConsL:       "consonant.l",
	IndicConsV:       "consonant.v",
	IndicConsLla:     "consonant.lla",
	IndicConsSh:      "consonant.sh",
	IndicConsSs:      "consonant.ss",
	IndicConsS:       "consonant.s",
	IndicConsH:       "consonant.h",
	IndicConsQ:       "consonant.q",
	IndicConsKhha:    "consonant.khha",
	IndicConsGhha:    "consonant.ghha",
	IndicConsZ:       "consonant.z",
	IndicConsDddha:   "consonant.dddha",
	IndicConsRha:     "consonant.rha",
	IndicConsF:       "consonant.f",
	IndicConsYya:     "consonant.yya",
	IndicAnusvara:    "mark.anusvara",
	IndicVisarga:     "mark.visarga",
	IndicCandrabindu: "mark.candrabindu",
	IndicVirama:      "mark.virama",
	IndicNukta:       "mark.nukta",
	IndicAvagraha:    "mark.avagraha",
	IndicOm:          "mark.om",
	IndicDanda:       "mark.danda",
	IndicDoubleDanda: "mark.danda2",
	IndicDigit0:      "digit.0",
	IndicDigit1:      "digit.1",
	IndicDigit2:      "digit.2",
	IndicDigit3:      "digit.3",
	IndicDigit4:      "digit.4",
	IndicDigit5:      "digit.5",
	IndicDigit6:      "digit.6",
	IndicDigit7:      "digit.7",
	IndicDigit8:      "digit.8",
	IndicDigit9:      "digit.9",
}

var indicByName = map[string]Indic{}

// IndicByName resolves a symbolic catalog name to an Indic-hub phoneme.
func IndicByName(name string) (Indic, bool) {
	p, ok := indicByName[name]
	return p, ok
}

// VowelForSign translates a dependent vowel sign into the independent
// vowel it denotes. It returns false for anything that is not a sign.
func VowelForSign(sign Indic) (Indic, bool) {
	if sign.Class() != VowelSign {
		return indicNone, false
	}
	// signs and vowels are laid out in the same order, offset by one
	// because there is no sign for the inherent a
	return IndicVowelA + (sign - indicSigns), true
}

// SignForVowel is the inverse of VowelForSign. The short a has no sign:
// SignForVowel(IndicVowelA) returns false.
func SignForVowel(vowel Indic) (Indic, bool) {
	if vowel.Class() != Vowel || vowel == IndicVowelA {
		return indicNone, false
	}
	return indicSigns + (vowel - IndicVowelA), true
}

// nukta fusions: base consonant + nukta = extended consonant
var nuktaFusions = map[Indic]Indic{
	IndicConsK:   IndicConsQ,
	IndicConsKh:  IndicConsKhha,
	IndicConsG:   IndicConsGhha,
	IndicConsJ:   IndicConsZ,
	IndicConsDd:  IndicConsDddha,
	IndicConsDdh: IndicConsRha,
	IndicConsPh:  IndicConsF,
	IndicConsY:   IndicConsYya,
}

// FuseNukta returns the extended consonant for a base consonant followed
// by a nukta mark, e.g. क + ़ = क़. Not every consonant has one.
func FuseNukta(base Indic) (Indic, bool) {
	ext, ok := nuktaFusions[base]
	return ext, ok
}

// --- Roman hub catalog -----------------------------------------------------

// Roman is a phoneme id in the Roman-hub catalog. Romanization schemes
// are alphabetic: there are no vowel signs and no virama, and vowels are
// always written out.
type Roman uint16

const (
	romanNone Roman = iota

	RomanVowelA
	RomanVowelAa
	RomanVowelI
	RomanVowelIi
	RomanVowelU
	RomanVowelUu
	RomanVowelR
	RomanVowelRr
	RomanVowelL
	RomanVowelLl
	RomanVowelE
	RomanVowelAi
	RomanVowelO
	RomanVowelAu

	romanConsonants // marker

	RomanConsK
	RomanConsKh
	RomanConsG
	RomanConsGh
	RomanConsNg
	RomanConsC
	RomanConsCh
	RomanConsJ
	RomanConsJh
	RomanConsNy
	RomanConsTt
	RomanConsTth
	RomanConsDd
	RomanConsDdh
	RomanConsNn
	RomanConsT
	RomanConsTh
	RomanConsD
	RomanConsDh
	RomanConsN
	RomanConsP
	RomanConsPh
	RomanConsB
	RomanConsBh
	RomanConsM
	RomanConsY
	RomanConsR
	RomanConsL
	RomanConsV
	RomanConsLla
	RomanConsSh
	RomanConsSs
	RomanConsS
	RomanConsH
	RomanConsQ
	RomanConsKhha
	RomanConsGhha
	RomanConsZ
	RomanConsDddha
	RomanConsRha
	RomanConsF
	RomanConsYya

	romanMarks // marker

	RomanAnusvara
	RomanVisarga
	RomanCandrabindu
	RomanAvagraha
	RomanDanda
	RomanDoubleDanda

	romanDigits // marker

	RomanDigit0
	RomanDigit1
	RomanDigit2
	RomanDigit3
	RomanDigit4
	RomanDigit5
	RomanDigit6
	RomanDigit7
	RomanDigit8
	RomanDigit9

	romanTop // marker
)

// Class returns the phoneme class of p.
func (p Roman) Class() Class {
	switch {
	case p > romanNone && p < romanConsonants:
		return Vowel
	case p > romanConsonants && p < romanMarks:
		return Consonant
	case p > romanMarks && p < romanDigits:
		return Mark
	case p > romanDigits && p < romanTop:
		return Digit
	}
	return Unmapped
}

// Family returns FamilyRoman.
func (p Roman) Family() Family {
	return FamilyRoman
}

// Name returns the symbolic catalog name of p.
func (p Roman) Name() string {
	if n, ok := romanNames[p]; ok {
		return n
	}
	return fmt.Sprintf("roman.%d", uint16(p))
}

func (p Roman) String() string {
	return p.Name()
}

var _ Phoneme = romanNone

var romanNames = map[Roman]string{
	RomanVowelA:      "vowel.a",
	RomanVowelAa:     "vowel.aa",
	RomanVowelI:      "vowel.i",
	RomanVowelIi:     "vowel.ii",
	RomanVowelU:      "vowel.u",
	RomanVowelUu:     "vowel.uu",
	RomanVowelR:      "vowel.r",
	RomanVowelRr:     "vowel.rr",
	RomanVowelL:      "vowel.l",
	RomanVowelLl:     "vowel.ll",
	RomanVowelE:      "vowel.e",
	RomanVowelAi:     "vowel.ai",
	RomanVowelO:      "vowel.o",
	RomanVowelAu:     "vowel.au",
	RomanConsK:       "consonant.k",
	RomanConsKh:      "consonant.kh",
	RomanConsG:       "consonant.g",
	RomanConsGh:      "consonant.gh",
	RomanConsNg:      "consonant.ng",
	RomanConsC:       "consonant.c",
	RomanConsCh:      "consonant.ch",
	RomanConsJ:       "consonant.j",
	RomanConsJh:      "consonant.jh",
	RomanConsNy:      "consonant.ny",
	RomanConsTt:      "consonant.tt",
	RomanConsTth:     "consonant.tth",
	RomanConsDd:      "consonant.dd",
	RomanConsDdh:     "consonant.ddh",
	RomanConsNn:      "consonant.nn",
	RomanConsT:       "consonant.t",
	RomanConsTh:      "consonant.th",
	RomanConsD:       "consonant.d",
	RomanConsDh:      "consonant.dh",
	RomanConsN:       "consonant.n",
	RomanConsP:       "consonant.p",
	RomanConsPh:      "consonant.ph",
	RomanConsB:       "consonant.b",
	RomanConsBh:      "consonant.bh",
	RomanConsM:       "consonant.m",
	RomanConsY:       "consonant.y",
	RomanConsR:       "consonant.r",
	RomanConsL:       "consonant.l",
	RomanConsV:       "consonant.v",
	RomanConsLla:     "consonant.lla",
	RomanConsSh:      "consonant.sh",
	RomanConsSs:      "consonant.ss",
	RomanConsS:       "consonant.s",
	RomanConsH:       "consonant.h",
	RomanConsQ:       "consonant.q",
	RomanConsKhha:    "consonant.khha",
	RomanConsGhha:    "consonant.ghha",
	RomanConsZ:       "consonant.z",
	RomanConsDddha:   "consonant.dddha",
	RomanConsRha:     "consonant.rha",
	RomanConsF:       "consonant.f",
	RomanConsYya:     "consonant.yya",
	RomanAnusvara:    "mark.anusvara",
	RomanVisarga:     "mark.visarga",
	RomanCandrabindu: "mark.candrabindu",
	RomanAvagraha:    "mark.avagraha",
	RomanDanda:       "mark.danda",
	RomanDoubleDanda: "mark.danda2",
	RomanDigit0:      "digit.0",
	RomanDigit1:      "digit.1",
	RomanDigit2:      "digit.2",
	RomanDigit3:      "digit.3",
	RomanDigit4:      "digit.4",
	RomanDigit5:      "digit.5",
	RomanDigit6:      "digit.6",
	RomanDigit7:      "digit.7",
	RomanDigit8:      "digit.8",
	RomanDigit9:      "digit.9",
}

var romanByName = map[string]Roman{}

// RomanByName resolves a symbolic catalog name to a Roman-hub phoneme.
func RomanByName(name string) (Roman, bool) {
	p, ok := romanByName[name]
	return p, ok
}

// ByName resolves a symbolic catalog name within the given family.
func ByName(family Family, name string) (Phoneme, bool) {
	switch family {
	case FamilyIndic:
		if p, ok := IndicByName(name); ok {
			return p, true
		}
	case FamilyRoman:
		if p, ok := RomanByName(name); ok {
			return p, true
		}
	}
	return nil, false
}

// IsExtension reports whether p belongs to the best-effort extension set
// (nukta consonants and the oṁ sign) rather than a script's base
// inventory.
func IsExtension(p Phoneme) bool {
	switch q := p.(type) {
	case Indic:
		return (q >= IndicConsQ && q <= IndicConsYya) || q == IndicOm || q == IndicNukta
	case Roman:
		return q >= RomanConsQ && q <= RomanConsYya
	}
	return false
}

// Catalog enumerates all phonemes of a family's hub catalog, ordered by
// id. Both catalogs are closed; the path optimizer precomputes its
// flattened tables over this enumeration.
func Catalog(f Family) []Phoneme {
	var ps []Phoneme
	switch f {
	case FamilyIndic:
		for p := indicNone + 1; p < indicTop; p++ {
			if _, ok := indicNames[p]; ok {
				ps = append(ps, p)
			}
		}
	case FamilyRoman:
		for p := romanNone + 1; p < romanTop; p++ {
			if _, ok := romanNames[p]; ok {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

func init() {
	for p, n := range indicNames {
		indicByName[n] = p
	}
	for p, n := range romanNames {
		romanByName[n] = p
	}
}
