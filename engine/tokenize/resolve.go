package tokenize

import (
	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/aksara/core/script"
)

// Emission is one resolved phoneme (or a passthrough span) produced from
// the raw token stream. The token stream records graphemes as written;
// emissions record the phonemic reading, with Brahmic inherent vowels
// made explicit.
type Emission struct {
	Phoneme   hub.Phoneme // nil for passthrough spans
	Text      string      // source text covered; empty for the implicit vowel
	Pos       int         // byte offset of the source text
	Implicit  bool        // inherent vowel with no source grapheme of its own
	Extension bool        // produced by an extension grapheme or nukta fusion
}

// IsPassthrough reports whether the emission carries no phoneme.
func (e Emission) IsPassthrough() bool {
	return e.Phoneme == nil
}

// Resolve turns a token sequence into phoneme emissions. For Roman
// schemas tokens map one to one. For Indic schemas the Brahmic vowel
// rules apply:
//
//   - a bare consonant implicitly carries the short a,
//   - a directly following vowel sign substitutes its vowel,
//   - a directly following virama suppresses the vowel entirely,
//   - a directly following nukta fuses consonant and mark into the
//     extended consonant, after which the vowel rules apply again.
//
// Passthrough tokens interrupt these neighborhoods: a vowel sign after a
// passthrough span stands on its own and emits unchanged.
func Resolve(s *script.Schema, tokens []Token) []Emission {
	if s.HasInherentVowel() {
		return resolveIndic(tokens)
	}
	return resolvePlain(tokens)
}

func resolvePlain(tokens []Token) []Emission {
	out := make([]Emission, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Mapping == nil {
			out = append(out, Emission{Text: tok.Text, Pos: tok.Pos})
			continue
		}
		out = append(out, Emission{
			Phoneme:   tok.Mapping.Phoneme,
			Text:      tok.Text,
			Pos:       tok.Pos,
			Extension: tok.Mapping.Extension,
		})
	}
	return out
}

func resolveIndic(tokens []Token) []Emission {
	out := make([]Emission, 0, len(tokens)+4)
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.Mapping == nil {
			out = append(out, Emission{Text: tok.Text, Pos: tok.Pos})
			i++
			continue
		}
		if tok.Class != hub.Consonant {
			out = append(out, Emission{
				Phoneme:   tok.Mapping.Phoneme,
				Text:      tok.Text,
				Pos:       tok.Pos,
				Extension: tok.Mapping.Extension,
			})
			i++
			continue
		}

		cons := tok.Mapping.Phoneme.(hub.Indic)
		text, pos, ext := tok.Text, tok.Pos, tok.Mapping.Extension
		j := i + 1

		// fuse a trailing nukta into the extended consonant
		if j < len(tokens) && isNukta(tokens[j]) {
			if fused, ok := hub.FuseNukta(cons); ok {
				cons, ext = fused, true
				text = text + tokens[j].Text
				j++
			}
		}

		switch {
		case j < len(tokens) && tokens[j].Class == hub.VowelSign:
			sign := tokens[j].Mapping.Phoneme.(hub.Indic)
			vowel, _ := hub.VowelForSign(sign)
			out = append(out,
				Emission{Phoneme: cons, Text: text, Pos: pos, Extension: ext},
				Emission{Phoneme: vowel, Text: tokens[j].Text, Pos: tokens[j].Pos,
					Extension: tokens[j].Mapping.Extension})
			j++
		case j < len(tokens) && tokens[j].Class == hub.Virama:
			// suppressed vowel; the virama itself emits nothing
			out = append(out, Emission{Phoneme: cons, Text: text, Pos: pos, Extension: ext})
			j++
		default:
			out = append(out,
				Emission{Phoneme: cons, Text: text, Pos: pos, Extension: ext},
				Emission{Phoneme: hub.IndicVowelA, Pos: pos + len(text), Implicit: true})
		}
		i = j
	}
	tracer().Debugf("resolved %d tokens into %d emissions", len(tokens), len(out))
	return out
}

func isNukta(tok Token) bool {
	if tok.Mapping == nil {
		return false
	}
	p, ok := tok.Mapping.Phoneme.(hub.Indic)
	return ok && p == hub.IndicNukta
}
