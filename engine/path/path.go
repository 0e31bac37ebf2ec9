package path

import (
	"strings"

	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/aksara/core/script"
	"github.com/npillmayer/aksara/engine/match"
	"github.com/npillmayer/aksara/engine/tokenize"
)

// Path converts text from one script to another. A chained path emits
// through the hub bridge and the target schema on every call; a direct
// path consults a flattened table precomputed at construction time.
// Either way, application is total: content the path cannot convert is
// copied through verbatim.
//
// Paths are immutable and safe for concurrent use.
type Path struct {
	From, To *script.Schema
	strategy match.Strategy
	matcher  match.Matcher

	// flattened tables; nil for chained paths
	direct  map[hub.Phoneme]string
	signs   map[hub.Phoneme]string
	hasSign bool

	virama string // target virama grapheme, Indic targets only
}

// NewChained builds the general hub-chain path between two schemas.
func NewChained(from, to *script.Schema, strategy match.Strategy) *Path {
	p := &Path{From: from, To: to, strategy: strategy}
	p.matcher = buildMatcher(from, strategy)
	p.virama, _ = to.Output(hub.IndicVirama)
	tracer().Debugf("chained path %s → %s", from.Name, to.Name)
	return p
}

func buildMatcher(from *script.Schema, strategy match.Strategy) match.Matcher {
	mappings := from.Mappings()
	patterns := make([]match.Pattern, 0, len(mappings))
	for _, m := range mappings {
		patterns = append(patterns, match.Pattern{Key: m.Grapheme, Value: m})
	}
	return match.Build(strategy, patterns)
}

// IsDirect reports whether the path runs on a flattened table.
func (p *Path) IsDirect() bool {
	return p.direct != nil
}

// Apply converts text. It never fails; unconvertible content degrades to
// passthrough, observable through the optional collector (which may be
// nil).
func (p *Path) Apply(text string, c *Collector) string {
	if text == "" {
		return ""
	}
	if p.From == p.To {
		// identity pair: echo the input instead of re-rendering, which
		// would silently normalize alternate and decomposed spellings
		p.collectOnly(text, c)
		return text
	}
	tk := tokenize.NewWithMatcher(p.From, p.matcher)
	emissions := tokenize.Resolve(p.From, tk.Tokenize(text))
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/2)
	if p.To.Family == hub.FamilyIndic {
		p.renderIndic(&sb, emissions, c)
	} else {
		p.renderRoman(&sb, emissions, c)
	}
	return sb.String()
}

// collectOnly tokenizes for metadata without producing output, so
// ConvertWithMetadata works on a single script.
func (p *Path) collectOnly(text string, c *Collector) {
	if c == nil {
		return
	}
	tk := tokenize.NewWithMatcher(p.From, p.matcher)
	for _, tok := range tk.Tokenize(text) {
		if tok.IsPassthrough() {
			if tokenize.Classify(tok.Text) == 'l' {
				c.recordUnknown(p.From.Name, tok.Text, tok.Pos, false)
			}
			continue
		}
		if tok.Mapping.Extension {
			c.recordExtension(tok.Mapping.Phoneme.Name())
		}
	}
}

// --- Emission lookup --------------------------------------------------------

// emit produces the target text for one hub phoneme: a single table hit
// on direct paths, bridge plus schema rendering on chained ones.
func (p *Path) emit(ph hub.Phoneme) (string, bool) {
	if p.direct != nil {
		s, ok := p.direct[ph]
		return s, ok
	}
	return p.compose(ph)
}

// compose runs one phoneme through the full chain.
func (p *Path) compose(ph hub.Phoneme) (string, bool) {
	if ph.Family() == p.To.Family {
		return p.To.Output(ph)
	}
	var sb strings.Builder
	switch q := ph.(type) {
	case hub.Indic:
		rs, ok := hub.ToRoman(q)
		if !ok {
			return "", false
		}
		for _, r := range rs {
			s, ok := p.To.Output(r)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
	case hub.Roman:
		is, ok := hub.ToIndic(q)
		if !ok {
			return "", false
		}
		for _, i := range is {
			s, ok := p.To.Output(i)
			if !ok {
				return "", false
			}
			sb.WriteString(s)
		}
	default:
		return "", false
	}
	return sb.String(), true
}

// signFor produces the target's dependent vowel sign for a (source
// family) vowel phoneme. The short a has no sign; ok is false.
func (p *Path) signFor(vowel hub.Phoneme) (string, bool) {
	if p.hasSign {
		s, ok := p.signs[vowel]
		return s, ok
	}
	return p.composeSign(vowel)
}

func (p *Path) composeSign(vowel hub.Phoneme) (string, bool) {
	var iv hub.Indic
	switch q := vowel.(type) {
	case hub.Indic:
		iv = q
	case hub.Roman:
		is, ok := hub.ToIndic(q)
		if !ok || len(is) != 1 {
			return "", false
		}
		iv = is[0]
	default:
		return "", false
	}
	sign, ok := hub.SignForVowel(iv)
	if !ok {
		return "", false
	}
	return p.To.Output(sign)
}

func isShortA(ph hub.Phoneme) bool {
	return ph == hub.IndicVowelA || ph == hub.RomanVowelA
}

// --- Rendering --------------------------------------------------------------

// renderRoman reassembles output for alphabetic targets: one emission,
// one piece of text.
func (p *Path) renderRoman(sb *strings.Builder, emissions []tokenize.Emission, c *Collector) {
	for _, e := range emissions {
		if e.IsPassthrough() {
			p.passthrough(sb, e, c)
			continue
		}
		if s, ok := p.emit(e.Phoneme); ok {
			sb.WriteString(s)
			if e.Extension {
				c.recordExtension(e.Phoneme.Name())
			}
			continue
		}
		p.unresolved(sb, e, c)
	}
}

// renderIndic reassembles output for Brahmic targets, reintroducing
// vowel signs and viramas from the phonemic stream: a consonant followed
// by the short a stays bare, any other vowel attaches as a sign, and no
// vowel at all calls for a virama.
func (p *Path) renderIndic(sb *strings.Builder, emissions []tokenize.Emission, c *Collector) {
	for k := 0; k < len(emissions); k++ {
		e := emissions[k]
		if e.IsPassthrough() {
			p.passthrough(sb, e, c)
			continue
		}
		if e.Phoneme.Class() != hub.Consonant {
			if s, ok := p.emit(e.Phoneme); ok {
				sb.WriteString(s)
				if e.Extension {
					c.recordExtension(e.Phoneme.Name())
				}
			} else {
				p.unresolved(sb, e, c)
			}
			continue
		}

		s, ok := p.emit(e.Phoneme)
		if !ok {
			p.unresolved(sb, e, c)
			continue
		}
		sb.WriteString(s)
		if e.Extension {
			c.recordExtension(e.Phoneme.Name())
		}
		if k+1 < len(emissions) && !emissions[k+1].IsPassthrough() &&
			emissions[k+1].Phoneme.Class() == hub.Vowel {
			v := emissions[k+1]
			k++
			if v.Extension {
				c.recordExtension(v.Phoneme.Name())
			}
			if isShortA(v.Phoneme) {
				continue // the inherent vowel of the bare consonant
			}
			if sg, ok := p.signFor(v.Phoneme); ok {
				sb.WriteString(sg)
				continue
			}
			// no sign grapheme; degrade to the independent form
			if s, ok := p.emit(v.Phoneme); ok {
				sb.WriteString(s)
				continue
			}
			p.unresolved(sb, v, c)
			continue
		}
		// no vowel follows: suppressed vowel, cluster or final consonant
		sb.WriteString(p.virama)
	}
}

func (p *Path) passthrough(sb *strings.Builder, e tokenize.Emission, c *Collector) {
	sb.WriteString(e.Text)
	if tokenize.Classify(e.Text) == 'l' {
		c.recordUnknown(p.From.Name, e.Text, e.Pos, false)
	}
}

// unresolved handles a phoneme the target cannot express: the source
// text passes through verbatim.
func (p *Path) unresolved(sb *strings.Builder, e tokenize.Emission, c *Collector) {
	if e.Implicit {
		return
	}
	sb.WriteString(e.Text)
	c.recordUnknown(p.To.Name, e.Text, e.Pos, e.Extension)
}
