package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/aksara/core/script"
	"github.com/npillmayer/aksara/engine/match"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// Token is one grapheme occurrence in the input. Mapping is nil for
// passthrough and unknown tokens.
type Token struct {
	Class   hub.Class
	Text    string
	Mapping *script.Mapping
	Pos     int // byte offset in the input
}

// IsPassthrough reports whether the token carries no schema mapping and
// is copied verbatim into conversion output.
func (t Token) IsPassthrough() bool {
	return t.Mapping == nil
}

// Tokenizer scans text against one schema, using a pluggable matching
// strategy. A Tokenizer is cheap to create; the matcher it wraps is
// shared and immutable.
type Tokenizer struct {
	schema   *script.Schema
	matcher  match.Matcher
	splitter *segment.Segmenter
}

// NewTokenizer builds a tokenizer for the schema with a freshly built
// matcher of the given strategy.
func NewTokenizer(s *script.Schema, strategy match.Strategy) *Tokenizer {
	mappings := s.Mappings()
	patterns := make([]match.Pattern, 0, len(mappings))
	for _, m := range mappings {
		patterns = append(patterns, match.Pattern{Key: m.Grapheme, Value: m})
	}
	return NewWithMatcher(s, match.Build(strategy, patterns))
}

// NewWithMatcher builds a tokenizer around an existing matcher, which
// must have been constructed over the schema's grapheme table.
func NewWithMatcher(s *script.Schema, m match.Matcher) *Tokenizer {
	grapheme.SetupGraphemeClasses()
	return &Tokenizer{
		schema:   s,
		matcher:  m,
		splitter: segment.NewSegmenter(grapheme.NewBreaker(1)),
	}
}

// Tokenize cuts text into an ordered token sequence. Unmapped content
// yields passthrough tokens (digits, punctuation, whitespace) or unknown
// tokens (letters and everything else), one grapheme cluster each.
// Tokenize never fails; a Tokenizer is not safe for concurrent calls.
func (t *Tokenizer) Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/2+1)
	pos := 0
	for pos < len(text) {
		if v, length, ok := t.matcher.Lookup(text[pos:]); ok {
			m := v.(*script.Mapping)
			tokens = append(tokens, Token{
				Class:   m.Class(),
				Text:    text[pos : pos+length],
				Mapping: m,
				Pos:     pos,
			})
			pos += length
			continue
		}
		cluster := t.nextCluster(text[pos:])
		tokens = append(tokens, Token{
			Class: hub.Unmapped,
			Text:  cluster,
			Pos:   pos,
		})
		pos += len(cluster)
	}
	tracer().Debugf("tokenized %d bytes into %d %s tokens", len(text), len(tokens), t.schema.Name)
	return tokens
}

// nextCluster returns the first grapheme cluster of text, so that
// combining marks travel with their base character through passthrough.
func (t *Tokenizer) nextCluster(text string) string {
	t.splitter.Init(strings.NewReader(text))
	if t.splitter.Next() {
		if b := t.splitter.Bytes(); len(b) > 0 {
			return text[:len(b)]
		}
	}
	// grapheme segmentation exhausted; fall back to a single code-point
	_, size := utf8.DecodeRuneInString(text)
	return text[:size]
}

// Classify assigns the general category of an unmapped span's first
// code-point. Used by metadata collection to separate noise (spaces,
// punctuation) from genuinely foreign letters.
func Classify(text string) rune {
	r, _ := utf8.DecodeRuneInString(text)
	switch {
	case unicode.IsSpace(r):
		return 's'
	case unicode.IsDigit(r):
		return 'd'
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return 'p'
	case unicode.IsLetter(r):
		return 'l'
	}
	return '?'
}
