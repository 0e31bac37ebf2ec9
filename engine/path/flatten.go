package path

import (
	"github.com/npillmayer/aksara/core"
	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/aksara/core/script"
	"github.com/npillmayer/aksara/engine/match"
)

// NewDirect builds a direct path: the hub chain for (from,to) composed
// into flattened single-stage tables. NewDirect fails with an EINTERNAL
// application error when composition would lose phoneme distinctions the
// chain preserves; such pairs must stay on the chained path. A direct
// path is verified against its chain before being returned, so a
// successfully built direct path is guaranteed output-equivalent.
func NewDirect(from, to *script.Schema, strategy match.Strategy) (*Path, error) {
	chained := NewChained(from, to, strategy)

	direct := make(map[hub.Phoneme]string)
	for _, ph := range hub.Catalog(from.Family) {
		if s, ok := chained.compose(ph); ok {
			direct[ph] = s
		}
	}
	var signs map[hub.Phoneme]string
	if to.Family == hub.FamilyIndic {
		signs = make(map[hub.Phoneme]string)
		for _, ph := range hub.Catalog(from.Family) {
			if ph.Class() != hub.Vowel {
				continue
			}
			if s, ok := chained.composeSign(ph); ok {
				signs[ph] = s
			}
		}
	}

	if err := checkLossless(from, to, direct); err != nil {
		return nil, err
	}

	p := &Path{
		From:     from,
		To:       to,
		strategy: strategy,
		matcher:  chained.matcher,
		direct:   direct,
		signs:    signs,
		hasSign:  true,
		virama:   chained.virama,
	}
	if err := verify(p, chained); err != nil {
		return nil, err
	}
	tracer().Infof("direct path %s → %s (%d flattened entries)", from.Name, to.Name, len(direct))
	return p, nil
}

// checkLossless refuses flattening when a phoneme reachable from the
// source's base inventory has no flattened rendering. Extension and
// alternate graphemes are best-effort and never block a pair; vowel
// signs and viramas are structural and resolve before emission.
func checkLossless(from, to *script.Schema, direct map[hub.Phoneme]string) error {
	for _, m := range from.Mappings() {
		if m.Alternate || m.Extension {
			continue
		}
		switch m.Class() {
		case hub.Virama:
			continue
		case hub.VowelSign:
			// a sign resolves to its vowel before emission
			iv := m.Phoneme.(hub.Indic)
			vowel, _ := hub.VowelForSign(iv)
			if _, ok := direct[vowel]; !ok {
				return compositionError(from, to, m)
			}
			continue
		}
		if _, ok := direct[m.Phoneme]; !ok {
			return compositionError(from, to, m)
		}
	}
	return nil
}

func compositionError(from, to *script.Schema, m *script.Mapping) error {
	return core.Error(core.EINTERNAL,
		"path %s → %s is not flattenable: %s loses %s (%q)",
		from.Name, to.Name, to.Name, m.Phoneme.Name(), m.Grapheme)
}

// verify cross-checks a freshly built direct path against its chain, and
// the matching strategies against one another, over the source schema's
// own grapheme inventory. Any disagreement is an invariant violation: a
// bug in path composition, never a property of the input.
func verify(direct, chained *Path) error {
	mappings := direct.From.Mappings()

	// the three strategies must segment identically
	patterns := make([]match.Pattern, 0, len(mappings))
	for _, m := range mappings {
		patterns = append(patterns, match.Pattern{Key: m.Grapheme, Value: m})
	}
	hashed := match.Build(match.HashTable, patterns)
	autom := match.Build(match.Automaton, patterns)
	prefixed := match.Build(match.PrefixIndex, patterns)
	scanner, _ := autom.(interface{ Scan(string) []match.Hit })

	for _, m := range mappings {
		probe := m.Grapheme
		_, l1, ok1 := hashed.Lookup(probe)
		_, l2, ok2 := autom.Lookup(probe)
		_, l3, ok3 := prefixed.Lookup(probe)
		if ok1 != ok2 || ok1 != ok3 || l1 != l2 || l1 != l3 {
			return core.Error(core.EINTERNAL,
				"matching strategies disagree on %q in %s", probe, direct.From.Name)
		}
		if scanner != nil && !scanContains(scanner.Scan(probe), l1) {
			return core.Error(core.EINTERNAL,
				"automaton scan misses anchored match for %q in %s", probe, direct.From.Name)
		}
		if d, c := direct.Apply(probe, nil), chained.Apply(probe, nil); d != c {
			return core.Error(core.EINTERNAL,
				"direct path %s → %s diverges from chain on %q: %q vs %q",
				direct.From.Name, direct.To.Name, probe, d, c)
		}
	}
	return nil
}

func scanContains(hits []match.Hit, length int) bool {
	for _, h := range hits {
		if h.Start == 0 && h.End >= length {
			return true
		}
	}
	return false
}
