package path

import "sort"

// Unknown records one token that had no resolvable phoneme in either
// direction: the source schema did not know the grapheme, or the target
// could not express its phoneme.
type Unknown struct {
	Script      string // schema the token failed against
	Token       string
	Pos         int // byte offset in the input
	Codepoints  []rune
	IsExtension bool // the grapheme came from an extension set
}

// Collector gathers conversion metadata on demand. A nil *Collector is
// valid everywhere and records nothing, keeping the default conversion
// path free of bookkeeping.
type Collector struct {
	Unknowns []Unknown
	used     map[string]struct{}
}

func (c *Collector) recordUnknown(script, token string, pos int, ext bool) {
	if c == nil {
		return
	}
	c.Unknowns = append(c.Unknowns, Unknown{
		Script:      script,
		Token:       token,
		Pos:         pos,
		Codepoints:  []rune(token),
		IsExtension: ext,
	})
}

func (c *Collector) recordExtension(name string) {
	if c == nil {
		return
	}
	if c.used == nil {
		c.used = make(map[string]struct{})
	}
	c.used[name] = struct{}{}
}

// UsedExtensions lists the catalog names of extension phonemes the
// conversion exercised, sorted and deduplicated.
func (c *Collector) UsedExtensions() []string {
	if c == nil || len(c.used) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.used))
	for n := range c.used {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
