package script

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/aksara/core"
	"github.com/npillmayer/aksara/core/hub"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// schemaDoc mirrors the TOML schema document format. Section tables map
// grapheme strings onto symbolic hub phoneme names ("vowel.aa",
// "consonant.k", ...).
type schemaDoc struct {
	Metadata struct {
		Name     string   `toml:"name"`
		Display  string   `toml:"display"`
		Family   string   `toml:"family"`
		ISO15924 string   `toml:"iso15924"`
		Aliases  []string `toml:"aliases"`
		Sample   string   `toml:"sample"`
	} `toml:"metadata"`
	Vowels     map[string]string `toml:"vowels"`
	VowelSigns map[string]string `toml:"vowel_signs"`
	Consonants map[string]string `toml:"consonants"`
	Marks      map[string]string `toml:"marks"`
	Digits     map[string]string `toml:"digits"`
	Extensions map[string]string `toml:"extensions"`
	Alternates map[string]string `toml:"alternates"`
}

// section describes how one document section is validated.
type section struct {
	name      string
	table     map[string]string
	required  bool
	classes   []hub.Class // accepted phoneme classes; nil accepts any
	extension bool
	alternate bool
}

// LoadSchema parses and validates one TOML schema document.
// It fails with an EINVALID application error naming the offending
// section if a required section is missing, a phoneme name does not
// exist in the family's catalog, or graphemes collide.
func LoadSchema(doc []byte) (*Schema, error) {
	var d schemaDoc
	if err := toml.Unmarshal(doc, &d); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "schema document is not valid TOML")
	}
	if d.Metadata.Name == "" {
		return nil, core.Error(core.EINVALID, "schema document lacks metadata.name")
	}
	name := d.Metadata.Name
	var family hub.Family
	switch strings.ToLower(d.Metadata.Family) {
	case "indic":
		family = hub.FamilyIndic
	case "roman":
		family = hub.FamilyRoman
	default:
		return nil, core.Error(core.EINVALID, "schema %q: unsupported family %q", name, d.Metadata.Family)
	}
	var missing []string
	if len(d.Vowels) == 0 {
		missing = append(missing, "vowels")
	}
	if len(d.Consonants) == 0 {
		missing = append(missing, "consonants")
	}
	if len(missing) > 0 {
		return nil, core.Error(core.EINVALID, "schema %q: missing required section(s): %s",
			name, strings.Join(missing, ", "))
	}
	if family != hub.FamilyIndic && len(d.VowelSigns) > 0 {
		return nil, core.Error(core.EINVALID, "schema %q: vowel_signs are only meaningful for Indic scripts", name)
	}

	s := &Schema{
		Name:      name,
		Display:   d.Metadata.Display,
		Family:    family,
		Aliases:   d.Metadata.Aliases,
		Sample:    d.Metadata.Sample,
		graphemes: make(map[string]*Mapping),
		output:    make(map[hub.Phoneme]string),
	}
	if s.Display == "" {
		s.Display = name
	}
	if d.Metadata.ISO15924 != "" {
		tag, err := language.ParseScript(d.Metadata.ISO15924)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "schema %q: bad ISO 15924 code %q",
				name, d.Metadata.ISO15924)
		}
		s.Script = tag
	}

	sections := []section{
		{name: "vowels", table: d.Vowels, required: true, classes: []hub.Class{hub.Vowel}},
		{name: "vowel_signs", table: d.VowelSigns, classes: []hub.Class{hub.VowelSign}},
		{name: "consonants", table: d.Consonants, required: true, classes: []hub.Class{hub.Consonant}},
		{name: "marks", table: d.Marks, classes: []hub.Class{hub.Mark, hub.Virama}},
		{name: "digits", table: d.Digits, classes: []hub.Class{hub.Digit}},
		{name: "extensions", table: d.Extensions, extension: true},
		{name: "alternates", table: d.Alternates, alternate: true},
	}
	for _, sec := range sections {
		if err := s.addSection(sec); err != nil {
			return nil, err
		}
	}
	s.registerNormalVariants()
	for g := range s.graphemes {
		if len(g) > s.maxKey {
			s.maxKey = len(g)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded schema %q (%s, %d graphemes)", s.Name, s.Family, len(s.graphemes))
	return s, nil
}

func (s *Schema) addSection(sec section) error {
	// deterministic order, so collision errors are stable
	keys := make([]string, 0, len(sec.table))
	for g := range sec.table {
		keys = append(keys, g)
	}
	sort.Strings(keys)
	for _, g := range keys {
		id := sec.table[g]
		p, ok := hub.ByName(s.Family, id)
		if !ok {
			return core.Error(core.EINVALID,
				"schema %q: section %s: %q is not a phoneme of the %s hub catalog",
				s.Name, sec.name, id, s.Family)
		}
		if sec.classes != nil && !classAllowed(p.Class(), sec.classes) {
			return core.Error(core.EINVALID,
				"schema %q: section %s: %q (%s) does not belong in this section",
				s.Name, sec.name, id, p.Class())
		}
		if prev, exists := s.graphemes[g]; exists {
			return core.Error(core.EINVALID,
				"schema %q: grapheme %q collides (%s vs %s)",
				s.Name, g, prev.Phoneme.Name(), id)
		}
		m := &Mapping{
			Grapheme:  g,
			Phoneme:   p,
			Extension: sec.extension,
			Alternate: sec.alternate,
		}
		s.graphemes[g] = m
		if !sec.alternate {
			if prev, exists := s.output[p]; exists {
				return core.Error(core.EINVALID,
					"schema %q: phoneme %s rendered by both %q and %q (declare one as alternate)",
					s.Name, id, prev, g)
			}
			s.output[p] = g
		}
	}
	return nil
}

func classAllowed(c hub.Class, allowed []hub.Class) bool {
	for _, a := range allowed {
		if c == a {
			return true
		}
	}
	return false
}

// registerNormalVariants adds the NFC and NFD forms of every grapheme as
// accepted input spellings, so composed and decomposed inputs both
// tokenize. Variants never participate in rendering.
func (s *Schema) registerNormalVariants() {
	keys := make([]string, 0, len(s.graphemes))
	for g := range s.graphemes {
		keys = append(keys, g)
	}
	sort.Strings(keys)
	for _, g := range keys {
		m := s.graphemes[g]
		for _, v := range []string{norm.NFC.String(g), norm.NFD.String(g)} {
			if v == g {
				continue
			}
			if _, exists := s.graphemes[v]; exists {
				continue
			}
			s.graphemes[v] = &Mapping{
				Grapheme:  v,
				Phoneme:   m.Phoneme,
				Extension: m.Extension,
				Alternate: true,
			}
		}
	}
}

// Validate checks the schema against its family's hub catalog: the
// required grapheme categories must be present and every mapping must
// point into the correct catalog. The loader calls this; it is exported
// so clients building schemas programmatically can too.
func (s *Schema) Validate() error {
	var hasVowel, hasConsonant bool
	for _, m := range s.graphemes {
		if m.Phoneme.Family() != s.Family {
			return core.Error(core.EINVALID,
				"schema %q: grapheme %q maps onto the %s hub, schema family is %s",
				s.Name, m.Grapheme, m.Phoneme.Family(), s.Family)
		}
		switch m.Class() {
		case hub.Vowel:
			hasVowel = true
		case hub.Consonant:
			hasConsonant = true
		}
	}
	var missing []string
	if !hasVowel {
		missing = append(missing, "vowels")
	}
	if !hasConsonant {
		missing = append(missing, "consonants")
	}
	if len(missing) > 0 {
		return core.Error(core.EINVALID, "schema %q: missing required section(s): %s",
			s.Name, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Schema) String() string {
	return fmt.Sprintf("schema[%s/%s]", s.Name, s.Family)
}
