package translit

import (
	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/aksara/core/script"
	"github.com/npillmayer/aksara/engine/match"
	"github.com/npillmayer/aksara/engine/path"
	"golang.org/x/text/language"
)

// Transliterator converts text between registered scripts. It is
// immutable after New and safe for concurrent use.
type Transliterator struct {
	registry *script.Registry
	paths    *path.Cache
}

// Option configures a Transliterator.
type Option func(*config)

type config struct {
	profile  path.Profile
	strategy match.Strategy
	registry *script.Registry
}

// WithProfile selects which script pairs are precomputed into direct
// conversion tables. The default is ProfileNone: all paths chained,
// built lazily.
func WithProfile(p path.Profile) Option {
	return func(c *config) {
		c.profile = p
	}
}

// WithStrategy selects the grapheme matching strategy. The strategies
// are output-equivalent; the default is the hash table.
func WithStrategy(s match.Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithRegistry substitutes a custom script registry for the packaged
// one, e.g. one extended with schemas loaded at run time.
func WithRegistry(r *script.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// New creates a Transliterator over the packaged script schemas.
// Any profile prebuilding happens here; after New, conversions do not
// allocate per-pair setup except for the first use of a chained pair.
func New(opts ...Option) (*Transliterator, error) {
	cfg := config{
		profile:  path.ProfileNone,
		strategy: match.HashTable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	reg := cfg.registry
	if reg == nil {
		var err error
		if reg, err = script.Global(); err != nil {
			return nil, err
		}
	}
	cache, err := path.NewCache(reg, cfg.profile, cfg.strategy)
	if err != nil {
		return nil, err
	}
	tracer().Infof("transliterator ready, %d scripts", len(reg.List()))
	return &Transliterator{registry: reg, paths: cache}, nil
}

// Convert transliterates text from one script to another. Scripts may
// be named by identifier or alias. Unrecognized graphemes pass through
// unchanged; errors concern unknown script names only.
func (t *Transliterator) Convert(text, from, to string) (string, error) {
	out, _, err := t.convert(text, from, to, nil)
	return out, err
}

// ConvertWithMetadata transliterates like Convert and additionally
// reports which input could not take part in the conversion.
func (t *Transliterator) ConvertWithMetadata(text, from, to string) (string, *Metadata, error) {
	var collector path.Collector
	out, p, err := t.convert(text, from, to, &collector)
	if err != nil {
		return "", nil, err
	}
	md := &Metadata{
		SourceScript:   p.From.Name,
		TargetScript:   p.To.Name,
		UnknownTokens:  collector.Unknowns,
		UsedExtensions: collector.UsedExtensions(),
	}
	return out, md, nil
}

func (t *Transliterator) convert(text, from, to string, c *path.Collector) (string, *path.Path, error) {
	fs, err := t.registry.Load(from)
	if err != nil {
		return "", nil, err
	}
	ts, err := t.registry.Load(to)
	if err != nil {
		return "", nil, err
	}
	p := t.paths.Get(fs, ts)
	tracer().Debugf("convert %s → %s, direct=%v, %d bytes", fs.Name, ts.Name, p.IsDirect(), len(text))
	return p.Apply(text, c), p, nil
}

// Scripts lists the identifiers of all registered scripts, sorted.
func (t *Transliterator) Scripts() []string {
	return t.registry.List()
}

// Supports reports whether name resolves to a registered script.
func (t *Transliterator) Supports(name string) bool {
	return t.registry.Supports(name)
}

// ScriptInfo describes a registered script.
type ScriptInfo struct {
	Name    string
	Display string
	Family  hub.Family
	Script  language.Script // ISO 15924 code
	Sample  string
	Aliases []string
}

// Describe returns descriptive information about a script, resolved by
// identifier or alias.
func (t *Transliterator) Describe(name string) (ScriptInfo, error) {
	s, err := t.registry.Load(name)
	if err != nil {
		return ScriptInfo{}, err
	}
	return ScriptInfo{
		Name:    s.Name,
		Display: s.Display,
		Family:  s.Family,
		Script:  s.Script,
		Sample:  s.Sample,
		Aliases: append([]string(nil), s.Aliases...),
	}, nil
}
