package path

import (
	"sync"

	"github.com/npillmayer/aksara/core"
	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/aksara/core/script"
	"github.com/npillmayer/aksara/engine/match"
)

// Profile selects which script pairs get flattened direct paths built
// ahead of time. Pairs outside the profile fall back to chained paths,
// built lazily on first use.
type Profile int

const (
	ProfileNone Profile = iota
	ProfileCommonPairs
	ProfileRomanToIndic
	ProfileIndicToRoman
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCommonPairs:
		return "common-pairs"
	case ProfileRomanToIndic:
		return "roman-to-indic"
	case ProfileIndicToRoman:
		return "indic-to-roman"
	}
	return "profile-unknown"
}

// commonPairs are the conversions the precomputed profile always covers.
// These pairs are known flattenable; a build failure here is a defect.
var commonPairs = [][2]string{
	{"devanagari", "iast"},
	{"iast", "devanagari"},
	{"devanagari", "slp1"},
	{"slp1", "devanagari"},
	{"iast", "slp1"},
	{"slp1", "iast"},
	{"devanagari", "gujarati"},
	{"gujarati", "devanagari"},
}

type pairKey struct {
	from, to string
}

// Cache hands out conversion paths for script pairs, preferring a
// prebuilt direct path and falling back to a chained one. A Cache is
// safe for concurrent use.
type Cache struct {
	reg      *script.Registry
	strategy match.Strategy
	mu       sync.Mutex
	paths    map[pairKey]*Path
}

// NewCache prebuilds direct paths per the given profile. For
// ProfileCommonPairs every listed pair must flatten; setup fails
// otherwise. The family profiles are opportunistic: pairs that resist
// flattening stay chained without error.
func NewCache(reg *script.Registry, profile Profile, strategy match.Strategy) (*Cache, error) {
	c := &Cache{
		reg:      reg,
		strategy: strategy,
		paths:    make(map[pairKey]*Path),
	}
	switch profile {
	case ProfileNone:
		// nothing to prebuild
	case ProfileCommonPairs:
		for _, pair := range commonPairs {
			if err := c.prebuild(pair[0], pair[1], true); err != nil {
				return nil, err
			}
		}
	case ProfileRomanToIndic:
		c.prebuildFamilies(hub.FamilyRoman, hub.FamilyIndic)
	case ProfileIndicToRoman:
		c.prebuildFamilies(hub.FamilyIndic, hub.FamilyRoman)
	default:
		return nil, core.Error(core.EINVALID, "unknown path profile %d", profile)
	}
	tracer().Infof("path cache ready, profile %s, %d direct paths", profile, len(c.paths))
	return c, nil
}

func (c *Cache) prebuild(from, to string, forced bool) error {
	fs, err := c.reg.Load(from)
	if err != nil {
		return err
	}
	ts, err := c.reg.Load(to)
	if err != nil {
		return err
	}
	p, err := NewDirect(fs, ts, c.strategy)
	if err != nil {
		if forced {
			return core.WrapError(err, core.EINTERNAL,
				"profile requires a direct path %s → %s", from, to)
		}
		tracer().Infof("pair %s → %s stays chained: %v", from, to, err)
		return nil
	}
	c.paths[pairKey{from: fs.Name, to: ts.Name}] = p
	return nil
}

func (c *Cache) prebuildFamilies(from, to hub.Family) {
	names := c.reg.List()
	for _, fn := range names {
		fs, err := c.reg.Load(fn)
		if err != nil || fs.Family != from {
			continue
		}
		for _, tn := range names {
			ts, err := c.reg.Load(tn)
			if err != nil || ts.Family != to {
				continue
			}
			_ = c.prebuild(fn, tn, false)
		}
	}
}

// Get returns the path for a resolved script pair, building a chained
// path on first request if no direct path was precomputed.
func (c *Cache) Get(from, to *script.Schema) *Path {
	key := pairKey{from: from.Name, to: to.Name}
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.paths[key]; ok {
		return p
	}
	p := NewChained(from, to, c.strategy)
	c.paths[key] = p
	return p
}
