package script

import (
	"embed"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/aksara/core"
	"github.com/npillmayer/aksara/core/hub"
)

//go:embed schemas/*.toml
var packaged embed.FS

// Registry holds loaded script schemas, keyed by canonical name, with
// alias resolution. It is immutable after construction; lookups are safe
// for concurrent use.
type Registry struct {
	schemas *treemap.Map // canonical name → *Schema, ordered
	aliases *trie.Trie   // case-folded name/alias → canonical name
}

func newRegistry() *Registry {
	return &Registry{
		schemas: treemap.NewWithStringComparator(),
		aliases: trie.New(),
	}
}

// NewRegistry creates a registry preloaded with the packaged schemas.
// Unlike Global, the result is private to the caller and may be
// extended with additional schemas via Register.
func NewRegistry() (*Registry, error) {
	return loadPackaged()
}

// Register validates a schema and adds it to the registry. Names and
// aliases already claimed by another schema are rejected. Register is
// meant for setup time and is not synchronized against concurrent
// lookups.
func (r *Registry) Register(s *Schema) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.add(s)
}

// add registers a schema under its canonical name and all aliases.
func (r *Registry) add(s *Schema) error {
	names := append([]string{s.Name}, s.Aliases...)
	for _, n := range names {
		folded := strings.ToLower(n)
		if node, ok := r.aliases.Find(folded); ok {
			other := node.Meta().(string)
			if other != s.Name {
				return core.Error(core.EINVALID,
					"script name %q claimed by both %q and %q", n, other, s.Name)
			}
			continue
		}
		r.aliases.Add(folded, s.Name)
	}
	r.schemas.Put(s.Name, s)
	return nil
}

// Resolve translates a script name or alias (case-insensitive) into its
// canonical name.
func (r *Registry) Resolve(name string) (string, bool) {
	node, ok := r.aliases.Find(strings.ToLower(name))
	if !ok {
		return "", false
	}
	return node.Meta().(string), true
}

// Load returns the schema registered for name (canonical or alias).
// Unknown names fail with an EMISSING application error; the message
// suggests registered names sharing a prefix with the query.
func (r *Registry) Load(name string) (*Schema, error) {
	canonical, ok := r.Resolve(name)
	if !ok {
		suggestion := ""
		if near := r.suggest(name); len(near) > 0 {
			suggestion = " (did you mean " + strings.Join(near, ", ") + "?)"
		}
		return nil, core.Error(core.EMISSING, "script %q is not supported%s", name, suggestion)
	}
	v, _ := r.schemas.Get(canonical)
	return v.(*Schema), nil
}

// suggest finds registered names sharing a prefix with the query,
// longest prefix first.
func (r *Registry) suggest(name string) []string {
	folded := strings.ToLower(name)
	for len(folded) > 0 {
		if near := r.aliases.PrefixSearch(folded); len(near) > 0 {
			sort.Strings(near)
			if len(near) > 3 {
				near = near[:3]
			}
			return near
		}
		folded = folded[:len(folded)-1]
	}
	return nil
}

// Supports reports whether name resolves to a registered schema.
func (r *Registry) Supports(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// List returns the canonical names of all registered schemas, in
// lexicographic order.
func (r *Registry) List() []string {
	keys := r.schemas.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Stats summarizes the registry content.
type Stats struct {
	Schemas int
	Indic   int
	Roman   int
}

// Stats counts registered schemas per family.
func (r *Registry) Stats() Stats {
	var st Stats
	r.schemas.Each(func(_ interface{}, v interface{}) {
		st.Schemas++
		switch v.(*Schema).Family {
		case hub.FamilyIndic:
			st.Indic++
		case hub.FamilyRoman:
			st.Roman++
		}
	})
	return st
}

var globalRegistry *Registry
var globalErr error
var globalOnce sync.Once

// Global returns the process-wide registry holding the packaged schemas.
// The first call loads and validates all embedded schema documents;
// concurrent first use is safe and loads exactly once.
func Global() (*Registry, error) {
	globalOnce.Do(func() {
		globalRegistry, globalErr = loadPackaged()
	})
	return globalRegistry, globalErr
}

func loadPackaged() (*Registry, error) {
	entries, err := packaged.ReadDir("schemas")
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "packaged schema documents unreadable")
	}
	r := newRegistry()
	for _, entry := range entries {
		doc, err := packaged.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "packaged schema %s unreadable", entry.Name())
		}
		s, err := LoadSchema(doc)
		if err != nil {
			return nil, err
		}
		if err := r.add(s); err != nil {
			return nil, err
		}
	}
	tracer().Infof("registry holds %d schemas", r.Stats().Schemas)
	return r, nil
}
