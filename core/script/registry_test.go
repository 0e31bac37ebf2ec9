package script

import (
	"sync"
	"testing"

	"github.com/npillmayer/aksara/core"
	"github.com/npillmayer/aksara/core/hub"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPackagedSchemas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	r, err := Global()
	assert.NoError(t, err)
	names := r.List()
	assert.Equal(t, []string{
		"devanagari", "gujarati", "harvard-kyoto", "iast", "iso15919",
		"slp1", "velthuis",
	}, names)
	st := r.Stats()
	assert.Equal(t, 7, st.Schemas)
	assert.Equal(t, 2, st.Indic)
	assert.Equal(t, 5, st.Roman)
}

func TestRegistryAliases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	r, err := Global()
	assert.NoError(t, err)
	for _, name := range []string{"devanagari", "deva", "DEVA", "Nagari"} {
		canonical, ok := r.Resolve(name)
		assert.True(t, ok, "cannot resolve %q", name)
		assert.Equal(t, "devanagari", canonical)
	}
	assert.True(t, r.Supports("hk"))
	assert.True(t, r.Supports("iso-15919"))
	assert.False(t, r.Supports("klingon"))
}

func TestRegistryLoadUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	r, err := Global()
	assert.NoError(t, err)
	_, err = r.Load("devanagaree")
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	// the message suggests names sharing a prefix
	assert.Contains(t, err.Error(), "devanagari")
}

func TestRegistryRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	r, err := NewRegistry()
	assert.NoError(t, err)
	s, err := LoadSchema([]byte(miniSchema))
	assert.NoError(t, err)
	assert.NoError(t, r.Register(s))
	loaded, err := r.Load("mn") // by alias
	assert.NoError(t, err)
	assert.Equal(t, s, loaded)
	// name clashes are rejected
	s2, err := LoadSchema([]byte(miniSchema))
	assert.NoError(t, err)
	s2.Name = "mini2"
	assert.Error(t, r.Register(s2)) // alias "mn" already claimed
	// the process-wide registry is unaffected
	g, _ := Global()
	assert.False(t, g.Supports("mini"))
}

func TestDevanagariSchemaContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	r, _ := Global()
	deva, err := r.Load("devanagari")
	assert.NoError(t, err)
	assert.True(t, deva.HasInherentVowel())
	//
	ka, ok := deva.Grapheme("क")
	assert.True(t, ok)
	assert.Equal(t, hub.IndicConsK, ka.Phoneme)
	virama, ok := deva.Grapheme("्")
	assert.True(t, ok)
	assert.Equal(t, hub.Virama, virama.Class())
	// nukta consonants: the decomposed spelling renders, the precomposed
	// one is an accepted alternate
	qa, ok := deva.Grapheme("क़")
	assert.True(t, ok)
	assert.Equal(t, hub.IndicConsQ, qa.Phoneme)
	assert.True(t, qa.Extension)
	pre, ok := deva.Grapheme("क़")
	assert.True(t, ok)
	assert.Equal(t, hub.IndicConsQ, pre.Phoneme)
	assert.True(t, pre.Alternate)
	out, ok := deva.Output(hub.IndicConsQ)
	assert.True(t, ok)
	assert.Equal(t, "क़", out)
}

func TestGlobalRegistryConcurrentFirstUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aksara.script")
	defer teardown()
	//
	var wg sync.WaitGroup
	regs := make([]*Registry, 8)
	for i := 0; i < len(regs); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := Global()
			assert.NoError(t, err)
			regs[i] = r
		}(i)
	}
	wg.Wait()
	for _, r := range regs {
		assert.Same(t, regs[0], r)
	}
}
