package xconf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource 返回固定 Provider 或固定错误的配置源。
type fakeSource struct {
	provider Provider
	err      error
}

func (s *fakeSource) Build(_ *Builder) (Provider, error) {
	return s.provider, s.err
}

func TestBuilderBuild(t *testing.T) {
	low := newFake("low", map[string]string{"K": "low"})
	high := newFake("high", map[string]string{"K": "high"})

	root, err := NewBuilder().
		Add(&fakeSource{provider: low}).
		Add(&fakeSource{provider: high}).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	v, ok := root.Get("K")
	assert.True(t, ok)
	assert.Equal(t, "high", v)

	assert.Len(t, root.Providers(), 2)
}

func TestBuilderEmpty(t *testing.T) {
	root, err := NewBuilder().Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	_, ok := root.Get("anything")
	assert.False(t, ok)
	assert.Empty(t, root.Children())
}

func TestBuilderAddNil(t *testing.T) {
	b := NewBuilder().Add(nil)
	assert.Empty(t, b.Sources())
}

func TestBuilderSourceError(t *testing.T) {
	boom := errors.New("bad mapping")

	root, err := NewBuilder().
		Add(&fakeSource{provider: newFake("ok", nil)}).
		Add(&fakeSource{err: boom}).
		Build()

	assert.Nil(t, root)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "source #1")
}

func TestBuilderProperties(t *testing.T) {
	b := NewBuilder()
	b.Properties()["env"] = "test"
	assert.Equal(t, "test", b.Properties()["env"])
}

func TestBuilderSourcesCopy(t *testing.T) {
	b := NewBuilder().Add(&fakeSource{provider: newFake("p", nil)})

	got := b.Sources()
	got[0] = nil
	assert.NotNil(t, b.Sources()[0])
}

// ==== 链接源 ====

func TestChainedSource(t *testing.T) {
	inner, err := NewBuilder().
		Add(&fakeSource{provider: newFake("inner", map[string]string{
			"Shared": "from-inner",
			"Only":   "inner-only",
		})}).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = inner.Close() })

	outer, err := NewBuilder().
		Add(Chain(inner)).
		Add(&fakeSource{provider: newFake("outer", map[string]string{
			"Shared": "from-outer",
		})}).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = outer.Close() })

	v, ok := outer.Get("Shared")
	assert.True(t, ok)
	assert.Equal(t, "from-outer", v)

	v, ok = outer.Get("Only")
	assert.True(t, ok)
	assert.Equal(t, "inner-only", v)

	var keys []string
	for _, child := range outer.Children() {
		keys = append(keys, child.Key())
	}
	assert.Equal(t, []string{"Only", "Shared"}, keys)
}
