package xmem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/provider/xmem"
)

func TestMap(t *testing.T) {
	root, err := xconf.NewBuilder().
		Add(xmem.Map(map[string]string{
			"App:Name":    "demo",
			"App:Workers": "4",
		})).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	v, ok := root.Get("app:name")
	assert.True(t, ok)
	assert.Equal(t, "demo", v)

	var keys []string
	for _, child := range root.Section("App").Children() {
		keys = append(keys, child.Key())
	}
	assert.Equal(t, []string{"Name", "Workers"}, keys)
}

func TestPairs(t *testing.T) {
	root, err := xconf.NewBuilder().
		Add(xmem.Pairs("App:Name=demo", "App:Debug")).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	v, ok := root.Get("App:Name")
	assert.True(t, ok)
	assert.Equal(t, "demo", v)

	// 无 "=" 的项作为键，值为空字符串
	v, ok = root.Get("App:Debug")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestMapNil(t *testing.T) {
	root, err := xconf.NewBuilder().Add(xmem.Map(nil)).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	_, ok := root.Get("anything")
	assert.False(t, ok)
}

func TestMapTokenNeverFires(t *testing.T) {
	root, err := xconf.NewBuilder().Add(xmem.Map(map[string]string{"K": "v"})).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	token := root.Providers()[0].ReloadToken()
	assert.False(t, token.HasChanged())
	select {
	case <-token.Done():
		t.Fatal("never token fired")
	default:
	}
}
