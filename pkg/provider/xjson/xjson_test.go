package xjson_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/provider/xfile"
	"github.com/omeyang/xcfg/pkg/provider/xjson"
)

func TestParse(t *testing.T) {
	pairs, err := xjson.Parse([]byte(`{
		"Logging": {"LogLevel": {"Default": "Information"}},
		"AllowedHosts": "*",
		"Servers": ["alpha", "beta"],
		"Port": 8080,
		"Ratio": 0.5,
		"Debug": true,
		"Empty": null
	}`))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Logging:LogLevel:Default": "Information",
		"AllowedHosts":             "*",
		"Servers:0":                "alpha",
		"Servers:1":                "beta",
		"Port":                     "8080",
		"Ratio":                    "0.5",
		"Debug":                    "true",
		"Empty":                    "",
	}, pairs)
}

func TestParseInvalid(t *testing.T) {
	_, err := xjson.Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appsettings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"App":{"Name":"demo"}}`), 0o600))

	root, err := xconf.NewBuilder().Add(xjson.File(path)).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	v, ok := root.Get("App:Name")
	assert.True(t, ok)
	assert.Equal(t, "demo", v)
}

func TestFileOptional(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	root, err := xconf.NewBuilder().
		Add(xjson.File(path, xfile.Optional())).
		Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	assert.Empty(t, root.Children())
}
