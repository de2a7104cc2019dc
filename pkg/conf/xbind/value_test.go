package xbind_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcfg/pkg/conf/xbind"
)

func TestValue(t *testing.T) {
	root := buildConf(t, map[string]string{
		"Port":    "8080",
		"Name":    "demo",
		"Timeout": "250ms",
		"Bad":     "xyz",
	})

	port, err := xbind.Value[int](root, "Port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	name, err := xbind.Value[string](root, "Name")
	require.NoError(t, err)
	assert.Equal(t, "demo", name)

	timeout, err := xbind.Value[time.Duration](root, "Timeout")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, timeout)

	// 缺失返回零值，不是错误
	missing, err := xbind.Value[int](root, "Missing")
	require.NoError(t, err)
	assert.Zero(t, missing)

	_, err = xbind.Value[int](root, "Bad")
	var berr *xbind.BindError
	assert.ErrorAs(t, err, &berr)
}

func TestRequired(t *testing.T) {
	root := buildConf(t, map[string]string{"Port": "8080"})

	port, err := xbind.Required[int](root, "Port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	_, err = xbind.Required[int](root, "Missing")
	assert.ErrorIs(t, err, xbind.ErrRequired)
}

func TestValueOr(t *testing.T) {
	root := buildConf(t, map[string]string{
		"Port": "8080",
		"Bad":  "xyz",
	})

	assert.Equal(t, 8080, xbind.ValueOr(root, "Port", 1))
	assert.Equal(t, 1, xbind.ValueOr(root, "Missing", 1))
	assert.Equal(t, 1, xbind.ValueOr(root, "Bad", 1))
}
