package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Get / Set
// =============================================================================

func TestData_GetCaseInsensitive(t *testing.T) {
	d := From(map[string]string{"Position:Title": "Editor"})

	v, ok := d.Get("position:title")
	assert.True(t, ok)
	assert.Equal(t, "Editor", v)

	v, ok = d.Get("POSITION:TITLE")
	assert.True(t, ok)
	assert.Equal(t, "Editor", v)
}

func TestData_GetMissing(t *testing.T) {
	d := From(map[string]string{"a": "1"})

	v, ok := d.Get("b")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestData_EmptyValueIsPresent(t *testing.T) {
	d := From(map[string]string{"a": ""})

	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestData_SetOverridesCaseInsensitively(t *testing.T) {
	d := New()
	d.Set("Key", "one")
	d.Set("KEY", "two")

	assert.Len(t, d, 1)
	v, _ := d.Get("key")
	assert.Equal(t, "two", v)
}

// =============================================================================
// ChildKeys
// =============================================================================

func TestData_ChildKeysRoot(t *testing.T) {
	d := From(map[string]string{
		"Logging:LogLevel:Default": "Information",
		"Logging:Console":          "on",
		"AllowedHosts":             "*",
	})

	keys := d.ChildKeys(nil, "")
	// 每个条目贡献自己的首段，未去重（去重由合并层负责）
	assert.ElementsMatch(t, []string{"Logging", "Logging", "AllowedHosts"}, keys)
}

func TestData_ChildKeysUnderPath(t *testing.T) {
	d := From(map[string]string{
		"Logging:LogLevel:Default":   "Information",
		"Logging:LogLevel:Microsoft": "Warning",
		"Logging:Console":            "on",
	})

	keys := d.ChildKeys(nil, "logging")
	assert.Equal(t, []string{"Console", "LogLevel", "LogLevel"}, keys)
}

func TestData_ChildKeysAppendsToEarlier(t *testing.T) {
	d := From(map[string]string{"b": "2"})

	keys := d.ChildKeys([]string{"a"}, "")
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestData_ChildKeysNumericSorting(t *testing.T) {
	d := From(map[string]string{
		"items:10": "j",
		"items:2":  "b",
		"items:1":  "a",
	})

	keys := d.ChildKeys(nil, "items")
	assert.Equal(t, []string{"1", "2", "10"}, keys)
}

func TestData_ChildKeysPreservesOriginalCasing(t *testing.T) {
	d := From(map[string]string{"Logging:LogLevel": "x"})

	keys := d.ChildKeys(nil, "LOGGING")
	assert.Equal(t, []string{"LogLevel"}, keys)
}

// =============================================================================
// Segment
// =============================================================================

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		start int
		want  string
	}{
		{"no delimiter", "key", 0, "key"},
		{"first segment", "a:b:c", 0, "a"},
		{"middle segment", "a:b:c", 2, "b"},
		{"last segment", "a:b:c", 4, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.key, tt.start))
		})
	}
}
