package xconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, "a:b:c", Combine("a", "b", "c"))
	assert.Equal(t, "a", Combine("a"))
	assert.Equal(t, "parent:", Combine("parent", ""))
	assert.Empty(t, Combine())
}

func TestSectionKey(t *testing.T) {
	assert.Equal(t, "c", SectionKey("a:b:c"))
	assert.Equal(t, "a", SectionKey("a"))
	assert.Empty(t, SectionKey("a:"))
	assert.Empty(t, SectionKey(""))
}

func TestParentPath(t *testing.T) {
	assert.Equal(t, "a:b", ParentPath("a:b:c"))
	assert.Empty(t, ParentPath("a"))
	assert.Equal(t, "a", ParentPath("a:"))
	assert.Empty(t, ParentPath(""))
}
