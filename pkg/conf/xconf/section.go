package xconf

import (
	"iter"

	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// configSection 轻量 Section 视图：只持有根引用和路径前缀，
// 所有查询加前缀后转发给根。
type configSection struct {
	root *configRoot
	path string
}

var _ Section = (*configSection)(nil)

func (s *configSection) subkey(key string) string {
	return Combine(s.path, key)
}

func (s *configSection) Get(key string) (string, bool) {
	return s.root.Get(s.subkey(key))
}

func (s *configSection) Section(key string) Section {
	return s.root.Section(s.subkey(key))
}

func (s *configSection) Children() []Section {
	return s.root.sections(s.path, s.root.childKeys(s.path))
}

func (s *configSection) ReloadToken() xtoken.Token {
	return s.root.ReloadToken()
}

func (s *configSection) Iterate(relative bool) iter.Seq2[string, string] {
	return iterate(s, relative)
}

func (s *configSection) Key() string {
	return SectionKey(s.path)
}

func (s *configSection) Path() string {
	return s.path
}

func (s *configSection) Value() (string, bool) {
	return s.root.Get(s.path)
}

func (s *configSection) Exists() bool {
	if _, ok := s.Value(); ok {
		return true
	}
	return len(s.root.childKeys(s.path)) > 0
}
