// Package xmem 提供基于内存映射的配置源，多用于默认值和测试。
package xmem

import (
	"strings"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// Map 返回以给定键值对为内容的配置源。
// 键使用 ":" 分隔层级，传入 nil 等价于空源。
func Map(pairs map[string]string) xconf.Source {
	return &source{pairs: pairs}
}

// Pairs 以 "key=value" 字面量构造配置源，便于内联书写：
//
//	xmem.Pairs("Port=5000", "Logging:LogLevel:Default=Debug")
//
// 缺少 "=" 的项整体作为键，值为空字符串。
func Pairs(pairs ...string) xconf.Source {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		m[key] = value
	}
	return Map(m)
}

type source struct {
	pairs map[string]string
}

func (s *source) Build(_ *xconf.Builder) (xconf.Provider, error) {
	return &memProvider{data: kvstore.From(s.pairs)}, nil
}

type memProvider struct {
	data kvstore.Data
}

var _ xconf.Provider = (*memProvider)(nil)

func (p *memProvider) Name() string { return "xmem" }

func (p *memProvider) Get(key string) (string, bool) {
	return p.data.Get(key)
}

func (p *memProvider) ChildKeys(earlier []string, parentPath string) []string {
	return p.data.ChildKeys(earlier, parentPath)
}

// ReloadToken 内存数据不变，返回永不触发的令牌。
func (p *memProvider) ReloadToken() xtoken.Token {
	return xtoken.Never()
}

func (p *memProvider) Load() error { return nil }
