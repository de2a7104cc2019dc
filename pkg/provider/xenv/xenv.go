// Package xenv 提供基于环境变量的配置源。
//
// 环境变量名不允许出现 ":"，以 "__" 作为层级分隔符的别名：
// APP_LOGGING__LEVEL=Debug 在前缀 APP_ 下映射为键 LOGGING:LEVEL。
package xenv

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// Option 配置 Source 的可选项。
type Option func(*Source)

// WithEnviron 指定变量列表（"KEY=VALUE" 形式）替代 os.Environ，
// 用于测试或快照隔离。
func WithEnviron(environ []string) Option {
	return func(s *Source) {
		s.environ = environ
	}
}

// Source 环境变量配置源。
type Source struct {
	prefix  string
	environ []string
}

// New 创建仅采集带指定前缀变量的配置源。前缀匹配不区分大小写，
// 进入配置树前会被剥除；prefix 为空表示采集全部变量。
func New(prefix string, opts ...Option) *Source {
	s := &Source{prefix: prefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build 实现 xconf.Source。
func (s *Source) Build(_ *xconf.Builder) (xconf.Provider, error) {
	p := &envProvider{
		prefix:  strings.ToUpper(s.prefix),
		environ: s.environ,
	}
	empty := kvstore.New()
	p.data.Store(&empty)
	return p, nil
}

type envProvider struct {
	prefix  string
	environ []string

	data atomic.Pointer[kvstore.Data]
}

var _ xconf.Provider = (*envProvider)(nil)

func (p *envProvider) Name() string { return "xenv" }

// Load 重新采集环境变量并整体替换快照。
func (p *envProvider) Load() error {
	environ := p.environ
	if environ == nil {
		environ = os.Environ()
	}

	data := kvstore.New()
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		if !strings.HasPrefix(strings.ToUpper(name), p.prefix) {
			continue
		}

		key := strings.ReplaceAll(name[len(p.prefix):], "__", xconf.KeyDelimiter)
		if key == "" {
			continue
		}
		data.Set(key, value)
	}

	p.data.Store(&data)
	return nil
}

func (p *envProvider) Get(key string) (string, bool) {
	return p.data.Load().Get(key)
}

func (p *envProvider) ChildKeys(earlier []string, parentPath string) []string {
	return p.data.Load().ChildKeys(earlier, parentPath)
}

func (p *envProvider) ReloadToken() xtoken.Token {
	return xtoken.Never()
}
