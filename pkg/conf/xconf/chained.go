package xconf

import (
	"sort"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// chainedSource 把一棵已有的配置树作为新 Builder 的一个源。
type chainedSource struct {
	config Configuration
}

// Chain 返回包装既有 Configuration 的配置源，用于把已构建的配置树
// 整体叠放进另一个 Builder。
func Chain(c Configuration) Source {
	return &chainedSource{config: c}
}

func (s *chainedSource) Build(_ *Builder) (Provider, error) {
	return &chainedProvider{config: s.config}, nil
}

type chainedProvider struct {
	config Configuration
}

var _ Provider = (*chainedProvider)(nil)

func (p *chainedProvider) Name() string {
	return "chained"
}

func (p *chainedProvider) Get(key string) (string, bool) {
	return p.config.Get(key)
}

func (p *chainedProvider) ReloadToken() xtoken.Token {
	return p.config.ReloadToken()
}

// Load 空操作：被链接的配置树由其自己的 Root 负责重载。
func (p *chainedProvider) Load() error {
	return nil
}

func (p *chainedProvider) ChildKeys(earlier []string, parentPath string) []string {
	cfg := p.config
	if parentPath != "" {
		cfg = cfg.Section(parentPath)
	}

	keys := earlier
	for _, child := range cfg.Children() {
		keys = append(keys, child.Key())
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return kvstore.Compare(keys[i], keys[j]) < 0
	})
	return keys
}
