package xconf

import (
	"errors"
	"io"
	"iter"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// configRoot Root 的默认实现。
// Provider 顺序在构建时固定，运行期不再变动。
type configRoot struct {
	providers []Provider

	mu    sync.RWMutex
	token *xtoken.ManualToken

	regs []*xtoken.Registration
	sf   singleflight.Group
}

var _ Root = (*configRoot)(nil)

// newRoot 加载全部 Provider 并挂接变更订阅。
// 任一 Provider 首次加载失败时整体构建失败。
func newRoot(providers []Provider) (*configRoot, error) {
	r := &configRoot{
		providers: providers,
		token:     xtoken.New(),
	}

	var failures []*ProviderError
	for _, p := range providers {
		if err := p.Load(); err != nil {
			failures = append(failures, &ProviderError{Provider: p.Name(), Err: err})
		}
	}
	if len(failures) > 0 {
		return nil, &ReloadError{Failures: failures}
	}

	for _, p := range providers {
		r.regs = append(r.regs, xtoken.OnChange(p.ReloadToken, r.raiseChanged))
	}
	return r, nil
}

// raiseChanged 换发聚合令牌并触发旧令牌。
// 严格在数据更新之后调用，先持有者恰好观察到一次变更。
func (r *configRoot) raiseChanged() {
	r.mu.Lock()
	prev := r.token
	r.token = xtoken.New()
	r.mu.Unlock()

	prev.Notify()
}

func (r *configRoot) Reload() error {
	_, err, _ := r.sf.Do("reload", func() (any, error) {
		var failures []*ProviderError
		for _, p := range r.providers {
			if err := p.Load(); err != nil {
				failures = append(failures, &ProviderError{Provider: p.Name(), Err: err})
			}
		}

		// 即使部分失败也换发令牌：成功的 Provider 已应用新数据
		r.raiseChanged()

		if len(failures) > 0 {
			return nil, &ReloadError{Failures: failures}
		}
		return nil, nil
	})
	return err
}

func (r *configRoot) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

func (r *configRoot) Close() error {
	for _, reg := range r.regs {
		reg.Stop()
	}

	var errs []error
	for _, p := range r.providers {
		if closer, ok := p.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (r *configRoot) Get(key string) (string, bool) {
	// 后加入的 Provider 优先级更高
	for i := len(r.providers) - 1; i >= 0; i-- {
		if v, ok := r.providers[i].Get(key); ok {
			return v, true
		}
	}
	return "", false
}

func (r *configRoot) Section(key string) Section {
	return &configSection{root: r, path: key}
}

func (r *configRoot) Children() []Section {
	return r.sections("", r.childKeys(""))
}

func (r *configRoot) ReloadToken() xtoken.Token {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *configRoot) Iterate(relative bool) iter.Seq2[string, string] {
	return iterate(r, relative)
}

// childKeys 汇总所有 Provider 在 parentPath 下的子键并去重。
// 并集语义：仅在低优先级 Provider 中定义的子键同样出现。
func (r *configRoot) childKeys(parentPath string) []string {
	var keys []string
	for _, p := range r.providers {
		keys = p.ChildKeys(keys, parentPath)
	}

	seen := make(map[string]struct{}, len(keys))
	out := keys[:0]
	for _, k := range keys {
		upper := strings.ToUpper(k)
		if _, dup := seen[upper]; dup {
			continue
		}
		seen[upper] = struct{}{}
		out = append(out, k)
	}
	return out
}

// sections 把子键段转换为 Section 视图，parentPath 为空表示根。
func (r *configRoot) sections(parentPath string, keys []string) []Section {
	out := make([]Section, len(keys))
	for i, k := range keys {
		path := k
		if parentPath != "" {
			path = Combine(parentPath, k)
		}
		out[i] = &configSection{root: r, path: path}
	}
	return out
}
