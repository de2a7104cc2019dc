// Package xfile 提供基于文件的配置源，支持可选文件与变更监视。
//
// 具体格式由 Parser 决定，xjson、xyaml、xini 在本包之上封装了
// 常用格式的便捷入口。
package xfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// Parser 把文件原始内容解析为扁平键值对，键以 ":" 分隔层级。
type Parser func(raw []byte) (map[string]string, error)

// DefaultReloadDelay 监视到变更后延迟重载的默认时长，
// 用于等待编辑器完成写入。
const DefaultReloadDelay = 250 * time.Millisecond

// Option 配置 Source 的可选项。
type Option func(*Source)

// Optional 声明文件允许不存在：缺失时源为空，不报错。
func Optional() Option {
	return func(s *Source) {
		s.optional = true
	}
}

// WithReload 开启文件变更监视，变更时自动重载并触发变更令牌。
func WithReload() Option {
	return func(s *Source) {
		s.reload = true
	}
}

// WithReloadDelay 设置变更防抖时长，仅在 WithReload 时生效。
func WithReloadDelay(d time.Duration) Option {
	return func(s *Source) {
		s.delay = d
	}
}

// Source 文件配置源。
type Source struct {
	path     string
	parser   Parser
	optional bool
	reload   bool
	delay    time.Duration
}

// New 创建文件配置源。
func New(path string, parser Parser, opts ...Option) *Source {
	s := &Source{
		path:   path,
		parser: parser,
		delay:  DefaultReloadDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build 实现 xconf.Source。开启监视时在此启动文件监视器。
func (s *Source) Build(_ *xconf.Builder) (xconf.Provider, error) {
	if s.path == "" {
		return nil, errors.New("xfile: path is empty")
	}
	if s.parser == nil {
		return nil, errors.New("xfile: parser is nil")
	}

	p := &fileProvider{
		path:     s.path,
		parser:   s.parser,
		optional: s.optional,
		token:    xtoken.New(),
	}
	empty := kvstore.New()
	p.data.Store(&empty)

	if s.reload {
		if err := p.startWatch(s.delay); err != nil {
			return nil, err
		}
	}
	return p, nil
}

type fileProvider struct {
	path     string
	parser   Parser
	optional bool

	data atomic.Pointer[kvstore.Data]

	mu     sync.Mutex
	token  *xtoken.ManualToken
	digest uint64
	loaded bool

	watch *watcher
}

var _ xconf.Provider = (*fileProvider)(nil)

func (p *fileProvider) Name() string { return "xfile" }

func (p *fileProvider) Get(key string) (string, bool) {
	return p.data.Load().Get(key)
}

func (p *fileProvider) ChildKeys(earlier []string, parentPath string) []string {
	return p.data.Load().ChildKeys(earlier, parentPath)
}

func (p *fileProvider) ReloadToken() xtoken.Token {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Load 读取并解析文件，整体替换快照。
func (p *fileProvider) Load() error {
	_, err := p.loadFile()
	return err
}

// Close 停止文件监视。
func (p *fileProvider) Close() error {
	if p.watch != nil {
		return p.watch.stop()
	}
	return nil
}

// loadFile 返回内容是否发生实际变化。内容摘要未变时跳过
// 解析与替换，抑制编辑器触发的虚假变更。
func (p *fileProvider) loadFile() (bool, error) {
	raw, err := p.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && p.optional {
			empty := kvstore.New()
			p.data.Store(&empty)
			p.mu.Lock()
			changed := p.loaded && p.digest != 0
			p.digest = 0
			p.loaded = true
			p.mu.Unlock()
			return changed, nil
		}
		return false, fmt.Errorf("xfile: read %s: %w", p.path, err)
	}

	sum := xxhash.Sum64(raw)
	p.mu.Lock()
	unchanged := p.loaded && sum == p.digest
	p.mu.Unlock()
	if unchanged {
		return false, nil
	}

	pairs, err := p.parser(raw)
	if err != nil {
		return false, fmt.Errorf("xfile: parse %s: %w", p.path, err)
	}

	data := kvstore.From(pairs)
	p.data.Store(&data)

	p.mu.Lock()
	p.digest = sum
	p.loaded = true
	p.mu.Unlock()
	return true, nil
}

// read 带重试地读取文件，原子替换窗口内的瞬时错误可恢复。
// 文件不存在不重试。
func (p *fileProvider) read() ([]byte, error) {
	var raw []byte
	err := retry.New(
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, fs.ErrNotExist)
		}),
	).Do(func() error {
		var err error
		raw, err = os.ReadFile(p.path)
		return err
	})
	return raw, err
}

// reloadFromWatch 监视回调：重载成功且内容确有变化时换发令牌
// 并触发旧令牌。失败时保留旧数据，等待下一次变更。
func (p *fileProvider) reloadFromWatch() {
	changed, err := p.loadFile()
	if err != nil || !changed {
		return
	}

	p.mu.Lock()
	prev := p.token
	p.token = xtoken.New()
	p.mu.Unlock()

	prev.Notify()
}

func (p *fileProvider) startWatch(delay time.Duration) error {
	w, err := newWatcher(p.path, delay, p.reloadFromWatch)
	if err != nil {
		return err
	}
	p.watch = w
	return nil
}
