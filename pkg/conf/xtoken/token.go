package xtoken

import "sync"

// Token 单次触发的变更令牌。
type Token interface {
	// Done 返回触发时关闭的通道，可用于 select 等待。
	Done() <-chan struct{}

	// HasChanged 报告令牌是否已触发。
	HasChanged() bool

	// Register 注册触发回调，返回取消函数。
	// 令牌已触发时立即同步调用 fn，返回的取消函数为空操作。
	Register(fn func()) (cancel func())
}

// ManualToken 由持有方显式触发的令牌。
// 零值不可用，必须通过 New 创建。
type ManualToken struct {
	mu        sync.Mutex
	done      chan struct{}
	fired     bool
	nextID    int
	callbacks map[int]func()
}

var _ Token = (*ManualToken)(nil)

// New 创建未触发的令牌。
func New() *ManualToken {
	return &ManualToken{
		done:      make(chan struct{}),
		callbacks: make(map[int]func()),
	}
}

// Notify 触发令牌。幂等，首次调用之后的调用无效果。
// 回调在锁外执行，可以安全地重入本包。
func (t *ManualToken) Notify() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	close(t.done)

	fns := make([]func(), 0, len(t.callbacks))
	for _, fn := range t.callbacks {
		fns = append(fns, fn)
	}
	t.callbacks = nil
	t.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Done 实现 Token 接口。
func (t *ManualToken) Done() <-chan struct{} {
	return t.done
}

// HasChanged 实现 Token 接口。
func (t *ManualToken) HasChanged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Register 实现 Token 接口。
func (t *ManualToken) Register(fn func()) func() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		fn()
		return func() {}
	}

	id := t.nextID
	t.nextID++
	t.callbacks[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.callbacks, id)
	}
}

// neverDone 永不关闭的共享通道。
var neverDone = make(chan struct{})

type neverToken struct{}

func (neverToken) Done() <-chan struct{}        { return neverDone }
func (neverToken) HasChanged() bool             { return false }
func (neverToken) Register(func()) (cancel func()) { return func() {} }

// Never 返回永不触发的令牌，供不支持变更跟踪的 Provider 使用。
func Never() Token {
	return neverToken{}
}
