package xtoken

import "sync"

// Registration 表示一个活动的 OnChange 订阅。
type Registration struct {
	produce func() Token
	action  func()

	mu      sync.Mutex
	stopped bool
	cancel  func()
}

// OnChange 订阅一个可续订的令牌序列。
//
// 循环逻辑：通过 produce 取当前令牌并注册；令牌触发后执行 action，
// 再取新令牌重新注册。produce 返回的令牌已触发时，action 立即执行
// 并继续取下一个令牌，因此 produce 必须在触发后换发新令牌，否则
// 循环会空转。
//
// action 在触发方的 goroutine 上执行。Stop 之后不再有 action 调用
// 被发起（正在执行中的调用不被打断）。
func OnChange(produce func() Token, action func()) *Registration {
	r := &Registration{produce: produce, action: action}
	r.arm()
	return r
}

// Stop 终止订阅。幂等。
func (r *Registration) Stop() {
	r.mu.Lock()
	r.stopped = true
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (r *Registration) arm() {
	for {
		r.mu.Lock()
		if r.stopped {
			r.mu.Unlock()
			return
		}
		r.mu.Unlock()

		token := r.produce()
		if token.HasChanged() {
			r.action()
			continue
		}

		cancel := token.Register(func() {
			r.mu.Lock()
			if r.stopped {
				r.mu.Unlock()
				return
			}
			r.mu.Unlock()

			r.action()
			r.arm()
		})

		r.mu.Lock()
		if r.stopped {
			r.mu.Unlock()
			cancel()
			return
		}
		// 令牌在注册窗口内触发时回调已同步执行并完成续订，
		// 这里保存的取消函数对已消费的注册是空操作
		r.cancel = cancel
		r.mu.Unlock()
		return
	}
}
