package xtoken

// Composite 组合多个令牌：任一子令牌触发即触发。
// 触发后会注销对其余子令牌的注册，不持有 goroutine。
func Composite(tokens ...Token) *ManualToken {
	t := New()
	cancels := make([]func(), 0, len(tokens))

	// 先挂断开回调再挂子令牌，保证触发路径上注册已就位
	t.Register(func() {
		for _, cancel := range cancels {
			cancel()
		}
	})

	for _, token := range tokens {
		cancels = append(cancels, token.Register(t.Notify))
	}

	// 子令牌在挂接过程中已触发时，清理剩余注册
	if t.HasChanged() {
		for _, cancel := range cancels {
			cancel()
		}
	}
	return t
}
