// Package xtoken 提供配置变更通知的单次触发令牌。
//
// # 语义
//
// Token 恰好触发一次：触发即关闭 Done() 通道并回调所有已注册函数。
// 需要续订时由生产方换发新令牌（见 [OnChange]），而不是复位旧令牌。
//
// 两种消费方式：
//   - 轮询：HasChanged()
//   - 等待：<-token.Done()，与 context.Done 用法一致
//
// # 注册回调
//
// Register 在令牌已触发时立即同步调用回调；否则登记回调并返回
// 取消函数。回调在触发方的 goroutine 上执行，不应做阻塞操作。
//
// # 续订
//
// OnChange 实现"取令牌→等触发→执行动作→取新令牌"的循环，
// 是宿主监听聚合重载信号的推荐方式：
//
//	reg := xtoken.OnChange(root.ReloadToken, func() {
//	    log.Println("configuration reloaded")
//	})
//	defer reg.Stop()
package xtoken
