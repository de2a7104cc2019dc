// Package xconf 把多个有序配置源合并为一棵可查询的逻辑配置树。
//
// # 设计理念
//
// 配置是一个扁平的键值命名空间：键为 ":" 分隔的层级路径，值为字符串。
// 多个 Provider 按加入顺序叠放，后加入者优先级更高；查询按优先级从高
// 到低取第一个命中值，绝不合并、绝不做类型转换（类型化由 xbind 负责）。
//
// 键比较不区分大小写，枚举时保留首次出现的原始写法。
//
// # 基本用法
//
//	root, err := xconf.NewBuilder().
//	    Add(xjson.File("app.json")).
//	    Add(xenv.New("APP_")).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	level, _ := root.Section("Logging").Section("LogLevel").Get("Default")
//
// # Section
//
// Section 是以某个路径前缀为根的轻量视图，本身实现完整的
// Configuration 接口。Section 永远构造成功：空 Section 是合法的可查询
// 值，而不是错误。一个 Section 可以同时拥有自身值和子节点，二者互不
// 影响（"a"="x" 与 "a:b"="y" 可以共存）。
//
// # 重载与变更通知
//
// Root.Reload 按固定顺序重载所有 Provider，尽力而为：个别 Provider
// 失败不会中断其余的重载，失败集合通过 *ReloadError 报告。重载完成后
// 换发聚合令牌并触发旧令牌，先持有者恰好观察到一次变更。Provider
// 自身的变更（如文件监视）同样会传播到聚合令牌。并发 Reload 调用
// 通过 singleflight 合并。
//
// # 并发安全
//
// Root 与 Section 的全部查询方法并发安全。Provider 的 Load 以整体
// 快照替换的方式更新数据，并发读取者只会看到重载前或重载后的完整
// 快照，不会观察到半更新状态。
package xconf
