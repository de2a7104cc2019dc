// Package xbind 把配置树绑定到 Go 类型，是扁平键空间的逆向重建。
//
// # 绑定规则
//
// 标量支持 string、bool、整数族、浮点、time.Duration 以及实现
// encoding.TextUnmarshaler 的类型。键缺失不是错误，目标保留原值；
// 空串只对 string 是合法值，对其余标量视同缺失。
//
// 切片绑定收集能解析为无符号整数的子键，按数值排序后从 0 连续
// 重新编号：稀疏下标 {0,1,4} 收敛为长度 3 的稠密序列。"1" 与 "01"
// 解析为同一下标时取排序后先出现者，后者跳过；这是明确策略而非
// 偶然行为。存活位置上的既有元素参与深合并。
//
// 映射的键类型支持 string、整数族与 bool，采用朴素十进制/布尔
// 字面量编码；两个子键解码为同一类型化键值时报 *BindError。
// 既有条目被保留并深合并。
//
// 结构体按导出字段绑定，`conf` 标签优先于大小写不敏感的字段名
// 匹配，`conf:"-"` 跳过字段。来源中缺失的字段保留既有值：绑定是
// 深合并，不是整体替换。
//
// # 原子性
//
// Bind 在目标的副本上工作，全部成功后一次性提交；失败的调用
// 不改动目标。
package xbind
