// Package kvstore 提供各 Provider 共享的扁平键值快照结构。
//
// 配置键为 ":" 分隔的层级路径，比较时不区分大小写。快照内部以
// 全大写键索引，同时保留首次出现的原始写法，供枚举和打印使用。
//
// 本包还提供层级键比较器（数字段按数值排序且排在字符串段之前）
// 以及嵌套文档（map/数组）到扁平键的展开。
//
// 仅供仓库内部使用。
package kvstore
