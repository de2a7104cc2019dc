package xconf

import (
	"iter"

	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// Configuration 定义配置树的查询接口，由 Root 和 Section 共同实现。
type Configuration interface {
	// Get 按键查询，不区分大小写。未定义的键返回 ("", false)，
	// 不是错误。
	Get(key string) (string, bool)

	// Section 返回以 key 为前缀的子树视图。永远成功，
	// 空 Section 也是合法的可查询值。
	Section(key string) Section

	// Children 返回下一层全部子 Section：所有 Provider 子键的并集，
	// 按大小写不敏感去重，保留首次出现的写法。
	Children() []Section

	// ReloadToken 返回当前聚合变更令牌。
	ReloadToken() xtoken.Token

	// Iterate 惰性枚举合并后的配置树：每个键恰好出现一次，
	// 值为优先级解析后的胜出值。relative 为 true 时键去掉本节点
	// 的路径前缀。序列可重复 range，每次重新推导。
	Iterate(relative bool) iter.Seq2[string, string]
}

// Section 某个路径前缀下的配置视图。
type Section interface {
	Configuration

	// Key 本节点在父节点中的键，即路径的最后一段。
	Key() string

	// Path 本节点的完整路径。
	Path() string

	// Value 本节点自身的值，即键恰好等于 Path 的条目。
	// 与子节点互相独立。
	Value() (string, bool)

	// Exists 报告本节点是否存在：拥有自身值或任一子节点。
	Exists() bool
}

// Root 配置树的根，持有 Provider 列表并拥有重载协议。
type Root interface {
	Configuration

	// Reload 按构建顺序重载所有 Provider。尽力而为：个别失败不会
	// 中断其余重载，失败集合以 *ReloadError 返回。完成后换发聚合
	// 令牌并触发旧令牌。
	Reload() error

	// Providers 返回 Provider 列表的只读副本，顺序即优先级
	// （靠后优先）。
	Providers() []Provider

	// Close 停止变更订阅并关闭实现了 io.Closer 的 Provider。
	Close() error
}
