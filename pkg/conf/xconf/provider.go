package xconf

import "github.com/omeyang/xcfg/pkg/conf/xtoken"

// Provider 定义单个配置源的契约。
//
// 实现约束：
//   - Get 不区分大小写；缺失返回 ("", false)。
//   - Load 必须整体替换条目快照，不得原地增量修改，保证并发读取者
//     只见到完整的新旧快照之一。
//   - 支持变更跟踪的实现必须先换发新令牌、再触发旧令牌，
//     使订阅方续订时总能拿到未消费的令牌。
type Provider interface {
	// Name 返回 Provider 名称，仅用于诊断输出。
	Name() string

	// Get 按键查询本源的值。
	Get(key string) (string, bool)

	// ChildKeys 把 parentPath（空串表示根）下一层的子键段追加到
	// earlier 并返回排序后的结果。返回的是键段而非完整路径。
	ChildKeys(earlier []string, parentPath string) []string

	// ReloadToken 返回本源当前的变更令牌。
	// 不支持变更跟踪的实现返回 xtoken.Never()。
	ReloadToken() xtoken.Token

	// Load 从底层源重新加载数据。
	Load() error
}

// Source 描述一个尚未实例化的配置源，由 Builder 在构建时转换为
// Provider。构建期可检出的配置错误（如非法的开关映射）在这里报告。
type Source interface {
	Build(b *Builder) (Provider, error)
}
