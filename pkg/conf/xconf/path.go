package xconf

import "strings"

// KeyDelimiter 配置路径的段分隔符。
// 环境变量风格的 "__" 是 Provider 侧的别名，进入核心前已规范化。
const KeyDelimiter = ":"

// Combine 把路径段拼接为一条路径。
// 空段原样保留（"parent" + "" → "parent:"），不吞并分隔符。
func Combine(segments ...string) string {
	return strings.Join(segments, KeyDelimiter)
}

// SectionKey 返回路径的最后一段。
func SectionKey(path string) string {
	if i := strings.LastIndex(path, KeyDelimiter); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ParentPath 返回父节点路径，没有父节点时返回空串。
func ParentPath(path string) string {
	if i := strings.LastIndex(path, KeyDelimiter); i >= 0 {
		return path[:i]
	}
	return ""
}
