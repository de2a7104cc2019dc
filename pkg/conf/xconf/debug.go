package xconf

import (
	"fmt"
	"strings"
)

// DebugView 返回整棵配置树的缩进文本视图，标注每个值的胜出
// Provider，用于排查覆盖关系：
//
//	Logging
//	  LogLevel
//	    Default=Information (xjson)
//	Port=8080 (xenv)
func DebugView(root Root) string {
	var sb strings.Builder
	providers := root.Providers()
	debugChildren(&sb, providers, root.Children(), "")
	return sb.String()
}

func debugChildren(sb *strings.Builder, providers []Provider, children []Section, indent string) {
	for _, child := range children {
		sb.WriteString(indent)
		sb.WriteString(child.Key())

		found := false
		for i := len(providers) - 1; i >= 0; i-- {
			if v, ok := providers[i].Get(child.Path()); ok {
				fmt.Fprintf(sb, "=%s (%s)", v, providers[i].Name())
				found = true
				break
			}
		}
		if !found {
			sb.WriteByte(':')
		}
		sb.WriteByte('\n')

		debugChildren(sb, providers, child.Children(), indent+"  ")
	}
}
