package xconf

import "iter"

// iterate 深度优先枚举合并后的配置树。
// Section 在绝对模式下先产出自身条目；相对模式下去掉路径前缀、
// 不产出自身。序列惰性推导，可重复 range。
func iterate(c Configuration, relative bool) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		prefixLen := 0

		if s, ok := c.(Section); ok {
			if relative {
				prefixLen = len(s.Path()) + len(KeyDelimiter)
			} else {
				v, _ := s.Value()
				if !yield(s.Path(), v) {
					return
				}
			}
		}

		walk(c.Children(), prefixLen, yield)
	}
}

func walk(children []Section, prefixLen int, yield func(string, string) bool) bool {
	for _, child := range children {
		v, _ := child.Value()
		if !yield(child.Path()[prefixLen:], v) {
			return false
		}
		if !walk(child.Children(), prefixLen, yield) {
			return false
		}
	}
	return true
}
