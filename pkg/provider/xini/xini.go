// Package xini 提供 INI 文件配置源。
//
// [section] 中的键映射为 section:key，节外（DEFAULT 节）的键
// 直接位于根层级。
package xini

import (
	"gopkg.in/ini.v1"

	"github.com/omeyang/xcfg/pkg/provider/xfile"
)

// File 创建 INI 文件配置源，接受 xfile 的全部选项。
func File(path string, opts ...xfile.Option) *xfile.Source {
	return xfile.New(path, Parse, opts...)
}

// Parse 把 INI 文档解析为扁平键值对。
func Parse(raw []byte) (map[string]string, error) {
	f, err := ini.Load(raw)
	if err != nil {
		return nil, err
	}

	pairs := make(map[string]string)
	for _, section := range f.Sections() {
		prefix := ""
		if section.Name() != ini.DefaultSection {
			prefix = section.Name() + ":"
		}
		for _, key := range section.Keys() {
			pairs[prefix+key.Name()] = key.Value()
		}
	}
	return pairs, nil
}
