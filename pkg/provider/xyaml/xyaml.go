// Package xyaml 提供 YAML 文件配置源。
//
// 嵌套映射与序列被展平为 ":" 分隔的键，语义与 xjson 一致。
package xyaml

import (
	"github.com/knadh/koanf/parsers/yaml"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/provider/xfile"
)

// File 创建 YAML 文件配置源，接受 xfile 的全部选项。
func File(path string, opts ...xfile.Option) *xfile.Source {
	return xfile.New(path, Parse, opts...)
}

// Parse 把 YAML 文档解析为扁平键值对。
func Parse(raw []byte) (map[string]string, error) {
	doc, err := yaml.Parser().Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	return kvstore.Flatten(doc), nil
}
