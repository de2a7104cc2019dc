// Package xjson 提供 JSON 文件配置源。
//
// 嵌套对象与数组被展平为 ":" 分隔的键：{"a":{"b":[1,2]}} 产出
// a:b:0=1、a:b:1=2。null 映射为空串。
package xjson

import (
	"github.com/knadh/koanf/parsers/json"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/provider/xfile"
)

// File 创建 JSON 文件配置源，接受 xfile 的全部选项。
func File(path string, opts ...xfile.Option) *xfile.Source {
	return xfile.New(path, Parse, opts...)
}

// Parse 把 JSON 文档解析为扁平键值对。
func Parse(raw []byte) (map[string]string, error) {
	doc, err := json.Parser().Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	return kvstore.Flatten(doc), nil
}
