package kvstore

import (
	"fmt"
	"strconv"
)

// Flatten 把解析器产出的嵌套文档展开为扁平键值对。
//
// 嵌套 map 的键用 ":" 连接，数组元素的键为其下标段
// （{"a":["x","y"]} → "a:0"="x", "a:1"="y"）。标量按字面量转成
// 字符串，null 转为空串（存在但为空，而非缺失）。
func Flatten(doc map[string]any) map[string]string {
	out := make(map[string]string)
	flattenMap(out, "", doc)
	return out
}

func flattenMap(out map[string]string, prefix string, m map[string]any) {
	for k, v := range m {
		flattenValue(out, join(prefix, k), v)
	}
}

func flattenValue(out map[string]string, key string, v any) {
	switch val := v.(type) {
	case map[string]any:
		flattenMap(out, key, val)
	case []any:
		for i, item := range val {
			flattenValue(out, join(key, strconv.Itoa(i)), item)
		}
	case nil:
		out[key] = ""
	case string:
		out[key] = val
	case bool:
		out[key] = strconv.FormatBool(val)
	case int:
		out[key] = strconv.Itoa(val)
	case int64:
		out[key] = strconv.FormatInt(val, 10)
	case uint64:
		out[key] = strconv.FormatUint(val, 10)
	case float64:
		// JSON 解析器把所有数字给成 float64，整数不能带小数尾巴
		out[key] = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		out[key] = fmt.Sprintf("%v", val)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + KeyDelimiter + key
}
