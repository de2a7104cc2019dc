package kvstore

import (
	"sort"
	"strings"
)

// KeyDelimiter 配置键的路径分隔符。
const KeyDelimiter = ":"

// Entry 一条配置项。Key 保留首次写入时的原始大小写。
type Entry struct {
	Key   string
	Value string
}

// Data 单个 Provider 的键值快照。
// 映射键为全大写的完整路径，值中保留原始写法。
// Data 本身不做并发保护：Provider 通过整体替换快照保证原子性，
// 已发布的快照只读。
type Data map[string]Entry

// New 创建空快照。
func New() Data {
	return make(Data)
}

// From 由普通键值对构建快照。
// 同一键（不区分大小写）后写入者覆盖先写入者。
func From(pairs map[string]string) Data {
	d := make(Data, len(pairs))
	for k, v := range pairs {
		d.Set(k, v)
	}
	return d
}

// Set 写入一条配置项，键按大写规范化索引。
func (d Data) Set(key, value string) {
	d[strings.ToUpper(key)] = Entry{Key: key, Value: value}
}

// Get 按键查找，不区分大小写。
func (d Data) Get(key string) (string, bool) {
	e, ok := d[strings.ToUpper(key)]
	if !ok {
		return "", false
	}
	return e.Value, true
}

// ChildKeys 把 parentPath 下一层的子键段追加到 earlier 并返回。
// parentPath 为空串表示根。返回的切片整体按层级比较器排序。
func (d Data) ChildKeys(earlier []string, parentPath string) []string {
	keys := earlier

	if parentPath == "" {
		for _, e := range d {
			keys = append(keys, Segment(e.Key, 0))
		}
	} else {
		parent := strings.ToUpper(parentPath) + KeyDelimiter

		for upper, e := range d {
			if len(upper) > len(parent) && strings.HasPrefix(upper, parent) {
				keys = append(keys, Segment(e.Key, len(parent)))
			}
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return Compare(keys[i], keys[j]) < 0
	})
	return keys
}

// Segment 截取 key 从 start 起的第一个路径段。
func Segment(key string, start int) string {
	sub := key[start:]
	if i := strings.Index(sub, KeyDelimiter); i >= 0 {
		return sub[:i]
	}
	return sub
}
