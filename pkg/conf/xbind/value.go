package xbind

import (
	"fmt"
	"reflect"
)

// Value 按键取值并解析为 T。键缺失返回零值和 nil 错误，
// 解析失败返回 *BindError。
func Value[T any](c Queryable, key string) (T, error) {
	var out T
	raw, ok := c.Get(key)
	if !ok {
		return out, nil
	}

	rv := reflect.ValueOf(&out).Elem()
	if u, isText := asTextUnmarshaler(rv); isText {
		if raw == "" {
			return out, nil
		}
		if err := u.UnmarshalText([]byte(raw)); err != nil {
			return out, &BindError{Key: key, Type: rv.Type(), Err: err}
		}
		return out, nil
	}

	if err := assign(rv, key, raw); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Required 同 Value，但键缺失时返回 ErrRequired。
func Required[T any](c Queryable, key string) (T, error) {
	if _, ok := c.Get(key); !ok {
		var zero T
		return zero, fmt.Errorf("xbind: key %q: %w", key, ErrRequired)
	}
	return Value[T](c, key)
}

// ValueOr 同 Value，但键缺失或解析失败时返回 def。
func ValueOr[T any](c Queryable, key string, def T) T {
	if _, ok := c.Get(key); !ok {
		return def
	}

	v, err := Value[T](c, key)
	if err != nil {
		return def
	}
	return v
}

// Queryable Value 系列函数需要的最小查询面。
// xconf.Configuration、Section、Root 均满足。
type Queryable interface {
	Get(key string) (string, bool)
}
