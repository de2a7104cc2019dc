package xbind

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrRequired 必填键缺失。
var ErrRequired = errors.New("xbind: required value missing")

// ErrNotPointer 绑定目标不是非 nil 指针。
var ErrNotPointer = errors.New("xbind: target must be a non-nil pointer")

// BindError 某个键的值无法落入目标类型。
type BindError struct {
	// Key 出错位置的配置路径。
	Key string

	// Type 目标类型。
	Type reflect.Type

	// Err 底层原因。
	Err error
}

// Error 实现 error 接口。
func (e *BindError) Error() string {
	return fmt.Sprintf("xbind: bind %q to %s: %v", e.Key, e.Type, e.Err)
}

// Unwrap 返回底层原因。
func (e *BindError) Unwrap() error {
	return e.Err
}
