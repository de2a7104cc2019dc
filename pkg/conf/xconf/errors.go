package xconf

import (
	"fmt"
	"strings"
)

// ProviderError 单个 Provider 的加载失败。
type ProviderError struct {
	// Provider 失败源的名称。
	Provider string

	// Err 底层原因。
	Err error
}

// Error 实现 error 接口。
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%v (%s)", e.Err, e.Provider)
}

// Unwrap 返回底层原因。
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ReloadError 一次重载/构建中全部失败 Provider 的集合。
// 重载是尽力而为的：成功的 Provider 已应用新数据。
type ReloadError struct {
	Failures []*ProviderError
}

// Error 实现 error 接口。
func (e *ReloadError) Error() string {
	if len(e.Failures) == 1 {
		return "xconf: " + e.Failures[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("xconf: one or more providers failed to load:")
	for i, f := range e.Failures {
		fmt.Fprintf(&sb, "\n  [%d]: %s", i+1, f.Error())
	}
	return sb.String()
}

// Unwrap 支持 errors.Is/As 穿透到各 Provider 的底层错误。
func (e *ReloadError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// Providers 返回失败 Provider 的名称集合。
func (e *ReloadError) Providers() []string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Provider
	}
	return names
}
