package xfile_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 在所有测试完成后检测 goroutine 泄漏，
// 确保监视器 goroutine 随 Close 全部退出。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
