package xargs_test

import (
	"strings"
	"testing"

	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/provider/xargs"
)

// FuzzParse 保证任意参数令牌都不会让解析崩溃，
// 且解析产出的每个键都能被查回。
func FuzzParse(f *testing.F) {
	f.Add("--Key=Value")
	f.Add("/Switch Value")
	f.Add("-short=x")
	f.Add("bare=pair")
	f.Add("--two-part=1 --Key 2")
	f.Add("=")
	f.Add("--=")
	f.Add("/")
	f.Add("--a:b:c=nested")

	f.Fuzz(func(t *testing.T, input string) {
		args := strings.Fields(input)

		root, err := xconf.NewBuilder().Add(xargs.New(args, nil)).Build()
		if err != nil {
			t.Fatalf("build failed for %q: %v", args, err)
		}
		defer root.Close()

		for k, v := range root.Iterate(false) {
			got, ok := root.Get(k)
			// 中间节点没有自身值，以空值出现在遍历中
			if ok && got != v {
				t.Fatalf("key %q: iterate=%q get=%q", k, v, got)
			}
			if !ok && v != "" {
				t.Fatalf("iterated key %q with value %q not gettable", k, v)
			}
		}
	})
}
