// Package xargs 提供基于命令行参数的配置源。
//
// 支持四种参数写法：
//
//	--key=value  --key value   长开关
//	/key=value   /key value    斜杠开关，等价于 "--"
//	-k=value     -k value      短开关，必须出现在映射表中
//	key=value                  裸键值对
//
// 短横线分隔的开关名转为 PascalCase（no-build → NoBuild）。
package xargs

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/omeyang/xcfg/internal/kvstore"
	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/conf/xtoken"
)

// Source 命令行参数配置源。
type Source struct {
	args     []string
	mappings map[string]string
}

// New 创建命令行配置源。mappings 把开关别名映射到配置键，
// 键必须以 "-" 或 "--" 开头，匹配不区分大小写；非法映射在
// Build 阶段报错。
func New(args []string, mappings map[string]string) *Source {
	return &Source{args: args, mappings: mappings}
}

// Build 实现 xconf.Source，校验映射表后创建 Provider。
func (s *Source) Build(_ *xconf.Builder) (xconf.Provider, error) {
	mappings := make(map[string]string, len(s.mappings))
	for alias, key := range s.mappings {
		if !strings.HasPrefix(alias, "-") {
			return nil, fmt.Errorf("xargs: switch mapping %q must start with '-' or '--'", alias)
		}
		upper := strings.ToUpper(alias)
		if _, dup := mappings[upper]; dup {
			return nil, fmt.Errorf("xargs: duplicate switch mapping %q", alias)
		}
		mappings[upper] = key
	}

	p := &argsProvider{
		args:     s.args,
		mappings: mappings,
	}
	empty := kvstore.New()
	p.data.Store(&empty)
	return p, nil
}

type argsProvider struct {
	args     []string
	mappings map[string]string

	data atomic.Pointer[kvstore.Data]
}

var _ xconf.Provider = (*argsProvider)(nil)

func (p *argsProvider) Name() string { return "xargs" }

// Load 解析参数列表并整体替换快照。重复键后者覆盖前者，
// 无法识别的参数直接跳过。
func (p *argsProvider) Load() error {
	data := kvstore.New()

	for i := 0; i < len(p.args); i++ {
		arg := p.args[i]

		// "/Switch" 等价于 "--Switch"
		if strings.HasPrefix(arg, "/") {
			arg = "--" + arg[1:]
		}

		start := 0
		switch {
		case strings.HasPrefix(arg, "--"):
			start = 2
		case strings.HasPrefix(arg, "-"):
			start = 1
		}

		var key, value string
		if sep := strings.IndexByte(arg, '='); sep >= 0 {
			if mapped, ok := p.mappings[strings.ToUpper(arg[:sep])]; ok {
				key = mapped
			} else if start == 1 {
				// 未映射的短开关无效
				continue
			} else {
				key = arg[start:sep]
			}
			value = arg[sep+1:]
		} else {
			if start == 0 {
				continue
			}
			if mapped, ok := p.mappings[strings.ToUpper(arg)]; ok {
				key = mapped
			} else if start == 1 {
				// 未映射的短开关无效，且不消费后续参数
				continue
			} else {
				key = arg[start:]
			}

			// 双词形式取下一个参数作为值，缺失则丢弃本开关
			if i+1 >= len(p.args) {
				continue
			}
			i++
			value = p.args[i]
		}

		key = pascalCase(key)
		if key == "" {
			continue
		}
		data.Set(key, value)
	}

	p.data.Store(&data)
	return nil
}

func (p *argsProvider) Get(key string) (string, bool) {
	return p.data.Load().Get(key)
}

func (p *argsProvider) ChildKeys(earlier []string, parentPath string) []string {
	return p.data.Load().ChildKeys(earlier, parentPath)
}

func (p *argsProvider) ReloadToken() xtoken.Token {
	return xtoken.Never()
}

// pascalCase 把 "-" 分隔的各段首字母大写后拼接。
func pascalCase(key string) string {
	var sb strings.Builder
	sb.Grow(len(key))
	for _, part := range strings.Split(key, "-") {
		if part == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(first))
		sb.WriteString(part[size:])
	}
	return sb.String()
}
