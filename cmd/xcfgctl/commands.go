package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xcfg/pkg/conf/xconf"
	"github.com/omeyang/xcfg/pkg/provider/xargs"
	"github.com/omeyang/xcfg/pkg/provider/xenv"
	"github.com/omeyang/xcfg/pkg/provider/xfile"
	"github.com/omeyang/xcfg/pkg/provider/xini"
	"github.com/omeyang/xcfg/pkg/provider/xjson"
	"github.com/omeyang/xcfg/pkg/provider/xmem"
	"github.com/omeyang/xcfg/pkg/provider/xyaml"
)

// usageError 参数错误，main 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func createCommands() []*cli.Command {
	return []*cli.Command{
		createGetCommand(),
		createKeysCommand(),
		createTreeCommand(),
		createWatchCommand(),
	}
}

// assemble 按固定叠放顺序把全局选项转换为配置源。
// watch 为 true 时文件源开启变更监视。
func assemble(cmd *cli.Command, watch bool) (xconf.Root, error) {
	var fileOpts []xfile.Option
	if cmd.Bool("optional") {
		fileOpts = append(fileOpts, xfile.Optional())
	}
	if watch {
		fileOpts = append(fileOpts, xfile.WithReload())
	}

	b := xconf.NewBuilder()
	for _, path := range cmd.StringSlice("json") {
		b.Add(xjson.File(path, fileOpts...))
	}
	for _, path := range cmd.StringSlice("yaml") {
		b.Add(xyaml.File(path, fileOpts...))
	}
	for _, path := range cmd.StringSlice("ini") {
		b.Add(xini.File(path, fileOpts...))
	}
	if cmd.IsSet("env-prefix") {
		b.Add(xenv.New(cmd.String("env-prefix")))
	}
	if tokens := cmd.StringSlice("arg"); len(tokens) > 0 {
		b.Add(xargs.New(tokens, nil))
	}
	if sets := cmd.StringSlice("set"); len(sets) > 0 {
		pairs := make(map[string]string, len(sets))
		for _, kv := range sets {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return nil, &usageError{msg: fmt.Sprintf("--set 需要 k=v 形式: %q", kv)}
			}
			pairs[k] = v
		}
		b.Add(xmem.Map(pairs))
	}

	if len(b.Sources()) == 0 {
		return nil, &usageError{msg: "至少需要一个配置源（--json/--yaml/--ini/--env-prefix/--arg/--set）"}
	}
	return b.Build()
}

func createGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "查询单个键的合并后取值",
		ArgsUsage: "<key>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			key := cmd.Args().First()
			if key == "" {
				return &usageError{msg: "get 需要一个键参数"}
			}

			root, err := assemble(cmd, false)
			if err != nil {
				return err
			}
			defer root.Close()

			v, ok := root.Get(key)
			if !ok {
				return fmt.Errorf("键不存在: %s", key)
			}
			fmt.Println(v)
			return nil
		},
	}
}

func createKeysCommand() *cli.Command {
	return &cli.Command{
		Name:      "keys",
		Usage:     "列出某路径下一层子键，路径省略时列出根层级",
		ArgsUsage: "[path]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			root, err := assemble(cmd, false)
			if err != nil {
				return err
			}
			defer root.Close()

			var c xconf.Configuration = root
			if path := cmd.Args().First(); path != "" {
				c = root.Section(path)
			}
			for _, child := range c.Children() {
				fmt.Println(child.Key())
			}
			return nil
		},
	}
}

func createTreeCommand() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "打印整棵配置树及每个值的胜出来源",
		Action: func(_ context.Context, cmd *cli.Command) error {
			root, err := assemble(cmd, false)
			if err != nil {
				return err
			}
			defer root.Close()

			fmt.Print(xconf.DebugView(root))
			return nil
		},
	}
}

func createWatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "监视文件变更并持续打印配置树，Ctrl-C 退出",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := assemble(cmd, true)
			if err != nil {
				return err
			}
			defer root.Close()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Print(xconf.DebugView(root))

			// 聚合令牌单次触发，每轮重新取用
			for {
				token := root.ReloadToken()
				select {
				case <-ctx.Done():
					return nil
				case <-token.Done():
					fmt.Println("--- 配置已变更 ---")
					fmt.Print(xconf.DebugView(root))
				}
			}
		},
	}
}
