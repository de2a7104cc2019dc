// xcfgctl 是多源配置的命令行检查工具。
//
// 用法:
//
//	xcfgctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--json <path>        追加 JSON 配置文件（可重复）
//	--yaml <path>        追加 YAML 配置文件（可重复）
//	--ini <path>         追加 INI 配置文件（可重复）
//	--env-prefix <p>     追加环境变量源，仅采集带前缀的变量
//	--arg <token>        追加命令行风格的参数令牌（可重复）
//	--set <k=v>          追加单条覆盖值（可重复，优先级最高）
//	--optional           文件缺失不报错
//
// 源的叠放顺序固定为 json → yaml → ini → 环境变量 → --arg → --set，
// 靠后的源覆盖靠前的源。
//
// 命令:
//
//	get <key>       查询单个键的合并后取值
//	keys [path]     列出某路径下一层子键
//	tree            打印整棵配置树及每个值的胜出来源
//	watch           监视文件变更并持续打印，Ctrl-C 退出
//
// 退出码:
//
//	0: 成功
//	1: 运行错误（文件不存在、键不存在等）
//	2: 参数错误
//
// 示例:
//
//	xcfgctl --json appsettings.json get Logging:LogLevel:Default
//	xcfgctl --yaml base.yaml --yaml override.yaml tree
//	xcfgctl --json app.json --env-prefix APP_ --set Port=9000 keys
//	xcfgctl --json app.json watch
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xcfgctl",
		Usage:   "多源配置检查工具",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "json",
				Usage: "JSON 配置文件路径，可重复",
			},
			&cli.StringSliceFlag{
				Name:  "yaml",
				Usage: "YAML 配置文件路径，可重复",
			},
			&cli.StringSliceFlag{
				Name:  "ini",
				Usage: "INI 配置文件路径，可重复",
			},
			&cli.StringFlag{
				Name:  "env-prefix",
				Usage: "环境变量前缀，设置后追加环境变量源",
			},
			&cli.StringSliceFlag{
				Name:  "arg",
				Usage: "命令行风格的参数令牌（--k=v 等），可重复",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "k=v 形式的覆盖值，可重复",
			},
			&cli.BoolFlag{
				Name:  "optional",
				Usage: "文件缺失不报错",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 退出码由 run() 统一映射，不让框架直接 os.Exit
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
