// xaddrctl 是 xaddr 地址工具库的命令行前端。
//
// 用法:
//
//	xaddrctl <命令> [命令参数]
//
// 命令:
//
//	resolve <address>            解析数值文本地址并输出属性
//	  -f, --family               限制地址族 (4|6)
//	info <kind> <text>           按种类解析任意地址（含链路层）并输出属性
//	common <a> <b>               两个地址的公共前缀长度
//	  --hosts                    应用 IPv4 子网边界启发式
//	netaddr <address> <bits>     按前缀长度掩码出网络地址
//	help                         显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（解析失败、不支持的操作等）
//	2: 参数错误（缺少参数、未知种类、非法前缀长度等）
//
// 示例:
//
//	xaddrctl resolve 192.168.1.1
//	xaddrctl resolve -f 6 2001:db8::1
//	xaddrctl info ethernet aa:bb:cc:dd:ee:ff
//	xaddrctl common --hosts 10.0.0.7 10.0.0.1
//	xaddrctl netaddr 192.168.1.77 24
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
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xaddrctl",
		Usage:          "网络地址解析与前缀运算工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 退出码映射统一在 run() 完成，禁止 urfave/cli 直接 os.Exit。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()
	if err := app.Run(context.Background(), args); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(os.Stderr, "xaddrctl:", usage.msg)
			return 2
		}
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			// 消息已由 ExitErrHandler 输出。
			return 2
		}
		fmt.Fprintln(os.Stderr, "xaddrctl:", err)
		return 1
	}
	return 0
}
