package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/omeyang/xaddr/pkg/util/xaddr"
	"github.com/urfave/cli/v3"
)

// usageError 表示参数错误，run() 将其映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createResolveCommand(),
		createInfoCommand(),
		createCommonCommand(),
		createNetaddrCommand(),
	}
}

// createResolveCommand 创建 resolve 子命令。
func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Aliases:   []string{"r"},
		Usage:     "解析数值文本地址并输出属性",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "family",
				Aliases: []string{"f"},
				Usage:   "限制地址族 (4|6)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{"resolve 需要一个地址参数"}
			}
			family, err := parseFamily(cmd.String("family"))
			if err != nil {
				return &usageError{err.Error()}
			}
			return cmdResolve(outWriter(cmd), family, cmd.Args().First())
		},
	}
}

// createInfoCommand 创建 info 子命令。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "按种类解析任意地址（含链路层）并输出属性",
		ArgsUsage: "<kind> <text>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{"info 需要种类和地址两个参数"}
			}
			kind, err := parseKind(cmd.Args().Get(0))
			if err != nil {
				return &usageError{err.Error()}
			}
			return cmdInfo(outWriter(cmd), kind, cmd.Args().Get(1))
		},
	}
}

// createCommonCommand 创建 common 子命令。
func createCommonCommand() *cli.Command {
	return &cli.Command{
		Name:      "common",
		Aliases:   []string{"c"},
		Usage:     "两个地址的公共前缀长度",
		ArgsUsage: "<a> <b>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hosts",
				Usage: "应用 IPv4 子网边界启发式",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{"common 需要两个地址参数"}
			}
			return cmdCommon(outWriter(cmd),
				cmd.Args().Get(0), cmd.Args().Get(1), cmd.Bool("hosts"))
		},
	}
}

// createNetaddrCommand 创建 netaddr 子命令。
func createNetaddrCommand() *cli.Command {
	return &cli.Command{
		Name:      "netaddr",
		Aliases:   []string{"n"},
		Usage:     "按前缀长度掩码出网络地址",
		ArgsUsage: "<address> <bits>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{"netaddr 需要地址和前缀长度两个参数"}
			}
			bits, err := strconv.Atoi(cmd.Args().Get(1))
			if err != nil {
				return &usageError{fmt.Sprintf("无效的前缀长度 %q", cmd.Args().Get(1))}
			}
			return cmdNetaddr(outWriter(cmd), cmd.Args().Get(0), bits)
		},
	}
}

func cmdResolve(w io.Writer, family xaddr.Family, text string) error {
	a, err := xaddr.Resolve(family, text)
	if err != nil {
		return err
	}
	defer a.Release()
	printAddr(w, a)
	return nil
}

func cmdInfo(w io.Writer, kind xaddr.Kind, text string) error {
	a, err := xaddr.Parse(kind, text)
	if err != nil {
		return err
	}
	defer a.Release()
	printAddr(w, a)
	return nil
}

func cmdCommon(w io.Writer, sa, sb string, hosts bool) error {
	a, err := xaddr.Resolve(xaddr.FamilyUnspec, sa)
	if err != nil {
		return err
	}
	defer a.Release()
	b, err := xaddr.Resolve(xaddr.FamilyUnspec, sb)
	if err != nil {
		return err
	}
	defer b.Release()

	var n int
	if hosts {
		n, err = a.CommonPrefixLenHosts(b)
	} else {
		n, err = a.CommonPrefixLen(b)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, n)
	return nil
}

func cmdNetaddr(w io.Writer, text string, bits int) error {
	a, err := xaddr.Resolve(xaddr.FamilyUnspec, text)
	if err != nil {
		return err
	}
	defer a.Release()

	raw, err := a.NetworkAddr(bits)
	if err != nil {
		return err
	}
	network, err := xaddr.New(a.Kind(), raw)
	if err != nil {
		return err
	}
	defer network.Release()
	fmt.Fprintf(w, "%s/%d\n", network, bits)
	return nil
}

// printAddr 输出地址属性。
func printAddr(w io.Writer, a *xaddr.Addr) {
	fmt.Fprintf(w, "address:    %s\n", a)
	fmt.Fprintf(w, "kind:       %s\n", a.Kind())
	fmt.Fprintf(w, "family:     %s\n", a.Family())
	fmt.Fprintf(w, "width:      %d bytes\n", a.Size())
	fmt.Fprintf(w, "link-local: %v\n", a.IsLinkLocal())
	if a.Kind() == xaddr.KindIPv4 {
		fmt.Fprintf(w, "rfc1918:    %v\n", a.IsRFC1918())
	}
}

// parseFamily 解析 --family 取值。
func parseFamily(s string) (xaddr.Family, error) {
	switch s {
	case "":
		return xaddr.FamilyUnspec, nil
	case "4":
		return xaddr.FamilyIPv4, nil
	case "6":
		return xaddr.FamilyIPv6, nil
	default:
		return 0, fmt.Errorf("无效的地址族 %q（期望 4 或 6）", s)
	}
}

// parseKind 解析种类参数。
func parseKind(s string) (xaddr.Kind, error) {
	switch s {
	case "ipv4", "ip4":
		return xaddr.KindIPv4, nil
	case "ipv6", "ip6":
		return xaddr.KindIPv6, nil
	case "ethernet", "mac":
		return xaddr.KindEthernet, nil
	case "firewire", "eui64":
		return xaddr.KindFireWire, nil
	default:
		return 0, fmt.Errorf("未知的地址种类 %q", s)
	}
}

// outWriter 返回命令输出目标，未设置时退回标准输出。
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
