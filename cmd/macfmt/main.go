// macfmt 从任意文本中提取 MAC 地址，并按指定写法逐行输出。
//
// 用法:
//
//	macfmt [全局选项] [standard|cisco|windows|bare] [FILE]
//
// 写法:
//
//	standard       xx:xx:xx:xx:xx:xx（默认）
//	cisco          xxxx.xxxx.xxxx
//	windows        xx-xx-xx-xx-xx-xx
//	bare           xxxxxxxxxxxx
//
// 全局选项:
//
//	--upper / --lower      强制大写 / 小写（互斥），默认保留输入的大小写
//	-c, --config FILE      YAML/JSON 配置文件
//	-j, --jobs N           并发处理的 worker 数量
//	--log-level LEVEL      日志级别 (默认: warn, 环境变量 MACFMT_LOG_LEVEL)
//	--log-format FORMAT    text 或 json (环境变量 MACFMT_LOG_FORMAT)
//	--log-file PATH        日志写入文件并按大小轮转 (环境变量 MACFMT_LOG_FILE)
//
// 输入来源:
//
//	指定 FILE 时读取文件；stdin 是终端时打开编辑器（配置 editor、$VISUAL、$EDITOR），
//	找不到编辑器则提示后从终端读取；否则读取 stdin 直到 EOF。
//
// 退出码:
//
//	0: 成功（包括部分或全部候选解析失败）
//	1: 运行失败（未找到 MAC 地址、读取失败、编辑器失败）
//	2: 参数错误（--upper 与 --lower 同时指定、非法参数值、非法配置值）
//
// 示例:
//
//	ip link | macfmt cisco
//	macfmt --upper windows arp.txt
//	macfmt -c ~/.config/macfmt.yaml bare dump.log
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建绑定到进程 stdin/stdout/stderr 的 CLI 应用。
func createApp() *cli.Command {
	return newApp(osEnv())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 设置信号处理
	setupSignalHandler(cancel)

	return runApp(ctx, createApp(), os.Args, os.Stderr)
}

// runApp 运行应用并把错误映射为退出码。
func runApp(ctx context.Context, app *cli.Command, args []string, stderr io.Writer) int {
	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		// flag 解析器或 ExitErrHandler 已输出错误详情
		return 2
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// setupSignalHandler 第一次信号取消 context，第二次信号强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
