package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/macfmt/pkg/observability/xlog"
	"github.com/omeyang/macfmt/pkg/util/xmac"
	"github.com/omeyang/macfmt/pkg/util/xmacfmt"
)

// flag 名称
const (
	flagUpper     = "upper"
	flagLower     = "lower"
	flagConfig    = "config"
	flagJobs      = "jobs"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
)

// app 持有一次运行的进程环境。
type app struct {
	env *appEnv
}

// newApp 创建 CLI 应用，所有输入输出经由 env。
func newApp(env *appEnv) *cli.Command {
	a := &app{env: env}
	return &cli.Command{
		Name:      "macfmt",
		Usage:     "A tool to format MAC addresses in various formats",
		ArgsUsage: "[FILE]",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Description: `Finds MAC addresses in the input text and prints each one in the
selected notation. Uses standard format (xx:xx:xx:xx:xx:xx) by default
when no subcommand is specified.

Input is read from FILE when given. Otherwise, on a terminal, the editor
from the config file, $VISUAL or $EDITOR is opened; without an editor the
text is read from the terminal until EOF.`,
		Flags:        globalFlags(),
		Commands:     a.createCommands(),
		Action:       a.action(nil),
		Reader:       env.stdin,
		Writer:       env.stdout,
		ErrWriter:    env.stderr,
		OnUsageError: onUsageError,
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 runApp 统一处理退出码映射。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(env.stderr, err)
			}
		},
	}
}

// globalFlags 根命令的 flag，子命令继承。
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  flagUpper,
			Usage: "Convert output to uppercase",
		},
		&cli.BoolFlag{
			Name:  flagLower,
			Usage: "Convert output to lowercase",
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load defaults from a YAML or JSON `FILE`",
		},
		&cli.IntFlag{
			Name:    flagJobs,
			Aliases: []string{"j"},
			Usage:   "number of workers formatting addresses",
			Value:   defaultJobs,
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "log level (debug, info, warn, error)",
			Value:   defaultLogLevel,
			Sources: cli.EnvVars("MACFMT_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    flagLogFormat,
			Usage:   "log format (text, json)",
			Value:   defaultLogFormat,
			Sources: cli.EnvVars("MACFMT_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:    flagLogFile,
			Usage:   "write logs to `PATH` with size based rotation",
			Sources: cli.EnvVars("MACFMT_LOG_FILE"),
		},
	}
}

// createCommands 每种写法一个子命令。
func (a *app) createCommands() []*cli.Command {
	usages := map[xmac.Notation]string{
		xmac.NotationStandard: "Format MAC addresses in standard format (xx:xx:xx:xx:xx:xx) [default]",
		xmac.NotationCisco:    "Format MAC addresses in Cisco format (xxxx.xxxx.xxxx)",
		xmac.NotationWindows:  "Format MAC addresses in Windows format (xx-xx-xx-xx-xx-xx)",
		xmac.NotationBare:     "Format MAC addresses in bare format (xxxxxxxxxxxx)",
	}

	cmds := make([]*cli.Command, 0, len(xmac.Notations))
	for _, n := range xmac.Notations {
		cmds = append(cmds, &cli.Command{
			Name:         n.String(),
			Usage:        usages[n],
			ArgsUsage:    "[FILE]",
			Action:       a.action(&n),
			OnUsageError: onUsageError,
		})
	}
	return cmds
}

// onUsageError 把 flag 解析错误标记为参数错误。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return newUsageError("", err)
}

// action 返回命令的执行函数。notation 为 nil 表示未指定子命令。
func (a *app) action(notation *xmac.Notation) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() > 1 {
			return newUsageError(fmt.Sprintf("expected at most one FILE, got %d arguments", cmd.Args().Len()), nil)
		}

		// 参数冲突在读取任何输入之前报告
		s, err := resolveSettings(cmd, notation)
		if err != nil {
			return err
		}

		logger, cleanup, err := buildLogger(s, a.env.stderr)
		if err != nil {
			return err
		}
		defer func() { _ = cleanup() }() //nolint:errcheck // 关闭日志文件失败无法再报告

		logger.Debug(ctx, "starting macfmt",
			slog.String("notation", s.notation.String()),
			slog.String("case", s.policy.String()),
			slog.Int("jobs", s.jobs),
			slog.String("config", s.configPath))

		return a.format(ctx, cmd.Args().First(), s, logger)
	}
}

// format 读取输入、提取并输出 MAC 地址。
// 输出行写 stdout，解析失败的候选按扫描顺序写 stderr。
func (a *app) format(ctx context.Context, path string, s *settings, logger xlog.LoggerWithLevel) error {
	text, err := a.readInput(ctx, path, s, logger)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "searching for MAC addresses", slog.Int("bytes", len(text)))

	res, err := xmacfmt.Run(ctx, text, s.notation, s.policy, xmacfmt.WithConcurrency(s.jobs))
	if err != nil {
		return err
	}
	if logger.Enabled(ctx, xlog.LevelDebug) {
		logItems(ctx, logger, res)
	}

	for _, it := range res.Items {
		if it.OK() {
			fmt.Fprintln(a.env.stdout, it.Output)
			continue
		}
		fmt.Fprintln(a.env.stderr, xmacfmt.Diagnostic{Source: it.Source, Err: it.Err})
	}

	logger.Info(ctx, "found MAC addresses", xlog.Count(len(res.Items)))
	return nil
}

// logItems 输出每个模式族的候选数和每个候选的处理结果。
func logItems(ctx context.Context, logger xlog.Logger, res *xmacfmt.Result) {
	counts := make(map[xmac.Family]int, len(xmac.Families))
	for _, it := range res.Items {
		counts[it.Family]++
	}
	for _, f := range xmac.Families {
		logger.Debug(ctx, "pattern matches", slog.String("family", f.String()), xlog.Count(counts[f]))
	}

	for _, it := range res.Items {
		if it.OK() {
			logger.Debug(ctx, "formatted", slog.String("source", it.Source), slog.String("output", it.Output))
			continue
		}
		logger.Debug(ctx, "parse failed", slog.String("source", it.Source), xlog.Err(it.Err))
	}
}
