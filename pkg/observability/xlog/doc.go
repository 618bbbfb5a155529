// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到的第一个配置错误在 Build 时返回）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/macfmt.log", xlog.WithMaxSize(5)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// SetRotation 使用 lumberjack 按文件大小轮转，cleanup 负责关闭文件。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接反序列化。
//
// # 不输出的 Logger
//
// [Discard] 用于测试和库的默认值。
package xlog
