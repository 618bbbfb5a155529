package main

import (
	"io"

	"github.com/omeyang/macfmt/pkg/observability/xlog"
)

// buildLogger 按最终参数构建日志。指定 log-file 时写入轮转文件，否则写 stderr。
func buildLogger(s *settings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.logLevel).
		SetFormat(s.logFormat)
	if s.logFile != "" {
		b = b.SetRotation(s.logFile)
	}

	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, newUsageError("logging", err)
	}
	return logger, cleanup, nil
}
