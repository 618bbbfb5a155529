package main

import (
	"errors"
	"strings"

	"github.com/urfave/cli/v3"
)

// errConflictingCase --upper 与 --lower 同时指定。
var errConflictingCase = errors.New("Cannot specify both --lower and --upper flags") //nolint:staticcheck // 面向用户的原文消息

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 参数或配置值错误，映射到退出码 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.err.Error()
	}
	return e.msg + ": " + e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(msg string, err error) *usageError {
	return &usageError{msg: msg, err: err}
}

// cliUsageMarkers urfave/cli 与 flag 包产生的参数错误特征。
var cliUsageMarkers = []string{
	"flag provided but not defined",
	"invalid value",
	"flag needs an argument",
	"No help topic for",
	"option provided but not defined",
}

// isCLIUsageError 判断错误是否来自命令行解析。
func isCLIUsageError(err error) bool {
	if err == nil {
		return false
	}
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) && exitCoder.ExitCode() == 2 {
		return true
	}
	msg := err.Error()
	for _, marker := range cliUsageMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
