package xlog

import "log/slog"

// 标准字段 key
const (
	KeyError     = "error"
	KeyComponent = "component"
	KeyCount     = "count"
)

// Err 创建错误属性，nil 错误输出 "<nil>"
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "<nil>")
	}
	return slog.String(KeyError, err.Error())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Count 创建计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}
