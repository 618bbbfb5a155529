// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，内置 lumberjack 文件轮转
//
// 设计原则：
//   - context 作为每个日志方法的第一个参数
//   - 支持动态级别控制
package observability
