// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址值类型，文本扫描、解析、多格式输出、文本序列化
//   - xmacfmt: 批量处理，扫描一段文本并逐个格式化，支持保序并发
//
// 设计原则：
//   - 核心函数无副作用，不打日志、不做 I/O
//   - 错误通过哨兵值暴露，调用方使用 errors.Is/As 判断
package util
