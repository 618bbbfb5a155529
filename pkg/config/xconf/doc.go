// Package xconf 提供配置文件的加载和解析，基于 koanf 实现。
//
// xconf 定位为最小化配置加载器，只负责文件/字节数据的加载和反序列化。
// 默认值注入、命令行覆盖等由调用方实现。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 用法
//
//	cfg, err := xconf.New("macfmt.yaml")
//	if err != nil {
//		return err
//	}
//	var s Settings
//	if err := cfg.Unmarshal("", &s); err != nil {
//		return err
//	}
//
// 判断某个键是否出现在文件中使用 cfg.Client().Exists(key)。
//
// Unmarshal 使用 mapstructure，允许弱类型转换（例如字符串 "4" 转为 int 4）。
package xconf
