package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/macfmt/pkg/config/xconf"
	"github.com/omeyang/macfmt/pkg/util/xmac"
)

// 日志相关默认值
const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultJobs      = 1
)

// fileSettings 配置文件结构。字符串字段由 resolveSettings 解析，以便给出参数错误。
type fileSettings struct {
	Notation string `koanf:"notation"`
	Case     string `koanf:"case"`
	Jobs     int    `koanf:"jobs"`
	Editor   string `koanf:"editor"`
	Log      struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
	} `koanf:"log"`
}

// settings 合并命令行与配置文件后的最终参数。
//
// 优先级：显式 flag（含环境变量）> 配置文件 > 默认值。
type settings struct {
	notation xmac.Notation
	policy   xmac.CasePolicy
	jobs     int
	editor   string

	logLevel  string
	logFormat string
	logFile   string

	configPath string
}

// casePolicyFromFlags 检查大小写 flag，两者同时指定时返回 errConflictingCase。
// 第二个返回值报告是否由 flag 决定。
func casePolicyFromFlags(cmd *cli.Command) (xmac.CasePolicy, bool, error) {
	upper, lower := cmd.Bool(flagUpper), cmd.Bool(flagLower)
	switch {
	case upper && lower:
		return xmac.CasePreserve, false, newUsageError("", errConflictingCase)
	case upper:
		return xmac.CaseUpper, true, nil
	case lower:
		return xmac.CaseLower, true, nil
	default:
		return xmac.CasePreserve, false, nil
	}
}

// loadFileSettings 读取 --config 指定的文件，未指定时返回零值。
func loadFileSettings(path string) (fileSettings, error) {
	var fs fileSettings
	if path == "" {
		return fs, nil
	}
	cfg, err := xconf.New(path)
	if errors.Is(err, xconf.ErrUnsupportedFormat) {
		return fs, newUsageError("config "+path, err)
	}
	if err != nil {
		return fs, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Unmarshal("", &fs); err != nil {
		return fs, newUsageError("config "+path, err)
	}
	return fs, nil
}

// resolveSettings 合并 flag 与配置文件。
// notation 非 nil 表示用户显式选择了子命令。
func resolveSettings(cmd *cli.Command, notation *xmac.Notation) (*settings, error) {
	policy, policyFromFlag, err := casePolicyFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	s := &settings{
		notation:   xmac.NotationStandard,
		policy:     policy,
		jobs:       defaultJobs,
		logLevel:   defaultLogLevel,
		logFormat:  defaultLogFormat,
		configPath: cmd.String(flagConfig),
	}

	fs, err := loadFileSettings(s.configPath)
	if err != nil {
		return nil, err
	}

	switch {
	case notation != nil:
		s.notation = *notation
	case fs.Notation != "":
		n, err := xmac.ParseNotation(fs.Notation)
		if err != nil {
			return nil, newUsageError("config notation", err)
		}
		s.notation = n
	}

	if !policyFromFlag && fs.Case != "" {
		p, err := xmac.ParseCasePolicy(fs.Case)
		if err != nil {
			return nil, newUsageError("config case", err)
		}
		s.policy = p
	}

	switch {
	case cmd.IsSet(flagJobs):
		s.jobs = cmd.Int(flagJobs)
	case fs.Jobs != 0:
		s.jobs = fs.Jobs
	}
	if s.jobs < 1 {
		return nil, newUsageError(fmt.Sprintf("jobs must be at least 1, got %d", s.jobs), nil)
	}

	s.editor = fs.Editor
	s.logLevel = pick(cmd, flagLogLevel, fs.Log.Level, s.logLevel)
	s.logFormat = pick(cmd, flagLogFormat, fs.Log.Format, s.logFormat)
	s.logFile = pick(cmd, flagLogFile, fs.Log.File, "")
	return s, nil
}

// pick 按 flag > 配置 > 默认值 的顺序选择字符串参数。
func pick(cmd *cli.Command, flag, fromFile, def string) string {
	if cmd.IsSet(flag) {
		return cmd.String(flag)
	}
	if fromFile != "" {
		return fromFile
	}
	return def
}
