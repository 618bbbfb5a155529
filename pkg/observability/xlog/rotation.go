package xlog

import (
	"fmt"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值。命令行工具的日志量小，默认值比服务端保守。
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

// rotationConfig lumberjack 轮转配置
type rotationConfig struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	localTime  bool
}

// RotationOption 轮转配置选项
type RotationOption func(*rotationConfig)

// WithMaxSize 设置单个日志文件最大大小（MB）
func WithMaxSize(mb int) RotationOption {
	return func(c *rotationConfig) {
		c.maxSizeMB = mb
	}
}

// WithMaxBackups 设置保留的备份文件数量，0 表示不限制
func WithMaxBackups(n int) RotationOption {
	return func(c *rotationConfig) {
		c.maxBackups = n
	}
}

// WithMaxAge 设置保留备份的天数，0 表示不按天数清理
func WithMaxAge(days int) RotationOption {
	return func(c *rotationConfig) {
		c.maxAgeDays = days
	}
}

// WithCompress 设置是否 gzip 压缩备份
func WithCompress(compress bool) RotationOption {
	return func(c *rotationConfig) {
		c.compress = compress
	}
}

// WithLocalTime 设置备份文件名是否使用本地时间
func WithLocalTime(local bool) RotationOption {
	return func(c *rotationConfig) {
		c.localTime = local
	}
}

func (c *rotationConfig) validate() error {
	switch {
	case c.maxSizeMB <= 0 || c.maxSizeMB > maxSizeMB:
		return fmt.Errorf("%w: max size %d MB, must be in [1, %d]", ErrInvalidRotation, c.maxSizeMB, maxSizeMB)
	case c.maxBackups < 0 || c.maxBackups > maxBackups:
		return fmt.Errorf("%w: max backups %d, must be in [0, %d]", ErrInvalidRotation, c.maxBackups, maxBackups)
	case c.maxAgeDays < 0 || c.maxAgeDays > maxAgeDays:
		return fmt.Errorf("%w: max age %d days, must be in [0, %d]", ErrInvalidRotation, c.maxAgeDays, maxAgeDays)
	}
	return nil
}

// newRotator 创建基于 lumberjack 的轮转写入器。
// lumberjack 在首次写入时创建文件及其父目录。
func newRotator(filename string, opts ...RotationOption) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := rotationConfig{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename:   filepath.Clean(filename),
		MaxSize:    cfg.maxSizeMB,
		MaxBackups: cfg.maxBackups,
		MaxAge:     cfg.maxAgeDays,
		Compress:   cfg.compress,
		LocalTime:  cfg.localTime,
	}, nil
}
