package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/omeyang/macfmt/pkg/observability/xlog"
)

// interactivePrompt 终端直接输入时的提示语。
const interactivePrompt = "Input text. End input with Ctrl-d or EOF on a new line."

// readInput 按 文件 > 终端编辑器 > stdin 的顺序获取输入文本。
func (a *app) readInput(ctx context.Context, path string, s *settings, logger xlog.Logger) (string, error) {
	if path != "" {
		logger.Info(ctx, "reading input from file", slog.String("path", path))
		return readFile(path)
	}

	if a.env.isTerminal() {
		logger.Debug(ctx, "detected interactive terminal")
		return a.readInteractive(ctx, s.editor, logger)
	}

	logger.Debug(ctx, "reading input from stdin")
	text, err := readAllContext(ctx, a.env.stdin)
	if err != nil {
		return "", fmt.Errorf("Failed to read from stdin: %w", err) //nolint:staticcheck // 面向用户的消息
	}
	return text, nil
}

// readFile 读取输入文件，常见错误给出明确提示。
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("File not found: %s", path) //nolint:staticcheck // 面向用户的消息
	case errors.Is(err, fs.ErrPermission):
		return "", fmt.Errorf("Permission denied reading file: %s", path) //nolint:staticcheck // 面向用户的消息
	default:
		return "", fmt.Errorf("Failed to read file '%s': %w", path, err) //nolint:staticcheck // 面向用户的消息
	}
}

// readInteractive 优先使用编辑器，找不到编辑器时提示后从终端读取。
func (a *app) readInteractive(ctx context.Context, configured string, logger xlog.Logger) (string, error) {
	editor := a.editorCommand(configured)
	if editor == "" {
		return a.promptStdin(ctx)
	}

	fields := strings.Fields(editor)
	prog, err := a.env.lookPath(fields[0])
	if err != nil {
		logger.Warn(ctx, "editor not found", slog.String("editor", editor), xlog.Err(err))
		return a.promptStdin(ctx)
	}

	logger.Debug(ctx, "opening editor for input", slog.String("editor", prog))
	return a.editTempFile(ctx, prog, fields[1:])
}

// editorCommand 依次取配置 editor、$VISUAL、$EDITOR 中第一个非空值。
func (a *app) editorCommand(configured string) string {
	for _, v := range []string{configured, a.env.getenv("VISUAL"), a.env.getenv("EDITOR")} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (a *app) promptStdin(ctx context.Context) (string, error) {
	fmt.Fprintln(a.env.stderr, interactivePrompt)
	text, err := readAllContext(ctx, a.env.stdin)
	if err != nil {
		return "", fmt.Errorf("Failed to read input: %w", err) //nolint:staticcheck // 面向用户的消息
	}
	return text, nil
}

// editTempFile 创建空临时文件，交给编辑器编辑后读回内容。
func (a *app) editTempFile(ctx context.Context, prog string, args []string) (string, error) {
	f, err := os.CreateTemp("", "macfmt-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	defer func() { _ = os.Remove(name) }() //nolint:errcheck // 临时文件清理失败无需处理
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if err := a.env.runEditor(ctx, prog, append(args, name)); err != nil {
		return "", fmt.Errorf("editor %s: %w", prog, err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read editor output: %w", err)
	}
	return string(data), nil
}

// readAllContext 读取 r 直到 EOF，ctx 取消时立即返回。
// 设计决策: 阻塞在终端上的读取无法中断，取消后读取 goroutine 随进程退出回收。
func readAllContext(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return string(res.data), res.err
	}
}
